package raycast

// LuminosityModel is an inverse-square falloff over the ray parameter with
// a constant ambient floor: Scale / (lambda/Divisor)^2 + Ambient.
type LuminosityModel struct {
	Scale   float64
	Divisor float64
	Ambient float64
}

func DefaultLuminosityModel() LuminosityModel {
	return LuminosityModel{
		Scale:   5000,
		Divisor: 5,
		Ambient: 0.2,
	}
}

// At returns +Inf at lambda == 0; shading clamps it.
func (m LuminosityModel) At(lambda float64) float64 {
	scaled := lambda / m.Divisor
	return m.Scale/(scaled*scaled) + m.Ambient
}
