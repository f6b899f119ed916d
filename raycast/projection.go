package raycast

import (
	"math"

	"github.com/meghashyamc/raycast2d/geometry"
)

// Settings controls how rays are spread across the screen and how hits are
// projected into columns.
type Settings struct {
	// Resolution is the width of one column in pixels.
	Resolution int
	FOVDegrees float64
	// Projection is the distance-to-screen-plane scale used for column heights.
	Projection float64
	// ShadeCeiling caps the shade so no wall is drawn pure white.
	ShadeCeiling float64
	Lighting     LuminosityModel
}

func DefaultSettings() Settings {
	return Settings{
		Resolution:   5,
		FOVDegrees:   60,
		Projection:   100000,
		ShadeCeiling: 0.9,
		Lighting:     DefaultLuminosityModel(),
	}
}

// Column is one vertical screen strip and the ray cast for it.
type Column struct {
	Index int
	// X is the screen-space centre of the strip in world units.
	X float64
	// Angle is the offset from straight ahead in radians.
	Angle float64
	Result
}

// ColumnRange returns the half-open column index range [first, last) for
// the viewport.
func ColumnRange(viewport geometry.Rect, resolution int) (int, int) {
	return int(viewport.MinX) / resolution, int(viewport.MaxX) / resolution
}

// ColumnAngle maps column i onto [-fov/2, fov/2] radians. The viewport is
// expected to be centred on the origin.
func ColumnAngle(i int, viewport geometry.Rect, resolution int, fovDegrees float64) float64 {
	offset := float64(i) / (viewport.MaxX / float64(resolution))
	halfFOV := fovDegrees * math.Pi / 360

	return mapRange(offset, -1, 1, -halfFOV, halfFOV)
}

// Cast builds and resolves one ray per column across the viewport.
func Cast(origin, lookDir geometry.Vector, boundaries []geometry.Boundary, viewport geometry.Rect, s Settings) []Column {
	first, last := ColumnRange(viewport, s.Resolution)
	if last <= first {
		return nil
	}

	columns := make([]Column, 0, last-first)
	for i := first; i < last; i++ {
		angle := ColumnAngle(i, viewport, s.Resolution, s.FOVDegrees)
		ray := NewRay(origin, lookDir, angle)

		columns = append(columns, Column{
			Index:  i,
			X:      float64(i * s.Resolution),
			Angle:  angle,
			Result: Resolve(ray, boundaries, s.Lighting),
		})
	}

	return columns
}

// Height is the projected wall height. Dividing by cos(angle) turns the ray
// length into the perpendicular distance to the view plane, which removes
// the fisheye effect. Columns without a hit have height 0.
func (c Column) Height(projection float64) float64 {
	if !c.OK {
		return 0
	}
	return projection / (c.Hit.Distance * math.Cos(c.Angle))
}

// Shade is the luminosity capped at ceiling, or 0 without a hit.
func (c Column) Shade(ceiling float64) float64 {
	if !c.OK {
		return 0
	}
	return math.Min(c.Hit.Luminosity, ceiling)
}

// Alpha maps shade linearly from [ShadeCeiling, Ambient] onto [1, 0]. It is
// not clamped: shades outside the band extrapolate outside [0, 1].
func (s Settings) Alpha(shade float64) float64 {
	return mapRange(shade, s.ShadeCeiling, s.Lighting.Ambient, 1, 0)
}

func mapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	return (value-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
}
