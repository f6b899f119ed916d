package game

import (
	"cmp"
	"image/color"
)

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}

// shadeColor turns a grey level and alpha into a colour, clamping both to
// [0, 1] since the alpha remap is allowed to overshoot.
func shadeColor(shade, alpha float64) color.NRGBA {
	grey := uint8(clampValue(shade, 0, 1) * 255)
	return color.NRGBA{
		R: grey,
		G: grey,
		B: grey,
		A: uint8(clampValue(alpha, 0, 1) * 255),
	}
}
