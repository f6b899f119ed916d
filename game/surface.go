package game

import (
	"image/color"
)

// Surface is the drawing backend the renderer talks to. Coordinates are
// world units with the origin at the centre of the viewport and y up.
type Surface interface {
	Fill(c color.Color)
	// FillRect fills a width x height rectangle centred on (cx, cy).
	FillRect(cx, cy, width, height float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	FillCircle(cx, cy, radius float64, c color.Color)
}

var (
	backgroundColor = color.RGBA{221, 160, 221, 255} // plum
	rayColor        = color.RGBA{0, 0, 255, 255}
	boundaryColor   = color.RGBA{0, 0, 0, 255}
	playerColor     = color.RGBA{255, 255, 255, 255}
	facingColor     = color.RGBA{255, 0, 0, 255}
)

const (
	rayWidth      = 1.0
	boundaryWidth = 4.0
	facingWidth   = 2.0
	playerRadius  = 5.0
	facingLength  = 50.0
	// unboundedRayLength is how far a ray that hit nothing is drawn.
	unboundedRayLength = 1000.0
)
