package geometry

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// CenteredRect builds a width x height rectangle with the origin at its centre.
func CenteredRect(width, height float64) Rect {
	return Rect{
		MinX: -width / 2,
		MinY: -height / 2,
		MaxX: width / 2,
		MaxY: height / 2,
	}
}

func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}
