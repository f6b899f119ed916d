package geometry

import (
	"errors"
	"fmt"
)

var ErrDegenerateBoundary = errors.New("boundary start and end coincide")

// Boundary is an immutable wall segment running from origin to
// origin + length*dir. The only way to build one is NewBoundary, so dir is
// always a unit vector and length is always positive.
type Boundary struct {
	origin Vector
	dir    Vector
	length float64
}

func NewBoundary(start, end Vector) (Boundary, error) {
	if start == end {
		return Boundary{}, fmt.Errorf("new boundary at (%g, %g): %w", start.X, start.Y, ErrDegenerateBoundary)
	}

	span := end.Sub(start)

	return Boundary{
		origin: start,
		dir:    span.Normalize(),
		length: span.Magnitude(),
	}, nil
}

// BoundariesFromRect returns the four edges of r: left, top, right, bottom.
func BoundariesFromRect(r Rect) ([]Boundary, error) {
	corners := [][2]Vector{
		{{r.MinX, r.MinY}, {r.MinX, r.MaxY}},
		{{r.MinX, r.MinY}, {r.MaxX, r.MinY}},
		{{r.MaxX, r.MaxY}, {r.MaxX, r.MinY}},
		{{r.MaxX, r.MaxY}, {r.MinX, r.MaxY}},
	}

	boundaries := make([]Boundary, 0, len(corners))
	for _, edge := range corners {
		boundary, err := NewBoundary(edge[0], edge[1])
		if err != nil {
			return nil, fmt.Errorf("failed to build boundaries from rect: %w", err)
		}
		boundaries = append(boundaries, boundary)
	}

	return boundaries, nil
}

func (b Boundary) Origin() Vector {
	return b.origin
}

func (b Boundary) Dir() Vector {
	return b.dir
}

func (b Boundary) Length() float64 {
	return b.length
}

// End is the far endpoint of the segment.
func (b Boundary) End() Vector {
	return b.origin.Add(b.dir.Scale(b.length))
}
