// Package raycast casts rays from the player's eye against the arena
// boundaries and turns the hits into projected screen columns.
package raycast

import (
	"github.com/meghashyamc/raycast2d/geometry"
)

// Ray is a probe from origin along the unit vector dir.
type Ray struct {
	Origin geometry.Vector
	Dir    geometry.Vector
}

// Hit is a point where a ray meets a boundary.
type Hit struct {
	Point geometry.Vector
	// Distance is the Euclidean distance from the ray origin to Point.
	Distance float64
	// Lambda is the ray parameter of the hit. It equals Distance for unit rays.
	Lambda     float64
	Luminosity float64
}

// Result is a ray together with its nearest hit. OK is false when the ray
// met nothing, in which case Hit is the zero value.
type Result struct {
	Ray Ray
	Hit Hit
	OK  bool
}

// NewRay casts from origin along lookDir turned by offset radians.
func NewRay(origin, lookDir geometry.Vector, offset float64) Ray {
	return Ray{
		Origin: origin,
		Dir:    lookDir.Rotate(offset).Normalize(),
	}
}

// Intersect solves origin + lambda*dir = b.origin + k*b.dir with Cramer's
// rule. A hit needs lambda >= 0 and 0 <= k < b.length. Parallel lines never hit.
func Intersect(ray Ray, b geometry.Boundary, lighting LuminosityModel) (Hit, bool) {
	bOrigin, bDir := b.Origin(), b.Dir()

	determinant := ray.Dir.X*bDir.Y - bDir.X*ray.Dir.Y
	if determinant == 0 {
		return Hit{}, false
	}

	dx := ray.Origin.X - bOrigin.X
	dy := ray.Origin.Y - bOrigin.Y

	k := (ray.Dir.X*dy - ray.Dir.Y*dx) / determinant
	lambda := (bDir.X*dy - bDir.Y*dx) / determinant

	if lambda < 0 || k < 0 || k >= b.Length() {
		return Hit{}, false
	}

	point := bOrigin.Add(bDir.Scale(k))

	return Hit{
		Point:      point,
		Distance:   geometry.Distance(ray.Origin, point),
		Lambda:     lambda,
		Luminosity: lighting.At(lambda),
	}, true
}

// Resolve tests the ray against every boundary and keeps the nearest hit.
// A later hit only replaces the current one when it is strictly closer.
func Resolve(ray Ray, boundaries []geometry.Boundary, lighting LuminosityModel) Result {
	result := Result{Ray: ray}

	for _, boundary := range boundaries {
		hit, ok := Intersect(ray, boundary, lighting)
		if !ok {
			continue
		}

		if !result.OK || hit.Distance < result.Hit.Distance {
			result.Hit = hit
			result.OK = true
		}
	}

	return result
}
