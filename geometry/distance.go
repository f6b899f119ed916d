package geometry

// Distance is the Euclidean distance between two points
func Distance(a, b Vector) float64 {
	return b.Sub(a).Magnitude()
}
