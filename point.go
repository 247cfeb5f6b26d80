package quad

// Point represents a 2D position in world space.
type Point struct {
	X, Y float32
}

// P is a convenience function to create a Point.
func P(x, y float32) Point {
	return Point{X: x, Y: y}
}
