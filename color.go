package quad

// Color represents an RGB color with float32 components in [0, 1].
// Squares are opaque; there is no alpha channel in the vertex layout.
type Color struct {
	R, G, B float32
}

// RGB is a convenience function to create a Color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}
