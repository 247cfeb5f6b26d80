package quad

// Square describes one axis-aligned quad primitive to draw. Position
// is the top-left anchor; the quad extends Size units rightward and
// Size units downward from it. Squares are plain values: constructed,
// handed to the renderer, and discarded.
type Square struct {
	Position Point
	Size     float32
	Color    Color
}
