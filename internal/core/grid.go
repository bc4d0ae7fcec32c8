package core

// FloatGrid stores a 2D grid of real-valued cells in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a zeroed grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y) after toroidal wrapping.
func (g *FloatGrid) At(x, y int) float64 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Set stores v at (x, y) after toroidal wrapping.
func (g *FloatGrid) Set(x, y int, v float64) {
	x, y = g.Wrap(x, y)
	g.data[y*g.W+x] = v
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *FloatGrid) Wrap(x, y int) (int, int) {
	return Mod(x, g.W), Mod(y, g.H)
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	clear(g.data)
}

// Mod returns a mod b in [0, b) regardless of the sign of a.
func Mod(a, b int) int {
	return (a%b + b) % b
}
