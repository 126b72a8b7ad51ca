package canvas

import "fmt"

// Op is one recorded drawing operation
type Op struct {
	Kind  string
	X     int
	Y     int
	X1    int
	Y1    int
	W     int
	H     int
	Text  string
	Align Align
	Color Color
}

// String renders the op compactly for test diagnostics
func (o Op) String() string {
	switch o.Kind {
	case "text":
		return fmt.Sprintf("text(%q@%d,%d c%d)", o.Text, o.X, o.Y, o.Color)
	case "line":
		return fmt.Sprintf("line(%d,%d-%d,%d c%d)", o.X, o.Y, o.X1, o.Y1, o.Color)
	default:
		return fmt.Sprintf("%s(%d,%d %dx%d c%d)", o.Kind, o.X, o.Y, o.W, o.H, o.Color)
	}
}

// Recorder is a Surface that records every operation instead of drawing.
// Tests use it to assert on the exact sequence of draw calls.
type Recorder struct {
	W   int
	H   int
	Ops []Op
}

// NewRecorder creates a recording surface of the given logical size
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

// Reset discards all recorded operations
func (r *Recorder) Reset() {
	r.Ops = nil
}

// Size returns the surface dimensions
func (r *Recorder) Size() (int, int) {
	return r.W, r.H
}

// Clear records a clear operation
func (r *Recorder) Clear(c Color) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Color: c})
}

// FillRect records a filled rectangle
func (r *Recorder) FillRect(x, y, w, h int, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", X: x, Y: y, W: w, H: h, Color: c})
}

// StrokeRect records a rectangle outline
func (r *Recorder) StrokeRect(x, y, w, h int, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", X: x, Y: y, W: w, H: h, Color: c})
}

// Line records a line segment
func (r *Recorder) Line(x0, y0, x1, y1 int, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", X: x0, Y: y0, X1: x1, Y1: y1, Color: c})
}

// Text records a text draw
func (r *Recorder) Text(s string, x, y int, align Align, c Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Align: align, Color: c})
}

// TextOps returns the text of every recorded text operation, in order
func (r *Recorder) TextOps() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}
