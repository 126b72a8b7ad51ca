package canvas

// Color is a symbolic color resolved to a concrete palette by each surface
type Color int

const (
	ColorBackground Color = iota
	ColorFrame
	ColorGrid
	ColorGeneration
	ColorConsumption
	ColorText
	ColorMuted
	ColorButton
	ColorButtonBorder
)

// Align controls horizontal text anchoring
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Point is a pointer-event coordinate in surface space
type Point struct {
	X int
	Y int
}

// Surface is the drawing target the renderer paints on. Implementations
// translate symbolic colors into a concrete palette and may give series
// colors distinct stroke weights.
type Surface interface {
	Size() (w, h int)
	Clear(c Color)
	FillRect(x, y, w, h int, c Color)
	StrokeRect(x, y, w, h int, c Color)
	Line(x0, y0, x1, y1 int, c Color)
	Text(s string, x, y int, align Align, c Color)
}
