package render

import (
	"fmt"
	"strconv"

	"solixmon/internal/canvas"
	"solixmon/internal/models"
)

// Frame dimensions, matching the 320x240 landscape panel the monitor
// was designed around
const (
	FrameWidth  = 320
	FrameHeight = 240
)

// Graph geometry
const (
	graphX      = 46
	graphY      = 20
	graphWidth  = 264
	graphHeight = 130

	hourLabelStep = 6
)

// Numeric summary block geometry
const (
	rowsY     = 170
	rowHeight = 20
	labelX    = 10
	valueX    = 130
)

// Refresh button geometry
const (
	buttonX = 230
	buttonY = 200
	buttonW = 80
	buttonH = 30
)

// ButtonBounds returns the hit target of the on-screen refresh control
func ButtonBounds() (x, y, w, h int) {
	return buttonX, buttonY, buttonW, buttonH
}

// HitsButton reports whether a pointer-down coordinate lands inside the
// refresh control
func HitsButton(p canvas.Point) bool {
	return p.X >= buttonX && p.X <= buttonX+buttonW &&
		p.Y >= buttonY && p.Y <= buttonY+buttonH
}

// Renderer draws a snapshot onto a surface. It holds no mutable state,
// so rendering the same snapshot twice produces the same op sequence.
type Renderer struct {
	points int
}

// New creates a renderer for curves of the given sample count
func New(points int) *Renderer {
	if points < 1 {
		points = models.DefaultPointsPerDay
	}
	return &Renderer{points: points}
}

// Draw renders the complete dashboard frame for a snapshot
func (r *Renderer) Draw(s canvas.Surface, snap *models.Snapshot) {
	s.Clear(canvas.ColorBackground)
	r.drawGraph(s, snap)
	r.drawLegend(s)
	r.drawNumbers(s, snap)
	r.drawButton(s)
	s.Text("Updated: "+snap.UpdatedAt, labelX, buttonY+buttonH+4, canvas.AlignLeft, canvas.ColorMuted)
}

// DrawMessage clears the surface and shows a single centered line. Used
// for boot status and the transient fetch-error screen.
func (r *Renderer) DrawMessage(s canvas.Surface, msg string) {
	w, h := s.Size()
	s.Clear(canvas.ColorBackground)
	s.Text(msg, w/2, h/2, canvas.AlignCenter, canvas.ColorText)
}

func (r *Renderer) drawGraph(s canvas.Surface, snap *models.Snapshot) {
	// Frame behind the plot area
	s.FillRect(graphX-2, graphY-2, graphWidth+4, graphHeight+4, canvas.ColorGrid)
	s.FillRect(graphX, graphY, graphWidth, graphHeight, canvas.ColorBackground)
	s.StrokeRect(graphX, graphY, graphWidth, graphHeight, canvas.ColorFrame)

	// Both series share one scale
	axisMax := AxisMax(snap.Generation, snap.Consumption)

	// Horizontal grid lines and value labels
	for i := 0; i < GridLines; i++ {
		y := graphY + graphHeight - (graphHeight*i)/(GridLines-1)
		s.Line(graphX, y, graphX+graphWidth, y, canvas.ColorGrid)
		label := strconv.FormatFloat(GridValue(i, axisMax), 'f', -1, 64)
		s.Text(label, graphX-4, y, canvas.AlignRight, canvas.ColorMuted)
	}

	// Vertical grid lines with hour labels
	for hour := 0; hour <= r.points; hour += hourLabelStep {
		x := graphX + (graphWidth*hour)/r.points
		s.Line(x, graphY, x, graphY+graphHeight, canvas.ColorGrid)
		s.Text(fmt.Sprintf("%02d", hour), x, graphY+graphHeight+8, canvas.AlignCenter, canvas.ColorMuted)
	}

	r.drawSeries(s, snap.Generation, axisMax, canvas.ColorGeneration)
	r.drawSeries(s, snap.Consumption, axisMax, canvas.ColorConsumption)
}

// drawSeries plots one curve as a continuous polyline. Sample index maps
// linearly onto the graph width; larger values render higher.
func (r *Renderer) drawSeries(s canvas.Surface, data []float64, axisMax float64, c canvas.Color) {
	if len(data) < 2 {
		return
	}
	prevX := graphX
	prevY := r.sampleY(data[0], axisMax)
	for i := 1; i < len(data); i++ {
		x := graphX + (graphWidth*i)/r.points
		y := r.sampleY(data[i], axisMax)
		s.Line(prevX, prevY, x, y, c)
		prevX = x
		prevY = y
	}
}

func (r *Renderer) sampleY(v float64, axisMax float64) int {
	return graphY + graphHeight - int(v/axisMax*float64(graphHeight))
}

func (r *Renderer) drawLegend(s canvas.Surface) {
	legendY := graphY - 10
	s.FillRect(graphX+2, legendY-2, 10, 4, canvas.ColorGeneration)
	s.Text("Generation", graphX+16, legendY, canvas.AlignLeft, canvas.ColorText)
	s.FillRect(graphX+100, legendY-2, 10, 4, canvas.ColorConsumption)
	s.Text("Consumption", graphX+114, legendY, canvas.AlignLeft, canvas.ColorText)
}

func (r *Renderer) drawNumbers(s canvas.Surface, snap *models.Snapshot) {
	s.Text("Battery:", labelX, rowsY, canvas.AlignLeft, canvas.ColorText)
	s.Text(models.FormatPercent(snap.BatteryPercent), valueX, rowsY, canvas.AlignLeft, canvas.ColorText)

	s.Text("Generated:", labelX, rowsY+rowHeight, canvas.AlignLeft, canvas.ColorText)
	s.Text(models.FormatEnergy(snap.DailyGeneration), valueX, rowsY+rowHeight, canvas.AlignLeft, canvas.ColorText)

	s.Text("Consumed:", labelX, rowsY+2*rowHeight, canvas.AlignLeft, canvas.ColorText)
	s.Text(models.FormatEnergy(snap.DailyConsumption), valueX, rowsY+2*rowHeight, canvas.AlignLeft, canvas.ColorText)
}

// drawButton paints the refresh control. It is always drawn; whether taps
// reach it depends on the pointer source the scheduler was given.
func (r *Renderer) drawButton(s canvas.Surface) {
	s.FillRect(buttonX, buttonY, buttonW, buttonH, canvas.ColorButton)
	s.StrokeRect(buttonX, buttonY, buttonW, buttonH, canvas.ColorButtonBorder)
	s.Text("Refresh", buttonX+buttonW/2, buttonY+buttonH/2, canvas.AlignCenter, canvas.ColorText)
}
