package reports

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"solixmon/internal/models"
	"solixmon/internal/render"
)

// renderDailyChart draws both curves of a snapshot as a PNG line chart.
// The y-axis ceiling comes from the same nice-value ladder the frame
// renderer uses, so the report and the live frame share one scale.
func renderDailyChart(snap *models.Snapshot, points int) ([]byte, error) {
	xValues := make([]float64, points)
	for i := range xValues {
		xValues[i] = float64(i)
	}
	axisMax := render.AxisMax(snap.Generation, snap.Consumption)

	graph := chart.Chart{
		Title: "Daily Energy Profile",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   60,
				Right:  20,
				Bottom: 40,
			},
		},
		Height: 350,
		Width:  700,
		XAxis: chart.XAxis{
			Name: "Hour",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 9,
			},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%02.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: "Power",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: axisMax,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Generation",
				XValues: xValues,
				YValues: snap.Generation,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 0, G: 160, B: 60, A: 255},
					StrokeWidth: 2.5,
				},
			},
			chart.ContinuousSeries{
				Name:    "Consumption",
				XValues: xValues,
				YValues: snap.Consumption,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 200, G: 40, B: 40, A: 255},
					StrokeWidth: 1.5,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render daily chart: %w", err)
	}
	return buf.Bytes(), nil
}
