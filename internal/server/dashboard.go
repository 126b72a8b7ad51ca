package server

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"solixmon/internal/models"
)

// HandleDashboard serves an interactive chart of the current snapshot
func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view := s.snapshotView()

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(buildEnergyChart(view))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		s.log.Error("Dashboard render failed", err)
	}
}

// buildEnergyChart creates the hourly generation/consumption line chart
func buildEnergyChart(view models.View) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "450px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Daily Energy Profile",
			Subtitle: fmt.Sprintf("Battery %s | Generated %s | Consumed %s | Updated %s",
				view.BatteryPercent, view.DailyGeneration, view.DailyConsumption, view.UpdatedAt),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Hour",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Power",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
		}),
	)

	points := len(view.Generation)
	xAxis := make([]string, points)
	genData := make([]opts.LineData, points)
	conData := make([]opts.LineData, points)
	for i := 0; i < points; i++ {
		xAxis[i] = fmt.Sprintf("%02d", i)
		genData[i] = opts.LineData{Value: view.Generation[i]}
		conData[i] = opts.LineData{Value: view.Consumption[i]}
	}

	line.SetXAxis(xAxis).
		AddSeries("Generation", genData).
		AddSeries("Consumption", conData).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	return line
}
