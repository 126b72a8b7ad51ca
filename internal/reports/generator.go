package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solixmon/internal/logger"
	"solixmon/internal/models"
	"solixmon/internal/storage"
)

// Generator builds daily report artifacts from a snapshot and archives
// them through the storage client.
type Generator struct {
	store  storage.Client
	points int
	html   *HTMLBuilder
	log    *logger.Logger
}

// NewGenerator creates a report generator backed by the given store.
func NewGenerator(store storage.Client, points int) *Generator {
	return &Generator{
		store:  store,
		points: points,
		html:   NewHTMLBuilder(),
		log:    logger.Global().WithComponent("reports"),
	}
}

// Generate renders the daily chart, markdown and HTML report for the
// snapshot and stores all three under the day's archive folder. It
// returns the archive path of the HTML report.
func (g *Generator) Generate(ctx context.Context, snap *models.Snapshot, ts time.Time) (string, error) {
	if snap == nil || !snap.Valid {
		return "", fmt.Errorf("no valid snapshot to report on")
	}

	chartPNG, err := renderDailyChart(snap, g.points)
	if err != nil {
		return "", err
	}
	if err := g.store.Store(ctx, ts, "chart.png", chartPNG); err != nil {
		return "", fmt.Errorf("failed to store chart: %w", err)
	}

	markdown := g.buildMarkdown(snap, ts)
	if err := g.store.Store(ctx, ts, "report.md", []byte(markdown)); err != nil {
		return "", fmt.Errorf("failed to store markdown report: %w", err)
	}

	title := "Energy Report " + ts.UTC().Format("2006-01-02")
	page, err := g.html.BuildPage(title, markdown)
	if err != nil {
		return "", err
	}
	if err := g.store.Store(ctx, ts, "report.html", []byte(page)); err != nil {
		return "", fmt.Errorf("failed to store HTML report: %w", err)
	}

	htmlPath := ts.UTC().Format("2006/01/02") + "/report.html"
	g.log.Info("Report generated", map[string]interface{}{"path": htmlPath})
	return htmlPath, nil
}

// buildMarkdown renders the report body. The chart is referenced by
// its base name so it resolves next to the report inside the archive.
func (g *Generator) buildMarkdown(snap *models.Snapshot, ts time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Energy Report %s\n\n", ts.UTC().Format("2006-01-02"))

	b.WriteString("| Metric | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Battery level | %s |\n", models.FormatPercent(snap.BatteryPercent))
	fmt.Fprintf(&b, "| Generated today | %s |\n", models.FormatEnergy(snap.DailyGeneration))
	fmt.Fprintf(&b, "| Consumed today | %s |\n", models.FormatEnergy(snap.DailyConsumption))
	fmt.Fprintf(&b, "| Last update | %s |\n\n", snap.UpdatedAt)

	b.WriteString("![Daily energy profile](chart.png)\n\n")

	peakGen, peakGenHour := peak(snap.Generation)
	peakCon, peakConHour := peak(snap.Consumption)
	fmt.Fprintf(&b, "Peak generation %.1f at %02d:00, peak consumption %.1f at %02d:00.\n",
		peakGen, peakGenHour, peakCon, peakConHour)
	return b.String()
}

func peak(series []float64) (float64, int) {
	max, at := 0.0, 0
	for i, v := range series {
		if v > max {
			max, at = v, i
		}
	}
	return max, at
}
