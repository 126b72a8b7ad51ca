package render

import (
	"reflect"
	"testing"

	"solixmon/internal/canvas"
	"solixmon/internal/models"
)

func fp(v float64) *float64 { return &v }

func sampleSnapshot(t *testing.T) *models.Snapshot {
	t.Helper()
	gen := make([]float64, 24)
	cons := make([]float64, 24)
	for i := range gen {
		gen[i] = float64(i * 10)
		cons[i] = float64(240 - i*10)
	}
	snap, ok := models.Apply(models.NewSnapshot(24), &models.Reading{
		BatteryPercent:   fp(78.4),
		DailyGeneration:  fp(4.21),
		DailyConsumption: fp(3.14),
		GenerationCurve:  gen,
		ConsumptionCurve: cons,
	}, 24)
	if !ok {
		t.Fatal("sample snapshot reported shape mismatch")
	}
	return snap
}

func contains(ops []string, want string) bool {
	for _, op := range ops {
		if op == want {
			return true
		}
	}
	return false
}

func TestDrawNumericRows(t *testing.T) {
	rec := canvas.NewRecorder(FrameWidth, FrameHeight)
	New(24).Draw(rec, sampleSnapshot(t))

	texts := rec.TextOps()
	for _, want := range []string{"78.4 %", "4.21 kWh", "3.14 kWh", "Battery:", "Generated:", "Consumed:"} {
		if !contains(texts, want) {
			t.Errorf("drawn text missing %q; got %v", want, texts)
		}
	}
}

func TestDrawUnknownValues(t *testing.T) {
	rec := canvas.NewRecorder(FrameWidth, FrameHeight)
	New(24).Draw(rec, models.NewSnapshot(24))

	texts := rec.TextOps()
	if !contains(texts, "-- %") || !contains(texts, "-- kWh") {
		t.Errorf("unknown values not rendered as placeholders; got %v", texts)
	}
	if !contains(texts, "Updated: --:--:--") {
		t.Errorf("timestamp placeholder missing; got %v", texts)
	}
}

func TestDrawIsIdempotent(t *testing.T) {
	snap := sampleSnapshot(t)
	r := New(24)

	first := canvas.NewRecorder(FrameWidth, FrameHeight)
	r.Draw(first, snap)
	second := canvas.NewRecorder(FrameWidth, FrameHeight)
	r.Draw(second, snap)

	if !reflect.DeepEqual(first.Ops, second.Ops) {
		t.Error("rendering the same snapshot twice produced different op sequences")
	}
}

func TestDrawHourLabels(t *testing.T) {
	rec := canvas.NewRecorder(FrameWidth, FrameHeight)
	New(24).Draw(rec, models.NewSnapshot(24))

	texts := rec.TextOps()
	for _, want := range []string{"00", "06", "12", "18", "24"} {
		if !contains(texts, want) {
			t.Errorf("hour label %q missing; got %v", want, texts)
		}
	}
}

func TestSeriesStaysInsideGraph(t *testing.T) {
	rec := canvas.NewRecorder(FrameWidth, FrameHeight)
	New(24).Draw(rec, sampleSnapshot(t))

	for _, op := range rec.Ops {
		if op.Kind != "line" {
			continue
		}
		if op.Color != canvas.ColorGeneration && op.Color != canvas.ColorConsumption {
			continue
		}
		for _, y := range []int{op.Y, op.Y1} {
			if y < graphY || y > graphY+graphHeight {
				t.Fatalf("series line leaves the plot area: %v", op)
			}
		}
		for _, x := range []int{op.X, op.X1} {
			if x < graphX || x > graphX+graphWidth {
				t.Fatalf("series line leaves the plot area: %v", op)
			}
		}
	}
}

func TestDrawMessage(t *testing.T) {
	rec := canvas.NewRecorder(FrameWidth, FrameHeight)
	New(24).DrawMessage(rec, "Data fetch error")

	if len(rec.Ops) != 2 {
		t.Fatalf("expected clear + text, got %d ops", len(rec.Ops))
	}
	if rec.Ops[0].Kind != "clear" {
		t.Errorf("first op = %s, want clear", rec.Ops[0].Kind)
	}
	txt := rec.Ops[1]
	if txt.Text != "Data fetch error" || txt.X != FrameWidth/2 || txt.Y != FrameHeight/2 {
		t.Errorf("message not centered: %v", txt)
	}
}

func TestHitsButton(t *testing.T) {
	x, y, w, h := ButtonBounds()
	inside := canvas.Point{X: x + w/2, Y: y + h/2}
	outside := canvas.Point{X: x - 1, Y: y}

	if !HitsButton(inside) {
		t.Error("center of button not detected as hit")
	}
	if HitsButton(outside) {
		t.Error("point outside button detected as hit")
	}
	if !HitsButton(canvas.Point{X: x, Y: y}) || !HitsButton(canvas.Point{X: x + w, Y: y + h}) {
		t.Error("button corners should count as hits")
	}
}
