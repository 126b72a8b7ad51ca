package models

import (
	"encoding/json"
	"testing"
)

func fp(v float64) *float64 { return &v }

func curve(points int, base float64) []float64 {
	c := make([]float64, points)
	for i := range c {
		c[i] = base + float64(i)
	}
	return c
}

func TestNewSnapshot(t *testing.T) {
	s := NewSnapshot(24)

	if len(s.Generation) != 24 || len(s.Consumption) != 24 {
		t.Fatalf("curve lengths = %d/%d, want 24/24", len(s.Generation), len(s.Consumption))
	}
	if !IsUnknown(s.BatteryPercent) || !IsUnknown(s.DailyGeneration) || !IsUnknown(s.DailyConsumption) {
		t.Error("initial scalars should be unknown")
	}
	if s.UpdatedAt != PlaceholderTime {
		t.Errorf("UpdatedAt = %q, want %q", s.UpdatedAt, PlaceholderTime)
	}
	if s.Valid {
		t.Error("initial snapshot should not be valid")
	}
}

func TestApplyFullReading(t *testing.T) {
	prev := NewSnapshot(24)
	r := &Reading{
		BatteryPercent:   fp(78.4),
		DailyGeneration:  fp(4.21),
		DailyConsumption: fp(3.14),
		GenerationCurve:  curve(24, 100),
		ConsumptionCurve: curve(24, 50),
	}

	next, ok := Apply(prev, r, 24)
	if !ok {
		t.Fatal("Apply reported shape mismatch for well-formed curves")
	}
	if next.BatteryPercent != 78.4 {
		t.Errorf("BatteryPercent = %v, want 78.4", next.BatteryPercent)
	}
	if next.Generation[5] != 105 || next.Consumption[5] != 55 {
		t.Errorf("curves not applied: gen[5]=%v cons[5]=%v", next.Generation[5], next.Consumption[5])
	}
	if !next.Valid {
		t.Error("snapshot should be valid after a successful apply")
	}
	// prev must be untouched
	if prev.Generation[5] != 0 || prev.Valid {
		t.Error("Apply mutated the previous snapshot")
	}
}

func TestApplyShapeMismatchRetainsCurves(t *testing.T) {
	prev := NewSnapshot(24)
	first := &Reading{
		GenerationCurve:  curve(24, 10),
		ConsumptionCurve: curve(24, 20),
	}
	withCurves, _ := Apply(prev, first, 24)

	// 24-length generation but 23-length consumption: scalars applied,
	// curves retained from the prior snapshot.
	short := &Reading{
		BatteryPercent:   fp(55.0),
		DailyGeneration:  fp(1.5),
		GenerationCurve:  curve(24, 300),
		ConsumptionCurve: curve(23, 400),
	}
	next, ok := Apply(withCurves, short, 24)
	if ok {
		t.Fatal("Apply did not report shape mismatch")
	}
	if next.BatteryPercent != 55.0 {
		t.Errorf("scalar not applied on mismatch: %v", next.BatteryPercent)
	}
	if next.Generation[0] != 10 || next.Consumption[0] != 20 {
		t.Errorf("curves overwritten on mismatch: gen[0]=%v cons[0]=%v", next.Generation[0], next.Consumption[0])
	}
	if !IsUnknown(next.DailyConsumption) {
		t.Error("absent scalar should be unknown")
	}
}

func TestReadingDecode(t *testing.T) {
	body := `{"battery_percent": 80.3, "daily_generation": 3.45, "daily_consumption": 2.10,
		"generation_curve": [1,2,3], "consumption_curve": [4,5,6]}`

	var r Reading
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if r.BatteryPercent == nil || *r.BatteryPercent != 80.3 {
		t.Errorf("battery_percent = %v", r.BatteryPercent)
	}
	if r.CurvesValid(24) {
		t.Error("3-sample curves reported as valid for 24 points")
	}
	if !r.CurvesValid(3) {
		t.Error("3-sample curves reported invalid for 3 points")
	}
}

func TestFormatters(t *testing.T) {
	s := NewSnapshot(24)
	if got := FormatPercent(s.BatteryPercent); got != "-- %" {
		t.Errorf("FormatPercent(unknown) = %q, want \"-- %%\"", got)
	}
	if got := FormatEnergy(s.DailyGeneration); got != "-- kWh" {
		t.Errorf("FormatEnergy(unknown) = %q, want \"-- kWh\"", got)
	}
	if got := FormatPercent(78.4); got != "78.4 %" {
		t.Errorf("FormatPercent(78.4) = %q, want \"78.4 %%\"", got)
	}
	if got := FormatEnergy(4.21); got != "4.21 kWh" {
		t.Errorf("FormatEnergy(4.21) = %q, want \"4.21 kWh\"", got)
	}
	if got := FormatEnergy(3.14); got != "3.14 kWh" {
		t.Errorf("FormatEnergy(3.14) = %q, want \"3.14 kWh\"", got)
	}
}

func TestViewIsJSONSafe(t *testing.T) {
	s := NewSnapshot(24)
	v := s.View()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("view of all-unknown snapshot not marshalable: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if decoded["battery_percent"] != "-- %" {
		t.Errorf("battery_percent = %v", decoded["battery_percent"])
	}
}
