package models

import (
	"fmt"
	"math"
)

// DefaultPointsPerDay is the number of hourly samples in a daily curve
const DefaultPointsPerDay = 24

// PlaceholderTime is shown until the first successful timestamped fetch
const PlaceholderTime = "--:--:--"

// Snapshot is one complete daily energy state: hourly generation and
// consumption power plus summary values. Scalars use NaN for "unknown".
// A snapshot is replaced wholesale on a successful fetch and never
// partially mutated; a failed fetch leaves the previous snapshot in place.
type Snapshot struct {
	Generation       []float64
	Consumption      []float64
	BatteryPercent   float64
	DailyGeneration  float64
	DailyConsumption float64
	UpdatedAt        string
	Valid            bool
}

// NewSnapshot returns the initial all-unknown snapshot with flat curves
func NewSnapshot(points int) *Snapshot {
	return &Snapshot{
		Generation:       make([]float64, points),
		Consumption:      make([]float64, points),
		BatteryPercent:   math.NaN(),
		DailyGeneration:  math.NaN(),
		DailyConsumption: math.NaN(),
		UpdatedAt:        PlaceholderTime,
	}
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	c.Generation = append([]float64(nil), s.Generation...)
	c.Consumption = append([]float64(nil), s.Consumption...)
	return &c
}

// IsUnknown reports whether a scalar carries no value
func IsUnknown(v float64) bool {
	return math.IsNaN(v)
}

// Reading is one decoded source payload before it is merged into a
// snapshot. Pointer scalars distinguish absent fields from zero values.
type Reading struct {
	BatteryPercent   *float64  `json:"battery_percent"`
	DailyGeneration  *float64  `json:"daily_generation"`
	DailyConsumption *float64  `json:"daily_consumption"`
	GenerationCurve  []float64 `json:"generation_curve"`
	ConsumptionCurve []float64 `json:"consumption_curve"`
}

// CurvesValid reports whether both curves carry exactly points samples
func (r *Reading) CurvesValid(points int) bool {
	return len(r.GenerationCurve) == points && len(r.ConsumptionCurve) == points
}

// Apply builds the next snapshot from the previous one and a fresh
// reading. Scalars present in the reading are always applied. Curves are
// taken from the reading only if both have the expected length; otherwise
// the previous curves are retained and ok is false so the caller can
// record the mismatch.
func Apply(prev *Snapshot, r *Reading, points int) (next *Snapshot, ok bool) {
	next = prev.Clone()
	next.Valid = true

	next.BatteryPercent = scalar(r.BatteryPercent)
	next.DailyGeneration = scalar(r.DailyGeneration)
	next.DailyConsumption = scalar(r.DailyConsumption)

	ok = r.CurvesValid(points)
	if ok {
		next.Generation = append([]float64(nil), r.GenerationCurve...)
		next.Consumption = append([]float64(nil), r.ConsumptionCurve...)
	}
	return next, ok
}

func scalar(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// FormatPercent formats a battery percentage for display, "--" if unknown
func FormatPercent(v float64) string {
	if IsUnknown(v) {
		return "-- %"
	}
	return fmt.Sprintf("%.1f %%", v)
}

// FormatEnergy formats a daily energy value in kWh, "--" if unknown
func FormatEnergy(v float64) string {
	if IsUnknown(v) {
		return "-- kWh"
	}
	return fmt.Sprintf("%.2f kWh", v)
}

// View is the JSON-safe projection of a snapshot served over HTTP.
// Scalars are pre-formatted strings because NaN has no JSON encoding.
type View struct {
	Generation       []float64 `json:"generation"`
	Consumption      []float64 `json:"consumption"`
	BatteryPercent   string    `json:"battery_percent"`
	DailyGeneration  string    `json:"daily_generation"`
	DailyConsumption string    `json:"daily_consumption"`
	UpdatedAt        string    `json:"updated_at"`
	Valid            bool      `json:"valid"`
}

// View returns the JSON-safe projection of the snapshot
func (s *Snapshot) View() View {
	return View{
		Generation:       append([]float64(nil), s.Generation...),
		Consumption:      append([]float64(nil), s.Consumption...),
		BatteryPercent:   FormatPercent(s.BatteryPercent),
		DailyGeneration:  FormatEnergy(s.DailyGeneration),
		DailyConsumption: FormatEnergy(s.DailyConsumption),
		UpdatedAt:        s.UpdatedAt,
		Valid:            s.Valid,
	}
}
