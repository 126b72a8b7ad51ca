package render

import "math"

// niceLadder holds the axis ceilings the chart may pick from, ascending.
// Using a fixed ladder keeps the axis labels round and leaves headroom so
// the plotted maximum never touches the frame top exactly.
var niceLadder = []float64{10, 20, 25, 50, 100, 200, 250, 500, 1000, 2000, 5000, 10000, 20000, 25000, 50000}

// GridLines is the number of horizontal grid lines, including zero
const GridLines = 5

// AxisMax returns the axis ceiling for the given series: the smallest
// ladder entry that covers the data maximum. Values beyond the ladder
// fall back to the data maximum rounded up at its own magnitude.
// All-zero or empty input resolves to the smallest ladder entry.
func AxisMax(series ...[]float64) float64 {
	var dataMax float64
	for _, s := range series {
		for _, v := range s {
			if v > dataMax {
				dataMax = v
			}
		}
	}
	if dataMax <= 0 {
		return niceLadder[0]
	}
	for _, c := range niceLadder {
		if c >= dataMax {
			return c
		}
	}
	base := math.Pow(10, math.Floor(math.Log10(dataMax)))
	return math.Ceil(dataMax/base) * base
}

// GridValue returns the data value at horizontal grid line i, where line 0
// is the bottom of the graph and line GridLines-1 the axis ceiling
func GridValue(i int, axisMax float64) float64 {
	return float64(i) * axisMax / float64(GridLines-1)
}
