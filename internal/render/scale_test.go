package render

import (
	"math"
	"testing"
)

func TestAxisMaxLadder(t *testing.T) {
	tests := []struct {
		name     string
		series   [][]float64
		expected float64
	}{
		{"all zero", [][]float64{{0, 0, 0}}, 10},
		{"empty series", [][]float64{{}}, 10},
		{"no series", nil, 10},
		{"within smallest entry", [][]float64{{3, 7, 2}}, 10},
		{"exactly a ladder entry", [][]float64{{25}}, 25},
		{"between entries", [][]float64{{30, 45, 12}}, 50},
		{"joint max across series", [][]float64{{30, 45}, {180, 12}}, 200},
		{"just above an entry", [][]float64{{201}}, 250},
		{"top ladder entry", [][]float64{{48000}}, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AxisMax(tt.series...); got != tt.expected {
				t.Errorf("AxisMax(%v) = %v, want %v", tt.series, got, tt.expected)
			}
		})
	}
}

func TestAxisMaxBeyondLadder(t *testing.T) {
	// 63000 -> base 10000 -> ceil(6.3)*10000 = 70000
	if got := AxisMax([]float64{63000}); got != 70000 {
		t.Errorf("AxisMax(63000) = %v, want 70000", got)
	}
	// 123456 -> base 100000 -> 200000
	if got := AxisMax([]float64{123456}); got != 200000 {
		t.Errorf("AxisMax(123456) = %v, want 200000", got)
	}
}

func TestAxisMaxCoversData(t *testing.T) {
	// The ceiling must never be below the data maximum.
	inputs := [][]float64{
		{0.001}, {9.99}, {10.01}, {24.999}, {999}, {4999.5}, {50001}, {7e6},
	}
	for _, in := range inputs {
		max := in[0]
		if got := AxisMax(in); got < max {
			t.Errorf("AxisMax(%v) = %v, below data max", in, got)
		}
	}
}

func TestGridValue(t *testing.T) {
	if got := GridValue(0, 50); got != 0 {
		t.Errorf("GridValue(0, 50) = %v, want 0", got)
	}
	if got := GridValue(2, 50); got != 25 {
		t.Errorf("GridValue(2, 50) = %v, want 25", got)
	}
	if got := GridValue(GridLines-1, 50); got != 50 {
		t.Errorf("GridValue(top, 50) = %v, want 50", got)
	}
	if got := GridValue(1, 10); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("GridValue(1, 10) = %v, want 2.5", got)
	}
}
