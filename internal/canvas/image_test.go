package canvas

import (
	"bytes"
	"image/png"
	"testing"
)

func TestImageSurfaceEncodePNG(t *testing.T) {
	s := NewImageSurface(320, 240)
	s.Clear(ColorBackground)
	s.FillRect(10, 10, 50, 20, ColorButton)
	s.StrokeRect(10, 10, 50, 20, ColorButtonBorder)
	s.Line(0, 0, 319, 239, ColorGeneration)
	s.Text("Refresh", 35, 20, AlignCenter, ColorText)

	data, err := s.EncodePNG()
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 240 {
		t.Errorf("decoded size = %dx%d, want 320x240", bounds.Dx(), bounds.Dy())
	}
}

func TestPaletteCoversAllColors(t *testing.T) {
	colors := []Color{
		ColorBackground, ColorFrame, ColorGrid, ColorGeneration,
		ColorConsumption, ColorText, ColorMuted, ColorButton, ColorButtonBorder,
	}
	for _, c := range colors {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette missing entry for color %d", c)
		}
	}
}
