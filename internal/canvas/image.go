package canvas

import (
	"bytes"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// palette maps symbolic colors to the dark TFT-style theme
var palette = map[Color]color.RGBA{
	ColorBackground:   {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	ColorFrame:        {R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
	ColorGrid:         {R: 0x40, G: 0x40, B: 0x40, A: 0xff},
	ColorGeneration:   {R: 0x00, G: 0xe6, B: 0x4d, A: 0xff},
	ColorConsumption:  {R: 0xff, G: 0x45, B: 0x45, A: 0xff},
	ColorText:         {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ColorMuted:        {R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff},
	ColorButton:       {R: 0x30, G: 0x30, B: 0x30, A: 0xff},
	ColorButtonBorder: {R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
}

// strokeWidth gives the generation series a heavier line than consumption
var strokeWidth = map[Color]float64{
	ColorGeneration: 2,
}

// ImageSurface renders drawing operations into an in-memory RGBA image
type ImageSurface struct {
	dc *gg.Context
	w  int
	h  int
}

// NewImageSurface creates an image surface of the given pixel size
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{
		dc: gg.NewContext(w, h),
		w:  w,
		h:  h,
	}
}

// Size returns the surface dimensions in pixels
func (s *ImageSurface) Size() (int, int) {
	return s.w, s.h
}

// Clear fills the whole surface with the given color
func (s *ImageSurface) Clear(c Color) {
	s.dc.SetColor(palette[c])
	s.dc.Clear()
}

// FillRect draws a filled rectangle
func (s *ImageSurface) FillRect(x, y, w, h int, c Color) {
	s.dc.SetColor(palette[c])
	s.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	s.dc.Fill()
}

// StrokeRect draws a rectangle outline
func (s *ImageSurface) StrokeRect(x, y, w, h int, c Color) {
	s.dc.SetColor(palette[c])
	s.dc.SetLineWidth(1)
	s.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	s.dc.Stroke()
}

// Line draws a straight line segment
func (s *ImageSurface) Line(x0, y0, x1, y1 int, c Color) {
	width := strokeWidth[c]
	if width == 0 {
		width = 1
	}
	s.dc.SetColor(palette[c])
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	s.dc.Stroke()
}

// Text draws a string anchored at (x, y) according to align
func (s *ImageSurface) Text(str string, x, y int, align Align, c Color) {
	var ax float64
	switch align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	s.dc.SetColor(palette[c])
	s.dc.DrawStringAnchored(str, float64(x), float64(y), ax, 0.5)
}

// Image returns the rendered image
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG returns the rendered frame as PNG bytes
func (s *ImageSurface) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
