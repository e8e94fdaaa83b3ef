// Package raster implements the board's drawing surface on top of the
// gogpu/gg software rasterizer.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"Sketchpad/internal/state"
)

// ErrInvalidSize is returned for surfaces without any pixels.
var ErrInvalidSize = errors.New("raster: invalid surface size")

var _ state.Surface = (*Surface)(nil)

// Surface is a state.Surface backed by a gg.Context.
type Surface struct {
	dc        *gg.Context
	fonts     *Fonts
	fontSize  float64
	scale     float64
	lineWidth float64

	// current subpath, to catch polylines that never leave their start
	start     state.Point
	segments  int
	collapsed bool
}

// New creates a transparent w×h surface. Text is drawn with fonts.
func New(w, h int, fonts *Fonts) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if fonts == nil {
		return nil, errors.New("raster: no fonts")
	}
	dc := gg.NewContext(w, h)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Surface{
		dc:        dc,
		fonts:     fonts,
		fontSize:  state.StickerFontSize,
		scale:     1,
		lineWidth: 1,
	}, nil
}

func (s *Surface) Width() int  { return s.dc.Width() }
func (s *Surface) Height() int { return s.dc.Height() }

// Clear makes every pixel transparent. The transform is kept.
func (s *Surface) Clear() {
	s.segments = 0
	s.dc.ClearPath()
	s.dc.Clear()
}

// Scale multiplies the transform uniformly by k.
func (s *Surface) Scale(k float64) {
	s.dc.Scale(k, k)
	s.scale *= k
}

func (s *Surface) SetColor(hex string)      { s.dc.SetHexColor(hex) }
func (s *Surface) SetFontSize(size float64) { s.fontSize = size }

func (s *Surface) SetLineWidth(w float64) {
	s.lineWidth = w
	s.dc.SetLineWidth(w)
}

func (s *Surface) MoveTo(x, y float64) {
	s.start = state.Point{X: x, Y: y}
	s.segments = 0
	s.collapsed = true
	s.dc.MoveTo(x, y)
}

func (s *Surface) LineTo(x, y float64) {
	s.segments++
	if (state.Point{X: x, Y: y}) != s.start {
		s.collapsed = false
	}
	s.dc.LineTo(x, y)
}

func (s *Surface) DrawCircle(x, y, r float64) {
	s.segments = 0
	s.dc.DrawCircle(x, y, r)
}

// Stroke strokes the current path. gg drops zero-length segments, so a
// polyline that never leaves its start point is painted as a round dot of
// the line width, matching a round-capped canvas stroke.
func (s *Surface) Stroke() {
	if s.segments > 0 && s.collapsed {
		s.segments = 0
		s.dc.ClearPath()
		s.dc.DrawCircle(s.start.X, s.start.Y, s.lineWidth/2)
		s.Fill()
		return
	}
	s.segments = 0
	if err := s.dc.Stroke(); err != nil {
		state.Logger().Warn("raster stroke failed", "err", err)
	}
}

func (s *Surface) Fill() {
	if err := s.dc.Fill(); err != nil {
		state.Logger().Warn("raster fill failed", "err", err)
	}
}

// FillText draws str centred on (x, y). The glyphs are rasterised at the
// transformed size so scaled exports get sharp text instead of stretched
// bitmaps.
func (s *Surface) FillText(str string, x, y float64) {
	face, err := s.fonts.Face(s.fontSize * s.scale)
	if err != nil {
		state.Logger().Warn("raster font face failed", "err", err)
		return
	}
	tx, ty := s.dc.TransformPoint(x, y)

	s.dc.Push()
	defer s.dc.Pop()
	s.dc.Identity()
	s.dc.SetFont(face)
	s.dc.DrawStringAnchored(str, tx, ty, 0.5, 0.5)
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Close releases the rendering context.
func (s *Surface) Close() error {
	return s.dc.Close()
}
