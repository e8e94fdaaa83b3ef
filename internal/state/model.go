package state

import (
	"github.com/google/uuid"
)

// StickerFontSize is the text size stickers are drawn with, in canvas units.
// Export scaling comes from the surface transform, never from this value.
const StickerFontSize = 40

// stickerColor is the fill used for text stickers. Colour fonts ignore it.
const stickerColor = "#000000"

// Point is a canvas-space coordinate.
type Point struct{ X, Y float64 }

// Kind tags the variant of a drawable item.
type Kind string

const (
	KindStroke  Kind = "stroke"
	KindSticker Kind = "sticker"
)

// Item is anything the history can hold: a *Stroke or a *Sticker.
// The set is closed; use a type switch over those two.
type Item interface {
	ID() string
	Kind() Kind
	Render(s Surface, scale float64)

	item()
}

var (
	_ Item = (*Stroke)(nil)
	_ Item = (*Sticker)(nil)
)

// Stroke is a freehand polyline. Points may only be appended until the
// stroke is sealed.
type Stroke struct {
	id     string
	Points []Point
	Width  float64
	Color  string
	sealed bool
}

// NewStroke starts a stroke at (x, y).
func NewStroke(x, y, width float64, color string) *Stroke {
	return &Stroke{
		id:     uuid.NewString(),
		Points: []Point{{X: x, Y: y}},
		Width:  width,
		Color:  color,
	}
}

func (s *Stroke) ID() string   { return s.id }
func (s *Stroke) Kind() Kind   { return KindStroke }
func (s *Stroke) Sealed() bool { return s.sealed }
func (s *Stroke) item()        {}

// Extend appends a point. It reports false once the stroke is sealed.
func (s *Stroke) Extend(x, y float64) bool {
	if s.sealed {
		return false
	}
	s.Points = append(s.Points, Point{X: x, Y: y})
	return true
}

// Seal freezes the stroke.
func (s *Stroke) Seal() { s.sealed = true }

// Render draws the stroke as a connected polyline. Strokes with fewer than
// two points draw nothing. The width is given in canvas units; scale is
// accepted for the render contract but the surface transform does the work.
func (s *Stroke) Render(dst Surface, scale float64) {
	if len(s.Points) < 2 {
		return
	}
	dst.SetLineWidth(s.Width)
	dst.SetColor(s.Color)
	dst.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		dst.LineTo(p.X, p.Y)
	}
	dst.Stroke()
}

// Sticker is a glyph stamped at a single point.
type Sticker struct {
	id    string
	At    Point
	Glyph string
}

// NewSticker creates a sticker placement.
func NewSticker(x, y float64, glyph string) *Sticker {
	return &Sticker{
		id:    uuid.NewString(),
		At:    Point{X: x, Y: y},
		Glyph: glyph,
	}
}

func (s *Sticker) ID() string { return s.id }
func (s *Sticker) Kind() Kind { return KindSticker }
func (s *Sticker) item()      {}

// Render draws the glyph centred on the placement point.
func (s *Sticker) Render(dst Surface, scale float64) {
	dst.SetColor(stickerColor)
	dst.SetFontSize(StickerFontSize)
	dst.FillText(s.Glyph, s.At.X, s.At.Y)
}
