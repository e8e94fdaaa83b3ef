package state

import (
	"fmt"
	"image"
	"strings"
)

// recorder is a Surface that logs every call instead of drawing.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Width() int                      { return 256 }
func (r *recorder) Height() int                     { return 256 }
func (r *recorder) Clear()                          { r.add("clear") }
func (r *recorder) Scale(k float64)                 { r.add("scale %g", k) }
func (r *recorder) SetLineWidth(w float64)          { r.add("width %g", w) }
func (r *recorder) SetColor(hex string)             { r.add("color %s", hex) }
func (r *recorder) MoveTo(x, y float64)             { r.add("move %g,%g", x, y) }
func (r *recorder) LineTo(x, y float64)             { r.add("line %g,%g", x, y) }
func (r *recorder) Stroke()                         { r.add("stroke") }
func (r *recorder) Fill()                           { r.add("fill") }
func (r *recorder) DrawCircle(x, y, rad float64)    { r.add("circle %g,%g r%g", x, y, rad) }
func (r *recorder) SetFontSize(size float64)        { r.add("font %g", size) }
func (r *recorder) FillText(s string, x, y float64) { r.add("text %s %g,%g", s, x, y) }
func (r *recorder) Image() image.Image              { return image.NewRGBA(image.Rect(0, 0, 256, 256)) }

func (r *recorder) String() string { return strings.Join(r.calls, "; ") }

func (r *recorder) reset() { r.calls = nil }
