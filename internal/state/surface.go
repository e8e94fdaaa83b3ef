package state

import "image"

// Surface is the 2D drawing target the board paints onto. It mirrors the
// small subset of an HTML canvas context that strokes and stickers need.
//
// Scale multiplies the current transform; it never touches stored
// coordinates, so items always render in canvas space.
type Surface interface {
	Width() int
	Height() int

	// Clear resets every pixel to transparent.
	Clear()
	Scale(k float64)

	SetLineWidth(w float64)
	SetColor(hex string)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	Fill()
	DrawCircle(x, y, r float64)

	// SetFontSize selects the text size in canvas units.
	SetFontSize(size float64)
	// FillText draws s centred horizontally and vertically on (x, y).
	FillText(s string, x, y float64)

	Image() image.Image
}
