package state

type previewKind int

const (
	previewNone previewKind = iota
	previewTool
	previewSticker
)

// toolPreviewOutline is the outline colour of the cursor circle.
const toolPreviewOutline = "#ffffff"

// preview is the single cursor-following indicator. Holding one value keeps
// the tool and sticker previews mutually exclusive.
type preview struct {
	kind  previewKind
	at    Point
	glyph string
}

func (p preview) render(s Surface, tools Tools) {
	switch p.kind {
	case previewTool:
		s.DrawCircle(p.at.X, p.at.Y, tools.Width/2)
		s.SetColor(tools.Color)
		s.Fill()
		s.DrawCircle(p.at.X, p.at.Y, tools.Width/2)
		s.SetLineWidth(1)
		s.SetColor(toolPreviewOutline)
		s.Stroke()
	case previewSticker:
		s.SetColor(stickerColor)
		s.SetFontSize(StickerFontSize)
		s.FillText(p.glyph, p.at.X, p.at.Y)
	}
}
