package state

// Board is the whole application state of one sketchpad: the history, the
// tool configuration, the stroke being drawn and the cursor preview.
//
// Input handlers call the pointer methods; every change that needs a repaint
// ends in a synchronous call to OnRedraw, whose listener is expected to call
// Redraw with its surface.
type Board struct {
	History *History
	Tools   Tools

	current *Stroke
	preview preview
	pointer Point

	OnRedraw func()
}

// NewBoard creates an empty board using tools as the initial configuration.
func NewBoard(tools Tools) *Board {
	if tools.Color == "" {
		tools.Color = DefaultColor
	}
	b := &Board{
		History: NewHistory(),
		Tools:   tools,
	}
	b.History.OnChange = b.redraw
	return b
}

// Drawing reports whether a stroke is in progress.
func (b *Board) Drawing() bool { return b.current != nil }

// Current returns the stroke in progress, or nil.
func (b *Board) Current() *Stroke { return b.current }

// BeginStroke starts a new stroke and hides the cursor preview. A stroke
// already in progress is abandoned.
func (b *Board) BeginStroke(x, y, width float64, color string) {
	b.current = NewStroke(x, y, width, color)
	b.preview = preview{}
	b.pointer = Point{X: x, Y: y}
	b.redraw()
}

// ExtendStroke appends a point to the stroke in progress.
func (b *Board) ExtendStroke(x, y float64) {
	b.pointer = Point{X: x, Y: y}
	if b.current == nil || !b.current.Extend(x, y) {
		return
	}
	b.redraw()
}

// SealStroke commits the stroke in progress. Committing is what repaints.
func (b *Board) SealStroke() {
	if b.current == nil {
		return
	}
	s := b.current
	b.current = nil
	s.Seal()
	b.History.Append(s)
}

// PlaceSticker commits a sticker at (x, y).
func (b *Board) PlaceSticker(x, y float64, glyph string) {
	b.pointer = Point{X: x, Y: y}
	b.History.Append(NewSticker(x, y, glyph))
}

func (b *Board) Undo() bool { return b.History.Undo() }
func (b *Board) Redo() bool { return b.History.Redo() }

// ClearAll drops every committed and undone item.
func (b *Board) ClearAll() { b.History.Clear() }

// SetToolWidth changes the marker width, refreshing a visible tool preview.
func (b *Board) SetToolWidth(w float64) {
	b.Tools.Width = w
	if b.preview.kind == previewTool {
		b.redraw()
	}
}

// SetToolColor changes the marker colour, refreshing a visible tool preview.
func (b *Board) SetToolColor(hex string) {
	b.Tools.Color = hex
	if b.preview.kind == previewTool {
		b.redraw()
	}
}

// RandomizeColor picks a random marker colour and returns it.
func (b *Board) RandomizeColor() string {
	c := RandomColor()
	b.SetToolColor(c)
	return c
}

// SetPendingSticker arms glyph for the next pointer-down. An empty glyph
// returns to the marker. The sticker preview replaces any tool preview and
// appears at the last known pointer position. While a stroke is in progress
// the glyph is only armed; its preview shows on the next idle move.
func (b *Board) SetPendingSticker(glyph string) {
	b.Tools.Sticker = glyph
	if b.current != nil {
		return
	}
	if glyph == "" {
		if b.preview.kind == previewSticker {
			b.preview = preview{}
			b.redraw()
		}
		return
	}
	b.preview = preview{kind: previewSticker, at: b.pointer, glyph: glyph}
	b.redraw()
}

// PointerDown places the pending sticker, or starts a stroke with the
// current tools.
func (b *Board) PointerDown(x, y float64) {
	if b.current != nil {
		return
	}
	if glyph := b.Tools.Sticker; glyph != "" {
		b.Tools.Sticker = ""
		b.preview = preview{}
		b.PlaceSticker(x, y, glyph)
		return
	}
	b.BeginStroke(x, y, b.Tools.Width, b.Tools.Color)
}

// PointerMove grows the stroke in progress, or moves the cursor preview.
func (b *Board) PointerMove(x, y float64) {
	if b.current != nil {
		b.ExtendStroke(x, y)
		return
	}
	b.pointer = Point{X: x, Y: y}
	if b.Tools.Sticker != "" {
		b.preview = preview{kind: previewSticker, at: b.pointer, glyph: b.Tools.Sticker}
	} else {
		b.preview = preview{kind: previewTool, at: b.pointer}
	}
	b.redraw()
}

// PointerUp seals the stroke in progress, if any.
func (b *Board) PointerUp() {
	b.SealStroke()
}

// PointerLeave hides the cursor preview.
func (b *Board) PointerLeave() {
	if b.preview.kind == previewNone {
		return
	}
	b.preview = preview{}
	b.redraw()
}

// Redraw repaints s from scratch: committed items in order, then the stroke
// in progress, then at most one preview on top.
func (b *Board) Redraw(s Surface) {
	s.Clear()
	for _, item := range b.History.Items() {
		item.Render(s, 1)
	}
	if b.current != nil {
		b.current.Render(s, 1)
		return
	}
	b.preview.render(s, b.Tools)
}

func (b *Board) redraw() {
	if b.OnRedraw != nil {
		b.OnRedraw()
	}
}
