package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"Sketchpad/internal/config"
)

// palette holds the quick-pick marker colours.
var palette = []string{"#000000", "#ff0000", "#00ff00", "#0000ff", "#ffff00"}

// --- Colour swatch ---
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
	rect     *canvas.Rectangle
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(hexColor(s.Hex))
	s.rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

// SetHex repaints the swatch with a new colour.
func (s *colorSwatch) SetHex(hex string) {
	s.Hex = hex
	if s.rect != nil {
		s.rect.FillColor = hexColor(hex)
		s.rect.Refresh()
	}
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

// hexColor converts a #rrggbb string, falling back to black.
func hexColor(hex string) color.Color {
	if !config.IsHexColor(hex) {
		return color.Black
	}
	return gg.Hex(hex).Color()
}

// Toolbar groups the buttons acting on a board widget.
type Toolbar struct {
	board *BoardWidget
	cfg   *config.Config
	win   fyne.Window

	undo, redo  *widget.Button
	thin, thick *widget.Button
	width       *widget.Slider
	current     *colorSwatch
	status      *widget.Label
}

// NewToolbar builds the toolbar for board. win parents the dialogs.
func NewToolbar(board *BoardWidget, cfg *config.Config, win fyne.Window) *Toolbar {
	t := &Toolbar{board: board, cfg: cfg, win: win, status: widget.NewLabel("Ready")}
	t.undo = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), t.Undo)
	t.redo = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), t.Redo)
	t.thin = widget.NewButton("Thin Marker", func() { t.SetWidth(cfg.ThinWidth) })
	t.thick = widget.NewButton("Thick Marker", func() { t.SetWidth(cfg.ThickWidth) })
	t.current = newColorSwatch(board.Board.Tools.Color, func(string) { t.RandomColor() })
	// the range always covers both presets so SetValue never clamps them
	t.width = widget.NewSlider(min(1, cfg.ThinWidth), max(50, cfg.ThickWidth, cfg.ThinWidth))
	t.width.SetValue(board.Board.Tools.Width)
	t.width.OnChanged = t.SetWidth
	board.OnChanged = t.sync
	t.sync()
	t.markWidth()
	return t
}

// Object lays the toolbar out as rows above the board.
func (t *Toolbar) Object() fyne.CanvasObject {
	primary := container.NewHBox(
		widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), t.Clear),
		t.undo,
		t.redo,
	)
	secondary := container.NewHBox(
		widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), t.ExportPNG),
		widget.NewButton("Export PDF", t.ExportPDF),
		t.thin,
		t.thick,
	)

	swatches := []fyne.CanvasObject{widget.NewLabel("Color:")}
	for _, hex := range palette {
		swatches = append(swatches, newColorSwatch(hex, t.SetColor))
	}
	swatches = append(swatches,
		widget.NewSeparator(),
		widget.NewButton("Random Color", t.RandomColor),
		t.current,
	)

	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.width)

	stickers := []fyne.CanvasObject{}
	for _, glyph := range t.cfg.Stickers {
		glyph := glyph
		stickers = append(stickers, widget.NewButton(glyph, func() { t.SelectSticker(glyph) }))
	}
	stickers = append(stickers, widget.NewButton("Add Custom Sticker", t.AddCustomSticker))

	return container.NewVBox(
		primary,
		secondary,
		container.NewHBox(append(swatches, widget.NewLabel("Size:"), sliderBox)...),
		container.NewHBox(stickers...),
		t.status,
	)
}

func (t *Toolbar) Undo() {
	if t.board.Board.Undo() {
		t.setStatus("Undone")
	}
}

func (t *Toolbar) Redo() {
	if t.board.Board.Redo() {
		t.setStatus("Redone")
	}
}

func (t *Toolbar) Clear() {
	t.board.Board.ClearAll()
	t.setStatus("Cleared")
}

// SetWidth changes the marker width and moves the slider along with it.
func (t *Toolbar) SetWidth(w float64) {
	t.board.Board.SetToolWidth(w)
	// SetValue fires OnChanged, which lands here again with an equal value.
	if t.width.Value != w {
		t.width.SetValue(w)
	}
	t.markWidth()
}

func (t *Toolbar) SetColor(hex string) {
	t.board.Board.SetToolColor(hex)
	t.current.SetHex(hex)
}

func (t *Toolbar) RandomColor() {
	t.current.SetHex(t.board.Board.RandomizeColor())
}

func (t *Toolbar) SelectSticker(glyph string) {
	t.board.Board.SetPendingSticker(glyph)
	t.setStatus("Click to place " + glyph)
}

// AddCustomSticker asks for a glyph; empty input is ignored.
func (t *Toolbar) AddCustomSticker() {
	entry := widget.NewEntry()
	entry.SetText("😀")
	items := []*widget.FormItem{widget.NewFormItem("Sticker", entry)}
	dialog.ShowForm("Enter a new sticker (emoji or text)", "Add", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		glyph := strings.TrimSpace(entry.Text)
		if glyph == "" {
			return
		}
		t.SelectSticker(glyph)
	}, t.win)
}

// sync refreshes button state after every board repaint.
func (t *Toolbar) sync() {
	h := t.board.Board.History
	if h.CanUndo() {
		t.undo.Enable()
	} else {
		t.undo.Disable()
	}
	if h.CanRedo() {
		t.redo.Enable()
	} else {
		t.redo.Disable()
	}
}

// markWidth highlights the preset matching the current width.
func (t *Toolbar) markWidth() {
	w := t.board.Board.Tools.Width
	t.thin.Importance = widget.MediumImportance
	t.thick.Importance = widget.MediumImportance
	switch w {
	case t.cfg.ThinWidth:
		t.thin.Importance = widget.HighImportance
	case t.cfg.ThickWidth:
		t.thick.Importance = widget.HighImportance
	}
	t.thin.Refresh()
	t.thick.Refresh()
}

func (t *Toolbar) setStatus(text string) {
	t.status.SetText(text)
}
