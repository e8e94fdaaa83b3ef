package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"Sketchpad/internal/raster"
	"Sketchpad/internal/state"
)

// BoardWidget shows a state.Board and feeds it pointer events. All board
// access happens on the fyne event goroutine.
type BoardWidget struct {
	widget.BaseWidget

	Board   *state.Board
	surface *raster.Surface
	fonts   *raster.Fonts
	size    float32 // canvas edge in canvas units
	view    *canvas.Image

	// OnChanged runs after each repaint, e.g. to refresh undo/redo buttons.
	OnChanged func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget creates a widget drawing board onto a size×size surface.
// It fails when no drawing surface can be created.
func NewBoardWidget(board *state.Board, size int, fonts *raster.Fonts) (*BoardWidget, error) {
	s, err := raster.New(size, size, fonts)
	if err != nil {
		return nil, fmt.Errorf("create drawing surface: %w", err)
	}
	b := &BoardWidget{
		Board:   board,
		surface: s,
		fonts:   fonts,
		size:    float32(size),
	}
	b.view = canvas.NewImageFromImage(s.Image())
	b.view.FillMode = canvas.ImageFillStretch
	b.view.ScaleMode = canvas.ImageScaleFastest
	board.OnRedraw = b.repaint
	b.ExtendBaseWidget(b)
	b.repaint()
	return b, nil
}

func (b *BoardWidget) repaint() {
	b.Board.Redraw(b.surface)
	b.view.Image = b.surface.Image()
	b.view.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

// Close releases the drawing surface.
func (b *BoardWidget) Close() error {
	return b.surface.Close()
}

// toCanvas maps a widget position to canvas units.
func (b *BoardWidget) toCanvas(p fyne.Position) (float64, float64) {
	sz := b.Size()
	if sz.Width == 0 || sz.Height == 0 {
		return float64(p.X), float64(p.Y)
	}
	return float64(p.X * b.size / sz.Width), float64(p.Y * b.size / sz.Height)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.Board.PointerDown(b.toCanvas(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.Board.PointerUp()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.Board.PointerMove(b.toCanvas(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.Board.PointerUp()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.Board.PointerMove(b.toCanvas(e.Position))
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseOut() {
	b.Board.PointerLeave()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{
		board:      b,
		background: canvas.NewRectangle(color.White),
	}
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.view}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.view.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.board.size, r.board.size)
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}
