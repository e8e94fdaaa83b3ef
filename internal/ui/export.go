package ui

import (
	"fmt"
	"io"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"Sketchpad/internal/export"
	"Sketchpad/internal/state"
)

// ExportPNG asks for a destination and writes the committed drawing at the
// configured export scale.
func (t *Toolbar) ExportPNG() {
	t.save(t.cfg.ExportName, func(w io.Writer, items []state.Item) error {
		return t.exporter().WritePNG(w, items)
	})
}

// ExportPDF writes the same image wrapped in an A4 page.
func (t *Toolbar) ExportPDF() {
	name := strings.TrimSuffix(t.cfg.ExportName, ".png") + ".pdf"
	t.save(name, func(w io.Writer, items []state.Item) error {
		return t.exporter().WritePDF(w, items, t.cfg.Title)
	})
}

func (t *Toolbar) exporter() *export.Exporter {
	return &export.Exporter{
		Size:  t.cfg.CanvasSize,
		Scale: t.cfg.ExportScale,
		Fonts: t.board.fonts,
	}
}

func (t *Toolbar) save(name string, write func(io.Writer, []state.Item) error) {
	// Snapshot now so strokes drawn while the dialog is open are not included.
	items := t.board.Board.History.Items()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.win)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				state.Logger().Warn("close export", "uri", writer.URI().String(), "err", err)
			}
		}()
		if err := write(writer, items); err != nil {
			state.Logger().Error("export failed", "uri", writer.URI().String(), "err", err)
			dialog.ShowError(err, t.win)
			t.setStatus("Export failed")
			return
		}
		t.setStatus(fmt.Sprintf("Exported %d items to %s", len(items), writer.URI().Name()))
	}, t.win)
	d.SetFileName(name)
	d.Show()
}
