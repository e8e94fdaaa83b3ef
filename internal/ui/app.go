package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"Sketchpad/internal/config"
	"Sketchpad/internal/raster"
	"Sketchpad/internal/state"
)

// NewWindow builds the sketchpad window on a. It fails when the drawing
// surface cannot be created.
func NewWindow(a fyne.App, cfg *config.Config, fonts *raster.Fonts) (fyne.Window, *Toolbar, error) {
	win := a.NewWindow(cfg.Title)

	board := state.NewBoard(state.Tools{Width: cfg.ThinWidth, Color: cfg.Color})
	bw, err := NewBoardWidget(board, cfg.CanvasSize, fonts)
	if err != nil {
		return nil, nil, fmt.Errorf("board widget: %w", err)
	}
	win.SetOnClosed(func() { _ = bw.Close() })

	toolbar := NewToolbar(bw, cfg, win)
	addShortcuts(win, toolbar)

	win.SetContent(container.NewBorder(nil, toolbar.Object(), nil, nil, container.NewCenter(bw)))
	return win, toolbar, nil
}

func addShortcuts(win fyne.Window, t *Toolbar) {
	undo := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redo := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}
	redoAlt := &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}

	c := win.Canvas()
	c.AddShortcut(undo, func(fyne.Shortcut) { t.Undo() })
	c.AddShortcut(redo, func(fyne.Shortcut) { t.Redo() })
	c.AddShortcut(redoAlt, func(fyne.Shortcut) { t.Redo() })
}

// RunApp opens the sketchpad and blocks until the window closes.
func RunApp(cfg *config.Config, fonts *raster.Fonts) error {
	a := app.New()
	win, _, err := NewWindow(a, cfg, fonts)
	if err != nil {
		return err
	}
	win.ShowAndRun()
	return nil
}
