package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"Sketchpad/internal/state"
)

const (
	pdfMargin    = 15.0  // mm
	pdfPageWidth = 210.0 // A4, mm
	pdfImageName = "drawing"
)

// WritePDF places the PNG export on a single A4 page.
func (e *Exporter) WritePDF(w io.Writer, items []state.Item, title string) error {
	img, err := e.PNG(items)
	if err != nil {
		return err
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle(title, true)
	p.SetCreator("Sketchpad", true)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(pdfImageName, opts, bytes.NewReader(img))
	edge := pdfPageWidth - 2*pdfMargin
	p.ImageOptions(pdfImageName, pdfMargin, pdfMargin, edge, edge, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	state.Logger().Info("exported pdf", "items", len(items))
	return nil
}
