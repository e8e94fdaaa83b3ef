// Package export replays a board's committed items onto an offscreen
// surface and encodes the result for download.
package export

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"Sketchpad/internal/raster"
	"Sketchpad/internal/state"
)

// Exporter renders committed items at a larger linear scale. Previews and
// strokes in progress never reach it: callers pass History.Items().
type Exporter struct {
	Size  int     // canvas edge in canvas units
	Scale float64 // linear scale of the exported image
	Fonts *raster.Fonts
}

// Render draws items onto a new surface of Size×Scale pixels per edge.
// The caller owns the returned surface and must Close it.
func (e *Exporter) Render(items []state.Item) (*raster.Surface, error) {
	edge := int(math.Round(float64(e.Size) * e.Scale))
	s, err := raster.New(edge, edge, e.Fonts)
	if err != nil {
		return nil, fmt.Errorf("export surface: %w", err)
	}
	s.Scale(e.Scale)
	for _, item := range items {
		item.Render(s, e.Scale)
	}
	return s, nil
}

// WritePNG renders items and writes them to w as PNG.
func (e *Exporter) WritePNG(w io.Writer, items []state.Item) error {
	s, err := e.Render(items)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	state.Logger().Info("exported png", "items", len(items), "edge", s.Width(), "scale", e.Scale)
	return nil
}

// PNG renders items and returns the PNG bytes.
func (e *Exporter) PNG(items []state.Item) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.WritePNG(&buf, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
