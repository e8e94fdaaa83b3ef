package export

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"Sketchpad/internal/raster"
	"Sketchpad/internal/state"
)

func newExporter(t *testing.T, size int, scale float64) *Exporter {
	t.Helper()
	fonts, err := raster.LoadFonts("")
	if err != nil {
		t.Fatalf("LoadFonts: %v", err)
	}
	return &Exporter{Size: size, Scale: scale, Fonts: fonts}
}

func painted(img image.Image, x, y int) bool {
	_, _, _, a := img.At(x, y).RGBA()
	return a != 0
}

func TestPNGSize(t *testing.T) {
	e := newExporter(t, 256, 4)
	data, err := e.PNG(nil)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1024 || b.Dy() != 1024 {
		t.Errorf("bounds = %v, want 1024x1024", b)
	}
}

func TestPNGScalesStrokes(t *testing.T) {
	b := state.NewBoard(state.Tools{Width: 2})
	b.BeginStroke(10, 20, 2, "#000000")
	b.ExtendStroke(50, 20)
	b.SealStroke()

	for _, k := range []float64{1, 2, 4} {
		e := newExporter(t, 64, k)
		data, err := e.PNG(b.History.Items())
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		if !painted(img, int(30*k), int(20*k)) {
			t.Errorf("scale %g: stroke missing at (%g, %g)", k, 30*k, 20*k)
		}
		if k > 1 && painted(img, 30, 20+int(3*k)) {
			t.Errorf("scale %g: unexpected paint near the unscaled position", k)
		}
	}
}

// paintedBounds returns the bounding box of all non-transparent pixels.
func paintedBounds(img image.Image) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if painted(img, x, y) {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestPNGScalesStickers(t *testing.T) {
	items := []state.Item{state.NewSticker(20, 20, "A")}

	var big image.Image
	render := func(k float64) image.Image {
		s, err := newExporter(t, 64, k).Render(items)
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { s.Close() })
		return s.Image()
	}
	one := paintedBounds(render(1))
	big = render(4)
	four := paintedBounds(big)
	if one.Empty() || four.Empty() {
		t.Fatalf("sticker painted nothing: k=1 %v, k=4 %v", one, four)
	}

	cx, cy := (four.Min.X+four.Max.X)/2, (four.Min.Y+four.Max.Y)/2
	if cx < 66 || cx > 94 || cy < 66 || cy > 94 {
		t.Errorf("k=4 glyph centred at (%d, %d), want near (80, 80)", cx, cy)
	}
	for y := 17; y < 24; y++ {
		for x := 17; x < 24; x++ {
			if painted(big, x, y) {
				t.Fatalf("k=4 sticker painted near the unscaled position at (%d, %d)", x, y)
			}
		}
	}

	ratio := float64(four.Dx()) / float64(one.Dx())
	if ratio < 3 || ratio > 5 {
		t.Errorf("glyph width %d at k=4 vs %d at k=1: ratio %.2f, want about 4", four.Dx(), one.Dx(), ratio)
	}
}

func TestExportExcludesPreviews(t *testing.T) {
	b := state.NewBoard(state.Tools{Width: 10})
	b.PointerMove(32, 32)
	b.SetPendingSticker("X")
	b.PointerMove(16, 16)

	e := newExporter(t, 64, 1)
	s, err := e.Render(b.History.Items())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	img := s.Image()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if painted(img, x, y) {
				t.Fatalf("preview leaked into export at (%d, %d)", x, y)
			}
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	e := newExporter(t, 0, 4)
	if _, err := e.Render(nil); err == nil {
		t.Error("Render with zero size succeeded")
	}
}

func TestWritePDF(t *testing.T) {
	b := state.NewBoard(state.Tools{Width: 2})
	b.PlaceSticker(20, 20, "A")

	var buf bytes.Buffer
	e := newExporter(t, 64, 2)
	if err := e.WritePDF(&buf, b.History.Items(), "Draw"); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:8])
	}
}
