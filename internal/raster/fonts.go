package raster

import (
	"fmt"
	"os"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the font sources text is drawn with. The first source is the
// primary face; later ones are fallbacks for glyphs it lacks, typically
// emoji.
type Fonts struct {
	sources []*text.FontSource
}

// LoadFonts loads the primary font from primary, or Go Regular when primary
// is empty, followed by any fallback font files.
func LoadFonts(primary string, fallbacks ...string) (*Fonts, error) {
	f := &Fonts{}
	if primary == "" {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("load go regular: %w", err)
		}
		f.sources = append(f.sources, src)
	} else if err := f.addFile(primary); err != nil {
		return nil, err
	}
	for _, path := range fallbacks {
		if path == "" {
			continue
		}
		if err := f.addFile(path); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Fonts) addFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", path, err)
	}
	f.sources = append(f.sources, src)
	return nil
}

// Face returns a face of the given pixel size covering all loaded sources.
func (f *Fonts) Face(size float64) (text.Face, error) {
	if len(f.sources) == 1 {
		return f.sources[0].Face(size), nil
	}
	faces := make([]text.Face, len(f.sources))
	for i, src := range f.sources {
		faces[i] = src.Face(size)
	}
	return text.NewMultiFace(faces...)
}

// Close releases the font sources.
func (f *Fonts) Close() error {
	var first error
	for _, src := range f.sources {
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
