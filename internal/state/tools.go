package state

import (
	"fmt"
	"math/rand/v2"
)

// DefaultColor is the marker colour a fresh board starts with.
const DefaultColor = "#000000"

// Tools is the current tool configuration. It is read whenever a new stroke
// or sticker is created.
type Tools struct {
	Width float64
	Color string
	// Sticker is the glyph placed on the next pointer-down; empty means the
	// marker is active.
	Sticker string
}

// RandomColor returns a random opaque colour as #rrggbb.
func RandomColor() string {
	return fmt.Sprintf("#%06x", rand.IntN(1<<24))
}
