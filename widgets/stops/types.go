package stops

import (
	"github.com/veandco/go-sdl2/sdl"

	"gradient-frame/pkg/colorstop"
)

// Action is what a click on a row asks for.
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionRemove
)

// row is the laid-out rectangle of one stop in the panel.
type row struct {
	id     colorstop.ID
	bounds sdl.Rect
	remove sdl.Rect
}

const (
	rowHeight  = int32(40)
	rowSpacing = int32(6)
	swatchSize = int32(24)
	headerSize = int32(64)
)
