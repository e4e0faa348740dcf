package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween holds a gween sequence driving a value over time.
var Tween = donburi.NewComponentType[gween.Sequence]()

// PulseData carries the current output of a looping tween, used to blink
// prompt text.
type PulseData struct {
	Alpha float64
}

var Pulse = donburi.NewComponentType[PulseData]()
