package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	// Paddle movement
	ActionP1Up
	ActionP1Down
	ActionP2Up
	ActionP2Down
	// Session flow
	ActionAdvance
	ActionModeVersusAI
	ActionModeTwoPlayer
	ActionModeSpectator
	ActionQuit
	// Overlay
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionP1Up: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionP1Down: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionP2Up: {
				Keys: []ebiten.Key{ebiten.KeyUp},
			},
			ActionP2Down: {
				Keys: []ebiten.Key{ebiten.KeyDown},
			},
			ActionAdvance: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
			},
			ActionModeVersusAI: {
				Keys: []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1},
			},
			ActionModeTwoPlayer: {
				Keys: []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2},
			},
			ActionModeSpectator: {
				Keys: []ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
		},
	}
}
