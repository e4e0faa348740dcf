package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// PaddleConfig contains all paddle-related configuration values
type PaddleConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Movement
	Speed float64 // px/s while a move key is held

	// Placement
	EdgeOffset float64 // gap between a field edge and the paddle's near face
	LeftX      float64 // left paddle's left edge, derived from EdgeOffset
	RightX     float64 // right paddle's left edge
	StartY     float64 // vertical position both paddles reset to on serve
}

// BallConfig contains ball geometry and rally tuning
type BallConfig struct {
	Size   float64 // square side
	StartX float64
	StartY float64

	// Serve velocity ranges
	ServeDXMin   float64
	ServeDXMax   float64
	ServeDYRange float64 // vertical component drawn from [-range, range]

	// Rally tuning. The left/right asymmetry is intentional: the left
	// paddle ramps the rally much faster than the right.
	SpeedupLeft  float64
	SpeedupRight float64

	// Vertical magnitude re-rolled on every paddle hit
	BounceDYMin float64
	BounceDYMax float64

	// AABB shrink per side so edge contact does not count as a hit
	CollisionInset float64
}

// SessionConfig contains match-level rules
type SessionConfig struct {
	WinScore    int
	FirstServer int
}

// AIConfig contains the tracking controller tuning
type AIConfig struct {
	ReactionBias float64 // px/s added past the ball's vertical speed
}

// HUDConfig contains fixed text placement on the virtual screen
type HUDConfig struct {
	ScoreLeftOffset  float64 // player 1 score x, left of centre
	ScoreRightOffset float64 // player 2 score x, right of centre
	ScoreY           float64
	TitleY           float64
	MessageY         float64
	FPSX             float64
	FPSY             float64
}

// Config holds general game configuration
type Config struct {
	Width        int // virtual resolution the game renders at
	Height       int
	WindowWidth  int
	WindowHeight int
	CellSize     int // resolv space cell size
	Title        string
}

// Render layers, in draw order
const (
	Default ecs.LayerID = iota
)

// Global configuration instances
var C *Config
var Paddle PaddleConfig
var Ball BallConfig
var Session SessionConfig
var AI AIConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	Background = color.RGBA{R: 40, G: 45, B: 52, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DimWhite   = color.RGBA{R: 180, G: 180, B: 180, A: 255}
)

func init() {
	C = &Config{
		Width:        432,
		Height:       243,
		WindowWidth:  1280,
		WindowHeight: 720,
		CellSize:     16,
		Title:        "Pong",
	}

	Paddle = PaddleConfig{
		Width:      5,
		Height:     20,
		Speed:      200,
		EdgeOffset: 10,
		LeftX:      10,
		RightX:     432 - 10 - 5,
		StartY:     (243 - 20) / 2.0,
	}

	Ball = BallConfig{
		Size:   4,
		StartX: (432 - 4) / 2.0,
		StartY: (243 - 4) / 2.0,

		ServeDXMin:   140,
		ServeDXMax:   200,
		ServeDYRange: 50,

		SpeedupLeft:  1.1,
		SpeedupRight: 1.03,

		BounceDYMin: 10,
		BounceDYMax: 150,

		CollisionInset: 1,
	}

	Session = SessionConfig{
		WinScore:    10,
		FirstServer: 1,
	}

	AI = AIConfig{
		ReactionBias: 1,
	}

	HUD = HUDConfig{
		ScoreLeftOffset:  50,
		ScoreRightOffset: 30,
		ScoreY:           243 / 3.0,
		TitleY:           30,
		MessageY:         50,
		FPSX:             4,
		FPSY:             12,
	}
}
