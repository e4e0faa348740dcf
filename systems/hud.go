package systems

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Approximate glyph advances used for centering, per face size.
const (
	largeGlyphWidth = 9
	smallGlyphWidth = 5
)

// DrawCourt paints the flat court background before anything else renders.
func DrawCourt(e *ecs.ECS, screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), cfg.Background, false)
}

// DrawEntities renders the paddles and the ball as flat rectangles straight
// from their collision objects. Nothing is shown on the title or mode-select
// screens.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if session.State == cfg.StateStart || session.State == cfg.StateModeSelect {
		return
	}

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.DrawFilledRect(screen, float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H), cfg.White, false)
	})
}

// DrawScores renders both scores either side of the centre line. The offsets
// differ because the digits are drawn from their left edge.
func DrawScores(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if session.State == cfg.StateModeSelect {
		// The mode panel owns the screen
		return
	}

	width := float64(cfg.C.Width)
	fontFace := fonts.Score.Get()

	text.Draw(screen, strconv.Itoa(session.Player1Score), fontFace,
		int(width/2-cfg.HUD.ScoreLeftOffset), int(cfg.HUD.ScoreY), cfg.White)
	text.Draw(screen, strconv.Itoa(session.Player2Score), fontFace,
		int(width/2+cfg.HUD.ScoreRightOffset), int(cfg.HUD.ScoreY), cfg.White)
}

// DrawMessages renders the banner and prompt lines for the current state.
func DrawMessages(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)

	switch session.State {
	case cfg.StateStart:
		drawBanner(screen, "Welcome to Pong!", cfg.White)
		drawPrompt(screen, "Press Enter to begin!", cfg.White)

	case cfg.StateVersusAI:
		drawBanner(screen, "Player vs CPU", cfg.White)
		drawPrompt(screen, "Press Enter to serve!", cfg.DimWhite)

	case cfg.StateTwoPlayer:
		drawBanner(screen, "Two players", cfg.White)
		drawPrompt(screen, "Press Enter to serve!", cfg.DimWhite)

	case cfg.StateSpectator:
		drawBanner(screen, "CPU showdown", cfg.White)
		drawPrompt(screen, "Press Enter to serve!", cfg.DimWhite)

	case cfg.StateServe:
		drawBanner(screen, fmt.Sprintf("Player %d's serve!", session.ServingPlayer), cfg.White)
		drawPrompt(screen, "Press Enter to serve!", pulsedWhite(e))

	case cfg.StateDone:
		drawBanner(screen, fmt.Sprintf("Player %d wins!", session.WinningPlayer), cfg.White)
		drawPrompt(screen, "Press Enter to restart!", pulsedWhite(e))
	}
}

// DrawFPS renders the live frame rate in the top-left corner.
func DrawFPS(e *ecs.ECS, screen *ebiten.Image) {
	fpsStr := fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS())
	text.Draw(screen, fpsStr, fonts.Small.Get(), int(cfg.HUD.FPSX), int(cfg.HUD.FPSY), cfg.Green)
}

func drawBanner(screen *ebiten.Image, s string, clr color.Color) {
	textWidth := len(s) * largeGlyphWidth
	x := cfg.C.Width/2 - textWidth/2
	text.Draw(screen, s, fonts.Large.Get(), x, int(cfg.HUD.TitleY), clr)
}

func drawPrompt(screen *ebiten.Image, s string, clr color.Color) {
	textWidth := len(s) * smallGlyphWidth
	x := cfg.C.Width/2 - textWidth/2
	text.Draw(screen, s, fonts.Small.Get(), x, int(cfg.HUD.MessageY), clr)
}

// pulsedWhite fades white through the blink sequence's current alpha.
func pulsedWhite(e *ecs.ECS) color.Color {
	alpha := 1.0
	if entry, ok := components.Pulse.First(e.World); ok {
		alpha = components.Pulse.Get(entry).Alpha
	}
	a := uint8(alpha * 255)
	return color.RGBA{R: a, G: a, B: a, A: a}
}
