package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CourtScene runs the whole game: title, mode select, rallies and the win
// screen are all states inside the one session, so there is nothing to
// change scenes for.
type CourtScene struct {
	ecs    *ecs.ECS
	modeUI *ui.ModeSelectUI
	once   sync.Once

	// Set by the mode panel's click handlers, applied on the next update
	pickVersusAI  bool
	pickTwoPlayer bool
	pickSpectator bool
}

// NewCourtScene creates the court scene
func NewCourtScene() *CourtScene {
	return &CourtScene{}
}

func (cs *CourtScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	// The mode panel only runs while the session sits on mode select.
	// Everywhere else the keyboard drives the session directly.
	if systems.GetOrCreateSession(cs.ecs).State == cfg.StateModeSelect {
		cs.modeUI.Update()
		cs.applyPickedMode()
	}
}

func (cs *CourtScene) applyPickedMode() {
	switch {
	case cs.pickVersusAI:
		systems.SelectMode(cs.ecs, cfg.StateVersusAI)
	case cs.pickTwoPlayer:
		systems.SelectMode(cs.ecs, cfg.StateTwoPlayer)
	case cs.pickSpectator:
		systems.SelectMode(cs.ecs, cfg.StateSpectator)
	}
	cs.pickVersusAI, cs.pickTwoPlayer, cs.pickSpectator = false, false, false
}

func (cs *CourtScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)

	if systems.GetOrCreateSession(cs.ecs).State == cfg.StateModeSelect {
		cs.modeUI.UI.Draw(screen)
	}
}

func (cs *CourtScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdateAI)
	e.AddSystem(systems.UpdatePaddles)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateBall)
	e.AddSystem(systems.UpdatePulse)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawCourt)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawScores)
	e.AddRenderer(cfg.Default, systems.DrawMessages)
	e.AddRenderer(cfg.Default, systems.DrawFPS)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = e

	// The space has to exist before anything that registers an object
	factory.CreateSpace(cs.ecs, cfg.C.Width, cfg.C.Height, cfg.C.CellSize, cfg.C.CellSize)
	factory.CreateSession(cs.ecs)
	factory.CreateInput(cs.ecs)
	factory.CreateAudio(cs.ecs)
	factory.CreateSettings(cs.ecs)
	factory.CreatePulse(cs.ecs)
	factory.CreatePaddle(cs.ecs, 1)
	factory.CreatePaddle(cs.ecs, 2)
	factory.CreateBall(cs.ecs)

	cs.modeUI = ui.NewModeSelectUI(
		func() { cs.pickVersusAI = true },
		func() { cs.pickTwoPlayer = true },
		func() { cs.pickSpectator = true },
	)
}
