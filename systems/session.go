package systems

import (
	"math/rand"
	"os"
	"time"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Process-wide generator, seeded once at startup.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// UpdateSession advances the session state machine from player input.
func UpdateSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		os.Exit(0)
	}

	advance := GetAction(input, cfg.ActionAdvance).JustPressed

	switch session.State {
	case cfg.StateStart:
		if advance {
			session.State = cfg.StateModeSelect
		}

	case cfg.StateModeSelect:
		switch {
		case GetAction(input, cfg.ActionModeVersusAI).JustPressed:
			SelectMode(e, cfg.StateVersusAI)
		case GetAction(input, cfg.ActionModeTwoPlayer).JustPressed:
			SelectMode(e, cfg.StateTwoPlayer)
		case GetAction(input, cfg.ActionModeSpectator).JustPressed:
			SelectMode(e, cfg.StateSpectator)
		}

	case cfg.StateVersusAI, cfg.StateTwoPlayer, cfg.StateSpectator:
		// Mode states are held until the next enter, never auto-advanced
		if advance {
			EnterServe(e)
		}

	case cfg.StateServe:
		if advance {
			// The serve was armed on entry, nothing else to set up
			session.State = cfg.StatePlay
		}

	case cfg.StateDone:
		if advance {
			// Loser of the finished game serves the next one
			session.ServingPlayer = components.Opponent(session.WinningPlayer)
			session.ResetScores()
			EnterServe(e)
		}
	}
}

// SelectMode flags which paddles the computer drives and holds the matching
// mode state until the next enter. Called for the digit keys and for the
// mode-select buttons.
func SelectMode(e *ecs.ECS, mode cfg.SessionStateID) {
	ai1, ai2 := false, false
	switch mode {
	case cfg.StateVersusAI:
		ai2 = true
	case cfg.StateSpectator:
		ai1, ai2 = true, true
	case cfg.StateTwoPlayer:
		// both human
	default:
		return
	}

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		if paddle.PlayerIndex == 1 {
			paddle.AIControlled = ai1
		} else {
			paddle.AIControlled = ai2
		}
	})

	GetOrCreateSession(e).State = mode
}

// EnterServe recentres ball and paddles and arms the serve velocity toward
// the receiving side.
func EnterServe(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	session.State = cfg.StateServe

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		obj.Y = cfg.Paddle.StartY
		physics := components.Physics.Get(entry)
		physics.SpeedY = 0
	})

	if ballEntry, ok := tags.Ball.First(e.World); ok {
		obj := components.Object.Get(ballEntry)
		obj.X = cfg.Ball.StartX
		obj.Y = cfg.Ball.StartY
		ArmServe(components.Physics.Get(ballEntry), session.ServingPlayer, rng)
	}
}

// ArmServe rolls the serve velocity: a vertical component from the symmetric
// range and a horizontal one aimed away from the serving player.
func ArmServe(physics *components.PhysicsData, servingPlayer int, r *rand.Rand) {
	physics.SpeedY = -cfg.Ball.ServeDYRange + r.Float64()*2*cfg.Ball.ServeDYRange
	dx := cfg.Ball.ServeDXMin + r.Float64()*(cfg.Ball.ServeDXMax-cfg.Ball.ServeDXMin)
	if servingPlayer == 2 {
		dx = -dx
	}
	physics.SpeedX = dx
}

// ScorePoint awards a point to scorer, hands the serve to the player scored
// against, and ends the game once the win score is reached.
func ScorePoint(e *ecs.ECS, scorer int) {
	session := GetOrCreateSession(e)
	session.ServingPlayer = components.Opponent(scorer)
	PlaySFX(e, cfg.SoundScore)

	if session.AddPoint(scorer) == cfg.Session.WinScore {
		session.WinningPlayer = scorer
		session.State = cfg.StateDone
		return
	}
	EnterServe(e)
}

// GetOrCreateSession returns the singleton session component, creating it if
// needed
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Session))
		components.Session.SetValue(entry, components.SessionData{
			State:         cfg.StateStart,
			ServingPlayer: cfg.Session.FirstServer,
		})
	}
	return components.Session.Get(entry)
}

// IsRallyLive reports whether per-frame ball physics and scoring should run.
func IsRallyLive(e *ecs.ECS) bool {
	return GetOrCreateSession(e).State == cfg.StatePlay
}
