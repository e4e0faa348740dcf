package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Helper to build a full court: space, singletons, both paddles and the ball.
func setupCourt() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.C.CellSize, cfg.C.CellSize)
	factory.CreateSession(e)
	factory.CreateInput(e)
	factory.CreateAudio(e)
	factory.CreateSettings(e)
	factory.CreatePaddle(e, 1)
	factory.CreatePaddle(e, 2)
	factory.CreateBall(e)
	return e
}

// press marks an action as freshly pressed this frame.
func press(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Current[action] = true
	input.Previous[action] = false
}

// release clears the pressed state, as if the key came up.
func release(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func paddleEntry(e *ecs.ECS, playerIndex int) *donburi.Entry {
	var found *donburi.Entry
	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		if components.Paddle.Get(entry).PlayerIndex == playerIndex {
			found = entry
		}
	})
	return found
}

func ballEntry(e *ecs.ECS) *donburi.Entry {
	entry, _ := tags.Ball.First(e.World)
	return entry
}

func TestSessionStartsOnTitle(t *testing.T) {
	e := setupCourt()
	session := GetOrCreateSession(e)

	if session.State != cfg.StateStart {
		t.Errorf("Session should start on the title state, got %s", session.State)
	}
	if session.ServingPlayer != cfg.Session.FirstServer {
		t.Errorf("Player %d should hold the first serve, got %d",
			cfg.Session.FirstServer, session.ServingPlayer)
	}
}

func TestSessionAdvancesThroughStates(t *testing.T) {
	e := setupCourt()
	session := GetOrCreateSession(e)

	// Title -> mode select
	press(e, cfg.ActionAdvance)
	UpdateSession(e)
	if session.State != cfg.StateModeSelect {
		t.Fatalf("Enter on the title should open mode select, got %s", session.State)
	}
	release(e)

	// Mode select ignores enter, only digits advance
	press(e, cfg.ActionAdvance)
	UpdateSession(e)
	if session.State != cfg.StateModeSelect {
		t.Fatalf("Enter should not leave mode select, got %s", session.State)
	}
	release(e)

	press(e, cfg.ActionModeVersusAI)
	UpdateSession(e)
	if session.State != cfg.StateVersusAI {
		t.Fatalf("Digit 1 should pick the versus-CPU mode, got %s", session.State)
	}
	release(e)

	// Mode confirmation -> serve
	press(e, cfg.ActionAdvance)
	UpdateSession(e)
	if session.State != cfg.StateServe {
		t.Fatalf("Enter on the mode screen should arm the serve, got %s", session.State)
	}
	release(e)

	// Serve -> play
	press(e, cfg.ActionAdvance)
	UpdateSession(e)
	if session.State != cfg.StatePlay {
		t.Fatalf("Enter on serve should start the rally, got %s", session.State)
	}
}

func TestSelectModeFlagsPaddles(t *testing.T) {
	cases := []struct {
		name string
		mode cfg.SessionStateID
		ai1  bool
		ai2  bool
	}{
		{"versus ai", cfg.StateVersusAI, false, true},
		{"two player", cfg.StateTwoPlayer, false, false},
		{"spectator", cfg.StateSpectator, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := setupCourt()
			SelectMode(e, tc.mode)

			session := GetOrCreateSession(e)
			if session.State != tc.mode {
				t.Errorf("SelectMode should hold the mode state, got %s", session.State)
			}

			p1 := components.Paddle.Get(paddleEntry(e, 1))
			p2 := components.Paddle.Get(paddleEntry(e, 2))
			if p1.AIControlled != tc.ai1 {
				t.Errorf("Paddle 1 AI flag should be %v, got %v", tc.ai1, p1.AIControlled)
			}
			if p2.AIControlled != tc.ai2 {
				t.Errorf("Paddle 2 AI flag should be %v, got %v", tc.ai2, p2.AIControlled)
			}
		})
	}
}

func TestEnterServeRecentresEverything(t *testing.T) {
	e := setupCourt()

	// Drag everything out of position first
	p1Obj := components.Object.Get(paddleEntry(e, 1))
	p1Obj.Y = 5
	components.Physics.Get(paddleEntry(e, 1)).SpeedY = 120

	ball := ballEntry(e)
	ballObj := components.Object.Get(ball)
	ballObj.X = 50
	ballObj.Y = 12

	EnterServe(e)

	session := GetOrCreateSession(e)
	if session.State != cfg.StateServe {
		t.Errorf("EnterServe should land on the serve state, got %s", session.State)
	}
	if p1Obj.Y != cfg.Paddle.StartY {
		t.Errorf("Paddle should recentre to %.1f, got %.1f", cfg.Paddle.StartY, p1Obj.Y)
	}
	if got := components.Physics.Get(paddleEntry(e, 1)).SpeedY; got != 0 {
		t.Errorf("Paddle speed should reset to 0, got %.1f", got)
	}
	if ballObj.X != cfg.Ball.StartX || ballObj.Y != cfg.Ball.StartY {
		t.Errorf("Ball should recentre to (%.1f, %.1f), got (%.1f, %.1f)",
			cfg.Ball.StartX, cfg.Ball.StartY, ballObj.X, ballObj.Y)
	}
	if components.Physics.Get(ball).SpeedX == 0 {
		t.Error("EnterServe should arm a horizontal serve velocity")
	}
}

func TestArmServeRanges(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		var physics components.PhysicsData
		ArmServe(&physics, 1, r)

		if physics.SpeedX < cfg.Ball.ServeDXMin || physics.SpeedX > cfg.Ball.ServeDXMax {
			t.Fatalf("Serve for player 1 should move right in [%.0f, %.0f], got %.2f",
				cfg.Ball.ServeDXMin, cfg.Ball.ServeDXMax, physics.SpeedX)
		}
		if physics.SpeedY < -cfg.Ball.ServeDYRange || physics.SpeedY > cfg.Ball.ServeDYRange {
			t.Fatalf("Serve vertical speed should stay within +/-%.0f, got %.2f",
				cfg.Ball.ServeDYRange, physics.SpeedY)
		}
	}

	for i := 0; i < 100; i++ {
		var physics components.PhysicsData
		ArmServe(&physics, 2, r)

		if physics.SpeedX > -cfg.Ball.ServeDXMin || physics.SpeedX < -cfg.Ball.ServeDXMax {
			t.Fatalf("Serve for player 2 should move left in [%.0f, %.0f], got %.2f",
				-cfg.Ball.ServeDXMax, -cfg.Ball.ServeDXMin, physics.SpeedX)
		}
	}
}

func TestScorePointHandsServeToConceder(t *testing.T) {
	e := setupCourt()
	session := GetOrCreateSession(e)
	session.State = cfg.StatePlay

	ScorePoint(e, 1)

	if session.Player1Score != 1 {
		t.Errorf("Player 1 should have 1 point, got %d", session.Player1Score)
	}
	if session.ServingPlayer != 2 {
		t.Errorf("The player scored against should serve next, got %d", session.ServingPlayer)
	}
	if session.State != cfg.StateServe {
		t.Errorf("Scoring mid-game should return to serve, got %s", session.State)
	}

	queued := GetOrCreateAudio(e).PendingSFX
	found := false
	for _, id := range queued {
		if id == cfg.SoundScore {
			found = true
		}
	}
	if !found {
		t.Error("Scoring should queue the score sound")
	}
}

func TestScorePointEndsGameAtWinScore(t *testing.T) {
	e := setupCourt()
	session := GetOrCreateSession(e)
	session.State = cfg.StatePlay
	session.Player1Score = cfg.Session.WinScore - 1

	ScorePoint(e, 1)

	if session.State != cfg.StateDone {
		t.Errorf("Reaching %d points should end the game, got %s", cfg.Session.WinScore, session.State)
	}
	if session.WinningPlayer != 1 {
		t.Errorf("Player 1 should be recorded as winner, got %d", session.WinningPlayer)
	}
	if session.Player1Score != cfg.Session.WinScore {
		t.Errorf("Winner should sit on exactly %d points, got %d", cfg.Session.WinScore, session.Player1Score)
	}
}

func TestRestartAfterDoneServesLoser(t *testing.T) {
	e := setupCourt()
	SelectMode(e, cfg.StateVersusAI)

	session := GetOrCreateSession(e)
	session.State = cfg.StateDone
	session.WinningPlayer = 1
	session.Player1Score = cfg.Session.WinScore
	session.Player2Score = 3

	press(e, cfg.ActionAdvance)
	UpdateSession(e)

	if session.State != cfg.StateServe {
		t.Errorf("Restart should land on serve, got %s", session.State)
	}
	if session.Player1Score != 0 || session.Player2Score != 0 {
		t.Errorf("Restart should clear the scores, got %d-%d",
			session.Player1Score, session.Player2Score)
	}
	if session.ServingPlayer != 2 {
		t.Errorf("The loser should serve the next game, got player %d", session.ServingPlayer)
	}

	// Mode selection survives the restart
	if !components.Paddle.Get(paddleEntry(e, 2)).AIControlled {
		t.Error("The CPU paddle should stay CPU-controlled across a restart")
	}

	ballObj := components.Object.Get(ballEntry(e))
	if ballObj.X != cfg.Ball.StartX {
		t.Errorf("Ball should recentre on restart, got x=%.1f", ballObj.X)
	}
}
