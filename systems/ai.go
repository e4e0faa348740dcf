package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAI sets the vertical speed of every computer-driven paddle.
// Runs before UpdatePaddles, which does the integration and clamping.
func UpdateAI(e *ecs.ECS) {
	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	ballObj := components.Object.Get(ballEntry)
	ballPhysics := components.Physics.Get(ballEntry)

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		if !paddle.AIControlled {
			return
		}
		obj := components.Object.Get(entry)
		physics := components.Physics.Get(entry)
		physics.SpeedY = TrackBall(ballObj.Y, ballPhysics.SpeedY, obj.Y)
	})
}

// TrackBall returns the computer paddle's vertical speed for the current
// ball position and motion. The ball-above branch reacts to the ball's
// speed alone, not its position.
func TrackBall(ballY, ballSpeedY, paddleY float64) float64 {
	bias := cfg.AI.ReactionBias
	switch {
	case ballY > paddleY && ballSpeedY > 0:
		// Ball below and sinking: chase it, overshooting slightly
		return ballSpeedY + bias
	case ballY > paddleY && ballSpeedY < 0:
		return ballSpeedY - bias
	case ballY == paddleY && ballSpeedY == 0:
		return 0
	default:
		return -ballSpeedY - bias
	}
}
