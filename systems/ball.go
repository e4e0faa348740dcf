package systems

import (
	"math/rand"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBall integrates the ball and resolves paddle hits, wall bounces and
// scoring. Does nothing outside a live rally.
func UpdateBall(e *ecs.ECS) {
	if !IsRallyLive(e) {
		return
	}
	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	dt := 1.0 / float64(ebiten.TPS())
	obj := components.Object.Get(ballEntry)
	physics := components.Physics.Get(ballEntry)

	StepBall(obj.Object, physics, dt)

	// Paddle hits: broadphase through the space, then the exact overlap test
	if check := obj.Check(0, 0, tags.ResolvPaddle); check != nil {
		for _, paddleObj := range check.ObjectsByTags(tags.ResolvPaddle) {
			if !Overlaps(obj.Object, paddleObj) {
				continue
			}
			entry, ok := paddleObj.Data.(*donburi.Entry)
			if !ok {
				continue
			}
			paddle := components.Paddle.Get(entry)
			Rebound(obj.Object, physics, paddleObj, paddle.IsLeft(), rng)
			PlaySFX(e, cfg.SoundPaddleHit)
			break
		}
	}

	if BounceOffWalls(obj.Object, physics) {
		PlaySFX(e, cfg.SoundWallHit)
	}

	// A ball fully past an edge scores for the opposite player
	if obj.X < 0 {
		ScorePoint(e, 2)
	} else if obj.X > float64(cfg.C.Width) {
		ScorePoint(e, 1)
	}
}

// StepBall integrates the ball over dt.
func StepBall(ball *resolv.Object, physics *components.PhysicsData, dt float64) {
	ball.X += physics.SpeedX * dt
	ball.Y += physics.SpeedY * dt
}

// Overlaps is the ball-paddle hit test: an AABB check with the ball's box
// shrunk by CollisionInset per side, so edge contact does not count as a hit.
func Overlaps(ball, paddle *resolv.Object) bool {
	inset := cfg.Ball.CollisionInset
	return ball.X+inset < paddle.X+paddle.W &&
		ball.X+ball.W-inset > paddle.X &&
		ball.Y+inset < paddle.Y+paddle.H &&
		ball.Y+ball.H-inset > paddle.Y
}

// Rebound reverses and speeds up the ball off a paddle face, snaps it flush
// against the face, and re-rolls the vertical speed keeping its sign.
// The left paddle ramps the rally harder than the right.
func Rebound(ball *resolv.Object, physics *components.PhysicsData, paddle *resolv.Object, leftPaddle bool, r *rand.Rand) {
	if leftPaddle {
		physics.SpeedX = -physics.SpeedX * cfg.Ball.SpeedupLeft
		ball.X = paddle.X + paddle.W
	} else {
		physics.SpeedX = -physics.SpeedX * cfg.Ball.SpeedupRight
		ball.X = paddle.X - ball.W
	}

	mag := cfg.Ball.BounceDYMin + r.Float64()*(cfg.Ball.BounceDYMax-cfg.Ball.BounceDYMin)
	if physics.SpeedY < 0 {
		physics.SpeedY = -mag
	} else {
		physics.SpeedY = mag
	}
}

// BounceOffWalls reflects the ball off the top and bottom edges, clamping it
// back onto the field. Reports whether a wall was hit.
func BounceOffWalls(ball *resolv.Object, physics *components.PhysicsData) bool {
	if ball.Y <= 0 {
		ball.Y = 0
		physics.SpeedY = -physics.SpeedY
		return true
	}
	if bottom := float64(cfg.C.Height) - ball.H; ball.Y >= bottom {
		ball.Y = bottom
		physics.SpeedY = -physics.SpeedY
		return true
	}
	return false
}
