package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePaddles applies player movement and integrates both paddles.
// AI paddles get their velocity from UpdateAI, which must run first.
// Paddles stay movable in every session state.
func UpdatePaddles(e *ecs.ECS) {
	input := getOrCreateInput(e)
	dt := 1.0 / float64(ebiten.TPS())

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		physics := components.Physics.Get(entry)

		if !paddle.AIControlled {
			up, down := cfg.ActionP1Up, cfg.ActionP1Down
			if paddle.PlayerIndex == 2 {
				up, down = cfg.ActionP2Up, cfg.ActionP2Down
			}
			switch {
			case GetAction(input, up).Pressed:
				physics.SpeedY = -cfg.Paddle.Speed
			case GetAction(input, down).Pressed:
				physics.SpeedY = cfg.Paddle.Speed
			default:
				physics.SpeedY = 0
			}
		}

		obj := components.Object.Get(entry)
		StepPaddle(obj.Object, physics, dt)
	})
}

// StepPaddle integrates one paddle over dt and clamps it to the field.
func StepPaddle(obj *resolv.Object, physics *components.PhysicsData, dt float64) {
	obj.Y += physics.SpeedY * dt
	if obj.Y < 0 {
		obj.Y = 0
	}
	if maxY := float64(cfg.C.Height) - obj.H; obj.Y > maxY {
		obj.Y = maxY
	}
}
