package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePaddle(ecs *ecs.ECS, playerIndex int) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)

	x := cfg.Paddle.LeftX
	if playerIndex == 2 {
		x = cfg.Paddle.RightX
	}
	obj := resolv.NewObject(x, cfg.Paddle.StartY, cfg.Paddle.Width, cfg.Paddle.Height)
	obj.AddTags(tags.ResolvPaddle)
	obj.Data = paddle
	components.Object.SetValue(paddle, components.ObjectData{Object: obj})
	components.Paddle.SetValue(paddle, components.PaddleData{
		PlayerIndex: playerIndex,
	})
	components.Physics.SetValue(paddle, components.PhysicsData{})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return paddle
}
