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

func CreateBall(ecs *ecs.ECS) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	obj := resolv.NewObject(cfg.Ball.StartX, cfg.Ball.StartY, cfg.Ball.Size, cfg.Ball.Size)
	obj.AddTags(tags.ResolvBall)
	obj.Data = ball
	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	components.Physics.SetValue(ball, components.PhysicsData{})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return ball
}
