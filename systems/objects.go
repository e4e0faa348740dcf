package systems

import (
	"github.com/automoto/pong/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every resolv object in the space after the
// movement systems have run, so collision checks see current positions.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
