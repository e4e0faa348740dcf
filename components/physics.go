package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData holds an entity's velocity in virtual pixels per second.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
