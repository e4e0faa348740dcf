package tags

import "github.com/yohamta/donburi"

var (
	Paddle = donburi.NewTag().SetName("Paddle")
	Ball   = donburi.NewTag().SetName("Ball")
)

// Resolv tags for collision queries
const (
	ResolvPaddle = "paddle"
	ResolvBall   = "ball"
)
