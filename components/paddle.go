package components

import (
	"github.com/yohamta/donburi"
)

// PaddleData identifies a paddle and who drives it.
// PlayerIndex is 1 for the left paddle, 2 for the right.
type PaddleData struct {
	PlayerIndex  int
	AIControlled bool
}

var Paddle = donburi.NewComponentType[PaddleData]()

// IsLeft reports whether this is the left-side paddle.
func (p *PaddleData) IsLeft() bool {
	return p.PlayerIndex == 1
}
