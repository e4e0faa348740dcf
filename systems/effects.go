package systems

import (
	"github.com/automoto/pong/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePulse advances the blink sequence used by HUD prompts. The
// sequence fades alpha out and back in; when it finishes it restarts so
// the prompt keeps pulsing for as long as it stays on screen.
func UpdatePulse(e *ecs.ECS) {
	entry, ok := components.Pulse.First(e.World)
	if !ok {
		return
	}

	seq := components.Tween.Get(entry)
	dt := float32(1) / float32(ebiten.TPS())

	value, _, seqDone := seq.Update(dt)
	if seqDone {
		seq.Reset()
	}

	components.Pulse.Get(entry).Alpha = float64(value)
}
