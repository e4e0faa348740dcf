package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePulse(ecs *ecs.ECS) *donburi.Entry {
	pulse := archetypes.Pulse.Spawn(ecs)
	components.Pulse.SetValue(pulse, components.PulseData{Alpha: 1})

	// The prompt pulses between full and quarter alpha using a *gween.Sequence
	// of tweens, moving it back and forth.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(1, 0.25, 0.6, ease.Linear),
		gween.New(0.25, 1, 0.6, ease.Linear),
	)
	components.Tween.Set(pulse, tw)

	return pulse
}
