package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(e)
		settings.Debug = !settings.Debug
	}
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvBall) {
				c = cfg.Magenta
			}

			// Draw outline
			vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(obj.X), float32(obj.Y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(obj.X), float32(obj.Y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(obj.X+obj.W-1), float32(obj.Y), 1, float32(obj.H), c, false) // Right
		}
	}

	drawDebugReadout(e, screen)
}

// drawDebugReadout prints session state and ball velocity in the bottom-left
// corner.
func drawDebugReadout(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)

	line := fmt.Sprintf("state=%s serve=%d", session.State, session.ServingPlayer)
	if ballEntry, ok := tags.Ball.First(e.World); ok {
		physics := components.Physics.Get(ballEntry)
		line += fmt.Sprintf(" dx=%.0f dy=%.0f", physics.SpeedX, physics.SpeedY)
	}

	text.Draw(screen, line, fonts.Small.Get(), 4, cfg.C.Height-4, cfg.Magenta)
}

// GetOrCreateSettings returns the singleton Settings component, creating it if
// needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{})
	}
	return components.Settings.Get(entry)
}
