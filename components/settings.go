package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores runtime toggles (singleton component)
type SettingsData struct {
	Debug bool // draw collision outlines and state readout
}

var Settings = donburi.NewComponentType[SettingsData]()
