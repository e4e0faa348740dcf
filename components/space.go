package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds the court's resolv collision space (singleton component).
var Space = donburi.NewComponentType[resolv.Space]()
