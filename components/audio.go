package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
	// Players still running from earlier frames, pruned once finished
	ActiveSFX []*audio.Player
}

var Audio = donburi.NewComponentType[AudioData]()
