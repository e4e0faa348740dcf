package systems

import (
	"bytes"
	"sync"

	"github.com/automoto/pong/assets"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared for the process lifetime
var (
	globalAudioContext *audio.Context
	globalSynth        *assets.Synth
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSynth = assets.NewSynth(cfg.Audio.SampleRate)
	})
}

// PlaySFX queues a cue for the next UpdateAudio drain. Queueing is a plain
// append, so gameplay code never touches audio handles.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// GetOrCreateAudio returns the singleton audio component, creating if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume: cfg.Audio.DefaultSFXVol,
		})
	}
	return components.Audio.Get(entry)
}

// UpdateAudio drains queued cues into players and prunes finished ones
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	for _, soundID := range audioData.PendingSFX {
		if player := startSFX(soundID, audioData.SFXVolume); player != nil {
			audioData.ActiveSFX = append(audioData.ActiveSFX, player)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	active := audioData.ActiveSFX[:0]
	for _, p := range audioData.ActiveSFX {
		if p.IsPlaying() {
			active = append(active, p)
		} else {
			_ = p.Close()
		}
	}
	audioData.ActiveSFX = active
}

func startSFX(soundID cfg.SoundID, volume float64) *audio.Player {
	if volume <= 0 {
		return nil
	}

	buf := globalSynth.Cue(soundID)
	if buf == nil {
		return nil
	}

	player, err := globalAudioContext.NewPlayer(bytes.NewReader(buf))
	if err != nil {
		return nil
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
	return player
}
