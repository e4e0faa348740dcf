package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPaddleHit
	SoundWallHit
	SoundScore
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneSegment is one slice of a synthesised cue
type ToneSegment struct {
	Freq     float64 // Hz
	Duration float64 // seconds
}

// SoundConfig maps sound IDs to their synthesised tones
type SoundConfig struct {
	Cues              map[SoundID][]ToneSegment
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Cues: map[SoundID][]ToneSegment{
			SoundPaddleHit: {
				{Freq: 440, Duration: 0.06},
			},
			SoundWallHit: {
				{Freq: 220, Duration: 0.05},
			},
			SoundScore: {
				{Freq: 587, Duration: 0.09},
				{Freq: 392, Duration: 0.14},
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundScore: 1.25,
		},
	}
}
