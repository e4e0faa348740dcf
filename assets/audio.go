package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/pong/config"
)

const (
	bytesPerFrame = 4 // 16-bit samples, two channels
	peak          = 0.6 * math.MaxInt16
)

// Synth renders the game's sound cues as raw PCM and caches the buffers.
// Buffers are 16-bit little-endian stereo, the format audio.Context players
// consume directly.
type Synth struct {
	sampleRate int
	cueCache   map[cfg.SoundID][]byte
}

// NewSynth creates a synthesiser rendering at the given sample rate
func NewSynth(sampleRate int) *Synth {
	return &Synth{
		sampleRate: sampleRate,
		cueCache:   make(map[cfg.SoundID][]byte),
	}
}

// Cue returns the PCM buffer for a sound, rendering and caching it on first
// use. Sounds without a tone table entry return nil.
func (s *Synth) Cue(id cfg.SoundID) []byte {
	if buf, ok := s.cueCache[id]; ok {
		return buf
	}
	segments, ok := cfg.Sound.Cues[id]
	if !ok {
		return nil
	}
	buf := s.render(segments)
	s.cueCache[id] = buf
	return buf
}

func (s *Synth) render(segments []cfg.ToneSegment) []byte {
	var out []byte
	for _, seg := range segments {
		out = append(out, s.renderSegment(seg)...)
	}
	return out
}

// renderSegment synthesises one square-wave tone with a linear decay
// envelope, which keeps the blips click-free.
func (s *Synth) renderSegment(seg cfg.ToneSegment) []byte {
	frames := int(seg.Duration * float64(s.sampleRate))
	buf := make([]byte, frames*bytesPerFrame)

	period := float64(s.sampleRate) / seg.Freq
	for i := 0; i < frames; i++ {
		// High for the first half of each period
		v := float64(peak)
		if math.Mod(float64(i), period) >= period/2 {
			v = -v
		}
		v *= 1 - float64(i)/float64(frames)

		sample := int16(v)
		offset := i * bytesPerFrame
		binary.LittleEndian.PutUint16(buf[offset:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[offset+2:], uint16(sample))
	}
	return buf
}
