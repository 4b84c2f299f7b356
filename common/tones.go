package common

import (
	"encoding/binary"
	"math"
)

// SampleRate is shared by every audio frontend.
const SampleRate = 44100

// Tone describes a synthesized cue: a frequency sweep from StartHz to EndHz
// with a linear fade out. Noise replaces the oscillator with white noise.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64
	Square   bool
	Noise    bool
}

// Tones maps clip names used in prefabs to their synthesized cue.
var Tones = map[string]Tone{
	"shoot":     {StartHz: 880, EndHz: 440, Duration: 0.08, Square: true},
	"hit":       {Duration: 0.12, Noise: true},
	"game_over": {StartHz: 440, EndHz: 110, Duration: 0.8},
}

// Sample returns the tone's amplitude in [-1, 1] at sample i.
func (t Tone) Sample(i, sampleRate int, phase *float64, seed *uint32) float64 {
	n := t.Samples(sampleRate)
	if n == 0 || i >= n {
		return 0
	}
	progress := float64(i) / float64(n)
	envelope := 1 - progress

	if t.Noise {
		// xorshift keeps the noise reproducible between runs.
		*seed ^= *seed << 13
		*seed ^= *seed >> 17
		*seed ^= *seed << 5
		return envelope * (float64(*seed)/float64(math.MaxUint32)*2 - 1)
	}

	freq := Lerp(t.StartHz, t.EndHz, progress)
	*phase += freq / float64(sampleRate)
	*phase -= math.Floor(*phase)

	v := math.Sin(2 * math.Pi * *phase)
	if t.Square {
		v = Sign(v)
	}
	return envelope * v
}

// Samples is the tone length in frames at sampleRate.
func (t Tone) Samples(sampleRate int) int {
	if t.Duration <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(t.Duration * float64(sampleRate))
}

// PCM renders the tone as signed 16-bit little-endian stereo frames scaled
// by volume.
func (t Tone) PCM(sampleRate int, volume float64) []byte {
	n := t.Samples(sampleRate)
	volume = Clamp(volume, 0, 1)
	out := make([]byte, n*4)
	var phase float64
	seed := uint32(0x9e3779b9)
	for i := 0; i < n; i++ {
		s := int16(t.Sample(i, sampleRate, &phase, &seed) * volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
