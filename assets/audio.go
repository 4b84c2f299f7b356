package assets

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/arena/common"
)

// SoundBank plays the synthesized cues through Ebitengine's audio context.
type SoundBank struct {
	ctx   *audio.Context
	clips map[string][]byte
}

func NewSoundBank() *SoundBank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(common.SampleRate)
	}
	clips := make(map[string][]byte, len(common.Tones))
	for name, tone := range common.Tones {
		clips[name] = tone.PCM(ctx.SampleRate(), 1)
	}
	return &SoundBank{ctx: ctx, clips: clips}
}

// LoadAudioPlayer creates a player for a named cue.
func (s *SoundBank) LoadAudioPlayer(name string) (*audio.Player, error) {
	pcm, ok := s.clips[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown clip %q", name)
	}
	// Clips are already in Ebitengine's native 16-bit stereo format.
	return s.ctx.NewPlayerFromBytes(pcm), nil
}

func (s *SoundBank) Play(name string, volume float64) {
	if s == nil {
		return
	}
	p, err := s.LoadAudioPlayer(name)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	p.SetVolume(volume)
	p.Play()
}
