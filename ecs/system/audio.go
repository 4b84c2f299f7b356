package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// SoundPlayer plays a named clip. Playback is fire-and-forget.
type SoundPlayer interface {
	Play(name string, volume float64)
}

type AudioSystem struct {
	player SoundPlayer
}

func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// Update forwards every flagged clip and clears the flag, whether or not a
// player is attached.
func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := len(audioComp.Play)
		if len(audioComp.Names) < count {
			count = len(audioComp.Names)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false
			if a.player == nil {
				continue
			}
			volume := 1.0
			if i < len(audioComp.Volume) {
				volume = audioComp.Volume[i]
			}
			a.player.Play(audioComp.Names[i], volume)
		}
	})
}
