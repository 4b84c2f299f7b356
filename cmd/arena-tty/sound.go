package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/arena/common"
)

const sampleRate = beep.SampleRate(common.SampleRate)

// beepSound plays the synthesized cues through the beep speaker.
type beepSound struct {
	initialized bool
}

func newBeepSound() *beepSound {
	s := &beepSound{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio: %v", err)
		return s
	}
	s.initialized = true
	return s
}

func (s *beepSound) Play(name string, volume float64) {
	if s == nil || !s.initialized {
		return
	}
	tone, ok := common.Tones[name]
	if !ok {
		sine, err := generators.SineTone(sampleRate, 660)
		if err != nil {
			log.Printf("audio: %v", err)
			return
		}
		speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
		return
	}
	speaker.Play(toneStreamer(tone, volume))
}

func (s *beepSound) Close() {
	if s == nil || !s.initialized {
		return
	}
	speaker.Close()
}

// toneStreamer renders tone into beep's float stereo frames.
func toneStreamer(tone common.Tone, volume float64) beep.Streamer {
	total := tone.Samples(int(sampleRate))
	volume = common.Clamp(volume, 0, 1)
	var (
		pos   int
		phase float64
		seed  = uint32(0x9e3779b9)
	)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			v := tone.Sample(pos, int(sampleRate), &phase, &seed) * volume
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
