package main

import (
	"fmt"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs/system"
	"github.com/milk9111/arena/session"
)

type soakConfig struct {
	Frames int
	Seed   uint64
	Script string
	Store  session.HighScoreStore
}

// soakReport summarizes the finished runs. A run still in progress when the
// frame budget ends is counted separately.
type soakReport struct {
	Scores   []int
	Partial  int
	Best     int
	Restarts int
}

func (r soakReport) Mean() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range r.Scores {
		sum += s
	}
	return float64(sum) / float64(len(r.Scores))
}

// runSoak plays the session with the scripted pilot for cfg.Frames fixed
// steps, restarting after every game over.
func runSoak(cfg soakConfig, onRun func(run, score int)) (soakReport, error) {
	pilot, err := system.NewAutopilot(cfg.Script)
	if err != nil {
		return soakReport{}, fmt.Errorf("soak: %w", err)
	}

	s := session.New(session.Options{
		Seed:  cfg.Seed,
		Store: cfg.Store,
		Input: pilot,
	})
	if err := s.Initialize(); err != nil {
		return soakReport{}, fmt.Errorf("soak: %w", err)
	}

	var report soakReport
	for frame := 0; frame < cfg.Frames; frame++ {
		s.Step(1.0 / common.TPS)
		if pilot.Fire() {
			s.Shoot()
		}

		if s.State().Phase != session.GameOver {
			continue
		}
		st := s.State()
		report.Scores = append(report.Scores, st.Score)
		if onRun != nil {
			onRun(len(report.Scores), st.Score)
		}
		if err := s.Restart(); err != nil {
			return report, fmt.Errorf("soak: %w", err)
		}
	}

	report.Partial = s.State().Score
	report.Best = s.State().HighScore
	report.Restarts = s.Restarts()
	return report, nil
}
