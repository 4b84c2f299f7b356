package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/arena/session"
)

func main() {
	frames := flag.Int("frames", 60*60*5, "number of fixed 1/60 s steps to simulate")
	seed := flag.Uint64("seed", 1, "spawn seed")
	script := flag.String("script", "autopilot.tengo", "pilot script under prefabs/scripts")
	scores := flag.String("scores", "", "high score file (in-memory when empty)")
	flag.Parse()

	var store session.HighScoreStore = &session.MemoryStore{}
	if *scores != "" {
		store = session.NewFileStore(*scores)
	}

	report, err := runSoak(soakConfig{
		Frames: *frames,
		Seed:   *seed,
		Script: *script,
		Store:  store,
	}, func(run, score int) {
		fmt.Printf("run %d: score %d\n", run, score)
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("runs: %d  best: %d  mean: %.1f  unfinished: %d\n",
		len(report.Scores), report.Best, report.Mean(), report.Partial)
}
