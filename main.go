package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arena/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (collider outlines, stats)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "spawn seed (0 picks one from the clock)")
	watch := flag.Bool("watch", false, "watch prefabs/ and restart on edits after game over")
	scores := flag.String("scores", "", "high score file (defaults to the arena prefab setting)")
	autopilot := flag.Bool("autopilot", false, "let the scripted pilot play")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("arena")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(GameOptions{
		Debug:     *debug,
		Seed:      *seed,
		Scores:    *scores,
		Autopilot: *autopilot,
		Watch:     *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
