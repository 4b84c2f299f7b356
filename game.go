package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/arena/assets"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs/render"
	"github.com/milk9111/arena/ecs/system"
	"github.com/milk9111/arena/prefabs"
	"github.com/milk9111/arena/session"
	"golang.design/x/clipboard"
)

const autopilotScript = "autopilot.tengo"

type GameOptions struct {
	Debug     bool
	Seed      uint64
	Scores    string
	Autopilot bool
	Watch     bool
}

type Game struct {
	session  *session.Controller
	keys     *system.KeyState
	pilot    *system.Autopilot
	renderer *render.Renderer
	watcher  *prefabs.Watcher

	pauseUI    *ebitenui.UI
	gameOverUI *ebitenui.UI
	summary    *widget.Text

	debug        bool
	lastPhase    session.Phase
	clipboardOK  bool
	reloadQueued bool
}

func NewGame(opts GameOptions) (*Game, error) {
	arena, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, err
	}

	scores := opts.Scores
	if scores == "" {
		scores = arena.Scores.File
	}

	g := &Game{
		keys:     &system.KeyState{},
		renderer: render.NewRenderer(opts.Debug),
		debug:    opts.Debug,
	}

	var input system.InputSource = g.keys
	if opts.Autopilot {
		pilot, err := system.NewAutopilot(autopilotScript)
		if err != nil {
			return nil, fmt.Errorf("autopilot: %w", err)
		}
		g.pilot = pilot
		input = pilot
	}

	assets.Load()
	if err := render.Preload("background", "player", "enemy", "meteor", "bullet"); err != nil {
		return nil, err
	}
	g.session = session.New(session.Options{
		Arena: arena,
		Seed:  opts.Seed,
		Store: session.NewFileStore(scores),
		Input: input,
		Sound: assets.NewSoundBank(),
	})
	if err := g.session.Initialize(); err != nil {
		return nil, err
	}

	g.pauseUI = NewPauseUI(g)
	g.gameOverUI, g.summary = NewGameOverUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: %v", err)
	} else {
		g.clipboardOK = true
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.WatchDirs()...)
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.pollWatcher()

	cmd := pollKeys(g.keys)
	if cmd.Pause {
		g.session.Pause()
	}
	if cmd.Resume {
		g.session.Resume()
	}
	if cmd.Restart {
		g.restart()
	}
	if cmd.Copy {
		g.copyScore()
	}
	if cmd.Shoot && g.pilot == nil {
		g.session.Shoot()
	}

	g.session.Step(1.0 / common.TPS)

	if g.pilot != nil && g.pilot.Fire() {
		g.session.Shoot()
	}

	phase := g.session.State().Phase
	if g.debug && phase != g.lastPhase {
		log.Printf("game: %s -> %s", g.lastPhase, phase)
	}
	g.lastPhase = phase

	switch phase {
	case session.Paused:
		g.pauseUI.Update()
	case session.GameOver:
		st := g.session.State()
		g.summary.Label = fmt.Sprintf("Score %d (best %d)", st.Score, st.HighScore)
		g.gameOverUI.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.session.World(), screen)

	st := g.session.State()
	render.DrawHUD(screen, st.Score, st.HighScore)

	switch st.Phase {
	case session.Paused:
		g.pauseUI.Draw(screen)
	case session.GameOver:
		g.gameOverUI.Draw(screen)
	}

	if g.debug {
		enemies, meteors := g.session.Population()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  enemies: %d  meteors: %d  free bullets: %d",
			ebiten.ActualFPS(), enemies, meteors, g.session.Pool().Free()), 16, common.BaseHeight-64)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) restart() {
	err := g.session.Restart()
	if err != nil && !errors.Is(err, session.ErrNotGameOver) {
		log.Printf("restart: %v", err)
	}
	if err == nil {
		g.reloadQueued = false
	}
}

// reloadPilot recompiles the autopilot script. The old pilot keeps flying
// when the new script fails to compile.
func (g *Game) reloadPilot() {
	pilot, err := system.NewAutopilot(autopilotScript)
	if err != nil {
		log.Printf("watch: %v", err)
		return
	}
	g.pilot = pilot
	g.session.SetInput(pilot)
}

func (g *Game) copyScore() {
	st := g.session.State()
	if !g.clipboardOK || st.Phase != session.GameOver {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(fmt.Sprintf("Score %d (best %d)", st.Score, st.HighScore)))
}

// pollWatcher drains pending file changes. Prefabs are read on every build,
// so an edit takes effect on the next spawn; a session waiting in game over
// is restarted right away to show it.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %s changed", change.Path)
			if change.Script && g.pilot != nil {
				g.reloadPilot()
			}
			g.reloadQueued = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			if g.reloadQueued && g.session.State().Phase == session.GameOver {
				g.restart()
			}
			return
		}
	}
}
