package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/session"
)

func main() {
	seed := flag.Uint64("seed", 0, "spawn seed (0 picks one from the clock)")
	scores := flag.String("scores", "", "high score file (in-memory when empty)")
	logPath := flag.String("log", "", "write logs to this file; the terminal is taken by the game")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var store session.HighScoreStore = &session.MemoryStore{}
	if *scores != "" {
		store = session.NewFileStore(*scores)
	}

	var sound *beepSound
	if !*mute {
		sound = newBeepSound()
		defer sound.Close()
	}

	keys := newHeldKeys(nil)
	opts := session.Options{Seed: *seed, Store: store, Input: keys}
	if sound != nil {
		opts.Sound = sound
	}
	s := session.New(opts)
	if err := s.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, s, keys)
}

func run(screen tcell.Screen, s *session.Controller, keys *heldKeys) {
	ticker := time.NewTicker(time.Second / common.TPS)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !handleEvent(screen, ev, s, keys) {
				return
			}
		case <-ticker.C:
			s.Step(1.0 / common.TPS)
			drawWorld(screen, s)
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep going.
func handleEvent(screen tcell.Screen, ev tcell.Event, s *session.Controller, keys *heldKeys) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			keys.press(-1, 0)
		case tcell.KeyRight:
			keys.press(1, 0)
		case tcell.KeyUp:
			keys.press(0, -1)
		case tcell.KeyDown:
			keys.press(0, 1)
		case tcell.KeyEnter:
			if err := s.Restart(); err == nil {
				keys.release()
			} else if !errors.Is(err, session.ErrNotGameOver) {
				log.Printf("restart: %v", err)
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.Shoot()
			case 'p':
				s.Pause()
			case 'r':
				s.Resume()
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
