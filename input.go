package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/arena/ecs/system"
)

// Commands are the edge-triggered keys read once per frame.
type Commands struct {
	Shoot   bool
	Pause   bool
	Resume  bool
	Restart bool
	Copy    bool
}

// pollKeys refreshes the held direction keys in place and returns this
// frame's commands.
func pollKeys(keys *system.KeyState) Commands {
	keys.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	keys.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	keys.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	keys.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	return Commands{
		Shoot:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		Resume:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Copy:    inpututil.IsKeyJustPressed(ebiten.KeyC),
	}
}
