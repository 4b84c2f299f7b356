package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/session"
)

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	enemyStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	meteorStyle = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	bulletStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

func glyph(kind component.EntityKind) (rune, tcell.Style) {
	switch kind {
	case component.KindPlayer:
		return '@', playerStyle
	case component.KindEnemy:
		return 'W', enemyStyle
	case component.KindMeteor:
		return 'O', meteorStyle
	case component.KindBullet:
		return '|', bulletStyle
	}
	return '?', tcell.StyleDefault
}

// cellFor maps a world position onto a cols x rows grid.
func cellFor(x, y, worldW, worldH float64, cols, rows int) (int, int, bool) {
	if worldW <= 0 || worldH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	if x < 0 || y < 0 || x > worldW || y > worldH {
		return 0, 0, false
	}
	col := int(x / worldW * float64(cols))
	row := int(y / worldH * float64(rows))
	if col >= cols {
		col = cols - 1
	}
	if row >= rows {
		row = rows - 1
	}
	return col, row, true
}

// healthBar renders hp as a fixed-width text bar.
func healthBar(hp, maxHP, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if maxHP > 0 {
		filled = hp * width / maxHP
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func drawWorld(screen tcell.Screen, s *session.Controller) {
	screen.Clear()
	cols, rows := screen.Size()
	w := s.World()

	worldW, worldH := 0.0, 0.0
	if arena, ok := ecs.First(w, component.ArenaBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, arena, component.ArenaBoundsComponent.Kind()); ok {
			worldW, worldH = b.Width, b.Height
		}
	}

	ecs.ForEach2(w, component.TagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tag *component.Tag, t *component.Transform) {
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite.Hidden {
			return
		}
		col, row, ok := cellFor(t.X, t.Y, worldW, worldH, cols, rows-1)
		if !ok {
			return
		}
		r, style := glyph(tag.Kind)
		screen.SetContent(col, row+1, r, nil, style)
	})

	st := s.State()
	hp, maxHP := 0, 0
	if h, ok := ecs.Get(w, s.Player(), component.HealthComponent.Kind()); ok {
		hp, maxHP = h.CurrentHP(), h.MaxHP()
	}
	hud := fmt.Sprintf(" Score: %d  High Score: %d  HP %s  %s  arrows move, space fire, p/r pause, enter restart, q quit ",
		st.Score, st.HighScore, healthBar(hp, maxHP, 10), st.Phase)
	drawString(screen, 0, 0, hud, hudStyle)

	switch st.Phase {
	case session.Paused:
		drawCentered(screen, cols, rows, "Paused")
	case session.GameOver:
		drawCentered(screen, cols, rows, fmt.Sprintf("Game Over  score %d  (enter to restart)", st.Score))
	}
	screen.Show()
}

func drawCentered(screen tcell.Screen, cols, rows int, s string) {
	x := (cols - len(s)) / 2
	if x < 0 {
		x = 0
	}
	drawString(screen, x, rows/2, s, bannerStyle)
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
