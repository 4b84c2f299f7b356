package render

import (
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

var (
	barBackColor   = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xc0}
	debugBodyColor = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xa0}
)

// Renderer draws the world: background, sprites sorted by layer, life bars
// and, in debug mode, collider outlines.
type Renderer struct {
	Debug bool
}

func NewRenderer(debug bool) *Renderer {
	return &Renderer{Debug: debug}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if bg, err := LoadImage("background"); err == nil {
		screen.DrawImage(bg, nil)
	}

	entities := ecs.Query(w, component.TransformComponent.Kind().ID(), component.SpriteComponent.Kind().ID())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Hidden {
			continue
		}
		img := spriteImage(s.Key)
		if img == nil {
			continue
		}

		bounds := img.Bounds()
		sx, sy := 1.0, 1.0
		if s.Width > 0 {
			sx = s.Width / float64(bounds.Dx())
		}
		if s.Height > 0 {
			sy = s.Height / float64(bounds.Dy())
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		screen.DrawImage(img, op)

		if r.Debug {
			if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && !body.Disabled {
				vector.StrokeCircle(screen, float32(t.X), float32(t.Y), float32(body.Radius), 1, debugBodyColor, true)
			}
		}
	}

	ecs.ForEach(w, component.LifeBarComponent.Kind(), func(e ecs.Entity, bar *component.LifeBar) {
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && s.Hidden {
			return
		}
		drawLifeBar(screen, bar)
	})
}

// spriteImage logs a missing key once and then skips it quietly.
func spriteImage(key string) *ebiten.Image {
	img, err := LoadImage(key)
	if err != nil {
		if markMissing(key) {
			log.Printf("render: %v", err)
		}
		return nil
	}
	return img
}

func drawLifeBar(screen *ebiten.Image, bar *component.LifeBar) {
	x, y := float32(bar.X), float32(bar.Y)
	vector.FillRect(screen, x, y, float32(bar.MaxWidth), float32(bar.Height), barBackColor, false)
	if bar.Width <= 0 {
		return
	}
	clr := bar.Color
	if clr == nil {
		clr = color.NRGBA{R: 0xff, A: 0xff}
	}
	vector.FillRect(screen, x, y, float32(bar.Width), float32(bar.Height), clr, false)
}
