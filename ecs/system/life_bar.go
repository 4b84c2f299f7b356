package system

import (
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// BarExtent maps health to a bar width in [0, maxWidth]. Out-of-range health
// is clamped. A non-positive maxHealth yields an empty bar.
func BarExtent(health, maxHealth int, maxWidth float64) float64 {
	if maxHealth <= 0 || maxWidth <= 0 {
		return 0
	}
	h := common.Clamp(float64(health), 0, float64(maxHealth))
	return maxWidth * h / float64(maxHealth)
}

type LifeBarSystem struct{}

func NewLifeBarSystem() *LifeBarSystem {
	return &LifeBarSystem{}
}

func (l *LifeBarSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.LifeBarComponent.Kind(), func(e ecs.Entity, _ *component.LifeBar) {
		RefreshLifeBar(w, e)
	})
}

// RefreshLifeBar anchors e's bar above its current position and resizes it
// to its current health.
func RefreshLifeBar(w *ecs.World, e ecs.Entity) {
	bar, ok := ecs.Get(w, e, component.LifeBarComponent.Kind())
	if !ok {
		return
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		bar.X = t.X + bar.OffsetX
		bar.Y = t.Y + bar.OffsetY
	}
	var d component.Damageable
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		d = h
	}
	if d == nil {
		bar.Width = bar.MaxWidth
		return
	}
	bar.Width = BarExtent(d.CurrentHP(), d.MaxHP(), bar.MaxWidth)
}
