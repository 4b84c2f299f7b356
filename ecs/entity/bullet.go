package entity

import (
	"fmt"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// NewBullet builds an inactive pooled bullet bound to slot.
func NewBullet(w *ecs.World, slot int) (ecs.Entity, error) {
	e, err := BuildEntity(w, "bullet.yaml")
	if err != nil {
		return 0, fmt.Errorf("bullet: %w", err)
	}
	b, ok := ecs.Get(w, e, component.BulletComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("bullet: prefab has no bullet component")
	}
	b.Slot = slot
	b.Active = false

	if err := SetEntityVelocity(w, e, 0, 0); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("bullet: set velocity: %w", err)
	}
	if _, ok := ecs.Get(w, e, component.TransformComponent.Kind()); !ok {
		if err := SetEntityTransform(w, e, 0, 0); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("bullet: set transform: %w", err)
		}
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = true
	}
	return e, nil
}
