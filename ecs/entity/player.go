package entity

import (
	"fmt"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// NewPlayer builds the player at (x, y). The position is also remembered as
// the spawn point used by ResetPlayer.
func NewPlayer(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "player.yaml")
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: prefab has no player component")
	}
	player.SpawnX = x
	player.SpawnY = y

	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("player: set transform: %w", err)
	}
	if err := SetEntityVelocity(w, e, 0, 0); err != nil {
		return 0, fmt.Errorf("player: set velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(common.PlayerMaxHealth)); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	return e, nil
}

// ResetPlayer restores full health, moves the player back to its spawn point
// and re-enables its body and sprite.
func ResetPlayer(w *ecs.World, e ecs.Entity) error {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return fmt.Errorf("player: reset %s: %w", e, component.ErrEntityNotAlive)
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		h.Reset()
	}
	if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		*in = component.Input{}
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Disabled = false
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = false
	}
	if err := SetEntityVelocity(w, e, 0, 0); err != nil {
		return err
	}
	return SetEntityTransform(w, e, player.SpawnX, player.SpawnY)
}

// DisablePlayer takes the player out of the simulation without destroying it.
func DisablePlayer(w *ecs.World, e ecs.Entity) {
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Disabled = true
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = true
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		*v = component.Velocity{}
	}
}
