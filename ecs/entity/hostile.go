package entity

import (
	"fmt"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

func NewEnemy(w *ecs.World, x, y, vx, vy float64) (ecs.Entity, error) {
	e, err := newMover(w, "enemy.yaml", x, y, vx, vy)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(common.EnemyMaxHealth)); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}
	return e, nil
}

// NewMeteor builds a meteor. Meteors carry no health and are never destroyed
// by contact.
func NewMeteor(w *ecs.World, x, y, vx, vy float64) (ecs.Entity, error) {
	e, err := newMover(w, "meteor.yaml", x, y, vx, vy)
	if err != nil {
		return 0, fmt.Errorf("meteor: %w", err)
	}
	return e, nil
}

func newMover(w *ecs.World, prefab string, x, y, vx, vy float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if err := SetEntityVelocity(w, e, vx, vy); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
