package entity

import (
	"fmt"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
)

// NewArena creates the singleton entity describing the play field.
func NewArena(w *ecs.World, spec prefabs.ArenaSpec) (ecs.Entity, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ArenaBoundsComponent.Kind(), &component.ArenaBounds{
		Width:   spec.World.Width,
		Height:  spec.World.Height,
		MarginX: spec.World.SpawnMarginX,
		MarginY: spec.World.SpawnMarginY,
	}); err != nil {
		return 0, fmt.Errorf("arena: add bounds: %w", err)
	}
	if err := ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{ID: "arena", KeepOnReload: true}); err != nil {
		return 0, fmt.Errorf("arena: add persistent: %w", err)
	}
	return e, nil
}
