package system

import (
	"testing"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
	"github.com/milk9111/arena/prefabs"
)

func newArenaWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	spec, err := prefabs.LoadArenaSpec()
	if err != nil {
		t.Fatalf("load arena spec: %v", err)
	}
	if _, err := entity.NewArena(w, spec); err != nil {
		t.Fatalf("new arena: %v", err)
	}
	return w
}

func countKind(w *ecs.World, kind component.EntityKind) int {
	n := 0
	ecs.ForEach(w, component.TagComponent.Kind(), func(_ ecs.Entity, tag *component.Tag) {
		if tag.Kind == kind {
			n++
		}
	})
	return n
}

func health(t *testing.T, w *ecs.World, e ecs.Entity) *component.Health {
	t.Helper()
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		t.Fatalf("%s has no health", e)
	}
	return h
}

type recordingListener struct {
	score    int
	defeated int
}

func (r *recordingListener) AddScore(points int) { r.score += points }
func (r *recordingListener) PlayerDefeated()     { r.defeated++ }

type recordingSound struct {
	played []string
}

func (r *recordingSound) Play(name string, _ float64) { r.played = append(r.played, name) }
