package system

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
	"github.com/milk9111/arena/prefabs"
)

var ErrNoArena = errors.New("spawn: world has no arena bounds")

// Spawner places enemies and meteors at random interior positions. All
// randomness flows from one seeded source so a session can be replayed.
type Spawner struct {
	rng *rand.Rand
}

func NewSpawner(seed uint64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between returns a uniformly distributed integer in [lo, hi].
func (s *Spawner) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Spawn creates count entities of kind. Only enemies and meteors spawn this
// way; the player and bullets are created once per session.
func (s *Spawner) Spawn(w *ecs.World, kind component.EntityKind, count int) ([]ecs.Entity, error) {
	if count <= 0 {
		return nil, nil
	}
	arena, ok := ecs.First(w, component.ArenaBoundsComponent.Kind())
	if !ok {
		return nil, ErrNoArena
	}
	bounds, _ := ecs.Get(w, arena, component.ArenaBoundsComponent.Kind())

	out := make([]ecs.Entity, 0, count)
	for i := 0; i < count; i++ {
		x := float64(s.Between(int(bounds.MarginX), int(bounds.Width-bounds.MarginX)))
		y := float64(s.Between(int(bounds.MarginY), int(bounds.Height-bounds.MarginY)))

		var (
			e   ecs.Entity
			err error
		)
		switch kind {
		case component.KindEnemy:
			e, err = entity.NewEnemy(w, x, y, 0, 0)
		case component.KindMeteor:
			e, err = entity.NewMeteor(w, x, y, 0, 0)
		default:
			return out, fmt.Errorf("spawn: unsupported kind %s", kind)
		}
		if err != nil {
			return out, fmt.Errorf("spawn %s: %w", kind, err)
		}

		if sv, ok := ecs.Get(w, e, component.SpawnVelocityComponent.Kind()); ok {
			r := int(sv.Range)
			if err := entity.SetEntityVelocity(w, e, float64(s.Between(-r, r)), float64(s.Between(-r, r))); err != nil {
				return out, fmt.Errorf("spawn %s: set velocity: %w", kind, err)
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// Populate spawns the opening wave.
func (s *Spawner) Populate(w *ecs.World, pop prefabs.PopulationSpec) error {
	if _, err := s.Spawn(w, component.KindEnemy, pop.Enemies); err != nil {
		return err
	}
	_, err := s.Spawn(w, component.KindMeteor, s.Between(pop.MeteorsMin, pop.MeteorsMax))
	return err
}
