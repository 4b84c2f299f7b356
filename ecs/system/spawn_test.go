package system

import (
	"errors"
	"testing"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
)

func TestSpawnerPlacement(t *testing.T) {
	tests := []struct {
		kind  component.EntityKind
		speed float64
	}{
		{component.KindEnemy, 100},
		{component.KindMeteor, 50},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			w := newArenaWorld(t)
			s := NewSpawner(7)
			ents, err := s.Spawn(w, tc.kind, 200)
			if err != nil {
				t.Fatal(err)
			}
			if len(ents) != 200 || countKind(w, tc.kind) != 200 {
				t.Fatalf("spawned %d, counted %d", len(ents), countKind(w, tc.kind))
			}
			for _, e := range ents {
				tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
				if tr.X < 100 || tr.X > 1180 || tr.Y < 50 || tr.Y > 670 {
					t.Fatalf("spawned outside interior at (%v,%v)", tr.X, tr.Y)
				}
				v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
				if v.X < -tc.speed || v.X > tc.speed || v.Y < -tc.speed || v.Y > tc.speed {
					t.Fatalf("velocity (%v,%v) outside ±%v", v.X, v.Y, tc.speed)
				}
			}
		})
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	positions := func() []component.Transform {
		w := newArenaWorld(t)
		ents, err := NewSpawner(42).Spawn(w, component.KindEnemy, 5)
		if err != nil {
			t.Fatal(err)
		}
		out := make([]component.Transform, 0, len(ents))
		for _, e := range ents {
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			out = append(out, *tr)
		}
		return out
	}
	a, b := positions(), positions()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded spawn %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnerPopulate(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		w := newArenaWorld(t)
		if err := NewSpawner(seed).Populate(w, prefabs.PopulationSpec{Enemies: 3, MeteorsMin: 2, MeteorsMax: 3}); err != nil {
			t.Fatal(err)
		}
		if n := countKind(w, component.KindEnemy); n != 3 {
			t.Fatalf("seed %d: %d enemies", seed, n)
		}
		if n := countKind(w, component.KindMeteor); n < 2 || n > 3 {
			t.Fatalf("seed %d: %d meteors", seed, n)
		}
	}
}

func TestSpawnerErrors(t *testing.T) {
	s := NewSpawner(1)
	if _, err := s.Spawn(ecs.NewWorld(), component.KindEnemy, 1); !errors.Is(err, ErrNoArena) {
		t.Fatalf("expected ErrNoArena, got %v", err)
	}
	if _, err := s.Spawn(newArenaWorld(t), component.KindBullet, 1); err == nil {
		t.Fatal("bullets are not spawnable")
	}
	if ents, err := s.Spawn(newArenaWorld(t), component.KindEnemy, 0); err != nil || ents != nil {
		t.Fatalf("zero count should be a no-op, got %v %v", ents, err)
	}
}
