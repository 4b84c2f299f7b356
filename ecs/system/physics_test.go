package system

import (
	"testing"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
)

func step(w *ecs.World, ps *PhysicsSystem) []ecs.Event {
	w.Tick(1.0 / 60)
	ps.Update(w)
	return w.Events().Drain()
}

func contacts(events []ecs.Event, kind ecs.ContactKind) []ecs.ContactEvent {
	var out []ecs.ContactEvent
	for _, evt := range events {
		if c, ok := evt.Data.(ecs.ContactEvent); ok && c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func exits(events []ecs.Event) []ecs.Entity {
	var out []ecs.Entity
	for _, evt := range events {
		if x, ok := evt.Data.(ecs.BoundsExitEvent); ok {
			out = append(out, x.Entity)
		}
	}
	return out
}

func TestPhysicsContactOnsetOnly(t *testing.T) {
	w := newArenaWorld(t)
	ps := NewPhysicsSystem()
	player, err := entity.NewPlayer(w, 640, 360)
	if err != nil {
		t.Fatal(err)
	}
	meteor, err := entity.NewMeteor(w, 650, 360, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	var onsets int
	for i := 0; i < 10; i++ {
		got := contacts(step(w, ps), ecs.ContactPlayerMeteor)
		for _, c := range got {
			if c.A != player || c.B != meteor {
				t.Fatalf("contact ordered %v/%v, want player first", c.A, c.B)
			}
		}
		onsets += len(got)
	}
	if onsets != 1 {
		t.Fatalf("stationary overlap reported %d times, want 1", onsets)
	}

	// Separate, then touch again.
	if err := entity.SetEntityTransform(w, meteor, 900, 360); err != nil {
		t.Fatal(err)
	}
	step(w, ps)
	if err := entity.SetEntityTransform(w, meteor, 650, 360); err != nil {
		t.Fatal(err)
	}
	if got := contacts(step(w, ps), ecs.ContactPlayerMeteor); len(got) != 1 {
		t.Fatalf("re-contact reported %d times, want 1", len(got))
	}
}

func TestPhysicsIgnoresUnrelatedPairs(t *testing.T) {
	w := newArenaWorld(t)
	ps := NewPhysicsSystem()
	if _, err := entity.NewEnemy(w, 400, 400, 0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := entity.NewMeteor(w, 405, 400, 0, 0); err != nil {
		t.Fatal(err)
	}
	if events := step(w, ps); len(events) != 0 {
		t.Fatalf("enemy/meteor overlap produced %d events", len(events))
	}
}

func TestPhysicsMovesByVelocity(t *testing.T) {
	w := newArenaWorld(t)
	ps := NewPhysicsSystem()
	e, err := entity.NewEnemy(w, 400, 400, 60, -30)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 60; i++ {
		step(w, ps)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if d := tr.X - 460; d > 0.5 || d < -0.5 {
		t.Fatalf("x = %v after 1s at 60/s", tr.X)
	}
	if d := tr.Y - 370; d > 0.5 || d < -0.5 {
		t.Fatalf("y = %v after 1s at -30/s", tr.Y)
	}
}

func TestPhysicsBounds(t *testing.T) {
	t.Run("enemy_touching_edge_exits", func(t *testing.T) {
		w := newArenaWorld(t)
		ps := NewPhysicsSystem()
		e, err := entity.NewEnemy(w, 15, 300, -10, 0)
		if err != nil {
			t.Fatal(err)
		}
		got := exits(step(w, ps))
		if len(got) != 1 || got[0] != e {
			t.Fatalf("exits %v, want [%v]", got, e)
		}
	})

	t.Run("player_is_clamped", func(t *testing.T) {
		w := newArenaWorld(t)
		ps := NewPhysicsSystem()
		p, err := entity.NewPlayer(w, 5, 5)
		if err != nil {
			t.Fatal(err)
		}
		if got := exits(step(w, ps)); len(got) != 0 {
			t.Fatalf("player reported exits %v", got)
		}
		tr, _ := ecs.Get(w, p, component.TransformComponent.Kind())
		body, _ := ecs.Get(w, p, component.PhysicsBodyComponent.Kind())
		if tr.X < body.Radius || tr.Y < body.Radius {
			t.Fatalf("player at (%v,%v) not clamped to radius %v", tr.X, tr.Y, body.Radius)
		}
	})

	t.Run("bullet_exits_top_only", func(t *testing.T) {
		w := newArenaWorld(t)
		ps := NewPhysicsSystem()
		pool, err := NewBulletPool(w, 2)
		if err != nil {
			t.Fatal(err)
		}
		top, _ := pool.Acquire(w)
		side, _ := pool.Acquire(w)
		_ = entity.SetEntityTransform(w, top, 300, 2)
		_ = entity.SetEntityVelocity(w, top, 0, -300)
		_ = entity.SetEntityTransform(w, side, 1, 300)

		got := exits(step(w, ps))
		if len(got) != 1 || got[0] != top {
			t.Fatalf("exits %v, want only %v", got, top)
		}
	})
}

func TestPhysicsDropsInactiveBodies(t *testing.T) {
	w := newArenaWorld(t)
	ps := NewPhysicsSystem()
	pool, err := NewBulletPool(w, 3)
	if err != nil {
		t.Fatal(err)
	}
	player, err := entity.NewPlayer(w, 640, 360)
	if err != nil {
		t.Fatal(err)
	}
	step(w, ps)
	if ps.Bodies() != 1 {
		t.Fatalf("only the player should be simulated, have %d", ps.Bodies())
	}

	b, _ := pool.Acquire(w)
	step(w, ps)
	if ps.Bodies() != 2 {
		t.Fatalf("fired bullet not simulated, have %d", ps.Bodies())
	}

	pool.Release(w, b)
	entity.DisablePlayer(w, player)
	step(w, ps)
	if ps.Bodies() != 0 {
		t.Fatalf("released bullet and disabled player still simulated: %d", ps.Bodies())
	}
}

func TestPhysicsBulletHitsEnemy(t *testing.T) {
	w := newArenaWorld(t)
	ps := NewPhysicsSystem()
	pool, err := NewBulletPool(w, 1)
	if err != nil {
		t.Fatal(err)
	}
	enemy, err := entity.NewEnemy(w, 300, 200, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := pool.Acquire(w)
	_ = entity.SetEntityTransform(w, b, 300, 260)
	_ = entity.SetEntityVelocity(w, b, 0, -300)

	var hit []ecs.ContactEvent
	for i := 0; i < 30 && len(hit) == 0; i++ {
		hit = contacts(step(w, ps), ecs.ContactBulletEnemy)
	}
	if len(hit) != 1 || hit[0].A != b || hit[0].B != enemy {
		t.Fatalf("bullet contact %+v", hit)
	}
}
