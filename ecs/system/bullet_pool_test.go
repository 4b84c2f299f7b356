package system

import (
	"testing"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

func TestBulletPoolAcquireRelease(t *testing.T) {
	w := ecs.NewWorld()
	pool, err := NewBulletPool(w, 3)
	if err != nil {
		t.Fatal(err)
	}
	if pool.Size() != 3 || pool.Free() != 3 {
		t.Fatalf("size %d free %d", pool.Size(), pool.Free())
	}

	var got []ecs.Entity
	for i := 0; i < 3; i++ {
		e, ok := pool.Acquire(w)
		if !ok {
			t.Fatalf("acquire %d failed", i)
		}
		sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if sprite.Hidden {
			t.Fatal("acquired bullet must be visible")
		}
		got = append(got, e)
	}

	t.Run("exhausted_is_noop", func(t *testing.T) {
		before := ecs.Count(w)
		if _, ok := pool.Acquire(w); ok {
			t.Fatal("expected exhausted pool")
		}
		if pool.Free() != 0 || ecs.Count(w) != before {
			t.Fatal("exhausted acquire changed state")
		}
	})

	t.Run("release_is_idempotent", func(t *testing.T) {
		if !pool.Release(w, got[1]) {
			t.Fatal("first release should succeed")
		}
		if pool.Release(w, got[1]) {
			t.Fatal("second release should be a no-op")
		}
		if pool.Free() != 1 {
			t.Fatalf("free %d, want 1", pool.Free())
		}
	})

	t.Run("reacquire_lowest_slot", func(t *testing.T) {
		e, ok := pool.Acquire(w)
		if !ok || e != got[1] {
			t.Fatalf("expected slot 1 back, got %v ok=%v", e, ok)
		}
	})

	t.Run("foreign_entity_rejected", func(t *testing.T) {
		other := ecs.CreateEntity(w)
		if pool.Release(w, other) {
			t.Fatal("release of a non-bullet must fail")
		}
	})

	t.Run("release_all", func(t *testing.T) {
		pool.ReleaseAll(w)
		if pool.Free() != pool.Size() {
			t.Fatalf("free %d after ReleaseAll", pool.Free())
		}
	})
}

func TestBulletPoolRejectsEmptySize(t *testing.T) {
	if _, err := NewBulletPool(ecs.NewWorld(), 0); err == nil {
		t.Fatal("expected error for empty pool")
	}
}
