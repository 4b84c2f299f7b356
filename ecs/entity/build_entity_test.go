package entity

import (
	"testing"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/prefabs"
)

func TestBuildEntityPrefabs(t *testing.T) {
	tests := []struct {
		prefab string
		kind   component.EntityKind
		check  func(t *testing.T, w *ecs.World, e ecs.Entity)
	}{
		{
			prefab: "player.yaml",
			kind:   component.KindPlayer,
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
				if !ok || p.MoveSpeed != 200 {
					t.Fatalf("expected move speed 200, got %+v", p)
				}
				if !ecs.Has(w, e, component.InputComponent.Kind()) {
					t.Fatal("player must carry input")
				}
				body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
				if body == nil || !body.ClampToBounds {
					t.Fatal("player body must clamp to bounds")
				}
				bar, _ := ecs.Get(w, e, component.LifeBarComponent.Kind())
				if bar == nil || bar.MaxWidth != 80 || bar.OffsetX != -40 || bar.OffsetY != -50 {
					t.Fatalf("unexpected life bar %+v", bar)
				}
				a, _ := ecs.Get(w, e, component.AudioComponent.Kind())
				if a == nil || !a.Request("shoot") || !a.Request("game_over") {
					t.Fatal("player audio must offer shoot and game_over")
				}
			},
		},
		{
			prefab: "enemy.yaml",
			kind:   component.KindEnemy,
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				sv, ok := ecs.Get(w, e, component.SpawnVelocityComponent.Kind())
				if !ok || sv.Range != 100 {
					t.Fatalf("expected enemy velocity range 100, got %+v", sv)
				}
			},
		},
		{
			prefab: "meteor.yaml",
			kind:   component.KindMeteor,
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				sv, ok := ecs.Get(w, e, component.SpawnVelocityComponent.Kind())
				if !ok || sv.Range != 50 {
					t.Fatalf("expected meteor velocity range 50, got %+v", sv)
				}
				if ecs.Has(w, e, component.HealthComponent.Kind()) {
					t.Fatal("meteors have no health")
				}
			},
		},
		{
			prefab: "bullet.yaml",
			kind:   component.KindBullet,
			check: func(t *testing.T, w *ecs.World, e ecs.Entity) {
				b, ok := ecs.Get(w, e, component.BulletComponent.Kind())
				if !ok || b.Speed != 300 || b.Active {
					t.Fatalf("unexpected bullet %+v", b)
				}
				p, ok := ecs.Get(w, e, component.PersistentComponent.Kind())
				if !ok || !p.KeepOnReload {
					t.Fatal("bullets survive restart")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.prefab, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := BuildEntity(w, tc.prefab)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			tag, ok := ecs.Get(w, e, component.TagComponent.Kind())
			if !ok || tag.Kind != tc.kind {
				t.Fatalf("expected tag %s, got %+v", tc.kind, tag)
			}
			tc.check(t, w, e)
		})
	}
}

func TestBuildEntityMissingPrefab(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := BuildEntity(w, "nope.yaml"); err == nil {
		t.Fatal("expected error for missing prefab")
	}
	if ecs.Count(w) != 0 {
		t.Fatalf("failed build leaked %d entities", ecs.Count(w))
	}
}

func TestNewEnemyAndMeteor(t *testing.T) {
	w := ecs.NewWorld()
	enemy, err := NewEnemy(w, 300, 200, 50, -20)
	if err != nil {
		t.Fatal(err)
	}
	h, ok := ecs.Get(w, enemy, component.HealthComponent.Kind())
	if !ok || h.Current != common.EnemyMaxHealth {
		t.Fatalf("enemy health %+v", h)
	}
	v, _ := ecs.Get(w, enemy, component.VelocityComponent.Kind())
	if v == nil || v.X != 50 || v.Y != -20 {
		t.Fatalf("enemy velocity %+v", v)
	}

	meteor, err := NewMeteor(w, 400, 300, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	tr, _ := ecs.Get(w, meteor, component.TransformComponent.Kind())
	if tr == nil || tr.X != 400 || tr.Y != 300 {
		t.Fatalf("meteor transform %+v", tr)
	}
}

func TestPlayerResetAndDisable(t *testing.T) {
	w := ecs.NewWorld()
	p, err := NewPlayer(w, 640, 360)
	if err != nil {
		t.Fatal(err)
	}

	h, _ := ecs.Get(w, p, component.HealthComponent.Kind())
	h.ApplyDamage(100)
	if err := SetEntityTransform(w, p, 10, 10); err != nil {
		t.Fatal(err)
	}
	DisablePlayer(w, p)

	body, _ := ecs.Get(w, p, component.PhysicsBodyComponent.Kind())
	sprite, _ := ecs.Get(w, p, component.SpriteComponent.Kind())
	if !body.Disabled || !sprite.Hidden {
		t.Fatal("disabled player must be hidden and out of the space")
	}

	if err := ResetPlayer(w, p); err != nil {
		t.Fatal(err)
	}
	tr, _ := ecs.Get(w, p, component.TransformComponent.Kind())
	if h.Current != common.PlayerMaxHealth || tr.X != 640 || tr.Y != 360 {
		t.Fatalf("reset player: health %d at (%v,%v)", h.Current, tr.X, tr.Y)
	}
	if body.Disabled || sprite.Hidden {
		t.Fatal("reset player must be re-enabled")
	}
}

func TestNewArena(t *testing.T) {
	w := ecs.NewWorld()
	spec, err := prefabs.LoadArenaSpec()
	if err != nil {
		t.Fatal(err)
	}
	e, err := NewArena(w, spec)
	if err != nil {
		t.Fatal(err)
	}
	b, ok := ecs.Get(w, e, component.ArenaBoundsComponent.Kind())
	if !ok || b.Width != 1280 || b.MarginY != 50 {
		t.Fatalf("unexpected bounds %+v", b)
	}

	spec.World.SpawnMarginX = spec.World.Width
	if _, err := NewArena(w, spec); err == nil {
		t.Fatal("expected invalid arena error")
	}
}
