package system

import (
	"testing"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
)

type combatFixture struct {
	w        *ecs.World
	player   ecs.Entity
	pool     *BulletPool
	listener *recordingListener
	combat   *CombatSystem
}

func newCombatFixture(t *testing.T) *combatFixture {
	t.Helper()
	w := newArenaWorld(t)
	player, err := entity.NewPlayer(w, 640, 360)
	if err != nil {
		t.Fatal(err)
	}
	pool, err := NewBulletPool(w, 4)
	if err != nil {
		t.Fatal(err)
	}
	listener := &recordingListener{}
	return &combatFixture{
		w:        w,
		player:   player,
		pool:     pool,
		listener: listener,
		combat:   NewCombatSystem(NewSpawner(3), pool, listener),
	}
}

func (f *combatFixture) enemy(t *testing.T) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(f.w, 300, 300, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func (f *combatFixture) meteor(t *testing.T) ecs.Entity {
	t.Helper()
	e, err := entity.NewMeteor(f.w, 500, 500, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func (f *combatFixture) bullet(t *testing.T) ecs.Entity {
	t.Helper()
	e, ok := f.pool.Acquire(f.w)
	if !ok {
		t.Fatal("pool exhausted")
	}
	return e
}

func TestBulletKillsEnemyOnSecondHit(t *testing.T) {
	f := newCombatFixture(t)
	enemy := f.enemy(t)

	first := f.bullet(t)
	f.w.Events().PushContact(ecs.ContactBulletEnemy, first, enemy)
	f.combat.Update(f.w)

	if h := health(t, f.w, enemy); h.Current != 10 {
		t.Fatalf("enemy health %d after one hit, want 10", h.Current)
	}
	if f.listener.score != 0 {
		t.Fatalf("score %d before kill", f.listener.score)
	}
	if f.pool.Free() != f.pool.Size() {
		t.Fatal("bullet must return to the pool on hit")
	}

	before := countKind(f.w, component.KindEnemy)
	second := f.bullet(t)
	f.w.Events().PushContact(ecs.ContactBulletEnemy, second, enemy)
	f.combat.Update(f.w)

	if ecs.IsAlive(f.w, enemy) {
		t.Fatal("enemy should be destroyed")
	}
	if f.listener.score != 10 {
		t.Fatalf("score %d, want 10", f.listener.score)
	}
	if got := countKind(f.w, component.KindEnemy); got != before+1 {
		t.Fatalf("enemy count %d, want net +1 from %d", got, before)
	}
}

func TestSecondBulletOnDestroyedEnemyIsNoop(t *testing.T) {
	f := newCombatFixture(t)
	enemy := f.enemy(t)
	health(t, f.w, enemy).ApplyDamage(10)

	a, b := f.bullet(t), f.bullet(t)
	f.w.Events().PushContact(ecs.ContactBulletEnemy, a, enemy)
	f.w.Events().PushContact(ecs.ContactBulletEnemy, b, enemy)
	f.combat.Update(f.w)

	if f.listener.score != 10 {
		t.Fatalf("score %d, want exactly one kill", f.listener.score)
	}
	if countKind(f.w, component.KindEnemy) != 2 {
		t.Fatalf("expected exactly one kill respawn, have %d enemies", countKind(f.w, component.KindEnemy))
	}
	if bullet, _ := ecs.Get(f.w, b, component.BulletComponent.Kind()); !bullet.Active {
		t.Fatal("bullet that hit nothing stays in flight")
	}
}

func TestInactiveBulletCannotHit(t *testing.T) {
	f := newCombatFixture(t)
	enemy := f.enemy(t)
	b := f.bullet(t)
	f.pool.Release(f.w, b)

	f.w.Events().PushContact(ecs.ContactBulletEnemy, b, enemy)
	f.combat.Update(f.w)

	if h := health(t, f.w, enemy); h.Current != 20 {
		t.Fatalf("released bullet dealt damage, health %d", h.Current)
	}
}

func TestPlayerEnemyContact(t *testing.T) {
	tests := []struct {
		name          string
		startHealth   int
		wantHealth    int
		wantDefeated  int
		wantEnemies   int
		trailingEvent bool
	}{
		{name: "survives_and_respawns", startHealth: 100, wantHealth: 90, wantEnemies: 1},
		{name: "defeated_skips_respawn", startHealth: 10, wantHealth: 0, wantDefeated: 1, wantEnemies: 0, trailingEvent: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newCombatFixture(t)
			h := health(t, f.w, f.player)
			h.ApplyDamage(h.Initial - tc.startHealth)
			enemy := f.enemy(t)

			f.w.Events().PushContact(ecs.ContactPlayerEnemy, f.player, enemy)
			var meteor ecs.Entity
			if tc.trailingEvent {
				meteor = f.meteor(t)
				f.w.Events().PushBoundsExit(meteor)
			}
			f.combat.Update(f.w)

			if ecs.IsAlive(f.w, enemy) {
				t.Fatal("player always destroys the enemy")
			}
			if h.Current != tc.wantHealth || f.listener.defeated != tc.wantDefeated {
				t.Fatalf("health %d defeated %d", h.Current, f.listener.defeated)
			}
			if got := countKind(f.w, component.KindEnemy); got != tc.wantEnemies {
				t.Fatalf("enemies %d, want %d", got, tc.wantEnemies)
			}
			if tc.trailingEvent && !ecs.IsAlive(f.w, meteor) {
				t.Fatal("events after defeat must be dropped")
			}
			bar, _ := ecs.Get(f.w, f.player, component.LifeBarComponent.Kind())
			if bar.Width != BarExtent(tc.wantHealth, 100, 80) {
				t.Fatalf("life bar width %v not refreshed", bar.Width)
			}
		})
	}
}

func TestMeteorContacts(t *testing.T) {
	f := newCombatFixture(t)
	meteor := f.meteor(t)

	for i := 0; i < 2; i++ {
		f.w.Events().PushContact(ecs.ContactPlayerMeteor, f.player, meteor)
		f.combat.Update(f.w)
	}

	if h := health(t, f.w, f.player); h.Current != 80 {
		t.Fatalf("player health %d, want 80", h.Current)
	}
	if !ecs.IsAlive(f.w, meteor) {
		t.Fatal("meteors survive contact")
	}
	if f.listener.defeated != 0 {
		t.Fatal("unexpected defeat")
	}
}

func TestDisabledPlayerIgnoresContacts(t *testing.T) {
	f := newCombatFixture(t)
	entity.DisablePlayer(f.w, f.player)
	meteor := f.meteor(t)

	f.w.Events().PushContact(ecs.ContactPlayerMeteor, f.player, meteor)
	f.combat.Update(f.w)

	if h := health(t, f.w, f.player); h.Current != 100 {
		t.Fatalf("disabled player took damage: %d", h.Current)
	}
}

func TestBoundsExitRespawns(t *testing.T) {
	tests := []struct {
		name string
		kind component.EntityKind
	}{
		{"enemy", component.KindEnemy},
		{"meteor", component.KindMeteor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newCombatFixture(t)
			var e ecs.Entity
			if tc.kind == component.KindEnemy {
				e = f.enemy(t)
			} else {
				e = f.meteor(t)
			}
			before := countKind(f.w, tc.kind)

			f.w.Events().PushBoundsExit(e)
			f.combat.Update(f.w)

			if ecs.IsAlive(f.w, e) {
				t.Fatal("exited entity must be destroyed")
			}
			if got := countKind(f.w, tc.kind); got != before {
				t.Fatalf("population %d, want %d", got, before)
			}
		})
	}

	t.Run("bullet", func(t *testing.T) {
		f := newCombatFixture(t)
		b := f.bullet(t)
		f.w.Events().PushBoundsExit(b)
		f.combat.Update(f.w)
		if f.pool.Free() != f.pool.Size() || !ecs.IsAlive(f.w, b) {
			t.Fatal("bullet must be recycled, not destroyed")
		}
	})

	t.Run("player_ignored", func(t *testing.T) {
		f := newCombatFixture(t)
		f.w.Events().PushBoundsExit(f.player)
		f.combat.Update(f.w)
		if !ecs.IsAlive(f.w, f.player) {
			t.Fatal("player is never destroyed by bounds")
		}
	})
}
