package system

import (
	"log"

	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// CombatListener receives the outcomes that belong to the session rather
// than the world.
type CombatListener interface {
	AddScore(points int)
	PlayerDefeated()
}

// CombatSystem drains the frame's contact and bounds events in the order they
// were raised and applies the response rules. Respawns run synchronously so
// later events in the same frame see the replacements. Once the player is
// defeated the rest of the frame's events are dropped.
type CombatSystem struct {
	spawner  *Spawner
	pool     *BulletPool
	listener CombatListener
}

func NewCombatSystem(spawner *Spawner, pool *BulletPool, listener CombatListener) *CombatSystem {
	return &CombatSystem{spawner: spawner, pool: pool, listener: listener}
}

func (c *CombatSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		var defeated bool
		switch evt.Type {
		case ecs.EventContact:
			contact, ok := evt.Data.(ecs.ContactEvent)
			if !ok {
				continue
			}
			defeated = c.resolveContact(w, contact)
		case ecs.EventBoundsExit:
			exit, ok := evt.Data.(ecs.BoundsExitEvent)
			if !ok {
				continue
			}
			c.resolveBoundsExit(w, exit.Entity)
		}
		if defeated {
			return
		}
	}
}

// resolveContact reports whether the contact defeated the player.
func (c *CombatSystem) resolveContact(w *ecs.World, contact ecs.ContactEvent) bool {
	switch contact.Kind {
	case ecs.ContactBulletEnemy:
		c.bulletHitsEnemy(w, contact.A, contact.B)
	case ecs.ContactPlayerEnemy:
		return c.playerHitsEnemy(w, contact.A, contact.B)
	case ecs.ContactPlayerMeteor:
		return c.playerHitsMeteor(w, contact.A, contact.B)
	}
	return false
}

func (c *CombatSystem) bulletHitsEnemy(w *ecs.World, bullet, enemy ecs.Entity) {
	b, ok := ecs.Get(w, bullet, component.BulletComponent.Kind())
	if !ok || !b.InUse() {
		return
	}
	target, ok := damageable(w, enemy)
	if !ok || !target.IsAlive() {
		return
	}

	c.pool.Release(w, bullet)
	if target.ApplyDamage(common.BulletDamage) > 0 {
		return
	}

	ecs.DestroyEntity(w, enemy)
	if c.listener != nil {
		c.listener.AddScore(common.EnemyKillScore)
	}
	c.respawn(w, component.KindEnemy, 2)
}

func (c *CombatSystem) playerHitsEnemy(w *ecs.World, player, enemy ecs.Entity) bool {
	if !ecs.IsAlive(w, enemy) {
		return false
	}
	target, ok := c.livePlayer(w, player)
	if !ok {
		return false
	}

	ecs.DestroyEntity(w, enemy)
	hp := target.ApplyDamage(common.EnemyContactDamage)
	RefreshLifeBar(w, player)
	if hp <= 0 {
		c.defeat()
		return true
	}
	c.respawn(w, component.KindEnemy, 1)
	return false
}

func (c *CombatSystem) playerHitsMeteor(w *ecs.World, player, meteor ecs.Entity) bool {
	if !ecs.IsAlive(w, meteor) {
		return false
	}
	target, ok := c.livePlayer(w, player)
	if !ok {
		return false
	}

	hp := target.ApplyDamage(common.MeteorDamage)
	RefreshLifeBar(w, player)
	if hp <= 0 {
		c.defeat()
		return true
	}
	return false
}

func (c *CombatSystem) resolveBoundsExit(w *ecs.World, e ecs.Entity) {
	tag, ok := ecs.Get(w, e, component.TagComponent.Kind())
	if !ok {
		return
	}
	switch tag.Kind {
	case component.KindBullet:
		c.pool.Release(w, e)
	case component.KindEnemy, component.KindMeteor:
		kind := tag.Kind
		ecs.DestroyEntity(w, e)
		c.respawn(w, kind, 1)
	}
}

func (c *CombatSystem) livePlayer(w *ecs.World, player ecs.Entity) (component.Damageable, bool) {
	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok && body.Disabled {
		return nil, false
	}
	target, ok := damageable(w, player)
	if !ok || !target.IsAlive() {
		return nil, false
	}
	return target, true
}

func (c *CombatSystem) defeat() {
	if c.listener != nil {
		c.listener.PlayerDefeated()
	}
}

func (c *CombatSystem) respawn(w *ecs.World, kind component.EntityKind, count int) {
	if c.spawner == nil {
		return
	}
	if _, err := c.spawner.Spawn(w, kind, count); err != nil {
		log.Printf("combat: respawn %d %s: %v", count, kind, err)
	}
}

func damageable(w *ecs.World, e ecs.Entity) (component.Damageable, bool) {
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return nil, false
	}
	return h, true
}
