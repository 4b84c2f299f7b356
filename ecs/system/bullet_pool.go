package system

import (
	"fmt"

	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
	"github.com/milk9111/arena/ecs/entity"
)

// BulletPool owns a fixed set of bullet entities created up front. Acquire
// hands out the lowest free slot; Release returns a bullet to the pool.
// Bullets are never destroyed.
type BulletPool struct {
	slots []ecs.Entity
	free  int
}

func NewBulletPool(w *ecs.World, size int) (*BulletPool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("bullet pool: size must be positive, got %d", size)
	}
	p := &BulletPool{slots: make([]ecs.Entity, 0, size)}
	for i := 0; i < size; i++ {
		e, err := entity.NewBullet(w, i)
		if err != nil {
			for _, built := range p.slots {
				ecs.DestroyEntity(w, built)
			}
			return nil, fmt.Errorf("bullet pool: slot %d: %w", i, err)
		}
		p.slots = append(p.slots, e)
	}
	p.free = size
	return p, nil
}

func (p *BulletPool) Size() int {
	if p == nil {
		return 0
	}
	return len(p.slots)
}

func (p *BulletPool) Free() int {
	if p == nil {
		return 0
	}
	return p.free
}

// Acquire activates a free bullet. It reports false when every slot is in
// use; that is not an error.
func (p *BulletPool) Acquire(w *ecs.World) (ecs.Entity, bool) {
	if p == nil || p.free == 0 {
		return 0, false
	}
	for _, e := range p.slots {
		bullet, ok := ecs.Get(w, e, component.BulletComponent.Kind())
		if !ok || bullet.InUse() {
			continue
		}
		bullet.Activate()
		p.free--
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Hidden = false
		}
		return e, true
	}
	return 0, false
}

// Release deactivates e. Releasing a bullet that is already free, or an
// entity that is not one of the pool's bullets, does nothing.
func (p *BulletPool) Release(w *ecs.World, e ecs.Entity) bool {
	if p == nil {
		return false
	}
	bullet, ok := ecs.Get(w, e, component.BulletComponent.Kind())
	if !ok || !p.owns(e, bullet) || !bullet.Deactivate() {
		return false
	}
	p.free++
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = true
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		*v = component.Velocity{}
	}
	return true
}

// ReleaseAll returns every bullet to the pool.
func (p *BulletPool) ReleaseAll(w *ecs.World) {
	if p == nil {
		return
	}
	for _, e := range p.slots {
		p.Release(w, e)
	}
}

func (p *BulletPool) owns(e ecs.Entity, slot component.Poolable) bool {
	i := slot.SlotIndex()
	return i >= 0 && i < len(p.slots) && p.slots[i] == e
}
