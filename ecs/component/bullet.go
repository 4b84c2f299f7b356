package component

// Bullet marks a pooled projectile slot. Inactive bullets keep their entity
// and components; they are hidden and removed from the physics space.
type Bullet struct {
	Slot   int
	Active bool
	Speed  float64
}

var BulletComponent = NewComponent[Bullet]()

func (b *Bullet) SlotIndex() int {
	if b == nil {
		return -1
	}
	return b.Slot
}

func (b *Bullet) InUse() bool {
	return b != nil && b.Active
}

func (b *Bullet) Activate() {
	if b == nil {
		return
	}
	b.Active = true
}

// Deactivate reports whether the slot was active before the call.
func (b *Bullet) Deactivate() bool {
	if b == nil || !b.Active {
		return false
	}
	b.Active = false
	return true
}
