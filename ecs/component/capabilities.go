package component

// Damageable is implemented by components that absorb hits.
type Damageable interface {
	ApplyDamage(amount int) int
	CurrentHP() int
	MaxHP() int
	IsAlive() bool
}

// Poolable is implemented by components backed by a reusable pool slot.
type Poolable interface {
	SlotIndex() int
	InUse() bool
	Activate()
	Deactivate() bool
}

var (
	_ Damageable = (*Health)(nil)
	_ Poolable   = (*Bullet)(nil)
)
