package component

// Health tracks hit points. Current never drops below zero and never rises
// above Initial, so displays can use it without further clamping.
type Health struct {
	Initial int
	Current int
}

var HealthComponent = NewComponent[Health]()

func NewHealth(initial int) *Health {
	if initial < 0 {
		initial = 0
	}
	return &Health{Initial: initial, Current: initial}
}

// ApplyDamage subtracts amount and returns the remaining hit points.
func (h *Health) ApplyDamage(amount int) int {
	if h == nil {
		return 0
	}
	if amount > 0 {
		h.Current -= amount
	}
	h.clamp()
	return h.Current
}

// Reset restores full health.
func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Initial
}

func (h *Health) CurrentHP() int {
	if h == nil {
		return 0
	}
	return h.Current
}

func (h *Health) MaxHP() int {
	if h == nil {
		return 0
	}
	return h.Initial
}

func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

func (h *Health) clamp() {
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Initial {
		h.Current = h.Initial
	}
}
