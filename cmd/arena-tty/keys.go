package main

import "time"

// keyHold is how long a direction stays held after its last key event.
// Terminals report presses and auto-repeats but never releases.
const keyHold = 150 * time.Millisecond

// heldKeys turns terminal key presses into a held direction that decays
// when the key stops repeating.
type heldKeys struct {
	now                   func() time.Time
	left, right, up, down time.Time
}

func newHeldKeys(now func() time.Time) *heldKeys {
	if now == nil {
		now = time.Now
	}
	return &heldKeys{now: now}
}

func (k *heldKeys) press(dx, dy int) {
	t := k.now()
	switch {
	case dx < 0:
		k.left, k.right = t, time.Time{}
	case dx > 0:
		k.right, k.left = t, time.Time{}
	}
	switch {
	case dy < 0:
		k.up, k.down = t, time.Time{}
	case dy > 0:
		k.down, k.up = t, time.Time{}
	}
}

func (k *heldKeys) release() {
	*k = heldKeys{now: k.now}
}

func (k *heldKeys) Direction() (x, y float64) {
	t := k.now()
	held := func(at time.Time) bool {
		return !at.IsZero() && t.Sub(at) < keyHold
	}
	switch {
	case held(k.left):
		x = -1
	case held(k.right):
		x = 1
	}
	switch {
	case held(k.up):
		y = -1
	case held(k.down):
		y = 1
	}
	return x, y
}
