package ecs

import "github.com/milk9111/arena/ecs/component"

// World owns entities, component storage and the per-frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	deltaTime float64
	frame     uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Tick records the duration of the frame about to be simulated.
func (w *World) Tick(dt float64) {
	if w == nil {
		return
	}
	w.deltaTime = dt
	w.frame++
}

// DeltaTime returns the seconds covered by the current frame.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.deltaTime
}

// Frame returns the number of ticks since the world was created.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}
