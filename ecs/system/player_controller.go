package system

import (
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

// Update assigns velocity straight from the held direction: no acceleration,
// and releasing an axis stops that axis on the same frame.
func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(e ecs.Entity, player *component.Player, input *component.Input, vel *component.Velocity) {
			if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Disabled {
				*vel = component.Velocity{}
				return
			}
			vel.X = input.MoveX * player.MoveSpeed
			vel.Y = input.MoveY * player.MoveSpeed
		})
}
