package system

import (
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

// InputSource reports the held direction for the current frame. Each axis
// is -1, 0 or 1; sources are polled once per simulated frame.
type InputSource interface {
	Direction() (x, y float64)
}

// KeyState is an InputSource fed by a frontend that tracks held keys. Left
// wins over right and up wins over down when both are held.
type KeyState struct {
	Left, Right, Up, Down bool
}

func (k KeyState) Direction() (x, y float64) {
	switch {
	case k.Left:
		x = -1
	case k.Right:
		x = 1
	}
	switch {
	case k.Up:
		y = -1
	case k.Down:
		y = 1
	}
	return x, y
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) SetSource(source InputSource) {
	if i == nil {
		return
	}
	i.source = source
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	var moveX, moveY float64
	if i.source != nil {
		moveX, moveY = i.source.Direction()
	}
	moveX = common.Sign(moveX)
	moveY = common.Sign(moveY)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveY = moveY
	})
}
