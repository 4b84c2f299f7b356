package component

import "image/color"

// LifeBar is the health indicator drawn above an entity. OffsetX/OffsetY
// anchor the bar relative to the entity centre; X, Y and Width are
// recomputed every frame.
type LifeBar struct {
	MaxWidth float64
	Height   float64
	OffsetX  float64
	OffsetY  float64
	Color    color.Color

	X     float64
	Y     float64
	Width float64
}

var LifeBarComponent = NewComponent[LifeBar]()
