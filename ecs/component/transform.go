package component

// Transform is the world-space centre of an entity.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

// Velocity is the scripted velocity in units per second. The physics system
// copies it onto the body every step; collisions never change it.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
