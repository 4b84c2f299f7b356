package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Every body uses a sensor circle, so overlaps are reported but never
// resolved: entities are immovable under collision response.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64

	// ClampToBounds keeps the body inside the arena instead of reporting
	// bounds exits.
	ClampToBounds bool
	// Disabled bodies are kept out of the space.
	Disabled bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
