package component

// Sprite names the image a renderer should draw for an entity. Images are
// resolved by key at draw time so simulation code never touches the GPU.
type Sprite struct {
	Key    string
	Width  float64
	Height float64
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
