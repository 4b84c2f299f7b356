package component

// Input stores the continuous direction state for the current frame. Each
// axis is -1, 0 or 1.
type Input struct {
	MoveX float64
	MoveY float64
}

var InputComponent = NewComponent[Input]()
