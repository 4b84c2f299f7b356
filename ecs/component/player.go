package component

type Player struct {
	MoveSpeed float64
	SpawnX    float64
	SpawnY    float64
}

var PlayerComponent = NewComponent[Player]()
