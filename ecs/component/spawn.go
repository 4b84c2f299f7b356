package component

// SpawnVelocity is the per-axis speed range a freshly spawned entity draws
// its velocity from, uniformly in [-Range, Range].
type SpawnVelocity struct {
	Range float64
}

var SpawnVelocityComponent = NewComponent[SpawnVelocity]()
