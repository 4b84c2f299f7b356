package component

// ArenaBounds stores the play-field size and the spawn margin kept clear
// along each edge.
type ArenaBounds struct {
	Width   float64
	Height  float64
	MarginX float64
	MarginY float64
}

var ArenaBoundsComponent = NewComponent[ArenaBounds]()
