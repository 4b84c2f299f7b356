package component

// Audio holds named clips an entity can trigger. Systems set Play[i]; the
// audio system forwards the request to the sound collaborator and clears it.
type Audio struct {
	Names  []string
	Volume []float64
	Play   []bool
}

var AudioComponent = NewComponent[Audio]()

// Request flags the named clip for playback and reports whether it exists.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}
