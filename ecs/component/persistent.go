package component

// Persistent entities survive a session restart. The restart prunes every
// entity without it and resets the ones with it.
type Persistent struct {
	ID           string
	KeepOnReload bool
}

var PersistentComponent = NewComponent[Persistent]()
