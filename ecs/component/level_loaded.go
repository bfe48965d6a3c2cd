package component

// LevelLoaded marks the world as freshly built. Sequence increases with
// every load.
type LevelLoaded struct {
	Sequence uint64
}

var LevelLoadedComponent = NewComponent[LevelLoaded]()
