package component

// Player holds the tunables of the controllable character that are not part
// of its hit-reaction state.
type Player struct {
	// GroundRadius is the radius of the ground check circle, in pixels.
	GroundRadius float64
	// GroundOffset is the distance from the body center down to the ground
	// check point, in pixels.
	GroundOffset float64
}

var PlayerComponent = NewComponent[Player]()
