package component

// Animator collects animation parameters set by gameplay code. Triggers are
// consumed by the animation system; floats persist.
type Animator struct {
	Triggers map[string]bool
	Floats   map[string]float64

	Running    bool
	FacingLeft bool
}

var AnimatorComponent = NewComponent[Animator]()
