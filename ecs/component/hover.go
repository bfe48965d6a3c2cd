package component

// Hover bobs an entity's transform around its spawn height. It is visual
// only; static bodies do not follow the transform.
type Hover struct {
	BaseY       float64
	Phase       float64
	Amplitude   float64
	Speed       float64
	Initialized bool
}

var HoverComponent = NewComponent[Hover]()
