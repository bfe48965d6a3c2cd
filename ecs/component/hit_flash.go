package component

// HitFlash tints a sprite red while active. Timing is frame-based.
type HitFlash struct {
	// Frames remaining for the whole flash effect (in update ticks)
	Frames int
	// Interval in frames between toggles of the tint
	Interval int
	Timer    int
	On       bool
}

var HitFlashComponent = NewComponent[HitFlash]()
