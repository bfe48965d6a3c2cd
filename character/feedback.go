package character

// ColorTag selects the tint of a particle burst.
type ColorTag int

const (
	ColorDamage ColorTag = iota
	ColorHeal
)

func (c ColorTag) String() string {
	switch c {
	case ColorDamage:
		return "damage"
	case ColorHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// FeedbackRequest asks the presentation layer for a single particle burst.
// It is produced by a damage or heal event and consumed once.
type FeedbackRequest struct {
	Count  int
	Color  ColorTag
	Sprite int
}

// HealthDisplay shows the current health, e.g. as UI text.
type HealthDisplay interface {
	ShowHealth(current, max float64)
}

// FeedbackSink receives particle feedback requests.
type FeedbackSink interface {
	EmitFeedback(req FeedbackRequest)
}

// Body is the character's rigid body. Velocities are in world units per
// second with y pointing up.
type Body interface {
	Velocity() (vx, vy float64)
	SetVelocity(vx, vy float64)
	Translate(dx float64)
}

// Animator receives animation parameters.
type Animator interface {
	SetTrigger(name string)
	SetFloat(name string, v float64)
}

const (
	TriggerAttacked = "IsAttacked"
	FloatRunning    = "IsRunning"
)
