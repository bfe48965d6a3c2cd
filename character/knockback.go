package character

// KnockbackParams describes the push applied by a damaging hit.
type KnockbackParams struct {
	ForceX    float64
	ForceY    float64
	FromRight bool
	// Duration in seconds.
	Duration float64
}

// Knockback is the active push. While Remaining > 0 the character ignores
// locomotion input and is driven by the knockback velocity instead.
type Knockback struct {
	Remaining float64
	ForceX    float64
	ForceY    float64
	FromRight bool
}

func (k Knockback) Active() bool {
	return k.Remaining > 0
}

// Velocity returns the forced velocity: away from the side the hit came from.
func (k Knockback) Velocity() (vx, vy float64) {
	if k.FromRight {
		return -k.ForceX, k.ForceY
	}
	return k.ForceX, k.ForceY
}

func (k *Knockback) start(p KnockbackParams) {
	k.ForceX = p.ForceX
	k.ForceY = p.ForceY
	k.FromRight = p.FromRight
	k.Remaining = p.Duration
}
