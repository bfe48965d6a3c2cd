package character

// TagEnemy marks entities whose contact damages the player.
const TagEnemy = "Enemy"

// Contact describes the other body in a collision.
type Contact struct {
	Tag string
	X   float64
}

// EnemyContact damages and knocks back a character touching an enemy.
type EnemyContact struct {
	Damage    float64
	ForceX    float64
	ForceY    float64
	Duration  float64
	Particles int
}

// DefaultEnemyContact is the basic enemy hit.
var DefaultEnemyContact = EnemyContact{
	Damage:    10,
	ForceX:    5,
	ForceY:    2,
	Duration:  3,
	Particles: 3,
}

// OnContact applies the hit if other is an enemy. The push is away from the
// side the enemy is on. It reports whether the hit was applied.
func (c EnemyContact) OnContact(target *HitReaction, targetX float64, other Contact) bool {
	if target == nil || other.Tag != TagEnemy {
		return false
	}
	c.Strike(target, other.X > targetX)
	return true
}

// Strike applies the hit as if it came from the given side.
func (c EnemyContact) Strike(target *HitReaction, fromRight bool) {
	if target == nil {
		return
	}
	target.SetParticleCount(c.Particles)
	target.ApplyDamage(c.Damage, KnockbackParams{
		ForceX:    c.ForceX,
		ForceY:    c.ForceY,
		FromRight: fromRight,
		Duration:  c.Duration,
	})
	target.SignalHit()
}

// Pickup is a single-use item that damages and/or heals the character that
// overlaps it. It is deactivated on use, not destroyed.
type Pickup struct {
	Damage    float64
	Heal      float64
	Particles int
	Sprite    int

	inactive bool
}

func (p *Pickup) Active() bool {
	return p != nil && !p.inactive
}

// Reactivate makes a used pickup collectible again.
func (p *Pickup) Reactivate() {
	if p != nil {
		p.inactive = false
	}
}

// OnOverlap applies the pickup to target and deactivates it. Damage is
// applied before healing; a damaging pickup also plays the hit reaction
// without knockback. It reports whether the pickup was used.
func (p *Pickup) OnOverlap(target *HitReaction) bool {
	if !p.Active() || target == nil {
		return false
	}

	// Builders reject bad sprites; one that slips through keeps the previous
	// sprite.
	_ = target.SetParticleSprite(p.Sprite)
	target.SetParticleCount(p.Particles)

	if p.Damage > 0 {
		target.TakeDamage(p.Damage)
	}
	if p.Heal > 0 {
		target.ApplyHeal(p.Heal)
	}

	p.inactive = true

	if p.Damage > 0 {
		target.SignalHit()
	}
	return true
}
