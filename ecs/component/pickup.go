package component

import "github.com/milk9111/platformer/character"

// Pickup is a collectible that damages and/or heals the player on overlap.
type Pickup struct {
	Kind string
	Item *character.Pickup
	// Script optionally recomputes the item's amounts from the player's
	// health right before it is applied. It starts from BaseDamage and
	// BaseHeal every time.
	Script     string
	BaseDamage float64
	BaseHeal   float64
}

var PickupComponent = NewComponent[Pickup]()
