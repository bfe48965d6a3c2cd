package component

import "github.com/milk9111/platformer/character"

// Enemy damages the player on contact.
type Enemy struct {
	Contact character.EnemyContact
}

var EnemyComponent = NewComponent[Enemy]()
