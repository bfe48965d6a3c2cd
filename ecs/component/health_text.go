package component

import "github.com/tanema/gween"

// HealthText is the on-screen health readout. Bar eases toward Current/Max.
type HealthText struct {
	Current float64
	Max     float64
	Text    string
	Dirty   bool

	Bar   float32
	Tween *gween.Tween
}

var HealthTextComponent = NewComponent[HealthText]()
