package component

import "image/color"

// RenderBox draws the entity as a filled rectangle centered on its transform.
type RenderBox struct {
	Width  float64
	Height float64
	Color  color.NRGBA
	Hidden bool
}

var RenderBoxComponent = NewComponent[RenderBox]()
