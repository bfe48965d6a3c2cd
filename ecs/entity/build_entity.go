package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func addBody(w *ecs.World, e ecs.Entity, x, y float64, body prefabs.BodySpec, sensor bool) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    body.Width,
		Height:   body.Height,
		Mass:     body.Mass,
		Friction: body.Friction,
		Static:   body.Static || sensor,
		Sensor:   sensor,
	}); err != nil {
		return fmt.Errorf("add physics body: %w", err)
	}
	return nil
}

func addBox(w *ecs.World, e ecs.Entity, width, height float64, c color.NRGBA, layer int) error {
	if err := ecs.Add(w, e, component.RenderBoxComponent.Kind(), &component.RenderBox{Width: width, Height: height, Color: c}); err != nil {
		return fmt.Errorf("add render box: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return fmt.Errorf("add render layer: %w", err)
	}
	return nil
}

func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
