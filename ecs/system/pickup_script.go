package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PickupScriptSystem runs a pickup's tengo script right before the pickup is
// applied. The script sees health, max_health, damage and heal and may
// reassign damage and heal.
type PickupScriptSystem struct {
	compiled map[string]*tengo.Compiled
}

func NewPickupScriptSystem() *PickupScriptSystem {
	return &PickupScriptSystem{compiled: make(map[string]*tengo.Compiled)}
}

func (s *PickupScriptSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, contact := range pickupContacts(w) {
		pickup, _ := ecs.Get(w, contact.B, component.PickupComponent.Kind())
		if pickup.Script == "" {
			continue
		}
		hr, ok := ecs.Get(w, contact.A, component.HitReactionComponent.Kind())
		if !ok || hr.State == nil {
			continue
		}
		damage, heal, err := s.Run(pickup.Script, hr.State.Health(), hr.State.MaxHealth(), pickup.BaseDamage, pickup.BaseHeal)
		if err != nil {
			log.Printf("pickup %s: %v", pickup.Kind, err)
			continue
		}
		pickup.Item.Damage = damage
		pickup.Item.Heal = heal
	}
}

// Run evaluates src with the given inputs and returns the resulting damage
// and heal amounts. Compiled scripts are cached by source.
func (s *PickupScriptSystem) Run(src string, health, maxHealth, damage, heal float64) (float64, float64, error) {
	compiled, err := s.compile(src)
	if err != nil {
		return damage, heal, err
	}

	vars := map[string]float64{
		"health":     health,
		"max_health": maxHealth,
		"damage":     damage,
		"heal":       heal,
	}
	for name, v := range vars {
		if err := compiled.Set(name, v); err != nil {
			return damage, heal, fmt.Errorf("pickup script: set %s: %w", name, err)
		}
	}
	if err := compiled.Run(); err != nil {
		return damage, heal, fmt.Errorf("pickup script: run: %w", err)
	}

	return compiled.Get("damage").Float(), compiled.Get("heal").Float(), nil
}

func (s *PickupScriptSystem) compile(src string) (*tengo.Compiled, error) {
	if c, ok := s.compiled[src]; ok {
		return c, nil
	}

	script := tengo.NewScript([]byte(src))
	_ = script.Add("health", 0.0)
	_ = script.Add("max_health", 0.0)
	_ = script.Add("damage", 0.0)
	_ = script.Add("heal", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("pickup script: compile: %w", err)
	}
	s.compiled[src] = compiled
	return compiled, nil
}
