package prefabs

import "fmt"

// Set is every prefab a level is built from, with pickup scripts resolved
// to their source.
type Set struct {
	Player  *PlayerSpec
	Enemy   *EnemySpec
	Pickups *PickupsSpec
	Scripts map[string]string
}

func LoadSet() (*Set, error) {
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	enemy, err := LoadEnemySpec()
	if err != nil {
		return nil, err
	}
	pickups, err := LoadPickupsSpec()
	if err != nil {
		return nil, err
	}

	scripts := make(map[string]string)
	for _, kind := range pickups.Kinds() {
		name := pickups.Pickups[kind].Script
		if name == "" {
			continue
		}
		if _, ok := scripts[name]; ok {
			continue
		}
		src, err := LoadScript(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s for %s: %w", name, kind, err)
		}
		scripts[name] = string(src)
	}

	return &Set{Player: player, Enemy: enemy, Pickups: pickups, Scripts: scripts}, nil
}
