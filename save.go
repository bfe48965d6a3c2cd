package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const characterItem = "character"

// SavedCharacter is the part of the player that outlives a session.
type SavedCharacter struct {
	Health float64 `json:"health"`
}

type saveStore struct {
	m *gdata.Manager
}

func openSaveStore() (*saveStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: "platformer",
	})
	if err != nil {
		return nil, fmt.Errorf("save: open: %w", err)
	}
	return &saveStore{m: m}, nil
}

// LoadCharacter returns the saved character, or nil when nothing was saved.
func (s *saveStore) LoadCharacter() (*SavedCharacter, error) {
	if s == nil || s.m == nil {
		return nil, nil
	}
	data, err := s.m.LoadItem(characterItem)
	if err != nil {
		return nil, fmt.Errorf("save: load %s: %w", characterItem, err)
	}
	return decodeCharacter(data)
}

func (s *saveStore) SaveCharacter(c SavedCharacter) error {
	if s == nil || s.m == nil {
		return nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("save: encode %s: %w", characterItem, err)
	}
	if err := s.m.SaveItem(characterItem, data); err != nil {
		return fmt.Errorf("save: store %s: %w", characterItem, err)
	}
	return nil
}

func decodeCharacter(data []byte) (*SavedCharacter, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var c SavedCharacter
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("save: decode %s: %w", characterItem, err)
	}
	return &c, nil
}

// savedHealth returns the health to start with, or 0 for the prefab's.
func savedHealth(s *saveStore) float64 {
	c, err := s.LoadCharacter()
	if err != nil {
		log.Printf("Warning: %v", err)
		return 0
	}
	if c == nil || c.Health <= 0 {
		return 0
	}
	return c.Health
}
