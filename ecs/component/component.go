// Package component holds the game's data-only components. Each file
// declares one type and registers it with NewComponent.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind is the typed key of a component store. The zero value is
// invalid and rejected by the world.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind allocates a fresh store id for T. Two kinds of the same
// T are distinct stores.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// ComponentHandle is what a component file exports, e.g.
//
//	var TTLComponent = NewComponent[TTL]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
