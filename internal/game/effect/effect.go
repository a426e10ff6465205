// Package effect maps every consumable item to the effect it has on a
// battle target. The table is closed and built once per registry.
package effect

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/turnbattle/internal/game/dice"
	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

// ErrNoEffect is returned by Lookup for items that cannot be used.
var ErrNoEffect = errors.New("effect: item has no use effect")

// Context describes one item use: who uses it, on whom, and whether the use
// happens mid-combat.
type Context struct {
	Source   *unit.Unit
	Target   *unit.Unit
	InCombat bool
}

// Effect applies an item to a Context.
type Effect interface {
	Apply(ctx Context)
}

// Func adapts a plain function to Effect.
type Func func(ctx Context)

// Apply calls f(ctx).
func (f Func) Apply(ctx Context) { f(ctx) }

// Registry resolves item names to effects.
//
// Invariant: the set of registered names is fixed at construction.
type Registry struct {
	effects map[item.Name]Effect
}

// NewRegistry builds the effect table. Effects with a random outcome draw from src.
//
// Precondition: src must be non-nil.
// Postcondition: Lookup succeeds for every consumable item name.
func NewRegistry(src dice.Source) *Registry {
	return &Registry{effects: map[item.Name]Effect{
		item.Potion:        Func(potion),
		item.HiPotion:      Func(hiPotion),
		item.Ether:         Func(ether),
		item.Elixir:        Func(elixir),
		item.PhoenixDown:   Func(phoenixDown),
		item.PhoenixPinion: phoenixPinion{src: src},
		item.Tent:          tent{src: src},
		item.Antidote:      Func(antidote),
		item.Soft:          Func(soft),
		item.Annoyntment:   Func(annoyntment),
		item.Remedy:        Func(remedy),
	}}
}

// Lookup returns the effect for name.
//
// Postcondition: returns ErrNoEffect iff name has no registered effect.
func (r *Registry) Lookup(name item.Name) (Effect, error) {
	e, ok := r.effects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEffect, name)
	}
	return e, nil
}

// Apply looks up name and applies its effect to ctx.
func (r *Registry) Apply(name item.Name, ctx Context) error {
	e, err := r.Lookup(name)
	if err != nil {
		return err
	}
	e.Apply(ctx)
	return nil
}
