// Package ai decides what a unit does on its turn when no human is driving it.
package ai

import (
	"errors"

	"github.com/cory-johannsen/turnbattle/internal/game/dice"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

// ErrNoLivingTarget is returned when every candidate is at 0 HP.
var ErrNoLivingTarget = errors.New("ai: no living target")

// PickTarget returns a uniformly random living unit from units.
//
// Precondition: src must be non-nil.
// Postcondition: the returned unit is alive, or ErrNoLivingTarget is returned.
func PickTarget(units []*unit.Unit, src dice.Source) (*unit.Unit, error) {
	living := alive(units)
	if len(living) == 0 {
		return nil, ErrNoLivingTarget
	}
	return living[src.Intn(len(living))], nil
}

func alive(units []*unit.Unit) []*unit.Unit {
	var out []*unit.Unit
	for _, u := range units {
		if u != nil && u.IsAlive() {
			out = append(out, u)
		}
	}
	return out
}
