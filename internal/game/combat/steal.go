package combat

import (
	"fmt"

	"github.com/cory-johannsen/turnbattle/internal/game/dice"
	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

// Stealer resolves whether and what a unit steals from another.
type Stealer struct {
	src dice.Source
}

// NewStealer returns a Stealer drawing from src.
//
// Precondition: src must be non-nil.
func NewStealer(src dice.Source) *Stealer {
	return &Stealer{src: src}
}

// Steal attempts to take one item from target.
//
// The source rolls Uint16 mod (level+spirit) against the target's Uint16 mod
// level; losing that contest fails outright. Otherwise slots are tried from
// the rarest (3) to the most common (0), one byte draw per slot, and the
// first occupied slot whose draw is below its rate is emptied and returned.
//
// Precondition: source and target must be non-nil.
// Postcondition: returns (nil, nil) when nothing was stolen; a returned item
// is no longer in target's stealable slots.
func (s *Stealer) Steal(source, target *unit.Unit) (item.Item, error) {
	hitRate := source.Level() + source.Spirit
	evade := target.Level()
	if hitRate <= 0 {
		return nil, nil
	}

	sourceRoll := int(s.src.Uint16()) % hitRate
	targetRoll := int(s.src.Uint16()) % evade
	if sourceRoll < targetRoll {
		return nil, nil
	}

	slots := target.StealableItems()
	for slot := unit.StealSlots - 1; slot >= 0; slot-- {
		draw := s.src.Uint8()
		if slots[slot] == nil || draw >= target.StealRate(slot) {
			continue
		}
		it, err := target.Steal(slot)
		if err != nil {
			return nil, fmt.Errorf("stealing slot %d from %s: %w", slot, target.Name, err)
		}
		return it, nil
	}
	return nil, nil
}
