package battle

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/turnbattle/internal/game/combat"
	"github.com/cory-johannsen/turnbattle/internal/game/dice"
	"github.com/cory-johannsen/turnbattle/internal/game/effect"
	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

// Builder collects everything an Engine needs. Every collaborator is
// optional; missing ones default to implementations drawing from the
// configured Source, or a crypto source when none is set.
type Builder struct {
	players   []*unit.Unit
	enemies   []*unit.Unit
	damage    DamageCalculator
	steal     StealCalculator
	effects   Effects
	inventory []item.Item
	src       dice.Source
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithPlayerUnit appends u to the player party.
func (b *Builder) WithPlayerUnit(u *unit.Unit) *Builder {
	b.players = append(b.players, u)
	return b
}

// WithPlayerParty appends us to the player party in order.
func (b *Builder) WithPlayerParty(us ...*unit.Unit) *Builder {
	b.players = append(b.players, us...)
	return b
}

// WithEnemyUnit appends u to the enemy party.
func (b *Builder) WithEnemyUnit(u *unit.Unit) *Builder {
	b.enemies = append(b.enemies, u)
	return b
}

// WithEnemyParty appends us to the enemy party in order.
func (b *Builder) WithEnemyParty(us ...*unit.Unit) *Builder {
	b.enemies = append(b.enemies, us...)
	return b
}

// WithDamageCalculator replaces the default combat.PhysicalDamage.
func (b *Builder) WithDamageCalculator(c DamageCalculator) *Builder {
	b.damage = c
	return b
}

// WithStealCalculator replaces the default combat.Stealer.
func (b *Builder) WithStealCalculator(c StealCalculator) *Builder {
	b.steal = c
	return b
}

// WithEffects replaces the default effect.Registry.
func (b *Builder) WithEffects(e Effects) *Builder {
	b.effects = e
	return b
}

// WithInventoryItem adds it to the shared player inventory.
func (b *Builder) WithInventoryItem(it item.Item) *Builder {
	b.inventory = append(b.inventory, it)
	return b
}

// WithInventory adds items to the shared player inventory.
func (b *Builder) WithInventory(items ...item.Item) *Builder {
	b.inventory = append(b.inventory, items...)
	return b
}

// WithSource sets the random source used by default collaborators and by
// the engine's own draws.
func (b *Builder) WithSource(src dice.Source) *Builder {
	b.src = src
	return b
}

// Build validates the parties and returns a ready Engine.
//
// Postcondition: returns an error when either party is empty, holds a nil
// unit, or holds a unit on the wrong side; otherwise Source() is the
// fastest living unit.
func (b *Builder) Build() (*Engine, error) {
	var errs []error
	errs = append(errs, checkParty("player", b.players, true)...)
	errs = append(errs, checkParty("enemy", b.enemies, false)...)
	for i, it := range b.inventory {
		if it == nil {
			errs = append(errs, fmt.Errorf("inventory[%d] is nil", i))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("battle: %w", errors.Join(errs...))
	}

	src := b.src
	if src == nil {
		src = dice.NewCryptoSource()
	}
	e := &Engine{
		players: append([]*unit.Unit(nil), b.players...),
		enemies: append([]*unit.Unit(nil), b.enemies...),
		damage:  b.damage,
		steal:   b.steal,
		effects: b.effects,
		src:     src,
	}
	if e.damage == nil {
		e.damage = combat.NewPhysicalDamage(src)
	}
	if e.steal == nil {
		e.steal = combat.NewStealer(src)
	}
	if e.effects == nil {
		e.effects = effect.NewRegistry(src)
	}
	for _, it := range b.inventory {
		e.inventory = item.Stack(e.inventory, it)
	}
	e.units = append(append([]*unit.Unit(nil), e.players...), e.enemies...)
	e.queue = initialQueue(e.units)
	return e, nil
}

func checkParty(side string, party []*unit.Unit, players bool) []error {
	if len(party) == 0 {
		return []error{fmt.Errorf("%s party must not be empty", side)}
	}
	var errs []error
	for i, u := range party {
		switch {
		case u == nil:
			errs = append(errs, fmt.Errorf("%s party[%d] is nil", side, i))
		case u.IsPlayer() != players:
			errs = append(errs, fmt.Errorf("%s party[%d] %q is on the wrong side", side, i, u.Name))
		}
	}
	return errs
}
