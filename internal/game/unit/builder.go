package unit

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/status"
)

// Builder assembles a Unit from plain stats. The zero Builder is not usable;
// call NewBuilder.
type Builder struct {
	name      string
	level     int
	hp        int
	currentHP *int
	mp        int
	currentMP *int
	str       int
	agl       int
	spirit    int
	isPlayer  bool
	typ       Type
	weapon    *item.Weapon
	equipment []*item.Equipment
	inventory []item.Item
	stealable []item.Item
	rates     []uint8
	statuses  []status.Status
	support   []SupportAbility
}

// NewBuilder returns a Builder for a level 1 enemy with no stats.
func NewBuilder() *Builder {
	return &Builder{level: 1}
}

// WithName sets the display name.
func (b *Builder) WithName(name string) *Builder { b.name = name; return b }

// WithLevel sets the level, which also fixes accuracy.
//
// Precondition: level > 0, or Build returns ErrInvalidLevel.
func (b *Builder) WithLevel(level int) *Builder { b.level = level; return b }

// WithHP sets both current and maximum HP.
func (b *Builder) WithHP(hp int) *Builder { b.hp = hp; return b }

// WithCurrentHP starts the unit below its maximum HP, e.g. already knocked out.
func (b *Builder) WithCurrentHP(hp int) *Builder { b.currentHP = &hp; return b }

// WithMP sets both current and maximum MP.
func (b *Builder) WithMP(mp int) *Builder { b.mp = mp; return b }

// WithCurrentMP starts the unit below its maximum MP.
//
// Precondition: 0 <= mp <= the value given to WithMP, or Build fails.
func (b *Builder) WithCurrentMP(mp int) *Builder { b.currentMP = &mp; return b }

// WithStr sets strength, half of which adds to weapon attack.
func (b *Builder) WithStr(str int) *Builder { b.str = str; return b }

// WithAgl sets agility, which orders the turn queue.
func (b *Builder) WithAgl(agl int) *Builder { b.agl = agl; return b }

// WithSpirit sets spirit, which adds to the steal contest.
func (b *Builder) WithSpirit(spirit int) *Builder { b.spirit = spirit; return b }

// WithType sets the creature type checked by Elixir, Soft and Phoenix Pinion.
func (b *Builder) WithType(t Type) *Builder { b.typ = t; return b }

// AsPlayer places the unit in the player party.
func (b *Builder) AsPlayer() *Builder { b.isPlayer = true; return b }

// AsEnemy places the unit in the enemy party. This is the default.
func (b *Builder) AsEnemy() *Builder { b.isPlayer = false; return b }

// WithWeapon equips w. A unit built without one fights bare-handed.
func (b *Builder) WithWeapon(w *item.Weapon) *Builder { b.weapon = w; return b }

// WithEquipment appends armor pieces.
func (b *Builder) WithEquipment(eq ...*item.Equipment) *Builder {
	b.equipment = append(b.equipment, eq...)
	return b
}

// WithInventory appends items to the unit's own inventory.
func (b *Builder) WithInventory(items ...item.Item) *Builder {
	b.inventory = append(b.inventory, items...)
	return b
}

// WithStealable fills stealable slots in order; nil entries leave a slot empty.
func (b *Builder) WithStealable(items ...item.Item) *Builder {
	b.stealable = items
	return b
}

// WithStealRates sets per-slot thresholds in slot order; missing slots get 0.
func (b *Builder) WithStealRates(rates ...uint8) *Builder {
	b.rates = rates
	return b
}

// WithStatus starts the unit afflicted by ss.
func (b *Builder) WithStatus(ss ...status.Status) *Builder {
	b.statuses = append(b.statuses, ss...)
	return b
}

// WithSupportAbility grants support abilities such as Chemist.
func (b *Builder) WithSupportAbility(a ...SupportAbility) *Builder {
	b.support = append(b.support, a...)
	return b
}

// Build validates the collected stats and returns a new Unit with a fresh ID.
//
// Postcondition: returns ErrInvalidLevel when level <= 0, or an error for any
// other invalid stat; otherwise a Unit satisfying its invariants.
func (b *Builder) Build() (*Unit, error) {
	if b.level <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevel, b.level)
	}
	var errs []error
	if b.hp < 0 {
		errs = append(errs, fmt.Errorf("hp must be >= 0, got %d", b.hp))
	}
	if b.mp < 0 {
		errs = append(errs, fmt.Errorf("mp must be >= 0, got %d", b.mp))
	}
	if b.currentHP != nil && (*b.currentHP < 0 || *b.currentHP > b.hp) {
		errs = append(errs, fmt.Errorf("current hp must be in [0, %d], got %d", b.hp, *b.currentHP))
	}
	if b.currentMP != nil && (*b.currentMP < 0 || *b.currentMP > b.mp) {
		errs = append(errs, fmt.Errorf("current mp must be in [0, %d], got %d", b.mp, *b.currentMP))
	}
	if len(b.stealable) > StealSlots {
		errs = append(errs, fmt.Errorf("at most %d stealable items, got %d", StealSlots, len(b.stealable)))
	}
	if len(b.rates) > StealSlots {
		errs = append(errs, fmt.Errorf("at most %d steal rates, got %d", StealSlots, len(b.rates)))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("unit %q: %w", b.name, errors.Join(errs...))
	}

	u := &Unit{
		ID:        uuid.New().String(),
		Name:      b.name,
		Str:       b.str,
		Agl:       b.agl,
		Spirit:    b.spirit,
		Type:      b.typ,
		hp:        b.hp,
		maxHP:     b.hp,
		mp:        b.mp,
		maxMP:     b.mp,
		level:     b.level,
		acc:       accuracyForLevel(b.level),
		isPlayer:  b.isPlayer,
		weapon:    b.weapon,
		statuses:  status.NewSet(),
		support:   make(map[SupportAbility]bool),
		equipment: append([]*item.Equipment(nil), b.equipment...),
		inventory: append([]item.Item(nil), b.inventory...),
	}
	if b.currentHP != nil {
		u.hp = *b.currentHP
	}
	if b.currentMP != nil {
		u.mp = *b.currentMP
	}
	if u.weapon == nil {
		u.weapon = &item.Weapon{}
	}
	copy(u.stealable[:], b.stealable)
	copy(u.stealRates[:], b.rates)
	for _, s := range b.statuses {
		u.statuses.Add(s)
	}
	for _, a := range b.support {
		u.support[a] = true
	}
	return u, nil
}

// MustBuild is Build for fixed, known-valid stats such as presets; it panics on error.
func (b *Builder) MustBuild() *Unit {
	u, err := b.Build()
	if err != nil {
		panic("unit: MustBuild failed: " + err.Error())
	}
	return u
}
