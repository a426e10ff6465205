// Package encounter loads battle setups (both parties and the starting
// inventory) from YAML files.
package encounter

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

// UnitSpec is the YAML form of one unit.
type UnitSpec struct {
	Name string `yaml:"name"`
	// Level is nil when omitted, which means level 1.
	Level  *int      `yaml:"level"`
	HP     int       `yaml:"hp"`
	MP     int       `yaml:"mp"`
	Str    int       `yaml:"str"`
	Agl    int       `yaml:"agl"`
	Spirit int       `yaml:"spirit"`
	Type   unit.Type `yaml:"type"`
	// Support lists support abilities such as "chemist".
	Support   []unit.SupportAbility `yaml:"support"`
	Weapon    *item.Name            `yaml:"weapon"`
	Equipment []item.Name           `yaml:"equipment"`
	// Stealable holds up to four slots, common first; null leaves a slot empty.
	Stealable  []*item.Name `yaml:"stealable"`
	StealRates []uint8      `yaml:"steal_rates"`
}

// StackSpec is one inventory stack.
type StackSpec struct {
	Name  item.Name `yaml:"name"`
	Count int       `yaml:"count"`
}

// File is the top-level YAML document.
type File struct {
	Name      string      `yaml:"name"`
	Players   []UnitSpec  `yaml:"players"`
	Enemies   []UnitSpec  `yaml:"enemies"`
	Inventory []StackSpec `yaml:"inventory"`
}

// Encounter is a loaded battle setup ready for battle.NewBuilder.
type Encounter struct {
	Name      string
	Players   []*unit.Unit
	Enemies   []*unit.Unit
	Inventory []item.Item
}

// Load reads and builds the encounter at path, resolving gear through cat.
//
// Precondition: cat must be non-nil.
// Postcondition: returns an Encounter with both parties non-empty, or an error.
func Load(path string, cat *item.Catalog) (*Encounter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("encounter.Load: cannot read file %q: %w", path, err)
	}
	enc, err := Parse(data, cat)
	if err != nil {
		return nil, fmt.Errorf("encounter.Load: %q: %w", path, err)
	}
	return enc, nil
}

// Parse decodes and builds an encounter from YAML bytes. Unknown fields are
// rejected.
func Parse(data []byte, cat *item.Catalog) (*Encounter, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("cannot parse: %w", err)
	}
	return f.Build(cat)
}

// Build instantiates every unit and stack in f. All problems are reported together.
func (f *File) Build(cat *item.Catalog) (*Encounter, error) {
	enc := &Encounter{Name: f.Name}
	var errs []error
	if len(f.Players) == 0 {
		errs = append(errs, errors.New("players must not be empty"))
	}
	if len(f.Enemies) == 0 {
		errs = append(errs, errors.New("enemies must not be empty"))
	}
	for i := range f.Players {
		u, err := f.Players[i].build(cat, true)
		if err != nil {
			errs = append(errs, fmt.Errorf("players[%d]: %w", i, err))
			continue
		}
		enc.Players = append(enc.Players, u)
	}
	for i := range f.Enemies {
		u, err := f.Enemies[i].build(cat, false)
		if err != nil {
			errs = append(errs, fmt.Errorf("enemies[%d]: %w", i, err))
			continue
		}
		enc.Enemies = append(enc.Enemies, u)
	}
	for i, s := range f.Inventory {
		if !s.Name.Consumable() {
			errs = append(errs, fmt.Errorf("inventory[%d]: %s is not a consumable", i, s.Name))
			continue
		}
		if s.Count <= 0 {
			errs = append(errs, fmt.Errorf("inventory[%d]: count must be > 0, got %d", i, s.Count))
			continue
		}
		it, err := cat.New(s.Name, s.Count)
		if err != nil {
			errs = append(errs, fmt.Errorf("inventory[%d]: %w", i, err))
			continue
		}
		enc.Inventory = item.Stack(enc.Inventory, it)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return enc, nil
}

// build turns s into a Unit. An omitted level means level 1; an explicit
// non-positive level fails with unit.ErrInvalidLevel.
func (s *UnitSpec) build(cat *item.Catalog, isPlayer bool) (*unit.Unit, error) {
	level := 1
	if s.Level != nil {
		level = *s.Level
	}
	b := unit.NewBuilder().
		WithName(s.Name).
		WithLevel(level).
		WithHP(s.HP).
		WithMP(s.MP).
		WithStr(s.Str).
		WithAgl(s.Agl).
		WithSpirit(s.Spirit).
		WithType(s.Type).
		WithSupportAbility(s.Support...).
		WithStealRates(s.StealRates...)
	if isPlayer {
		b.AsPlayer()
	} else {
		b.AsEnemy()
	}

	if s.Weapon != nil {
		it, err := cat.New(*s.Weapon, 1)
		if err != nil {
			return nil, err
		}
		w, ok := it.(*item.Weapon)
		if !ok {
			return nil, fmt.Errorf("%s is not a weapon", *s.Weapon)
		}
		b.WithWeapon(w)
	}
	for _, name := range s.Equipment {
		it, err := cat.New(name, 1)
		if err != nil {
			return nil, err
		}
		eq, ok := it.(*item.Equipment)
		if !ok {
			return nil, fmt.Errorf("%s is not equipment", name)
		}
		b.WithEquipment(eq)
	}

	loot := make([]item.Item, len(s.Stealable))
	for i, name := range s.Stealable {
		if name == nil {
			continue
		}
		it, err := cat.New(*name, 1)
		if err != nil {
			return nil, fmt.Errorf("stealable[%d]: %w", i, err)
		}
		loot[i] = it
	}
	b.WithStealable(loot...)
	return b.Build()
}
