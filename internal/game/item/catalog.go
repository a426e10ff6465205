package item

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GearDef defines the static stats of a weapon or equipment piece, loaded from YAML.
type GearDef struct {
	Name         Name   `yaml:"name"`
	Description  string `yaml:"description"`
	Atk          int    `yaml:"atk"`
	HitRateBonus uint8  `yaml:"hit_rate_bonus"`
	// Slot is "weapon" or "armor"; only meaningful for equipment.
	Slot  string `yaml:"slot"`
	Armor int    `yaml:"armor"`
}

// Validate checks that the GearDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *GearDef) Validate() error {
	var errs []error
	if _, ok := nameTable[d.Name]; !ok {
		errs = append(errs, errors.New("name must be a known item"))
	}
	if d.Name.Consumable() {
		errs = append(errs, fmt.Errorf("%s is a consumable and carries no gear stats", d.Name))
	}
	if d.Atk < 0 {
		errs = append(errs, errors.New("atk must be >= 0"))
	}
	if d.Armor < 0 {
		errs = append(errs, errors.New("armor must be >= 0"))
	}
	if d.Name.Kind() == KindEquipment && d.Slot != "weapon" && d.Slot != "armor" {
		errs = append(errs, fmt.Errorf("slot must be \"weapon\" or \"armor\", got %q", d.Slot))
	}
	if len(errs) > 0 {
		return fmt.Errorf("gear validation failed: %v", errs)
	}
	return nil
}

// Catalog indexes gear definitions by item name and instantiates items.
type Catalog struct {
	gear map[Name]*GearDef
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{gear: make(map[Name]*GearDef)}
}

// Register adds d to the catalog.
//
// Precondition: d must have passed Validate.
// Postcondition: Gear(d.Name) returns d; returns error if d.Name already registered.
func (c *Catalog) Register(d *GearDef) error {
	if _, exists := c.gear[d.Name]; exists {
		return fmt.Errorf("item: Catalog.Register: %s already registered", d.Name)
	}
	c.gear[d.Name] = d
	return nil
}

// Gear returns the definition for name and whether it was found.
func (c *Catalog) Gear(name Name) (*GearDef, bool) {
	d, ok := c.gear[name]
	return d, ok
}

// Len returns the number of registered gear definitions.
func (c *Catalog) Len() int { return len(c.gear) }

// New instantiates count items named name. Consumables need no definition;
// weapons and equipment must be registered.
//
// Postcondition: returns an item of kind name.Kind(), or an error.
func (c *Catalog) New(name Name, count int) (Item, error) {
	if name.Consumable() {
		return NewUseable(name, count), nil
	}
	d, ok := c.gear[name]
	if !ok {
		return nil, fmt.Errorf("item: no gear definition for %s", name)
	}
	var it Item
	switch name.Kind() {
	case KindWeapon:
		it = NewWeapon(name, d.Atk, d.HitRateBonus)
	default:
		typ := EquipmentArmor
		if d.Slot == "weapon" {
			typ = EquipmentWeapon
		}
		it = NewEquipment(name, typ, d.Armor)
	}
	if count > 1 {
		it.Add(count - 1)
	}
	return it, nil
}

// LoadCatalog reads all *.yaml and *.yml files from dir, parses each as a
// GearDef, validates it, and returns the populated Catalog.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns a Catalog holding every definition, or the first error.
func LoadCatalog(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadCatalog: cannot read directory %q: %w", dir, err)
	}

	cat := NewCatalog()
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadCatalog: cannot read file %q: %w", path, err)
		}
		var d GearDef
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("LoadCatalog: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadCatalog: invalid gear in %q: %w", path, err)
		}
		if err := cat.Register(&d); err != nil {
			return nil, fmt.Errorf("LoadCatalog: %q: %w", path, err)
		}
	}
	return cat, nil
}
