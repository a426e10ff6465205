// Package item defines the closed set of battle items, their weapon,
// equipment and consumable variants, and the YAML catalog of gear stats.
package item

import (
	"errors"
	"fmt"
)

// ErrInsufficientCount is returned by Take when a stack holds fewer items than requested.
var ErrInsufficientCount = errors.New("item: insufficient count")

// Kind distinguishes the item variants.
type Kind int

const (
	KindWeapon Kind = iota
	KindEquipment
	KindUseable
)

// String returns a human-readable kind label.
func (k Kind) String() string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindEquipment:
		return "equipment"
	case KindUseable:
		return "useable"
	default:
		return "unknown"
	}
}

// EquipmentType tags an equipment piece as a weapon or armor.
type EquipmentType int

const (
	EquipmentWeapon EquipmentType = iota
	EquipmentArmor
)

// Item is a stack of one named item. Only the variants in this package implement it.
type Item interface {
	Name() Name
	Count() int
	Kind() Kind
	// Add increases the stack by n.
	Add(n int)
	// Take decreases the stack by n, or returns ErrInsufficientCount.
	Take(n int) error
	sealed()
}

// stack carries the fields shared by every variant.
//
// Invariant: count >= 0.
type stack struct {
	name  Name
	count int
}

// Name returns the item's identity.
func (s *stack) Name() Name { return s.name }

// Count returns how many are held.
func (s *stack) Count() int { return s.count }

// Add increases the stack by n. Negative n is ignored.
func (s *stack) Add(n int) {
	if n > 0 {
		s.count += n
	}
}

// Take decreases the stack by n.
//
// Precondition: n >= 0.
// Postcondition: on error the count is unchanged.
func (s *stack) Take(n int) error {
	if n > s.count {
		return fmt.Errorf("%w: %s has %d, need %d", ErrInsufficientCount, s.name, s.count, n)
	}
	s.count -= n
	return nil
}

func (s *stack) sealed() {}

func clampCount(count int) int {
	if count < 0 {
		return 0
	}
	return count
}

// Weapon is an item that raises its wielder's attack power and accuracy.
type Weapon struct {
	stack
	Atk          int
	HitRateBonus uint8
}

// NewWeapon returns a single weapon.
func NewWeapon(name Name, atk int, hitRateBonus uint8) *Weapon {
	return &Weapon{stack: stack{name: name, count: 1}, Atk: atk, HitRateBonus: hitRateBonus}
}

// Kind returns KindWeapon.
func (w *Weapon) Kind() Kind { return KindWeapon }

// Equipment is a wearable piece that contributes armor.
type Equipment struct {
	stack
	Type  EquipmentType
	Armor int
}

// NewEquipment returns a single equipment piece.
func NewEquipment(name Name, typ EquipmentType, armor int) *Equipment {
	return &Equipment{stack: stack{name: name, count: 1}, Type: typ, Armor: armor}
}

// Kind returns KindEquipment.
func (e *Equipment) Kind() Kind { return KindEquipment }

// Useable is a consumable whose count is decremented on use.
type Useable struct {
	stack
}

// NewUseable returns a stack of count consumables; negative counts become 0.
func NewUseable(name Name, count int) *Useable {
	return &Useable{stack: stack{name: name, count: clampCount(count)}}
}

// Kind returns KindUseable.
func (u *Useable) Kind() Kind { return KindUseable }
