// Package unit defines the combat participant shared by the battle engine,
// the combat calculators and the item effects.
package unit

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/status"
)

// StealSlots is the number of stealable loot positions on every unit.
const StealSlots = 4

const (
	initialAccuracy  = 18
	accuracyPerLevel = 3
	maxByte          = 255
)

var (
	// ErrInvalidLevel is returned when a unit is built with a non-positive level.
	ErrInvalidLevel = errors.New("unit: level must be positive")
	// ErrInvalidSlot is returned when a steal slot outside 0..3 is requested.
	ErrInvalidSlot = errors.New("unit: steal slot must be in range 0 to 3")
)

// Type tags a unit for item effects that single out undead or stone foes.
type Type int

const (
	Human Type = iota
	Undead
	Stone
)

// String returns a human-readable type label.
func (t Type) String() string {
	switch t {
	case Human:
		return "human"
	case Undead:
		return "undead"
	case Stone:
		return "stone"
	default:
		return "unknown"
	}
}

// UnmarshalText lets unit types appear by name in YAML content.
func (t *Type) UnmarshalText(text []byte) error {
	switch string(text) {
	case "human", "":
		*t = Human
	case "undead":
		*t = Undead
	case "stone":
		*t = Stone
	default:
		return fmt.Errorf("unit: unknown type %q", string(text))
	}
	return nil
}

// SupportAbility is a unit-level trait that modifies item potency.
type SupportAbility int

const (
	Chemist SupportAbility = iota + 1
)

// UnmarshalText lets support abilities appear by name in YAML content.
func (a *SupportAbility) UnmarshalText(text []byte) error {
	switch string(text) {
	case "chemist":
		*a = Chemist
	default:
		return fmt.Errorf("unit: unknown support ability %q", string(text))
	}
	return nil
}

// Unit is one participant in a battle.
//
// Invariant: 0 <= HP() <= MaxHP(); 0 <= MP() <= MaxMP(); Level() >= 1.
// A Unit is not safe for concurrent use.
type Unit struct {
	// ID uniquely identifies the unit; names are not unique.
	ID   string
	Name string
	Str  int
	Agl  int
	// Spirit feeds the steal hit rate.
	Spirit int
	Type   Type

	hp, maxHP int
	mp, maxMP int
	level     int
	// acc is derived from this unit's own level once, at construction.
	acc       uint8
	isPlayer  bool
	defending bool

	weapon     *item.Weapon
	equipment  []*item.Equipment
	inventory  []item.Item
	stealable  [StealSlots]item.Item
	stealRates [StealSlots]uint8
	statuses   *status.Set
	support    map[SupportAbility]bool
}

// HP returns the current hit points.
func (u *Unit) HP() int { return u.hp }

// MaxHP returns the maximum hit points.
func (u *Unit) MaxHP() int { return u.maxHP }

// MP returns the current magic points.
func (u *Unit) MP() int { return u.mp }

// MaxMP returns the maximum magic points.
func (u *Unit) MaxMP() int { return u.maxMP }

// Level returns the unit level (always >= 1).
func (u *Unit) Level() int { return u.level }

// IsPlayer reports whether the unit belongs to the player party. It never changes.
func (u *Unit) IsPlayer() bool { return u.isPlayer }

// IsEnemy reports whether the unit belongs to the enemy party.
func (u *Unit) IsEnemy() bool { return !u.isPlayer }

// IsAlive reports whether HP > 0.
func (u *Unit) IsAlive() bool { return u.hp > 0 }

// IsDead reports whether HP == 0.
func (u *Unit) IsDead() bool { return u.hp <= 0 }

// IsType reports whether the unit carries type t.
func (u *Unit) IsType(t Type) bool { return u.Type == t }

// InDefenceStance reports whether the next hit against the unit is halved.
func (u *Unit) InDefenceStance() bool { return u.defending }

// Weapon returns the equipped weapon; never nil.
func (u *Unit) Weapon() *item.Weapon { return u.weapon }

// Damage returns the raw physical damage: Str/2 plus weapon attack.
func (u *Unit) Damage() int { return u.Str/2 + u.weapon.Atk }

// PhysicalHitRate returns the unit accuracy plus the weapon hit-rate bonus, capped at 255.
func (u *Unit) PhysicalHitRate() uint8 {
	return clampByte(int(u.acc) + int(u.weapon.HitRateBonus))
}

// HasSupportAbility reports whether the unit has ability a.
func (u *Unit) HasSupportAbility(a SupportAbility) bool { return u.support[a] }

// TakeDamage reduces HP by damage, flooring at zero.
// Negative damage is treated as zero.
//
// Postcondition: HP() >= 0.
func (u *Unit) TakeDamage(damage int) {
	if damage < 0 {
		damage = 0
	}
	u.hp -= damage
	if u.hp < 0 {
		u.hp = 0
	}
}

// TakeHeal restores amount HP, capped at MaxHP. A dead unit cannot be healed.
func (u *Unit) TakeHeal(amount int) {
	if u.IsDead() || amount <= 0 {
		return
	}
	u.hp = min(u.hp+amount, u.maxHP)
}

// RestoreMP restores amount MP, capped at MaxMP.
func (u *Unit) RestoreMP(amount int) {
	if amount <= 0 {
		return
	}
	u.mp = min(u.mp+amount, u.maxMP)
}

// HealFull restores HP to MaxHP.
func (u *Unit) HealFull() { u.hp = u.maxHP }

// ManaFull restores MP to MaxMP.
func (u *Unit) ManaFull() { u.mp = u.maxMP }

// Revive brings a unit at 0 HP back with a tenth of its MaxHP, at least 1.
// Reviving a living unit is a no-op.
//
// Postcondition: IsAlive() is true when MaxHP() > 0.
func (u *Unit) Revive() {
	if u.IsAlive() || u.maxHP <= 0 {
		return
	}
	u.hp = max(1, u.maxHP/10)
}

// InstantDeath drops HP to zero and ends any defence stance.
func (u *Unit) InstantDeath() {
	u.hp = 0
	u.defending = false
}

// PerformDefence puts the unit into defence stance until it is next attacked.
func (u *Unit) PerformDefence() { u.defending = true }

// RemoveDefenceStance ends the defence stance.
func (u *Unit) RemoveDefenceStance() { u.defending = false }

// Equip adds eq to this unit's own equipment list.
//
// Precondition: eq must not be nil.
func (u *Unit) Equip(eq *item.Equipment) {
	u.equipment = append(u.equipment, eq)
}

// Equipment returns a copy of the equipped pieces.
func (u *Unit) Equipment() []*item.Equipment {
	out := make([]*item.Equipment, len(u.equipment))
	copy(out, u.equipment)
	return out
}

// SumArmor returns the summed Armor of armor-typed equipment.
//
// Postcondition: returns >= 0.
func (u *Unit) SumArmor() int {
	total := 0
	for _, eq := range u.equipment {
		if eq.Type == item.EquipmentArmor {
			total += eq.Armor
		}
	}
	return total
}

// Inventory returns a copy of the unit's personal inventory.
func (u *Unit) Inventory() []item.Item {
	out := make([]item.Item, len(u.inventory))
	copy(out, u.inventory)
	return out
}

// PutIntoInventory adds it to the unit's personal inventory.
func (u *Unit) PutIntoInventory(it item.Item) {
	u.inventory = append(u.inventory, it)
}

// StealRate returns the threshold for slot; a byte draw strictly below it succeeds.
//
// Precondition: 0 <= slot < StealSlots.
func (u *Unit) StealRate(slot int) uint8 { return u.stealRates[slot] }

// StealableItems returns a copy of the stealable slots; stolen slots are nil.
func (u *Unit) StealableItems() [StealSlots]item.Item { return u.stealable }

// StealableItemsCount returns the number of occupied stealable slots.
func (u *Unit) StealableItemsCount() int {
	n := 0
	for _, it := range u.stealable {
		if it != nil {
			n++
		}
	}
	return n
}

// Steal removes and returns the item in slot. An empty slot yields nil.
//
// Postcondition: StealableItems()[slot] is nil; returns ErrInvalidSlot for slot outside 0..3.
func (u *Unit) Steal(slot int) (item.Item, error) {
	if slot < 0 || slot >= StealSlots {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlot, slot)
	}
	it := u.stealable[slot]
	u.stealable[slot] = nil
	return it, nil
}

// AddStatus applies s.
func (u *Unit) AddStatus(s status.Status) { u.statuses.Add(s) }

// RemoveStatus clears s and reports whether it was active.
func (u *Unit) RemoveStatus(s status.Status) bool { return u.statuses.Remove(s) }

// HasStatus reports whether s is active.
func (u *Unit) HasStatus(s status.Status) bool { return u.statuses.Has(s) }

// HasAnyStatus reports whether any of ss is active.
func (u *Unit) HasAnyStatus(ss ...status.Status) bool { return u.statuses.HasAny(ss...) }

// Statuses returns the active statuses in declaration order.
func (u *Unit) Statuses() []status.Status { return u.statuses.All() }

// String returns the unit name and HP, for logs.
func (u *Unit) String() string {
	return fmt.Sprintf("%s (%d/%d HP)", u.Name, u.hp, u.maxHP)
}

func accuracyForLevel(level int) uint8 {
	return clampByte(initialAccuracy + accuracyPerLevel*(level-1))
}

func clampByte(v int) uint8 {
	if v > maxByte {
		return maxByte
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
