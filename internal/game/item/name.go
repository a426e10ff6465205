package item

import (
	"fmt"
	"strings"
)

// Name is the closed identity of an item.
type Name int

const (
	Potion Name = iota + 1
	HiPotion
	Ether
	Elixir
	PhoenixDown
	PhoenixPinion
	Tent
	Antidote
	Soft
	Annoyntment
	Remedy
	Dagger
	MageMasher
	Broadsword
	LeatherHat
	LeatherWrist
	BronzeGloves
	Wrist
)

type nameInfo struct {
	id      string
	display string
	kind    Kind
}

var nameTable = map[Name]nameInfo{
	Potion:        {"potion", "Potion", KindUseable},
	HiPotion:      {"hi_potion", "Hi-Potion", KindUseable},
	Ether:         {"ether", "Ether", KindUseable},
	Elixir:        {"elixir", "Elixir", KindUseable},
	PhoenixDown:   {"phoenix_down", "Phoenix Down", KindUseable},
	PhoenixPinion: {"phoenix_pinion", "Phoenix Pinion", KindUseable},
	Tent:          {"tent", "Tent", KindUseable},
	Antidote:      {"antidote", "Antidote", KindUseable},
	Soft:          {"soft", "Soft", KindUseable},
	Annoyntment:   {"annoyntment", "Annoyntment", KindUseable},
	Remedy:        {"remedy", "Remedy", KindUseable},
	Dagger:        {"dagger", "Dagger", KindWeapon},
	MageMasher:    {"mage_masher", "Mage Masher", KindWeapon},
	Broadsword:    {"broadsword", "Broadsword", KindWeapon},
	LeatherHat:    {"leather_hat", "Leather Hat", KindEquipment},
	LeatherWrist:  {"leather_wrist", "Leather Wrist", KindEquipment},
	BronzeGloves:  {"bronze_gloves", "Bronze Gloves", KindEquipment},
	Wrist:         {"wrist", "Wrist", KindEquipment},
}

// String returns the display name, e.g. "Phoenix Down".
func (n Name) String() string {
	if info, ok := nameTable[n]; ok {
		return info.display
	}
	return fmt.Sprintf("Name(%d)", int(n))
}

// ID returns the snake_case content identifier, e.g. "phoenix_down".
func (n Name) ID() string {
	if info, ok := nameTable[n]; ok {
		return info.id
	}
	return ""
}

// Kind returns the variant an item of this name is instantiated as.
func (n Name) Kind() Kind {
	return nameTable[n].kind
}

// Consumable reports whether items of this name are used up from the inventory.
func (n Name) Consumable() bool {
	info, ok := nameTable[n]
	return ok && info.kind == KindUseable
}

// ParseName resolves a Name from either its content identifier or its display
// name, case-insensitively.
//
// Postcondition: returns an error iff s matches no known item.
func ParseName(s string) (Name, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for n, info := range nameTable {
		if info.id == want || strings.ToLower(info.display) == want {
			return n, nil
		}
	}
	return 0, fmt.Errorf("item: unknown item name %q", s)
}

// UnmarshalText lets item names appear by identifier in YAML content.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText renders the content identifier.
func (n Name) MarshalText() ([]byte, error) {
	id := n.ID()
	if id == "" {
		return nil, fmt.Errorf("item: cannot marshal unknown name %d", int(n))
	}
	return []byte(id), nil
}
