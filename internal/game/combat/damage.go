// Package combat implements the physical damage and steal calculators used by
// the battle engine.
package combat

import (
	"github.com/cory-johannsen/turnbattle/internal/game/dice"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

const (
	baseChanceToHit = 168
	maxChanceToHit  = 255
	baseEvade       = 48
	hitRollSides    = 200
)

// PhysicalDamage resolves hit/miss and damage magnitude for physical attacks.
type PhysicalDamage struct {
	src dice.Source
}

// NewPhysicalDamage returns a PhysicalDamage calculator drawing from src.
//
// Precondition: src must be non-nil.
func NewPhysicalDamage(src dice.Source) *PhysicalDamage {
	return &PhysicalDamage{src: src}
}

// Calculate resolves one attack of rawDamage at attackerHitRate against target.
//
// The hit roll is drawn first from [0, 200); a roll above the chance to hit
// misses and nothing else is drawn. A connecting hit draws its damage from
// [rawDamage, 2*rawDamage), subtracts the target's armor and is halved when
// the target is in defence stance.
//
// Precondition: target must be non-nil; rawDamage >= 0.
// Postcondition: returns 0 iff the attack missed; a hit returns >= 1.
func (p *PhysicalDamage) Calculate(rawDamage int, attackerHitRate uint8, target *unit.Unit) int {
	armor := target.SumArmor()

	toHit := min(baseChanceToHit+int(attackerHitRate), maxChanceToHit)
	evade := baseEvade + target.Agl
	chanceToHit := toHit - evade

	if p.src.IntRange(0, hitRollSides) > chanceToHit {
		return 0
	}

	dmg := p.src.IntRange(rawDamage, rawDamage*2) - armor
	if target.InDefenceStance() {
		dmg /= 2
	}
	return max(1, dmg)
}
