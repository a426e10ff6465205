package ai

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/turnbattle/internal/game/battle"
	"github.com/cory-johannsen/turnbattle/internal/game/dice"
	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

// ErrUnknownAction is returned by Execute for a plan it cannot carry out.
var ErrUnknownAction = errors.New("ai: unknown action")

// lowHPDivisor marks a unit as badly hurt below MaxHP/lowHPDivisor.
const lowHPDivisor = 3

// PlannedAction is one decision for the current turn.
type PlannedAction struct {
	Action battle.Action
	// Target is nil for actions without one, such as defend.
	Target *unit.Unit
	// Item is set only for ActionUseItem.
	Item item.Item
}

// Policy decides the action for the engine's current Source.
type Policy interface {
	Decide(e *battle.Engine) (PlannedAction, error)
}

// AttackPolicy asks the engine for its enemy action and aims it at a random
// living opponent.
type AttackPolicy struct {
	src dice.Source
}

// NewAttackPolicy returns an AttackPolicy choosing targets with src.
//
// Precondition: src must be non-nil.
func NewAttackPolicy(src dice.Source) *AttackPolicy {
	return &AttackPolicy{src: src}
}

// Decide returns the engine's AI action against a random living opponent.
func (p *AttackPolicy) Decide(e *battle.Engine) (PlannedAction, error) {
	target, err := PickTarget(opponents(e), p.src)
	if err != nil {
		return PlannedAction{}, err
	}
	return PlannedAction{Action: e.AIAction(), Target: target}, nil
}

// AutoPolicy plays the player party without input. In priority order it
// revives a fallen ally with a Phoenix Down, heals a badly hurt Source with
// a Potion, steals from an enemy that still has loot when Source has spirit,
// and otherwise attacks a random living enemy.
type AutoPolicy struct {
	src dice.Source
}

// NewAutoPolicy returns an AutoPolicy choosing targets with src.
//
// Precondition: src must be non-nil.
func NewAutoPolicy(src dice.Source) *AutoPolicy {
	return &AutoPolicy{src: src}
}

// Decide picks the first applicable action for the engine's Source.
func (p *AutoPolicy) Decide(e *battle.Engine) (PlannedAction, error) {
	source := e.Source()
	if source == nil {
		return PlannedAction{}, battle.ErrQueueEmpty
	}
	inv := e.PlayerInventory()

	if down := stocked(inv, item.PhoenixDown); down != nil {
		for _, ally := range allies(e) {
			if ally.IsDead() {
				return PlannedAction{Action: battle.ActionUseItem, Target: ally, Item: down}, nil
			}
		}
	}
	if potion := stocked(inv, item.Potion); potion != nil && source.HP() < source.MaxHP()/lowHPDivisor {
		return PlannedAction{Action: battle.ActionUseItem, Target: source, Item: potion}, nil
	}
	if source.Spirit > 0 {
		var loaded []*unit.Unit
		for _, u := range alive(opponents(e)) {
			if u.StealableItemsCount() > 0 {
				loaded = append(loaded, u)
			}
		}
		if len(loaded) > 0 {
			return PlannedAction{Action: battle.ActionSteal, Target: loaded[p.src.Intn(len(loaded))]}, nil
		}
	}
	target, err := PickTarget(opponents(e), p.src)
	if err != nil {
		return PlannedAction{}, err
	}
	return PlannedAction{Action: battle.ActionAttack, Target: target}, nil
}

// Execute carries out plan on e for its current Source.
//
// Postcondition: returns ErrUnknownAction for ActionUnknown or any
// unrecognized action; otherwise the engine's own error, if any.
func Execute(e *battle.Engine, plan PlannedAction) error {
	switch plan.Action {
	case battle.ActionAttack:
		return e.TurnAttack(plan.Target)
	case battle.ActionDefend:
		e.TurnDefence()
		return nil
	case battle.ActionSteal:
		return e.TurnSteal(plan.Target)
	case battle.ActionUseItem:
		e.SetItem(plan.Item)
		return e.TurnUseItem(plan.Target)
	case battle.ActionChange:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, plan.Action)
	}
}

func opponents(e *battle.Engine) []*unit.Unit {
	if s := e.Source(); s != nil && s.IsEnemy() {
		return e.PlayerUnits()
	}
	return e.EnemyUnits()
}

func allies(e *battle.Engine) []*unit.Unit {
	if s := e.Source(); s != nil && s.IsEnemy() {
		return e.EnemyUnits()
	}
	return e.PlayerUnits()
}

func stocked(inv []item.Item, name item.Name) item.Item {
	for _, it := range inv {
		if it.Name() == name && it.Kind() == item.KindUseable && it.Count() > 0 {
			return it
		}
	}
	return nil
}
