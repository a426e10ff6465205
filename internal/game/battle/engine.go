// Package battle implements the turn-based battle engine: the agility-ordered
// turn queue, action resolution and the revive and requeue rules.
package battle

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/turnbattle/internal/game/dice"
	"github.com/cory-johannsen/turnbattle/internal/game/effect"
	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

var (
	// ErrNoTarget is returned by targeted actions when neither an argument
	// nor a selected target is available.
	ErrNoTarget = errors.New("battle: no target selected")
	// ErrNoItemSelected is returned by TurnUseItem before SetItem.
	ErrNoItemSelected = errors.New("battle: no item selected")
	// ErrItemUnavailable is returned by TurnUseItem when the selected item is
	// not in the inventory or its stack is empty.
	ErrItemUnavailable = errors.New("battle: item not available in inventory")
	// ErrQueueEmpty is returned by actions when no unit is left to act.
	ErrQueueEmpty = errors.New("battle: turn queue is empty")
)

// DamageCalculator resolves one physical attack.
// A return of 0 means the attack missed.
type DamageCalculator interface {
	Calculate(rawDamage int, hitRate uint8, target *unit.Unit) int
}

// StealCalculator resolves one steal attempt. A nil item means nothing was stolen.
type StealCalculator interface {
	Steal(source, target *unit.Unit) (item.Item, error)
}

// Effects applies consumable items.
type Effects interface {
	Apply(name item.Name, ctx effect.Context) error
}

// Engine owns the turn queue, both parties and the shared player inventory.
// All unit and inventory mutation during a battle flows through it.
//
// The caller drives it: read Source, pick a target, invoke one action, read
// the Last* results, then call NextTurn. An Engine is not safe for concurrent use.
type Engine struct {
	players   []*unit.Unit
	enemies   []*unit.Unit
	units     []*unit.Unit
	queue     []*unit.Unit
	inventory []item.Item

	damage  DamageCalculator
	steal   StealCalculator
	effects Effects
	src     dice.Source

	target     *unit.Unit
	selected   item.Item
	lastDamage int
	lastStolen item.Item
	lastUsed   item.Item
}

// Source returns the unit whose turn it is, or nil when the queue is empty.
func (e *Engine) Source() *unit.Unit {
	if len(e.queue) == 0 {
		return nil
	}
	return e.queue[0]
}

// Target returns the selected target, or nil when none is selected.
func (e *Engine) Target() *unit.Unit { return e.target }

// Queue returns a copy of the turn order, Source first.
func (e *Engine) Queue() []*unit.Unit { return append([]*unit.Unit(nil), e.queue...) }

// PlayerUnits returns the player party in construction order.
func (e *Engine) PlayerUnits() []*unit.Unit { return append([]*unit.Unit(nil), e.players...) }

// EnemyUnits returns the enemy party in construction order.
func (e *Engine) EnemyUnits() []*unit.Unit { return append([]*unit.Unit(nil), e.enemies...) }

// UnitsInBattle returns the player party followed by the enemy party.
func (e *Engine) UnitsInBattle() []*unit.Unit { return append([]*unit.Unit(nil), e.units...) }

// PlayerInventory returns the shared inventory stacks.
func (e *Engine) PlayerInventory() []item.Item { return append([]item.Item(nil), e.inventory...) }

// EnemyDefeated reports whether every enemy is at 0 HP.
func (e *Engine) EnemyDefeated() bool { return allDead(e.enemies) }

// PlayerDefeated reports whether every player unit is at 0 HP.
func (e *Engine) PlayerDefeated() bool { return allDead(e.players) }

// IsTurnAI reports whether Source belongs to the enemy party.
func (e *Engine) IsTurnAI() bool {
	s := e.Source()
	return s != nil && s.IsEnemy()
}

// LastDamageValue returns the damage of this turn's attack; 0 means a miss.
func (e *Engine) LastDamageValue() int { return e.lastDamage }

// LastStolenItem returns the item stolen this turn, or nil.
func (e *Engine) LastStolenItem() item.Item { return e.lastStolen }

// LastUsedItem returns the stack consumed this turn, or nil.
func (e *Engine) LastUsedItem() item.Item { return e.lastUsed }

// SelectedItem returns the item chosen with SetItem, or nil.
func (e *Engine) SelectedItem() item.Item { return e.selected }

// SetTarget selects u as the target. A nil u keeps the previous selection.
func (e *Engine) SetTarget(u *unit.Unit) {
	if u == nil {
		return
	}
	e.target = u
}

// SetItem selects it for the next TurnUseItem. A nil it clears the selection.
func (e *Engine) SetItem(it item.Item) { e.selected = it }

// AIAction returns the action an enemy takes on its turn. Target choice is
// left to the caller.
func (e *Engine) AIAction() Action { return ActionAttack }

// TurnAttack has Source attack target, or the selected target when target
// is nil. The target's defence stance ends whether or not the attack hits.
//
// Postcondition: target HP >= 0; LastDamageValue() is 0 iff the attack missed.
func (e *Engine) TurnAttack(target *unit.Unit) error {
	source, target, err := e.resolve(target)
	if err != nil {
		return err
	}
	dmg := e.damage.Calculate(source.Damage(), source.PhysicalHitRate(), target)
	target.TakeDamage(dmg)
	target.RemoveDefenceStance()
	e.lastDamage = dmg
	return nil
}

// TurnDefence puts Source into defence stance. It is a no-op on an empty queue.
func (e *Engine) TurnDefence() {
	if s := e.Source(); s != nil {
		s.PerformDefence()
	}
}

// TurnSteal has Source try to steal from target, or the selected target when
// target is nil. A stolen item is stacked into the shared inventory.
//
// Postcondition: LastStolenItem() is nil iff nothing was stolen.
func (e *Engine) TurnSteal(target *unit.Unit) error {
	source, target, err := e.resolve(target)
	if err != nil {
		return err
	}
	stolen, err := e.steal.Steal(source, target)
	if err != nil {
		return fmt.Errorf("battle: steal from %s: %w", target.Name, err)
	}
	if stolen == nil {
		return nil
	}
	e.inventory = item.Stack(e.inventory, stolen)
	e.lastStolen = stolen
	return nil
}

// TurnUseItem has Source use the selected item on target, or the selected
// target when target is nil. One unit of the matching inventory stack is
// consumed. A unit brought back from 0 HP rejoins the back of the queue.
//
// Precondition: SetItem was called with a consumable held in the inventory.
// Postcondition: returns ErrNoItemSelected or ErrItemUnavailable without
// changing any state when the precondition does not hold.
func (e *Engine) TurnUseItem(target *unit.Unit) error {
	if e.selected == nil {
		return ErrNoItemSelected
	}
	held := e.heldStack(e.selected.Name())
	if held == nil || held.Count() <= 0 {
		return fmt.Errorf("%w: %s", ErrItemUnavailable, e.selected.Name())
	}
	source, target, err := e.resolve(target)
	if err != nil {
		return err
	}

	wasDead := target.IsDead()
	ctx := effect.Context{Source: source, Target: target, InCombat: true}
	if err := e.effects.Apply(held.Name(), ctx); err != nil {
		return fmt.Errorf("battle: use %s: %w", held.Name(), err)
	}
	if err := held.Take(1); err != nil {
		return fmt.Errorf("%w: %v", ErrItemUnavailable, err)
	}
	e.lastUsed = held
	if wasDead && target.IsAlive() {
		e.requeue(target)
	}
	return nil
}

// TryRebirth gives a wiped-out player party one chance to rise again: with
// Phoenix Pinions held, a byte draw below the pinion count revives every
// player unit and sends them to the back of the queue. The pinions are
// not consumed.
//
// Postcondition: returns true iff the player party was revived.
func (e *Engine) TryRebirth() bool {
	if !e.PlayerDefeated() {
		return false
	}
	pinions := item.Total(e.inventory, item.PhoenixPinion)
	if pinions <= 0 {
		return false
	}
	if int(e.src.Uint8()) >= pinions {
		return false
	}
	for _, u := range e.players {
		u.Revive()
		if u.IsAlive() {
			e.requeue(u)
		}
	}
	return true
}

// NextTurn advances the queue. A target that died this turn leaves the queue
// (not its party); then the front unit moves to the back. When the dead
// target was itself at the front, its removal is the advance. The turn's
// results, the item selection and the target selection are cleared.
func (e *Engine) NextTurn() {
	rotate := true
	if e.target != nil && e.target.IsDead() {
		if i := indexOf(e.queue, e.target); i >= 0 {
			rotate = i != 0
			e.queue = removeUnit(e.queue, e.target)
		}
	}
	if rotate && len(e.queue) > 0 {
		front := e.queue[0]
		e.queue = append(e.queue[1:], front)
	}

	e.lastDamage = 0
	e.lastStolen = nil
	e.lastUsed = nil
	e.selected = nil
	e.target = nil
}

// resolve returns Source and the effective target, recording the target as
// the selection so NextTurn can evict it if it dies.
func (e *Engine) resolve(target *unit.Unit) (*unit.Unit, *unit.Unit, error) {
	source := e.Source()
	if source == nil {
		return nil, nil, ErrQueueEmpty
	}
	if target == nil {
		target = e.target
	}
	if target == nil {
		return nil, nil, ErrNoTarget
	}
	e.target = target
	return source, target, nil
}

func (e *Engine) heldStack(name item.Name) item.Item {
	for _, it := range e.inventory {
		if it.Name() == name && it.Kind() == item.KindUseable && it.Count() > 0 {
			return it
		}
	}
	return item.Find(e.inventory, name)
}

func (e *Engine) requeue(u *unit.Unit) {
	if indexOf(e.queue, u) < 0 {
		e.queue = append(e.queue, u)
	}
}
