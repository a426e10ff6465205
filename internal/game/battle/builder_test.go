package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/turnbattle/internal/game/battle"
	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

func TestBuilder_RejectsEmptyParties(t *testing.T) {
	_, err := battle.NewBuilder().Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player party must not be empty")
	assert.Contains(t, err.Error(), "enemy party must not be empty")
}

func TestBuilder_RejectsWrongSide(t *testing.T) {
	_, err := battle.NewBuilder().
		WithPlayerUnit(unit.Warrior("traitor", false)).
		WithEnemyUnit(unit.Warrior("w", false)).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong side")
}

func TestBuilder_RejectsNilEntries(t *testing.T) {
	_, err := battle.NewBuilder().
		WithPlayerParty(unit.Thief("t", true), nil).
		WithEnemyUnit(unit.Warrior("w", false)).
		WithInventoryItem(nil).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player party[1] is nil")
	assert.Contains(t, err.Error(), "inventory[0] is nil")
}

func TestBuilder_DefaultsEveryCollaborator(t *testing.T) {
	thief := unit.Thief("t", true)
	warrior := unit.Warrior("w", false)
	e, err := battle.NewBuilder().WithPlayerUnit(thief).WithEnemyUnit(warrior).Build()
	require.NoError(t, err)

	require.NoError(t, e.TurnAttack(warrior))
	assert.GreaterOrEqual(t, e.LastDamageValue(), 0)
	require.NoError(t, e.TurnSteal(warrior))
	assert.Nil(t, e.LastStolenItem(), "nothing to steal")
}

func TestBuilder_StacksInventoryByName(t *testing.T) {
	e, err := battle.NewBuilder().
		WithPlayerUnit(unit.Thief("t", true)).
		WithEnemyUnit(unit.Warrior("w", false)).
		WithInventory(item.NewUseable(item.Potion, 2), item.NewUseable(item.Ether, 1)).
		WithInventoryItem(item.NewUseable(item.Potion, 3)).
		Build()
	require.NoError(t, err)
	assert.Len(t, e.PlayerInventory(), 2)
	assert.Equal(t, 5, item.Total(e.PlayerInventory(), item.Potion))
}

func TestBuilder_PartiesKeepOrder(t *testing.T) {
	a, b := unit.Thief("a", true), unit.Warrior("b", true)
	x := unit.Warrior("x", false)
	e, err := battle.NewBuilder().WithPlayerParty(a, b).WithEnemyParty(x).Build()
	require.NoError(t, err)
	assert.Equal(t, []*unit.Unit{a, b}, e.PlayerUnits())
	assert.Equal(t, []*unit.Unit{x}, e.EnemyUnits())
	assert.Equal(t, []*unit.Unit{a, b, x}, e.UnitsInBattle())
	assert.Equal(t, []*unit.Unit{a, b, x}, e.Queue(), "b and x tie on agility and keep party order")
}
