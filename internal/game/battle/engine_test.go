package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/turnbattle/internal/game/battle"
	"github.com/cory-johannsen/turnbattle/internal/game/combat"
	"github.com/cory-johannsen/turnbattle/internal/game/effect"
	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
	"github.com/cory-johannsen/turnbattle/internal/testutil"
)

// fixedDamage always deals the same damage.
type fixedDamage int

func (f fixedDamage) Calculate(int, uint8, *unit.Unit) int { return int(f) }

// noSteal never steals anything.
type noSteal struct{}

func (noSteal) Steal(_, _ *unit.Unit) (item.Item, error) { return nil, nil }

func build(t *testing.T, b *battle.Builder) *battle.Engine {
	t.Helper()
	e, err := b.Build()
	require.NoError(t, err)
	return e
}

func thiefVsWarrior(t *testing.T, dmg battle.DamageCalculator) (*battle.Engine, *unit.Unit, *unit.Unit) {
	t.Helper()
	thief := unit.Thief("Zidane", true)
	warrior := unit.Warrior("Masked Man", false)
	e := build(t, battle.NewBuilder().
		WithPlayerUnit(thief).
		WithEnemyUnit(warrior).
		WithDamageCalculator(dmg).
		WithStealCalculator(noSteal{}))
	return e, thief, warrior
}

func TestEngine_ThiefActsBeforeWarrior(t *testing.T) {
	e, thief, warrior := thiefVsWarrior(t, fixedDamage(1))
	assert.Equal(t, []*unit.Unit{thief, warrior}, e.Queue())
	assert.Same(t, thief, e.Source())
	assert.False(t, e.IsTurnAI())

	e.NextTurn()
	assert.Equal(t, []*unit.Unit{warrior, thief}, e.Queue())
	assert.True(t, e.IsTurnAI())
	assert.Equal(t, battle.ActionAttack, e.AIAction())
}

func TestEngine_InitialQueue_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		agility := rapid.IntRange(0, 5)
		players := rapid.SliceOfN(agility, 1, 4).Draw(rt, "player_agl")
		enemies := rapid.SliceOfN(agility, 1, 4).Draw(rt, "enemy_agl")

		b := battle.NewBuilder().WithDamageCalculator(fixedDamage(1)).WithStealCalculator(noSteal{})
		for _, a := range players {
			b.WithPlayerUnit(unit.NewBuilder().AsPlayer().WithHP(10).WithAgl(a).MustBuild())
		}
		for _, a := range enemies {
			b.WithEnemyUnit(unit.NewBuilder().AsEnemy().WithHP(10).WithAgl(a).MustBuild())
		}
		e, err := b.Build()
		require.NoError(rt, err)

		order := map[*unit.Unit]int{}
		for i, u := range e.UnitsInBattle() {
			order[u] = i
		}
		q := e.Queue()
		require.Len(rt, q, len(players)+len(enemies))
		for i := 1; i < len(q); i++ {
			require.GreaterOrEqual(rt, q[i-1].Agl, q[i].Agl)
			if q[i-1].Agl == q[i].Agl {
				require.Less(rt, order[q[i-1]], order[q[i]], "ties keep party-then-index order")
			}
		}
	})
}

func TestEngine_InitialQueue_SkipsDeadUnits(t *testing.T) {
	down := unit.NewBuilder().AsPlayer().WithHP(10).WithCurrentHP(0).WithAgl(99).MustBuild()
	up := unit.Thief("up", true)
	e := build(t, battle.NewBuilder().WithPlayerParty(down, up).WithEnemyUnit(unit.Warrior("w", false)))
	assert.NotContains(t, e.Queue(), down)
	assert.Len(t, e.PlayerUnits(), 2)
}

func TestEngine_NextTurn_RotatesExactlyOne_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 3).Draw(rt, "per_side")
		b := battle.NewBuilder()
		for i := 0; i < n; i++ {
			b.WithPlayerUnit(unit.NewBuilder().AsPlayer().WithHP(10).WithAgl(rapid.IntRange(0, 30).Draw(rt, "agl")).MustBuild())
			b.WithEnemyUnit(unit.NewBuilder().AsEnemy().WithHP(10).WithAgl(rapid.IntRange(0, 30).Draw(rt, "agl")).MustBuild())
		}
		e, err := b.Build()
		require.NoError(rt, err)

		turns := rapid.IntRange(1, 10).Draw(rt, "turns")
		for i := 0; i < turns; i++ {
			before := e.Queue()
			e.NextTurn()
			want := append(before[1:len(before):len(before)], before[0])
			require.Equal(rt, want, e.Queue())
		}
	})
}

func TestEngine_NextTurn_RemovesDeadTargetFromQueueOnly(t *testing.T) {
	thief := unit.Thief("Zidane", true)
	warrior := unit.Warrior("Masked Man", false)
	mage := unit.NewBuilder().AsEnemy().WithName("mage").WithHP(5).WithAgl(1).MustBuild()
	e := build(t, battle.NewBuilder().
		WithPlayerUnit(thief).
		WithEnemyParty(warrior, mage).
		WithDamageCalculator(fixedDamage(999)))

	require.NoError(t, e.TurnAttack(warrior))
	assert.Equal(t, 0, warrior.HP())
	e.NextTurn()

	assert.Equal(t, []*unit.Unit{mage, thief}, e.Queue())
	assert.Contains(t, e.EnemyUnits(), warrior)
	assert.False(t, e.EnemyDefeated())
}

func TestEngine_NextTurn_SelfKillAdvancesOnce(t *testing.T) {
	e, thief, warrior := thiefVsWarrior(t, fixedDamage(999))
	require.NoError(t, e.TurnAttack(thief))
	e.NextTurn()
	assert.Equal(t, []*unit.Unit{warrior}, e.Queue())
	assert.True(t, e.PlayerDefeated())
}

func TestEngine_NextTurn_ClearsTurnState(t *testing.T) {
	e, _, warrior := thiefVsWarrior(t, fixedDamage(3))
	e.SetTarget(warrior)
	e.SetItem(item.NewUseable(item.Potion, 1))
	require.NoError(t, e.TurnAttack(nil))
	assert.Equal(t, 3, e.LastDamageValue())

	e.NextTurn()
	assert.Zero(t, e.LastDamageValue())
	assert.Nil(t, e.LastStolenItem())
	assert.Nil(t, e.LastUsedItem())
	assert.Nil(t, e.SelectedItem())
	assert.Nil(t, e.Target())
}

func TestEngine_SetTarget_NilKeepsSelection(t *testing.T) {
	e, _, warrior := thiefVsWarrior(t, fixedDamage(1))
	e.SetTarget(warrior)
	e.SetTarget(nil)
	assert.Same(t, warrior, e.Target())
}

func TestEngine_TurnAttack_NoTarget(t *testing.T) {
	e, _, _ := thiefVsWarrior(t, fixedDamage(1))
	assert.ErrorIs(t, e.TurnAttack(nil), battle.ErrNoTarget)
	assert.ErrorIs(t, e.TurnSteal(nil), battle.ErrNoTarget)
}

func TestEngine_TurnAttack_MissLeavesHP(t *testing.T) {
	e, _, warrior := thiefVsWarrior(t, fixedDamage(0))
	warrior.PerformDefence()
	require.NoError(t, e.TurnAttack(warrior))
	assert.Zero(t, e.LastDamageValue())
	assert.Equal(t, warrior.MaxHP(), warrior.HP())
	assert.False(t, warrior.InDefenceStance(), "being attacked ends the stance even on a miss")
}

func TestEngine_TurnAttack_HPNeverNegative_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dmg := rapid.IntRange(0, 500).Draw(rt, "damage")
		thief := unit.Thief("t", true)
		warrior := unit.Warrior("w", false)
		e, err := battle.NewBuilder().WithPlayerUnit(thief).WithEnemyUnit(warrior).
			WithDamageCalculator(fixedDamage(dmg)).Build()
		require.NoError(rt, err)

		require.NoError(rt, e.TurnAttack(warrior))
		assert.GreaterOrEqual(rt, warrior.HP(), 0)
		assert.Equal(rt, max(0, warrior.MaxHP()-dmg), warrior.HP())
	})
}

func TestEngine_TurnDefence_HalvesNextHitOnce(t *testing.T) {
	// Hit roll 0 always connects; damage rolls come next.
	src := testutil.NewScriptedSource().QueueRange(0, 11, 0, 11)
	e, thief, warrior := thiefVsWarrior(t, combat.NewPhysicalDamage(src))

	e.NextTurn() // warrior's turn
	e.TurnDefence()
	assert.True(t, warrior.InDefenceStance())
	e.NextTurn() // thief's turn

	require.NoError(t, e.TurnAttack(warrior))
	assert.Equal(t, 5, e.LastDamageValue())
	assert.False(t, warrior.InDefenceStance())
	e.NextTurn()
	e.NextTurn()

	require.Same(t, thief, e.Source())
	require.NoError(t, e.TurnAttack(warrior))
	assert.Equal(t, 11, e.LastDamageValue())
	assert.Equal(t, 35-5-11, warrior.HP())
	assert.Zero(t, src.Pending())
}

func TestEngine_TurnSteal_MovesItemOnce(t *testing.T) {
	ether := item.NewUseable(item.Ether, 1)
	thief := unit.Thief("Zidane", true)
	boss := unit.NewBuilder().AsEnemy().WithName("boss").WithHP(100).
		WithStealable(nil, nil, nil, ether).
		WithStealRates(0, 0, 0, 1).
		MustBuild()
	// Contest draws, then a slot 3 draw under its rate.
	src := testutil.NewScriptedSource().QueueUint16(0, 0).QueueUint8(0)
	e := build(t, battle.NewBuilder().
		WithPlayerUnit(thief).
		WithEnemyUnit(boss).
		WithStealCalculator(combat.NewStealer(src)).
		WithInventoryItem(item.NewUseable(item.Ether, 2)))

	require.NoError(t, e.TurnSteal(boss))
	assert.Same(t, ether, e.LastStolenItem())
	assert.Equal(t, 3, item.Total(e.PlayerInventory(), item.Ether))
	assert.Len(t, e.PlayerInventory(), 1, "stolen stack merges into the held one")
	assert.Equal(t, 0, boss.StealableItemsCount())
	e.NextTurn()
	e.NextTurn()

	src.QueueUint16(0, 0).QueueUint8(0, 0, 0, 0)
	require.NoError(t, e.TurnSteal(boss))
	assert.Nil(t, e.LastStolenItem())
	assert.Equal(t, 3, item.Total(e.PlayerInventory(), item.Ether))
	assert.Zero(t, src.Pending())
}

func TestEngine_TurnSteal_FailureLeavesState(t *testing.T) {
	e, _, warrior := thiefVsWarrior(t, fixedDamage(1))
	require.NoError(t, e.TurnSteal(warrior))
	assert.Nil(t, e.LastStolenItem())
	assert.Empty(t, e.PlayerInventory())
}

func TestEngine_TurnUseItem_PhoenixDownRequeues(t *testing.T) {
	thief := unit.Thief("Zidane", true)
	fallen := unit.NewBuilder().AsPlayer().WithName("Cinna").WithHP(40).WithCurrentHP(0).WithAgl(20).MustBuild()
	warrior := unit.Warrior("Masked Man", false)
	e := build(t, battle.NewBuilder().
		WithPlayerParty(thief, fallen).
		WithEnemyUnit(warrior).
		WithInventoryItem(item.NewUseable(item.PhoenixDown, 2)))
	require.Equal(t, []*unit.Unit{thief, warrior}, e.Queue())

	e.SetItem(item.NewUseable(item.PhoenixDown, 1))
	require.NoError(t, e.TurnUseItem(fallen))
	assert.True(t, fallen.IsAlive())
	assert.Equal(t, []*unit.Unit{thief, warrior, fallen}, e.Queue())
	require.NotNil(t, e.LastUsedItem())
	assert.Equal(t, item.PhoenixDown, e.LastUsedItem().Name())
	assert.Equal(t, 1, item.Total(e.PlayerInventory(), item.PhoenixDown))

	e.NextTurn()
	assert.Equal(t, []*unit.Unit{warrior, fallen, thief}, e.Queue())
}

func TestEngine_TurnUseItem_PhoenixDownOnLivingUnitKeepsQueue(t *testing.T) {
	thief := unit.Thief("Zidane", true)
	e := build(t, battle.NewBuilder().
		WithPlayerUnit(thief).
		WithEnemyUnit(unit.Warrior("w", false)).
		WithInventoryItem(item.NewUseable(item.PhoenixDown, 1)))
	before := e.Queue()

	e.SetItem(item.NewUseable(item.PhoenixDown, 1))
	require.NoError(t, e.TurnUseItem(thief))
	assert.Equal(t, before, e.Queue())
	assert.Equal(t, thief.MaxHP(), thief.HP())
}

func TestEngine_TurnUseItem_ElixirKillsUndead(t *testing.T) {
	thief := unit.Thief("Zidane", true)
	ghost := unit.NewBuilder().AsEnemy().WithName("ghost").WithType(unit.Undead).WithHP(200).MustBuild()
	e := build(t, battle.NewBuilder().
		WithPlayerUnit(thief).
		WithEnemyUnit(ghost).
		WithInventoryItem(item.NewUseable(item.Elixir, 1)))

	e.SetTarget(ghost)
	e.SetItem(item.NewUseable(item.Elixir, 1))
	require.NoError(t, e.TurnUseItem(nil))
	assert.Equal(t, 0, ghost.HP())
	assert.True(t, e.EnemyDefeated())
}

func TestEngine_TurnUseItem_Errors(t *testing.T) {
	thief := unit.Thief("Zidane", true)
	warrior := unit.Warrior("w", false)
	empty := item.NewUseable(item.Potion, 0)
	e := build(t, battle.NewBuilder().
		WithPlayerUnit(thief).
		WithEnemyUnit(warrior).
		WithInventory(empty, item.NewWeapon(item.Dagger, 12, 0)))

	assert.ErrorIs(t, e.TurnUseItem(thief), battle.ErrNoItemSelected)

	e.SetItem(empty)
	assert.ErrorIs(t, e.TurnUseItem(thief), battle.ErrItemUnavailable)

	e.SetItem(item.NewUseable(item.Remedy, 1))
	assert.ErrorIs(t, e.TurnUseItem(thief), battle.ErrItemUnavailable)

	assert.Nil(t, e.Target(), "failed preconditions leave the selection untouched")

	e.SetItem(item.NewWeapon(item.Dagger, 12, 0))
	assert.ErrorIs(t, e.TurnUseItem(thief), effect.ErrNoEffect)
	assert.Nil(t, e.LastUsedItem())
	assert.Equal(t, 1, item.Total(e.PlayerInventory(), item.Dagger))
}

func TestEngine_TryRebirth(t *testing.T) {
	thief := unit.Thief("Zidane", true)
	warrior := unit.Warrior("Masked Man", false)
	src := testutil.NewScriptedSource()
	e := build(t, battle.NewBuilder().
		WithPlayerUnit(thief).
		WithEnemyUnit(warrior).
		WithDamageCalculator(fixedDamage(999)).
		WithInventoryItem(item.NewUseable(item.PhoenixPinion, 3)).
		WithSource(src))

	assert.False(t, e.TryRebirth(), "a standing party cannot be reborn")
	assert.Empty(t, src.Calls)

	e.NextTurn()
	require.NoError(t, e.TurnAttack(thief))
	e.NextTurn()
	require.True(t, e.PlayerDefeated())
	require.Equal(t, []*unit.Unit{warrior}, e.Queue())

	src.QueueUint8(3)
	assert.False(t, e.TryRebirth())
	assert.True(t, e.PlayerDefeated())

	src.QueueUint8(2)
	assert.True(t, e.TryRebirth())
	assert.True(t, thief.IsAlive())
	assert.Equal(t, []*unit.Unit{warrior, thief}, e.Queue())
	assert.Equal(t, 3, item.Total(e.PlayerInventory(), item.PhoenixPinion))
}

func TestEngine_TryRebirth_NoPinions(t *testing.T) {
	fallen := unit.NewBuilder().AsPlayer().WithHP(10).WithCurrentHP(0).MustBuild()
	src := testutil.NewScriptedSource()
	e := build(t, battle.NewBuilder().WithPlayerUnit(fallen).WithEnemyUnit(unit.Warrior("w", false)).WithSource(src))
	assert.False(t, e.TryRebirth())
	assert.Empty(t, src.Calls)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "attack", battle.ActionAttack.String())
	assert.Equal(t, "defend", battle.ActionDefend.String())
	assert.Equal(t, "steal", battle.ActionSteal.String())
	assert.Equal(t, "item", battle.ActionUseItem.String())
	assert.Equal(t, "change", battle.ActionChange.String())
	assert.Equal(t, "unknown", battle.ActionUnknown.String())
}
