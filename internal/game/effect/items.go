package effect

import (
	"github.com/cory-johannsen/turnbattle/internal/game/dice"
	"github.com/cory-johannsen/turnbattle/internal/game/status"
	"github.com/cory-johannsen/turnbattle/internal/game/unit"
)

const (
	potionHeal         = 100
	hiPotionHeal       = 300
	hiPotionCombatHeal = 450
	etherRestore       = 150
	etherCombatRestore = 100
	pinionInstantDeath = 10
	chemistMultiplier  = 2
)

var (
	pinionRoll = dice.MustParse("1d10")
	// tentRoll afflicts on a 2.
	tentRoll = dice.MustParse("1d2")
)

// remedyCures lists every status a Remedy removes.
var remedyCures = []status.Status{
	status.Stop, status.Poison, status.Venom,
	status.Mini, status.GradualPetrify, status.Silence,
	status.Darkness,
}

func chemistBoost(src *unit.Unit, amount int) int {
	if src != nil && src.HasSupportAbility(unit.Chemist) {
		return amount * chemistMultiplier
	}
	return amount
}

func potion(ctx Context) {
	if ctx.Target.IsDead() {
		return
	}
	ctx.Target.TakeHeal(chemistBoost(ctx.Source, potionHeal))
}

func hiPotion(ctx Context) {
	if ctx.Target.IsDead() {
		return
	}
	amount := hiPotionHeal
	if ctx.InCombat {
		amount = hiPotionCombatHeal
	}
	ctx.Target.TakeHeal(chemistBoost(ctx.Source, amount))
}

// ether is weaker mid-combat.
func ether(ctx Context) {
	if ctx.Target.IsDead() {
		return
	}
	amount := etherRestore
	if ctx.InCombat {
		amount = etherCombatRestore
	}
	ctx.Target.RestoreMP(chemistBoost(ctx.Source, amount))
}

func elixir(ctx Context) {
	if ctx.Target.IsDead() {
		return
	}
	if ctx.Target.IsType(unit.Undead) {
		ctx.Target.InstantDeath()
		return
	}
	ctx.Target.HealFull()
	ctx.Target.ManaFull()
}

func phoenixDown(ctx Context) {
	if ctx.Target.HP() != 0 {
		return
	}
	ctx.Target.Revive()
}

// phoenixPinion revives a fallen ally. Against a living undead enemy it has a
// one in ten chance to kill outright; otherwise it heals by the roll.
type phoenixPinion struct {
	src dice.Source
}

func (p phoenixPinion) Apply(ctx Context) {
	if ctx.Target.IsPlayer() {
		ctx.Target.Revive()
		return
	}
	if ctx.Target.IsDead() || !ctx.Target.IsType(unit.Undead) {
		return
	}
	roll := dice.Roll(pinionRoll, p.src).Total()
	if roll == pinionInstantDeath {
		ctx.Target.InstantDeath()
		return
	}
	ctx.Target.TakeHeal(roll)
}

// tent restores half of HP and MP in the field and all of it in combat, where
// it also has an even chance to inflict poison, darkness and silence.
type tent struct {
	src dice.Source
}

func (t tent) Apply(ctx Context) {
	if ctx.Target.IsDead() {
		return
	}
	hp, mp := ctx.Target.MaxHP()/2, ctx.Target.MaxMP()/2
	if ctx.InCombat {
		hp, mp = ctx.Target.MaxHP(), ctx.Target.MaxMP()
	}
	ctx.Target.TakeHeal(hp)
	ctx.Target.RestoreMP(mp)

	if !ctx.InCombat {
		return
	}
	if dice.Roll(tentRoll, t.src).Total() < 2 {
		return
	}
	ctx.Target.AddStatus(status.Poison)
	ctx.Target.AddStatus(status.Darkness)
	ctx.Target.AddStatus(status.Silence)
}

func antidote(ctx Context) {
	if ctx.Target.IsDead() {
		return
	}
	ctx.Target.RemoveStatus(status.Poison)
	ctx.Target.RemoveStatus(status.Venom)
}

// soft cures petrification on allies and shatters stone enemies.
func soft(ctx Context) {
	if ctx.Target.IsDead() {
		return
	}
	if ctx.Target.IsPlayer() {
		ctx.Target.RemoveStatus(status.Petrify)
		ctx.Target.RemoveStatus(status.GradualPetrify)
		return
	}
	if ctx.Target.IsType(unit.Stone) {
		ctx.Target.InstantDeath()
	}
}

func annoyntment(ctx Context) {
	if ctx.Target.IsDead() {
		return
	}
	ctx.Target.RemoveStatus(status.Trouble)
}

func remedy(ctx Context) {
	if ctx.Target.IsDead() {
		return
	}
	for _, s := range remedyCures {
		ctx.Target.RemoveStatus(s)
	}
}
