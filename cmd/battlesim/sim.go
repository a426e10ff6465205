package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/turnbattle/internal/game/ai"
	"github.com/cory-johannsen/turnbattle/internal/game/battle"
	"github.com/cory-johannsen/turnbattle/internal/observability"
)

type outcome int

const (
	undecided outcome = iota
	victory
	defeat
)

func (o outcome) String() string {
	switch o {
	case victory:
		return "victory"
	case defeat:
		return "defeat"
	default:
		return "undecided"
	}
}

type result struct {
	outcome outcome
	turns   int
	reborn  bool
}

// simulator drives an engine with one policy per side until the battle ends.
type simulator struct {
	engine   *battle.Engine
	players  ai.Policy
	enemies  ai.Policy
	maxTurns int
	logger   *zap.Logger
}

// run plays at most maxTurns actions. A wiped-out player party gets one
// rebirth attempt per battle.
func (s *simulator) run() (result, error) {
	var res result
	rebirthTried := false
	for {
		if s.engine.EnemyDefeated() {
			res.outcome = victory
			return res, nil
		}
		if s.engine.PlayerDefeated() {
			if rebirthTried {
				res.outcome = defeat
				return res, nil
			}
			rebirthTried = true
			if !s.engine.TryRebirth() {
				res.outcome = defeat
				return res, nil
			}
			res.reborn = true
			s.logger.Info("rebirth flame revives the party", observability.Queue("queue", s.engine.Queue()))
		}
		if res.turns >= s.maxTurns {
			return res, nil
		}

		if err := s.turn(); err != nil {
			return res, fmt.Errorf("turn %d: %w", res.turns+1, err)
		}
		res.turns++
	}
}

func (s *simulator) turn() error {
	e := s.engine
	source := e.Source()
	policy := s.players
	if e.IsTurnAI() {
		policy = s.enemies
	}
	plan, err := policy.Decide(e)
	if err != nil {
		return fmt.Errorf("%s deciding: %w", source.Name, err)
	}
	if err := ai.Execute(e, plan); err != nil {
		return fmt.Errorf("%s doing %s: %w", source.Name, plan.Action, err)
	}

	fields := []zap.Field{
		zap.Stringer("action", plan.Action),
		observability.Unit("source", source),
		observability.Unit("target", plan.Target),
	}
	switch plan.Action {
	case battle.ActionAttack:
		if e.LastDamageValue() == 0 {
			fields = append(fields, zap.Bool("missed", true))
		} else {
			fields = append(fields, zap.Int("damage", e.LastDamageValue()))
		}
	case battle.ActionSteal:
		fields = append(fields, observability.Item("stolen", e.LastStolenItem()))
	case battle.ActionUseItem:
		fields = append(fields, observability.Item("used", e.LastUsedItem()))
	}
	s.logger.Info("turn", fields...)
	if plan.Target != nil && plan.Target.IsDead() {
		s.logger.Info("unit died", observability.Unit("unit", plan.Target))
	}

	e.NextTurn()
	return nil
}
