// Package main runs a headless battle simulation from an encounter file.
// It wires together configuration, logging, content loading and the engine.
package main

import (
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/turnbattle/internal/config"
	"github.com/cory-johannsen/turnbattle/internal/game/ai"
	"github.com/cory-johannsen/turnbattle/internal/game/battle"
	"github.com/cory-johannsen/turnbattle/internal/game/dice"
	"github.com/cory-johannsen/turnbattle/internal/game/encounter"
	"github.com/cory-johannsen/turnbattle/internal/game/item"
	"github.com/cory-johannsen/turnbattle/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/battlesim.yaml", "path to configuration file")
	encounterPath := flag.String("encounter", "", "path to encounter YAML file (overrides content.encounter)")
	itemsDir := flag.String("items", "", "path to item YAML files directory (overrides content.items_dir)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *encounterPath != "" {
		cfg.Content.Encounter = *encounterPath
	}
	if *itemsDir != "" {
		cfg.Content.ItemsDir = *itemsDir
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var src dice.Source
	if cfg.Battle.Seed != 0 {
		src = dice.NewSeededSource(cfg.Battle.Seed)
	} else {
		src = dice.NewCryptoSource()
	}
	src = dice.NewLoggedSource(src, logger.Named("dice"))

	// Load content
	catalog, err := item.LoadCatalog(cfg.Content.ItemsDir)
	if err != nil {
		logger.Fatal("loading item catalog", zap.Error(err))
	}
	enc, err := encounter.Load(cfg.Content.Encounter, catalog)
	if err != nil {
		logger.Fatal("loading encounter", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("gear", catalog.Len()),
		zap.String("encounter", enc.Name),
		zap.Int("players", len(enc.Players)),
		zap.Int("enemies", len(enc.Enemies)),
	)
	runLog := observability.WithRun(logger, cfg.Battle.Seed, enc.Name)

	engine, err := battle.NewBuilder().
		WithPlayerParty(enc.Players...).
		WithEnemyParty(enc.Enemies...).
		WithInventory(enc.Inventory...).
		WithSource(src).
		Build()
	if err != nil {
		logger.Fatal("building battle", zap.Error(err))
	}

	policies := ai.NewRegistry(src)
	playerPolicy, err := policies.For(cfg.Battle.PlayerPolicy)
	if err != nil {
		logger.Fatal("selecting player policy", zap.Error(err))
	}
	enemyPolicy, err := policies.For(ai.PolicyAttack)
	if err != nil {
		logger.Fatal("selecting enemy policy", zap.Error(err))
	}

	sim := &simulator{
		engine:   engine,
		players:  playerPolicy,
		enemies:  enemyPolicy,
		maxTurns: cfg.Battle.MaxTurns,
		logger:   runLog,
	}
	result, err := sim.run()
	if err != nil {
		logger.Fatal("simulating battle", zap.Error(err))
	}

	runLog.Info("battle over",
		zap.Stringer("result", result.outcome),
		zap.Int("turns", result.turns),
		zap.Bool("rebirth", result.reborn),
		zap.Duration("elapsed", time.Since(start)),
	)
}
