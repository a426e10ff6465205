// Package config provides Viper-based configuration loading for the battle simulator.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Outputs lists zap sink URLs or file paths; empty means stderr.
	Outputs []string `mapstructure:"outputs"`
}

// BattleConfig holds the simulation settings.
type BattleConfig struct {
	// Seed selects a reproducible random source; 0 draws from crypto/rand.
	Seed uint64 `mapstructure:"seed"`
	// MaxTurns caps a simulated battle; the run stops undecided after it.
	MaxTurns int `mapstructure:"max_turns"`
	// PlayerPolicy names the policy that drives the player party: "auto" or "attack".
	PlayerPolicy string `mapstructure:"player_policy"`
}

// ContentConfig locates the YAML content.
type ContentConfig struct {
	// ItemsDir holds one gear definition per file.
	ItemsDir string `mapstructure:"items_dir"`
	// Encounter is the encounter file to simulate.
	Encounter string `mapstructure:"encounter"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Battle  BattleConfig  `mapstructure:"battle"`
	Content ContentConfig `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateBattle(c.Battle); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	for i, out := range l.Outputs {
		if strings.TrimSpace(out) == "" {
			return fmt.Errorf("logging.outputs[%d] must not be empty", i)
		}
	}
	return nil
}

func validateBattle(b BattleConfig) error {
	var errs []string
	if b.MaxTurns < 1 {
		errs = append(errs, fmt.Sprintf("battle.max_turns must be >= 1, got %d", b.MaxTurns))
	}
	validPolicies := map[string]bool{"auto": true, "attack": true}
	if !validPolicies[b.PlayerPolicy] {
		errs = append(errs, fmt.Sprintf("battle.player_policy must be one of [auto, attack], got %q", b.PlayerPolicy))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.ItemsDir == "" {
		errs = append(errs, "content.items_dir must not be empty")
	}
	if c.Encounter == "" {
		errs = append(errs, "content.encounter must not be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with BATTLE_ prefix, e.g. BATTLE_BATTLE_SEED.
	v.SetEnvPrefix("BATTLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the default settings.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("battle.seed", 0)
	v.SetDefault("battle.max_turns", 200)
	v.SetDefault("battle.player_policy", "auto")

	v.SetDefault("content.items_dir", "content/items")
	v.SetDefault("content.encounter", "content/encounters/prima_vista.yaml")
}
