package ai

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/turnbattle/internal/game/dice"
)

// Policy names accepted by Registry.For.
const (
	PolicyAttack = "attack"
	PolicyAuto   = "auto"
)

// Registry indexes Policies by name.
//
// Invariant: each name is registered at most once.
type Registry struct {
	policies map[string]Policy
}

// NewRegistry returns a Registry holding the built-in policies, all drawing from src.
//
// Precondition: src must be non-nil.
func NewRegistry(src dice.Source) *Registry {
	r := &Registry{policies: make(map[string]Policy)}
	// Built-in names never collide.
	_ = r.Register(PolicyAttack, NewAttackPolicy(src))
	_ = r.Register(PolicyAuto, NewAutoPolicy(src))
	return r
}

// Register stores p under name.
//
// Postcondition: returns error on name collision.
func (r *Registry) Register(name string, p Policy) error {
	if _, exists := r.policies[name]; exists {
		return fmt.Errorf("ai.Registry: policy %q already registered", name)
	}
	r.policies[name] = p
	return nil
}

// For returns the Policy registered under name.
func (r *Registry) For(name string) (Policy, error) {
	p, ok := r.policies[name]
	if !ok {
		return nil, fmt.Errorf("ai.Registry: unknown policy %q (have %v)", name, r.Names())
	}
	return p, nil
}

// Names returns the registered policy names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.policies))
	for n := range r.policies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
