// Package status defines the closed set of battle statuses and the per-unit
// set that tracks which of them are active.
package status

import (
	"fmt"
	"sort"
	"strings"
)

// Status identifies one battle status ailment.
type Status int

const (
	Poison Status = iota
	Venom
	Silence
	Darkness
	Mini
	Stop
	Petrify
	GradualPetrify
	Trouble
)

var names = map[Status]string{
	Poison:         "poison",
	Venom:          "venom",
	Silence:        "silence",
	Darkness:       "darkness",
	Mini:           "mini",
	Stop:           "stop",
	Petrify:        "petrify",
	GradualPetrify: "gradual_petrify",
	Trouble:        "trouble",
}

// String returns the snake_case identifier of the status.
func (s Status) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return "unknown"
}

// Parse resolves a status from its identifier, case-insensitively.
//
// Postcondition: returns an error iff name is not a known status.
func Parse(name string) (Status, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for s, n := range names {
		if n == want {
			return s, nil
		}
	}
	return 0, fmt.Errorf("status: unknown status %q", name)
}

// UnmarshalText lets statuses appear by name in YAML content.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Set tracks the statuses currently applied to one unit.
// It is not safe for concurrent use; the caller must serialise access.
type Set struct {
	active map[Status]struct{}
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{active: make(map[Status]struct{})}
}

// Add applies s. Re-applying an active status is a no-op.
//
// Postcondition: Has(s) is true.
func (st *Set) Add(s Status) {
	st.active[s] = struct{}{}
}

// Remove clears s and reports whether it was active.
//
// Postcondition: Has(s) is false.
func (st *Set) Remove(s Status) bool {
	if _, ok := st.active[s]; !ok {
		return false
	}
	delete(st.active, s)
	return true
}

// Has reports whether s is active.
func (st *Set) Has(s Status) bool {
	_, ok := st.active[s]
	return ok
}

// HasAny reports whether at least one of ss is active.
func (st *Set) HasAny(ss ...Status) bool {
	for _, s := range ss {
		if st.Has(s) {
			return true
		}
	}
	return false
}

// Len returns the number of active statuses.
func (st *Set) Len() int { return len(st.active) }

// All returns the active statuses in declaration order.
// The returned slice is a new allocation.
func (st *Set) All() []Status {
	out := make([]Status, 0, len(st.active))
	for s := range st.active {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
