// Package testutil provides shared helpers for deterministic battle tests.
package testutil

import (
	"fmt"
	"sync"
)

// ScriptedSource is a dice.Source that replays queued values, one queue per
// draw kind, so tests can force hit rolls, damage rolls and steal draws.
// A draw from an empty queue panics, which flags an unexpected extra roll.
type ScriptedSource struct {
	mu     sync.Mutex
	ints   []int
	ranges []int
	bytes  []uint8
	shorts []uint16
	Calls  []string
}

// NewScriptedSource returns an empty ScriptedSource.
func NewScriptedSource() *ScriptedSource {
	return &ScriptedSource{}
}

// QueueIntn queues results for Intn.
func (s *ScriptedSource) QueueIntn(vs ...int) *ScriptedSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = append(s.ints, vs...)
	return s
}

// QueueRange queues results for IntRange.
func (s *ScriptedSource) QueueRange(vs ...int) *ScriptedSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranges = append(s.ranges, vs...)
	return s
}

// QueueUint8 queues results for Uint8.
func (s *ScriptedSource) QueueUint8(vs ...uint8) *ScriptedSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bytes = append(s.bytes, vs...)
	return s
}

// QueueUint16 queues results for Uint16.
func (s *ScriptedSource) QueueUint16(vs ...uint16) *ScriptedSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shorts = append(s.shorts, vs...)
	return s
}

// Pending returns the number of queued values not yet drawn.
func (s *ScriptedSource) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ints) + len(s.ranges) + len(s.bytes) + len(s.shorts)
}

// Intn records the call and returns the next queued Intn value.
//
// Precondition: a value must be queued with QueueIntn.
func (s *ScriptedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, fmt.Sprintf("intn(%d)", n))
	return pop(&s.ints, "Intn")
}

// IntRange records the call and returns the next queued IntRange value,
// without checking it against the requested bounds.
func (s *ScriptedSource) IntRange(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, fmt.Sprintf("range(%d,%d)", min, max))
	return pop(&s.ranges, "IntRange")
}

// Uint8 records the call and returns the next queued byte.
func (s *ScriptedSource) Uint8() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "uint8")
	return pop(&s.bytes, "Uint8")
}

// Uint16 records the call and returns the next queued Uint16 value.
func (s *ScriptedSource) Uint16() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "uint16")
	return pop(&s.shorts, "Uint16")
}

func pop[T any](q *[]T, kind string) T {
	if len(*q) == 0 {
		panic("testutil: ScriptedSource: no queued value for " + kind)
	}
	v := (*q)[0]
	*q = (*q)[1:]
	return v
}
