// Package dice provides the randomness capability consumed by the battle
// engine, the combat calculators and the item effects.
package dice

// Source is the randomness provider for every battle roll.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
	// IntRange returns a random int in [min, max).
	// When max <= min the result is min.
	IntRange(min, max int) int
	// Uint8 returns a uniformly distributed byte.
	Uint8() uint8
	// Uint16 returns a uniformly distributed unsigned 16-bit value.
	Uint16() uint16
}

// rangeOf maps a draw function over [0, n) onto [min, max).
// Postcondition: returns min when max <= min, otherwise a value in [min, max).
func rangeOf(intn func(int) int, min, max int) int {
	if max <= min {
		return min
	}
	return min + intn(max-min)
}
