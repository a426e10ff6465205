package dice

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are cryptographically secure and uniformly
// distributed in the requested range.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// IntRange returns a cryptographically secure random int in [min, max).
func (c *cryptoSource) IntRange(min, max int) int {
	return rangeOf(c.Intn, min, max)
}

// Uint8 returns a cryptographically secure random byte.
func (c *cryptoSource) Uint8() uint8 {
	var b [1]byte
	c.read(b[:])
	return b[0]
}

// Uint16 returns a cryptographically secure random unsigned 16-bit value.
func (c *cryptoSource) Uint16() uint16 {
	var b [2]byte
	c.read(b[:])
	return binary.LittleEndian.Uint16(b[:])
}

func (c *cryptoSource) read(b []byte) {
	if _, err := rand.Read(b); err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
}
