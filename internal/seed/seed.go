// internal/seed/seed.go
//
// Deterministic seed derivation for the daily puzzles.
// The same (date, kind) pair must map to the same pseudo-random sequence on
// every machine, at every time, forever: board identity is global.
//
// Derivation: HMAC-SHA256 keyed by the game-kind tag (plus an optional
// deployment salt), message = the date string, first 8 bytes as a uint64.
// The sequence is math/rand's classic generator, whose output for a fixed
// NewSource seed is covered by the Go 1 compatibility promise.

package seed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"time"
)

// DateLayout is the calendar format every date key uses.
const DateLayout = "2006-01-02"

// DateKey returns t as YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Deriver maps (date, kind) to seeds and pseudo-random sequences.
// The salt is extra keying material fixed at deployment time; it must never
// change once boards derived from it have been persisted.
type Deriver struct {
	salt string
}

// New constructs a Deriver. An empty salt is valid.
func New(salt string) *Deriver {
	return &Deriver{salt: salt}
}

// Derive returns the seed for a date and kind. Different kinds use
// independent seed spaces, so the two puzzles for one date are uncorrelated.
func (d *Deriver) Derive(date, kind string) uint64 {
	h := hmac.New(sha256.New, []byte(kind+"|"+d.salt))
	h.Write([]byte(date))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

// Rand returns a restartable pseudo-random sequence for a seed and attempt
// offset. Offsets feed the bounded regenerate-until-solvable loop: each
// offset yields a decorrelated but fully reproducible sequence.
func Rand(seed, offset uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(mix(seed + offset))))
}

// mix is the splitmix64 finalizer; it spreads adjacent offsets across the
// whole seed space.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
