package pcg32

import (
	"math/rand"
)

// source adapts a T to the standard library generator interfaces.
type source struct{ t *T }

var _ rand.Source64 = source{}

// Source returns a math/rand.Source64 drawing from t, suitable for passing
// to rand.New. The returned source shares t's state.
func (t *T) Source() rand.Source64 { return source{t} }

// Seed is a no-op: a generator is seeded at construction and cannot be
// reseeded mid-stream. Construct a new T instead.
func (source) Seed(int64) {}

// Int63 returns a non-negative int64 built from one Uint64 draw.
func (s source) Int63() int64 { return int64(s.t.Uint64() >> 1) }

// Uint64 returns the next two outputs of the wrapped generator.
func (s source) Uint64() uint64 { return s.t.Uint64() }
