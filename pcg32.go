// Package pcg32 implements the 64-bit state, 32-bit output XSH-RR member
// of the PCG family of pseudo-random number generators.
//
// A generator advances a 64-bit linear congruential generator and permutes
// the pre-advance state (xorshift, then a data-dependent right rotate) into
// each output word. The increment selects one of 2^63 distinct output
// streams over the same underlying generator, so generators seeded alike on
// different streams produce independent sequences.
//
// The generator is deterministic and not cryptographically secure: its
// state is recoverable from its outputs. A single T is not safe for
// unsynchronized concurrent use; give each goroutine its own T on a
// distinct stream, or serialize access externally.
package pcg32

import (
	_ "unsafe"

	"github.com/zeebo/xxh3"
)

//go:linkname nanotime runtime.nanotime
func nanotime() (mono int64)

const (
	mul       = 6364136223846793005
	maxUint32 = 1<<32 - 1
)

// DefaultStream is the stream used by the constructors that do not take one.
const DefaultStream = 0xda3e39cb94b95bdb

// T is a pcg generator. The zero value is invalid: use a constructor.
type T struct {
	state uint64
	inc   uint64
}

// New constructs a generator with the given seed on the given stream. The
// low bit of the stream is forced on, so stream s and stream s|1 name the
// same stream.
func New(seed, stream uint64) *T {
	return &T{
		state: seed,
		inc:   stream | 1,
	}
}

// NewSeed constructs a generator with the given seed on DefaultStream.
func NewSeed(seed uint64) *T { return New(seed, DefaultStream) }

// NewTime constructs a generator on DefaultStream seeded from the runtime
// monotonic clock. The clock has finite resolution, so generators
// constructed in rapid succession may produce identical sequences. Callers
// needing independent unseeded generators must supply distinct streams to
// New or explicit seeds to NewSeed.
func NewTime() *T { return NewSeed(uint64(nanotime())) }

// NewKey constructs a generator on DefaultStream seeded from a hash of
// key. Equal keys produce equal sequences.
func NewKey(key string) *T { return NewSeed(xxh3.HashString(key)) }

// Uint32 returns the next output of the generator.
func (t *T) Uint32() uint32 {
	// update the state (LCG step)
	oldstate := t.state
	t.state = oldstate*mul + t.inc

	// apply the output permutation to the old state: xorshift down to 32
	// bits, then rotate right by the top 5 bits of the pre-advance state.
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := uint32(oldstate >> 59)
	return xorshifted>>rot | xorshifted<<((-rot)&31)
}

// Uint64 returns the next two outputs of the generator, the first in the
// low 32 bits.
func (t *T) Uint64() uint64 {
	lo := uint64(t.Uint32())
	return uint64(t.Uint32())<<32 | lo
}

// Uint32n returns a value uniform in [0, n). It returns 0 without
// consuming a draw when n == 0.
func (t *T) Uint32n(n uint32) uint32 {
	if n == 0 {
		return 0
	}

	// draws below the threshold are rejected so the accepted range is an
	// exact multiple of n, keeping the modulo free of bias. the loop almost
	// always exits on the first iteration.
	threshold := (maxUint32 - n) % n
	for {
		if r := t.Uint32(); r >= threshold {
			return r % n
		}
	}
}

// Advance moves the generator delta steps forward along its stream in
// O(log delta) time. Advance(1) is equivalent to discarding one Uint32.
func (t *T) Advance(delta uint64) {
	curMul, curPlus := uint64(mul), t.inc
	accMul, accPlus := uint64(1), uint64(0)

	for delta > 0 {
		if delta&1 != 0 {
			accMul *= curMul
			accPlus = accPlus*curMul + curPlus
		}
		curPlus = (curMul + 1) * curPlus
		curMul *= curMul
		delta >>= 1
	}

	t.state = accMul*t.state + accPlus
}

// Retreat moves the generator delta steps backward along its stream.
func (t *T) Retreat(delta uint64) { t.Advance(-delta) }
