package pcg32

import (
	"encoding/binary"

	"github.com/zeebo/errs"
)

var (
	// InvalidArgument is the class of errors returned when a draw is
	// requested with an impossible bound.
	InvalidArgument = errs.Class("invalid argument")

	// NullBuffer is the class of errors returned when Fill is handed a nil
	// buffer.
	NullBuffer = errs.Class("null buffer")
)

// Int31 returns a non-negative value uniform over the full int32 range.
func (t *T) Int31() int32 {
	return int32(t.Uint32() >> 1)
}

// Intn returns a value uniform in [0, n). It errors if n is negative and
// returns 0 without consuming a draw when n == 0.
func (t *T) Intn(n int32) (int32, error) {
	if n < 0 {
		return 0, InvalidArgument.New("n: %d", n)
	}
	return int32(t.Uint32n(uint32(n))), nil
}

// Range returns a value uniform in [lo, hi). It errors if lo > hi and
// returns lo without consuming a draw when lo == hi.
func (t *T) Range(lo, hi int32) (int32, error) {
	if lo > hi {
		return 0, InvalidArgument.New("lo: %d hi: %d", lo, hi)
	}
	if lo == hi {
		return lo, nil
	}

	// the unsigned span is correct even when the subtraction wraps, and
	// adding lo back wraps the draw into [lo, hi).
	return int32(t.Uint32n(uint32(hi-lo))) + lo, nil
}

// Fill fills p with generator output, four bytes per draw, least
// significant byte first. A trailing group of 1-3 bytes consumes one more
// draw and discards its high bytes. It errors if p is nil.
func (t *T) Fill(p []byte) error {
	if p == nil {
		return NullBuffer.New("nil buffer")
	}

	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, t.Uint32())
		p = p[4:]
	}

	if len(p) > 0 {
		r := t.Uint32()
		for i := range p {
			p[i] = byte(r >> (8 * uint(i)))
		}
	}

	return nil
}

// Float64 returns a value uniform in [0, 1). Draws equal to the maximum
// 32 bit value are rejected and redrawn, so the result is strictly below 1.
func (t *T) Float64() float64 {
	for {
		if r := t.Uint32(); r != maxUint32 {
			return float64(r) * (1 / float64(maxUint32))
		}
	}
}
