package pcg32

import (
	"math/rand"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestSource(t *testing.T) {
	t.Run("Uint64", func(t *testing.T) {
		g, twin := New(42, 54), New(42, 54)
		s := g.Source()

		for i := 0; i < 1000; i++ {
			assert.Equal(t, s.Uint64(), twin.Uint64())
		}
	})

	t.Run("Int63", func(t *testing.T) {
		g := NewSeed(pcg.Uint64())
		s := g.Source()

		for i := 0; i < 100000; i++ {
			assert.That(t, s.Int63() >= 0)
		}
	})

	t.Run("SeedNoop", func(t *testing.T) {
		g, twin := New(42, 54), New(42, 54)
		s := g.Source()
		s.Seed(99)

		assert.Equal(t, s.Uint64(), twin.Uint64())
	})

	t.Run("Rand", func(t *testing.T) {
		r := rand.New(NewSeed(pcg.Uint64()).Source())

		for i := 0; i < 100000; i++ {
			v := r.Intn(10)
			assert.That(t, v >= 0)
			assert.That(t, v < 10)
		}
	})

	t.Run("Shared", func(t *testing.T) {
		// the source draws from the generator it wraps
		g, twin := New(42, 54), New(42, 54)
		g.Source().Uint64()
		twin.Uint64()
		assert.Equal(t, g.state, twin.state)
	})
}

func BenchmarkSource(b *testing.B) {
	b.Run("Uint64", func(b *testing.B) {
		s := NewSeed(42).Source()
		var sink uint64
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			sink = s.Uint64()
		}

		_ = sink
	})

	b.Run("Rand", func(b *testing.B) {
		r := rand.New(NewSeed(42).Source())
		var sink int
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			sink = r.Intn(1000)
		}

		_ = sink
	})
}
