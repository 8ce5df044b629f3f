// Package random provides the uniform and normal draws used by the Monte
// Carlo engine. Seeded generators are a pure function of the seed and the
// number of draws taken.
package random

import (
	"math"
	"math/rand"
	"time"
)

// Source produces uniform draws. Values are in [0, 1] for the seeded
// xorshift source and [0, 1) for the unseeded source.
type Source interface {
	Float64() float64
}

// Xorshift is a 32-bit xorshift generator. All state arithmetic wraps at
// 32 bits so that a given seed always yields the same sequence.
type Xorshift struct {
	state int32
}

// NewXorshift seeds a generator. Seeds outside the int32 range wrap.
func NewXorshift(seed int64) *Xorshift {
	return &Xorshift{state: int32(seed)}
}

// Float64 advances the state and returns |state| / (2^31 - 1).
func (x *Xorshift) Float64() float64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s

	v := int64(s)
	if v < 0 {
		v = -v
	}
	return float64(v) / math.MaxInt32
}

// Generator draws uniform and normal samples from a Source.
type Generator struct {
	src Source
}

// New wraps an arbitrary source.
func New(src Source) *Generator {
	return &Generator{src: src}
}

// Seeded returns a reproducible generator.
func Seeded(seed int64) *Generator {
	return New(NewXorshift(seed))
}

// Unseeded returns a generator backed by a time-seeded math/rand source.
// Its output is not reproducible.
func Unseeded() *Generator {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Uniform returns the next uniform draw.
func (g *Generator) Uniform() float64 {
	return g.src.Float64()
}

// Normal returns mean + z*stddev where z comes from the Box-Muller cosine
// branch over two fresh uniform draws. The sine branch is discarded.
func (g *Generator) Normal(mean, stddev float64) float64 {
	u1 := g.src.Float64()
	u2 := g.src.Float64()

	// log(0) and the |MinInt32| draw slightly above 1 would poison the result.
	if u1 <= 0 {
		u1 = math.SmallestNonzeroFloat64
	}
	if u1 > 1 {
		u1 = 1
	}

	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stddev
}
