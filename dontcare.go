// This file replaces the outputs of rarely observed truth-table rows with
// random values.

package main

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// DefaultSeed seeds a Randomizer created without WithSeed or WithSource.
const DefaultSeed = 1

// A Randomizer treats truth-table rows observed fewer than Threshold times
// as don't-care conditions and assigns them random outputs.  It owns its
// random-number generator.
type Randomizer struct {
	Threshold int // Minimum observation count for a row to keep its output
	rng       *rand.Rand
}

// An Option configures a Randomizer.
type Option func(*Randomizer)

// WithSeed seeds the Randomizer's generator for reproducible output.
func WithSeed(seed uint64) Option {
	return func(r *Randomizer) {
		r.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithSource draws random outputs from src.
func WithSource(src rand.Source) Option {
	return func(r *Randomizer) {
		r.rng = rand.New(src)
	}
}

// NewRandomizer returns a Randomizer with the given rarity threshold.
func NewRandomizer(threshold int, opts ...Option) (*Randomizer, error) {
	if threshold < 0 {
		return nil, errors.Errorf("rarity threshold %d is negative", threshold)
	}
	r := &Randomizer{Threshold: threshold}
	WithSeed(DefaultSeed)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// randomOutput returns a uniformly random width-bit pattern.
func (r *Randomizer) randomOutput(width int) (BitString, error) {
	var v uint64
	if width >= 64 {
		v = r.rng.Uint64()
	} else {
		v = r.rng.Uint64N(1 << uint(width))
	}
	return Encode(v, width)
}

// Filter returns a copy of tt in which every row observed fewer than
// r.Threshold times has a random output.  It also returns the number of
// rows so replaced.  Row order is preserved.
func (r *Randomizer) Filter(tt TruthTable, fm FrequencyMap) (TruthTable, int, error) {
	ftt := TruthTable{
		NInputs:  tt.NInputs,
		NOutputs: tt.NOutputs,
		Rows:     make([]Row, len(tt.Rows)),
	}
	nDC := 0
	for i, row := range tt.Rows {
		if fm.Count(row.Input) >= r.Threshold {
			ftt.Rows[i] = row
			continue
		}
		out, err := r.randomOutput(tt.NOutputs)
		if err != nil {
			return TruthTable{}, 0, err
		}
		ftt.Rows[i] = Row{Input: row.Input, Output: out}
		nDC++
	}
	return ftt, nDC, nil
}
