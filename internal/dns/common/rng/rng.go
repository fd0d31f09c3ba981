// Package rng provides the random source behind root-server selection and
// query transaction ids. An unseeded source draws from a non-reproducible
// generator; a seeded source derives every draw from the seed alone, so the
// same seed always yields the same root server and the same query id. That
// reproducibility is what scripted end-to-end tests key their transcripts on.
package rng

import "math/rand/v2"

// Source produces the random values the resolver needs.
type Source struct {
	seed   uint64
	seeded bool
}

// New returns a non-reproducible Source.
func New() Source {
	return Source{}
}

// NewSeeded returns a deterministic Source. Each draw reseeds a fresh
// generator from the seed, so repeated draws of the same kind return the
// same value run after run.
func NewSeeded(seed uint64) Source {
	return Source{seed: seed, seeded: true}
}

// Seeded reports whether the source is deterministic.
func (s Source) Seeded() bool {
	return s.seeded
}

// QueryID returns a 16-bit transaction id.
func (s Source) QueryID() uint16 {
	if s.seeded {
		return uint16(rand.New(rand.NewPCG(s.seed, 0)).Uint32())
	}
	return uint16(rand.Uint32())
}

// IntN returns a uniform value in [0, n).
func (s Source) IntN(n int) int {
	if s.seeded {
		return rand.New(rand.NewPCG(s.seed, 0)).IntN(n)
	}
	return rand.IntN(n)
}
