package system

import "math/rand"

// Sampler draws uniform floats in [min, max). It is the only source of
// randomness in the simulation.
type Sampler interface {
	Range(min, max float64) float64
}

// RandSampler is a Sampler backed by a seeded math/rand generator
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler creates a sampler with its own deterministic generator
func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform value in [min, max). Returns min when max <= min.
func (s *RandSampler) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}
