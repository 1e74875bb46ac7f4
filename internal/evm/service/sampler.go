package service

import "math/rand/v2"

// Sampler draws block heights uniformly at random.
type Sampler struct {
	rnd *rand.Rand
}

// NewSampler returns a Sampler whose sequence is fully determined by seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Sample returns n independent heights from [1, latest]. Repeats are possible.
func (s *Sampler) Sample(latest uint64, n int) []uint64 {
	if latest == 0 || n <= 0 {
		return nil
	}
	heights := make([]uint64, n)
	for i := range heights {
		heights[i] = 1 + s.rnd.Uint64N(latest)
	}
	return heights
}
