package internal

// Multiplicative linear congruential generator (Lehmer), see
// https://en.wikipedia.org/wiki/Lehmer_random_number_generator
const (
	rngA = 48271
	rngC = 1
	rngM = 2147483647
)

// RNG is the deterministic byte source behind the RND opcode
type RNG struct {
	seed uint32
}

// NewRNG returns a generator starting from seed
func NewRNG(seed uint32) *RNG {
	return &RNG{seed: seed}
}

// Next advances the generator and returns its low byte.
// The multiply and add wrap at 32 bits before the modulo.
func (r *RNG) Next() uint8 {
	r.seed = (rngA*r.seed + rngC) % rngM
	return uint8(r.seed % 256)
}
