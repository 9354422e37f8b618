// Package prng is a 32-bit Galois linear-feedback shift register.
package prng

// Taps for a maximal-length 32-bit Galois LFSR (bits 31, 21, 1, 0).
const Taps uint32 = 1<<31 | 1<<21 | 1<<1 | 1<<0

// DefaultSeed is the state a generator starts from before it is seeded.
const DefaultSeed uint32 = 0xDEADBEEF

type LFSR struct {
	state uint32
}

func New(seed uint32) *LFSR {
	r := &LFSR{state: DefaultSeed}
	r.Seed(seed)
	return r
}

// Seed replaces the state. A zero seed is ignored since the all-zero state never advances.
func (r *LFSR) Seed(seed uint32) {
	if seed == 0 {
		return
	}
	r.state = seed
}

// State returns the current state, suitable for persisting and passing back to Seed.
func (r *LFSR) State() uint32 {
	return r.state
}

// Next advances one step and returns the new state.
func (r *LFSR) Next() uint32 {
	lsb := r.state & 1
	r.state >>= 1
	if lsb != 0 {
		r.state ^= Taps
	}
	return r.state
}

// Below returns a value in [0, n), or 0 if n is 0.
func (r *LFSR) Below(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return r.Next() % n
}

// Range returns a value in [lo, hi), or lo if lo >= hi.
func (r *LFSR) Range(lo, hi uint32) uint32 {
	if lo >= hi {
		return lo
	}
	return lo + r.Below(hi-lo)
}

// Mix folds bits low-order bits from sample into seed, one sample per bit. sample is expected to read an
// otherwise-idle analog input whose least significant bit is noise.
func Mix(seed uint32, bits int, sample func() uint16) uint32 {
	var acc uint32
	for i := 0; i < bits; i++ {
		acc = acc<<1 | uint32(sample()&1)
	}
	return seed ^ acc
}
