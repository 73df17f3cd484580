package gendy

// A Rand31 is a 31-bit Lehmer linear-congruential generator: state is
// multiplied by 742938285 modulo the Mersenne prime 2^31-1, full period over
// the nonzero states (the constants Csound uses for opcode-local generators).
type Rand31 struct {
	state int32
}

const (
	rand31Mult = 742938285
	rand31Mod  = 0x7FFFFFFF

	// 2^-31; one draw scaled by this lands in [0, 1)
	dv2_31 = 4.656612873077392578125e-10
)

// NewRand31 folds seed into a nonzero state so the generator never sticks.
func NewRand31(seed int64) Rand31 {
	s := seed % rand31Mod
	if s <= 0 {
		s += rand31Mod - 1
	}
	if s == 0 {
		s = 1
	}
	return Rand31{state: int32(s)}
}

// Next advances the register and returns a draw in [1, 2^31-2].
func (r *Rand31) Next() int32 {
	r.state = int32(uint64(r.state) * rand31Mult % rand31Mod)
	return r.state
}

// unipolar maps a raw draw to [0, 1).
func unipolar(draw int32) float64 {
	return float64(draw) * dv2_31
}

// bipolar maps a raw draw to (-1, 1).
func bipolar(draw int32) float64 {
	return float64(2*int64(draw)-rand31Mod) * dv2_31
}
