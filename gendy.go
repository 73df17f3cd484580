package gendy

import "math"

const (
	// MaxPoints caps the breakpoint store size.
	MaxPoints = 8192

	defaultPoints = 12
)

// breakpoints is the cyclic store of (amplitude, duration) pairs the random
// walks write back into. Both slices keep their length for the life of the
// generator, and only ever hold mirrored values: amps in [-1, 1], durs in
// [0, 1].
type breakpoints struct {
	amps, durs []float64
}

func newBreakpoints(n int, r *Rand31) breakpoints {
	b := breakpoints{make([]float64, n), make([]float64, n)}
	for i := range b.amps {
		b.amps[i] = bipolar(r.Next())
		b.durs[i] = unipolar(r.Next())
	}
	return b
}

func (b breakpoints) at(i int) (amp, dur float64) {
	return b.amps[i], b.durs[i]
}

func (b breakpoints) set(i int, amp, dur float64) {
	b.amps[i], b.durs[i] = amp, dur
}

// clampNum resolves a requested cycle length against the store size; out of
// range means use the whole store.
func (b breakpoints) clampNum(num int) int {
	if num < 1 || num > len(b.amps) {
		return len(b.amps)
	}
	return num
}

// A Gendy produces a waveform by Xenakis's dynamic stochastic synthesis:
// a handful of breakpoints whose amplitudes and durations take random walks,
// linearly interpolated as the phase sweeps from one breakpoint to the next.
// After the gendy opcode in Csound and Nick Collins's Gendy1 in SuperCollider.
//
// The exported fields may be changed at any time between samples; they take
// effect at the next breakpoint. Field defaults follow Gendy1.
type Gendy struct {
	Params Params

	Amp      float64      // output scale
	AmpDist  Distribution // amplitude perturbation distribution
	DurDist  Distribution // duration perturbation distribution
	AmpParam float64      // shape parameter for AmpDist
	DurParam float64      // shape parameter for DurDist
	MinFreq  float64      // frequency reached when a duration mirrors to 0
	MaxFreq  float64      // frequency reached when a duration mirrors to 1
	AmpScale float64      // perturbation scale for amplitudes
	DurScale float64      // perturbation scale for durations
	Num      int          // breakpoints per cycle; out of range means all

	points       breakpoints
	rand         Rand31
	phase        float64
	amp, nextAmp float64
	dur, speed   float64
	index        int
}

// NewGendy creates a generator with the given number of breakpoints, clamped
// to [1, MaxPoints] with fewer than one meaning 12, and fills the store from
// the seed. The store never changes size afterwards.
func NewGendy(points int, seed int64) *Gendy {
	if points < 1 {
		points = defaultPoints
	} else if points > MaxPoints {
		points = MaxPoints
	}
	g := &Gendy{
		Amp:      1,
		AmpDist:  Cauchy,
		DurDist:  Cauchy,
		AmpParam: 1,
		DurParam: 1,
		MinFreq:  440,
		MaxFreq:  660,
		AmpScale: 0.5,
		DurScale: 0.5,
		rand:     NewRand31(seed),
	}
	g.points = newBreakpoints(points, &g.rand)
	g.phase = 1 // first sample lands on a breakpoint
	g.speed = 100
	return g
}

// advance steps to the next breakpoint: the previous target amplitude becomes
// the interpolation origin, the breakpoint under the new index is perturbed
// and mirrored back into the store, and the sweep speed is recomputed from
// the mirrored duration. Consumes exactly two draws, amplitude first.
func (g *Gendy) advance() {
	if g.Params.SampleRate == 0 {
		panic("gendy: Sing called before InitAudio")
	}
	num := g.points.clampNum(g.Num)
	g.index = (g.index + 1) % num
	g.amp = g.nextAmp

	a, d := g.points.at(g.index)
	a += g.AmpScale * g.AmpDist.Sample(g.AmpParam, g.rand.Next())
	a = mirrorAmp(a)
	d += g.DurScale * g.DurDist.Sample(g.DurParam, g.rand.Next())
	d = mirrorDur(d)
	g.points.set(g.index, a, d)
	g.nextAmp = a
	g.dur = d

	g.speed = (g.MinFreq + (g.MaxFreq-g.MinFreq)*d) / g.Params.SampleRate * float64(num)
}

// Sing produces one sample. The advance runs in a loop so that speeds above
// one breakpoint per sample skip breakpoints instead of stretching them.
func (g *Gendy) Sing() float64 {
	for g.phase >= 1 {
		g.phase--
		g.advance()
	}
	x := g.Amp * ((1-g.phase)*g.amp + g.phase*g.nextAmp)
	g.phase += g.speed
	return x
}

func (g *Gendy) Done() bool { return false }

// Process fills out with successive samples.
func (g *Gendy) Process(out []float64) {
	for i := range out {
		out[i] = g.Sing()
	}
}

// A GendyX is a Gendy whose interpolation follows a power curve instead of a
// straight line, with separate exponents for rising and falling segments.
// CurveUp and CurveDown of 1 reproduce Gendy exactly; values below 0 act as 0.
type GendyX struct {
	Gendy
	CurveUp, CurveDown float64
}

func NewGendyX(points int, seed int64) *GendyX {
	return &GendyX{Gendy: *NewGendy(points, seed), CurveUp: 1, CurveDown: 1}
}

func (g *GendyX) Sing() float64 {
	for g.phase >= 1 {
		g.phase--
		g.advance()
	}
	curve := g.CurveDown
	if g.nextAmp > g.amp {
		curve = g.CurveUp
	}
	if curve < 0 {
		curve = 0
	}
	x := g.Amp * (g.amp + math.Pow(g.phase, curve)*(g.nextAmp-g.amp))
	g.phase += g.speed
	return x
}

func (g *GendyX) Process(out []float64) {
	for i := range out {
		out[i] = g.Sing()
	}
}

// mirrorAmp folds x into [-1, 1] by reflecting at the boundaries: shifted
// into [0, 4), values in (1, 3) reflect to 2-x and values in [3, 4) wrap to
// x-4. In-range values pass through untouched.
func mirrorAmp(x float64) float64 {
	if x >= -1 && x <= 1 {
		return x
	}
	x = math.Mod(x, 4)
	if x < 0 {
		x += 4
	}
	if x > 1 {
		if x < 3 {
			x = 2 - x
		} else {
			x -= 4
		}
	}
	return x
}

// mirrorDur folds x into [0, 1] by reflection modulo 2.
func mirrorDur(x float64) float64 {
	if x > 1 {
		return 2 - math.Mod(x, 2)
	}
	if x < 0 {
		return 2 - math.Mod(x+2, 2)
	}
	return x
}
