package gendy

import "math"

// Distribution selects the probability distribution used to perturb
// breakpoint amplitudes and durations.
type Distribution int

const (
	Uniform     Distribution = iota // bipolar, shape parameter unused
	Cauchy                          // heavier tails as the shape parameter grows
	Logistic                        // symmetric, tunable steepness
	HyperbCos                       // log-compressed bipolar
	ArcSine                         // bunches values toward the extremes
	Exponential                     // one-sided, doubled and shifted to bipolar
	External                        // passes the shape parameter through unchanged
)

// Sample maps one raw Rand31 draw to a perturbation in [-1, 1]. The shape
// parameter a is clamped to [0.0001, 1]; as it shrinks the output degenerates
// toward 0, at 1 the distribution takes its widest form. A Distribution
// outside the known kinds behaves as Uniform.
func (d Distribution) Sample(a float64, draw int32) float64 {
	if a > 1 {
		a = 1
	} else if a < 0.0001 {
		a = 0.0001
	}
	switch d {
	case Cauchy:
		c := math.Atan(10 * a)
		return (1 / a) * math.Tan(c*bipolar(draw)) * 0.1
	case Logistic:
		c := 0.5 + 0.499*a
		c = math.Log((1 - c) / c)
		r := (unipolar(draw)-0.5)*0.998*a + 0.5
		return math.Log((1-r)/r) / c
	case HyperbCos:
		c := math.Tan(1.5692255 * a)
		r := math.Tan(1.5692255*a*unipolar(draw)) / c
		return math.Log(r*0.999+0.001)*-0.1447648*2 - 1
	case ArcSine:
		c := math.Sin(1.5707963 * a)
		return math.Sin(math.Pi*(unipolar(draw)-0.5)*a) / c
	case Exponential:
		c := math.Log(1 - 0.999*a)
		r := unipolar(draw) * 0.999 * a
		return math.Log(1-r)/c*2 - 1
	case External:
		return a
	}
	return bipolar(draw)
}
