package gendy

import "math"

// A ConstDelay delays its input by a fixed time.
type ConstDelay struct {
	delay float64
	buf   []float64
	i     int
}

func NewConstDelay(delay float64) *ConstDelay {
	return &ConstDelay{delay: delay}
}

func (d *ConstDelay) InitAudio(p Params) {
	d.buf = make([]float64, int(d.delay*p.SampleRate))
	d.i = 0
}

func (d *ConstDelay) Delay(x float64) float64 {
	y := d.buf[d.i]
	d.buf[d.i] = x
	d.i = (d.i + 1) % len(d.buf)
	return y
}

// An RMS tracks the root-mean-square amplitude of its input over a sliding
// window.
type RMS struct {
	windowSize float64
	buf        []float64
	i          int
	sum        float64
}

func NewRMS(windowSize float64) *RMS {
	return &RMS{windowSize: windowSize}
}

func (r *RMS) InitAudio(p Params) {
	r.buf = make([]float64, int(p.SampleRate*r.windowSize))
	r.i = 0
	r.sum = 0
}

func (r *RMS) Add(x float64) {
	r.sum -= r.buf[r.i]
	r.buf[r.i] = x * x
	r.sum += r.buf[r.i]
	r.i = (r.i + 1) % len(r.buf)
}

func (r *RMS) Amplitude() float64 {
	return math.Sqrt(r.sum / float64(len(r.buf)))
}

// A soft limiter.  The RMS amplitude of the output (averaged over the attack
// time) will approach the supplied limit; this means that much of the signal
// will actually exceed the limit.
type Limiter struct {
	limit         float64
	attack, decay float64
	down, up      float64
	amp           float64
	rms           *RMS
	delay         *ConstDelay
}

func NewLimiter(limit, attack, decay float64) *Limiter {
	return &Limiter{limit: limit, attack: attack, decay: decay, rms: NewRMS(attack), delay: NewConstDelay(attack)}
}

func (c *Limiter) InitAudio(p Params) {
	c.down = -1 / (c.attack * p.SampleRate)
	c.up = 1 / (c.decay * p.SampleRate)
	c.rms.InitAudio(p)
	c.delay.InitAudio(p)
}

func (c *Limiter) Limit(x float64) float64 {
	gain := math.Exp2(c.amp)
	c.rms.Add(x)
	if y := c.rms.Amplitude() / c.limit; math.Tanh(y)/y < gain {
		c.amp += c.down
	} else {
		c.amp += c.up
	}
	return gain * c.delay.Delay(x)
}
