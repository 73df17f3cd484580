package main

import (
	"flag"
	"time"

	"github.com/timgates42/gendy"
)

var (
	points   = flag.Int("points", 12, "number of breakpoints")
	seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	ampDist  = flag.Int("ampdist", int(gendy.Cauchy), "amplitude distribution (0-6)")
	durDist  = flag.Int("durdist", int(gendy.Cauchy), "duration distribution (0-6)")
	minFreq  = flag.Float64("minfreq", 220, "minimum frequency")
	maxFreq  = flag.Float64("maxfreq", 880, "maximum frequency")
	ampScale = flag.Float64("ampscale", .5, "amplitude perturbation scale")
	durScale = flag.Float64("durscale", .5, "duration perturbation scale")
	up       = flag.Float64("up", 1, "rising interpolation exponent")
	down     = flag.Float64("down", 1, "falling interpolation exponent")
	secs     = flag.Float64("secs", 20, "seconds to play")
)

func main() {
	flag.Parse()

	g := gendy.NewGendyX(*points, *seed)
	g.AmpDist = gendy.Distribution(*ampDist)
	g.DurDist = gendy.Distribution(*durDist)
	g.MinFreq = *minFreq
	g.MaxFreq = *maxFreq
	g.AmpScale = *ampScale
	g.DurScale = *durScale
	g.CurveUp = *up
	g.CurveDown = *down

	gendy.Play(&voice{G: g, Limiter: gendy.NewLimiter(.5, .01, .1), secs: *secs})
}

type voice struct {
	G       *gendy.GendyX
	Limiter *gendy.Limiter
	secs    float64
	n       int
}

func (v *voice) InitAudio(p gendy.Params) {
	gendy.Init(v.G, p)
	gendy.Init(v.Limiter, p)
	v.n = int(p.SampleRate * v.secs)
}

func (v *voice) Sing() float64 {
	v.n--
	return v.Limiter.Limit(v.G.Sing())
}

func (v *voice) Done() bool {
	return v.n <= 0
}
