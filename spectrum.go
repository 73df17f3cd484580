package gendy

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

// A Spectrum computes Hann-windowed magnitude spectra of fixed-size sample
// windows, reusing one transform across calls. Bin i covers frequency
// i·sampleRate/size; only the size/2 bins below the Nyquist frequency are
// returned.
type Spectrum struct {
	fft fft.FFT
	env []float64
	buf []complex128
}

// NewSpectrum returns an analyzer for windows of the given size, which must
// be a power of two no smaller than 4.
func NewSpectrum(size int) (*Spectrum, error) {
	if size < 4 || size&(size-1) != 0 {
		return nil, fmt.Errorf("gendy: spectrum size must be a power of two >= 4, got %d", size)
	}
	f, err := fft.New(size)
	if err != nil {
		return nil, err
	}
	env := make([]float64, size)
	for i := range env {
		env[i] = (1 - math.Cos(2*math.Pi*float64(i)/float64(size))) / 2
	}
	return &Spectrum{fft: f, env: env, buf: make([]complex128, size)}, nil
}

// Magnitudes returns the magnitude spectrum of x, which must have the
// analyzer's window size.
func (s *Spectrum) Magnitudes(x []float64) ([]float64, error) {
	if len(x) != len(s.buf) {
		return nil, fmt.Errorf("gendy: window of %d samples, analyzer sized for %d", len(x), len(s.buf))
	}
	for i, v := range x {
		s.buf[i] = complex(v*s.env[i], 0)
	}
	s.buf = s.fft.Transform(s.buf)
	mag := make([]float64, len(x)/2)
	for i := range mag {
		mag[i] = cmplx.Abs(s.buf[i])
	}
	return mag, nil
}
