//go:build oto

package gendy

import (
	"encoding/binary"
	"math"

	"github.com/ebitengine/oto/v3"
)

const playSampleRate = 48000

var (
	otoContext *oto.Context
	otoPlayer  *oto.Player
)

// otoSource adapts a Voice to the pull model oto expects: the player reads
// float32 little-endian frames on its own schedule.
type otoSource struct {
	v Voice
	c PlayControl
}

func (s *otoSource) Read(p []byte) (int, error) {
	n := len(p) &^ 3
	for i := 0; i < n; i += 4 {
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(float32(s.v.Sing())))
	}
	if s.v.Done() {
		s.c.Stop()
	}
	return n, nil
}

func startPlaying(v Voice, c PlayControl) error {
	if otoContext == nil {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   playSampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
		})
		if err != nil {
			return err
		}
		<-ready
		otoContext = ctx
	}
	Init(v, Params{SampleRate: playSampleRate})
	otoPlayer = otoContext.NewPlayer(&otoSource{v, c})
	otoPlayer.Play()
	return nil
}

func stopPlaying() error {
	return otoPlayer.Close()
}
