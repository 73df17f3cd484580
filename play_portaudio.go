//go:build !oto

package gendy

import (
	"github.com/gordonklaus/portaudio"
)

const (
	playSampleRate = 96000
	playBufferSize = 1024
)

var stream *portaudio.Stream

func startPlaying(v Voice, c PlayControl) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	Init(v, Params{SampleRate: playSampleRate})
	var err error
	stream, err = portaudio.OpenDefaultStream(0, 1, playSampleRate, playBufferSize, func(out []float32) {
		for i := range out {
			out[i] = float32(v.Sing())
		}
		if v.Done() {
			c.Stop()
		}
	})
	if err != nil {
		portaudio.Terminate()
		return err
	}
	return stream.Start()
}

func stopPlaying() error {
	err := stream.Close()
	portaudio.Terminate()
	return err
}
