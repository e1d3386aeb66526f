// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/deeptrue-org/fdaf-aec/audio"
)

// source wraps go-audio's wav.Decoder to implement audio.Source.
type source struct {
	dec        *gowav.Decoder
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}

	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	if n == 0 {
		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		dst[i] = float32(s.intBuf.Data[i]) * s.scale
	}

	return n, nil
}

type Decoder struct{}

// Decode parses a PCM WAV stream. The go-audio decoder needs seeking,
// so the input is buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}

	var scale float32

	switch dec.BitDepth {
	case 8:
		scale = 1.0 / 128.0
	case 16:
		scale = 1.0 / 32768.0
	case 24:
		scale = 1.0 / 8388608.0
	case 32:
		scale = 1.0 / 2147483648.0
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedDepth, dec.BitDepth)
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		scale:      scale,
	}, nil
}
