// SPDX-License-Identifier: EPL-2.0

package aec

import (
	"errors"
	"fmt"
	"io"

	"github.com/deeptrue-org/fdaf-aec/audio"
)

// Stream adapts a Canceller to the audio.Source interface. It pulls
// the microphone and far-end sources in lockstep, one frame at a time,
// and yields the echo-cancelled signal.
//
// Both sources must be mono and share the same sample rate; mix down
// and resample upstream (audio.MonoMixer, audio.NewResampler) before
// building the stream. The caller is still responsible for time
// alignment: frame k of the far-end source must be the loudspeaker
// signal whose echo appears in frame k of the mic source.
//
// When the far-end source ends before the mic source, the remaining
// reference frames are silence, so the tail of the mic signal passes
// through with whatever the converged filter subtracts from zero
// (nothing). The stream ends when the mic source ends; a final short
// mic frame is processed zero-padded and trimmed on output.
type Stream struct {
	c      *Canceller
	micSrc audio.Source
	farSrc audio.Source
	mic    *audio.FrameReader
	far    *audio.FrameReader

	micFrame []float32
	farFrame []float32
	out      []float32
	outLen   int
	outPos   int

	micDone bool
	farDone bool
}

// NewStream wires a Canceller between a mic source and a far-end
// reference source.
func NewStream(c *Canceller, mic, farEnd audio.Source) (*Stream, error) {
	if mic.Channels() != 1 || farEnd.Channels() != 1 {
		return nil, fmt.Errorf("%w: mic has %d channels, far-end has %d",
			audio.ErrMonoRequired, mic.Channels(), farEnd.Channels())
	}

	if mic.SampleRate() != farEnd.SampleRate() {
		return nil, fmt.Errorf("%w: mic %d Hz, far-end %d Hz",
			ErrSampleRateMismatch, mic.SampleRate(), farEnd.SampleRate())
	}

	frameSize := c.FrameSize()

	return &Stream{
		c:        c,
		micSrc:   mic,
		farSrc:   farEnd,
		mic:      audio.NewFrameReader(mic, frameSize),
		far:      audio.NewFrameReader(farEnd, frameSize),
		micFrame: make([]float32, frameSize),
		farFrame: make([]float32, frameSize),
		out:      make([]float32, frameSize),
	}, nil
}

func (s *Stream) SampleRate() int { return s.micSrc.SampleRate() }
func (s *Stream) Channels() int   { return 1 }
func (s *Stream) BufSize() int    { return s.c.FrameSize() }

func (s *Stream) Close() error {
	err := errors.Join(s.micSrc.Close(), s.farSrc.Close())
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with echo-cancelled samples. It returns the
// number of samples written; io.EOF once the mic source is exhausted.
func (s *Stream) ReadSamples(dst []float32) (int, error) {
	written := 0

	for written < len(dst) {
		if s.outPos >= s.outLen {
			if err := s.advance(); err != nil {
				if err == io.EOF && written > 0 {
					return written, io.EOF
				}
				return written, err
			}
		}

		n := copy(dst[written:], s.out[s.outPos:s.outLen])
		s.outPos += n
		written += n
	}

	return written, nil
}

// advance processes the next frame pair into s.out.
func (s *Stream) advance() error {
	if s.micDone {
		return io.EOF
	}

	micN, err := s.mic.ReadFrame(s.micFrame)
	if err == io.EOF {
		s.micDone = true
		if micN == 0 {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	if s.farDone {
		clear(s.farFrame)
	} else {
		_, ferr := s.far.ReadFrame(s.farFrame)
		if ferr == io.EOF {
			s.farDone = true
		} else if ferr != nil {
			return fmt.Errorf("%w", ferr)
		}
	}

	if perr := s.c.ProcessTo(s.out, s.farFrame, s.micFrame); perr != nil {
		return fmt.Errorf("%w", perr)
	}

	// A zero-padded final frame only yields micN real samples.
	s.outLen = micN
	s.outPos = 0

	return nil
}
