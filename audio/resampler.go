// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/deeptrue-org/fdaf-aec/utils"
)

// Resampler converts a mono Source to a target sample rate using
// Catmull-Rom cubic interpolation. Its main job in this module is
// bringing a far-end media source (music, TTS playback) to the mic
// capture rate before echo cancellation.
type Resampler struct {
	src     Source
	dstRate int
	ratio   float64 // source samples per output sample

	// Interpolation window: hist[1]..hist[2] bracket the current
	// fractional position pos in [0, 1).
	hist    [4]float32
	pos     float64
	started bool

	// Read-ahead buffer over the source.
	buf    []float32
	bufPos int
	bufLen int
	eof    bool
	drain  int // edge samples synthesized after source end
}

// NewResampler wraps src, which must be mono. Use MonoMixer upstream
// for multi-channel sources.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: got %d channels", ErrMonoRequired, src.Channels())
	}

	return &Resampler{
		src:     src,
		dstRate: dstRate,
		ratio:   float64(src.SampleRate()) / float64(dstRate),
		buf:     make([]float32, 4096),
	}, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return 1 }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// next returns the next source sample, refilling the read-ahead buffer
// as needed. After the source ends it duplicates the edge sample twice
// so the interpolation window can flush, then reports io.EOF.
func (r *Resampler) next() (float32, error) {
	for r.bufPos >= r.bufLen {
		if r.eof {
			if r.started && r.drain < 2 {
				r.drain++
				return r.hist[3], nil
			}

			return 0, io.EOF
		}

		n, err := r.src.ReadSamples(r.buf)
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return 0, fmt.Errorf("%w", err)
		}

		r.bufPos = 0
		r.bufLen = n
	}

	s := r.buf[r.bufPos]
	r.bufPos++

	return s, nil
}

// prime fills the interpolation window with the first source samples,
// duplicating the first sample to the left edge.
func (r *Resampler) prime() error {
	s, err := r.next()
	if err != nil {
		return err
	}

	r.hist[0] = s
	r.hist[1] = s
	r.hist[2] = s
	r.hist[3] = s

	for i := 2; i < 4; i++ {
		s, err = r.next()
		if err == io.EOF {
			break
		}

		if err != nil {
			return err
		}

		r.hist[i] = s
	}

	r.started = true

	return nil
}

// ReadSamples produces samples at the target rate. It returns io.EOF
// once the source is exhausted and the window has flushed.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if !r.started {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0

	for written < len(dst) {
		// Advance the window until pos falls between hist[1] and hist[2].
		for r.pos >= 1.0 {
			s, err := r.next()
			if err == io.EOF {
				if written == 0 {
					return 0, io.EOF
				}

				return written, io.EOF
			}

			if err != nil {
				return written, err
			}

			r.hist[0] = r.hist[1]
			r.hist[1] = r.hist[2]
			r.hist[2] = r.hist[3]
			r.hist[3] = s
			r.pos -= 1.0
		}

		dst[written] = utils.CubicInterpolate(r.hist[0], r.hist[1], r.hist[2], r.hist[3], float32(r.pos))
		written++
		r.pos += r.ratio
	}

	return written, nil
}
