// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// FrameReader chunks a mono Source into fixed-size frames. Block
// processors such as the echo canceller consume exact frame sizes;
// Source implementations return whatever they have, so the reader
// accumulates short reads until a frame is full and zero-pads the
// final frame when the source ends mid-frame.
type FrameReader struct {
	src  Source
	size int
}

func NewFrameReader(src Source, size int) *FrameReader {
	return &FrameReader{
		src:  src,
		size: size,
	}
}

// FrameSize returns the configured frame length in samples.
func (f *FrameReader) FrameSize() int { return f.size }

// ReadFrame fills frame with the next samples from the source. frame
// must be exactly FrameSize samples long. The returned count is the
// number of real samples written; any remainder is zero-padded. Once
// the source is exhausted it returns 0, io.EOF. A short final frame is
// returned together with io.EOF.
func (f *FrameReader) ReadFrame(frame []float32) (int, error) {
	if len(frame) != f.size {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrInvalidFrameLen, len(frame), f.size)
	}

	total := 0

	for total < f.size {
		n, err := f.src.ReadSamples(frame[total:])
		total += n

		if err == io.EOF {
			for i := total; i < f.size; i++ {
				frame[i] = 0
			}

			if total == 0 {
				return 0, io.EOF
			}

			return total, io.EOF
		}

		if err != nil {
			return total, fmt.Errorf("%w", err)
		}
	}

	return total, nil
}
