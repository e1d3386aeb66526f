// SPDX-License-Identifier: EPL-2.0

package aec

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// psdSmoothing is the one-pole coefficient for the far-end power
	// spectral density estimate. The PSD is seeded at 1.0 and, being a
	// convex combination of a positive value and a squared magnitude,
	// stays strictly positive for the lifetime of the canceller.
	psdSmoothing = 0.98

	// psdEpsilon keeps the NLMS normalization away from near-zero
	// power. It is small enough not to perturb well-conditioned bins.
	psdEpsilon = 1e-10

	// erleSmoothing is the weight of the newest frame in the smoothed
	// ERLE estimate.
	erleSmoothing = 0.1
)

// Canceller removes acoustic echo from a microphone signal given the
// far-end (loudspeaker) reference, using a frequency-domain adaptive
// filter with NLMS weight adaptation and overlap-save block filtering.
//
// A Canceller is owned by a single audio stream. Every Process call
// mutates all adaptation state, so calls must be strictly sequential
// and correspond to consecutive, non-overlapping frames of the stream.
// It is not safe for concurrent use.
type Canceller struct {
	fftSize   int
	frameSize int
	stepSize  float64

	// Transform plan, built once at construction and reused for every
	// frame. The inverse transform is unnormalized; outputs are scaled
	// by 1/fftSize where time-domain samples are extracted.
	fft *fourier.CmplxFFT

	// Adaptation state, mutated in place on every frame.
	weights []complex128 // frequency-domain filter taps
	farBuf  []float64    // last fftSize far-end samples, oldest first
	psd     []float64    // smoothed per-bin far-end power, strictly positive

	// Scratch buffers reused across calls.
	timeBuf  []complex128
	farSpec  []complex128
	workSpec []complex128
	echoTime []complex128

	erle float64 // smoothed echo return loss enhancement, dB
}

// New creates a Canceller for blocks of fftSize samples. fftSize must
// be a positive power of two; each Process call then consumes frames
// of fftSize/2 samples. stepSize is the NLMS learning rate: larger
// values converge faster but are less stable. Typical values lie in
// (0.1, 1.0]; values well above 1.0 risk divergence and are not
// rejected.
func New(fftSize int, stepSize float64) (*Canceller, error) {
	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFFTSize, fftSize)
	}

	if stepSize <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidStepSize, stepSize)
	}

	c := &Canceller{
		fftSize:   fftSize,
		frameSize: fftSize / 2,
		stepSize:  stepSize,
		fft:       fourier.NewCmplxFFT(fftSize),
		weights:   make([]complex128, fftSize),
		farBuf:    make([]float64, fftSize),
		psd:       make([]float64, fftSize),
		timeBuf:   make([]complex128, fftSize),
		farSpec:   make([]complex128, fftSize),
		workSpec:  make([]complex128, fftSize),
		echoTime:  make([]complex128, fftSize),
	}

	for i := range c.psd {
		c.psd[i] = 1.0
	}

	return c, nil
}

// FFTSize returns the transform block length.
func (c *Canceller) FFTSize() int { return c.fftSize }

// FrameSize returns the number of samples consumed and produced per
// Process call. It is always FFTSize()/2.
func (c *Canceller) FrameSize() int { return c.frameSize }

// StepSize returns the NLMS learning rate.
func (c *Canceller) StepSize() float64 { return c.stepSize }

// ERLE returns a smoothed echo return loss enhancement estimate in dB:
// the energy ratio between the mic signal and the cancelled output.
// It grows as the filter converges on a stable echo path.
func (c *Canceller) ERLE() float64 { return c.erle }

// Process removes the estimated echo of farEnd from mic and returns
// the residual as a new slice of FrameSize samples. Both frames must
// be exactly FrameSize samples and correspond to the same time window
// of the underlying stream.
func (c *Canceller) Process(farEnd, mic []float32) ([]float32, error) {
	out := make([]float32, c.frameSize)
	if err := c.ProcessTo(out, farEnd, mic); err != nil {
		return nil, err
	}

	return out, nil
}

// ProcessTo is the allocation-free variant of Process: the cancelled
// frame is written to dst, which must be FrameSize samples long.
//
// Validation happens before any state is touched, so a failed call
// leaves the adaptation state exactly as it was and the caller may
// retry with correctly sized frames.
func (c *Canceller) ProcessTo(dst, farEnd, mic []float32) error {
	if len(farEnd) != c.frameSize || len(mic) != c.frameSize {
		return fmt.Errorf("%w: far-end %d and mic %d, want %d",
			ErrFrameSizeMismatch, len(farEnd), len(mic), c.frameSize)
	}

	if len(dst) != c.frameSize {
		return fmt.Errorf("%w: dst %d, want %d", ErrFrameSizeMismatch, len(dst), c.frameSize)
	}

	// Slide the reference window: drop the oldest frame, append the
	// new one. farBuf always holds the most recent fftSize far-end
	// samples in chronological order.
	copy(c.farBuf, c.farBuf[c.frameSize:])
	for i, s := range farEnd {
		c.farBuf[c.frameSize+i] = float64(s)
	}

	// Far-end spectrum.
	for i, s := range c.farBuf {
		c.timeBuf[i] = complex(s, 0)
	}
	c.fft.Coefficients(c.farSpec, c.timeBuf)

	// One-pole PSD update per bin.
	for i, x := range c.farSpec {
		power := real(x)*real(x) + imag(x)*imag(x)
		c.psd[i] = psdSmoothing*c.psd[i] + (1-psdSmoothing)*power
	}

	// Echo estimate: filter in the frequency domain, then back to time.
	for i := range c.workSpec {
		c.workSpec[i] = c.weights[i] * c.farSpec[i]
	}
	c.fft.Sequence(c.echoTime, c.workSpec)

	// The inverse transform is unnormalized, so every extracted sample
	// is scaled by 1/fftSize. Only the second half of the block is
	// valid linear convolution output (overlap-save); the first half is
	// corrupted by circular wrap-around and discarded.
	scale := 1 / float64(c.fftSize)

	var micPow, errPow float64

	for k := 0; k < c.frameSize; k++ {
		echo := real(c.echoTime[c.frameSize+k]) * scale
		e := float64(mic[k]) - echo
		dst[k] = float32(e)

		micPow += float64(mic[k]) * float64(mic[k])
		errPow += e * e

		// Error block for the weight update: zero first half, error
		// samples in the second half. The zero padding keeps the
		// frequency-domain gradient a linear, not circular,
		// cross-correlation.
		c.timeBuf[k] = 0
		c.timeBuf[c.frameSize+k] = complex(e, 0)
	}

	c.fft.Coefficients(c.workSpec, c.timeBuf)

	// NLMS update: per-bin gradient normalized by the smoothed far-end
	// power. The updated weights are used by the next frame.
	for i := range c.weights {
		grad := cmplx.Conj(c.farSpec[i]) * c.workSpec[i] / complex(c.psd[i]+psdEpsilon, 0)
		c.weights[i] += complex(c.stepSize, 0) * grad
	}

	if micPow > 0 && errPow > 0 {
		inst := 10 * math.Log10(micPow/errPow)
		c.erle = (1-erleSmoothing)*c.erle + erleSmoothing*inst
	}

	return nil
}

// Reset returns the canceller to its freshly constructed state,
// discarding the adapted filter, the reference window and the PSD
// estimate. Use it when the stream restarts or the echo path changed
// completely; resetting mid-stream throws away convergence.
func (c *Canceller) Reset() {
	clear(c.weights)
	clear(c.farBuf)

	for i := range c.psd {
		c.psd[i] = 1.0
	}

	c.erle = 0
}
