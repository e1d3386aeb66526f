// SPDX-License-Identifier: EPL-2.0

package aec

import "errors"

var (
	ErrInvalidFFTSize     = errors.New("fft size must be a positive power of two")
	ErrInvalidStepSize    = errors.New("step size must be positive")
	ErrFrameSizeMismatch  = errors.New("frame length must equal half the fft size")
	ErrSampleRateMismatch = errors.New("mic and far-end sample rates must match")
)
