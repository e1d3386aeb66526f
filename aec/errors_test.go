package aec

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrInvalidFFTSize", ErrInvalidFFTSize, "fft size must be a positive power of two"},
		{"ErrInvalidStepSize", ErrInvalidStepSize, "step size must be positive"},
		{"ErrFrameSizeMismatch", ErrFrameSizeMismatch, "frame length must equal half the fft size"},
		{"ErrSampleRateMismatch", ErrSampleRateMismatch, "mic and far-end sample rates must match"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatalf("%s is nil", tt.name)
			}

			if tt.err.Error() != tt.msg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.msg)
			}

			if !errors.Is(tt.err, tt.err) {
				t.Errorf("errors.Is() failed for %s", tt.name)
			}
		})
	}
}

func TestSentinelErrors_Wrapping(t *testing.T) {
	t.Parallel()

	_, err := New(511, 0.5)
	if !errors.Is(err, ErrInvalidFFTSize) {
		t.Errorf("New(511, 0.5) error = %v, want wrapped ErrInvalidFFTSize", err)
	}

	if errors.Is(err, ErrFrameSizeMismatch) {
		t.Error("errors.Is() matched an unrelated sentinel")
	}
}
