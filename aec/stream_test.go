package aec

import (
	"errors"
	"io"
	"testing"

	"github.com/deeptrue-org/fdaf-aec/audio"
	"github.com/deeptrue-org/fdaf-aec/internal/audiotest"
)

func newTestCanceller(t *testing.T, fftSize int) *Canceller {
	t.Helper()

	c, err := New(fftSize, 0.5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return c
}

func readAll(t *testing.T, s *Stream) []float32 {
	t.Helper()

	var samples []float32
	buf := make([]float32, 1000)

	for {
		n, err := s.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			return samples
		}

		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestStream_Metadata(t *testing.T) {
	t.Parallel()

	c := newTestCanceller(t, 512)

	mic := audiotest.NewSilentSource(16000, 1, 1000)
	far := audiotest.NewSilentSource(16000, 1, 1000)

	s, err := NewStream(c, mic, far)
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	if s.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", s.SampleRate())
	}

	if s.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", s.Channels())
	}

	if s.BufSize() != c.FrameSize() {
		t.Errorf("BufSize() = %d, want %d", s.BufSize(), c.FrameSize())
	}
}

func TestStream_RequiresMono(t *testing.T) {
	t.Parallel()

	c := newTestCanceller(t, 512)

	stereoMic := audiotest.NewSilentSource(16000, 2, 1000)
	far := audiotest.NewSilentSource(16000, 1, 1000)

	if _, err := NewStream(c, stereoMic, far); !errors.Is(err, audio.ErrMonoRequired) {
		t.Errorf("NewStream() error = %v, want %v", err, audio.ErrMonoRequired)
	}
}

func TestStream_RequiresMatchingRates(t *testing.T) {
	t.Parallel()

	c := newTestCanceller(t, 512)

	mic := audiotest.NewSilentSource(16000, 1, 1000)
	far := audiotest.NewSilentSource(44100, 1, 1000)

	if _, err := NewStream(c, mic, far); !errors.Is(err, ErrSampleRateMismatch) {
		t.Errorf("NewStream() error = %v, want %v", err, ErrSampleRateMismatch)
	}
}

func TestStream_SilentFarEndPassesThrough(t *testing.T) {
	t.Parallel()

	c := newTestCanceller(t, 256)

	micSamples := audiotest.Noise(20, 300)
	mic := audiotest.NewSliceSource(16000, micSamples)
	far := audiotest.NewSilentSource(16000, 1, 300)

	s, err := NewStream(c, mic, far)
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	got := readAll(t, s)

	// A silent reference keeps the weights at zero, so the mic signal
	// must come back bit-exact, trimmed to its own length.
	if len(got) != len(micSamples) {
		t.Fatalf("read %d samples, want %d", len(got), len(micSamples))
	}

	for i := range got {
		if got[i] != micSamples[i] {
			t.Fatalf("sample %d = %v, want %v", i, got[i], micSamples[i])
		}
	}
}

func TestStream_FarEndShorterThanMic(t *testing.T) {
	t.Parallel()

	c := newTestCanceller(t, 256)

	mic := audiotest.NewSliceSource(16000, audiotest.Noise(21, 1000))
	far := audiotest.NewSliceSource(16000, audiotest.Noise(22, 200))

	s, err := NewStream(c, mic, far)
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	got := readAll(t, s)

	if len(got) != 1000 {
		t.Fatalf("read %d samples, want 1000 (mic length)", len(got))
	}
}

func TestStream_CancelsStationaryEcho(t *testing.T) {
	t.Parallel()

	const total = 128 * 300

	c := newTestCanceller(t, 256)

	h := make([]float32, 48)
	h[0] = 0.4
	h[12] = -0.25
	h[40] = 0.15

	farSamples := audiotest.Noise(23, total)
	micSamples := audiotest.EchoPath(farSamples, h)

	s, err := NewStream(c,
		audiotest.NewSliceSource(16000, micSamples),
		audiotest.NewSliceSource(16000, farSamples))
	if err != nil {
		t.Fatalf("NewStream() error = %v", err)
	}

	got := readAll(t, s)

	if len(got) != total {
		t.Fatalf("read %d samples, want %d", len(got), total)
	}

	var earlyOut, lateOut, lateMic float64
	for i := 0; i < total/4; i++ {
		earlyOut += float64(got[i]) * float64(got[i])

		j := total - total/4 + i
		lateOut += float64(got[j]) * float64(got[j])
		lateMic += float64(micSamples[j]) * float64(micSamples[j])
	}

	if lateOut >= 0.1*lateMic {
		t.Errorf("late residual energy = %v, want < 10%% of mic energy %v", lateOut, lateMic)
	}

	if lateOut >= earlyOut {
		t.Errorf("residual energy did not decrease: early %v, late %v", earlyOut, lateOut)
	}
}
