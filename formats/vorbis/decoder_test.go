package vorbis

import (
	"bytes"
	"io"
	"math"
	"testing"
)

// mockOggReader stands in for oggvorbis.Reader. It hands out whole
// frames the way the real reader does.
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	available := len(m.samples) - m.offset
	framesRequested := len(buf) / m.channels
	framesToRead := min(framesRequested, available/m.channels)

	copy(buf, m.samples[m.offset:m.offset+framesToRead*m.channels])
	m.offset += framesToRead * m.channels

	if m.offset >= len(m.samples) {
		return framesToRead, io.EOF
	}

	return framesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive value", src.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	pcm := []float32{0.0, 0.5, -0.5, 1.0, -1.0, 0.25, -0.25, 0.0}

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2, samples: pcm},
		sampleRate: 48000,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 8)

	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 8 {
		t.Errorf("ReadSamples() n = %d, want 8", n)
	}

	for i := 0; i < n; i++ {
		if math.Abs(float64(dst[i]-pcm[i])) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], pcm[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 2, samples: make([]float32, 100)},
		sampleRate: 48000,
		channels:   2,
		frameBuf:   make([]float32, 4096),
	}

	n, err := src.ReadSamples(nil)
	if err != nil {
		t.Errorf("ReadSamples() with empty buffer error = %v, want nil", err)
	}

	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{sampleRate: 48000, channels: 1, samples: []float32{0.1, 0.2, 0.3}},
		sampleRate: 48000,
		channels:   1,
		frameBuf:   make([]float32, 4096),
	}

	dst := make([]float32, 3)

	n, err := src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	if n != 3 {
		t.Errorf("ReadSamples() n = %d, want 3", n)
	}

	n, err = src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("second ReadSamples() error = %v, want io.EOF", err)
	}

	if n != 0 {
		t.Errorf("second ReadSamples() n = %d, want 0", n)
	}
}
