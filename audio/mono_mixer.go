package audio

import "fmt"

// MonoMixer converts a multi-channel Source to mono by averaging the
// channels of every frame. Mono-only processors (the echo canceller,
// the resampler) sit downstream of it.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		// Pass-through: read mono directly
		return m.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, samplesNeeded)
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	invChannels := float32(1.0) / float32(channels)

	if channels == 2 {
		// Stereo fast path
		for f := 0; f < frames; f++ {
			dst[f] = (m.tmp[2*f] + m.tmp[2*f+1]) * 0.5
		}

		return frames, err
	}

	for f := 0; f < frames; f++ {
		sum := float32(0)
		base := f * channels

		for c := 0; c < channels; c++ {
			sum += m.tmp[base+c]
		}

		dst[f] = sum * invChannels
	}

	return frames, err
}
