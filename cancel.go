package fdafaec

import (
	"fmt"
	"io"

	"github.com/deeptrue-org/fdaf-aec/aec"
	"github.com/deeptrue-org/fdaf-aec/audio"
	"github.com/deeptrue-org/fdaf-aec/utils"
)

// CancelEcho is a high-level convenience function that removes the
// acoustic echo of farEnd from mic and collects the cleaned signal as
// 16-bit PCM data.
//
// This function creates a processing pipeline:
//  1. Mixes both sources down to mono
//  2. Resamples the far-end source to the mic rate when the rates differ
//  3. Streams both through an FDAF echo canceller, frame by frame
//  4. Converts the cancelled float32 samples to int16 PCM format
//
// Parameters:
//   - mic: The near-end (microphone) source containing speech plus echo
//   - farEnd: The reference source that was played on the loudspeaker;
//     it must be time aligned with mic, delay estimation is out of scope
//   - fftSize: FFT block size of the canceller (positive power of two);
//     frames are fftSize/2 samples
//   - stepSize: NLMS learning rate, typically in (0.1, 1.0]
//   - bufferSize: Size of the buffer for reading samples (e.g., 4096)
//
// Returns the cancelled PCM samples, the output sample rate (the mic
// rate) and any processing error.
//
// Note: This is a convenience function for common use cases. For more
// control over the pipeline, use aec.New and aec.NewStream directly.
func CancelEcho(mic, farEnd audio.Source, fftSize int, stepSize float64, bufferSize int) ([]int16, int, error) {
	rate := mic.SampleRate()

	micMono := audio.NewMonoMixer(mic)

	var farSrc audio.Source = audio.NewMonoMixer(farEnd)

	if farEnd.SampleRate() != rate {
		resampled, err := audio.NewResampler(farSrc, rate)
		if err != nil {
			return nil, rate, fmt.Errorf("%w", err)
		}

		farSrc = resampled
	}

	canceller, err := aec.New(fftSize, stepSize)
	if err != nil {
		return nil, rate, fmt.Errorf("%w", err)
	}

	stream, err := aec.NewStream(canceller, micMono, farSrc)
	if err != nil {
		return nil, rate, fmt.Errorf("%w", err)
	}

	// Collect all samples
	var pcm16 []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := stream.ReadSamples(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, rate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, rate, nil
}
