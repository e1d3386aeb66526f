// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the echo-cancelling
// pipeline is built from.
//
// This package contains:
//   - Source interface for audio input
//   - FrameReader for fixed-size frame chunking
//   - MonoMixer for channel mixing
//   - Resampler for sample rate conversion
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All decoders and processors implement this interface, allowing them
// to be chained together into pipelines ending in an aec.Stream.
//
// # Frame Chunking
//
// Block processors need exact frame sizes while sources return
// whatever they have. FrameReader bridges the two:
//
//	fr := audio.NewFrameReader(source, 256)
//	frame := make([]float32, 256)
//	n, err := fr.ReadFrame(frame) // full frame, or zero-padded tail
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// The echo canceller is mono; stereo mic captures and stereo far-end
// media go through a MonoMixer first.
//
// # Resampling
//
// The Resampler changes the sample rate of a mono source using cubic
// interpolation:
//
//	resampler, err := audio.NewResampler(monoSource, 16000)
//
// Use it to bring a far-end media file to the mic capture rate; the
// canceller requires both inputs at the same rate.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - ±1.0 represents maximum amplitude
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
