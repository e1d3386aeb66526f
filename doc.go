// SPDX-License-Identifier: EPL-2.0

// Package fdafaec provides acoustic echo cancellation for Go voice
// pipelines.
//
// The core is a frequency-domain adaptive filter (FDAF) with
// overlap-save block filtering and NLMS adaptation, implemented in the
// aec subpackage. Around it, the module offers the streaming plumbing
// needed to feed the canceller from real audio: format decoders,
// channel mixing, resampling and frame chunking.
//
// # Quick Start
//
// The simplest way to cancel echo is CancelEcho:
//
//	// Decode the mic capture and the far-end reference
//	micSrc, _ := wav.Decoder{}.Decode(micFile)
//	farSrc, _ := mp3.Decoder{}.Decode(playbackFile)
//
//	// Remove the echo; frames of 256 samples, step size 0.5
//	pcm16, rate, err := fdafaec.CancelEcho(micSrc, farSrc, 512, 0.5, 4096)
//
//	// pcm16 is the echo-cancelled mono 16-bit PCM at the mic rate
//
// # Custom Pipelines
//
// For more control, build the pipeline from the subpackages:
//
//	c, err := aec.New(512, 0.5)
//	stream, err := aec.NewStream(c, micMono, farMono)
//
//	buf := make([]float32, 4096)
//	n, err := stream.ReadSamples(buf)
//
// Or drive the canceller directly, one frame at a time:
//
//	out, err := c.Process(farEndFrame, micFrame)
//
// # Alignment Responsibility
//
// The module performs no acoustic delay estimation and no double-talk
// detection. The caller must supply far-end and mic signals that are
// time aligned: the echo of a far-end frame must fall within the
// filter span (fftSize samples) of the corresponding mic frames.
//
// # Supported Formats
//
// The formats subpackages decode input audio:
//   - WAV (PCM) via formats/wav, which also writes 16-bit WAV output
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// See the individual subpackages for more detailed documentation.
package fdafaec
