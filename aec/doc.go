// SPDX-License-Identifier: EPL-2.0

// Package aec implements acoustic echo cancellation with a
// frequency-domain adaptive filter (FDAF).
//
// Given the far-end signal sent to a loudspeaker and the microphone
// signal that contains both local speech and a delayed, filtered copy
// of the far-end signal (the acoustic echo), the Canceller produces a
// residual signal with the echo suppressed. Filtering happens in the
// frequency domain using the overlap-save method; the filter taps are
// adapted every frame with normalized least-mean-squares (NLMS), where
// each bin's gradient step is scaled by a smoothed estimate of the
// far-end power in that bin.
//
// # Basic Usage
//
// A Canceller is configured by its FFT size and learning rate. The FFT
// size fixes the frame size to half of it:
//
//	c, err := aec.New(512, 0.5) // frames of 256 samples
//	if err != nil {
//	    // fft size not a power of two, or step size not positive
//	}
//
//	out, err := c.Process(farEndFrame, micFrame)
//
// Process must be called once per frame, in order, with the far-end
// and mic frames covering the same time window. The returned slice is
// the echo-cancelled frame; it is also the adaptation error that
// drives the filter update for the next call.
//
// ProcessTo writes into a caller-supplied buffer instead, avoiding the
// per-frame allocation:
//
//	out := make([]float32, c.FrameSize())
//	for haveFrames() {
//	    if err := c.ProcessTo(out, farEndFrame, micFrame); err != nil {
//	        return err
//	    }
//	    // consume out
//	}
//
// # Choosing Parameters
//
// The FFT size determines the filter length and therefore the longest
// echo delay the canceller can remove: larger sizes cover longer echo
// tails at the cost of latency and per-frame work. The step size
// controls adaptation speed. Values in (0.1, 1.0] are typical; values
// well above 1.0 can make the filter diverge and are deliberately not
// rejected or clamped.
//
// # Alignment
//
// The canceller performs no delay estimation. The caller must hand it
// far-end and mic frames that are already time aligned, i.e. the echo
// of far-end frame k is expected within the filter span starting at
// mic frame k.
//
// # Streaming
//
// Stream chains a Canceller into an audio.Source pipeline, chunking a
// mic source and a far-end source into frames in lockstep:
//
//	st, err := aec.NewStream(c, micSource, farEndSource)
//	buf := make([]float32, 4096)
//	for {
//	    n, err := st.ReadSamples(buf)
//	    // consume buf[:n]
//	}
//
// # Monitoring
//
// ERLE reports a smoothed echo-return-loss-enhancement estimate in dB.
// On a stable echo path it grows as the filter converges, which makes
// it a cheap health signal for the surrounding pipeline.
package aec
