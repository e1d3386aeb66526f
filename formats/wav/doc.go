// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV streams into audio.Source values and
// writes mono 16-bit PCM WAV output. It is the usual container for
// both mic captures fed into the echo canceller and for the cancelled
// result.
//
// Decoding:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Supported inputs are PCM at 8, 16, 24 or 32 bits, any channel count.
//
// Writing:
//
//	err := wav.WriteWAV16(outFile, 16000, pcm16)
package wav
