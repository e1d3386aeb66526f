// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio.Source values using
// github.com/hajimehoshi/go-mp3.
//
// Far-end reference material (music, announcements, TTS output) often
// arrives as MP3; decode it here, then mix down and resample to the
// mic rate before feeding it to the echo canceller:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // not an MP3 stream
//	}
//	mono := audio.NewMonoMixer(src)
//
// go-mp3 always produces 16-bit stereo output, so the source reports
// two channels regardless of the encoded layout.
package mp3
