// Package vorbis decodes Ogg Vorbis streams into audio.Source values
// using github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//
// The decoder preserves the encoded channel count and sample rate.
package vorbis
