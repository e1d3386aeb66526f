// Package aiff decodes 16-bit PCM AIFF streams into audio.Source
// values using github.com/go-audio/aiff.
package aiff
