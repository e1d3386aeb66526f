package wav

import "errors"

var (
	ErrNotWavFile       = errors.New("not a WAV file")
	ErrOnlyPCMSupported = errors.New("only PCM WAV supported")
	ErrUnsupportedDepth = errors.New("unsupported WAV bit depth")
)
