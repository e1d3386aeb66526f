// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidFrameLen = errors.New("frame length must match the reader's frame size")
	ErrMonoRequired    = errors.New("source must be mono")
)
