// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrEngineClosed      = errors.New("engine is closed")
	ErrSoundClosed       = errors.New("sound is closed")
	ErrInvalidConfig     = errors.New("invalid engine config")
	ErrDeviceStarted     = errors.New("device already started")
	ErrDeviceUnavailable = errors.New("audio device unavailable")
)
