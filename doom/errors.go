// SPDX-License-Identifier: EPL-2.0

package doom

import "errors"

var (
	ErrNotInitialized = errors.New("audio backend not initialized")
	ErrUnknownHandle  = errors.New("unknown song handle")
	ErrNoLumpIndex    = errors.New("no WAD loaded")
	ErrNilSfx         = errors.New("nil sound effect")
	ErrSongOpen       = errors.New("cannot open song")
	ErrSongStart      = errors.New("cannot start song")
)
