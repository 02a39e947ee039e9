// SPDX-License-Identifier: EPL-2.0

package wad

import "errors"

var (
	ErrNotWAD       = errors.New("not a WAD file")
	ErrCorrupt      = errors.New("corrupt WAD directory")
	ErrLumpNotFound = errors.New("lump not found")
)
