// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF decoding on top of github.com/go-audio/aiff.
//
//	decoder := aiff.Decoder{}
//	source, err := decoder.Decode(file)
//
// Signed PCM at 8, 16, 24 and 32 bits is supported. Decode needs an
// io.ReadSeeker; other readers are buffered into memory first.
package aiff
