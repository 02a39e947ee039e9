// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding on top of
// github.com/jfreymuth/oggvorbis.
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(file)
//
// The source keeps the stream's own channel count and sample rate. Reads
// always return whole frames, so a dst shorter than one frame reads nothing.
package vorbis
