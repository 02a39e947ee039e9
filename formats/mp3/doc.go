// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files. It is
// the decoder behind music tracks, which are stored as sound/<track>.mp3.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("sound/d_e1m1.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2, go-mp3 up-mixes mono streams
//   - Sample rate: whatever the file was encoded at
//
// Reads from go-mp3 may end on half a sample; the trailing byte is kept and
// joined with the next read.
package mp3
