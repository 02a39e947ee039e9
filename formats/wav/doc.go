// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav, so files with extra chunks
// (LIST, bext, smpl) before the sample data are handled.
//
// # Supported Formats
//
//   - PCM 8-bit unsigned (the layout of classic game sound lumps)
//   - PCM 16, 24 and 32-bit signed
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("sound/dspistol.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Decode wants an io.ReadSeeker; plain readers are buffered in memory first.
//
// # Writing WAV Files
//
// WriteWAV16 writes interleaved 16-bit PCM with a canonical 44 byte header:
//
//	samples := []int16{100, -100, 200, -200}
//	err := wav.WriteWAV16(file, 44100, 2, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrOnlyPCMSupported: compressed or float encodings
//   - ErrUnsupportedBitDepth: anything other than 8/16/24/32 bits
//   - ErrUnsupportedWavLayout: missing fmt or data chunk
//   - ErrInvalidChannels: bad channel count passed to WriteWAV16
package wav
