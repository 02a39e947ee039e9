// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks the engine mixes
// with.
//
// # Source Interface
//
// Every decoder and processor implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. ReadSamples returns
// io.EOF once the stream is finished.
//
// # Format Registry
//
// Decoders are registered by file extension and looked up from a path:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("mp3", mp3.Decoder{})
//	dec, err := registry.ForPath("sound/dspistol.wav")
//
// # Converting to the Mixer Format
//
// A Resampler changes the sample rate with cubic interpolation and a
// ChannelMixer changes the channel count:
//
//	resampled := audio.NewResampler(src, 44100)
//	stereo, err := audio.NewChannelMixer(resampled, 2)
//
// Both wrap another Source, so Close on the outer one closes the chain.
package audio
