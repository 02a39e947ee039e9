// SPDX-License-Identifier: EPL-2.0

package dgaudio

import (
	"fmt"
	"io"

	"github.com/ik5/dgaudio/audio"
	"github.com/ik5/dgaudio/engine"
	"github.com/ik5/dgaudio/utils"
)

// ConvertPCM16 decodes all of src into 16-bit PCM at rate with the given
// channel count. It is how assets in other formats are turned into the
// sound/ds<name>.wav files the sound module plays.
//
//	src, _ := vorbis.Decoder{}.Decode(f)
//	pcm, err := dgaudio.ConvertPCM16(src, 11025, 1, 4096)
//	_ = wav.WriteWAV16(out, 11025, 1, pcm)
func ConvertPCM16(src audio.Source, rate, channels, bufferSize int) ([]int16, error) {
	resampler := audio.NewResampler(src, rate)
	mixer, err := audio.NewChannelMixer(resampler, channels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	bufferSize -= bufferSize % channels
	if bufferSize <= 0 {
		bufferSize = 4096 * channels
	}

	// start with about two seconds and grow from there
	pcm16 := make([]int16, 0, rate*channels*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mixer.ReadSamples(buf)
		if n > 0 {
			start := len(pcm16)
			pcm16 = append(pcm16, make([]int16, n)...)
			utils.Float32sToInt16s(pcm16[start:], buf[:n])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return pcm16, nil
}

// RenderPCM16 pulls frames frames of the engine mix as 16-bit PCM. It is
// meant for engines running on a NullDevice, where nothing else pulls.
func RenderPCM16(e *engine.Engine, frames, bufferFrames int) []int16 {
	channels := e.Config().Channels
	if bufferFrames <= 0 {
		bufferFrames = 1024
	}

	pcm16 := make([]int16, frames*channels)
	buf := make([]float32, bufferFrames*channels)

	for done := 0; done < len(pcm16); {
		chunk := buf[:min(len(buf), len(pcm16)-done)]
		n := e.Render(chunk)
		utils.Float32sToInt16s(pcm16[done:], chunk[:n])
		done += n
	}

	return pcm16
}
