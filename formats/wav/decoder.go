// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/dgaudio/audio"
)

const wavFormatPCM = 1

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type wavSource struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
	// pending holds decoded values not yet handed out
	pending []int
	eof     bool
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BufSize() int    { return cap(s.intBuf.Data) }

func (s *wavSource) fill() error {
	s.intBuf.Data = s.intBuf.Data[:cap(s.intBuf.Data)]
	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%w", err)
	}
	if n == 0 || err == io.EOF {
		s.eof = true
	}
	s.pending = s.intBuf.Data[:n]
	return nil
}

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.fill(); err != nil {
				return written, err
			}
			continue
		}

		n := copy32(dst[written:], s.pending, s.bitDepth)
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 && s.eof {
		return 0, io.EOF
	}
	if s.eof && len(s.pending) == 0 {
		return written, io.EOF
	}
	return written, nil
}

// copy32 normalizes integer PCM into dst. 8-bit WAV data is unsigned.
func copy32(dst []float32, src []int, bitDepth int) int {
	n := min(len(dst), len(src))
	switch bitDepth {
	case 8:
		for i := range n {
			dst[i] = float32(src[i]-128) / 128.0
		}
	case 16:
		for i := range n {
			dst[i] = float32(src[i]) / 32768.0
		}
	case 24:
		for i := range n {
			dst[i] = float32(src[i]) / 8388608.0
		}
	default:
		for i := range n {
			dst[i] = float32(float64(src[i]) / 2147483648.0)
		}
	}
	return n
}

// Decoder reads PCM WAV files with 8, 16, 24 or 32 bits per sample.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, ErrOnlyPCMSupported
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	return &wavSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
		intBuf: &goaudio.IntBuffer{
			Data:   make([]int, 4096-4096%format.NumChannels),
			Format: format,
		},
	}, nil
}
