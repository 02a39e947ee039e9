// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/binary"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/ik5/dgaudio/audio"
)

// voice is one source feeding the mix. All fields are guarded by mixer.mu.
type voice struct {
	name string
	src  audio.Source
	// reopen rewinds by decoding the file again; nil for one-shot voices.
	reopen  func() (audio.Source, error)
	gain    float32
	looping bool
	playing bool
	ended   bool
	oneShot bool
}

func (v *voice) rewind() error {
	src, err := v.reopen()
	if err != nil {
		return err
	}
	_ = v.src.Close()
	v.src = src
	v.ended = false
	return nil
}

type mixer struct {
	mu       sync.Mutex
	channels int
	voices   []*voice
	tmp      []float32
	out      []float32
	log      *slog.Logger

	// pending holds the tail of a frame split across Read calls.
	pending []byte
	frame   []byte
}

func newMixer(channels int, log *slog.Logger) *mixer {
	return &mixer{
		channels: channels,
		tmp:      make([]float32, 4096),
		log:      log,
	}
}

func (m *mixer) add(v *voice) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.voices = append(m.voices, v)
}

// remove drops v from the mix and closes its source.
func (m *mixer) remove(v *voice) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.voices = slices.DeleteFunc(m.voices, func(o *voice) bool { return o == v })
	_ = v.src.Close()
}

func (m *mixer) closeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.voices {
		v.playing = false
		_ = v.src.Close()
	}
	m.voices = nil
}

// active counts voices that are currently producing sound.
func (m *mixer) active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, v := range m.voices {
		if v.playing {
			n++
		}
	}
	return n
}

// mix overwrites dst with the sum of all playing voices. len(dst) must be a
// whole number of frames. Must be called with m.mu held.
func (m *mixer) mix(dst []float32) {
	clear(dst)

	for _, v := range m.voices {
		if v.playing {
			m.mixVoice(v, dst)
		}
	}

	for i, s := range dst {
		if s > 1 {
			dst[i] = 1
		} else if s < -1 {
			dst[i] = -1
		}
	}

	m.voices = slices.DeleteFunc(m.voices, func(v *voice) bool {
		if v.oneShot && v.ended {
			_ = v.src.Close()
			return true
		}
		return false
	})
}

func (m *mixer) mixVoice(v *voice, dst []float32) {
	filled := 0
	rewound := false

	for filled < len(dst) {
		want := len(dst) - filled
		if cap(m.tmp) < want {
			m.tmp = make([]float32, want)
		}
		buf := m.tmp[:want]

		n, err := v.src.ReadSamples(buf)
		for i := range n {
			dst[filled+i] += buf[i] * v.gain
		}
		filled += n
		if n > 0 {
			rewound = false
		}

		if err == io.EOF {
			// an empty file would otherwise rewind forever
			if v.looping && v.reopen != nil && !rewound {
				rerr := v.rewind()
				if rerr == nil {
					rewound = true
					continue
				}
				m.log.Warn("rewinding sound failed", "sound", v.name, "error", rerr)
			}
			v.playing = false
			v.ended = true
			return
		}
		if err != nil {
			m.log.Warn("reading sound failed", "sound", v.name, "error", err)
			v.playing = false
			v.ended = true
			return
		}
		if n == 0 {
			return
		}
	}
}

// render mixes into dst and returns the number of samples written, which is
// len(dst) rounded down to whole frames.
func (m *mixer) render(dst []float32) int {
	n := len(dst) - len(dst)%m.channels

	m.mu.Lock()
	defer m.mu.Unlock()

	m.mix(dst[:n])
	return n
}

// Read serves the mix as float32 little-endian PCM for output devices.
// A buffer shorter than one frame still gets data; the rest of that frame
// is returned by the next call.
func (m *mixer) Read(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := copy(p, m.pending)
	m.pending = m.pending[n:]
	p = p[n:]

	frameBytes := 4 * m.channels
	if samples := len(p) / frameBytes * m.channels; samples > 0 {
		if cap(m.out) < samples {
			m.out = make([]float32, samples)
		}
		out := m.out[:samples]
		m.mix(out)
		encodeFloat32LE(p, out)
		n += samples * 4
		p = p[samples*4:]
	}

	if n == 0 && len(p) > 0 {
		if cap(m.out) < m.channels {
			m.out = make([]float32, m.channels)
		}
		out := m.out[:m.channels]
		m.mix(out)
		if cap(m.frame) < frameBytes {
			m.frame = make([]byte, frameBytes)
		}
		frame := m.frame[:frameBytes]
		encodeFloat32LE(frame, out)
		n = copy(p, frame)
		m.pending = frame[n:]
	}

	return n, nil
}

func encodeFloat32LE(dst []byte, src []float32) {
	for i, s := range src {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(s))
	}
}
