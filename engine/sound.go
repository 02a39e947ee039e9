// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"github.com/ik5/dgaudio/utils"
)

// Sound is a file-backed playable object. It starts stopped, at full volume
// and not looping. Stop keeps the play position; Start after the end of a
// non-looping sound plays it again from the beginning.
type Sound struct {
	engine *Engine
	path   string
	v      *voice
	closed bool
}

func (s *Sound) Path() string { return s.path }

func (s *Sound) SetLooping(loop bool) {
	s.engine.mixer.mu.Lock()
	defer s.engine.mixer.mu.Unlock()

	s.v.looping = loop
}

func (s *Sound) IsLooping() bool {
	s.engine.mixer.mu.Lock()
	defer s.engine.mixer.mu.Unlock()

	return s.v.looping
}

func (s *Sound) Start() error {
	if s.closed {
		return ErrSoundClosed
	}
	if s.engine.closed.Load() {
		return ErrEngineClosed
	}

	s.engine.mixer.mu.Lock()
	defer s.engine.mixer.mu.Unlock()

	if s.v.ended {
		if err := s.v.rewind(); err != nil {
			return err
		}
	}
	s.v.playing = true
	return nil
}

func (s *Sound) Stop() error {
	if s.closed {
		return ErrSoundClosed
	}

	s.engine.mixer.mu.Lock()
	defer s.engine.mixer.mu.Unlock()

	s.v.playing = false
	return nil
}

func (s *Sound) IsPlaying() bool {
	if s.closed {
		return false
	}

	s.engine.mixer.mu.Lock()
	defer s.engine.mixer.mu.Unlock()

	return s.v.playing
}

// SetVolume sets a linear gain factor; 1 is unchanged, 0 is silent.
func (s *Sound) SetVolume(factor float32) {
	s.engine.mixer.mu.Lock()
	defer s.engine.mixer.mu.Unlock()

	s.v.gain = max(factor, 0)
}

func (s *Sound) Volume() float32 {
	s.engine.mixer.mu.Lock()
	defer s.engine.mixer.mu.Unlock()

	return s.v.gain
}

// SetVolumeDB sets the gain in decibels. 0 dB is unchanged, -Inf is silent.
func (s *Sound) SetVolumeDB(db float64) {
	s.SetVolume(float32(utils.DBToLinear(db)))
}

// Close stops the sound and releases its decoder. Closing twice is a no-op.
func (s *Sound) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.engine.mixer.remove(s.v)
	return nil
}
