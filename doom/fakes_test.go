// SPDX-License-Identifier: EPL-2.0

package doom

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type fakePlayable struct {
	path     string
	looping  bool
	playing  bool
	stops    int
	closes   int
	volumes  []float64
	startErr error
}

func (p *fakePlayable) SetLooping(loop bool) { p.looping = loop }

func (p *fakePlayable) Start() error {
	if p.startErr != nil {
		return p.startErr
	}
	p.playing = true
	return nil
}

func (p *fakePlayable) Stop() error {
	p.stops++
	p.playing = false
	return nil
}

func (p *fakePlayable) IsPlaying() bool        { return p.playing }
func (p *fakePlayable) SetVolumeDB(db float64) { p.volumes = append(p.volumes, db) }

func (p *fakePlayable) Close() error {
	p.closes++
	p.playing = false
	return nil
}

type fakeEngine struct {
	played   []string
	opened   []*fakePlayable
	playErr  error
	openErr  error
	startErr error
	closes   int
}

func (e *fakeEngine) PlaySound(path string) error {
	e.played = append(e.played, path)
	return e.playErr
}

func (e *fakeEngine) OpenSound(path string) (Playable, error) {
	if e.openErr != nil {
		return nil, e.openErr
	}
	p := &fakePlayable{path: path, startErr: e.startErr}
	e.opened = append(e.opened, p)
	return p, nil
}

func (e *fakeEngine) Close() error {
	e.closes++
	return nil
}

// live counts opened playables that were never closed.
func (e *fakeEngine) live() int {
	n := 0
	for _, p := range e.opened {
		if p.closes == 0 {
			n++
		}
	}
	return n
}

// calls counts every engine-side effect, including ones on playables.
func (e *fakeEngine) calls() int {
	n := len(e.played) + len(e.opened)
	for _, p := range e.opened {
		n += p.stops + p.closes + len(p.volumes)
	}
	return n
}

type fakeLumps map[string]int

func (l fakeLumps) NumForName(name string) (int, error) {
	if n, ok := l[name]; ok {
		return n, nil
	}
	return -1, errNoSuchLump
}

var errNoSuchLump = errors.New("no such lump")

type harness struct {
	engine    *fakeEngine
	factories int
	logs      *bytes.Buffer
	backend   *Backend
	sound     *SoundModule
	music     *MusicModule
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()

	h := &harness{engine: &fakeEngine{}, logs: &bytes.Buffer{}}
	logger := slog.New(slog.NewTextHandler(h.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	factory := func() (AudioEngine, error) {
		h.factories++
		return h.engine, nil
	}

	h.backend = NewBackend(factory, append([]Option{WithLogger(logger)}, opts...)...)
	h.sound = NewSoundModule(h.backend)
	h.music = NewMusicModule(h.backend)
	return h
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
