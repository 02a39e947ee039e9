// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/ik5/dgaudio/audio"
	"github.com/ik5/dgaudio/formats/aiff"
	"github.com/ik5/dgaudio/formats/mp3"
	"github.com/ik5/dgaudio/formats/vorbis"
	"github.com/ik5/dgaudio/formats/wav"
)

// Engine owns the output device and the mix. Sounds are opened by path
// relative to the asset root and decoded by file extension.
type Engine struct {
	cfg      Config
	fsys     fs.FS
	registry *audio.Registry
	device   Device
	mixer    *mixer
	log      *slog.Logger
	closed   atomic.Bool
}

type Option func(*Engine)

// WithFS resolves sound paths in fsys instead of Config.AssetDir.
func WithFS(fsys fs.FS) Option {
	return func(e *Engine) { e.fsys = fsys }
}

// WithDevice replaces the default oto output.
func WithDevice(d Device) Option {
	return func(e *Engine) { e.device = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func WithRegistry(r *audio.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

// DefaultRegistry knows wav, mp3, ogg and aiff/aif.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		e.log = slog.Default()
	}
	if e.registry == nil {
		e.registry = DefaultRegistry()
	}
	if e.fsys == nil {
		e.fsys = os.DirFS(cfg.AssetDir)
	}
	if e.device == nil {
		d, err := NewOtoDevice(cfg)
		if err != nil {
			return nil, err
		}
		e.device = d
	}

	e.mixer = newMixer(cfg.Channels, e.log)
	if err := e.device.Start(e.mixer); err != nil {
		_ = e.device.Close()
		return nil, fmt.Errorf("starting device: %w", err)
	}

	e.log.Debug("audio engine started",
		"sample_rate", cfg.SampleRate,
		"channels", cfg.Channels,
		"formats", e.registry.Formats())

	return e, nil
}

func (e *Engine) Config() Config { return e.cfg }

// fileSource closes the underlying file together with the decode chain.
type fileSource struct {
	audio.Source
	file fs.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.file.Close())
}

// open decodes name and converts it to the engine's rate and channel count.
func (e *Engine) open(name string) (audio.Source, error) {
	dec, err := e.registry.ForPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	f, err := e.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	var conv audio.Source = audio.NewResampler(src, e.cfg.SampleRate)
	conv, err = audio.NewChannelMixer(conv, e.cfg.Channels)
	if err != nil {
		_ = src.Close()
		_ = f.Close()
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	return &fileSource{Source: conv, file: f}, nil
}

// PlaySound plays name once at full volume. There is no handle; the voice
// is dropped when it ends.
func (e *Engine) PlaySound(name string) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}

	src, err := e.open(name)
	if err != nil {
		return err
	}

	e.mixer.add(&voice{
		name:    name,
		src:     src,
		gain:    1,
		playing: true,
		oneShot: true,
	})
	return nil
}

// OpenSound decodes name into a stopped Sound.
func (e *Engine) OpenSound(name string) (*Sound, error) {
	if e.closed.Load() {
		return nil, ErrEngineClosed
	}

	src, err := e.open(name)
	if err != nil {
		return nil, err
	}

	v := &voice{
		name:   name,
		src:    src,
		reopen: func() (audio.Source, error) { return e.open(name) },
		gain:   1,
	}
	e.mixer.add(v)

	return &Sound{engine: e, path: name, v: v}, nil
}

// Render pulls mixed samples into dst, for devices that do not pull on their
// own. It returns the number of samples written (whole frames only).
func (e *Engine) Render(dst []float32) int {
	return e.mixer.render(dst)
}

// Voices reports how many sounds are playing right now.
func (e *Engine) Voices() int {
	return e.mixer.active()
}

func (e *Engine) Closed() bool { return e.closed.Load() }

// Close stops the device and releases every sound. Sounds opened from this
// engine fail to Start afterwards.
func (e *Engine) Close() error {
	if e.closed.Swap(true) {
		return nil
	}

	err := e.device.Close()
	e.mixer.closeAll()
	if err != nil {
		return fmt.Errorf("closing device: %w", err)
	}

	e.log.Debug("audio engine stopped")
	return nil
}
