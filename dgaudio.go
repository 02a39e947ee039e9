// SPDX-License-Identifier: EPL-2.0

package dgaudio

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/ik5/dgaudio/config"
	"github.com/ik5/dgaudio/doom"
	"github.com/ik5/dgaudio/engine"
	"github.com/ik5/dgaudio/wad"
)

// System is a ready to use pair of sound and music modules sharing one
// engine, configured from a config.Config.
type System struct {
	Sound   *doom.SoundModule
	Music   *doom.MusicModule
	Backend *doom.Backend

	cfg    config.Config
	lumps  *wad.Directory
	engine *engine.Engine
	fsys   fs.FS
	device func() engine.Device
	log    *slog.Logger
}

type Option func(*System)

func WithLogger(l *slog.Logger) Option {
	return func(s *System) { s.log = l }
}

// WithFS serves assets from fsys instead of the configured asset directory.
func WithFS(fsys fs.FS) Option {
	return func(s *System) { s.fsys = fsys }
}

// WithDevice makes every engine the system opens use the device returned
// by newDevice.
func WithDevice(newDevice func() engine.Device) Option {
	return func(s *System) { s.device = newDevice }
}

// Open validates cfg, loads the WAD directory if one is configured and
// builds the modules. The engine itself is opened by the first module Init.
// A relative WAD path is resolved against the asset directory.
func Open(cfg config.Config, opts ...Option) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &System{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.device == nil && cfg.Backend == config.BackendNull {
		s.device = func() engine.Device { return &engine.NullDevice{} }
	}

	backendOpts := []doom.Option{doom.WithLogger(s.log)}

	if cfg.WAD != "" {
		path := cfg.WAD
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.AssetDir, path)
		}

		lumps, err := wad.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading wad: %w", err)
		}
		s.lumps = lumps
		backendOpts = append(backendOpts, doom.WithLumpIndex(lumps))
		s.log.Debug("wad loaded", "path", path, "kind", lumps.Kind, "lumps", lumps.NumLumps())
	}

	s.Backend = doom.NewBackend(s.openEngine, backendOpts...)
	s.Sound = doom.NewSoundModule(s.Backend)
	s.Music = doom.NewMusicModule(s.Backend)

	return s, nil
}

func (s *System) openEngine() (doom.AudioEngine, error) {
	opts := []engine.Option{engine.WithLogger(s.log)}
	if s.fsys != nil {
		opts = append(opts, engine.WithFS(s.fsys))
	}
	if s.device != nil {
		opts = append(opts, engine.WithDevice(s.device()))
	}

	e, err := engine.New(s.cfg.Engine(), opts...)
	if err != nil {
		return nil, err
	}
	s.engine = e
	return engineAdapter{e}, nil
}

// Init initializes both modules, sound first.
func (s *System) Init() error {
	if err := s.Backend.InitSound(s.cfg.SfxPrefix); err != nil {
		return err
	}
	if err := s.Backend.InitMusic(); err != nil {
		return errors.Join(err, s.Backend.ShutdownSound())
	}
	return nil
}

// Close shuts both modules down, which closes the engine.
func (s *System) Close() error {
	return errors.Join(s.Backend.ShutdownMusic(), s.Backend.ShutdownSound())
}

// Engine returns the open engine, or nil when no module is initialized.
func (s *System) Engine() *engine.Engine {
	if s.engine == nil || s.engine.Closed() {
		return nil
	}
	return s.engine
}

// Lumps returns the loaded WAD directory, or nil.
func (s *System) Lumps() *wad.Directory { return s.lumps }

func (s *System) Config() config.Config { return s.cfg }

// engineAdapter narrows *engine.Engine to doom.AudioEngine.
type engineAdapter struct {
	*engine.Engine
}

func (a engineAdapter) OpenSound(path string) (doom.Playable, error) {
	snd, err := a.Engine.OpenSound(path)
	if err != nil {
		return nil, err
	}
	return snd, nil
}
