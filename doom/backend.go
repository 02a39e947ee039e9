// SPDX-License-Identifier: EPL-2.0

package doom

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ik5/dgaudio/utils"
)

// AudioEngine is what the backend needs from the mixer.
type AudioEngine interface {
	// PlaySound plays path once; there is no way to control it afterwards.
	PlaySound(path string) error
	// OpenSound decodes path into a stopped Playable.
	OpenSound(path string) (Playable, error)
	Close() error
}

// Playable is a file-backed sound that can be started and stopped.
type Playable interface {
	SetLooping(loop bool)
	Start() error
	Stop() error
	IsPlaying() bool
	SetVolumeDB(db float64)
	Close() error
}

// EngineFactory opens the audio engine. It is called when the first module
// initializes.
type EngineFactory func() (AudioEngine, error)

// LumpIndex resolves lump names to lump numbers.
type LumpIndex interface {
	NumForName(name string) (int, error)
}

type musicState int

const (
	musicIdle musicState = iota
	musicPlaying
	musicPaused
)

// MaxMusicVolume is the loudest volume the host passes to SetMusicVolume.
const MaxMusicVolume = 127

// Backend holds everything the sound and music modules share: the engine,
// the registered songs and the one song slot. It is not safe for concurrent
// use; the host calls it from its main loop.
type Backend struct {
	newEngine EngineFactory
	engine    AudioEngine
	soundUp   bool
	musicUp   bool

	usePrefix bool
	lumps     LumpIndex
	subst     Substitution

	songs *songRegistry
	music Playable
	state musicState

	log *slog.Logger
}

type Option func(*Backend)

func WithLogger(l *slog.Logger) Option {
	return func(b *Backend) { b.log = l }
}

// WithLumpIndex enables GetSfxLumpNum.
func WithLumpIndex(idx LumpIndex) Option {
	return func(b *Backend) { b.lumps = idx }
}

func WithSubstitution(s Substitution) Option {
	return func(b *Backend) { b.subst = s }
}

func NewBackend(factory EngineFactory, opts ...Option) *Backend {
	b := &Backend{
		newEngine: factory,
		songs:     newSongRegistry(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = slog.Default()
	}
	return b
}

func (b *Backend) acquire() error {
	if b.engine != nil {
		return nil
	}

	e, err := b.newEngine()
	if err != nil {
		return fmt.Errorf("opening audio engine: %w", err)
	}
	b.engine = e
	return nil
}

// release closes the engine once neither module needs it.
func (b *Backend) release() error {
	if b.soundUp || b.musicUp || b.engine == nil {
		return nil
	}

	err := b.engine.Close()
	b.engine = nil
	if err != nil {
		return fmt.Errorf("closing audio engine: %w", err)
	}
	return nil
}

func (b *Backend) InitSound(usePrefix bool) error {
	if err := b.acquire(); err != nil {
		return err
	}
	b.usePrefix = usePrefix
	b.soundUp = true
	return nil
}

func (b *Backend) ShutdownSound() error {
	if !b.soundUp {
		return nil
	}
	b.soundUp = false
	return b.release()
}

func (b *Backend) InitMusic() error {
	if err := b.acquire(); err != nil {
		return err
	}
	b.musicUp = true
	return nil
}

// ShutdownMusic stops the current song before letting go of the engine.
func (b *Backend) ShutdownMusic() error {
	if !b.musicUp {
		return nil
	}

	err := b.StopSong()
	b.musicUp = false
	return errors.Join(err, b.release())
}

// SoundInitialized reports whether InitSound succeeded and ShutdownSound
// has not run since.
func (b *Backend) SoundInitialized() bool { return b.soundUp }

func (b *Backend) LumpNum(sfx *SfxInfo) (int, error) {
	if sfx == nil {
		return -1, ErrNilSfx
	}
	if b.lumps == nil {
		return -1, ErrNoLumpIndex
	}

	name := SfxLumpName(sfx, b.usePrefix, b.subst)
	n, err := b.lumps.NumForName(name)
	if err != nil {
		return -1, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// PlaySfx hands the effect's path to the engine without keeping a handle.
func (b *Backend) PlaySfx(sfx *SfxInfo) error {
	if !b.soundUp || b.engine == nil {
		return ErrNotInitialized
	}
	if sfx == nil {
		return ErrNilSfx
	}

	path := SfxPath(sfx, b.subst)
	if err := b.engine.PlaySound(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (b *Backend) RegisterSong(data []byte) SongHandle {
	return b.songs.register(data)
}

func (b *Backend) UnregisterSong(h SongHandle) error {
	return b.songs.unregister(h)
}

// PlaySong replaces whatever is in the song slot with the song behind h.
// The previous song is always stopped and released first, even when h turns
// out to be unplayable.
func (b *Backend) PlaySong(h SongHandle, looping bool) error {
	if err := b.StopSong(); err != nil {
		b.log.Warn("releasing previous song failed", "error", err)
	}

	if !b.musicUp || b.engine == nil {
		return ErrNotInitialized
	}
	name, ok := b.songs.lookup(h)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}

	path := SongPath(name)
	p, err := b.engine.OpenSound(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrSongOpen, path, err)
	}

	p.SetLooping(looping)
	if err := p.Start(); err != nil {
		// an unstarted song would otherwise stay open until the next play
		return errors.Join(
			fmt.Errorf("%w %s: %w", ErrSongStart, path, err),
			p.Close(),
		)
	}

	b.music = p
	b.state = musicPlaying
	return nil
}

// StopSong empties the song slot. It is a no-op when nothing is loaded.
func (b *Backend) StopSong() error {
	if b.state == musicIdle {
		return nil
	}

	var stopErr error
	if b.music.IsPlaying() {
		stopErr = b.music.Stop()
	}
	closeErr := b.music.Close()

	b.music = nil
	b.state = musicIdle
	return errors.Join(stopErr, closeErr)
}

// PauseSong halts the current song but keeps it loaded.
func (b *Backend) PauseSong() error {
	if b.state != musicPlaying {
		return nil
	}
	if err := b.music.Stop(); err != nil {
		return fmt.Errorf("pausing song: %w", err)
	}
	b.state = musicPaused
	return nil
}

// ResumeSong continues a paused song from where it stopped.
func (b *Backend) ResumeSong() error {
	if b.state != musicPaused {
		return nil
	}
	if err := b.music.Start(); err != nil {
		return fmt.Errorf("resuming song: %w", err)
	}
	b.state = musicPlaying
	return nil
}

// SetMusicVolume applies volume (0 to MaxMusicVolume) to the playing song.
// Nothing happens, and nothing is remembered, while no song is audible.
func (b *Backend) SetMusicVolume(volume int) {
	if b.state != musicPlaying || !b.music.IsPlaying() {
		return
	}
	b.music.SetVolumeDB(MusicVolumeDB(volume))
}

// MusicPlaying reports whether a song is loaded and not paused.
func (b *Backend) MusicPlaying() bool {
	return b.state == musicPlaying
}

// MusicVolumeDB maps a host volume to a gain: MaxMusicVolume is 0 dB and
// 0 is -Inf dB. Out of range values are clamped.
func MusicVolumeDB(volume int) float64 {
	volume = min(max(volume, 0), MaxMusicVolume)
	return utils.LinearToDB(float64(volume) / MaxMusicVolume)
}
