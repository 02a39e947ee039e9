// SPDX-License-Identifier: EPL-2.0

package doom

import "errors"

// MusicDriver is the host's music module contract.
type MusicDriver interface {
	Devices() []SoundDevice
	Init() bool
	Shutdown()
	SetMusicVolume(volume int)
	PauseSong()
	ResumeSong()
	RegisterSong(data []byte) SongHandle
	UnRegisterSong(h SongHandle)
	PlaySong(h SongHandle, looping bool)
	StopSong()
	MusicIsPlaying() bool
	PollMusic()
}

// MusicModule plays one song at a time through a Backend.
type MusicModule struct {
	b *Backend
}

var _ MusicDriver = (*MusicModule)(nil)

func NewMusicModule(b *Backend) *MusicModule {
	return &MusicModule{b: b}
}

func (m *MusicModule) Devices() []SoundDevice {
	return append([]SoundDevice(nil), musicDevices...)
}

func (m *MusicModule) Init() bool {
	if err := m.b.InitMusic(); err != nil {
		m.b.log.Error("music initialization failed", "error", err)
		return false
	}
	return true
}

func (m *MusicModule) Shutdown() {
	if err := m.b.ShutdownMusic(); err != nil {
		m.b.log.Warn("music shutdown", "error", err)
	}
}

func (m *MusicModule) SetMusicVolume(volume int) {
	m.b.SetMusicVolume(volume)
}

func (m *MusicModule) PauseSong() {
	if err := m.b.PauseSong(); err != nil {
		m.b.log.Warn("pause music", "error", err)
	}
}

func (m *MusicModule) ResumeSong() {
	if err := m.b.ResumeSong(); err != nil {
		m.b.log.Warn("resume music", "error", err)
	}
}

// RegisterSong takes the song name, NUL terminated or not.
func (m *MusicModule) RegisterSong(data []byte) SongHandle {
	return m.b.RegisterSong(data)
}

func (m *MusicModule) UnRegisterSong(h SongHandle) {
	if err := m.b.UnregisterSong(h); err != nil {
		m.b.log.Debug("unregister song", "handle", h, "error", err)
	}
}

// PlaySong logs a missing track at debug level since WADs reference songs
// that few installs ship. A song that opens but will not start is an error.
func (m *MusicModule) PlaySong(h SongHandle, looping bool) {
	err := m.b.PlaySong(h, looping)
	switch {
	case err == nil:
	case errors.Is(err, ErrSongStart):
		m.b.log.Error("could not play song", "handle", h, "error", err)
	default:
		m.b.log.Debug("song not played", "handle", h, "error", err)
	}
}

func (m *MusicModule) StopSong() {
	if err := m.b.StopSong(); err != nil {
		m.b.log.Warn("stop song", "error", err)
	}
}

func (m *MusicModule) MusicIsPlaying() bool {
	return m.b.MusicPlaying()
}

func (m *MusicModule) PollMusic() {}
