// SPDX-License-Identifier: EPL-2.0

package doom

import "errors"

// SoundDriver is the host's sound module contract.
type SoundDriver interface {
	Devices() []SoundDevice
	Init(useSfxPrefix bool) bool
	Shutdown()
	GetSfxLumpNum(sfx *SfxInfo) int
	Update()
	UpdateSoundParams(handle, vol, sep int)
	StartSound(sfx *SfxInfo, channel, vol, sep int) int
	StopSound(handle int)
	SoundIsPlaying(handle int) bool
	CacheSounds(sounds []*SfxInfo)
}

// SoundModule plays sound effects through a Backend. Effects are fire and
// forget, so the per-channel calls have nothing to act on. Errors are logged
// here and reduced to the host's return values.
type SoundModule struct {
	b *Backend
}

var _ SoundDriver = (*SoundModule)(nil)

func NewSoundModule(b *Backend) *SoundModule {
	return &SoundModule{b: b}
}

func (m *SoundModule) Devices() []SoundDevice {
	return append([]SoundDevice(nil), soundDevices...)
}

func (m *SoundModule) Init(useSfxPrefix bool) bool {
	if err := m.b.InitSound(useSfxPrefix); err != nil {
		m.b.log.Error("sound initialization failed", "error", err)
		return false
	}
	return true
}

func (m *SoundModule) Shutdown() {
	if err := m.b.ShutdownSound(); err != nil {
		m.b.log.Warn("sound shutdown", "error", err)
	}
}

// GetSfxLumpNum returns -1 when no WAD is loaded or the lump is missing.
func (m *SoundModule) GetSfxLumpNum(sfx *SfxInfo) int {
	n, err := m.b.LumpNum(sfx)
	if err != nil {
		m.b.log.Debug("sound lump lookup", "error", err)
		return -1
	}
	return n
}

func (m *SoundModule) Update() {}

func (m *SoundModule) UpdateSoundParams(handle, vol, sep int) {}

// StartSound returns -1 only when the backend is not initialized. A file the
// engine cannot play is not an error for the host.
func (m *SoundModule) StartSound(sfx *SfxInfo, channel, vol, sep int) int {
	err := m.b.PlaySfx(sfx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNotInitialized), errors.Is(err, ErrNilSfx):
		return -1
	default:
		m.b.log.Debug("sound effect not played", "channel", channel, "error", err)
		return 0
	}
}

func (m *SoundModule) StopSound(handle int) {}

// SoundIsPlaying is always false: effects are not tracked after they start.
func (m *SoundModule) SoundIsPlaying(handle int) bool { return false }

func (m *SoundModule) CacheSounds(sounds []*SfxInfo) {}
