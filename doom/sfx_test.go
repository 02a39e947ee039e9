// SPDX-License-Identifier: EPL-2.0

package doom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSfxLumpName(t *testing.T) {
	pistol := &SfxInfo{Name: "pistol"}
	chainsaw := &SfxInfo{Name: "sawup"}
	linked := &SfxInfo{Name: "chgun", Link: pistol}
	// only one hop is followed
	chained := &SfxInfo{Name: "x", Link: &SfxInfo{Name: "sawidl", Link: chainsaw}}

	tests := []struct {
		name      string
		sfx       *SfxInfo
		usePrefix bool
		subst     Substitution
		want      string
	}{
		{"plain with prefix", pistol, true, nil, "dspistol"},
		{"plain without prefix", pistol, false, nil, "pistol"},
		{"linked with prefix", linked, true, nil, "dspistol"},
		{"linked without prefix", linked, false, nil, "pistol"},
		{"one hop only", chained, true, nil, "dssawidl"},
		{"exactly eight characters", &SfxInfo{Name: "bossit"}, true, nil, "dsbossit"},
		{"long name cut", &SfxInfo{Name: "slop_long"}, true, nil, "dsslop_l"},
		{"substitution applied before prefix", pistol, true, strings.ToUpper, "dsPISTOL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SfxLumpName(tt.sfx, tt.usePrefix, tt.subst))
		})
	}
}

func TestSfxPath(t *testing.T) {
	pistol := &SfxInfo{Name: "pistol"}

	assert.Equal(t, "sound/dspistol.wav", SfxPath(pistol, nil))
	assert.Equal(t, "sound/dspistol.wav", SfxPath(&SfxInfo{Name: "chgun", Link: pistol}, nil))
	assert.Equal(t, "sound/dsPISTOL.wav", SfxPath(pistol, strings.ToUpper))
}

func TestSongPath(t *testing.T) {
	assert.Equal(t, "sound/d_e1m1.mp3", SongPath("d_e1m1"))
}

func TestDevices(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, []SoundDevice{
		DeviceSB, DevicePAS, DeviceGUS, DeviceWaveBlaster, DeviceSoundCanvas, DeviceAWE32,
	}, h.sound.Devices())
	assert.Equal(t, []SoundDevice{
		DevicePAS, DeviceGUS, DeviceWaveBlaster, DeviceSoundCanvas, DeviceGenMIDI, DeviceAWE32,
	}, h.music.Devices())

	// callers get a copy
	devs := h.sound.Devices()
	devs[0] = DeviceNone
	assert.Equal(t, DeviceSB, h.sound.Devices()[0])
}

func TestSoundDevice_String(t *testing.T) {
	assert.Equal(t, "Sound Blaster", DeviceSB.String())
	assert.Equal(t, "General MIDI", DeviceGenMIDI.String())
	assert.Equal(t, "unknown", SoundDevice(99).String())
}
