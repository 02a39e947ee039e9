// SPDX-License-Identifier: EPL-2.0

package doom

// SoundDevice identifies a legacy sound card. The values match the host's
// snddevice_t numbering.
type SoundDevice int

const (
	DeviceNone SoundDevice = iota
	DevicePCSpeaker
	DeviceAdlib
	DeviceSB
	DevicePAS
	DeviceGUS
	DeviceWaveBlaster
	DeviceSoundCanvas
	DeviceGenMIDI
	DeviceAWE32
	DeviceCD
)

var deviceNames = map[SoundDevice]string{
	DeviceNone:        "none",
	DevicePCSpeaker:   "PC speaker",
	DeviceAdlib:       "Adlib",
	DeviceSB:          "Sound Blaster",
	DevicePAS:         "Pro Audio Spectrum",
	DeviceGUS:         "Gravis Ultrasound",
	DeviceWaveBlaster: "WaveBlaster",
	DeviceSoundCanvas: "Sound Canvas",
	DeviceGenMIDI:     "General MIDI",
	DeviceAWE32:       "AWE32",
	DeviceCD:          "CD audio",
}

func (d SoundDevice) String() string {
	if name, ok := deviceNames[d]; ok {
		return name
	}
	return "unknown"
}

// Every sound card setting is served by the same file-backed engine, so
// these lists only tell the host which settings select this backend.
var (
	soundDevices = []SoundDevice{
		DeviceSB,
		DevicePAS,
		DeviceGUS,
		DeviceWaveBlaster,
		DeviceSoundCanvas,
		DeviceAWE32,
	}
	musicDevices = []SoundDevice{
		DevicePAS,
		DeviceGUS,
		DeviceWaveBlaster,
		DeviceSoundCanvas,
		DeviceGenMIDI,
		DeviceAWE32,
	}
)
