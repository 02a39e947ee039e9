// SPDX-License-Identifier: EPL-2.0

// Package dgaudio gives a Doom style engine its sound and music drivers,
// played from files on disk.
//
// Sound effects come from sound/ds<name>.wav and music tracks from
// sound/<name>.mp3 under the configured asset directory. Sounds are decoded
// with the formats subpackages, converted to the mixer format and played
// through oto.
//
// # Quick Start
//
//	cfg, err := config.Load("dgaudio.yaml")
//	if err != nil {
//	    return err
//	}
//
//	sys, err := dgaudio.Open(cfg)
//	if err != nil {
//	    return err
//	}
//	if err := sys.Init(); err != nil {
//	    return err
//	}
//	defer sys.Close()
//
//	sys.Sound.StartSound(&doom.SfxInfo{Name: "pistol"}, 0, 127, 128)
//
//	h := sys.Music.RegisterSong([]byte("d_e1m1"))
//	sys.Music.PlaySong(h, true)
//	sys.Music.SetMusicVolume(100)
//
// Sound and Music implement doom.SoundDriver and doom.MusicDriver, the
// contracts the host engine calls into.
//
// # Packages
//
//   - doom: the sound and music modules and their shared backend
//   - engine: mixer, file-backed sounds, output devices
//   - audio: Source, decoder registry, resampling and channel conversion
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders
//   - wad: WAD directory reader for lump lookups
//   - config: YAML configuration
//
// # Converting Assets
//
// ConvertPCM16 turns any decodable file into 16-bit PCM for WriteWAV16:
//
//	src, _ := vorbis.Decoder{}.Decode(f)
//	pcm, _ := dgaudio.ConvertPCM16(src, 11025, 1, 4096)
//	_ = wav.WriteWAV16(out, 11025, 1, pcm)
package dgaudio
