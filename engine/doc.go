// SPDX-License-Identifier: EPL-2.0

// Package engine mixes decoded sound files into one output stream.
//
// An Engine resolves paths against an asset directory (or any fs.FS), picks
// a decoder by file extension and converts every sound to the engine's
// sample rate and channel count before mixing:
//
//	e, err := engine.New(engine.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer e.Close()
//
//	// fire and forget
//	_ = e.PlaySound("sound/dspistol.wav")
//
//	// controllable
//	music, err := e.OpenSound("sound/1.mp3")
//	music.SetLooping(true)
//	music.SetVolumeDB(-6)
//	_ = music.Start()
//
// Output goes to the system audio device through oto. NullDevice leaves the
// mix idle so callers can pull it with Render instead.
package engine
