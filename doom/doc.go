// SPDX-License-Identifier: EPL-2.0

// Package doom implements the sound and music module contracts of a Doom
// style engine on top of a file-backed audio engine.
//
// Sound effects are played from sound/ds<name>.wav and music from
// sound/<name>.mp3, relative to the engine's asset root. Both modules share
// one Backend, which opens the engine when the first module initializes and
// closes it when the last one shuts down:
//
//	b := doom.NewBackend(func() (doom.AudioEngine, error) {
//	    return openEngine()
//	}, doom.WithLogger(logger))
//	snd := doom.NewSoundModule(b)
//	mus := doom.NewMusicModule(b)
//
//	snd.Init(true)
//	mus.Init()
//	h := mus.RegisterSong([]byte("d_e1m1"))
//	mus.PlaySong(h, true)
//
// The module types log failures and return what the host expects. Use the
// Backend directly to see the errors.
package doom
