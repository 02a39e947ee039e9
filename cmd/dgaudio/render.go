// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/dgaudio"
	"github.com/ik5/dgaudio/config"
	"github.com/ik5/dgaudio/doom"
	"github.com/ik5/dgaudio/engine"
	"github.com/ik5/dgaudio/formats/wav"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		sfx      []string
		song     string
		loop     bool
		volume   int
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "render OUT.wav",
		Short: "Mix sound effects and music into a WAV file",
		Long:  `Render runs the mixer without an audio device and writes the first --duration of the mix as 16-bit PCM WAV.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			cfg.Backend = config.BackendNull

			sys, err := dgaudio.Open(cfg,
				dgaudio.WithLogger(a.log),
				dgaudio.WithDevice(func() engine.Device { return &engine.NullDevice{} }),
			)
			if err != nil {
				return err
			}
			if err := sys.Init(); err != nil {
				return err
			}
			defer sys.Close()

			if song != "" {
				h := sys.Music.RegisterSong([]byte(song))
				if err := sys.Backend.PlaySong(h, loop); err != nil {
					return err
				}
				sys.Music.SetMusicVolume(volume)
			}
			for i, name := range sfx {
				if sys.Sound.StartSound(&doom.SfxInfo{Name: name}, i, 127, 128) < 0 {
					return fmt.Errorf("cannot play %s", name)
				}
			}

			frames := int(duration.Seconds() * float64(cfg.SampleRate))
			pcm := dgaudio.RenderPCM16(sys.Engine(), frames, 1024)

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("%w", err)
			}
			defer f.Close()

			if err := wav.WriteWAV16(f, cfg.SampleRate, cfg.Channels, pcm); err != nil {
				return fmt.Errorf("writing %s: %w", args[0], err)
			}

			a.log.Info("rendered", "path", args[0], "frames", frames, "sample_rate", cfg.SampleRate)
			return f.Close()
		},
	}

	cmd.Flags().StringSliceVar(&sfx, "sfx", nil, "sound effects to start at time zero")
	cmd.Flags().StringVar(&song, "music", "", "music track to start at time zero")
	cmd.Flags().BoolVar(&loop, "loop", false, "loop the music track")
	cmd.Flags().IntVar(&volume, "volume", doom.MaxMusicVolume, "music volume, 0 to 127")
	cmd.Flags().DurationVar(&duration, "duration", 2*time.Second, "length of the output")
	return cmd
}
