// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/dgaudio"
	"github.com/ik5/dgaudio/doom"
)

const pollInterval = 20 * time.Millisecond

func (a *app) open() (*dgaudio.System, error) {
	sys, err := dgaudio.Open(a.cfg, dgaudio.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	if err := sys.Init(); err != nil {
		return nil, err
	}
	return sys, nil
}

// waitQuiet blocks until nothing is playing, limit passes or ctx is done.
// A zero limit waits without a deadline.
func waitQuiet(ctx context.Context, sys *dgaudio.System, limit time.Duration) {
	if limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if e := sys.Engine(); e == nil || e.Voices() == 0 {
				return
			}
		}
	}
}

func newSfxCmd(a *app) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "sfx NAME...",
		Short: "Play sound effects by name",
		Long:  `Play each named effect (e.g. "pistol") from sound/ds<name>.wav, all at once, and wait for them to finish.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.open()
			if err != nil {
				return err
			}
			defer sys.Close()

			for i, name := range args {
				sfx := &doom.SfxInfo{Name: name}
				if lump := sys.Sound.GetSfxLumpNum(sfx); lump >= 0 {
					a.log.Info("sound lump", "name", doom.SfxLumpName(sfx, a.cfg.SfxPrefix, nil), "lump", lump)
				}
				if sys.Sound.StartSound(sfx, i, 127, 128) < 0 {
					return fmt.Errorf("cannot play %s", name)
				}
			}

			waitQuiet(cmd.Context(), sys, timeout)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "stop waiting after this long (0 waits forever)")
	return cmd
}

func newMusicCmd(a *app) *cobra.Command {
	var (
		loop     bool
		volume   int
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "music NAME",
		Short: "Play a music track by name",
		Long:  `Play sound/<name>.mp3 (e.g. "d_e1m1") until it ends, the duration passes or the command is interrupted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := a.open()
			if err != nil {
				return err
			}
			defer sys.Close()

			h := sys.Music.RegisterSong([]byte(args[0]))
			defer sys.Music.UnRegisterSong(h)

			if err := sys.Backend.PlaySong(h, loop); err != nil {
				return err
			}
			sys.Music.SetMusicVolume(volume)

			waitQuiet(cmd.Context(), sys, duration)
			sys.Music.StopSong()
			return nil
		},
	}

	cmd.Flags().BoolVar(&loop, "loop", false, "loop the track")
	cmd.Flags().IntVar(&volume, "volume", doom.MaxMusicVolume, "music volume, 0 to 127")
	cmd.Flags().DurationVar(&duration, "duration", 0, "stop after this long (0 plays to the end)")
	return cmd
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List the sound card settings this backend answers to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := doom.NewBackend(nil)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Sound effects:")
			for _, d := range doom.NewSoundModule(b).Devices() {
				fmt.Fprintf(out, "  %2d  %s\n", int(d), d)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Music:")
			for _, d := range doom.NewMusicModule(b).Devices() {
				fmt.Fprintf(out, "  %2d  %s\n", int(d), d)
			}
			return nil
		},
	}
}
