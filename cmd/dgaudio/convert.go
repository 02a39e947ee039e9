// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/dgaudio"
	"github.com/ik5/dgaudio/engine"
	"github.com/ik5/dgaudio/formats/wav"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		rate     int
		channels int
	)

	cmd := &cobra.Command{
		Use:   "convert IN OUT.wav",
		Short: "Convert a wav, mp3, ogg or aiff file to 16-bit PCM WAV",
		Long:  `Convert decodes IN by its extension, resamples it and writes a 16-bit PCM WAV, e.g. to produce sound/ds<name>.wav files.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			dec, err := engine.DefaultRegistry().ForPath(in)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}

			f, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("%w", err)
			}
			defer f.Close()

			src, err := dec.Decode(f)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", in, err)
			}
			defer src.Close()

			pcm, err := dgaudio.ConvertPCM16(src, rate, channels, 4096)
			if err != nil {
				return fmt.Errorf("converting %s: %w", in, err)
			}

			w, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("%w", err)
			}
			defer w.Close()

			if err := wav.WriteWAV16(w, rate, channels, pcm); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}

			a.log.Info("converted", "in", in, "out", out,
				"from_rate", src.SampleRate(), "to_rate", rate, "samples", len(pcm))
			return w.Close()
		},
	}

	// Doom's own sound effects are 11025 Hz mono.
	cmd.Flags().IntVar(&rate, "out-rate", 11025, "output sample rate in Hz")
	cmd.Flags().IntVar(&channels, "out-channels", 1, "output channel count")
	return cmd
}
