// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/dgaudio/config"
)

const envPrefix = "DGAUDIO"

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "dgaudio",
		Short:         "Play Doom sound effects and music from files",
		Long:          `dgaudio resolves Doom sound effects to sound/ds<name>.wav and music to sound/<name>.mp3 under an asset directory and plays, renders or converts them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.String("asset-dir", "", "directory containing sound/")
	flags.String("wad", "", "WAD file for lump lookups")
	flags.String("backend", "", "audio output: oto or null")
	flags.Int("sample-rate", 0, "mixer sample rate in Hz")
	flags.Int("channels", 0, "mixer channel count")
	flags.Duration("buffer-size", 0, "output latency hint")
	flags.Bool("sfx-prefix", true, `prefix sound lump names with "ds"`)
	flags.String("log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newSfxCmd(a),
		newMusicCmd(a),
		newRenderCmd(a),
		newConvertCmd(a),
		newDevicesCmd(),
	)

	return root
}

// load builds the config: defaults, then the config file, then environment
// and flags.
func (a *app) load(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cfg := config.Default()
	if path := a.v.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	overlay(a.v, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func overlay(v *viper.Viper, cfg *config.Config) {
	if v.IsSet("asset-dir") {
		cfg.AssetDir = v.GetString("asset-dir")
	}
	if v.IsSet("wad") {
		cfg.WAD = v.GetString("wad")
	}
	if v.IsSet("backend") {
		cfg.Backend = v.GetString("backend")
	}
	if v.IsSet("sample-rate") {
		cfg.SampleRate = v.GetInt("sample-rate")
	}
	if v.IsSet("channels") {
		cfg.Channels = v.GetInt("channels")
	}
	if v.IsSet("buffer-size") {
		cfg.BufferSize = v.GetDuration("buffer-size")
	}
	if v.IsSet("sfx-prefix") {
		cfg.SfxPrefix = v.GetBool("sfx-prefix")
	}
	if v.IsSet("log-level") {
		cfg.LogLevel = v.GetString("log-level")
	}
}
