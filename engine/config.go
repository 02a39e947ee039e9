// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"time"
)

// Config describes the mixer output format and where assets live.
type Config struct {
	// AssetDir is the root that sound paths are resolved against.
	AssetDir string
	// SampleRate of the mixed output in Hz.
	SampleRate int
	// Channels of the mixed output.
	Channels int
	// BufferSize is the device latency hint. Zero lets the device choose.
	BufferSize time.Duration
}

func DefaultConfig() Config {
	return Config{
		AssetDir:   ".",
		SampleRate: 44100,
		Channels:   2,
		BufferSize: 50 * time.Millisecond,
	}
}

func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("%w: channels %d", ErrInvalidConfig, c.Channels)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: buffer size %s", ErrInvalidConfig, c.BufferSize)
	}
	return nil
}
