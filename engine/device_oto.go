// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// oto allows a single context per process, so it is created once and
// suspended/resumed across engine lifetimes.
var (
	otoMu      sync.Mutex
	otoCtx     *oto.Context
	otoOptions oto.NewContextOptions
)

func sharedOtoContext(opts oto.NewContextOptions) (*oto.Context, error) {
	otoMu.Lock()
	defer otoMu.Unlock()

	if otoCtx != nil {
		if opts.SampleRate != otoOptions.SampleRate || opts.ChannelCount != otoOptions.ChannelCount {
			return nil, fmt.Errorf("%w: output already opened at %d Hz, %d channels",
				ErrDeviceUnavailable, otoOptions.SampleRate, otoOptions.ChannelCount)
		}
		if err := otoCtx.Resume(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
		}
		return otoCtx, nil
	}

	ctx, ready, err := oto.NewContext(&opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	<-ready

	otoCtx = ctx
	otoOptions = opts
	return ctx, nil
}

// OtoDevice plays the mix through the system output using oto.
type OtoDevice struct {
	ctx    *oto.Context
	player *oto.Player
	mu     sync.Mutex
}

func NewOtoDevice(cfg Config) (*OtoDevice, error) {
	ctx, err := sharedOtoContext(oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.Channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   cfg.BufferSize,
	})
	if err != nil {
		return nil, err
	}

	return &OtoDevice{ctx: ctx}, nil
}

func (d *OtoDevice) Start(r io.Reader) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.player != nil {
		return ErrDeviceStarted
	}

	d.player = d.ctx.NewPlayer(r)
	d.player.Play()
	return nil
}

func (d *OtoDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var err error
	if d.player != nil {
		err = d.player.Close()
		d.player = nil
	}
	if suspendErr := d.ctx.Suspend(); suspendErr != nil && err == nil {
		err = suspendErr
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
