// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"io"
	"sync"
)

// Device pulls mixed float32 little-endian PCM from r until closed.
type Device interface {
	Start(r io.Reader) error
	Close() error
}

// NullDevice never pulls. Use Engine.Render to drive the mix by hand, which
// is what tests and offline rendering do.
type NullDevice struct {
	mu      sync.Mutex
	started bool
}

func (d *NullDevice) Start(r io.Reader) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return ErrDeviceStarted
	}
	d.started = true
	return nil
}

func (d *NullDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.started = false
	return nil
}

// Started reports whether Start was called and Close was not.
func (d *NullDevice) Started() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.started
}
