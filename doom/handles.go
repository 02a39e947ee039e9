// SPDX-License-Identifier: EPL-2.0

package doom

import "bytes"

// SongHandle is the opaque value the host keeps for a registered song.
// Zero is never issued.
type SongHandle uint32

type songRegistry struct {
	names map[SongHandle]string
	next  SongHandle
}

func newSongRegistry() *songRegistry {
	return &songRegistry{names: make(map[SongHandle]string)}
}

// register stores the name held in data, which ends at the first NUL byte.
func (r *songRegistry) register(data []byte) SongHandle {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}

	r.next++
	r.names[r.next] = string(data)
	return r.next
}

func (r *songRegistry) unregister(h SongHandle) error {
	if _, ok := r.names[h]; !ok {
		return ErrUnknownHandle
	}
	delete(r.names, h)
	return nil
}

func (r *songRegistry) lookup(h SongHandle) (string, bool) {
	name, ok := r.names[h]
	return name, ok
}

func (r *songRegistry) len() int { return len(r.names) }
