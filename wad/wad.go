// SPDX-License-Identifier: EPL-2.0

package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	headerSize = 12
	entrySize  = 16
	// NameLen is the longest lump name a WAD directory can hold.
	NameLen = 8

	readChunk = 1024
)

type Kind string

const (
	IWAD Kind = "IWAD"
	PWAD Kind = "PWAD"
)

type header struct {
	ID        [4]byte
	NumLumps  int32
	DirOffset int32
}

type entry struct {
	Offset int32
	Size   int32
	Name   [NameLen]byte
}

func (e entry) lump() Lump {
	name := e.Name[:]
	if n := bytes.IndexByte(name, 0); n >= 0 {
		name = name[:n]
	}
	return Lump{
		Name:   strings.ToUpper(string(name)),
		Offset: int64(e.Offset),
		Size:   int64(e.Size),
	}
}

// Lump is one directory entry. Name is upper case without NUL padding.
type Lump struct {
	Name   string
	Offset int64
	Size   int64
}

// Directory is the lump table of a WAD archive. Lump data is not kept.
type Directory struct {
	Kind  Kind
	Lumps []Lump
}

// Read parses the header and directory of the WAD in r.
func Read(r io.ReaderAt) (*Directory, error) {
	var h header
	if err := binary.Read(io.NewSectionReader(r, 0, headerSize), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWAD, err)
	}

	kind := Kind(h.ID[:])
	if kind != IWAD && kind != PWAD {
		return nil, ErrNotWAD
	}
	if h.NumLumps < 0 || h.DirOffset < headerSize {
		return nil, fmt.Errorf("%w: %d lumps at offset %d", ErrCorrupt, h.NumLumps, h.DirOffset)
	}

	end := int64(h.DirOffset) + int64(h.NumLumps)*entrySize
	if sized, ok := r.(interface{ Size() int64 }); ok && end > sized.Size() {
		return nil, fmt.Errorf("%w: directory ends at %d, file is %d bytes", ErrCorrupt, end, sized.Size())
	}

	// The count comes from the file, so entries are read in chunks and
	// memory grows only with what is actually there.
	d := &Directory{Kind: kind}
	sr := io.NewSectionReader(r, int64(h.DirOffset), end-int64(h.DirOffset))
	buf := make([]entry, min(int(h.NumLumps), readChunk))

	for left := int(h.NumLumps); left > 0; {
		chunk := buf[:min(left, len(buf))]
		if err := binary.Read(sr, binary.LittleEndian, chunk); err != nil {
			return nil, fmt.Errorf("%w: reading directory: %w", ErrCorrupt, err)
		}
		for _, e := range chunk {
			d.Lumps = append(d.Lumps, e.lump())
		}
		left -= len(chunk)
	}

	return d, nil
}

// Load reads the directory of the WAD file at path.
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// NumForName returns the index of the lump called name, ignoring case.
// Later lumps override earlier ones, so the last match wins.
func (d *Directory) NumForName(name string) (int, error) {
	if len(name) > NameLen {
		name = name[:NameLen]
	}

	for i := len(d.Lumps) - 1; i >= 0; i-- {
		if strings.EqualFold(d.Lumps[i].Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrLumpNotFound, name)
}

func (d *Directory) NumLumps() int { return len(d.Lumps) }
