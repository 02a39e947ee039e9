// SPDX-License-Identifier: EPL-2.0

package dgaudio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/ik5/dgaudio/config"
	"github.com/ik5/dgaudio/doom"
	"github.com/ik5/dgaudio/formats/wav"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Backend = config.BackendNull
	cfg.SampleRate = 11025
	cfg.Channels = 1
	return cfg
}

func assets(t *testing.T) fstest.MapFS {
	t.Helper()

	samples := make([]int16, 100)
	for i := range samples {
		samples[i] = 16384
	}

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, 11025, 1, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	return fstest.MapFS{
		"sound/dspistol.wav": {Data: buf.Bytes()},
		// not an mp3
		"sound/d_e1m1.mp3": {Data: []byte("ID3")},
	}
}

func openSystem(t *testing.T, cfg config.Config) *System {
	t.Helper()

	sys, err := Open(cfg, WithFS(assets(t)), WithLogger(quiet()))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := sys.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { _ = sys.Close() })
	return sys
}

func TestSystem_SoundEffect(t *testing.T) {
	t.Parallel()

	sys := openSystem(t, testConfig())

	if got := sys.Sound.StartSound(&doom.SfxInfo{Name: "pistol"}, 0, 127, 128); got != 0 {
		t.Fatalf("StartSound() = %d, want 0", got)
	}

	pcm := RenderPCM16(sys.Engine(), 200, 64)
	if len(pcm) != 200 {
		t.Fatalf("RenderPCM16() = %d samples, want 200", len(pcm))
	}
	for i := range 100 {
		if pcm[i] != 16383 {
			t.Fatalf("pcm[%d] = %d, want 16383", i, pcm[i])
		}
	}
	for i := 100; i < 200; i++ {
		if pcm[i] != 0 {
			t.Fatalf("pcm[%d] = %d, want 0", i, pcm[i])
		}
	}
}

func TestSystem_MissingSoundIgnored(t *testing.T) {
	t.Parallel()

	sys := openSystem(t, testConfig())

	if got := sys.Sound.StartSound(&doom.SfxInfo{Name: "nosuch"}, 0, 127, 128); got != 0 {
		t.Errorf("StartSound() = %d, want 0", got)
	}
	if v := sys.Engine().Voices(); v != 0 {
		t.Errorf("Voices() = %d, want 0", v)
	}
}

func TestSystem_UnplayableSong(t *testing.T) {
	t.Parallel()

	sys := openSystem(t, testConfig())

	for _, name := range []string{"d_e1m1", "d_e1m2"} {
		h := sys.Music.RegisterSong([]byte(name))
		sys.Music.PlaySong(h, true)
		if sys.Music.MusicIsPlaying() {
			t.Errorf("MusicIsPlaying() = true for %s", name)
		}
	}
}

func TestSystem_Close(t *testing.T) {
	t.Parallel()

	sys, err := Open(testConfig(), WithFS(assets(t)), WithLogger(quiet()))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if sys.Engine() != nil {
		t.Fatal("Engine() != nil before Init")
	}

	if err := sys.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if sys.Engine() == nil {
		t.Fatal("Engine() = nil after Init")
	}

	if err := sys.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if sys.Engine() != nil {
		t.Error("Engine() != nil after Close")
	}
	if got := sys.Sound.StartSound(&doom.SfxInfo{Name: "pistol"}, 0, 127, 128); got != -1 {
		t.Errorf("StartSound() after Close = %d, want -1", got)
	}
}

func TestOpen_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Backend = "alsa"

	if _, err := Open(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Open() error = %v, want config.ErrInvalid", err)
	}
}

func writeWAD(t *testing.T, dir string, names ...string) {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("IWAD")
	_ = binary.Write(&buf, binary.LittleEndian, int32(len(names)))
	_ = binary.Write(&buf, binary.LittleEndian, int32(12))
	for _, name := range names {
		var entry [16]byte
		binary.LittleEndian.PutUint32(entry[0:], 12)
		copy(entry[8:], name)
		buf.Write(entry[:])
	}

	if err := os.WriteFile(filepath.Join(dir, "doom1.wad"), buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestOpen_WAD(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeWAD(t, dir, "PLAYPAL", "DSPISTOL", "DSSHOTGN")

	cfg := testConfig()
	cfg.AssetDir = dir
	cfg.WAD = "doom1.wad"

	sys := openSystem(t, cfg)
	if sys.Lumps() == nil || sys.Lumps().NumLumps() != 3 {
		t.Fatalf("Lumps() = %v, want 3 lumps", sys.Lumps())
	}

	if got := sys.Sound.GetSfxLumpNum(&doom.SfxInfo{Name: "shotgn"}); got != 2 {
		t.Errorf("GetSfxLumpNum(shotgn) = %d, want 2", got)
	}
	if got := sys.Sound.GetSfxLumpNum(&doom.SfxInfo{Name: "bfg"}); got != -1 {
		t.Errorf("GetSfxLumpNum(bfg) = %d, want -1", got)
	}
}

func TestOpen_MissingWAD(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.AssetDir = t.TempDir()
	cfg.WAD = "doom2.wad"

	if _, err := Open(cfg, WithLogger(quiet())); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() error = %v, want os.ErrNotExist", err)
	}
}
