// SPDX-License-Identifier: EPL-2.0

package engine_test

import (
	"bytes"
	"fmt"
	"testing/fstest"

	"github.com/ik5/dgaudio/engine"
	"github.com/ik5/dgaudio/formats/wav"
)

// ExampleEngine_Render mixes a sound without an audio device.
func ExampleEngine_Render() {
	samples := make([]int16, 100)
	for i := range samples {
		samples[i] = 16384
	}
	wavData := new(bytes.Buffer)
	_ = wav.WriteWAV16(wavData, 11025, 1, samples)

	assets := fstest.MapFS{"sound/dspistol.wav": {Data: wavData.Bytes()}}
	cfg := engine.Config{AssetDir: ".", SampleRate: 11025, Channels: 1}

	e, err := engine.New(cfg, engine.WithFS(assets), engine.WithDevice(&engine.NullDevice{}))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer e.Close()

	_ = e.PlaySound("sound/dspistol.wav")
	fmt.Printf("Playing: %d\n", e.Voices())

	out := make([]float32, 150)
	n := e.Render(out)
	fmt.Printf("Rendered %d samples, first %.2f, last %.2f\n", n, out[0], out[n-1])
	fmt.Printf("Playing: %d\n", e.Voices())
	// Output:
	// Playing: 1
	// Rendered 150 samples, first 0.50, last 0.00
	// Playing: 0
}
