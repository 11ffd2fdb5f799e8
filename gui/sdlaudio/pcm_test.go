// This file is part of atari800prefs.
//
// atari800prefs is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atari800prefs is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atari800prefs.  If not, see <https://www.gnu.org/licenses/>.

package sdlaudio

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/atari800prefs/curated"
	"github.com/jetsetilly/atari800prefs/test"
)

func TestTone(t *testing.T) {
	c := Tone(440, 100*time.Millisecond, 8000)
	test.ExpectEquality(t, c.SampleRate, 8000)
	test.ExpectEquality(t, len(c.Data), 800)
	test.ExpectEquality(t, c.Duration(), 100*time.Millisecond)

	// faded at both ends
	test.ExpectEquality(t, c.Data[0], float32(0))
	test.ExpectEquality(t, c.Data[len(c.Data)-1], float32(0))

	var peak float32
	for _, v := range c.Data {
		peak = max(peak, float32(math.Abs(float64(v))))
	}
	test.ExpectSuccess(t, peak <= toneAmplitude)
	test.ExpectApproximate(t, float64(peak), toneAmplitude, 0.05)

	d := DefaultTone()
	test.ExpectEquality(t, d.SampleRate, DefaultSampleRate)
	test.ExpectEquality(t, d.Duration(), toneDuration)
}

func TestMix(t *testing.T) {
	c := Clip{Data: []float32{0.5, -1.0, 1.0}, SampleRate: 100}

	m := c.Mix(1.0, false)
	test.DemandEquality(t, len(m), 3)
	test.ExpectEquality(t, m[0], float32(0.5))
	test.ExpectEquality(t, m[1], float32(-1.0))

	m = c.Mix(0.5, true)
	test.DemandEquality(t, len(m), 6)
	test.ExpectEquality(t, m[0], float32(0.25))
	test.ExpectEquality(t, m[1], float32(0.25))
	test.ExpectEquality(t, m[2], float32(-0.5))
	test.ExpectEquality(t, m[3], float32(-0.5))

	// volume is clamped
	m = c.Mix(2.0, false)
	test.ExpectEquality(t, m[2], float32(1.0))
	m = c.Mix(-1.0, false)
	test.ExpectEquality(t, m[0], float32(0.0))

	test.ExpectEquality(t, Clip{}.Duration(), time.Duration(0))
}

func TestFloat32Bytes(t *testing.T) {
	b := float32Bytes([]float32{1.0, -0.5})
	test.DemandEquality(t, len(b), 8)
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(b[0:])), float32(1.0))
	test.ExpectEquality(t, math.Float32frombits(binary.LittleEndian.Uint32(b[4:])), float32(-0.5))
}

func TestStereo16ToMono(t *testing.T) {
	b := make([]byte, 9)
	binary.LittleEndian.PutUint16(b[0:], uint16(16384))
	binary.LittleEndian.PutUint16(b[2:], uint16(16384))
	neg := int16(-32768)
	binary.LittleEndian.PutUint16(b[4:], uint16(neg))
	binary.LittleEndian.PutUint16(b[6:], 0)

	m := stereo16ToMono(b)
	test.DemandEquality(t, len(m), 2)
	test.ExpectEquality(t, m[0], float32(0.5))
	test.ExpectEquality(t, m[1], float32(-0.5))
}

func writeWAV(t *testing.T, filename string, channels int, data []int) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 22050, 16, channels, 1)
	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: 22050},
		Data:           data,
		SourceBitDepth: 16,
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, enc.Close())
}

func TestLoadWAV(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "preview.wav")
	writeWAV(t, filename, 2, []int{16384, 0, -32768, -32768, 8192, 8192})

	c, err := LoadClip(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.SampleRate, 22050)
	test.DemandEquality(t, len(c.Data), 3)
	test.ExpectEquality(t, c.Data[0], float32(0.25))
	test.ExpectEquality(t, c.Data[1], float32(-1.0))
	test.ExpectEquality(t, c.Data[2], float32(0.25))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadClip(filepath.Join(dir, "preview.ogg"))
	test.ExpectSuccess(t, curated.Is(err, UnsupportedSound))

	_, err = LoadClip(filepath.Join(dir, "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, DecodeError))

	bad := filepath.Join(dir, "bad.wav")
	test.DemandSuccess(t, os.WriteFile(bad, []byte("not a wav file"), 0o600))
	_, err = LoadClip(bad)
	test.ExpectSuccess(t, curated.Is(err, DecodeError))

	_, err = DecodeMP3(bytes.NewReader([]byte("not an mp3 file")))
	test.ExpectFailure(t, err)
}

func TestIntBuffer(t *testing.T) {
	_, err := fromIntBuffer(&audio.IntBuffer{Data: []int{0}, SourceBitDepth: 16})
	test.ExpectFailure(t, err)

	_, err = fromIntBuffer(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           []int{0},
		SourceBitDepth: 4,
	})
	test.ExpectFailure(t, err)

	// 8 bit data is unsigned
	c, err := fromIntBuffer(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           []int{128, 0, 192},
		SourceBitDepth: 8,
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Data[0], float32(0.0))
	test.ExpectEquality(t, c.Data[1], float32(-1.0))
	test.ExpectEquality(t, c.Data[2], float32(0.5))
}
