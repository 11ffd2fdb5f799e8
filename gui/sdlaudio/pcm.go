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
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/atari800prefs/curated"
)

// Sentinal error patterns.
const (
	UnsupportedSound = "sdlaudio: unsupported sound file: %s"
	DecodeError      = "sdlaudio: %s: %v"
)

// DefaultSampleRate is the sample rate of generated tones.
const DefaultSampleRate = 44100

// the default tone is an A4 note
const (
	toneFrequency = 440.0
	toneDuration  = 500 * time.Millisecond
	toneAmplitude = 0.5
	toneFade      = 10 * time.Millisecond
)

// Clip is a sound made of mono samples in the range -1.0 to 1.0.
type Clip struct {
	Data       []float32
	SampleRate int
}

// Duration returns the playing time of the clip.
func (c Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(c.Data)) * time.Second / time.Duration(c.SampleRate)
}

// Mix returns the samples of the clip scaled by volume. The volume is clamped
// to the range 0.0 to 1.0. If stereo is true the samples are interleaved for
// two channels, with the same sample in each channel.
func (c Clip) Mix(volume float64, stereo bool) []float32 {
	volume = min(max(volume, 0.0), 1.0)

	channels := 1
	if stereo {
		channels = 2
	}

	out := make([]float32, len(c.Data)*channels)
	for i, v := range c.Data {
		s := min(max(v*float32(volume), -1.0), 1.0)
		for ch := range channels {
			out[i*channels+ch] = s
		}
	}

	return out
}

// Tone generates a sine wave of the given frequency and duration. The start
// and end of the tone are faded to prevent clicks.
func Tone(frequency float64, duration time.Duration, sampleRate int) Clip {
	n := int(duration.Seconds() * float64(sampleRate))
	fade := int(toneFade.Seconds() * float64(sampleRate))

	c := Clip{
		Data:       make([]float32, n),
		SampleRate: sampleRate,
	}

	for i := range n {
		v := math.Sin(2 * math.Pi * frequency * float64(i) / float64(sampleRate))
		if i < fade {
			v *= float64(i) / float64(fade)
		}
		if e := n - 1 - i; e < fade {
			v *= float64(e) / float64(fade)
		}
		c.Data[i] = float32(v * toneAmplitude)
	}

	return c
}

// DefaultTone returns the tone used when no preview sound file is specified.
func DefaultTone() Clip {
	return Tone(toneFrequency, toneDuration, DefaultSampleRate)
}

// LoadClip reads a WAV or MP3 file. The type of file is decided by the
// filename extension.
func LoadClip(filename string) (Clip, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".wav" && ext != ".mp3" {
		return Clip{}, curated.Errorf(UnsupportedSound, filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return Clip{}, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}
	defer f.Close()

	var c Clip
	switch ext {
	case ".wav":
		c, err = DecodeWAV(f)
	case ".mp3":
		c, err = DecodeMP3(f)
	}
	if err != nil {
		return Clip{}, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}

	return c, nil
}

// DecodeWAV reads PCM data from a WAV file and converts it to a Clip.
// Multi-channel data is mixed down to mono.
func DecodeWAV(r io.ReadSeeker) (Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Clip{}, curated.Errorf("sdlaudio: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, curated.Errorf("sdlaudio: %v", err)
	}

	return fromIntBuffer(buf)
}

func fromIntBuffer(buf *audio.IntBuffer) (Clip, error) {
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return Clip{}, curated.Errorf("sdlaudio: no channels in pcm data")
	}
	if buf.SourceBitDepth < 8 || buf.SourceBitDepth > 32 {
		return Clip{}, curated.Errorf("sdlaudio: unsupported bit depth (%d)", buf.SourceBitDepth)
	}

	channels := buf.Format.NumChannels
	scale := float64(int64(1) << (buf.SourceBitDepth - 1))

	// 8 bit wav data is unsigned
	var offset int
	if buf.SourceBitDepth == 8 {
		offset = 128
	}

	c := Clip{
		Data:       make([]float32, len(buf.Data)/channels),
		SampleRate: buf.Format.SampleRate,
	}

	for i := range c.Data {
		var sum float64
		for ch := range channels {
			sum += float64(buf.Data[i*channels+ch] - offset)
		}
		c.Data[i] = float32(min(max(sum/float64(channels)/scale, -1.0), 1.0))
	}

	return c, nil
}

// DecodeMP3 decodes an MP3 stream and converts it to a Clip. The decoded
// stereo data is mixed down to mono.
func DecodeMP3(r io.Reader) (Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Clip{}, curated.Errorf("sdlaudio: %v", err)
	}

	b, err := io.ReadAll(dec)
	if err != nil {
		return Clip{}, curated.Errorf("sdlaudio: %v", err)
	}

	return Clip{
		Data:       stereo16ToMono(b),
		SampleRate: dec.SampleRate(),
	}, nil
}

// stereo16ToMono converts interleaved 16bit little-endian stereo samples to
// mono. A trailing incomplete frame is ignored.
func stereo16ToMono(b []byte) []float32 {
	const frameSize = 4

	out := make([]float32, len(b)/frameSize)
	for i := range out {
		l := int16(binary.LittleEndian.Uint16(b[i*frameSize:]))
		r := int16(binary.LittleEndian.Uint16(b[i*frameSize+2:]))
		out[i] = (float32(l) + float32(r)) / 2 / 32768
	}

	return out
}

// float32Bytes converts samples to the little-endian byte order expected by
// an AUDIO_F32 device.
func float32Bytes(data []float32) []byte {
	b := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}
