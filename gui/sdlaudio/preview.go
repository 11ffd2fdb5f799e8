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
	"github.com/jetsetilly/atari800prefs/curated"
	"github.com/jetsetilly/atari800prefs/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of sample frames in the audio device buffer. the preview is
// queued in its entirety so the value is not critical
const bufferLength = 1024

// Preview plays a Clip through an SDL audio device.
//
// Must only be used from the goroutine that initialised SDL.
type Preview struct {
	clip Clip

	id       sdl.AudioDeviceID
	channels int
}

// NewPreview is the preferred method of initialisation for the Preview type.
// The audio device is not opened until Play() is called.
func NewPreview(clip Clip) *Preview {
	return &Preview{
		clip: clip,
	}
}

// Play the clip at the given volume. Any preview that is already playing is
// stopped first.
func (p *Preview) Play(volume float64, stereo bool) error {
	channels := 1
	if stereo {
		channels = 2
	}

	// the number of channels is fixed when the device is opened
	if p.id != 0 && p.channels != channels {
		p.Destroy()
	}

	if p.id == 0 {
		err := p.open(channels)
		if err != nil {
			return err
		}
	}

	sdl.ClearQueuedAudio(p.id)
	err := sdl.QueueAudio(p.id, float32Bytes(p.clip.Mix(volume, stereo)))
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}
	sdl.PauseAudioDevice(p.id, false)

	return nil
}

func (p *Preview) open(channels int) error {
	if sdl.WasInit(sdl.INIT_AUDIO) == 0 {
		err := sdl.InitSubSystem(sdl.INIT_AUDIO)
		if err != nil {
			return curated.Errorf("sdlaudio: %v", err)
		}
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(p.clip.SampleRate),
		Format:   sdl.AUDIO_F32,
		Channels: uint8(channels),
		Samples:  bufferLength,
	}

	var actual sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actual, 0)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	p.id = id
	p.channels = channels
	logger.Logf(logger.Allow, "sdlaudio", "preview device: %dHz, %d channel(s)", actual.Freq, actual.Channels)

	return nil
}

// Stop any preview that is playing. The device is kept open.
func (p *Preview) Stop() {
	if p.id == 0 {
		return
	}
	sdl.PauseAudioDevice(p.id, true)
	sdl.ClearQueuedAudio(p.id)
}

// Destroy closes the audio device. The Preview can still be used and will
// open a new device when required.
func (p *Preview) Destroy() {
	if p.id == 0 {
		return
	}
	sdl.CloseAudioDevice(p.id)
	p.id = 0
}
