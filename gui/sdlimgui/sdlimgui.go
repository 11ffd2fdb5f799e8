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

package sdlimgui

import (
	"fmt"
	"io"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/atari800prefs/curated"
	"github.com/jetsetilly/atari800prefs/environment"
	"github.com/jetsetilly/atari800prefs/gui/panels"
	"github.com/jetsetilly/atari800prefs/gui/sdlaudio"
	"github.com/jetsetilly/atari800prefs/logger"
	"github.com/jetsetilly/atari800prefs/notifications"
	"github.com/jetsetilly/atari800prefs/resources"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "imgui.ini"

// SdlImgui is an sdl based host for the preferences panels using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     *gl21

	// the settings and configuration of the application
	env *environment.Environment

	// imgui window management. implements the panels.Factory interface
	wm *manager

	// the panels coordinator decides when windows are created and when the
	// settings are loaded and saved
	coord *panels.Coordinator

	// polling encapsulates the programmatic communication to the service loop
	polling *polling

	// audio preview is created on first use
	preview *sdlaudio.Preview

	// closed when the GUI has been asked to quit
	done     chan bool
	quitting bool
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
//
// MUST ONLY be called from the main thread.
func NewSdlImgui(env *environment.Environment) (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		env:     env,
		done:    make(chan bool),
	}

	// path to dear imgui ini file
	iniPath, err := resources.JoinPath(imguiIniFile)
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	img.plt, err = newPlatform(img)
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.rnd = newRenderer(img)
	err = img.rnd.start()
	if err != nil {
		_ = img.plt.destroy()
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.rnd.setupFonts()

	img.wm = newManager(img)
	img.coord = panels.NewCoordinator(img.wm, env.Settings)
	img.polling = newPolling(img)

	img.plt.window.Show()

	return img, nil
}

// Destroy implements GuiCreator interface. An open preferences window is
// dismissed, saving the settings, before the GUI is destroyed.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	if w, ok := img.coord.Window(panels.KindPreferences); ok && w.IsOpen() {
		err := img.coord.Dismiss(panels.KindPreferences)
		if err != nil {
			fmt.Fprintln(output, err)
		}
	}

	if img.preview != nil {
		img.preview.Destroy()
	}

	img.wm.destroy()
	img.rnd.destroy()

	err := img.plt.destroy()
	if err != nil {
		fmt.Fprintln(output, err)
	}

	img.context.Destroy()
}

// Done returns a channel that is closed when the GUI has been asked to quit.
// The GUI should then be destroyed.
func (img *SdlImgui) Done() <-chan bool {
	return img.done
}

// SetNotify sets the receiver of notifications from the panels.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) SetNotify(notify notifications.Notify) {
	img.coord.SetNotify(notify)
}

// quit closes the done channel. safe to call more than once.
func (img *SdlImgui) quit() {
	if img.quitting {
		return
	}
	img.quitting = true
	close(img.done)
}

// draw gui. called from service loop.
func (img *SdlImgui) draw() {
	img.wm.draw()
}

// playPreview plays the audio preview at the current volume.
func (img *SdlImgui) playPreview() {
	if img.preview == nil {
		clip := sdlaudio.DefaultTone()
		if img.env.PreviewSound != "" {
			c, err := sdlaudio.LoadClip(img.env.PreviewSound)
			if err != nil {
				logger.Log(img.env, "sdlimgui", err)
			} else {
				clip = c
			}
		}
		img.preview = sdlaudio.NewPreview(clip)
	}

	rec := img.env.Settings
	err := img.preview.Play(rec.AudioVolume(), rec.StereoEnabled())
	if err != nil {
		logger.Log(img.env, "sdlimgui", err)
	}
}

// stopPreview stops the audio preview if it is playing.
func (img *SdlImgui) stopPreview() {
	if img.preview != nil {
		img.preview.Stop()
	}
}
