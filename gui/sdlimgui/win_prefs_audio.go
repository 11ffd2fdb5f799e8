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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/atari800prefs/gui/panels"
)

func (win *winPrefs) drawAudio() {
	rec := win.view.Record()
	snap := win.view.Snapshot()

	imguiCheckbox(panels.LabelEnableSound, snap.AudioEnabled, rec.SetAudioEnabled)

	imguiSeparator()

	// volume and stereo have no effect when sound is disabled
	imguiDisabled(win.view.AudioControlsDisabled(), func() {
		imguiLabel(panels.LabelVolume)
		volume := float32(snap.AudioVolume)
		if imgui.SliderFloatV("##volume", &volume, 0.0, 1.0, "", imgui.SliderFlagsNone) {
			rec.SetAudioVolume(float64(volume))
		}
		imgui.SameLine()
		imgui.Text(win.view.VolumeLabel())

		imguiCheckbox(panels.LabelStereo, snap.StereoEnabled, rec.SetStereoEnabled)

		imgui.Spacing()
		if imgui.Button(panels.LabelTestSound) {
			win.img.playPreview()
		}
	})
}
