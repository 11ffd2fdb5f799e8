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
	"github.com/jetsetilly/atari800prefs/gui/panels"
)

func (win *winPrefs) drawVideo() {
	rec := win.view.Record()
	snap := win.view.Snapshot()

	imguiLabelEnd(panels.LabelTVMode)
	imguiRadioGroup("tvmode", panels.VideoModeOptions, snap.VideoMode, rec.SetVideoMode)

	imguiSeparator()

	imguiLabelEnd(panels.LabelScaleMode)
	imguiRadioGroup("scalemode", panels.ScalingModeOptions, snap.ScalingMode, rec.SetScalingMode)
	imguiCheckbox(panels.LabelFixAspect, snap.FixAspectFullscreen, rec.SetFixAspectFullscreen)
	imguiCheckbox(panels.LabelIntegralScaling, snap.OnlyIntegralScaling, rec.SetOnlyIntegralScaling)
	imguiCheckbox(panels.LabelShowFPS, snap.ShowFPS, rec.SetShowFPS)

	imguiSeparator()

	imguiLabelEnd(panels.LabelArtifacting)
	imguiRadioGroup("artifacting", panels.ArtifactingModeOptions, snap.ArtifactingMode, rec.SetArtifactingMode)
}
