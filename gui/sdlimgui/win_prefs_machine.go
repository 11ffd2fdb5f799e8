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

func (win *winPrefs) drawMachine() {
	rec := win.view.Record()
	snap := win.view.Snapshot()

	imguiLabelEnd(panels.LabelMachine)
	imguiRadioGroup("machine", panels.MachineModelOptions, snap.MachineModel, rec.SetMachineModel)

	imguiSeparator()

	imguiCheckbox(panels.LabelSpeedLimit, snap.SpeedLimit, rec.SetSpeedLimit)
	imguiCheckbox(panels.LabelDisableBasic, snap.DisableBasic, rec.SetDisableBasic)
}
