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
	"github.com/jetsetilly/atari800prefs/logger"
)

// alpha value of disabled widgets
const disabledAlpha = 0.3

// imguiLabel aligns text with widget borders and positions cursor so next
// widget will follow the label.
func imguiLabel(text string) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
	imgui.SameLine()
}

// imguiLabelEnd is the same imguiLabel but without the instruction to put the
// next widget on the same line.
func imguiLabelEnd(text string) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
}

// pads imgui.Separator with additional spacing.
func imguiSeparator() {
	imgui.Spacing()
	imgui.Separator()
	imgui.Spacing()
}

// imguiDisabled draws the widgets in the region() function in a disabled
// state if disabled is true.
func imguiDisabled(disabled bool, region func()) {
	if disabled {
		imgui.PushItemFlag(imgui.ItemFlagsDisabled, true)
		imgui.PushStyleVarFloat(imgui.StyleVarAlpha, disabledAlpha)
		defer imgui.PopItemFlag()
		defer imgui.PopStyleVar()
	}
	region()
}

// imguiCheckbox draws a checkbox for a boolean value. the set function is
// called when the checkbox is clicked.
func imguiCheckbox(label string, v bool, set func(bool)) {
	if imgui.Checkbox(label, &v) {
		set(v)
	}
}

// imguiRadioGroup draws a row of radio buttons, one for each option. the set
// function is called when a button is clicked. errors from the set function
// are logged.
func imguiRadioGroup[T comparable](id string, options []panels.Option[T], current T, set func(T) error) {
	imgui.PushID(id)
	defer imgui.PopID()

	for i, o := range options {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.RadioButton(o.Label, o.Value == current) && o.Value != current {
			err := set(o.Value)
			if err != nil {
				logger.Log(logger.Allow, "sdlimgui", err)
			}
		}
	}
}

// imguiWrappedText draws text that wraps at the edge of the window.
func imguiWrappedText(text string) {
	imgui.PushTextWrapPos()
	imgui.Text(text)
	imgui.PopTextWrapPos()
}
