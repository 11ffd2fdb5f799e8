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

type winAbout struct {
	windowManagement
	img *SdlImgui

	about panels.About
}

func newWinAbout(img *SdlImgui) *winAbout {
	return &winAbout{
		img:   img,
		about: panels.NewAbout(),
	}
}

func (win *winAbout) Kind() panels.Kind {
	return panels.KindAbout
}

func (win *winAbout) destroy() {
}

func (win *winAbout) draw() {
	if !win.open {
		return
	}

	win.applyFocus()
	imgui.SetNextWindowPosV(imgui.Vec2{X: 80, Y: 80}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})

	if imgui.BeginV(panels.TitleAbout, &win.open, imgui.WindowFlagsAlwaysAutoResize|imgui.WindowFlagsNoCollapse) {
		imgui.Text(win.about.Name)
		imgui.Text(win.about.Version)
		imguiSeparator()
		imgui.Text(win.about.Copyright)
		imgui.Spacing()
		imgui.Text(win.about.Credits)
	}
	imgui.End()
}
