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
	"github.com/jetsetilly/atari800prefs/version"
)

// menu entries
const (
	menuAbout       = "About " + version.ApplicationName
	menuPreferences = "Preferences..."
	menuQuit        = "Quit"
)

// errors from the coordinator have already been logged
func (wm *manager) drawMenu() {
	if !imgui.BeginMainMenuBar() {
		return
	}

	if imgui.BeginMenu(version.ApplicationName) {
		if imgui.MenuItemV(menuAbout, "", wm.isOpen(panels.KindAbout), true) {
			_ = wm.img.coord.ShowAboutBox()
		}

		imguiSeparator()

		if imgui.MenuItemV(menuPreferences, "Ctrl+,", wm.isOpen(panels.KindPreferences), true) {
			_ = wm.img.coord.ShowPreferences()
		}

		imguiSeparator()

		if imgui.MenuItemV(menuQuit, "Ctrl+Q", false, true) {
			wm.img.quit()
		}

		imgui.EndMenu()
	}

	imgui.EndMainMenuBar()
}

func (wm *manager) isOpen(kind panels.Kind) bool {
	w, ok := wm.windows[kind]
	return ok && w.IsOpen()
}
