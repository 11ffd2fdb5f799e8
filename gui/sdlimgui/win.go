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

// managedWindow is a panel window that is drawn by the manager.
type managedWindow interface {
	panels.Window

	draw()
	destroy()
}

// windowManagement can be embedded in a window struct to provide the
// Show(), Hide() and IsOpen() parts of the panels.Window interface.
type windowManagement struct {
	// prefer use of IsOpen()/Show()/Hide() instead of accessing the open
	// field directly. the open field is given to imgui.BeginV() so that the
	// window's close button works
	open bool

	// the window should be brought to the front on the next frame
	focus bool
}

func (wm *windowManagement) Show() {
	wm.open = true
	wm.focus = true
}

func (wm *windowManagement) Hide() {
	wm.open = false
}

func (wm *windowManagement) IsOpen() bool {
	return wm.open
}

// applyFocus should be called before the window's imgui.BeginV().
func (wm *windowManagement) applyFocus() {
	if wm.focus {
		imgui.SetNextWindowFocus()
		wm.focus = false
	}
}
