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
	"github.com/jetsetilly/atari800prefs/curated"
	"github.com/jetsetilly/atari800prefs/gui/panels"
)

// manager implements the panels.Factory interface and draws the windows it
// has created.
type manager struct {
	img *SdlImgui

	windows map[panels.Kind]managedWindow

	// windows are drawn in the order they were created
	order []panels.Kind
}

func newManager(img *SdlImgui) *manager {
	return &manager{
		img:     img,
		windows: make(map[panels.Kind]managedWindow),
	}
}

// CreateWindow implements the panels.Factory interface.
func (wm *manager) CreateWindow(kind panels.Kind) (panels.Window, error) {
	if _, ok := wm.windows[kind]; ok {
		return nil, curated.Errorf("sdlimgui: %s window already exists", kind)
	}

	var w managedWindow
	switch kind {
	case panels.KindPreferences:
		w = newWinPrefs(wm.img)
	case panels.KindAbout:
		w = newWinAbout(wm.img)
	default:
		return nil, curated.Errorf("sdlimgui: cannot create %s window", kind)
	}

	wm.windows[kind] = w
	wm.order = append(wm.order, kind)

	return w, nil
}

func (wm *manager) destroy() {
	for _, w := range wm.windows {
		w.destroy()
	}
	clear(wm.windows)
	wm.order = wm.order[:0]
}

func (wm *manager) draw() {
	wm.drawMenu()

	for _, kind := range wm.order {
		w := wm.windows[kind]

		open := w.IsOpen()
		w.draw()

		// the window has been closed with its close button. the coordinator
		// decides what that means for the window kind. errors have already
		// been logged by the coordinator
		if open && !w.IsOpen() {
			_ = wm.img.coord.Dismiss(kind)
			wm.img.polling.alert()
		}
	}
}

// anyOpen returns true if any window is open.
func (wm *manager) anyOpen() bool {
	for _, w := range wm.windows {
		if w.IsOpen() {
			return true
		}
	}
	return false
}

// openWindows returns the kinds of the open windows, in creation order.
func (wm *manager) openWindows() []panels.Kind {
	var open []panels.Kind
	for _, kind := range wm.order {
		if wm.windows[kind].IsOpen() {
			open = append(open, kind)
		}
	}
	return open
}
