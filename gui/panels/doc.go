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

// Package panels contains the Coordinator, which owns the top-level panel
// windows of the GUI, and the view models that the panel windows draw.
//
// The Coordinator creates each kind of window at most once, on the first
// request to show it. Windows are hidden, not destroyed, when they are
// dismissed and are reused on the next request. The preferences window loads
// the settings every time it is shown and saves them every time it is
// dismissed.
//
// The Coordinator knows nothing about how windows are drawn. Windows are
// created by a Factory, which is implemented by the GUI.
//
// The view models (PrefsView and About) contain everything a window needs to
// draw the panels that is not a direct read of the settings.Record. They do
// not depend on any GUI library and so can be tested without a display.
package panels
