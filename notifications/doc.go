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

// Package notifications allow communication from the preferences panels to
// the emulation instance. The emulation is told when the settings on disk have
// changed so that it can reconfigure the emulated machine.
//
// Notifications are sometimes passed onto the GUI to indicate to the user the
// event that has happened (eg. preferences saved). For some notifications
// however, it is appropriate for the emulation instance to deal with the
// notification invisibly.
package notifications
