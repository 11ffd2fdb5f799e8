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

package notifications

// Notice describes events that somehow change the configuration of the
// emulation.
type Notice string

// List of defined notifications.
const (
	// the preferences window has been shown and the settings have been
	// reloaded from disk
	NotifyPreferencesLoaded Notice = "NotifyPreferencesLoaded"

	// the preferences window has been dismissed and the settings have been
	// written to disk. the emulation should re-read the settings
	NotifyPreferencesSaved Notice = "NotifyPreferencesSaved"

	// the about box has been shown
	NotifyAboutShown Notice = "NotifyAboutShown"
)

// Notify is used for direct communication between the preferences panels and
// the emulation.
type Notify interface {
	Notify(notice Notice) error
}
