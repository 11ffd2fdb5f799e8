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

package panels

// Tab identifies a tab of the preferences window.
type Tab int

// List of tabs in the order they appear in the preferences window.
const (
	TabVideo Tab = iota
	TabAudio
	TabInput
	TabMachine
	TabPeripherals
	TabPaths
)

// Tabs lists all tabs in display order.
var Tabs = []Tab{TabVideo, TabAudio, TabInput, TabMachine, TabPeripherals, TabPaths}

var tabLabels = []string{"Video", "Audio", "Input", "Machine", "Peripherals", "Paths"}

func (t Tab) String() string {
	if t < TabVideo || t > TabPaths {
		return "unknown"
	}
	return tabLabels[t]
}

// Placeholder returns true if the tab's settings are still managed by the
// legacy settings window. Placeholder tabs read and write no settings.
func (t Tab) Placeholder() bool {
	switch t {
	case TabInput, TabPeripherals, TabPaths:
		return true
	}
	return false
}

// placeholderFollowUp is the second line of every placeholder tab.
const placeholderFollowUp = "This tab will be implemented in a future update."

// PlaceholderText returns the explanatory text for a placeholder tab. Returns
// nil for tabs that are not placeholders.
func (t Tab) PlaceholderText() []string {
	switch t {
	case TabInput:
		return []string{"Input preferences are managed in the ObjC Preferences window.", placeholderFollowUp}
	case TabPeripherals:
		return []string{"Peripheral preferences are managed in the ObjC Preferences window.", placeholderFollowUp}
	case TabPaths:
		return []string{"Path preferences are managed in the ObjC Preferences window.", placeholderFollowUp}
	}
	return nil
}
