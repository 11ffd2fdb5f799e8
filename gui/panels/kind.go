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

import "fmt"

// Kind identifies a type of top-level panel window.
type Kind int

// List of window kinds.
const (
	KindPreferences Kind = iota
	KindAbout
)

// Kinds lists all window kinds.
var Kinds = []Kind{KindPreferences, KindAbout}

// Window titles.
const (
	TitlePreferences = "Preferences"
	TitleAbout       = "About Atari800MacX"
)

// Initial size of the preferences window.
const (
	PreferencesWidth  = 680
	PreferencesHeight = 520
)

func (k Kind) String() string {
	switch k {
	case KindPreferences:
		return "preferences"
	case KindAbout:
		return "about"
	}
	return fmt.Sprintf("unknown window kind (%d)", int(k))
}

// Title returns the title of the window.
func (k Kind) Title() string {
	switch k {
	case KindPreferences:
		return TitlePreferences
	case KindAbout:
		return TitleAbout
	}
	return k.String()
}
