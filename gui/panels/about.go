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

import (
	"fmt"

	"github.com/jetsetilly/atari800prefs/version"
)

// Static text of the about box.
const (
	Copyright = "Copyright © 2002–2026 Mark Grebe"
	Credits   = "Based on the Atari 800 emulator by David Firth.\nAdditional contributors listed in Credits."
)

// About is the view model for the about box.
type About struct {
	Name      string
	Version   string
	Copyright string
	Credits   string
}

// NewAbout returns the About information for the running binary.
func NewAbout() About {
	number, revision, _ := version.Version()
	return newAbout(number, revision)
}

// newAbout returns the About information for the version number and revision.
// the revision is omitted from the version line if it is empty.
func newAbout(number string, revision string) About {
	v := fmt.Sprintf("Version %s", number)
	if revision != "" {
		v = fmt.Sprintf("%s (%s)", v, revision)
	}
	return About{
		Name:      version.ApplicationName,
		Version:   v,
		Copyright: Copyright,
		Credits:   Credits,
	}
}
