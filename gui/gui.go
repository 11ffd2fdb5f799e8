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

// Package gui defines the interface between the application and the
// graphical front end. The front end runs on the main thread and is
// controlled from other goroutines with feature requests.
package gui

// GUI defines the operations that can be performed on the graphical front end
// from outside the GUI goroutine.
type GUI interface {
	// Send a request to set a GUI feature. The function waits for the request
	// to be serviced.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Return current state of GUI feature.
	GetFeature(request FeatureReq) (FeatureReqData, error)
}

// Sentinal errors.
const (
	UnsupportedGuiFeature = "gui: unsupported feature: %v"
	WrongArguments        = "gui: wrong arguments for %v"
)
