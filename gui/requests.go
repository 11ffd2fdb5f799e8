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

package gui

// FeatureReq is used to request the setting or getting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData any

// List of valid feature requests. arguments must be of the type specified or
// the request will fail with the WrongArguments error.
const (
	// show the preferences window. the settings are reloaded from disk
	ReqShowPreferences FeatureReq = "ReqShowPreferences" // none

	// show the about box
	ReqShowAbout FeatureReq = "ReqShowAbout" // none

	// hide a panel window. dismissing the preferences window saves the
	// settings to disk
	ReqDismiss FeatureReq = "ReqDismiss" // panels.Kind

	// end the GUI. the Done() channel of the GUI will be closed
	ReqQuit FeatureReq = "ReqQuit" // none

	// get only. the list of panel windows that are open
	ReqOpenWindows FeatureReq = "ReqOpenWindows" // []panels.Kind
)
