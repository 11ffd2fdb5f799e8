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
	"github.com/jetsetilly/atari800prefs/gui"
	"github.com/jetsetilly/atari800prefs/gui/panels"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements gui.GUI interface.
//
// MUST NOT be called from the main thread.
func (img *SdlImgui) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	img.polling.featureSet <- featureRequest{request: request, args: args}
	img.polling.interrupt()
	return <-img.polling.featureSetErr
}

// GetFeature implements gui.GUI interface.
//
// MUST NOT be called from the main thread.
func (img *SdlImgui) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	img.polling.featureGet <- featureRequest{request: request}
	img.polling.interrupt()
	return <-img.polling.featureGetData, <-img.polling.featureGetErr
}

// always returns nil as the data. the error is sent on featureSetErr
func (img *SdlImgui) serviceSetFeature(r featureRequest) {
	var err error

	switch r.request {
	case gui.ReqShowPreferences:
		if len(r.args) != 0 {
			err = curated.Errorf(gui.WrongArguments, r.request)
			break // switch
		}
		err = img.coord.ShowPreferences()

	case gui.ReqShowAbout:
		if len(r.args) != 0 {
			err = curated.Errorf(gui.WrongArguments, r.request)
			break // switch
		}
		err = img.coord.ShowAboutBox()

	case gui.ReqDismiss:
		if len(r.args) != 1 {
			err = curated.Errorf(gui.WrongArguments, r.request)
			break // switch
		}
		kind, ok := r.args[0].(panels.Kind)
		if !ok {
			err = curated.Errorf(gui.WrongArguments, r.request)
			break // switch
		}
		err = img.coord.Dismiss(kind)

	case gui.ReqQuit:
		img.quit()

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, r.request)
	}

	img.polling.featureSetErr <- err
}

func (img *SdlImgui) serviceGetFeature(r featureRequest) {
	var data gui.FeatureReqData
	var err error

	switch r.request {
	case gui.ReqOpenWindows:
		data = img.wm.openWindows()

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, r.request)
	}

	img.polling.featureGetData <- data
	img.polling.featureGetErr <- err
}
