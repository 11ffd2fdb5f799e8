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
	"github.com/jetsetilly/atari800prefs/gui"
	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that the service loop waits for an event. the
// shorter period is used when a panel window is open.
const (
	activeSleepPeriod = 50
	idleSleepPeriod   = 500
)

type polling struct {
	img *SdlImgui

	// wake is used to preempt the timeout when we want the next frame to be
	// drawn immediately. for example, closing a window might feel laggy
	// without it
	wake bool

	// SetFeature() and GetFeature() hand off requests to these channels for
	// servicing in the main thread
	featureSet     chan featureRequest
	featureSetErr  chan error
	featureGet     chan featureRequest
	featureGetData chan gui.FeatureReqData
	featureGetErr  chan error
}

func newPolling(img *SdlImgui) *polling {
	return &polling{
		img:            img,
		featureSet:     make(chan featureRequest, 1),
		featureSetErr:  make(chan error, 1),
		featureGet:     make(chan featureRequest, 1),
		featureGetData: make(chan gui.FeatureReqData, 1),
		featureGetErr:  make(chan error, 1),
	}
}

// alert forces the next call to wait() to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

// interrupt the wait() function from another goroutine.
func (pol *polling) interrupt() {
	_, _ = sdl.PushEvent(&sdl.UserEvent{Type: sdl.USEREVENT})
}

// wait services any pending feature requests and then waits for an SDL event
// or for the timeout to elapse. returns nil if there is no event.
func (pol *polling) wait() sdl.Event {
	select {
	case r := <-pol.featureSet:
		pol.img.serviceSetFeature(r)
	case r := <-pol.featureGet:
		pol.img.serviceGetFeature(r)
	default:
	}

	var timeout int

	if pol.wake {
		pol.wake = false
	} else if pol.img.wm.anyOpen() {
		timeout = activeSleepPeriod
	} else {
		timeout = idleSleepPeriod
	}

	return sdl.WaitEventTimeout(timeout)
}
