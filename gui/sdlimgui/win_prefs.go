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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/atari800prefs/gui/panels"
)

type winPrefs struct {
	windowManagement
	img *SdlImgui

	// view of the settings record in the environment
	view *panels.PrefsView

	// value of view.Changes() at the end of the previous frame
	changes int
}

func newWinPrefs(img *SdlImgui) *winPrefs {
	return &winPrefs{
		img:  img,
		view: panels.NewPrefsView(img.env.Settings),
	}
}

func (win *winPrefs) Kind() panels.Kind {
	return panels.KindPreferences
}

// Hide implements the panels.Window interface. Any audio preview is stopped.
func (win *winPrefs) Hide() {
	win.windowManagement.Hide()
	win.img.stopPreview()
}

func (win *winPrefs) destroy() {
	win.view.Destroy()
}

func (win *winPrefs) draw() {
	if !win.open {
		return
	}

	win.applyFocus()
	imgui.SetNextWindowPosV(imgui.Vec2{X: 40, Y: 40}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: panels.PreferencesWidth, Y: panels.PreferencesHeight}, imgui.ConditionFirstUseEver)

	if imgui.BeginV(panels.TitlePreferences, &win.open, imgui.WindowFlagsNoCollapse) {
		if imgui.BeginTabBar("##preferencesTabs") {
			for _, tab := range panels.Tabs {
				if imgui.BeginTabItem(tab.String()) {
					win.drawTab(tab)
					imgui.EndTabItem()
				}
			}
			imgui.EndTabBar()
		}

		imguiSeparator()

		if imgui.Button(panels.LabelRevert) {
			win.view.Record().Reset()
		}
	}
	imgui.End()

	// the settings have changed during the frame. draw the next frame
	// immediately so the change is seen without waiting for an event
	if c := win.view.Changes(); c != win.changes {
		win.changes = c
		win.img.polling.alert()
	}
}

func (win *winPrefs) drawTab(tab panels.Tab) {
	imgui.Spacing()

	if tab.Placeholder() {
		win.drawPlaceholder(tab)
		return
	}

	switch tab {
	case panels.TabVideo:
		win.drawVideo()
	case panels.TabAudio:
		win.drawAudio()
	case panels.TabMachine:
		win.drawMachine()
	}
}

// placeholder tabs show static text and have no controls.
func (win *winPrefs) drawPlaceholder(tab panels.Tab) {
	for i, s := range tab.PlaceholderText() {
		if i > 0 {
			imgui.Spacing()
		}
		imguiWrappedText(s)
	}
}
