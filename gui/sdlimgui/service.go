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
	"bytes"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements GuiCreator interface.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) Service() {
	ev := img.polling.wait()

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(string(bytes.TrimRight(ev.Text[:], "\x00")))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseButtonEvent:
			if ev.Type == sdl.MOUSEBUTTONDOWN {
				img.plt.noteMouseButton(ev.Button)
			}

			// draw the results of the button press without waiting for the
			// timeout
			img.polling.alert()

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)

		case *sdl.WindowEvent:
			img.polling.alert()

		case *sdl.UserEvent:
			// sent by polling.interrupt(). the request will be serviced by the
			// next call to wait()
			img.polling.alert()
		}
	}

	img.renderFrame()
}

func (img *SdlImgui) renderFrame() {
	img.plt.newFrame()
	imgui.NewFrame()
	img.draw()
	imgui.Render()

	img.rnd.preRender()
	img.rnd.render()
	img.plt.postRender()
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
	}
	img.updateKeyModifier()
	img.polling.alert()
}

func (img *SdlImgui) updateKeyModifier() {
	modState := sdl.GetModState()

	mapModifier := func(lMask sdl.Keymod, lKey int, rMask sdl.Keymod, rKey int) (lResult int, rResult int) {
		if (modState & lMask) != 0 {
			lResult = lKey
		}
		if (modState & rMask) != 0 {
			rResult = rKey
		}
		return
	}

	img.io.KeyShift(mapModifier(sdl.KMOD_LSHIFT, int(sdl.SCANCODE_LSHIFT), sdl.KMOD_RSHIFT, int(sdl.SCANCODE_RSHIFT)))
	img.io.KeyCtrl(mapModifier(sdl.KMOD_LCTRL, int(sdl.SCANCODE_LCTRL), sdl.KMOD_RCTRL, int(sdl.SCANCODE_RCTRL)))
	img.io.KeyAlt(mapModifier(sdl.KMOD_LALT, int(sdl.SCANCODE_LALT), sdl.KMOD_RALT, int(sdl.SCANCODE_RALT)))
	img.io.KeySuper(mapModifier(sdl.KMOD_LGUI, int(sdl.SCANCODE_LGUI), sdl.KMOD_RGUI, int(sdl.SCANCODE_RGUI)))
}
