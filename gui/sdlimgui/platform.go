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
	"fmt"
	"runtime"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/atari800prefs/logger"
	"github.com/jetsetilly/atari800prefs/version"
	"github.com/veandco/go-sdl2/sdl"
)

// initial size of the host window
const (
	windowWidth  = 800
	windowHeight = 600
)

type platform struct {
	img       *SdlImgui
	window    *sdl.Window
	glContext sdl.GLContext

	// mouse buttons pressed since the last frame. a press and release in the
	// same frame would otherwise be missed
	buttonsDown [3]bool

	// time of the previous call to newFrame()
	frameTime time.Time
}

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform(img *SdlImgui) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{attr: sdl.GL_CONTEXT_MAJOR_VERSION, value: 2},
		{attr: sdl.GL_CONTEXT_MINOR_VERSION, value: 1},
		{attr: sdl.GL_DOUBLEBUFFER, value: 1},
	}
	for _, a := range attributes {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(img.env, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{
		img:       img,
		frameTime: time.Now(),
	}

	number, _, _ := version.Version()
	plt.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, number),
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		windowWidth, windowHeight,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetSwapInterval(1)
	if err != nil {
		logger.Logf(img.env, "sdl", "GLSetSwapInterval(1): %v", err)
	}

	plt.setKeyMapping()

	return plt, nil
}

// setKeyMapping maps sdl scancodes to imgui key values.
func (plt *platform) setKeyMapping() {
	keys := map[int]int{
		imgui.KeyTab:        int(sdl.SCANCODE_TAB),
		imgui.KeyLeftArrow:  int(sdl.SCANCODE_LEFT),
		imgui.KeyRightArrow: int(sdl.SCANCODE_RIGHT),
		imgui.KeyUpArrow:    int(sdl.SCANCODE_UP),
		imgui.KeyDownArrow:  int(sdl.SCANCODE_DOWN),
		imgui.KeyPageUp:     int(sdl.SCANCODE_PAGEUP),
		imgui.KeyPageDown:   int(sdl.SCANCODE_PAGEDOWN),
		imgui.KeyHome:       int(sdl.SCANCODE_HOME),
		imgui.KeyEnd:        int(sdl.SCANCODE_END),
		imgui.KeyInsert:     int(sdl.SCANCODE_INSERT),
		imgui.KeyDelete:     int(sdl.SCANCODE_DELETE),
		imgui.KeyBackspace:  int(sdl.SCANCODE_BACKSPACE),
		imgui.KeySpace:      int(sdl.SCANCODE_SPACE),
		imgui.KeyEnter:      int(sdl.SCANCODE_RETURN),
		imgui.KeyEscape:     int(sdl.SCANCODE_ESCAPE),
		imgui.KeyA:          int(sdl.SCANCODE_A),
		imgui.KeyC:          int(sdl.SCANCODE_C),
		imgui.KeyV:          int(sdl.SCANCODE_V),
		imgui.KeyX:          int(sdl.SCANCODE_X),
		imgui.KeyY:          int(sdl.SCANCODE_Y),
		imgui.KeyZ:          int(sdl.SCANCODE_Z),
	}

	for imguiKey, nativeKey := range keys {
		plt.img.io.KeyMap(imguiKey, nativeKey)
	}
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// windowSize returns the dimensions of the window.
func (plt *platform) windowSize() (float32, float32) {
	w, h := plt.window.GetSize()
	return float32(w), float32(h)
}

// framebufferSize returns the dimensions of the framebuffer.
func (plt *platform) framebufferSize() (float32, float32) {
	w, h := plt.window.GLGetDrawableSize()
	return float32(w), float32(h)
}

// noteMouseButton records a mouse button press for the next frame.
func (plt *platform) noteMouseButton(button uint8) {
	switch button {
	case sdl.BUTTON_LEFT:
		plt.buttonsDown[0] = true
	case sdl.BUTTON_RIGHT:
		plt.buttonsDown[1] = true
	case sdl.BUTTON_MIDDLE:
		plt.buttonsDown[2] = true
	}
}

// newFrame marks the beginning of a render pass. It forwards all current
// state to imgui.CurrentIO().
func (plt *platform) newFrame() {
	// display size every frame to accommodate for window resizing
	w, h := plt.windowSize()
	plt.img.io.SetDisplaySize(imgui.Vec2{X: w, Y: h})

	now := time.Now()
	plt.img.io.SetDeltaTime(float32(max(now.Sub(plt.frameTime).Seconds(), 1.0/1000.0)))
	plt.frameTime = now

	x, y, state := sdl.GetMouseState()
	plt.img.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		plt.img.io.SetMouseButtonDown(i, plt.buttonsDown[i] || (state&sdl.Button(button)) != 0)
		plt.buttonsDown[i] = false
	}
}

// postRender performs a buffer swap.
func (plt *platform) postRender() {
	plt.window.GLSwap()
}
