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
	"github.com/jetsetilly/atari800prefs/assert"
	"github.com/jetsetilly/atari800prefs/curated"
	"github.com/jetsetilly/atari800prefs/logger"
	"github.com/jetsetilly/atari800prefs/notifications"
)

// Window is a top-level panel window created by a Factory.
type Window interface {
	Kind() Kind

	// Show opens the window and brings it to the front
	Show()

	// Hide closes the window. The window can be shown again
	Hide()

	IsOpen() bool
}

// Factory creates windows on behalf of the Coordinator.
type Factory interface {
	CreateWindow(kind Kind) (Window, error)
}

// Model is the settings that the preferences window presents. It is
// implemented by settings.Record.
type Model interface {
	Load() error
	Save() error
}

// Coordinator owns at most one window of each Kind.
//
// All functions must be called from the goroutine that created the
// Coordinator. Calling from any other goroutine will cause a panic.
type Coordinator struct {
	goroutine assert.Goroutine

	factory Factory
	model   Model

	// windows that have been created. windows are never removed
	windows map[Kind]Window

	// notified when the settings have been saved or loaded. can be nil
	notify notifications.Notify
}

// NewCoordinator is the preferred method of initialisation for the
// Coordinator type.
func NewCoordinator(factory Factory, model Model) *Coordinator {
	return &Coordinator{
		goroutine: assert.NewGoroutine(),
		factory:   factory,
		model:     model,
		windows:   make(map[Kind]Window),
	}
}

// SetNotify sets the receiver of notifications. A nil value stops
// notifications.
func (c *Coordinator) SetNotify(notify notifications.Notify) {
	c.goroutine.Check("panels")
	c.notify = notify
}

func (c *Coordinator) sendNotice(notice notifications.Notice) {
	if c.notify == nil {
		return
	}
	err := c.notify.Notify(notice)
	if err != nil {
		logger.Logf(logger.Allow, "panels", "%s: %v", notice, err)
	}
}

// ensure returns the window of the specified kind, creating it if necessary.
func (c *Coordinator) ensure(kind Kind) (Window, error) {
	if w, ok := c.windows[kind]; ok {
		return w, nil
	}

	w, err := c.factory.CreateWindow(kind)
	if err != nil {
		err = curated.Errorf("panels: %s: %v", kind, err)
		logger.Log(logger.Allow, "panels", err)
		return nil, err
	}

	c.windows[kind] = w
	logger.Logf(logger.Allow, "panels", "created %s window", kind)

	return w, nil
}

// ShowPreferences creates the preferences window if it doesn't exist, loads
// the settings and brings the window to the front. The settings are loaded
// every time the function is called.
//
// Errors from loading are logged and returned but the window is shown
// regardless.
func (c *Coordinator) ShowPreferences() error {
	c.goroutine.Check("panels")

	w, err := c.ensure(KindPreferences)
	if err != nil {
		return err
	}

	err = c.model.Load()
	w.Show()

	if err != nil {
		err = curated.Errorf("panels: %s: %v", KindPreferences, err)
		logger.Log(logger.Allow, "panels", err)
		return err
	}

	c.sendNotice(notifications.NotifyPreferencesLoaded)

	return nil
}

// ShowAboutBox creates the about window if it doesn't exist and brings it to
// the front.
func (c *Coordinator) ShowAboutBox() error {
	c.goroutine.Check("panels")

	w, err := c.ensure(KindAbout)
	if err != nil {
		return err
	}
	w.Show()

	c.sendNotice(notifications.NotifyAboutShown)

	return nil
}

// Dismiss hides the window of the specified kind. The window is kept for
// reuse. Dismissing the preferences window saves the settings.
//
// Dismissing a window that has never been created does nothing.
func (c *Coordinator) Dismiss(kind Kind) error {
	c.goroutine.Check("panels")

	w, ok := c.windows[kind]
	if !ok {
		return nil
	}
	w.Hide()

	if kind != KindPreferences {
		return nil
	}

	err := c.model.Save()
	if err != nil {
		err = curated.Errorf("panels: %s: %v", kind, err)
		logger.Log(logger.Allow, "panels", err)
		return err
	}

	c.sendNotice(notifications.NotifyPreferencesSaved)

	return nil
}

// Window returns the window of the specified kind, if it has been created.
func (c *Coordinator) Window(kind Kind) (Window, bool) {
	c.goroutine.Check("panels")
	w, ok := c.windows[kind]
	return w, ok
}

// Count returns the number of windows that have been created.
func (c *Coordinator) Count() int {
	c.goroutine.Check("panels")
	return len(c.windows)
}
