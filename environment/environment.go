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

// Package environment provides the context in which the preferences panels
// run. The settings.Record is reached through the Environment rather than
// through a global so that more than one Record can exist in the same
// program, as they do in the tests.
package environment

import (
	"os"

	"github.com/jetsetilly/atari800prefs/prefs"
	"github.com/jetsetilly/atari800prefs/resources"
	"github.com/jetsetilly/atari800prefs/settings"
)

// PreviewSoundEnv is the name of the environment variable naming a WAV or
// MP3 file to use for the audio preview. If it is not set a tone is used.
const PreviewSoundEnv = "ATARI800PREFS_PREVIEW_SOUND"

// Label is used to name the environment.
type Label string

// MainEmulation is the label of the environment used by the application
// itself.
const MainEmulation Label = ""

// Environment is used to provide context for the preferences panels.
type Environment struct {
	Label Label

	// the settings presented by the preferences window
	Settings *settings.Record

	// filename of the sound to play when previewing the audio settings. can
	// be empty
	PreviewSound string
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The record argument can be nil, in which case a new Record is created for
// the preferences file in the resource directory.
func NewEnvironment(label Label, record *settings.Record) (*Environment, error) {
	env := &Environment{
		Label:        label,
		PreviewSound: os.Getenv(PreviewSoundEnv),
	}

	if record == nil {
		pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
		record, err = settings.NewRecord(pth)
		if err != nil {
			return nil, err
		}
	}

	env.Settings = record

	return env, nil
}

// Normalise sets the settings to their default values. The preferences file
// is not changed until the settings are next saved.
func (env *Environment) Normalise() {
	env.Settings.SetDefaults()
}

// IsMainEmulation returns true if the environment is the one used by the
// application itself.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the environment label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// environment is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
