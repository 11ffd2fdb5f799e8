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

package settings

// Field identifies a field of the Record. The value of a Field is the key used
// for the field in the preferences file.
type Field string

// List of Fields and their keys in the preferences file. The keys are shared
// with earlier versions of the emulator and must not be changed.
const (
	KeyVideoMode           Field = "TvMode"
	KeyScalingMode         Field = "ScaleMode"
	KeyFixAspectFullscreen Field = "FixAspectFullscreen"
	KeyOnlyIntegralScaling Field = "OnlyIntegralScaling"
	KeyShowFPS             Field = "ShowFPS"
	KeyArtifactingMode     Field = "ArtifactingMode"
	KeyAudioEnabled        Field = "EnableSound"
	KeyAudioVolume         Field = "SoundVolume"
	KeyStereoEnabled       Field = "EnableStereo"
	KeyMachineModel        Field = "AtariTypeVer5"
	KeySpeedLimit          Field = "SpeedLimit"
	KeyDisableBasic        Field = "DisableBasic"
)

// Fields lists every Field of the Record in the order they appear in the
// preferences window.
var Fields = []Field{
	KeyVideoMode,
	KeyScalingMode,
	KeyFixAspectFullscreen,
	KeyOnlyIntegralScaling,
	KeyShowFPS,
	KeyArtifactingMode,
	KeyAudioEnabled,
	KeyAudioVolume,
	KeyStereoEnabled,
	KeyMachineModel,
	KeySpeedLimit,
	KeyDisableBasic,
}

// Default values for the Record.
const (
	DefaultVideoMode           = NTSC
	DefaultScalingMode         = Normal
	DefaultFixAspectFullscreen = true
	DefaultOnlyIntegralScaling = false
	DefaultShowFPS             = false
	DefaultArtifactingMode     = ArtifactingNone
	DefaultAudioEnabled        = true
	DefaultAudioVolume         = 1.0
	DefaultStereoEnabled       = false
	DefaultMachineModel        = AtariXLXE
	DefaultSpeedLimit          = true
	DefaultDisableBasic        = true
)
