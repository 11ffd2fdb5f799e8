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

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/atari800prefs/curated"
)

// Snapshot is a copy of every field in a Record. The zero value of Snapshot
// is not the same as the default values of the Record. Use DefaultSnapshot()
// for that.
type Snapshot struct {
	VideoMode           VideoMode       `yaml:"tv_mode"`
	ScalingMode         ScalingMode     `yaml:"scale_mode"`
	FixAspectFullscreen bool            `yaml:"fix_aspect_fullscreen"`
	OnlyIntegralScaling bool            `yaml:"only_integral_scaling"`
	ShowFPS             bool            `yaml:"show_fps"`
	ArtifactingMode     ArtifactingMode `yaml:"artifacting_mode"`
	AudioEnabled        bool            `yaml:"enable_sound"`
	AudioVolume         float64         `yaml:"sound_volume"`
	StereoEnabled       bool            `yaml:"enable_stereo"`
	MachineModel        MachineModel    `yaml:"machine"`
	SpeedLimit          bool            `yaml:"speed_limit"`
	DisableBasic        bool            `yaml:"disable_basic"`
}

// DefaultSnapshot returns a Snapshot with every field set to its default.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		VideoMode:           DefaultVideoMode,
		ScalingMode:         DefaultScalingMode,
		FixAspectFullscreen: DefaultFixAspectFullscreen,
		OnlyIntegralScaling: DefaultOnlyIntegralScaling,
		ShowFPS:             DefaultShowFPS,
		ArtifactingMode:     DefaultArtifactingMode,
		AudioEnabled:        DefaultAudioEnabled,
		AudioVolume:         DefaultAudioVolume,
		StereoEnabled:       DefaultStereoEnabled,
		MachineModel:        DefaultMachineModel,
		SpeedLimit:          DefaultSpeedLimit,
		DisableBasic:        DefaultDisableBasic,
	}
}

// ScanlinesEnabled is true if the scaling mode is Scanline.
func (s Snapshot) ScanlinesEnabled() bool {
	return s.ScalingMode == Scanline
}

// Validate returns a curated InvalidValue error for the first field that is
// outside its valid range.
func (s Snapshot) Validate() error {
	if !s.VideoMode.Valid() {
		return curated.Errorf(InvalidValue, int(s.VideoMode), KeyVideoMode)
	}
	if !s.ScalingMode.Valid() {
		return curated.Errorf(InvalidValue, int(s.ScalingMode), KeyScalingMode)
	}
	if !s.ArtifactingMode.Valid() {
		return curated.Errorf(InvalidValue, int(s.ArtifactingMode), KeyArtifactingMode)
	}
	if !s.MachineModel.Valid() {
		return curated.Errorf(InvalidValue, int(s.MachineModel), KeyMachineModel)
	}
	// written so that NaN is invalid
	if !(s.AudioVolume >= 0.0 && s.AudioVolume <= 1.0) {
		return curated.Errorf(InvalidValue, s.AudioVolume, KeyAudioVolume)
	}
	return nil
}

// Snapshot returns a copy of the current field values.
func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		VideoMode:           r.VideoMode(),
		ScalingMode:         r.ScalingMode(),
		FixAspectFullscreen: r.FixAspectFullscreen(),
		OnlyIntegralScaling: r.OnlyIntegralScaling(),
		ShowFPS:             r.ShowFPS(),
		ArtifactingMode:     r.ArtifactingMode(),
		AudioEnabled:        r.AudioEnabled(),
		AudioVolume:         r.AudioVolume(),
		StereoEnabled:       r.StereoEnabled(),
		MachineModel:        r.MachineModel(),
		SpeedLimit:          r.SpeedLimit(),
		DisableBasic:        r.DisableBasic(),
	}
}

// Apply sets every field of the Record from the Snapshot. The Snapshot is
// validated first and the Record is unchanged if it is not valid.
func (r *Record) Apply(s Snapshot) error {
	err := s.Validate()
	if err != nil {
		return err
	}

	// validation means the setters will not fail
	_ = r.SetVideoMode(s.VideoMode)
	_ = r.SetScalingMode(s.ScalingMode)
	r.SetFixAspectFullscreen(s.FixAspectFullscreen)
	r.SetOnlyIntegralScaling(s.OnlyIntegralScaling)
	r.SetShowFPS(s.ShowFPS)
	_ = r.SetArtifactingMode(s.ArtifactingMode)
	r.SetAudioEnabled(s.AudioEnabled)
	r.SetAudioVolume(s.AudioVolume)
	r.SetStereoEnabled(s.StereoEnabled)
	_ = r.SetMachineModel(s.MachineModel)
	r.SetSpeedLimit(s.SpeedLimit)
	r.SetDisableBasic(s.DisableBasic)

	return nil
}

// ExportYAML writes the current field values to w as a YAML document.
func (r *Record) ExportYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(r.Snapshot())
	if err != nil {
		return curated.Errorf("settings: export: %v", err)
	}
	err = enc.Close()
	if err != nil {
		return curated.Errorf("settings: export: %v", err)
	}
	return nil
}

// ImportYAML reads a YAML document from rd and applies it to the Record.
// Fields missing from the document keep their current value. Unknown fields
// are an error. The Record is unchanged if the document is not valid.
func (r *Record) ImportYAML(rd io.Reader) error {
	s := r.Snapshot()

	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	err := dec.Decode(&s)
	if err != nil && !errors.Is(err, io.EOF) {
		return curated.Errorf("settings: import: %v", err)
	}

	err = r.Apply(s)
	if err != nil {
		return curated.Errorf("settings: import: %v", err)
	}

	return nil
}
