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
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/atari800prefs/curated"
)

// InvalidValue is the curated error pattern returned when a field is set to a
// value outside its range of valid codes.
const InvalidValue = "settings: invalid value (%v) for %s"

// VideoMode is the video timing standard of the emulated machine.
type VideoMode int

// List of valid VideoMode values.
const (
	NTSC VideoMode = iota
	PAL
)

// VideoModes lists all valid VideoMode values in display order.
var VideoModes = []VideoMode{NTSC, PAL}

var videoModeLabels = []string{"NTSC", "PAL"}

// Valid returns true if the VideoMode is one of the defined values.
func (m VideoMode) Valid() bool {
	return m >= NTSC && m <= PAL
}

func (m VideoMode) String() string {
	return label(videoModeLabels, int(m))
}

// ScalingMode is the method used to scale the emulated display.
type ScalingMode int

// List of valid ScalingMode values.
const (
	Normal ScalingMode = iota
	Scanline
)

// ScalingModes lists all valid ScalingMode values in display order.
var ScalingModes = []ScalingMode{Normal, Scanline}

var scalingModeLabels = []string{"Normal", "Scanlines"}

// Valid returns true if the ScalingMode is one of the defined values.
func (m ScalingMode) Valid() bool {
	return m >= Normal && m <= Scanline
}

func (m ScalingMode) String() string {
	return label(scalingModeLabels, int(m))
}

// ArtifactingMode is the raw code for the colour artifacting filter.
type ArtifactingMode int

// List of valid ArtifactingMode values. The names follow the labels used in
// the preferences window.
const (
	ArtifactingNone ArtifactingMode = iota
	ArtifactingBlueBrown
	ArtifactingBlueGreen
	ArtifactingCTIA
	ArtifactingGTIA
)

// ArtifactingModes lists all valid ArtifactingMode values in display order.
var ArtifactingModes = []ArtifactingMode{
	ArtifactingNone,
	ArtifactingBlueBrown,
	ArtifactingBlueGreen,
	ArtifactingCTIA,
	ArtifactingGTIA,
}

var artifactingModeLabels = []string{"None", "Blue/Brown", "Blue/Green", "CTIA", "GTIA"}

// Valid returns true if the ArtifactingMode is one of the defined values.
func (m ArtifactingMode) Valid() bool {
	return m >= ArtifactingNone && m <= ArtifactingGTIA
}

func (m ArtifactingMode) String() string {
	return label(artifactingModeLabels, int(m))
}

// MachineModel is the raw code for the type of emulated machine.
type MachineModel int

// List of valid MachineModel values.
const (
	Atari800 MachineModel = iota
	AtariXLXE
	Atari5200
)

// MachineModels lists all valid MachineModel values in display order.
var MachineModels = []MachineModel{Atari800, AtariXLXE, Atari5200}

var machineModelLabels = []string{"Atari 800", "Atari XL/XE", "Atari 5200"}

// Valid returns true if the MachineModel is one of the defined values.
func (m MachineModel) Valid() bool {
	return m >= Atari800 && m <= Atari5200
}

func (m MachineModel) String() string {
	return label(machineModelLabels, int(m))
}

// label returns the label for the code or a placeholder if the code is not in
// range.
func label(labels []string, code int) string {
	if code < 0 || code >= len(labels) {
		return fmt.Sprintf("unknown (%d)", code)
	}
	return labels[code]
}

// parseCode converts a YAML scalar to a code. The scalar can be a label
// (case insensitive) or an integer.
func parseCode(labels []string, name string, node *yaml.Node) (int, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, curated.Errorf(InvalidValue, node.Value, name)
	}
	for i, l := range labels {
		if strings.EqualFold(l, node.Value) {
			return i, nil
		}
	}
	c, err := strconv.Atoi(node.Value)
	if err != nil || c < 0 || c >= len(labels) {
		return 0, curated.Errorf(InvalidValue, node.Value, name)
	}
	return c, nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (m VideoMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (m *VideoMode) UnmarshalYAML(node *yaml.Node) error {
	c, err := parseCode(videoModeLabels, string(KeyVideoMode), node)
	*m = VideoMode(c)
	return err
}

// MarshalYAML implements the yaml.Marshaler interface.
func (m ScalingMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (m *ScalingMode) UnmarshalYAML(node *yaml.Node) error {
	c, err := parseCode(scalingModeLabels, string(KeyScalingMode), node)
	*m = ScalingMode(c)
	return err
}

// MarshalYAML implements the yaml.Marshaler interface.
func (m ArtifactingMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (m *ArtifactingMode) UnmarshalYAML(node *yaml.Node) error {
	c, err := parseCode(artifactingModeLabels, string(KeyArtifactingMode), node)
	*m = ArtifactingMode(c)
	return err
}

// MarshalYAML implements the yaml.Marshaler interface.
func (m MachineModel) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (m *MachineModel) UnmarshalYAML(node *yaml.Node) error {
	c, err := parseCode(machineModelLabels, string(KeyMachineModel), node)
	*m = MachineModel(c)
	return err
}
