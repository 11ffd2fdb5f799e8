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
	"fmt"
	"math"

	"github.com/jetsetilly/atari800prefs/settings"
)

// Section headings and control labels used by the preferences window.
const (
	LabelTVMode          = "TV Mode"
	LabelScaleMode       = "Scale Mode"
	LabelFixAspect       = "Fix Aspect Ratio in Fullscreen"
	LabelIntegralScaling = "Only Integral Scaling"
	LabelShowFPS         = "Show FPS"
	LabelArtifacting     = "Artifacting"
	LabelEnableSound     = "Enable Sound"
	LabelVolume          = "Volume"
	LabelStereo          = "POKEY Stereo"
	LabelTestSound       = "Test Sound"
	LabelMachine         = "Machine Type"
	LabelSpeedLimit      = "Speed Limit (≈60 fps)"
	LabelDisableBasic    = "Disable BASIC"
	LabelRevert          = "Revert to Defaults"
)

// Option is a single choice in a group of radio buttons.
type Option[T comparable] struct {
	Label string
	Value T
}

func options[T interface {
	comparable
	fmt.Stringer
}](values []T) []Option[T] {
	o := make([]Option[T], 0, len(values))
	for _, v := range values {
		o = append(o, Option[T]{Label: v.String(), Value: v})
	}
	return o
}

// Options for the radio button groups in the preferences window.
var (
	VideoModeOptions       = options(settings.VideoModes)
	ScalingModeOptions     = options(settings.ScalingModes)
	ArtifactingModeOptions = options(settings.ArtifactingModes)
	MachineModelOptions    = options(settings.MachineModels)
)

// PrefsView is the view model for the preferences window. It keeps a snapshot
// of the settings.Record that is refreshed whenever the Record changes.
//
// The PrefsView holds a reference to the Record but does not own it.
type PrefsView struct {
	record *settings.Record
	cancel func()

	snapshot settings.Snapshot

	// the number of change notifications received. the preferences window
	// compares this value between frames and redraws immediately on change
	changes int
}

// NewPrefsView is the preferred method of initialisation for the PrefsView
// type. Destroy() must be called when the view is no longer required.
func NewPrefsView(record *settings.Record) *PrefsView {
	v := &PrefsView{
		record:   record,
		snapshot: record.Snapshot(),
	}
	v.cancel = record.Subscribe(func(_ settings.Field) {
		v.snapshot = v.record.Snapshot()
		v.changes++
	})
	return v
}

// Destroy cancels the subscription to the Record.
func (v *PrefsView) Destroy() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// Record returns the settings.Record that the view presents.
func (v *PrefsView) Record() *settings.Record {
	return v.record
}

// Snapshot returns the most recent copy of the Record.
func (v *PrefsView) Snapshot() settings.Snapshot {
	return v.snapshot
}

// Changes returns the number of change notifications received.
func (v *PrefsView) Changes() int {
	return v.changes
}

// VolumeLabel returns the audio volume as a percentage. For example, "75%".
func (v *PrefsView) VolumeLabel() string {
	return VolumeLabel(v.snapshot.AudioVolume)
}

// VolumeLabel returns the volume as a whole percentage. The volume is limited
// to the range 0.0 to 1.0 and NaN is shown as zero.
func VolumeLabel(volume float64) string {
	if math.IsNaN(volume) {
		volume = 0.0
	}
	volume = max(0.0, min(1.0, volume))
	return fmt.Sprintf("%d%%", int(math.Round(volume*100)))
}

// AudioControlsDisabled returns true if the volume and stereo controls should
// be disabled. They are disabled when sound is not enabled.
func (v *PrefsView) AudioControlsDisabled() bool {
	return !v.snapshot.AudioEnabled
}
