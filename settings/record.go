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
	"slices"
	"sync"

	"github.com/jetsetilly/atari800prefs/curated"
	"github.com/jetsetilly/atari800prefs/logger"
	"github.com/jetsetilly/atari800prefs/prefs"
)

// Record is the in-memory copy of the user's preferences. It is created once
// at startup and lives for the lifetime of the application.
//
// Values can be read from any goroutine. Setters, Load(), Save() and Reset()
// should only be called from the GUI goroutine.
type Record struct {
	dsk *prefs.Disk

	videoMode           prefs.Int
	scalingMode         prefs.Int
	fixAspectFullscreen prefs.Bool
	onlyIntegralScaling prefs.Bool
	showFPS             prefs.Bool
	artifactingMode     prefs.Int
	audioEnabled        prefs.Bool
	audioVolume         prefs.Float
	stereoEnabled       prefs.Bool
	machineModel        prefs.Int
	speedLimit          prefs.Bool
	disableBasic        prefs.Bool

	subscribers struct {
		crit sync.Mutex
		next int
		fns  map[int]func(Field)
	}
}

func (r *Record) String() string {
	return r.dsk.String()
}

// NewRecord is the preferred method of initialisation for the Record type.
// The Record is bound to the preferences file at path and set to the default
// values. The preferences file is not read until Load() is called.
func NewRecord(path string) (*Record, error) {
	r := &Record{}
	r.subscribers.fns = make(map[int]func(Field))

	var err error
	r.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	r.audioVolume.SetRange(0.0, 1.0)

	r.videoMode.SetHookPre(validate(KeyVideoMode, func(c int) bool { return VideoMode(c).Valid() }))
	r.scalingMode.SetHookPre(validate(KeyScalingMode, func(c int) bool { return ScalingMode(c).Valid() }))
	r.artifactingMode.SetHookPre(validate(KeyArtifactingMode, func(c int) bool { return ArtifactingMode(c).Valid() }))
	r.machineModel.SetHookPre(validate(KeyMachineModel, func(c int) bool { return MachineModel(c).Valid() }))

	bindings := []struct {
		key Field
		p   boundValue
	}{
		{key: KeyVideoMode, p: &r.videoMode},
		{key: KeyScalingMode, p: &r.scalingMode},
		{key: KeyFixAspectFullscreen, p: &r.fixAspectFullscreen},
		{key: KeyOnlyIntegralScaling, p: &r.onlyIntegralScaling},
		{key: KeyShowFPS, p: &r.showFPS},
		{key: KeyArtifactingMode, p: &r.artifactingMode},
		{key: KeyAudioEnabled, p: &r.audioEnabled},
		{key: KeyAudioVolume, p: &r.audioVolume},
		{key: KeyStereoEnabled, p: &r.stereoEnabled},
		{key: KeyMachineModel, p: &r.machineModel},
		{key: KeySpeedLimit, p: &r.speedLimit},
		{key: KeyDisableBasic, p: &r.disableBasic},
	}

	for _, b := range bindings {
		key := b.key
		b.p.SetHookPost(func(_ prefs.Value) error {
			r.notify(key)
			return nil
		})
		err = r.dsk.Add(string(key), b.p)
		if err != nil {
			return nil, err
		}
	}

	r.SetDefaults()

	return r, nil
}

// the prefs types used by the Record
type boundValue interface {
	String() string
	Set(prefs.Value) error
	Get() prefs.Value
	SetHookPost(func(prefs.Value) error)
}

// validate returns a prefs hook that rejects integer codes for which valid()
// returns false.
func validate(key Field, valid func(int) bool) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if !valid(v.(int)) {
			return curated.Errorf(InvalidValue, v, key)
		}
		return nil
	}
}

// SetDefaults sets every field to its default value. Subscribers are notified
// of every field.
func (r *Record) SetDefaults() {
	// none of the default values can fail validation
	_ = r.videoMode.Set(int(DefaultVideoMode))
	_ = r.scalingMode.Set(int(DefaultScalingMode))
	_ = r.fixAspectFullscreen.Set(DefaultFixAspectFullscreen)
	_ = r.onlyIntegralScaling.Set(DefaultOnlyIntegralScaling)
	_ = r.showFPS.Set(DefaultShowFPS)
	_ = r.artifactingMode.Set(int(DefaultArtifactingMode))
	_ = r.audioEnabled.Set(DefaultAudioEnabled)
	_ = r.audioVolume.Set(DefaultAudioVolume)
	_ = r.stereoEnabled.Set(DefaultStereoEnabled)
	_ = r.machineModel.Set(int(DefaultMachineModel))
	_ = r.speedLimit.Set(DefaultSpeedLimit)
	_ = r.disableBasic.Set(DefaultDisableBasic)
}

// Reset sets every field back to its default value. The preferences file is
// not changed until Save() is called.
func (r *Record) Reset() {
	r.SetDefaults()
}

// Load the Record from the preferences file. Every field is first set to its
// default value so that keys missing from the file result in the default. A
// missing preferences file is not an error.
//
// Stored values that are not valid for the field are logged and the default
// value is kept. A stored volume outside the range 0.0 to 1.0 is clamped and a
// stored volume that is not a number is ignored.
func (r *Record) Load() error {
	r.SetDefaults()

	err := r.dsk.Load(false)
	if err != nil {
		if curated.Is(err, prefs.NoPrefsFile) {
			logger.Logf(logger.Allow, "settings", "no preferences file, using defaults")
			return nil
		}
		return curated.Errorf("settings: %v", err)
	}

	return nil
}

// Save the Record to the preferences file. Entries in the file that are not
// part of the Record are preserved.
func (r *Record) Save() error {
	err := r.dsk.Save()
	if err != nil {
		return curated.Errorf("settings: %v", err)
	}
	return nil
}

// Path returns the filename of the preferences file.
func (r *Record) Path() string {
	return r.dsk.Path()
}

// Subscribe adds a function to be called, synchronously, after every change
// to a field. The returned function cancels the subscription.
func (r *Record) Subscribe(f func(Field)) func() {
	r.subscribers.crit.Lock()
	defer r.subscribers.crit.Unlock()

	id := r.subscribers.next
	r.subscribers.next++
	r.subscribers.fns[id] = f

	return func() {
		r.subscribers.crit.Lock()
		defer r.subscribers.crit.Unlock()
		delete(r.subscribers.fns, id)
	}
}

func (r *Record) notify(f Field) {
	// copy subscriptions so that subscribers can cancel their subscription
	// from inside the callback
	r.subscribers.crit.Lock()
	ids := make([]int, 0, len(r.subscribers.fns))
	for id := range r.subscribers.fns {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Field), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, r.subscribers.fns[id])
	}
	r.subscribers.crit.Unlock()

	for _, fn := range fns {
		fn(f)
	}
}

// VideoMode returns the video timing standard.
func (r *Record) VideoMode() VideoMode {
	return VideoMode(r.videoMode.Get().(int))
}

// SetVideoMode returns a curated InvalidValue error if the mode is not valid.
func (r *Record) SetVideoMode(m VideoMode) error {
	return r.videoMode.Set(int(m))
}

// ScalingMode returns the display scaling method.
func (r *Record) ScalingMode() ScalingMode {
	return ScalingMode(r.scalingMode.Get().(int))
}

// SetScalingMode returns a curated InvalidValue error if the mode is not
// valid.
func (r *Record) SetScalingMode(m ScalingMode) error {
	return r.scalingMode.Set(int(m))
}

// ScanlinesEnabled is true if the scaling mode is Scanline. It is derived from
// the scaling mode and is not stored.
func (r *Record) ScanlinesEnabled() bool {
	return r.ScalingMode() == Scanline
}

func (r *Record) FixAspectFullscreen() bool {
	return r.fixAspectFullscreen.Get().(bool)
}

func (r *Record) SetFixAspectFullscreen(v bool) {
	_ = r.fixAspectFullscreen.Set(v)
}

func (r *Record) OnlyIntegralScaling() bool {
	return r.onlyIntegralScaling.Get().(bool)
}

func (r *Record) SetOnlyIntegralScaling(v bool) {
	_ = r.onlyIntegralScaling.Set(v)
}

func (r *Record) ShowFPS() bool {
	return r.showFPS.Get().(bool)
}

func (r *Record) SetShowFPS(v bool) {
	_ = r.showFPS.Set(v)
}

// ArtifactingMode returns the colour artifacting code.
func (r *Record) ArtifactingMode() ArtifactingMode {
	return ArtifactingMode(r.artifactingMode.Get().(int))
}

// SetArtifactingMode returns a curated InvalidValue error if the mode is not
// valid.
func (r *Record) SetArtifactingMode(m ArtifactingMode) error {
	return r.artifactingMode.Set(int(m))
}

func (r *Record) AudioEnabled() bool {
	return r.audioEnabled.Get().(bool)
}

func (r *Record) SetAudioEnabled(v bool) {
	_ = r.audioEnabled.Set(v)
}

// AudioVolume is always in the range 0.0 to 1.0.
func (r *Record) AudioVolume() float64 {
	return r.audioVolume.Get().(float64)
}

// SetAudioVolume clamps the volume to the range 0.0 to 1.0. NaN is ignored.
func (r *Record) SetAudioVolume(v float64) {
	_ = r.audioVolume.Set(v)
}

func (r *Record) StereoEnabled() bool {
	return r.stereoEnabled.Get().(bool)
}

func (r *Record) SetStereoEnabled(v bool) {
	_ = r.stereoEnabled.Set(v)
}

// MachineModel returns the type of emulated machine.
func (r *Record) MachineModel() MachineModel {
	return MachineModel(r.machineModel.Get().(int))
}

// SetMachineModel returns a curated InvalidValue error if the model is not
// valid.
func (r *Record) SetMachineModel(m MachineModel) error {
	return r.machineModel.Set(int(m))
}

func (r *Record) SpeedLimit() bool {
	return r.speedLimit.Get().(bool)
}

func (r *Record) SetSpeedLimit(v bool) {
	_ = r.speedLimit.Set(v)
}

func (r *Record) DisableBasic() bool {
	return r.disableBasic.Get().(bool)
}

func (r *Record) SetDisableBasic(v bool) {
	_ = r.disableBasic.Set(v)
}
