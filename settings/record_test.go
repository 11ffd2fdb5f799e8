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

package settings_test

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/atari800prefs/curated"
	"github.com/jetsetilly/atari800prefs/prefs"
	"github.com/jetsetilly/atari800prefs/settings"
	"github.com/jetsetilly/atari800prefs/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func writePrefFile(t *testing.T, fn string, content string) {
	t.Helper()
	err := os.WriteFile(fn, []byte(fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, content)), 0o600)
	test.DemandSuccess(t, err)
}

func readPrefFile(t *testing.T, fn string) string {
	t.Helper()
	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return strings.TrimPrefix(string(d), prefs.WarningBoilerPlate+"\n")
}

func newRecord(t *testing.T, fn string) *settings.Record {
	t.Helper()
	r, err := settings.NewRecord(fn)
	test.DemandSuccess(t, err)
	return r
}

func expectDefaults(t *testing.T, r *settings.Record) {
	t.Helper()
	test.ExpectEquality(t, r.Snapshot(), settings.DefaultSnapshot())
	test.ExpectEquality(t, r.VideoMode(), settings.NTSC)
	test.ExpectEquality(t, r.ScalingMode(), settings.Normal)
	test.ExpectEquality(t, r.FixAspectFullscreen(), true)
	test.ExpectEquality(t, r.OnlyIntegralScaling(), false)
	test.ExpectEquality(t, r.ShowFPS(), false)
	test.ExpectEquality(t, r.ArtifactingMode(), settings.ArtifactingNone)
	test.ExpectEquality(t, r.AudioEnabled(), true)
	test.ExpectEquality(t, r.AudioVolume(), 1.0)
	test.ExpectEquality(t, r.StereoEnabled(), false)
	test.ExpectEquality(t, r.MachineModel(), settings.AtariXLXE)
	test.ExpectEquality(t, r.SpeedLimit(), true)
	test.ExpectEquality(t, r.DisableBasic(), true)
	test.ExpectEquality(t, r.ScanlinesEnabled(), false)
}

func TestDefaults(t *testing.T) {
	r := newRecord(t, tmpPrefFile(t))
	expectDefaults(t, r)
}

// store starts empty. after a load the record has the default values. a PAL
// video mode is saved and loaded by a new record instance
func TestEmptyStore(t *testing.T) {
	fn := tmpPrefFile(t)

	r := newRecord(t, fn)
	test.DemandSuccess(t, r.Load())
	expectDefaults(t, r)

	test.ExpectSuccess(t, r.SetVideoMode(settings.PAL))
	test.DemandSuccess(t, r.Save())

	fresh := newRecord(t, fn)
	test.DemandSuccess(t, fresh.Load())
	test.ExpectEquality(t, fresh.VideoMode(), settings.PAL)

	expected := settings.DefaultSnapshot()
	expected.VideoMode = settings.PAL
	test.ExpectEquality(t, fresh.Snapshot(), expected)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	fn := tmpPrefFile(t)

	// keys are in the sorted order used by the prefs package. ImageDir is
	// owned by the legacy settings window and must survive the save
	stored := strings.Join([]string{
		"ArtifactingMode :: 3",
		"AtariTypeVer5 :: 2",
		"DisableBasic :: false",
		"EnableSound :: true",
		"EnableStereo :: true",
		"FixAspectFullscreen :: false",
		"ImageDir :: /home/atari/images",
		"OnlyIntegralScaling :: true",
		"ScaleMode :: 1",
		"ShowFPS :: true",
		"SoundVolume :: 0.35",
		"SpeedLimit :: false",
		"TvMode :: 1",
	}, "\n") + "\n"
	writePrefFile(t, fn, stored)

	r := newRecord(t, fn)
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.VideoMode(), settings.PAL)
	test.ExpectEquality(t, r.ScalingMode(), settings.Scanline)
	test.ExpectEquality(t, r.ArtifactingMode(), settings.ArtifactingCTIA)
	test.ExpectEquality(t, r.MachineModel(), settings.Atari5200)
	test.ExpectEquality(t, r.AudioVolume(), 0.35)
	test.ExpectEquality(t, r.DisableBasic(), false)

	test.DemandSuccess(t, r.Save())
	test.ExpectEquality(t, readPrefFile(t, fn), stored)
}

func TestMissingKeys(t *testing.T) {
	fn := tmpPrefFile(t)
	writePrefFile(t, fn, "ShowFPS :: true\n")

	r := newRecord(t, fn)

	// change a value so that we can see that Load() resets it
	test.ExpectSuccess(t, r.SetMachineModel(settings.Atari800))

	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.ShowFPS(), true)
	test.ExpectEquality(t, r.VideoMode(), settings.NTSC)
	test.ExpectEquality(t, r.MachineModel(), settings.AtariXLXE)
	test.ExpectEquality(t, r.AudioVolume(), 1.0)
}

func TestScanlines(t *testing.T) {
	for _, c := range []struct {
		stored    string
		scanlines bool
	}{
		{stored: "ScaleMode :: 0\n", scanlines: false},
		{stored: "ScaleMode :: 1\n", scanlines: true},
		{stored: "", scanlines: false},
	} {
		fn := tmpPrefFile(t)
		writePrefFile(t, fn, c.stored)
		r := newRecord(t, fn)
		test.DemandSuccess(t, r.Load())
		test.ExpectEquality(t, r.ScanlinesEnabled(), c.scanlines, c.stored)
		test.ExpectEquality(t, r.Snapshot().ScanlinesEnabled(), c.scanlines, c.stored)
	}

	// scanlines follows every assignment of scaling mode
	r := newRecord(t, tmpPrefFile(t))
	test.ExpectSuccess(t, r.SetScalingMode(settings.Scanline))
	test.ExpectEquality(t, r.ScanlinesEnabled(), true)
	test.ExpectSuccess(t, r.SetScalingMode(settings.Normal))
	test.ExpectEquality(t, r.ScanlinesEnabled(), false)

	// scanlines is never written to the preferences file
	test.DemandSuccess(t, r.Save())
	test.ExpectFailure(t, strings.Contains(readPrefFile(t, r.Path()), "canlines"))
}

func TestInvalidStoredValues(t *testing.T) {
	fn := tmpPrefFile(t)
	writePrefFile(t, fn, "ArtifactingMode :: 9\nAtariTypeVer5 :: 7\nScaleMode :: -1\nShowFPS :: true\nTvMode :: 2\n")

	r := newRecord(t, fn)
	test.DemandSuccess(t, r.Load())

	// invalid values are replaced by the default value
	test.ExpectEquality(t, r.VideoMode(), settings.NTSC)
	test.ExpectEquality(t, r.ScalingMode(), settings.Normal)
	test.ExpectEquality(t, r.ArtifactingMode(), settings.ArtifactingNone)
	test.ExpectEquality(t, r.MachineModel(), settings.AtariXLXE)

	// valid values in the same file are loaded
	test.ExpectEquality(t, r.ShowFPS(), true)
}

func TestVolumeRange(t *testing.T) {
	fn := tmpPrefFile(t)
	writePrefFile(t, fn, "SoundVolume :: 1.5\n")

	r := newRecord(t, fn)
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.AudioVolume(), 1.0)

	writePrefFile(t, fn, "SoundVolume :: -0.25\n")
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.AudioVolume(), 0.0)

	// boundary values are exact
	r.SetAudioVolume(0.0)
	test.ExpectEquality(t, r.AudioVolume(), 0.0)
	r.SetAudioVolume(1.0)
	test.ExpectEquality(t, r.AudioVolume(), 1.0)

	// out of range values are clamped
	r.SetAudioVolume(1.0001)
	test.ExpectEquality(t, r.AudioVolume(), 1.0)
	r.SetAudioVolume(-3)
	test.ExpectEquality(t, r.AudioVolume(), 0.0)

	// NaN never reaches the volume
	r.SetAudioVolume(0.4)
	r.SetAudioVolume(math.NaN())
	test.ExpectEquality(t, r.AudioVolume(), 0.4)

	writePrefFile(t, fn, "SoundVolume :: NaN\n")
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.AudioVolume(), settings.DefaultAudioVolume)

	prefs.PushCommandLineStack("SoundVolume::NaN")
	test.DemandSuccess(t, r.Load())
	_ = prefs.PopCommandLineStack()
	test.ExpectEquality(t, r.AudioVolume(), settings.DefaultAudioVolume)
}

func TestInvalidSetters(t *testing.T) {
	r := newRecord(t, tmpPrefFile(t))

	err := r.SetVideoMode(settings.VideoMode(2))
	test.ExpectSuccess(t, curated.Is(err, settings.InvalidValue))
	test.ExpectEquality(t, r.VideoMode(), settings.NTSC)

	err = r.SetScalingMode(settings.ScalingMode(-1))
	test.ExpectSuccess(t, curated.Is(err, settings.InvalidValue))
	test.ExpectEquality(t, r.ScalingMode(), settings.Normal)

	err = r.SetArtifactingMode(settings.ArtifactingMode(5))
	test.ExpectSuccess(t, curated.Is(err, settings.InvalidValue))
	test.ExpectEquality(t, r.ArtifactingMode(), settings.ArtifactingNone)

	err = r.SetMachineModel(settings.MachineModel(3))
	test.ExpectSuccess(t, curated.Is(err, settings.InvalidValue))
	test.ExpectEquality(t, r.MachineModel(), settings.AtariXLXE)

	for _, m := range settings.ArtifactingModes {
		test.ExpectSuccess(t, r.SetArtifactingMode(m))
		test.ExpectEquality(t, r.ArtifactingMode(), m)
	}
}

func TestSubscribe(t *testing.T) {
	fn := tmpPrefFile(t)
	r := newRecord(t, fn)

	var changes []settings.Field
	cancel := r.Subscribe(func(f settings.Field) {
		changes = append(changes, f)
	})

	r.SetShowFPS(true)
	test.ExpectSuccess(t, r.SetVideoMode(settings.PAL))
	test.ExpectEquality(t, len(changes), 2)
	test.ExpectEquality(t, changes[0], settings.KeyShowFPS)
	test.ExpectEquality(t, changes[1], settings.KeyVideoMode)

	// a rejected value is not a change
	changes = changes[:0]
	test.ExpectFailure(t, r.SetVideoMode(settings.VideoMode(9)))
	test.ExpectEquality(t, len(changes), 0)

	// loading notifies every field at least once
	writePrefFile(t, fn, "TvMode :: 1\n")
	test.DemandSuccess(t, r.Load())
	for _, f := range settings.Fields {
		found := false
		for _, c := range changes {
			if c == f {
				found = true
				break
			}
		}
		test.ExpectSuccess(t, found, f)
	}

	// no notifications after cancelling
	cancel()
	changes = changes[:0]
	r.SetShowFPS(false)
	test.ExpectEquality(t, len(changes), 0)
}

func TestCancelFromCallback(t *testing.T) {
	r := newRecord(t, tmpPrefFile(t))

	var count int
	var cancel func()
	cancel = r.Subscribe(func(_ settings.Field) {
		count++
		cancel()
	})

	r.SetShowFPS(true)
	r.SetShowFPS(false)
	test.ExpectEquality(t, count, 1)
}

func TestReset(t *testing.T) {
	fn := tmpPrefFile(t)
	r := newRecord(t, fn)

	test.ExpectSuccess(t, r.SetMachineModel(settings.Atari5200))
	r.SetAudioVolume(0.5)
	test.DemandSuccess(t, r.Save())

	r.Reset()
	expectDefaults(t, r)

	// the file is unchanged until saved
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.MachineModel(), settings.Atari5200)
	test.ExpectEquality(t, r.AudioVolume(), 0.5)
}

func TestCommandLinePrefs(t *testing.T) {
	fn := tmpPrefFile(t)
	writePrefFile(t, fn, "TvMode :: 0\n")

	r := newRecord(t, fn)
	prefs.PushCommandLineStack("TvMode::1; ShowFPS::true")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.VideoMode(), settings.PAL)
	test.ExpectEquality(t, r.ShowFPS(), true)
}

func TestLabels(t *testing.T) {
	test.ExpectEquality(t, settings.PAL.String(), "PAL")
	test.ExpectEquality(t, settings.Scanline.String(), "Scanlines")
	test.ExpectEquality(t, settings.ArtifactingBlueBrown.String(), "Blue/Brown")
	test.ExpectEquality(t, settings.ArtifactingGTIA.String(), "GTIA")
	test.ExpectEquality(t, settings.AtariXLXE.String(), "Atari XL/XE")
	test.ExpectEquality(t, settings.MachineModel(9).String(), "unknown (9)")
	test.ExpectEquality(t, len(settings.ArtifactingModes), 5)
	test.ExpectEquality(t, len(settings.MachineModels), 3)
}
