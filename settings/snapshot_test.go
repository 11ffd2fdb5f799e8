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
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/atari800prefs/curated"
	"github.com/jetsetilly/atari800prefs/settings"
	"github.com/jetsetilly/atari800prefs/test"
)

func TestApply(t *testing.T) {
	r := newRecord(t, tmpPrefFile(t))

	s := settings.DefaultSnapshot()
	s.VideoMode = settings.PAL
	s.MachineModel = settings.Atari800
	s.AudioVolume = 0.75
	test.ExpectSuccess(t, r.Apply(s))
	test.ExpectEquality(t, r.Snapshot(), s)

	// an invalid snapshot leaves the record unchanged
	bad := s
	bad.VideoMode = settings.NTSC
	bad.ArtifactingMode = settings.ArtifactingMode(10)
	err := r.Apply(bad)
	test.ExpectSuccess(t, curated.Is(err, settings.InvalidValue))
	test.ExpectEquality(t, r.Snapshot(), s)

	bad = s
	bad.AudioVolume = 2.0
	test.ExpectFailure(t, r.Apply(bad))
	test.ExpectEquality(t, r.Snapshot(), s)
}

func TestExportImportYAML(t *testing.T) {
	r := newRecord(t, tmpPrefFile(t))
	test.ExpectSuccess(t, r.SetVideoMode(settings.PAL))
	test.ExpectSuccess(t, r.SetArtifactingMode(settings.ArtifactingBlueGreen))
	r.SetStereoEnabled(true)
	r.SetAudioVolume(0.5)

	b := &bytes.Buffer{}
	test.DemandSuccess(t, r.ExportYAML(b))

	// enumerations are exported with their labels
	test.ExpectSuccess(t, strings.Contains(b.String(), "tv_mode: PAL\n"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "artifacting_mode: Blue/Green\n"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "machine: Atari XL/XE\n"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "sound_volume: 0.5\n"))

	other := newRecord(t, tmpPrefFile(t))
	test.DemandSuccess(t, other.ImportYAML(b))
	test.ExpectEquality(t, other.Snapshot(), r.Snapshot())
}

func TestImportPartialYAML(t *testing.T) {
	r := newRecord(t, tmpPrefFile(t))

	// labels are case insensitive and codes are accepted as integers. missing
	// fields keep their current value
	doc := "tv_mode: pal\nmachine: 0\nshow_fps: true\n"
	test.DemandSuccess(t, r.ImportYAML(strings.NewReader(doc)))

	expected := settings.DefaultSnapshot()
	expected.VideoMode = settings.PAL
	expected.MachineModel = settings.Atari800
	expected.ShowFPS = true
	test.ExpectEquality(t, r.Snapshot(), expected)

	// an empty document changes nothing
	test.ExpectSuccess(t, r.ImportYAML(strings.NewReader("")))
	test.ExpectEquality(t, r.Snapshot(), expected)
}

func TestImportInvalidYAML(t *testing.T) {
	r := newRecord(t, tmpPrefFile(t))

	for _, doc := range []string{
		"tv_mode: SECAM\n",
		"machine: 3\n",
		"unknown_field: true\n",
		"sound_volume: 1.5\n",
		"sound_volume: .nan\n",
		"show_fps: [\n",
	} {
		test.ExpectFailure(t, r.ImportYAML(strings.NewReader(doc)), doc)
		test.ExpectEquality(t, r.Snapshot(), settings.DefaultSnapshot(), doc)
	}

	// the cause of an invalid volume is available in the error chain
	err := r.ImportYAML(strings.NewReader("sound_volume: -1\n"))
	test.ExpectSuccess(t, curated.Has(err, settings.InvalidValue))
}
