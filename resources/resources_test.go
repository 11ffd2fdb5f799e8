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

package resources

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/atari800prefs/test"
)

func TestJoinPathOverride(t *testing.T) {
	base := t.TempDir()
	t.Setenv(EnvDir, base)

	pth, err := JoinPath("foo", "bar")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(base, "foo", "bar"))

	// the parent directory has been created but not the file itself
	info, err := os.Stat(filepath.Join(base, "foo"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, os.IsNotExist(err))

	// base path is not prepended twice
	pth, err = JoinPath(filepath.Join(base, "baz"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(base, "baz"))
}

func TestJoinPathDefault(t *testing.T) {
	t.Setenv(EnvDir, "")

	b, err := resourcePath()
	test.DemandSuccess(t, err)

	// change working directory so that the development path is created in a
	// temporary location
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := JoinPath("preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(b, "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2026, time.March, 4, 5, 6, 7, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("settings", "yaml", n), "settings_20260304_050607.yaml")
	test.ExpectEquality(t, uniqueFilename("settings", ".yaml", n), "settings_20260304_050607.yaml")
	test.ExpectEquality(t, uniqueFilename("settings", "", n), "settings_20260304_050607")
}
