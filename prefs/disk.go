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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jetsetilly/atari800prefs/curated"
	"github.com/jetsetilly/atari800prefs/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in a preferences file.
const keySep = " :: "

// Sentinel error patterns for the Disk type.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
	InvalidKey   = "prefs: invalid key (%s)"
	ReservedKey  = "prefs: key is owned by another writer (%s)"
	DiskError    = "prefs: %v"
)

// Disk represents preference values as stored on disk. Values are bound to
// a key with the Add() function and then loaded and saved as a group.
//
// Entries in the preferences file that have not been added to a Disk instance
// are preserved when the file is saved. This means that more than one Disk
// instance can share the same file.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path for prefs file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Add preference value to list of values to store/load from disk. The key
// must not be a key that is reserved for another writer of the preferences
// file.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n:") {
		return curated.Errorf(InvalidKey, key)
	}
	if IsReserved(key) {
		return curated.Errorf(ReservedKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Has returns true if the key has been added to the Disk instance.
func (dsk *Disk) Has(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// parse a line from a preferences file. returns false if the line is not a
// valid entry.
func parseLine(line string) (string, string, bool) {
	k, v, ok := strings.Cut(line, keySep)
	if !ok {
		return "", "", false
	}
	k = strings.TrimSpace(k)
	if k == "" {
		return "", "", false
	}
	return k, strings.TrimSpace(v), true
}

// readFile returns all key/value pairs in the preferences file in the order
// they appear. the boilerplate line and malformed lines are ignored.
func readFile(path string) ([][2]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries [][2]string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line == WarningBoilerPlate {
			continue
		}
		if k, v, ok := parseLine(line); ok {
			entries = append(entries, [2]string{k, v})
		}
	}

	return entries, scanner.Err()
}

// Load preference values from disk. Keys in the file that have not been
// added to the Disk are ignored. Values that cannot be parsed are logged and
// the preference keeps its current value.
//
// Values on the top of the command line stack (see PushCommandLineStack())
// take priority over values on disk.
//
// If saveOnFirstUse is true and the preferences file doesn't exist then the
// file will be created with the current values. Otherwise the curated error
// NoPrefsFile is returned when the file doesn't exist.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	entries, err := readFile(dsk.path)
	missing := false
	if err != nil {
		if !os.IsNotExist(err) {
			return curated.Errorf(DiskError, err)
		}
		missing = true
	}

	for _, e := range entries {
		p, ok := dsk.entries[e[0]]
		if !ok {
			continue
		}
		err := p.Set(e[1])
		if err != nil {
			logger.Logf(logger.Allow, "prefs", "%s: %v", e[0], err)
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			err := dsk.entries[k].Set(v)
			if err != nil {
				logger.Logf(logger.Allow, "prefs", "command line: %s: %v", k, err)
			}
		}
	}

	if missing {
		if saveOnFirstUse {
			return dsk.Save()
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}

// Save current preference values to disk. Entries in the file that belong to
// other Disk instances (or to other programs) are preserved. All entries are
// written sorted by key.
//
// The file is written to a temporary file and then renamed so that the
// preferences file is never left partially written.
func (dsk *Disk) Save() error {
	entries, err := readFile(dsk.path)
	if err != nil && !os.IsNotExist(err) {
		return curated.Errorf(DiskError, err)
	}

	vals := make(map[string]string, len(entries)+len(dsk.entries))
	for _, e := range entries {
		vals[e[0]] = e[1]
	}
	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	err = os.MkdirAll(filepath.Dir(dsk.path), 0o700)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	f, err := os.CreateTemp(filepath.Dir(dsk.path), filepath.Base(dsk.path)+".*")
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	tmp := f.Name()

	err = write(f, keys, vals)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, dsk.path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return curated.Errorf(DiskError, err)
	}

	return nil
}

func write(w io.Writer, keys []string, vals map[string]string) error {
	b := bufio.NewWriter(w)
	_, err := fmt.Fprintf(b, "%s\n", WarningBoilerPlate)
	if err != nil {
		return err
	}
	for _, k := range keys {
		_, err = fmt.Fprintf(b, "%s%s%s\n", k, keySep, vals[k])
		if err != nil {
			return err
		}
	}
	return b.Flush()
}
