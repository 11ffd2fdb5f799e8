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

// Package assert contains checks that are useful during development and
// testing. Failure of a check is a programming error and results in a panic.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It is undoubtedly useful for but it should only ever be used for
// debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine records the goroutine that created it. Types that must only be
// used from a single goroutine (usually the main thread) embed or store a
// Goroutine and call Check() at the top of every exported method.
type Goroutine struct {
	id uint64
}

// NewGoroutine is the preferred method of initialisation for the Goroutine
// type. It records the calling goroutine.
func NewGoroutine() Goroutine {
	return Goroutine{id: GetGoRoutineID()}
}

// Same returns true if the calling goroutine is the recorded goroutine.
func (g Goroutine) Same() bool {
	return g.id == GetGoRoutineID()
}

// Check panics if the calling goroutine is not the recorded goroutine. The
// context string is included in the panic message.
func (g Goroutine) Check(context string) {
	if id := GetGoRoutineID(); id != g.id {
		panic(fmt.Sprintf("%s: called from goroutine %d but owned by goroutine %d", context, id, g.id))
	}
}
