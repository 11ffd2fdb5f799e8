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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which is used in the same way as the Errorf() function
// in the fmt package.
//
// The pattern given to Errorf() is used to differentiate curated errors. It
// should be stored as a const string, suitably named. For example, the prefs
// package defines:
//
//	const NoPrefsFile = "prefs: no prefs file (%s)"
//
// and callers that do not care about a missing file can say:
//
//	err := dsk.Load(true)
//	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
//		return err
//	}
//
// Is() checks only the outermost error. Has() checks the outermost error and
// every curated error found in the values of the chain.
//
// When the error message is built, adjacent duplicate parts are removed. A
// part is the text between ": " separators. This means that wrapping an error
// with the same prefix it already carries is harmless:
//
//	e := curated.Errorf("settings: %v", curated.Errorf("settings: bad value"))
//	fmt.Println(e) // settings: bad value
//
// Curated errors also support errors.Unwrap() if one of the values is an
// error, so the standard errors.Is() and errors.As() functions work as
// expected.
package curated
