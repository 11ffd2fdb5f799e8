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

// Package modalflag wraps the flag package in the Go standard library. It
// adds program modes (and sub-modes) and allows a different set of flags for
// each mode.
//
// Arguments are given to the Modes type with NewArgs() and parsed with
// Parse(). Parsing happens in layers. Each layer can add flags and a list of
// sub-modes:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PREFS", "EXPORT", "IMPORT")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "EXPORT":
//		md.NewMode()
//		overwrite := md.AddBool("overwrite", false, "overwrite existing file")
//		...
//	}
//
// The first sub-mode in the list is the default and is selected if the next
// argument is not a sub-mode. Sub-mode comparisons are case insensitive.
//
// Arguments that are neither flags nor a sub-mode are returned by
// RemainingArgs() and GetArg().
//
// The Output field must be set for help messages to be seen.
package modalflag
