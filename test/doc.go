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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare values of
// the same comparable type. ExpectApproximate() compares numeric values
// within a tolerance.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure conditions suitable for the type of the value. Currently supported
// types are bool and error. A nil value is considered a success.
//
// The Demand*() variants stop the test immediately on failure.
//
// The CompareWriter type is an implementation of io.Writer that accumulates
// output for comparison against an expected string.
package test
