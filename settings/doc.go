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

// Package settings contains the Record type, the in-memory copy of the user's
// preferences for the emulator. The Record is loaded from and saved to the
// preferences file with the prefs package.
//
// Every field of the Record is bound to a fixed key in the preferences file.
// The keys are listed in keys.go. Keys belonging to the legacy settings
// window are never written by the Record (see prefs.IsReserved()).
//
// Changes to the Record can be observed with the Subscribe() function. All
// changes are notified, including those made by Load() and Reset().
//
// A Record can be exported to and imported from a YAML document with the
// ExportYAML() and ImportYAML() functions. The YAML document is intended for
// the user to share or archive settings. It is not the persisted store.
package settings
