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

// keys in the preferences file that are owned by the legacy settings window.
// the Disk type will not allow these keys to be added and so a value bound to
// a Disk can never overwrite them. they are preserved by Save() like any
// other foreign key.
var reserved = []string{
	// input
	"Joystick1Mode_v13",
	"Joystick2Mode_v13",
	"Joystick3Mode_v13",
	"Joystick4Mode_v13",
	"JoystickAutofire",
	"MouseDevice",
	"MouseSpeed",
	"PaddleMode",
	"JoystickHat",
	"CX85Enabled",

	// peripherals
	"PrintCommand",
	"PrinterType",
	"EnableRPatch",
	"RPatchPort",
	"EnableSioPatch",
	"BootFromCassette",
	"AxlonBankMask",
	"MosaicMaxBank",
	"EnableMultijoy",
	"XEP80Enabled",

	// paths
	"ImageDir",
	"PrintDir",
	"HardDiskDir1",
	"HardDiskDir2",
	"HardDiskDir3",
	"HardDiskDir4",
	"OsBRomFile",
	"XlRomFile",
	"BasicRomFile",
	"A5200RomFile",
	"DiskImageDir",
	"DiskSetDir",
	"CartImageDir",
	"CassImageDir",
	"PaletteFile",
}

// IsReserved returns true if key is owned by the legacy settings window.
func IsReserved(key string) bool {
	for _, r := range reserved {
		if key == r {
			return true
		}
	}
	return false
}
