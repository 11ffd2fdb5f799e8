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

// Package sdlaudio plays the short sound used to preview the audio settings
// in the preferences window.
//
// The sound is a Clip of mono samples. A Clip can be generated with Tone() or
// loaded from a WAV or MP3 file with LoadClip(). The Preview type plays the
// Clip through an SDL audio device at a given volume, in mono or stereo.
package sdlaudio
