// This file is part of e07stub.
//
// e07stub is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// e07stub is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with e07stub.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs holds typed preference values and the command-line preference
// stack.
//
// Preference values are used by the emulation to answer questions that are
// decided once, at initialisation or reset, but which can be overridden by the
// user. For example, whether the DSP internal ROM stub is enabled for a board.
//
// The command-line stack allows preferences to be specified with a single
// string of the form:
//
//	key::value; key::value
//
// Components that own a preference should call GetCommandLinePref() with the
// preference's key during initialisation and, if a value is found, apply it
// with Set().
package prefs
