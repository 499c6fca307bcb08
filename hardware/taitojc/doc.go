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

// Package taitojc contains the parts of the Taito JC System board driver that
// concern the DSP program memory.
//
// Most titles on the board run their DSP code entirely from RAM that the main
// CPU uploads, and the DSP is held in reset until that has happened. One
// title, Dangerous Curves, calls into the undumped internal ROM of the
// E07-11. For that title the board enables the internal ROM stub, maps it
// into the DSP program space and releases the DSP from reset immediately.
//
// The enable flag is a preference value so that it can be forced from the
// command line for any title with the key:
//
//	taitojc.internalromstub
//
// Patching the external DSP ROM directly, as an alternative to the stub, is
// not supported.
package taitojc
