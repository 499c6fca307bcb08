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

// Package romimage creates images of the E07-11 internal ROM suitable for
// loading into other emulators or for comparing against a real dump, should
// one ever be made.
//
// Two images are available. Dump() reads every address of the internal ROM
// stub. Guessed() is a reconstruction that follows the instruction encoding of
// the TMS320C5x more closely than the stub does: interrupt vectors branch to a
// common return-from-interrupt handler and every address from 0x0100 holds a
// return from subroutine.
//
// Images are stored as little-endian 16 bit words.
package romimage
