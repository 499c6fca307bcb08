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

// Package internalrom stubs the undumped 4K word internal ROM of the Taito
// E07-11, a TMS320C51 variant used on Taito JC System boards.
//
// The real contents of the ROM are unknown. The stub answers every read with
// an instruction word chosen to keep code that strays into the ROM from
// hanging: the reset vector branches to external program memory, interrupt
// vectors return immediately, and any other address returns from the
// subroutine that called it.
//
// The Lookup() function is the stub proper. It is a pure function of the
// address, the variant and the enable flag. The Stub type binds those to a
// logger and exposes the result as a memory area that can be installed in a
// memory map.
//
// There are two variants. The Device variant is used when the E07-11 is
// emulated as a device in its own right. The Board variant is used by the
// Taito JC board driver for the one title that needs it, and differs only in
// the interrupt vectors and in being gated by an enable flag.
package internalrom
