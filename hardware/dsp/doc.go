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

// Package dsp is the memory front end of the Taito E07-11 DSP. It routes
// program memory accesses to the internal ROM stub, the on-chip RAM banks or
// to the external memory attached by the board.
//
// Instruction fetch and execution are not emulated here. The processor core
// uses the E07 type through the bus.DSPBus interface.
package dsp
