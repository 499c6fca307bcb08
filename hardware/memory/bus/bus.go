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

package bus

// DSPBus defines the operations for the memory system when accessed from the
// DSP. Words are 16 bits wide and addressed by word.
type DSPBus interface {
	Read(address uint16) (uint16, error)
	Write(address uint16, data uint16) error
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
type DebuggerBus interface {
	Peek(address uint16) (uint16, error)
	Poke(address uint16, value uint16) error
}

// Memory is implemented by areas that are accessible by both the DSP and by
// debuggers.
type Memory interface {
	DSPBus
	DebuggerBus
}
