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

// Package ram implements word addressable RAM areas for the DSP memory map.
package ram

import (
	"fmt"
	"strings"
)

// RAM is a block of 16 bit words. It implements the bus.Memory interface.
// Addresses must be normalised to the start of the area.
type RAM struct {
	Label string
	RAM   []uint16
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM(label string, size int) *RAM {
	return &RAM{
		Label: label,
		RAM:   make([]uint16, size),
	}
}

// Reset contents of RAM.
func (ram *RAM) Reset() {
	clear(ram.RAM)
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	for i := 0; i < len(ram.RAM); i += 8 {
		s.WriteString(fmt.Sprintf("%04x:", i))
		for j := i; j < i+8 && j < len(ram.RAM); j++ {
			s.WriteString(fmt.Sprintf(" %04x", ram.RAM[j]))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Peek implements the bus.DebuggerBus interface.
func (ram *RAM) Peek(address uint16) (uint16, error) {
	return ram.Read(address)
}

// Poke implements the bus.DebuggerBus interface.
func (ram *RAM) Poke(address uint16, value uint16) error {
	return ram.Write(address, value)
}

// Read implements the bus.DSPBus interface. Addresses beyond the end of the
// RAM wrap around.
func (ram *RAM) Read(address uint16) (uint16, error) {
	return ram.RAM[int(address)%len(ram.RAM)], nil
}

// Write implements the bus.DSPBus interface. Addresses beyond the end of the
// RAM wrap around.
func (ram *RAM) Write(address uint16, data uint16) error {
	ram.RAM[int(address)%len(ram.RAM)] = data
	return nil
}
