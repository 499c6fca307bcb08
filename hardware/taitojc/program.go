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

package taitojc

import (
	"github.com/jetsetilly/e07stub/curated"
	"github.com/jetsetilly/e07stub/hardware/memory/bus"
	"github.com/jetsetilly/e07stub/hardware/memory/memorymap"
)

// Sentinal error patterns.
const (
	UnmappedAddress = "taitojc: program address unmapped (%#04x)"
	UnknownTitle    = "taitojc: unknown title (%s)"
)

// WriteTrap is called instead of the normal write when the DSP writes to a
// trapped address.
type WriteTrap func(address uint16, data uint16)

// ProgramSpace is the DSP program memory as arranged by the board. It
// implements the bus.Memory interface.
type ProgramSpace struct {
	Layout memorymap.Layout
	areas  map[memorymap.Area]bus.Memory
	traps  map[uint16]WriteTrap
}

func newProgramSpace(layout memorymap.Layout) *ProgramSpace {
	return &ProgramSpace{
		Layout: layout,
		areas:  make(map[memorymap.Area]bus.Memory),
		traps:  make(map[uint16]WriteTrap),
	}
}

func (p *ProgramSpace) install(area memorymap.Area, mem bus.Memory) {
	p.areas[area] = mem
}

// InstallWriteTrap replaces normal writes to the address with a call to the
// trap function. Reads of the address are not affected.
func (p *ProgramSpace) InstallWriteTrap(address uint16, trap WriteTrap) {
	p.traps[address] = trap
}

// Area returns the memory servicing the area. Returns nil if the area is not
// present in the layout.
func (p *ProgramSpace) Area(area memorymap.Area) bus.Memory {
	return p.areas[area]
}

func (p *ProgramSpace) mapAddress(address uint16) (bus.Memory, uint16, error) {
	a, area := p.Layout.MapAddress(address)
	if mem, ok := p.areas[area]; ok {
		return mem, a, nil
	}
	return nil, 0, curated.Errorf(UnmappedAddress, address)
}

// Read implements the bus.DSPBus interface.
func (p *ProgramSpace) Read(address uint16) (uint16, error) {
	mem, a, err := p.mapAddress(address)
	if err != nil {
		return 0, err
	}
	return mem.Read(a)
}

// Write implements the bus.DSPBus interface.
func (p *ProgramSpace) Write(address uint16, data uint16) error {
	if trap, ok := p.traps[address]; ok {
		trap(address, data)
		return nil
	}
	mem, a, err := p.mapAddress(address)
	if err != nil {
		return err
	}
	return mem.Write(a, data)
}

// Peek implements the bus.DebuggerBus interface.
func (p *ProgramSpace) Peek(address uint16) (uint16, error) {
	mem, a, err := p.mapAddress(address)
	if err != nil {
		return 0, err
	}
	return mem.Peek(a)
}

// Poke implements the bus.DebuggerBus interface. Write traps are not
// triggered by poking.
func (p *ProgramSpace) Poke(address uint16, value uint16) error {
	mem, a, err := p.mapAddress(address)
	if err != nil {
		return err
	}
	return mem.Poke(a, value)
}
