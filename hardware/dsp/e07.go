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

package dsp

import (
	"github.com/jetsetilly/e07stub/curated"
	"github.com/jetsetilly/e07stub/hardware/memory/bus"
	"github.com/jetsetilly/e07stub/hardware/memory/internalrom"
	"github.com/jetsetilly/e07stub/hardware/memory/memorymap"
	"github.com/jetsetilly/e07stub/hardware/memory/ram"
	"github.com/jetsetilly/e07stub/logger"
)

// Sentinal error patterns.
const (
	UnmappedAddress = "dsp: address unmapped (%#04x)"
)

// E07 is the Taito E07-11 (a TMS320C51 with a custom internal ROM). It
// implements the bus.Memory interface.
type E07 struct {
	InternalROM *internalrom.Stub
	UserRAM     *ram.RAM
	SARAM       *ram.RAM
	DARAMB0     *ram.RAM

	// memory outside of the device. attached by the board
	external bus.Memory
}

// NewE07 is the preferred method of initialisation for the E07 type. If log
// is nil the central logger is used.
func NewE07(log internalrom.Logger) *E07 {
	if log == nil {
		log = logger.Central()
	}

	d := &E07{
		InternalROM: internalrom.NewStub(internalrom.Device, internalrom.AlwaysEnabled, log),
		UserRAM:     ram.NewRAM("UserRAM", size(memorymap.UserRAM)),
		SARAM:       ram.NewRAM("SARAM", size(memorymap.SARAM)),
		DARAMB0:     ram.NewRAM("DARAMB0", size(memorymap.DARAMB0)),
	}

	log.Logf(logger.Allow, "E07-11", "using internal ROM stub")
	log.Logf(logger.Allow, "E07-11", "internal ROM (e07-11.ic29) is not dumped from hardware")
	log.Logf(logger.Allow, "E07-11", "some games may not work correctly")
	log.Logf(logger.Allow, "E07-11", "the 4K internal ROM needs to be extracted from any Taito JC board")

	return d
}

func size(area memorymap.Area) int {
	r, ok := memorymap.Device.Region(area)
	if !ok {
		panic("dsp: device layout is missing an area: " + area.String())
	}
	return r.Size()
}

// AttachExternal memory to the DSP. Addresses are passed to the external
// memory unchanged. A nil value detaches any existing external memory.
func (d *E07) AttachExternal(ext bus.Memory) {
	d.external = ext
}

// Reset the on-chip RAM banks.
func (d *E07) Reset() {
	d.UserRAM.Reset()
	d.SARAM.Reset()
	d.DARAMB0.Reset()
}

// mapAddress returns the memory area and normalised address for a DSP
// address.
func (d *E07) mapAddress(address uint16) (bus.Memory, uint16, error) {
	a, area := memorymap.Device.MapAddress(address)
	switch area {
	case memorymap.InternalROM:
		return d.InternalROM, a, nil
	case memorymap.UserRAM:
		return d.UserRAM, a, nil
	case memorymap.SARAM:
		return d.SARAM, a, nil
	case memorymap.DARAMB0:
		return d.DARAMB0, a, nil
	case memorymap.External:
		if d.external != nil {
			return d.external, a, nil
		}
	}
	return nil, 0, curated.Errorf(UnmappedAddress, address)
}

// Read implements the bus.DSPBus interface.
func (d *E07) Read(address uint16) (uint16, error) {
	mem, a, err := d.mapAddress(address)
	if err != nil {
		return 0, err
	}
	return mem.Read(a)
}

// Write implements the bus.DSPBus interface.
func (d *E07) Write(address uint16, data uint16) error {
	mem, a, err := d.mapAddress(address)
	if err != nil {
		return err
	}
	return mem.Write(a, data)
}

// Peek implements the bus.DebuggerBus interface.
func (d *E07) Peek(address uint16) (uint16, error) {
	mem, a, err := d.mapAddress(address)
	if err != nil {
		return 0, err
	}
	return mem.Peek(a)
}

// Poke implements the bus.DebuggerBus interface.
func (d *E07) Poke(address uint16, value uint16) error {
	mem, a, err := d.mapAddress(address)
	if err != nil {
		return err
	}
	return mem.Poke(a, value)
}
