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

package internalrom

import (
	"github.com/jetsetilly/e07stub/curated"
)

// Variant of the stub.
type Variant int

func (v Variant) String() string {
	switch v {
	case Device:
		return "DEVICE"
	case Board:
		return "BOARD"
	}
	return "unknown variant"
}

// List of valid Variant values.
const (
	Device Variant = iota
	Board
)

// NewVariant returns the Variant for the name. Names are as returned by
// Variant.String().
func NewVariant(name string) (Variant, error) {
	switch name {
	case "DEVICE":
		return Device, nil
	case "BOARD":
		return Board, nil
	}
	return Device, curated.Errorf(UnknownVariant, name)
}

// Size of the internal ROM in words.
const Size = 0x1000

// Top of the vector table. Each vector is two words: an instruction and an
// operand.
const VectorTop = 0x001f

// The two addresses at which one title polls for completion of an internal
// routine in a loop that would otherwise never end.
const (
	DeadLoopStart = 0x205b
	DeadLoopEnd   = 0x205c
)

// Instruction and operand words returned by the stub.
const (
	// unconditional branch. the following word is the branch target
	OpBranch = 0xf495

	// branch target of the reset vector. the start of external program memory
	ResetTarget = 0x2000

	// return used by the interrupt vectors of the Device variant
	OpReturn = 0xfc00

	// return from subroutine. also used to fill the reserved vector slots
	OpRET = 0xce00

	// no-operation used to break the dead loop
	OpNOP = 0x7f00

	// value returned when the stub is disabled. nothing drives the bus so
	// all bits are set
	Undriven = 0xffff
)

// filler operands for the interrupt vector slots
const (
	deviceFiller = 0x0000
	boardFiller  = 0xfffe
)

// the interrupt vectors occupy the slots from 0x0002 to 0x0015 inclusive. in
// order: INT0 (software), INT1, INT2, INT3, TINT, RINT, XINT, TRNT, TXNT, INT4
const (
	firstInterruptVector = 0x0002
	lastInterruptVector  = 0x0015
)

// Event indicates that a Lookup() has produced a result that is worth
// reporting.
type Event int

// List of valid Event values.
const (
	NoEvent Event = iota

	// the dead loop workaround has been used. always reported
	DeadLoop

	// a generic unmapped address has been read. only reported for addresses
	// where the low byte is zero, which limits the volume of reports to one
	// for every 256 addresses
	Unmapped
)

// Lookup returns the word at the address for the variant. If enabled is false
// the stub does not drive the bus and the Undriven value is returned.
//
// Addresses outside of the internal ROM are not rejected. It is the
// responsibility of the memory map to route only the appropriate addresses to
// the stub.
func Lookup(v Variant, address uint16, enabled bool) (uint16, Event) {
	if !enabled {
		return Undriven, NoEvent
	}

	if address <= VectorTop {
		return vector(v, address), NoEvent
	}

	if address >= DeadLoopStart && address <= DeadLoopEnd {
		return OpNOP, DeadLoop
	}

	if address&0x00ff == 0 {
		return OpRET, Unmapped
	}

	return OpRET, NoEvent
}

// Respond is a convenience function equivalent to Lookup() for the Device
// variant, with the event discarded.
func Respond(address uint16, enabled bool) uint16 {
	data, _ := Lookup(Device, address, enabled)
	return data
}

func vector(v Variant, address uint16) uint16 {
	switch {
	case address == 0x0000:
		return OpBranch
	case address == 0x0001:
		return ResetTarget
	case address >= firstInterruptVector && address <= lastInterruptVector:
		// the board driver this variant comes from only filled the INT0 and
		// INT1 slots (0x0002 to 0x0005). the same branch is used for every
		// interrupt slot here
		if address&0x01 == 0x00 {
			if v == Board {
				return OpBranch
			}
			return OpReturn
		}
		if v == Board {
			return boardFiller
		}
		return deviceFiller
	}

	// reserved vector slots
	return OpRET
}
