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
	"github.com/jetsetilly/e07stub/hardware/memory/internalrom"
	"github.com/jetsetilly/e07stub/hardware/memory/memorymap"
	"github.com/jetsetilly/e07stub/hardware/memory/ram"
	"github.com/jetsetilly/e07stub/logger"
	"github.com/jetsetilly/e07stub/prefs"
)

// ResetLine is the state of the DSP reset input.
type ResetLine int

func (r ResetLine) String() string {
	if r == Cleared {
		return "CLEARED"
	}
	return "ASSERTED"
}

// List of valid ResetLine values.
const (
	Asserted ResetLine = iota
	Cleared
)

// PrefsKey is the command line preference key for the internal ROM stub
// toggle.
const PrefsKey = "taitojc.internalromstub"

// TrapAddress is the program address written to by the dead loop in
// Dangerous Curves.
const TrapAddress = 0x205c

// SharedRAMSize is the number of words in the RAM shared by the DSP and the
// main CPU.
const SharedRAMSize = 0x800

// accesses to shared RAM at or above this offset are logged when the internal
// ROM stub is enabled. the top of shared RAM is where the DSP and the main CPU
// exchange commands
const sharedLogOffset = 0x7f0

const logTag = "DSP"

// MCULatches are the registers through which the main CPU and the HC11 MCU
// exchange commands and data.
type MCULatches struct {
	CommMain uint8
	CommHC11 uint8
	DataMain uint8
	DataHC11 uint8
}

// Board is the DSP side of the Taito JC System.
type Board struct {
	Title Title

	// whether the DSP internal ROM stub is used. defaults to false
	InternalROMStub prefs.Bool

	// the DSP program memory. not valid until Init() has been called
	Program *ProgramSpace

	SharedRAM *ram.RAM

	// command and data latches between the main CPU and the HC11 MCU
	MCU MCULatches

	// the state of the DSP reset line. decided on Reset()
	DSPReset ResetLine

	// PC returns the program counter of the DSP. the DSP core is not part of
	// this package and so the value is supplied by whatever is driving the
	// board. used for logging only
	PC func() uint16

	log internalrom.Logger
}

// NewBoard is the preferred method of initialisation for the Board type. If
// log is nil the central logger is used.
func NewBoard(log internalrom.Logger) *Board {
	if log == nil {
		log = logger.Central()
	}

	b := &Board{
		SharedRAM: ram.NewRAM("SharedRAM", SharedRAMSize),
		DSPReset:  Asserted,
		PC:        func() uint16 { return 0 },
		log:       log,
	}
	// no hooks have been installed on the preference yet so Start() cannot
	// fail at this point
	_ = b.Start()

	return b
}

// Start puts the board into its power-on state. The internal ROM stub is
// always disabled on start. Init() decides whether it should be enabled.
//
// Returns any error from the hooks installed on the InternalROMStub
// preference.
func (b *Board) Start() error {
	err := b.InternalROMStub.Reset()
	if err != nil {
		return curated.Errorf("taitojc: start: %v", err)
	}
	return nil
}

// Init prepares the board for the named title. The internal ROM stub is
// enabled if the title needs it, unless overridden by the command line
// preference. The program memory map is built according to the result.
func (b *Board) Init(name string) error {
	t, ok := LookupTitle(name)
	if !ok {
		return curated.Errorf(UnknownTitle, name)
	}
	b.Title = t

	err := b.InternalROMStub.Set(t.NeedsInternalROMStub)
	if err != nil {
		return curated.Errorf("taitojc: %v", err)
	}

	if ok, v := prefs.GetCommandLinePref(PrefsKey); ok {
		err := b.InternalROMStub.Set(v)
		if err != nil {
			return curated.Errorf("taitojc: %v", err)
		}
	}

	b.buildProgramSpace()

	if t.NeedsInternalROMStub {
		b.Program.InstallWriteTrap(TrapAddress, b.trapWrite)
	}

	if b.InternalROMStub.Enabled() {
		b.log.Logf(logger.Allow, logTag, "internal ROM stub enabled for %s", t.Name)
	}

	return nil
}

func (b *Board) buildProgramSpace() {
	if b.InternalROMStub.Enabled() {
		b.Program = newProgramSpace(memorymap.BoardStub)
		b.Program.install(memorymap.InternalROM, internalrom.NewStub(internalrom.Board, &b.InternalROMStub, b.log))
		b.Program.install(memorymap.UserRAM, b.newRAM(memorymap.UserRAM))
		b.Program.install(memorymap.ExtendedRAM, b.newRAM(memorymap.ExtendedRAM))
		b.Program.install(memorymap.WorkRAM, b.newRAM(memorymap.WorkRAM))
		return
	}

	b.Program = newProgramSpace(memorymap.BoardDefault)
	b.Program.install(memorymap.ProgramRAM, b.newRAM(memorymap.ProgramRAM))
	b.Program.install(memorymap.WorkRAM, b.newRAM(memorymap.WorkRAM))
}

func (b *Board) newRAM(area memorymap.Area) *ram.RAM {
	r, ok := b.Program.Layout.Region(area)
	if !ok {
		panic("taitojc: layout is missing an area: " + area.String())
	}
	return ram.NewRAM(area.String(), r.Size())
}

// Reset the board. Shared RAM and the MCU latches are cleared. The DSP is held in reset until the main CPU has uploaded
// code, unless the internal ROM stub is enabled, in which case the stub
// supplies a boot path and the DSP is released immediately.
func (b *Board) Reset() {
	b.SharedRAM.Reset()
	b.MCU = MCULatches{}

	if b.InternalROMStub.Enabled() {
		b.DSPReset = Cleared
	} else {
		b.DSPReset = Asserted
	}
}

func (b *Board) trapWrite(address uint16, data uint16) {
	b.log.Logf(logger.Allow, logTag, "write to problematic address %#04x, data=%04x", address, data)
}

// SharedRead is a read of shared RAM by the DSP.
func (b *Board) SharedRead(offset uint16) uint16 {
	data, _ := b.SharedRAM.Read(offset)
	if b.InternalROMStub.Enabled() && offset >= sharedLogOffset {
		b.log.Logf(logger.Allow, logTag, "shared RAM read: offset=%03x, data=%04x, PC=%04x", offset, data, b.PC())
	}
	return data
}

// SharedWrite is a write to shared RAM by the DSP. Only the bits set in mask
// are changed.
func (b *Board) SharedWrite(offset uint16, data uint16, mask uint16) {
	if b.InternalROMStub.Enabled() && offset >= sharedLogOffset {
		b.log.Logf(logger.Allow, logTag, "shared RAM write: offset=%03x, data=%04x, mask=%04x, PC=%04x", offset, data, mask, b.PC())
	}
	old, _ := b.SharedRAM.Read(offset)
	_ = b.SharedRAM.Write(offset, (old&^mask)|(data&mask))
}
