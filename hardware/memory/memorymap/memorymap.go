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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case InternalROM:
		return "InternalROM"
	case UserRAM:
		return "UserRAM"
	case SARAM:
		return "SARAM"
	case DARAMB0:
		return "DARAMB0"
	case ExtendedRAM:
		return "ExtendedRAM"
	case ProgramRAM:
		return "ProgramRAM"
	case WorkRAM:
		return "WorkRAM"
	case External:
		return "External"
	}

	return "Unmapped"
}

// List of valid Area values.
const (
	Unmapped Area = iota
	InternalROM
	UserRAM
	SARAM
	DARAMB0
	ExtendedRAM
	ProgramRAM
	WorkRAM
	External
)

// The origin and memory top for each area of the E07-11 device.
const (
	OriginInternalROM = uint16(0x0000)
	MemtopInternalROM = uint16(0x0fff)
	OriginUserRAM     = uint16(0x1000)
	MemtopUserRAM     = uint16(0x1fff)
	OriginSARAM       = uint16(0x2000)
	MemtopSARAM       = uint16(0x23ff)
	OriginDARAMB0     = uint16(0xfe00)
	MemtopDARAMB0     = uint16(0xffff)
)

// The origin and memory top for the additional areas used by the Taito JC
// board driver.
const (
	OriginExtendedRAM = uint16(0x2000)
	MemtopExtendedRAM = uint16(0x3fff)
	OriginProgramRAM  = uint16(0x0000)
	MemtopProgramRAM  = uint16(0x1fff)
	MirrorProgramRAM  = uint16(0x4000)
	OriginWorkRAM     = uint16(0x6000)
	MemtopWorkRAM     = uint16(0x7fff)
)

// Region is a single entry in a Layout.
type Region struct {
	Origin uint16
	Memtop uint16
	Area   Area

	// address bits that are ignored when matching an address to the region.
	// an address with any of these bits set is a mirror of the address with
	// those bits cleared
	Mirror uint16
}

// Size of the region in words. Mirrors do not add to the size.
func (r Region) Size() int {
	return int(r.Memtop) - int(r.Origin) + 1
}

// Contains returns true if the address falls within the region or one of its
// mirrors.
func (r Region) Contains(address uint16) bool {
	a := address &^ r.Mirror
	return a >= r.Origin && a <= r.Memtop
}

// Layout is an ordered list of regions. The first region that contains an
// address is the one that services it. Addresses not contained by any region
// are in the Default area.
type Layout struct {
	Name    string
	Regions []Region
	Default Area
}

// MapAddress returns the area for the address and the address normalised to
// the start of the region. ie. an index into the region's backing store.
//
// Addresses in the Default area are returned unchanged.
func (l Layout) MapAddress(address uint16) (uint16, Area) {
	for _, r := range l.Regions {
		if r.Contains(address) {
			return (address &^ r.Mirror) - r.Origin, r.Area
		}
	}
	return address, l.Default
}

// Region returns the first region of the specified area. Returns false if
// there is no such region.
func (l Layout) Region(area Area) (Region, bool) {
	for _, r := range l.Regions {
		if r.Area == area {
			return r, true
		}
	}
	return Region{}, false
}

// IsArea returns true if the address is in the specified area.
func (l Layout) IsArea(address uint16, area Area) bool {
	_, a := l.MapAddress(address)
	return a == area
}

// Device is the program memory layout of the E07-11 itself. Anything not
// covered by the device is external memory and is the responsibility of the
// board.
var Device = Layout{
	Name: "E07-11",
	Regions: []Region{
		{Origin: OriginInternalROM, Memtop: MemtopInternalROM, Area: InternalROM},
		{Origin: OriginUserRAM, Memtop: MemtopUserRAM, Area: UserRAM},
		{Origin: OriginSARAM, Memtop: MemtopSARAM, Area: SARAM},
		{Origin: OriginDARAMB0, Memtop: MemtopDARAMB0, Area: DARAMB0},
	},
	Default: External,
}

// BoardStub is the program memory layout used by the Taito JC board driver
// when the internal ROM stub is enabled.
var BoardStub = Layout{
	Name: "TaitoJC (internal ROM stub)",
	Regions: []Region{
		{Origin: OriginInternalROM, Memtop: MemtopInternalROM, Area: InternalROM},
		{Origin: OriginUserRAM, Memtop: MemtopUserRAM, Area: UserRAM},
		{Origin: OriginExtendedRAM, Memtop: MemtopExtendedRAM, Area: ExtendedRAM},
		{Origin: OriginWorkRAM, Memtop: MemtopWorkRAM, Area: WorkRAM},
	},
	Default: Unmapped,
}

// BoardDefault is the program memory layout used by the Taito JC board driver
// for all titles that do not use the internal ROM stub.
var BoardDefault = Layout{
	Name: "TaitoJC",
	Regions: []Region{
		{Origin: OriginProgramRAM, Memtop: MemtopProgramRAM, Area: ProgramRAM, Mirror: MirrorProgramRAM},
		{Origin: OriginWorkRAM, Memtop: MemtopWorkRAM, Area: WorkRAM},
	},
	Default: Unmapped,
}
