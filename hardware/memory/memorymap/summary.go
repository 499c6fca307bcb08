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

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in the
// layout, in address order. Useful for reference.
func (l Layout) Summary() string {
	s := strings.Builder{}

	_, current := l.MapAddress(0)
	start := uint32(0)

	// the loop counter is wider than an address so that the loop can end
	// after the last address in memory
	for a := uint32(1); a <= 0xffff; a++ {
		_, area := l.MapAddress(uint16(a))
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, a-1, current))
			current = area
			start = a
		}
	}

	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, 0xffff, current))

	return s.String()
}
