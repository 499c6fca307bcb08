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

package logger

import (
	"bytes"
	"io"
)

// ANSI sequences used by the Colorizer.
const (
	penTag    = "\033[36m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// each line is printed with a different pen to the detail.
//
// Only useful for echoing to a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. The returned count is the number
// of bytes consumed from p, which does not include the ANSI sequences.
func (c Colorizer) Write(p []byte) (int, error) {
	n := 0

	for _, l := range bytes.SplitAfter(p, []byte("\n")) {
		if len(l) == 0 {
			continue
		}

		tag, detail, found := bytes.Cut(l, []byte(": "))
		if !found {
			m, err := c.out.Write(l)
			n += m
			if err != nil {
				return n, err
			}
			continue
		}

		b := make([]byte, 0, len(l)+len(penTag)+len(penNormal))
		b = append(b, penTag...)
		b = append(b, tag...)
		b = append(b, penNormal...)
		b = append(b, ": "...)
		b = append(b, detail...)

		_, err := c.out.Write(b)
		if err != nil {
			return n, err
		}
		n += len(l)
	}

	return n, nil
}
