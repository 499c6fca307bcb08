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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/e07stub/curated"
	"github.com/jetsetilly/e07stub/hardware/memory/bus"
	"github.com/jetsetilly/e07stub/hardware/memory/internalrom"
)

// Sentinal error patterns.
const (
	Inconsistent = "performance: inconsistent read at %04x (%04x then %04x)"
	ReadError    = "performance: read error: %v"
	BadDuration  = "performance: bad duration: %v"
)

// Result of a performance check.
type Result struct {
	Sweeps   int
	Reads    int
	Duration time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f reads/sec (%d sweeps in %.2f seconds)",
		float64(r.Reads)/r.Duration.Seconds(), r.Sweeps, r.Duration.Seconds())
}

// Check reads every address of the internal ROM through the DSP bus for the
// specified duration. The duration string is in the format accepted by
// time.ParseDuration().
func Check(output io.Writer, profile Profile, mem bus.DSPBus, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(BadDuration, err)
	}

	var res Result

	runner := func() error {
		var err error
		res, err = run(mem, dur)
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\n", res)))

	return nil
}

func run(mem bus.DSPBus, dur time.Duration) (Result, error) {
	var res Result
	var first [internalrom.Size]uint16

	start := time.Now()

	for time.Since(start) < dur {
		for a := range first {
			d, err := mem.Read(uint16(a))
			if err != nil {
				return res, curated.Errorf(ReadError, err)
			}
			if res.Sweeps == 0 {
				first[a] = d
			} else if d != first[a] {
				return res, curated.Errorf(Inconsistent, a, first[a], d)
			}
		}
		res.Sweeps++
		res.Reads += len(first)
	}

	res.Duration = time.Since(start)

	return res, nil
}
