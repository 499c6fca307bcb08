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

package performance_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/e07stub/curated"
	"github.com/jetsetilly/e07stub/hardware/memory/internalrom"
	"github.com/jetsetilly/e07stub/logger"
	"github.com/jetsetilly/e07stub/performance"
	"github.com/jetsetilly/e07stub/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("NONE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu,MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	_, err = performance.ParseProfileString("trace")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

// counter is a bus.DSPBus that returns a different value on every read
type counter struct {
	n uint16
}

func (c *counter) Read(_ uint16) (uint16, error) {
	c.n++
	return c.n, nil
}

func (c *counter) Write(_ uint16, _ uint16) error {
	return nil
}

func TestCheck(t *testing.T) {
	stub := internalrom.NewStub(internalrom.Device, nil, logger.NewLogger(10))
	stub.SetPermission(logger.Deny)

	w := &strings.Builder{}
	err := performance.Check(w, performance.ProfileNone, stub, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), "reads/sec"))
}

func TestInconsistent(t *testing.T) {
	w := &strings.Builder{}
	err := performance.Check(w, performance.ProfileNone, &counter{}, "50ms")
	test.ExpectSuccess(t, curated.Is(err, performance.Inconsistent))
}

func TestBadDuration(t *testing.T) {
	w := &strings.Builder{}
	err := performance.Check(w, performance.ProfileNone, &counter{}, "soon")
	test.ExpectSuccess(t, curated.Is(err, performance.BadDuration))
}
