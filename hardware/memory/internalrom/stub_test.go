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

package internalrom_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/e07stub/curated"
	"github.com/jetsetilly/e07stub/hardware/memory/internalrom"
	"github.com/jetsetilly/e07stub/logger"
	"github.com/jetsetilly/e07stub/prefs"
	"github.com/jetsetilly/e07stub/test"
)

// countingLogger records every call to Logf. unlike logger.Logger it does not
// collapse repeated entries.
type countingLogger struct {
	lines []string
}

func (l *countingLogger) Logf(perm logger.Permission, tag string, detail string, args ...any) {
	if perm != logger.Allow && !perm.AllowLogging() {
		return
	}
	l.lines = append(l.lines, fmt.Sprintf("%s: %s", tag, fmt.Sprintf(detail, args...)))
}

func TestStubLogThrottle(t *testing.T) {
	log := &countingLogger{}
	stub := internalrom.NewStub(internalrom.Device, nil, log)

	for a := uint16(0x0100); a < 0x0300; a++ {
		data, err := stub.Read(a)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, data, internalrom.OpRET)
	}

	test.DemandEquality(t, len(log.lines), 2)
	test.ExpectEquality(t, log.lines[0], "E07-11: unmapped internal ROM read at 0100 (returning RET)")
	test.ExpectEquality(t, log.lines[1], "E07-11: unmapped internal ROM read at 0200 (returning RET)")
}

func TestStubDeadLoopLogging(t *testing.T) {
	log := &countingLogger{}
	stub := internalrom.NewStub(internalrom.Board, nil, log)

	// dead loop reports are not throttled
	for i := 0; i < 3; i++ {
		data, _ := stub.Read(0x205b)
		test.ExpectEquality(t, data, internalrom.OpNOP)
	}
	data, _ := stub.Read(0x205c)
	test.ExpectEquality(t, data, internalrom.OpNOP)

	test.DemandEquality(t, len(log.lines), 4)
	test.ExpectEquality(t, log.lines[0], "E07-11: dead loop workaround at PC=205B")
	test.ExpectEquality(t, log.lines[3], "E07-11: dead loop workaround at PC=205C")
}

func TestStubPermission(t *testing.T) {
	log := &countingLogger{}
	stub := internalrom.NewStub(internalrom.Device, nil, log)
	stub.SetPermission(logger.Deny)

	_, _ = stub.Read(0x0100)
	_, _ = stub.Read(0x205b)
	test.ExpectEquality(t, len(log.lines), 0)
}

func TestStubEnableSource(t *testing.T) {
	var enable prefs.Bool
	log := &countingLogger{}
	stub := internalrom.NewStub(internalrom.Board, &enable, log)

	test.ExpectFailure(t, stub.Enabled())
	data, _ := stub.Read(0x0000)
	test.ExpectEquality(t, data, internalrom.Undriven)

	// disabled stub never logs
	_, _ = stub.Read(0x0100)
	test.ExpectEquality(t, len(log.lines), 0)

	test.DemandSuccess(t, enable.Set(true))
	data, _ = stub.Read(0x0000)
	test.ExpectEquality(t, data, internalrom.OpBranch)
	data, _ = stub.Read(0x0001)
	test.ExpectEquality(t, data, internalrom.ResetTarget)
}

func TestStubDebugger(t *testing.T) {
	log := &countingLogger{}
	stub := internalrom.NewStub(internalrom.Device, nil, log)

	// peeking does not log
	data, err := stub.Peek(0x0100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, data, internalrom.OpRET)
	test.ExpectEquality(t, len(log.lines), 0)

	err = stub.Poke(0x0100, 0x1234)
	test.ExpectSuccess(t, curated.Is(err, internalrom.UnwritableAddress))

	// writes are silently dropped
	test.ExpectSuccess(t, stub.Write(0x0100, 0x1234))
	data, _ = stub.Peek(0x0100)
	test.ExpectEquality(t, data, internalrom.OpRET)
}

func TestStubCentralLogger(t *testing.T) {
	logger.Clear()
	stub := internalrom.NewStub(internalrom.Device, nil, nil)
	_, _ = stub.Read(0x0400)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "E07-11: unmapped internal ROM read at 0400 (returning RET)\n")
}

func TestStubNilPermission(t *testing.T) {
	log := logger.NewLogger(10)
	stub := internalrom.NewStub(internalrom.Device, nil, log)
	stub.SetPermission(nil)

	_, err := stub.Read(0x0100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, log.Len(), 1)
}
