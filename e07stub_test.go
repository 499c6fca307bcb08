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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/e07stub/hardware/memory/internalrom"
	"github.com/jetsetilly/e07stub/hardware/memory/memorymap"
	"github.com/jetsetilly/e07stub/romimage"
	"github.com/jetsetilly/e07stub/test"
)

func TestProbe(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"0000", "0001", "0x0002", "0016", "205b"}, w), 0)
	test.ExpectEquality(t, w.String(), "0000: f495\n0001: 2000\n0002: fc00\n0016: ce00\n205b: 7f00\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"probe", "-variant", "board", "0002", "0003"}, w), 0)
	test.ExpectEquality(t, w.String(), "0002: f495\n0003: fffe\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"PROBE", "-disabled", "0000"}, w), 0)
	test.ExpectEquality(t, w.String(), "0000: ffff\n")
}

func TestProbeDSP(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"PROBE", "-dsp", "0000", "1000", "2400"}, w), 0)

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "0000: f495")
	test.ExpectEquality(t, lines[1], "1000: 0000")
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "2400: dsp: address unmapped"))
}

func TestErrors(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, w), 10)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error: "))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"PROBE", "zzzz"}, w), 20)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in PROBE mode: "))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"PROBE", "-variant", "nosuchvariant", "0000"}, w), 20)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"PROBE"}, w), 20)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"MAP", "-layout", "nosuchlayout"}, w), 20)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"BOARD", "-title", "nosuchtitle"}, w), 20)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"SOAK", "-duration", "forever"}, w), 20)
}

func TestMap(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"MAP"}, w), 0)
	test.ExpectEquality(t, w.String(), memorymap.Device.Name+"\n"+memorymap.Device.Summary())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"MAP", "-layout", "stub"}, w), 0)
	test.ExpectEquality(t, w.String(), memorymap.BoardStub.Name+"\n"+memorymap.BoardStub.Summary())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"MAP", "-layout", "DEFAULT"}, w), 0)
	test.ExpectEquality(t, w.String(), memorymap.BoardDefault.Name+"\n"+memorymap.BoardDefault.Summary())
}

func loadImage(t *testing.T, filename string) romimage.Image {
	t.Helper()

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := romimage.Load(f)
	test.DemandSuccess(t, err)

	return img
}

func TestDumpAndBuild(t *testing.T) {
	dir := t.TempDir()
	w := &test.Writer{}

	dump := filepath.Join(dir, "dump.bin")
	test.ExpectEquality(t, launch([]string{"DUMP", "-variant", "BOARD", dump}, w), 0)
	test.ExpectEquality(t, loadImage(t, dump), romimage.Dump(internalrom.Board, true))

	info, err := os.Stat(dump)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(romimage.FileSize))

	guessed := filepath.Join(dir, "guessed.bin")
	test.ExpectEquality(t, launch([]string{"BUILD", guessed}, w), 0)
	test.ExpectEquality(t, loadImage(t, guessed), romimage.Guessed())

	// output filename is required
	test.ExpectEquality(t, launch([]string{"DUMP"}, w), 20)
	test.ExpectEquality(t, launch([]string{"BUILD"}, w), 20)
}

func TestBoard(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"BOARD", "-title", "dangcurv", "0000", "0001"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "DSP reset line: CLEARED\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "internal ROM stub: true\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "0000: f495\n0001: 2000\n"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"BOARD", "-title", "sidebs"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "DSP reset line: ASSERTED\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "internal ROM stub: false\n"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"BOARD", "-title", "sidebs", "-prefs", "taitojc.internalromstub::true"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "DSP reset line: CLEARED\n"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"BOARD", "-title", "dangcurv", "-prefs", "taitojc.internalromstub::false"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "DSP reset line: ASSERTED\n"))
}

func TestSoak(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"SOAK", "-duration", "10ms"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "reads/sec"))
}

func TestMemviz(t *testing.T) {
	w := &test.Writer{}
	filename := filepath.Join(t.TempDir(), "board.dot")
	test.ExpectEquality(t, launch([]string{"MEMVIZ", "-title", "dangcurv", filename}, w), 0)

	b, err := os.ReadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}
