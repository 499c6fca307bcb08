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

package romimage_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/e07stub/curated"
	"github.com/jetsetilly/e07stub/hardware/memory/internalrom"
	"github.com/jetsetilly/e07stub/romimage"
	"github.com/jetsetilly/e07stub/test"
)

func TestDump(t *testing.T) {
	img := romimage.Dump(internalrom.Device, true)
	test.ExpectEquality(t, img[0x0000], internalrom.OpBranch)
	test.ExpectEquality(t, img[0x0001], internalrom.ResetTarget)
	test.ExpectEquality(t, img[0x0002], internalrom.OpReturn)
	test.ExpectEquality(t, img[0x001f], internalrom.OpRET)
	test.ExpectEquality(t, img[0x0fff], internalrom.OpRET)

	img = romimage.Dump(internalrom.Board, false)
	for a := range img {
		if !test.ExpectEquality(t, img[a], internalrom.Undriven) {
			break
		}
	}
}

func TestGuessed(t *testing.T) {
	img := romimage.Guessed()
	test.ExpectEquality(t, img[0x0000], 0xf495)
	test.ExpectEquality(t, img[0x0001], 0x0020)
	test.ExpectEquality(t, img[0x0002], 0xf495)
	test.ExpectEquality(t, img[0x0003], 0x0080)
	test.ExpectEquality(t, img[0x001e], 0xf495)
	test.ExpectEquality(t, img[0x001f], 0x0080)
	test.ExpectEquality(t, img[0x0020], 0xf495)
	test.ExpectEquality(t, img[0x0021], 0x2000)
	test.ExpectEquality(t, img[0x0022], 0x0000)
	test.ExpectEquality(t, img[0x0080], 0x000f)
	test.ExpectEquality(t, img[0x0081], 0x0000)
	test.ExpectEquality(t, img[0x0100], 0x000d)
	test.ExpectEquality(t, img[0x0fff], 0x000d)
}

func TestWriteAndLoad(t *testing.T) {
	img := romimage.Guessed()

	var b bytes.Buffer
	n, err := img.WriteTo(&b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, int64(romimage.FileSize))

	// little endian
	test.ExpectEquality(t, b.Bytes()[0], 0x95)
	test.ExpectEquality(t, b.Bytes()[1], 0xf4)

	ld, err := romimage.Load(&b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(romimage.Compare(img, ld)), 0)
}

func TestShortImage(t *testing.T) {
	_, err := romimage.Load(bytes.NewReader(make([]byte, 10)))
	test.ExpectSuccess(t, curated.Is(err, romimage.ShortImage))
	test.ExpectEquality(t, err.Error(), "romimage: image too short (10 bytes)")

	_, err = romimage.Load(bytes.NewReader(nil))
	test.ExpectSuccess(t, curated.Is(err, romimage.ShortImage))
}

func TestCompare(t *testing.T) {
	d := romimage.Compare(romimage.Dump(internalrom.Device, true), romimage.Guessed())
	test.ExpectInequality(t, len(d), 0)
	test.ExpectEquality(t, d[0], 0x0001)

	d = romimage.Compare(romimage.Dump(internalrom.Device, true), romimage.Dump(internalrom.Board, true))
	test.ExpectEquality(t, len(d), 20)
}
