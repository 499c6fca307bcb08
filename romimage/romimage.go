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

package romimage

import (
	"encoding/binary"
	"io"

	"github.com/jetsetilly/e07stub/curated"
	"github.com/jetsetilly/e07stub/hardware/memory/internalrom"
)

// Sentinal error patterns.
const (
	ShortImage = "romimage: image too short (%d bytes)"
	ReadError  = "romimage: read error: %v"
	WriteError = "romimage: write error: %v"
)

// Image is the contents of the internal ROM.
type Image [internalrom.Size]uint16

// Size of an image file in bytes.
const FileSize = internalrom.Size * 2

// Dump returns the image of the internal ROM stub.
func Dump(variant internalrom.Variant, enabled bool) Image {
	var img Image
	for a := range img {
		img[a], _ = internalrom.Lookup(variant, uint16(a), enabled)
	}
	return img
}

// TMS320C5x instructions used by the reconstruction.
const (
	opB    = 0xf495
	opRET  = 0x000d
	opRETE = 0x000f
)

// locations of the handlers in the reconstruction.
const (
	resetHandler     = 0x0020
	interruptHandler = 0x0080
	firstStub        = 0x0100
)

// Guessed returns the reconstructed internal ROM image.
func Guessed() Image {
	var img Image

	place := func(address int, words ...uint16) {
		for i, w := range words {
			if address+i < len(img) {
				img[address+i] = w
			}
		}
	}

	// vector table. reset goes to the boot handler and all other vectors go
	// to the interrupt handler
	place(0x0000, opB, resetHandler)
	for v := 0x0002; v <= internalrom.VectorTop; v += 2 {
		place(v, opB, interruptHandler)
	}

	// the boot handler branches to the start of external program memory
	place(resetHandler, opB, internalrom.ResetTarget)

	place(interruptHandler, opRETE)

	for a := firstStub; a < len(img); a++ {
		place(a, opRET)
	}

	return img
}

// WriteTo implements the io.WriterTo interface.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	b := make([]byte, FileSize)
	for i, v := range img {
		binary.LittleEndian.PutUint16(b[i*2:], v)
	}
	n, err := w.Write(b)
	if err != nil {
		return int64(n), curated.Errorf(WriteError, err)
	}
	return int64(n), nil
}

// Load an image from an io.Reader. Anything after the end of the image is
// not read.
func Load(r io.Reader) (Image, error) {
	var img Image

	b := make([]byte, FileSize)
	n, err := io.ReadFull(r, b)
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return img, curated.Errorf(ShortImage, n)
		}
		return img, curated.Errorf(ReadError, err)
	}

	for i := range img {
		img[i] = binary.LittleEndian.Uint16(b[i*2:])
	}

	return img, nil
}

// Compare two images and return the addresses at which they differ.
func Compare(a, b Image) []uint16 {
	var d []uint16
	for i := range a {
		if a[i] != b[i] {
			d = append(d, uint16(i))
		}
	}
	return d
}
