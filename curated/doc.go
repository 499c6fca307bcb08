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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is remembered and is
// used to differentiate curated errors. Packages in e07stub declare their
// patterns as constants so that callers can test for them:
//
//	const UnmappedAddress = "dsp: address unmapped (%#04x)"
//
//	err := curated.Errorf(UnmappedAddress, addr)
//	if curated.Is(err, UnmappedAddress) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A curated error wrapping another error (curated or not) is
// also visible to errors.Unwrap(), errors.Is() and errors.As().
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, this chain:
//
//	romimage: romimage: file too short (10 bytes)
//
// is reported as:
//
//	romimage: file too short (10 bytes)
package curated
