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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of defining flags globally, flags are added to an
// instance of Modes.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	variant := md.AddString("variant", "DEVICE", "stub variant: DEVICE, BOARD")
//	p, err := md.Parse()
//
// Modes are added with AddSubModes(). The first sub-mode is the default and
// is selected if the first argument after the flags is not a listed mode.
// Modes are case insensitive.
//
//	md.AddSubModes("PROBE", "MAP", "DUMP")
//	p, err := md.Parse()
//	switch md.Mode() {
//	case "PROBE":
//		md.NewMode()
//		...
//	}
//
// Each call to NewMode() starts a new set of flags for the arguments that
// remain after the mode.
//
// Help is requested with the -help flag. Parse() prints the help message to
// the Output writer and returns ParseHelp.
package modalflag
