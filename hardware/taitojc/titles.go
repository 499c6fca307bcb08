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

package taitojc

import (
	"fmt"
	"sort"
)

// Title is a game that runs on the Taito JC System.
type Title struct {
	Name     string
	FullName string
	Year     int

	// the title calls routines in the DSP internal ROM
	NeedsInternalROMStub bool
}

func (t Title) String() string {
	return fmt.Sprintf("%s (%d)", t.FullName, t.Year)
}

var titles = map[string]Title{
	"sidebs":   {Name: "sidebs", FullName: "Side by Side", Year: 1996},
	"sidebs2":  {Name: "sidebs2", FullName: "Side by Side 2", Year: 1997},
	"landgear": {Name: "landgear", FullName: "Landing Gear", Year: 1995},
	"dendego":  {Name: "dendego", FullName: "Densha de GO!", Year: 1997},
	"dendego2": {Name: "dendego2", FullName: "Densha de GO! 2 Kousoku-hen", Year: 1998},
	"dangcurv": {Name: "dangcurv", FullName: "Dangerous Curves", Year: 1995, NeedsInternalROMStub: true},
}

// LookupTitle returns the title with the short name.
func LookupTitle(name string) (Title, bool) {
	t, ok := titles[name]
	return t, ok
}

// Titles returns the short names of all supported titles in alphabetical
// order.
func Titles() []string {
	n := make([]string, 0, len(titles))
	for k := range titles {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
