// seehuhn.de/go/pdfdoc - build PDF documents with embedded font subsets
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package document

import (
	"strconv"
)

// Length is a distance on the page.  Lengths are stored in PDF points,
// 1/72 of an inch.
type Length float64

// Length units.
const (
	Pt Length = 1
	In Length = 72
	Cm Length = 72 / 2.54
	Mm Length = 72 / 25.4
)

// Points returns the length in PDF points.
func (l Length) Points() float64 {
	return float64(l)
}

// In returns the length as a multiple of unit.
func (l Length) In(unit Length) float64 {
	return float64(l / unit)
}

func (l Length) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64) + "pt"
}

// ParseUnit returns the length unit for the names "pt", "in", "cm" and
// "mm".
func ParseUnit(name string) (Length, bool) {
	switch name {
	case "pt", "bp":
		return Pt, true
	case "in":
		return In, true
	case "cm":
		return Cm, true
	case "mm":
		return Mm, true
	}
	return 0, false
}
