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

package font

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Weight is the visual weight of a font, on the scale used by the
// usWeightClass field of the OS/2 table.
type Weight uint16

// The weight classes recognised by [ClassifyWeight].
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
	WeightExtraBlack Weight = 950
)

// weightRules lists the keywords for each weight class.  The most specific
// phrases come first, so that for example "EXTRA BOLD" is found before
// "BOLD".
var weightRules = []struct {
	weight   Weight
	keywords []string
}{
	{WeightThin, []string{"THIN", "HAIRLINE"}},
	{WeightExtraLight, []string{"EXTRA LIGHT", "EXTRALIGHT", "ULTRA LIGHT", "ULTRALIGHT"}},
	{WeightLight, []string{"LIGHT"}},
	{WeightNormal, []string{"NORMAL", "REGULAR", "BOOK"}},
	{WeightMedium, []string{"MEDIUM"}},
	{WeightSemiBold, []string{"SEMI BOLD", "SEMIBOLD", "DEMI BOLD", "DEMIBOLD"}},
	{WeightExtraBold, []string{"EXTRA BOLD", "EXTRABOLD", "ULTRA BOLD", "ULTRABOLD"}},
	{WeightBold, []string{"BOLD"}},
	{WeightExtraBlack, []string{"EXTRA BLACK", "EXTRABLACK", "ULTRA BLACK", "ULTRABLACK"}},
	{WeightBlack, []string{"BLACK", "HEAVY"}},
}

// ClassifyWeight guesses the weight of a font from its name.
// The comparison ignores case.  If no keyword matches, the result is
// WeightNormal and ok is false.
func ClassifyWeight(name string) (w Weight, ok bool) {
	upper := upperName(name)
	for _, rule := range weightRules {
		for _, kw := range rule.keywords {
			if strings.Contains(upper, kw) {
				return rule.weight, true
			}
		}
	}
	return WeightNormal, false
}

// WeightFromOS2 converts an OS/2 weight class to the nearest weight
// recognised by this package.
func WeightFromOS2(w os2.Weight) Weight {
	x := Weight(w.Rounded())
	switch {
	case x <= WeightThin:
		return WeightThin
	case x > WeightBlack:
		return WeightExtraBlack
	default:
		return x
	}
}

// StemV returns an estimate for the dominant vertical stem width of a font
// with the given weight, in PDF glyph space units.
func (w Weight) StemV() float64 {
	switch {
	case w <= WeightExtraLight:
		return 50
	case w <= WeightLight:
		return 71
	case w <= WeightNormal:
		return 109
	case w <= WeightMedium:
		return 125
	case w <= WeightSemiBold:
		return 135
	case w <= WeightBold:
		return 165
	case w <= WeightExtraBold:
		return 201
	default:
		return 241
	}
}

func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightExtraLight:
		return "ExtraLight"
	case WeightLight:
		return "Light"
	case WeightNormal:
		return "Normal"
	case WeightMedium:
		return "Medium"
	case WeightSemiBold:
		return "SemiBold"
	case WeightBold:
		return "Bold"
	case WeightExtraBold:
		return "ExtraBold"
	case WeightBlack:
		return "Black"
	case WeightExtraBlack:
		return "ExtraBlack"
	}
	return "font.Weight(" + strconv.Itoa(int(w)) + ")"
}

// AsPDF returns the value of the FontWeight entry in a font descriptor.
func (w Weight) AsPDF() pdf.Object {
	return pdf.Integer(w)
}

func upperName(name string) string {
	return cases.Upper(language.Und).String(name)
}
