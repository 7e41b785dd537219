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
	"strings"

	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdfdoc/pdf"
)

// stretchRules lists the keywords for each width class, most specific
// phrases first.
var stretchRules = []struct {
	width    os2.Width
	keywords []string
}{
	{os2.WidthUltraCondensed, []string{"ULTRA CONDENSED", "ULTRACONDENSED"}},
	{os2.WidthExtraCondensed, []string{"EXTRA CONDENSED", "EXTRACONDENSED"}},
	{os2.WidthSemiCondensed, []string{"SEMI CONDENSED", "SEMICONDENSED", "DEMI CONDENSED", "DEMICONDENSED"}},
	{os2.WidthCondensed, []string{"CONDENSED"}},
	{os2.WidthSemiExpanded, []string{"SEMI EXPANDED", "SEMIEXPANDED", "DEMI EXPANDED", "DEMIEXPANDED"}},
	{os2.WidthExtraExpanded, []string{"EXTRA EXPANDED", "EXTRAEXPANDED"}},
	{os2.WidthUltraExpanded, []string{"ULTRA EXPANDED", "ULTRAEXPANDED"}},
	{os2.WidthExpanded, []string{"EXPANDED"}},
}

// ClassifyStretch guesses the width class of a font from its name.
// The comparison ignores case.  If no keyword matches, the result is
// os2.WidthNormal and ok is false.
func ClassifyStretch(name string) (w os2.Width, ok bool) {
	upper := upperName(name)
	for _, rule := range stretchRules {
		for _, kw := range rule.keywords {
			if strings.Contains(upper, kw) {
				return rule.width, true
			}
		}
	}
	return os2.WidthNormal, false
}

// StretchName returns the value of the FontStretch entry in a font
// descriptor.  The result is empty for invalid width classes.
func StretchName(w os2.Width) pdf.Name {
	switch w {
	case os2.WidthUltraCondensed:
		return "UltraCondensed"
	case os2.WidthExtraCondensed:
		return "ExtraCondensed"
	case os2.WidthCondensed:
		return "Condensed"
	case os2.WidthSemiCondensed:
		return "SemiCondensed"
	case os2.WidthNormal:
		return "Normal"
	case os2.WidthSemiExpanded:
		return "SemiExpanded"
	case os2.WidthExpanded:
		return "Expanded"
	case os2.WidthExtraExpanded:
		return "ExtraExpanded"
	case os2.WidthUltraExpanded:
		return "UltraExpanded"
	}
	return ""
}
