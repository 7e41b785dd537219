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
	"path/filepath"
	"strings"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Subtype is the font type, as given by the Subtype entry of a font
// dictionary.
type Subtype int

// The font types supported by this library.
const (
	Type1 Subtype = iota
	TrueType
	Type3
)

func (s Subtype) String() string {
	switch s {
	case Type1:
		return "Type1"
	case TrueType:
		return "TrueType"
	case Type3:
		return "Type3"
	}
	return "font.Subtype(?)"
}

// AsPDF returns the value of the Subtype entry in a font dictionary.
func (s Subtype) AsPDF() pdf.Object {
	return pdf.Name(s.String())
}

// FileKind describes the format of an embedded font program.  This
// determines the font descriptor key under which the font program is
// stored.
type FileKind int

// The font program formats which can be embedded.
const (
	// FontFile is a Type 1 font program.
	FontFile FileKind = iota

	// FontFile2 is a TrueType font program with glyf outlines.
	FontFile2

	// FontFile3 is an OpenType font program, embedded with
	// Subtype OpenType.
	FontFile3
)

// Key returns the font descriptor key for this kind of font program.
func (k FileKind) Key() pdf.Name {
	switch k {
	case FontFile2:
		return "FontFile2"
	case FontFile3:
		return "FontFile3"
	default:
		return "FontFile"
	}
}

// StreamSubtype returns the value of the Subtype entry of the font program
// stream, or the empty name if no Subtype entry is needed.
func (k FileKind) StreamSubtype() pdf.Name {
	if k == FontFile3 {
		return "OpenType"
	}
	return ""
}

func (k FileKind) String() string {
	return string(k.Key())
}

// DetectFileKind decides how a font program is embedded.
//
// If the outline format of the font is known, this determines the result.
// Otherwise the file name extension is used: ".otf" files are embedded as
// OpenType fonts, everything else as TrueType fonts.
func DetectFileKind(fname string, isGlyf, isCFF bool) FileKind {
	switch {
	case isCFF:
		return FontFile3
	case isGlyf:
		return FontFile2
	}
	if strings.EqualFold(filepath.Ext(fname), ".otf") {
		return FontFile3
	}
	return FontFile2
}
