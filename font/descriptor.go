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
	"math"
	"strings"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Descriptor represents a PDF font descriptor.
// All lengths are given in PDF glyph space units, i.e. 1000 units per em.
//
// See section 9.8.1 of PDF 32000-1:2008.
type Descriptor struct {
	ref      pdf.Reference
	fontFile pdf.Reference

	FontName   string
	FontFamily string
	Flags      Flags
	Weight     Weight
	Stretch    os2.Width

	FontBBox    *pdf.Rectangle
	ItalicAngle float64
	Ascent      float64
	Descent     float64
	Leading     float64
	CapHeight   float64
	XHeight     float64
	StemV       float64
	AvgWidth    float64
	MaxWidth    float64

	// Kind selects the key under which the font program is referenced.
	Kind FileKind

	// Embedded is false if the font program is not included in the PDF
	// file.  In this case the descriptor has no FontFile entry.
	Embedded bool
}

// NewDescriptor allocates a font descriptor together with the reference for
// the embedded font program, and fills in the values from info.
func NewDescriptor(a pdf.Allocator, info *Info) *Descriptor {
	q := 1000 / float64(info.UnitsPerEm)

	fontName := info.PostScriptName
	if fontName == "" {
		fontName = strings.ReplaceAll(info.FullName, " ", "")
	}

	d := &Descriptor{
		ref:      a.Alloc(),
		fontFile: a.Alloc(),

		FontName:   fontName,
		FontFamily: info.FamilyName,
		Flags:      MakeFlags(info, false),
		Weight:     info.Weight,
		Stretch:    info.Stretch,

		FontBBox:    ScaleRect(info.BBox, q),
		ItalicAngle: math.Round(info.ItalicAngle*10) / 10,
		Ascent:      scale(info.Ascent, q),
		Descent:     scale(info.Descent, q),
		Leading:     scale(info.Ascent-info.Descent+info.LineGap, q),
		CapHeight:   scale(info.CapHeight, q),
		XHeight:     scale(info.XHeight, q),
		StemV:       info.Weight.StemV(),

		Kind:     info.Kind,
		Embedded: true,
	}
	if d.CapHeight == 0 {
		d.CapHeight = d.Ascent
	}
	return d
}

// Reference implements the [pdf.Identified] interface.
func (d *Descriptor) Reference() pdf.Reference {
	return d.ref
}

// FontFile returns the reference of the embedded font program.
func (d *Descriptor) FontFile() pdf.Reference {
	return d.fontFile
}

// AsPDF implements the [pdf.Exporter] interface.
func (d *Descriptor) AsPDF() pdf.Object {
	dict := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    pdf.Name(d.FontName),
		"Flags":       d.Flags.AsPDF(),
		"ItalicAngle": pdf.Number(d.ItalicAngle),
		"Ascent":      pdf.Number(d.Ascent),
		"Descent":     pdf.Number(d.Descent),
		"CapHeight":   pdf.Number(d.CapHeight),
		"StemV":       pdf.Number(d.StemV),
	}
	if d.FontBBox != nil {
		dict["FontBBox"] = d.FontBBox
	}
	if d.FontFamily != "" {
		dict["FontFamily"] = pdf.String(d.FontFamily)
	}
	if d.Weight != 0 {
		dict["FontWeight"] = d.Weight.AsPDF()
	}
	if name := StretchName(d.Stretch); name != "" {
		dict["FontStretch"] = name
	}
	if d.Leading != 0 {
		dict["Leading"] = pdf.Number(d.Leading)
	}
	if d.XHeight != 0 {
		dict["XHeight"] = pdf.Number(d.XHeight)
	}
	if d.AvgWidth != 0 {
		dict["AvgWidth"] = pdf.Number(d.AvgWidth)
	}
	if d.MaxWidth != 0 {
		dict["MaxWidth"] = pdf.Number(d.MaxWidth)
	}
	if d.Embedded {
		dict[d.Kind.Key()] = d.fontFile
	}
	return dict
}

// Integrate implements the [pdf.Integrator] interface.
// The font program is owned by the font and is not written here.
func (d *Descriptor) Integrate(w pdf.Putter) error {
	return pdf.Export(w, d)
}

// ScaleRect converts a rectangle from font design units to PDF glyph
// space units, rounding to integers.  The scale factor q is 1000 divided
// by the number of design units per em.
func ScaleRect(r funit.Rect16, q float64) *pdf.Rectangle {
	return &pdf.Rectangle{
		LLx: scale(r.LLx, q),
		LLy: scale(r.LLy, q),
		URx: scale(r.URx, q),
		URy: scale(r.URy, q),
	}
}

func scale(x funit.Int16, q float64) float64 {
	return math.Round(float64(x) * q)
}
