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

// Package truetype implements simple TrueType fonts for PDF files.
//
// A [Font] collects the text shown with the font while the document is
// built.  When the font is finalized, only the glyphs needed for this text
// are kept in the embedded font program, and the glyphs are renumbered so
// that character code i selects the i-th glyph of the subset.  The glyphs
// are ordered by their glyph ID in the original font, so the result does
// not depend on the order in which text was added.
//
// Subsetting is an optimisation: if the font cannot be subset, the
// complete font file is embedded instead.
package truetype

import (
	"bytes"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfdoc/font"
	"seehuhn.de/go/pdfdoc/pdf"
)

// Embedding describes how the font program is included in the PDF file.
type Embedding int

const (
	// Subset embeds only the glyphs used in the document.
	Subset Embedding = iota

	// Complete embeds all glyphs of the font.
	Complete

	// External does not embed the font program.  PDF viewers need to
	// have the font installed to display the text.
	External
)

func (e Embedding) String() string {
	switch e {
	case Subset:
		return "subset"
	case Complete:
		return "complete"
	case External:
		return "external"
	}
	return "truetype.Embedding(?)"
}

// Options control how a font is embedded.
type Options struct {
	Embedding Embedding

	// Trace receives diagnostic messages.  If this is nil, messages go to
	// the tracer selected by the key "pdfdoc.font".
	Trace tracing.Trace
}

var defaultOptions = &Options{}

// Font is a simple TrueType font, using single-byte character codes.
type Font struct {
	ref       pdf.Reference
	widthsRef pdf.Reference

	// Descriptor is the font descriptor of the font.  The fields are
	// filled in when the font is created and updated by Finalize.
	Descriptor *font.Descriptor

	path      string
	data      []byte
	info      *font.Info
	embedding Embedding
	trace     tracing.Trace

	text strings.Builder

	finalized bool
	glyphs    []glyph.ID // glyphs[0] is .notdef
	codes     map[rune]byte
	widths    []float64
	fontFile  []byte
	subsetTag string
	degraded  bool
}

// New creates a new TrueType font from the font file fname.
//
// If the file does not exist, the error satisfies errors.Is(err,
// fs.ErrNotExist).  If the file cannot be parsed, the error is a
// [*font.ParseError].
func New(a pdf.Allocator, fname string, opt *Options) (*Font, error) {
	if opt == nil {
		opt = defaultOptions
	}
	trace := opt.Trace
	if trace == nil {
		trace = tracer()
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	info, err := font.ParseInfo(data, fname)
	if err != nil {
		return nil, err
	}

	f := &Font{
		ref:       a.Alloc(),
		widthsRef: a.Alloc(),
		path:      fname,
		data:      data,
		info:      info,
		embedding: opt.Embedding,
		trace:     trace,
	}
	f.Descriptor = font.NewDescriptor(a, info)
	// Embedded fonts carry a cmap which maps our codes to glyphs.
	// External fonts are looked up through the system font's own cmap.
	f.Descriptor.Flags = font.MakeFlags(info, opt.Embedding != External)
	f.Descriptor.Embedded = opt.Embedding != External

	trace.Debugf("font %s: %q, embedding %s", f.ref, info.FullName, opt.Embedding)
	return f, nil
}

// Info returns the descriptive metadata read from the font file.
func (f *Font) Info() *font.Info {
	return f.info
}

// Subtype returns the PDF font type.
func (f *Font) Subtype() font.Subtype {
	return font.TrueType
}

// AddText records text which is shown using this font.
// Text must be added before the font is finalized.
func (f *Font) AddText(text string) {
	if f.finalized {
		f.trace.Errorf("font %s: text %q added after finalize", f.ref, text)
		return
	}
	f.text.WriteString(norm.NFC.String(text))
}

// Text returns all text added so far, in NFC normal form.
func (f *Font) Text() string {
	return f.text.String()
}

// Encode converts text into the character codes for this font.
// Characters which are not present in the font, or which were not added
// via AddText before the font was finalized, are omitted.
//
// Encode must only be called after Finalize.
func (f *Font) Encode(text string) pdf.String {
	if !f.finalized {
		f.trace.Errorf("font %s: Encode called before Finalize", f.ref)
		return nil
	}
	var res pdf.String
	for _, r := range norm.NFC.String(text) {
		if c, ok := f.codes[r]; ok {
			res = append(res, c)
		}
	}
	return res
}

// Glyphs returns the glyph IDs of the original font, in the order of the
// character codes 1, 2, ....  The list is empty before Finalize has been
// called.
func (f *Font) Glyphs() []glyph.ID {
	if len(f.glyphs) == 0 {
		return nil
	}
	return f.glyphs[1:]
}

// Widths returns the advance widths of the glyphs, in PDF glyph space
// units.  Element i is the width of the glyph with character code i+1.
func (f *Font) Widths() []float64 {
	return f.widths
}

// FontFile returns the font program which is embedded in the PDF file.
func (f *Font) FontFile() []byte {
	return f.fontFile
}

// SubsetTag returns the six letter tag which identifies the subset.
// The result is empty if the font is not subset.
func (f *Font) SubsetTag() string {
	return f.subsetTag
}

// Degraded reports whether the font could not be subset.  In this case
// the complete, unmodified font file is embedded.
func (f *Font) Degraded() bool {
	return f.degraded
}

// Reference implements the [pdf.Identified] interface.
func (f *Font) Reference() pdf.Reference {
	return f.ref
}

// AsPDF implements the [pdf.Exporter] interface.
//
// See section 9.6.2.1 of PDF 32000-1:2008.
func (f *Font) AsPDF() pdf.Object {
	return pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        f.Subtype().AsPDF(),
		"BaseFont":       pdf.Name(f.Descriptor.FontName),
		"FirstChar":      pdf.Integer(1),
		"LastChar":       pdf.Integer(len(f.widths)),
		"Widths":         f.widthsRef,
		"FontDescriptor": f.Descriptor.Reference(),
	}
}

// Integrate implements the [pdf.Integrator] interface.
// The font is finalized first, if this has not been done already.
func (f *Font) Integrate(w pdf.Putter) error {
	f.Finalize()

	err := pdf.Export(w, f)
	if err != nil {
		return err
	}

	ww := make(pdf.Array, len(f.widths))
	for i, width := range f.widths {
		ww[i] = pdf.Number(width)
	}
	err = w.Put(f.widthsRef, ww)
	if err != nil {
		return err
	}

	err = f.Descriptor.Integrate(w)
	if err != nil {
		return err
	}

	if f.Descriptor.Embedded {
		err = w.Put(f.Descriptor.FontFile(), f.fontFileStream())
		if err != nil {
			return err
		}
	}
	return nil
}

// fontFileStream returns the stream for the embedded font program.
//
// See section 9.9 of PDF 32000-1:2008.
func (f *Font) fontFileStream() *pdf.Stream {
	dict := pdf.Dict{}
	switch f.Descriptor.Kind {
	case font.FontFile2:
		dict["Length1"] = pdf.Integer(len(f.fontFile))
	case font.FontFile3:
		dict["Subtype"] = f.Descriptor.Kind.StreamSubtype()
	}
	return &pdf.Stream{
		Dict: dict,
		R:    bytes.NewReader(f.fontFile),
	}
}

// tracer traces with key 'pdfdoc.font'.
func tracer() tracing.Trace {
	return tracing.Select("pdfdoc.font")
}
