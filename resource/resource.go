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

// Package resource implements the resource dictionary shared by the pages
// of a document.
package resource

import (
	"strconv"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Resources maps short font codes to font entities.
//
// Codes are assigned sequentially, "F0", "F1", ..., in the order the fonts
// are added.  Fonts cannot be removed.
type Resources struct {
	ref   pdf.Reference
	codes []pdf.Name
	fonts map[pdf.Name]pdf.Integrator
}

// New allocates an empty resource dictionary.
func New(a pdf.Allocator) *Resources {
	return &Resources{
		ref:   a.Alloc(),
		fonts: map[pdf.Name]pdf.Integrator{},
	}
}

// Reference implements the [pdf.Identified] interface.
func (r *Resources) Reference() pdf.Reference {
	return r.ref
}

// Add registers a font and returns the code under which the font can be
// used in content streams.
func (r *Resources) Add(font pdf.Integrator) pdf.Name {
	code := pdf.Name("F" + strconv.Itoa(len(r.codes)))
	r.codes = append(r.codes, code)
	r.fonts[code] = font
	return code
}

// Font returns the font registered under the given code.
func (r *Resources) Font(code pdf.Name) (pdf.Integrator, bool) {
	font, ok := r.fonts[code]
	return font, ok
}

// Codes returns all font codes, in the order the fonts were added.
// The returned slice must not be modified.
func (r *Resources) Codes() []pdf.Name {
	return r.codes
}

// FontDict returns the font sub-dictionary, mapping each font code to the
// reference of the font dictionary.
func (r *Resources) FontDict() pdf.Dict {
	res := pdf.Dict{}
	for _, code := range r.codes {
		res[code] = r.fonts[code].Reference()
	}
	return res
}

// AsPDF implements the [pdf.Exporter] interface.
func (r *Resources) AsPDF() pdf.Object {
	dict := pdf.Dict{}
	if len(r.codes) > 0 {
		dict["Font"] = r.FontDict()
	}
	return dict
}

// Integrate implements the [pdf.Integrator] interface.
// The fonts are integrated in the order they were added.
func (r *Resources) Integrate(w pdf.Putter) error {
	err := pdf.Export(w, r)
	if err != nil {
		return err
	}
	for _, code := range r.codes {
		err := r.fonts[code].Integrate(w)
		if err != nil {
			return err
		}
	}
	return nil
}
