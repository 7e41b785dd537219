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

// Package pagetree implements the document catalog and the page tree of a
// PDF file.
//
// The tree is kept flat: a single [Pages] node holds all pages of the
// document, in the order they were appended.
package pagetree

import (
	"seehuhn.de/go/pdfdoc/pdf"
)

// Root is the document catalog.  It refers to exactly one [Pages] node,
// which is created together with the catalog.
type Root struct {
	ref   pdf.Reference
	pages *Pages
}

// NewRoot allocates a document catalog together with an empty page tree.
func NewRoot(a pdf.Allocator) *Root {
	return &Root{
		ref:   a.Alloc(),
		pages: NewPages(a),
	}
}

// Reference implements the [pdf.Identified] interface.
func (r *Root) Reference() pdf.Reference {
	return r.ref
}

// Pages returns the root node of the page tree.
func (r *Root) Pages() *Pages {
	return r.pages
}

// AsPDF implements the [pdf.Exporter] interface.
func (r *Root) AsPDF() pdf.Object {
	return pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": r.pages.Reference(),
	}
}

// Integrate implements the [pdf.Integrator] interface.
// The catalog is stored first, followed by the page tree.
func (r *Root) Integrate(w pdf.Putter) error {
	err := pdf.Export(w, r)
	if err != nil {
		return err
	}
	return r.pages.Integrate(w)
}
