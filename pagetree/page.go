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

package pagetree

import (
	"seehuhn.de/go/pdfdoc/pdf"
)

// Page is a leaf of the page tree.
//
// The parent and the resource dictionary are referenced by object number
// only.  Apart from the content stream, a page cannot be changed once it
// has been created.
type Page struct {
	ref       pdf.Reference
	parent    pdf.Reference
	resources pdf.Reference
	mediaBox  *pdf.Rectangle
	contents  pdf.Integrator
}

// NewPage allocates a new page.  The parent of the page is set when the
// page is appended to a [Pages] node.
func NewPage(a pdf.Allocator, resources pdf.Reference, mediaBox *pdf.Rectangle) *Page {
	return &Page{
		ref:       a.Alloc(),
		resources: resources,
		mediaBox:  mediaBox,
	}
}

// Reference implements the [pdf.Identified] interface.
func (p *Page) Reference() pdf.Reference {
	return p.ref
}

// Parent returns the reference of the page tree node containing the page.
func (p *Page) Parent() pdf.Reference {
	return p.parent
}

// MediaBox returns the visible area of the page, in PDF points.
func (p *Page) MediaBox() *pdf.Rectangle {
	return p.mediaBox
}

// Contents returns the content stream of the page, or nil if the page is
// empty.
func (p *Page) Contents() pdf.Integrator {
	return p.contents
}

// SetContents sets the content stream of the page.  The content stream is
// owned by the page and is integrated together with it.
func (p *Page) SetContents(contents pdf.Integrator) {
	p.contents = contents
}

// AsPDF implements the [pdf.Exporter] interface.
func (p *Page) AsPDF() pdf.Object {
	dict := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    p.parent,
		"Resources": p.resources,
	}
	if p.mediaBox != nil {
		dict["MediaBox"] = p.mediaBox
	}
	if p.contents != nil {
		dict["Contents"] = p.contents.Reference()
	}
	return dict
}

// Integrate implements the [pdf.Integrator] interface.
func (p *Page) Integrate(w pdf.Putter) error {
	err := pdf.Export(w, p)
	if err != nil {
		return err
	}
	if p.contents != nil {
		return p.contents.Integrate(w)
	}
	return nil
}
