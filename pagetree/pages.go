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

// Pages is a node of the page tree.  Pages can only be appended; the Count
// entry of the node always equals the number of kids.
type Pages struct {
	ref  pdf.Reference
	kids []*Page
}

// NewPages allocates an empty page tree node.
func NewPages(a pdf.Allocator) *Pages {
	return &Pages{
		ref: a.Alloc(),
	}
}

// Reference implements the [pdf.Identified] interface.
func (p *Pages) Reference() pdf.Reference {
	return p.ref
}

// Count returns the number of pages in the tree.
func (p *Pages) Count() int {
	return len(p.kids)
}

// Kids returns the pages in the order they were appended.
// The returned slice must not be modified.
func (p *Pages) Kids() []*Page {
	return p.kids
}

// Append adds a page at the end of the tree and makes p its parent.
// The return value is the 1-based number of the new page.
func (p *Pages) Append(page *Page) int {
	page.parent = p.ref
	p.kids = append(p.kids, page)
	return len(p.kids)
}

// NewPage allocates a new page, appends it to the tree, and returns the
// page together with its 1-based page number.
func (p *Pages) NewPage(a pdf.Allocator, resources pdf.Reference, mediaBox *pdf.Rectangle) (*Page, int) {
	page := NewPage(a, resources, mediaBox)
	pageNo := p.Append(page)
	return page, pageNo
}

// AsPDF implements the [pdf.Exporter] interface.
func (p *Pages) AsPDF() pdf.Object {
	kids := make(pdf.Array, len(p.kids))
	for i, kid := range p.kids {
		kids[i] = kid.Reference()
	}
	return pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Count": pdf.Integer(len(kids)),
		"Kids":  kids,
	}
}

// Integrate implements the [pdf.Integrator] interface.
// The kids are integrated in page order.
func (p *Pages) Integrate(w pdf.Putter) error {
	err := pdf.Export(w, p)
	if err != nil {
		return err
	}
	for _, kid := range p.kids {
		err := kid.Integrate(w)
		if err != nil {
			return err
		}
	}
	return nil
}
