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
	"bytes"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Contents is the content stream of a page.  Content operators are added
// using the io.Writer interface, or using [Contents.Defer] for content
// which is only known once the document is complete.
type Contents struct {
	ref   pdf.Reference
	parts []part
}

type part struct {
	data []byte
	fill func() []byte
}

// NewContents allocates an empty content stream.
func NewContents(a pdf.Allocator) *Contents {
	return &Contents{
		ref: a.Alloc(),
	}
}

// Write appends content stream operators.  It never fails.
func (c *Contents) Write(p []byte) (int, error) {
	n := len(c.parts)
	if n > 0 && c.parts[n-1].fill == nil {
		c.parts[n-1].data = append(c.parts[n-1].data, p...)
	} else {
		c.parts = append(c.parts, part{data: slices.Clone(p)})
	}
	return len(p), nil
}

// Defer appends content which is generated when the stream is exported.
// This is used for text, where the character codes are only assigned when
// the fonts are finalized.  The function fill is called every time the
// stream is exported, and must return the same data each time.
func (c *Contents) Defer(fill func() []byte) {
	c.parts = append(c.parts, part{fill: fill})
}

// Bytes returns the content stream data.
func (c *Contents) Bytes() []byte {
	var buf bytes.Buffer
	for _, p := range c.parts {
		if p.fill != nil {
			buf.Write(p.fill())
		} else {
			buf.Write(p.data)
		}
	}
	return buf.Bytes()
}

// Len returns the number of bytes in the content stream.
func (c *Contents) Len() int {
	return len(c.Bytes())
}

// Reference implements the [pdf.Identified] interface.
func (c *Contents) Reference() pdf.Reference {
	return c.ref
}

// AsPDF implements the [pdf.Exporter] interface.
// Every call returns a new stream, reading from the start of the data.
func (c *Contents) AsPDF() pdf.Object {
	return &pdf.Stream{
		Dict: pdf.Dict{},
		R:    bytes.NewReader(c.Bytes()),
	}
}

// Integrate implements the [pdf.Integrator] interface.
func (c *Contents) Integrate(w pdf.Putter) error {
	return pdf.Export(w, c)
}
