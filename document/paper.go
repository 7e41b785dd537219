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

package document

import (
	"strings"

	"seehuhn.de/go/pdfdoc/pdf"
)

// Paper is a page size.
type Paper struct {
	Name          string
	Width, Height Length
}

// Standard paper sizes, in portrait orientation.  The sizes are rounded to
// whole points.
var (
	A4     = Paper{Name: "A4", Width: 595, Height: 842}
	A5     = Paper{Name: "A5", Width: 420, Height: 595}
	Letter = Paper{Name: "Letter", Width: 612, Height: 792}
)

// Custom returns a paper size with the given width and height.
func Custom(width, height Length) Paper {
	return Paper{Width: width, Height: height}
}

// Landscape returns the paper size in landscape orientation.
func (p Paper) Landscape() Paper {
	if p.Width >= p.Height {
		return p
	}
	res := Paper{Width: p.Height, Height: p.Width}
	if p.Name != "" {
		res.Name = p.Name + landscapeSuffix
	}
	return res
}

// MediaBox returns the page boundary for this paper size.
func (p Paper) MediaBox() *pdf.Rectangle {
	return &pdf.Rectangle{
		URx: p.Width.Points(),
		URy: p.Height.Points(),
	}
}

var papers = []Paper{A4, A5, Letter}

const landscapeSuffix = "-landscape"

// PaperByName looks up a standard paper size.  Names are case-insensitive,
// and the suffix "-landscape" selects landscape orientation.  The name of
// every paper size returned by PaperByName is accepted again.
func PaperByName(name string) (Paper, bool) {
	name, landscape := strings.CutSuffix(strings.ToLower(name), landscapeSuffix)
	for _, p := range papers {
		if strings.ToLower(p.Name) == name {
			if landscape {
				p = p.Landscape()
			}
			return p, true
		}
	}
	return Paper{}, false
}
