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

package truetype

import (
	"math"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfdoc/font"
	"seehuhn.de/go/pdfdoc/pdf"
)

// fontBBox computes the font bounding box for the glyphs gg, in PDF glyph
// space units.
//
// The horizontal extent runs from the smallest left side bearing to the
// largest advance width (or glyph extent, if this is larger) of the glyphs.
// The vertical extent is taken from the global bounding box in the "head"
// table.  If gg is empty, the global bounding box is used.
func fontBBox(otf *sfnt.Font, info *font.Info, gg []glyph.ID, widths []float64) *pdf.Rectangle {
	q := 1000 / float64(info.UnitsPerEm)
	bbox := font.ScaleRect(info.BBox, q)
	if len(gg) == 0 {
		return bbox
	}

	qh := 1000 * otf.FontMatrix[0]
	boxes := otf.GlyphBBoxes()

	minLSB := math.Inf(+1)
	maxRight := math.Inf(-1)
	for i, gid := range gg {
		left := 0.0
		right := widths[i]
		if int(gid) < len(boxes) {
			b := boxes[gid]
			left = float64(b.LLx) * qh
			right = max(right, float64(b.URx)*qh)
		}
		minLSB = min(minLSB, left)
		maxRight = max(maxRight, right)
	}

	bbox.LLx = math.Round(minLSB)
	bbox.URx = math.Round(maxRight)
	return bbox
}
