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

// Package font implements the font descriptor of embedded fonts.
//
// Descriptive metadata (names, vertical metrics, bounding box, italic angle)
// is read from the sfnt tables of a TrueType or OpenType font file, see
// [ReadInfo].  The weight and stretch of the font are guessed from its full
// name, see [ClassifyWeight] and [ClassifyStretch].  A [Descriptor] turns
// this information into a PDF font descriptor dictionary.
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pdfdoc.font'.
func tracer() tracing.Trace {
	return tracing.Select("pdfdoc.font")
}
