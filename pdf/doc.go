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

// Package pdf implements the low-level object model used to assemble PDF
// files.
//
// A PDF file is built in memory as a table of indirect objects, see [Data].
// Structural entities like pages and fonts do not write into this table
// directly.  Instead they implement the [Exporter] and [Integrator]
// interfaces: each entity knows its own [Reference], can describe its
// current state as a PDF object, and can insert this object (together with
// the objects of all children it owns) into a [Putter].
//
// Once all entities have been integrated, [Data.Write] serialises the table
// as a classic PDF file with a cross-reference table.
package pdf
