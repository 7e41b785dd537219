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

// Package testfont provides font files for use in unit tests.
package testfont

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Fixture is a font file used in tests.
type Fixture struct {
	FileName string
	FullName string
	Data     []byte
}

// The Go fonts, as TrueType files.
var (
	GoRegular = &Fixture{"Go-Regular.ttf", "Go Regular", goregular.TTF}
	GoBold    = &Fixture{"Go-Bold.ttf", "Go Bold", gobold.TTF}
	GoMedium  = &Fixture{"Go-Medium.ttf", "Go Medium", gomedium.TTF}
	GoMono    = &Fixture{"Go-Mono.ttf", "Go Mono", gomono.TTF}
)

// Write stores the font file in a temporary directory and returns the
// file name.  The directory is removed when the test finishes.
func (f *Fixture) Write(t testing.TB) string {
	t.Helper()
	return WriteFile(t, f.FileName, f.Data)
}

// WriteFile stores data in a temporary directory under the given base name
// and returns the full file name.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fname, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

// RawMetrics holds font metrics decoded directly from the sfnt tables,
// in font design units.
type RawMetrics struct {
	UnitsPerEm       uint16
	XMin, YMin       int16
	XMax, YMax       int16
	Ascender         int16
	Descender        int16
	CapHeight        int16
	ItalicAngleFixed int32
	NumGlyphs        uint16
	AdvanceWidths    []uint16
}

// DecodeRawMetrics reads the table directory of an sfnt file and extracts
// the metrics from the "head", "hhea", "maxp", "post", "OS/2" and "hmtx"
// tables.  The function panics if the data is malformed.
func DecodeRawMetrics(data []byte) *RawMetrics {
	u16 := func(b []byte, off int) uint16 { return binary.BigEndian.Uint16(b[off:]) }
	u32 := func(b []byte, off int) uint32 { return binary.BigEndian.Uint32(b[off:]) }

	tables := map[string][]byte{}
	numTables := int(u16(data, 4))
	for i := 0; i < numTables; i++ {
		rec := data[12+16*i : 12+16*(i+1)]
		tag := string(rec[0:4])
		offset := u32(rec, 8)
		length := u32(rec, 12)
		tables[tag] = data[offset : offset+length]
	}

	head := tables["head"]
	hhea := tables["hhea"]
	res := &RawMetrics{
		UnitsPerEm: u16(head, 18),
		XMin:       int16(u16(head, 36)),
		YMin:       int16(u16(head, 38)),
		XMax:       int16(u16(head, 40)),
		YMax:       int16(u16(head, 42)),
		Ascender:   int16(u16(hhea, 4)),
		Descender:  int16(u16(hhea, 6)),
		NumGlyphs:  u16(tables["maxp"], 4),
	}
	if post, ok := tables["post"]; ok {
		res.ItalicAngleFixed = int32(u32(post, 4))
	}
	if os2, ok := tables["OS/2"]; ok && u16(os2, 0) >= 2 {
		res.CapHeight = int16(u16(os2, 88))
	}

	numberOfHMetrics := int(u16(hhea, 34))
	hmtx := tables["hmtx"]
	for i := 0; i < numberOfHMetrics; i++ {
		res.AdvanceWidths = append(res.AdvanceWidths, u16(hmtx, 4*i))
	}
	return res
}

// AdvanceWidth returns the advance width of glyph gid, in font design
// units.
func (m *RawMetrics) AdvanceWidth(gid int) uint16 {
	if gid < len(m.AdvanceWidths) {
		return m.AdvanceWidths[gid]
	}
	return m.AdvanceWidths[len(m.AdvanceWidths)-1]
}
