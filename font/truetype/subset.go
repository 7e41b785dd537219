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
	"bytes"
	"fmt"
	"math"
	"os"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfdoc/font"
)

// maxCodes is the number of single-byte character codes available for
// glyphs.  Code 0 is not used.
const maxCodes = 255

// bestSubtable selects the cmap subtable used to map characters to glyphs.
// Unicode subtables are preferred.
var bestSubtable = func(table cmap.Table) (cmap.Subtable, error) {
	if len(table) == 0 {
		return nil, font.ErrNoCMap
	}
	return table.GetBest()
}

// Finalize determines the glyphs needed for the text added to the font,
// computes the glyph widths and prepares the font program for embedding.
// Only the first call has an effect.
//
// Finalize does not fail: if the font cannot be subset, the complete,
// unmodified font file is embedded instead.
func (f *Font) Finalize() {
	if f.finalized {
		return
	}
	f.finalized = true

	data, err := os.ReadFile(f.path)
	if err != nil {
		f.degrade(f.data, "reading font file", err)
		return
	}
	otf, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		f.degrade(data, "parsing font file", err)
		return
	}
	subtable, err := bestSubtable(otf.CMapTable)
	if err != nil {
		f.degrade(data, "selecting cmap subtable", err)
		return
	}

	f.resolveGlyphs(subtable, otf.NumGlyphs())
	f.setMetrics(otf)

	if f.embedding == External {
		return
	}
	fontFile, err := f.makeFontFile(otf)
	if err != nil {
		f.degrade(data, "subsetting", err)
		return
	}
	f.fontFile = fontFile

	f.trace.Infof("font %s: %d glyphs, %d bytes embedded",
		f.ref, len(f.widths), len(f.fontFile))
}

// degrade arranges for the complete font file to be embedded.
func (f *Font) degrade(data []byte, step string, err error) {
	f.trace.Errorf("font %s: %s: %v, embedding the complete font file",
		f.ref, step, err)
	f.degraded = true
	if f.embedding != External {
		f.fontFile = data
	}
	if f.codes == nil {
		f.codes = map[rune]byte{}
	}
}

// resolveGlyphs maps the text of the font to glyphs and assigns character
// codes.  Code i selects the i-th glyph, in order of increasing glyph ID.
func (f *Font) resolveGlyphs(subtable cmap.Subtable, numGlyphs int) {
	runeGID := map[rune]glyph.ID{}
	missing := map[rune]bool{}
	for _, r := range f.text.String() {
		if _, seen := runeGID[r]; seen || missing[r] {
			continue
		}
		gid := subtable.Lookup(r)
		if gid == 0 || int(gid) >= numGlyphs {
			f.trace.Infof("font %s: no glyph for %q, skipped", f.ref, r)
			missing[r] = true
			continue
		}
		runeGID[r] = gid
	}

	gg := make([]glyph.ID, 0, len(runeGID))
	for _, gid := range runeGID {
		gg = append(gg, gid)
	}
	slices.Sort(gg)
	gg = slices.Compact(gg)
	if len(gg) > maxCodes {
		f.trace.Errorf("font %s: %d glyphs used, only the first %d are kept",
			f.ref, len(gg), maxCodes)
		gg = gg[:maxCodes]
	}

	gidCode := make(map[glyph.ID]byte, len(gg))
	for i, gid := range gg {
		gidCode[gid] = byte(i + 1)
	}
	f.codes = make(map[rune]byte, len(runeGID))
	for r, gid := range runeGID {
		if c, ok := gidCode[gid]; ok {
			f.codes[r] = c
		}
	}

	f.glyphs = append([]glyph.ID{0}, gg...)
}

// makeFontFile constructs the font program for embedding.  The new font
// has a (1,0) and a (3,0) cmap subtable, which map the character codes to
// glyphs.
func (f *Font) makeFontFile(otf *sfnt.Font) ([]byte, error) {
	origGlyphs := otf.NumGlyphs()

	otf = otf.Clone()
	otf.CMapTable = nil
	otf.Gdef = nil
	otf.Gsub = nil
	otf.Gpos = nil

	var tag string
	subtable := cmap.Format4{}
	if f.embedding == Subset {
		tag = font.SubsetTag(f.glyphs, origGlyphs)
		otf = otf.Subset(f.glyphs)
		for i := 1; i < len(f.glyphs); i++ {
			subtable[uint16(i)] = glyph.ID(i)
		}
	} else {
		for i := 1; i < len(f.glyphs); i++ {
			subtable[uint16(i)] = f.glyphs[i]
		}
	}
	if otf.NumGlyphs() < len(f.glyphs) {
		return nil, fmt.Errorf("subset has %d glyphs, expected %d",
			otf.NumGlyphs(), len(f.glyphs))
	}

	symbolic := cmap.Format4{}
	for code, gid := range subtable {
		symbolic[0xF000+code] = gid
	}
	otf.CMapTable = cmap.Table{
		{PlatformID: 1, EncodingID: 0}: subtable.Encode(0),
		{PlatformID: 3, EncodingID: 0}: symbolic.Encode(0),
	}

	buf := &bytes.Buffer{}
	var err error
	if otf.IsCFF() {
		err = otf.WriteOpenTypeCFFPDF(buf)
	} else {
		_, err = otf.WriteTrueTypePDF(buf)
	}
	if err != nil {
		return nil, err
	}

	if tag != "" {
		f.subsetTag = tag
		f.Descriptor.FontName = font.JoinTag(tag, f.Descriptor.FontName)
	}
	return buf.Bytes(), nil
}

// setMetrics computes the glyph widths and updates the font descriptor.
// All values are given in PDF glyph space units.
func (f *Font) setMetrics(otf *sfnt.Font) {
	gg := f.glyphs[1:]
	f.widths = make([]float64, len(gg))
	var sum, maxWidth float64
	for i, gid := range gg {
		w := math.Round(otf.GlyphWidthPDF(gid))
		f.widths[i] = w
		sum += w
		maxWidth = max(maxWidth, w)
	}

	fd := f.Descriptor
	if len(gg) > 0 {
		fd.AvgWidth = math.Round(sum / float64(len(gg)))
		fd.MaxWidth = maxWidth
	}
	fd.FontBBox = fontBBox(otf, f.info, gg, f.widths)
}
