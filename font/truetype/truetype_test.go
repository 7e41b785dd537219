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
	"encoding/binary"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/pdfdoc/font"
	"seehuhn.de/go/pdfdoc/internal/testfont"
	"seehuhn.de/go/pdfdoc/pdf"
)

func newTestFont(t *testing.T, fname, text string, embedding Embedding) *Font {
	t.Helper()
	w := pdf.NewData(pdf.V2_0)
	f, err := New(w, fname, &Options{Embedding: embedding})
	if err != nil {
		t.Fatal(err)
	}
	f.AddText(text)
	f.Finalize()
	return f
}

func TestGlyphOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdfdoc.font")
	defer teardown()

	fname := testfont.GoRegular.Write(t)

	ref := newTestFont(t, fname, "ab", Subset)
	if len(ref.Glyphs()) != 2 {
		t.Fatalf("expected 2 glyphs, got %d", len(ref.Glyphs()))
	}
	for _, text := range []string{"ba", "aabb", "babababa"} {
		f := newTestFont(t, fname, text, Subset)
		if d := cmp.Diff(ref.Glyphs(), f.Glyphs()); d != "" {
			t.Errorf("%q: glyphs differ (-want +got):\n%s", text, d)
		}
		if d := cmp.Diff(ref.Widths(), f.Widths()); d != "" {
			t.Errorf("%q: widths differ (-want +got):\n%s", text, d)
		}
		if f.SubsetTag() != ref.SubsetTag() {
			t.Errorf("%q: tag %q, want %q", text, f.SubsetTag(), ref.SubsetTag())
		}
		if !bytes.Equal(f.Encode("ab"), ref.Encode("ab")) {
			t.Errorf("%q: different character codes", text)
		}
	}

	gg := ref.Glyphs()
	if gg[0] >= gg[1] {
		t.Errorf("glyphs not sorted: %v", gg)
	}
}

func TestWidths(t *testing.T) {
	fname := testfont.GoRegular.Write(t)
	raw := testfont.DecodeRawMetrics(testfont.GoRegular.Data)

	f := newTestFont(t, fname, "Hello World", Subset)
	gg := f.Glyphs()
	ww := f.Widths()
	if len(gg) != 8 { // "Helo Wrd"
		t.Fatalf("expected 8 glyphs, got %d", len(gg))
	}
	if len(ww) != len(gg) {
		t.Fatalf("%d widths for %d glyphs", len(ww), len(gg))
	}

	var sum, maxWidth float64
	for i, gid := range gg {
		want := math.Round(float64(raw.AdvanceWidth(int(gid))) * 1000 / float64(raw.UnitsPerEm))
		if ww[i] != want {
			t.Errorf("glyph %d: width %g, want %g", gid, ww[i], want)
		}
		sum += want
		maxWidth = max(maxWidth, want)
	}
	if f.Descriptor.MaxWidth != maxWidth {
		t.Errorf("MaxWidth = %g, want %g", f.Descriptor.MaxWidth, maxWidth)
	}
	if f.Descriptor.AvgWidth != math.Round(sum/float64(len(gg))) {
		t.Errorf("AvgWidth = %g", f.Descriptor.AvgWidth)
	}

	q := 1000 / float64(raw.UnitsPerEm)
	bbox := f.Descriptor.FontBBox
	if bbox.LLy != math.Round(float64(raw.YMin)*q) || bbox.URy != math.Round(float64(raw.YMax)*q) {
		t.Errorf("wrong vertical extent %v", bbox)
	}
	if bbox.URx < maxWidth {
		t.Errorf("bbox %v narrower than widest glyph %g", bbox, maxWidth)
	}
}

func TestFontDict(t *testing.T) {
	fname := testfont.GoRegular.Write(t)

	w := pdf.NewData(pdf.V2_0)
	f, err := New(w, fname, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.AddText("Hello")
	err = f.Integrate(w)
	if err != nil {
		t.Fatal(err)
	}
	if dangling := w.Dangling(); len(dangling) > 0 {
		t.Errorf("dangling references: %v", dangling)
	}

	obj, _ := w.Get(f.Reference())
	dict, ok := obj.(pdf.Dict)
	if !ok {
		t.Fatalf("wrong font dict type %T", obj)
	}
	n := len(f.Glyphs())
	if n != 4 {
		t.Errorf("expected 4 glyphs, got %d", n)
	}
	wantDict := pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        pdf.Name("TrueType"),
		"BaseFont":       pdf.Name(f.SubsetTag() + "+" + f.Info().PostScriptName),
		"FirstChar":      pdf.Integer(1),
		"LastChar":       pdf.Integer(n),
		"Widths":         f.widthsRef,
		"FontDescriptor": f.Descriptor.Reference(),
	}
	if d := cmp.Diff(wantDict, dict); d != "" {
		t.Errorf("font dict (-want +got):\n%s", d)
	}

	obj, _ = w.Get(f.widthsRef)
	if ww, ok := obj.(pdf.Array); !ok || len(ww) != n {
		t.Errorf("wrong widths array %v", obj)
	}

	obj, _ = w.Get(f.Descriptor.Reference())
	fd := obj.(pdf.Dict)
	if fd["FontName"] != dict["BaseFont"] {
		t.Errorf("FontName %v != BaseFont %v", fd["FontName"], dict["BaseFont"])
	}
	if flags, _ := fd["Flags"].(pdf.Integer); font.Flags(flags)&font.FlagSymbolic == 0 {
		t.Errorf("wrong flags %v", fd["Flags"])
	}

	obj, _ = w.Get(f.Descriptor.FontFile())
	stm, ok := obj.(*pdf.Stream)
	if !ok {
		t.Fatalf("wrong font file type %T", obj)
	}
	body, err := io.ReadAll(stm.R)
	if err != nil {
		t.Fatal(err)
	}
	if stm.Dict["Length1"] != pdf.Integer(len(body)) {
		t.Errorf("Length1 = %v, want %d", stm.Dict["Length1"], len(body))
	}
	if len(body) >= len(testfont.GoRegular.Data) {
		t.Errorf("subset is not smaller than the original (%d >= %d bytes)",
			len(body), len(testfont.GoRegular.Data))
	}

	if got := numGlyphs(t, body); got < n+1 {
		t.Errorf("subset has %d glyphs, need %d", got, n+1)
	}
}

// numGlyphs reads the number of glyphs from the "maxp" table of a font
// file.
func numGlyphs(t *testing.T, data []byte) int {
	t.Helper()
	r := bytes.NewReader(data)
	hdr, err := header.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	maxp, err := hdr.ReadTableBytes(r, "maxp")
	if err != nil {
		t.Fatal(err)
	}
	return int(binary.BigEndian.Uint16(maxp[4:6]))
}

func TestEncode(t *testing.T) {
	fname := testfont.GoRegular.Write(t)
	f := newTestFont(t, fname, "ab", Subset)

	orig, err := sfnt.Read(bytes.NewReader(testfont.GoRegular.Data))
	if err != nil {
		t.Fatal(err)
	}
	subtable, err := orig.CMapTable.GetBest()
	if err != nil {
		t.Fatal(err)
	}

	s := f.Encode("ba")
	if len(s) != 2 {
		t.Fatalf("wrong encoding %v", s)
	}
	gg := f.Glyphs()
	if gg[s[0]-1] != subtable.Lookup('b') || gg[s[1]-1] != subtable.Lookup('a') {
		t.Errorf("codes %v do not match glyphs %v", s, gg)
	}

	if s := f.Encode("x"); len(s) != 0 {
		t.Errorf("unexpected code for text not added: %v", s)
	}

	f.AddText("x")
	if len(f.Glyphs()) != 2 {
		t.Error("text added after Finalize changed the glyphs")
	}
}

func TestEncodeBeforeFinalize(t *testing.T) {
	fname := testfont.GoRegular.Write(t)
	w := pdf.NewData(pdf.V2_0)
	f, err := New(w, fname, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.AddText("a")
	if s := f.Encode("a"); s != nil {
		t.Errorf("unexpected codes %v", s)
	}
}

func TestUnmappedCharacters(t *testing.T) {
	fname := testfont.GoRegular.Write(t)
	f := newTestFont(t, fname, "a中文a", Subset)
	if len(f.Glyphs()) != 1 {
		t.Errorf("expected 1 glyph, got %v", f.Glyphs())
	}
	if s := f.Encode("中a"); len(s) != 1 {
		t.Errorf("wrong encoding %v", s)
	}
	if f.Degraded() {
		t.Error("unmapped characters caused degradation")
	}
}

func TestNormalization(t *testing.T) {
	fname := testfont.GoRegular.Write(t)
	decomposed := newTestFont(t, fname, "e\u0301", Subset)
	composed := newTestFont(t, fname, "\u00e9", Subset)
	if d := cmp.Diff(composed.Glyphs(), decomposed.Glyphs()); d != "" {
		t.Errorf("glyphs differ (-want +got):\n%s", d)
	}
}

func TestDegradeNoCMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdfdoc.font")
	defer teardown()

	saved := bestSubtable
	defer func() { bestSubtable = saved }()
	bestSubtable = func(cmap.Table) (cmap.Subtable, error) {
		return nil, font.ErrNoCMap
	}

	fname := testfont.GoRegular.Write(t)
	w := pdf.NewData(pdf.V2_0)
	f, err := New(w, fname, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.AddText("Hello")
	err = f.Integrate(w)
	if err != nil {
		t.Fatal(err)
	}

	if !f.Degraded() {
		t.Error("font not marked as degraded")
	}
	if f.SubsetTag() != "" {
		t.Errorf("unexpected subset tag %q", f.SubsetTag())
	}
	obj, _ := w.Get(f.Descriptor.FontFile())
	stm := obj.(*pdf.Stream)
	body, err := io.ReadAll(stm.R)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(body, testfont.GoRegular.Data) {
		t.Error("embedded font differs from the font file")
	}

	obj, _ = w.Get(f.Reference())
	dict := obj.(pdf.Dict)
	if dict["LastChar"] != pdf.Integer(0) {
		t.Errorf("wrong LastChar %v", dict["LastChar"])
	}
	if dict["BaseFont"] != pdf.Name(f.Info().PostScriptName) {
		t.Errorf("wrong BaseFont %v", dict["BaseFont"])
	}
	if dangling := w.Dangling(); len(dangling) > 0 {
		t.Errorf("dangling references: %v", dangling)
	}
}

func TestDegradeFileRemoved(t *testing.T) {
	fname := testfont.GoRegular.Write(t)
	w := pdf.NewData(pdf.V2_0)
	f, err := New(w, fname, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.AddText("abc")
	err = os.Remove(fname)
	if err != nil {
		t.Fatal(err)
	}
	f.Finalize()

	if !f.Degraded() {
		t.Error("font not marked as degraded")
	}
	if !bytes.Equal(f.FontFile(), testfont.GoRegular.Data) {
		t.Error("embedded font differs from the font file")
	}
}

func TestEmbedding(t *testing.T) {
	fname := testfont.GoRegular.Write(t)

	complete := newTestFont(t, fname, "abc", Complete)
	if complete.SubsetTag() != "" {
		t.Errorf("unexpected subset tag %q", complete.SubsetTag())
	}
	raw := testfont.DecodeRawMetrics(testfont.GoRegular.Data)
	if got := numGlyphs(t, complete.FontFile()); got != int(raw.NumGlyphs) {
		t.Errorf("complete font has %d glyphs, want %d", got, raw.NumGlyphs)
	}

	w := pdf.NewData(pdf.V2_0)
	external, err := New(w, fname, &Options{Embedding: External})
	if err != nil {
		t.Fatal(err)
	}
	external.AddText("abc")
	err = external.Integrate(w)
	if err != nil {
		t.Fatal(err)
	}
	if external.FontFile() != nil {
		t.Error("external font has a font file")
	}
	if len(external.Widths()) != 3 {
		t.Errorf("expected 3 widths, got %d", len(external.Widths()))
	}
	obj, _ := w.Get(external.Descriptor.FontFile())
	if obj != nil {
		t.Errorf("unexpected font file object %v", obj)
	}
	if dangling := w.Dangling(); len(dangling) > 0 {
		t.Errorf("dangling references: %v", dangling)
	}
	flags := external.Descriptor.Flags
	if flags&font.FlagNonsymbolic == 0 || flags&font.FlagSymbolic != 0 {
		t.Errorf("external font has flags %b, want Nonsymbolic", flags)
	}
	if complete.Descriptor.Flags&font.FlagSymbolic == 0 {
		t.Errorf("embedded font has flags %b, want Symbolic", complete.Descriptor.Flags)
	}
}

func TestTooManyGlyphs(t *testing.T) {
	var text strings.Builder
	for r := rune(0x21); r < 0x17f; r++ {
		text.WriteRune(r)
	}
	fname := testfont.GoRegular.Write(t)
	f := newTestFont(t, fname, text.String(), Subset)
	if n := len(f.Glyphs()); n != maxCodes {
		t.Errorf("expected %d glyphs, got %d", maxCodes, n)
	}
	s := f.Encode(text.String())
	if len(s) < maxCodes {
		t.Errorf("expected at least %d codes, got %d", maxCodes, len(s))
	}
	for _, c := range s {
		if c == 0 {
			t.Error("character code 0 used")
		}
	}
	seen := map[glyph.ID]bool{}
	for _, gid := range f.Glyphs() {
		if seen[gid] {
			t.Errorf("glyph %d used twice", gid)
		}
		seen[gid] = true
	}
}

func TestNewErrors(t *testing.T) {
	w := pdf.NewData(pdf.V2_0)
	_, err := New(w, filepath.Join(t.TempDir(), "missing.ttf"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	fname := testfont.WriteFile(t, "broken.ttf", []byte("not a font"))
	_, err = New(w, fname, nil)
	var parseErr *font.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("broken file: got %v", err)
	}
}
