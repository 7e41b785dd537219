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

package font_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/pdfdoc/font"
	"seehuhn.de/go/pdfdoc/internal/testfont"
	"seehuhn.de/go/pdfdoc/pdf"
)

func TestReadInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdfdoc.font")
	defer teardown()

	fname := testfont.GoRegular.Write(t)
	info, err := font.ReadInfo(fname)
	if err != nil {
		t.Fatal(err)
	}
	raw := testfont.DecodeRawMetrics(testfont.GoRegular.Data)

	if info.FullName != testfont.GoRegular.FullName {
		t.Errorf("FullName = %q, want %q", info.FullName, testfont.GoRegular.FullName)
	}
	if info.PostScriptName == "" {
		t.Error("missing PostScript name")
	}
	if info.UnitsPerEm != raw.UnitsPerEm {
		t.Errorf("UnitsPerEm = %d, want %d", info.UnitsPerEm, raw.UnitsPerEm)
	}
	if info.Ascent != funit.Int16(raw.Ascender) || info.Descent != funit.Int16(raw.Descender) {
		t.Errorf("ascent/descent = %d/%d, want %d/%d",
			info.Ascent, info.Descent, raw.Ascender, raw.Descender)
	}
	if info.CapHeight != funit.Int16(raw.CapHeight) {
		t.Errorf("CapHeight = %d, want %d", info.CapHeight, raw.CapHeight)
	}
	wantBBox := funit.Rect16{
		LLx: funit.Int16(raw.XMin),
		LLy: funit.Int16(raw.YMin),
		URx: funit.Int16(raw.XMax),
		URy: funit.Int16(raw.YMax),
	}
	if d := cmp.Diff(wantBBox, info.BBox); d != "" {
		t.Errorf("BBox (-want +got):\n%s", d)
	}
	if info.ItalicAngle != float64(raw.ItalicAngleFixed)/65536 {
		t.Errorf("ItalicAngle = %g", info.ItalicAngle)
	}
	if info.Weight != font.WeightNormal {
		t.Errorf("Weight = %s", info.Weight)
	}
	if info.Stretch != os2.WidthNormal {
		t.Errorf("Stretch = %s", font.StretchName(info.Stretch))
	}
	if info.Kind != font.FontFile2 {
		t.Errorf("Kind = %s", info.Kind)
	}
	if info.FileName != fname {
		t.Errorf("FileName = %q", info.FileName)
	}
}

func TestGoFontWeights(t *testing.T) {
	cases := []struct {
		fixture *testfont.Fixture
		weight  font.Weight
		stemV   float64
	}{
		{testfont.GoRegular, font.WeightNormal, 109},
		{testfont.GoMedium, font.WeightMedium, 125},
		{testfont.GoBold, font.WeightBold, 165},
		{testfont.GoMono, font.WeightNormal, 109}, // from the OS/2 table
	}
	for _, test := range cases {
		info, err := font.ParseInfo(test.fixture.Data, test.fixture.FileName)
		if err != nil {
			t.Fatal(err)
		}
		if info.Weight != test.weight {
			t.Errorf("%s: weight %s, want %s", test.fixture.FullName, info.Weight, test.weight)
		}
		if stemV := info.Weight.StemV(); stemV != test.stemV {
			t.Errorf("%s: StemV %g, want %g", test.fixture.FullName, stemV, test.stemV)
		}
	}

	info, err := font.ParseInfo(testfont.GoMono.Data, testfont.GoMono.FileName)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsFixedPitch {
		t.Error("Go Mono is not detected as fixed pitch")
	}
}

func TestReadInfoErrors(t *testing.T) {
	_, err := font.ReadInfo(filepath.Join(t.TempDir(), "missing.ttf"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	fname := testfont.WriteFile(t, "garbage.ttf", []byte("this is not a font file"))
	_, err = font.ReadInfo(fname)
	var parseErr *font.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("garbage file: got %v", err)
	}
	if parseErr.FileName != fname {
		t.Errorf("wrong file name %q in error", parseErr.FileName)
	}

	// a valid header with the glyph tables cut off
	truncated := testfont.GoRegular.Data[:200]
	_, err = font.ParseInfo(truncated, "truncated.ttf")
	if !errors.As(err, &parseErr) {
		t.Errorf("truncated file: got %v", err)
	}
}

func TestDescriptor(t *testing.T) {
	cases := []struct {
		fixture   *testfont.Fixture
		fontName  string
		family    string
		ascent    float64
		descent   float64
		capHeight float64
		xHeight   float64
		bbox      *pdf.Rectangle
		weight    pdf.Integer
		stemV     float64
	}{
		{
			fixture:   testfont.GoRegular,
			fontName:  "GoRegular",
			family:    "Go",
			ascent:    945,
			descent:   -211,
			capHeight: 723,
			xHeight:   530,
			bbox:      &pdf.Rectangle{LLx: -215, LLy: -265, URx: 1055, URy: 1119},
			weight:    400,
			stemV:     109,
		},
		{
			fixture:   testfont.GoBold,
			fontName:  "Go-Bold",
			family:    "Go",
			ascent:    945,
			descent:   -211,
			capHeight: 723,
			xHeight:   536,
			bbox:      &pdf.Rectangle{LLx: -221, LLy: -240, URx: 1069, URy: 1119},
			weight:    700,
			stemV:     165,
		},
	}
	for _, test := range cases {
		t.Run(test.fixture.FullName, func(t *testing.T) {
			info, err := font.ParseInfo(test.fixture.Data, test.fixture.FileName)
			if err != nil {
				t.Fatal(err)
			}

			w := pdf.NewData(pdf.V2_0)
			fd := font.NewDescriptor(w, info)
			if fd.Reference() == fd.FontFile() {
				t.Fatal("descriptor and font file share a reference")
			}

			if fd.FontName != test.fontName {
				t.Errorf("FontName = %q, want %q", fd.FontName, test.fontName)
			}
			if fd.FontFamily != test.family {
				t.Errorf("FontFamily = %q, want %q", fd.FontFamily, test.family)
			}
			if fd.Ascent != test.ascent || fd.Descent != test.descent {
				t.Errorf("Ascent/Descent = %g/%g, want %g/%g",
					fd.Ascent, fd.Descent, test.ascent, test.descent)
			}
			if fd.CapHeight != test.capHeight {
				t.Errorf("CapHeight = %g, want %g", fd.CapHeight, test.capHeight)
			}
			if fd.XHeight != test.xHeight {
				t.Errorf("XHeight = %g, want %g", fd.XHeight, test.xHeight)
			}
			if d := cmp.Diff(test.bbox, fd.FontBBox); d != "" {
				t.Errorf("FontBBox (-want +got):\n%s", d)
			}
			if fd.StemV != test.stemV {
				t.Errorf("StemV = %g, want %g", fd.StemV, test.stemV)
			}

			err = fd.Integrate(w)
			if err != nil {
				t.Fatal(err)
			}
			obj, err := w.Get(fd.Reference())
			if err != nil {
				t.Fatal(err)
			}
			dict, ok := obj.(pdf.Dict)
			if !ok {
				t.Fatalf("wrong object type %T", obj)
			}
			if dict["Type"] != pdf.Name("FontDescriptor") {
				t.Errorf("wrong /Type %v", dict["Type"])
			}
			if dict["FontName"] != pdf.Name(test.fontName) {
				t.Errorf("wrong /FontName %v", dict["FontName"])
			}
			if dict["FontFile2"] != fd.FontFile() {
				t.Errorf("wrong /FontFile2 %v", dict["FontFile2"])
			}
			if _, present := dict["FontFile3"]; present {
				t.Error("unexpected /FontFile3")
			}
			if dict["FontWeight"] != test.weight {
				t.Errorf("wrong /FontWeight %v, want %d", dict["FontWeight"], test.weight)
			}
			if dict["CapHeight"] != pdf.Number(test.capHeight) {
				t.Errorf("wrong /CapHeight %v", dict["CapHeight"])
			}
		})
	}
}

// TestNamesFromNameTable checks that font names come from the "name"
// table, even where the OS/2 weight class disagrees with the name.
func TestNamesFromNameTable(t *testing.T) {
	cases := []struct {
		fixture  *testfont.Fixture
		fullName string
		psName   string
		weight   font.Weight
	}{
		{testfont.GoRegular, "Go Regular", "GoRegular", font.WeightNormal},
		{testfont.GoBold, "Go Bold", "Go-Bold", font.WeightBold},       // usWeightClass 600
		{testfont.GoMedium, "Go Medium", "GoMedium", font.WeightMedium}, // subfamily "Regular"
		{testfont.GoMono, "Go Mono", "GoMono", font.WeightNormal},
	}
	for _, test := range cases {
		info, err := font.ParseInfo(test.fixture.Data, test.fixture.FileName)
		if err != nil {
			t.Fatal(err)
		}
		if info.FullName != test.fullName {
			t.Errorf("FullName = %q, want %q", info.FullName, test.fullName)
		}
		if info.PostScriptName != test.psName {
			t.Errorf("PostScriptName = %q, want %q", info.PostScriptName, test.psName)
		}
		if info.Weight != test.weight {
			t.Errorf("%s: weight %s, want %s", test.fullName, info.Weight, test.weight)
		}
	}
}

func TestDescriptorVariants(t *testing.T) {
	info, err := font.ParseInfo(testfont.GoBold.Data, testfont.GoBold.FileName)
	if err != nil {
		t.Fatal(err)
	}
	info.CapHeight = 0
	info.Kind = font.FontFile3

	w := pdf.NewData(pdf.V2_0)
	fd := font.NewDescriptor(w, info)
	if fd.CapHeight != fd.Ascent {
		t.Errorf("CapHeight %g does not fall back to Ascent %g", fd.CapHeight, fd.Ascent)
	}

	dict := fd.AsPDF().(pdf.Dict)
	if dict["FontFile3"] != fd.FontFile() {
		t.Errorf("wrong /FontFile3 %v", dict["FontFile3"])
	}
	if dict["StemV"] != pdf.Number(165) {
		t.Errorf("wrong /StemV %v", dict["StemV"])
	}

	fd.Embedded = false
	dict = fd.AsPDF().(pdf.Dict)
	for _, key := range []pdf.Name{"FontFile", "FontFile2", "FontFile3"} {
		if _, present := dict[key]; present {
			t.Errorf("unexpected /%s for a non-embedded font", key)
		}
	}
}
