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

package font

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/name"
	"seehuhn.de/go/sfnt/os2"
)

// Info is the descriptive metadata of a font file.
// All lengths are given in font design units.
type Info struct {
	FileName string

	PostScriptName string
	FullName       string
	FamilyName     string

	UnitsPerEm uint16

	// Ascent, Descent and LineGap are taken from the "hhea" table.
	Ascent  funit.Int16
	Descent funit.Int16
	LineGap funit.Int16

	// CapHeight and XHeight are taken from the "OS/2" table.  The values
	// are zero if the table is missing or too old.
	CapHeight funit.Int16
	XHeight   funit.Int16

	// ItalicAngle is taken from the "post" table, in degrees
	// counter-clockwise from the vertical.
	ItalicAngle float64

	// BBox is the global glyph bounding box from the "head" table.
	BBox funit.Rect16

	Weight  Weight
	Stretch os2.Width

	IsFixedPitch bool
	IsSerif      bool
	IsScript     bool
	IsItalic     bool

	Kind FileKind
}

// ReadInfo reads the font file fname and extracts the descriptive metadata.
//
// If the file cannot be read, the error from the file system is returned
// (use errors.Is with fs.ErrNotExist to detect missing files).  If the
// file is not a valid sfnt font, the error is a [*ParseError].
func ReadInfo(fname string) (*Info, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return ParseInfo(data, fname)
}

// ParseInfo extracts the descriptive metadata from the contents of a
// TrueType or OpenType font file.  The file name is only used to guess the
// font format and in error messages.
func ParseInfo(data []byte, fname string) (*Info, error) {
	fail := func(err error) (*Info, error) {
		return nil, &ParseError{FileName: fname, Err: err}
	}

	r := bytes.NewReader(data)
	hdr, err := header.Read(r)
	if err != nil {
		return fail(err)
	}

	head, err := hdr.ReadTableBytes(r, "head")
	if err != nil {
		return fail(err)
	}
	if len(head) < 54 {
		return fail(errTable("head", "too short"))
	}
	hhea, err := hdr.ReadTableBytes(r, "hhea")
	if err != nil {
		return fail(err)
	}
	if len(hhea) < 36 {
		return fail(errTable("hhea", "too short"))
	}

	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return fail(err)
	}

	info := &Info{
		FileName: fname,

		UnitsPerEm: binary.BigEndian.Uint16(head[18:20]),
		BBox: funit.Rect16{
			LLx: getInt16(head, 36),
			LLy: getInt16(head, 38),
			URx: getInt16(head, 40),
			URy: getInt16(head, 42),
		},

		Ascent:  getInt16(hhea, 4),
		Descent: getInt16(hhea, 6),
		LineGap: getInt16(hhea, 8),

		IsFixedPitch: f.IsFixedPitch(),
		IsSerif:      f.IsSerif,
		IsScript:     f.IsScript,
		IsItalic:     f.IsItalic,

		Kind: DetectFileKind(fname, f.IsGlyf(), f.IsCFF()),
	}
	if info.UnitsPerEm == 0 {
		return fail(errTable("head", "invalid unitsPerEm"))
	}

	names, err := readNames(hdr, r)
	if err != nil {
		return fail(err)
	}
	info.PostScriptName = names.PostScriptName
	info.FullName = cleanName(names.FullName)
	info.FamilyName = cleanName(names.Family)
	if info.PostScriptName == "" {
		info.PostScriptName = f.PostScriptName()
	}
	if info.FullName == "" {
		info.FullName = cleanName(f.FullName())
	}
	if info.FamilyName == "" {
		info.FamilyName = cleanName(f.FamilyName)
	}

	if post, err := hdr.ReadTableBytes(r, "post"); err == nil && len(post) >= 8 {
		fixed := int32(binary.BigEndian.Uint32(post[4:8]))
		info.ItalicAngle = float64(fixed) / 65536
	} else {
		tracer().Debugf("%s: no post table, italic angle set to 0", fname)
	}

	if os2Data, err := hdr.ReadTableBytes(r, "OS/2"); err == nil && len(os2Data) >= 90 {
		version := binary.BigEndian.Uint16(os2Data[0:2])
		if version >= 2 {
			info.XHeight = getInt16(os2Data, 86)
			info.CapHeight = getInt16(os2Data, 88)
		}
	} else {
		tracer().Debugf("%s: no cap height in OS/2 table", fname)
	}

	weight, ok := ClassifyWeight(info.FullName)
	if !ok && f.Weight != 0 {
		weight = WeightFromOS2(f.Weight)
	}
	info.Weight = weight

	stretch, ok := ClassifyStretch(info.FullName)
	if !ok && f.Width != 0 {
		stretch = f.Width
	}
	info.Stretch = stretch

	tracer().Infof("font %q: weight %s, stretch %s, %s",
		info.FullName, info.Weight, StretchName(info.Stretch), info.Kind)

	return info, nil
}

func (info *Info) String() string {
	return fmt.Sprintf("%s (%s)", info.FullName, info.FileName)
}

// readNames returns the English entries of the "name" table.  If the
// table is missing, an empty table is returned.
func readNames(hdr *header.Info, r *bytes.Reader) (*name.Table, error) {
	data, err := hdr.ReadTableBytes(r, "name")
	if header.IsMissing(err) {
		return &name.Table{}, nil
	} else if err != nil {
		return nil, err
	}
	nameInfo, err := name.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("name table: %w", err)
	}

	winTab, winConf := nameInfo.Windows.Choose(language.AmericanEnglish)
	macTab, macConf := nameInfo.Mac.Choose(language.AmericanEnglish)
	res := winTab
	if winConf < language.High && macConf > winConf || res == nil {
		res = macTab
	}
	if res == nil {
		res = &name.Table{}
	}
	return res, nil
}

func getInt16(data []byte, offset int) funit.Int16 {
	return funit.Int16(int16(binary.BigEndian.Uint16(data[offset : offset+2])))
}

// cleanName removes NUL characters, which some fonts include in
// UTF-16 encoded name strings.
func cleanName(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}
