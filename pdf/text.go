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

package pdf

import (
	"fmt"
	"time"

	"golang.org/x/text/encoding/unicode"
)

// TextString creates a String object using the "text string" encoding.
// Strings which consist of printable ASCII characters only are stored
// unchanged, all other strings are stored as UTF-16BE with a byte order
// mark.
//
// See section 7.9.2.2 of PDF 32000-1:2008.
func TextString(s string) String {
	isASCII := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 0x20 || c > 0x7e) && c != '\t' && c != '\n' && c != '\r' {
			isASCII = false
			break
		}
	}
	if isASCII {
		return String(s)
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	buf, err := enc.Bytes([]byte(s))
	if err != nil {
		// invalid UTF-8, keep the bytes as they are
		return String(s)
	}
	return String(buf)
}

// Date creates a PDF date string.
//
// See section 7.9.4 of PDF 32000-1:2008.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405")
	_, offset := t.Zone()
	if offset == 0 {
		return String(s + "Z")
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	offset /= 60
	return String(fmt.Sprintf("%s%c%02d'%02d'", s, sign, offset/60, offset%60))
}
