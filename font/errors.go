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
	"errors"
	"strconv"
)

// ParseError indicates that a font file could not be parsed.
type ParseError struct {
	FileName string
	Err      error
}

func (err *ParseError) Error() string {
	msg := "malformed font file"
	if err.FileName != "" {
		msg = strconv.Quote(err.FileName) + ": " + msg
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// ErrNoCMap indicates that a font has no character map which can be used
// to map text to glyphs.
var ErrNoCMap = errors.New("no usable cmap subtable")

func errTable(name string, reason string) error {
	return errors.New(name + " table: " + reason)
}
