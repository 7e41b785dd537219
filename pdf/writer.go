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
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"maps"
)

// WriterOptions allows to influence the way a PDF file is generated.
type WriterOptions struct {
	// HumanReadable disables compression of stream data.
	HumanReadable bool
}

// Writer writes indirect objects sequentially to an io.Writer, followed by
// a cross-reference table and the file trailer.
type Writer struct {
	w       *posWriter
	opt     *WriterOptions
	xref    map[uint32]*xRefEntry
	nextRef uint32
}

type xRefEntry struct {
	Pos        int64
	Generation uint16
}

// NewWriter prepares a PDF file for writing and writes the file header.
func NewWriter(w io.Writer, ver Version, opt *WriterOptions) (*Writer, error) {
	if opt == nil {
		opt = &WriterOptions{}
	}
	versionString, err := ver.ToString()
	if err != nil {
		return nil, err
	}

	pdf := &Writer{
		w:       &posWriter{w: w},
		opt:     opt,
		xref:    make(map[uint32]*xRefEntry),
		nextRef: 1,
	}

	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", versionString)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc returns a reference which has not yet been used in the file.
func (pdf *Writer) Alloc() Reference {
	ref := NewReference(pdf.nextRef, 0)
	pdf.nextRef++
	return ref
}

// Put writes obj to the file as the indirect object ref.
// Every reference can only be written once.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if pdf.w == nil {
		return errClosed
	}
	number := ref.Number()
	if _, seen := pdf.xref[number]; seen {
		return fmt.Errorf("object %s already written", ref)
	}
	if number >= pdf.nextRef {
		pdf.nextRef = number + 1
	}

	if s, isStream := obj.(*Stream); isStream {
		var err error
		obj, err = pdf.prepareStream(s)
		if err != nil {
			return err
		}
	}

	pos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", number, ref.Generation())
	if err != nil {
		return err
	}
	err = writeObject(pdf.w, obj)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\nendobj\n"))
	if err != nil {
		return err
	}

	pdf.xref[number] = &xRefEntry{Pos: pos, Generation: ref.Generation()}
	return nil
}

// prepareStream reads the stream data, compresses it if needed, and sets
// the Length entry.  The dictionary of the original stream is not modified.
func (pdf *Writer) prepareStream(s *Stream) (*Stream, error) {
	var data []byte
	if s.R != nil {
		var err error
		data, err = io.ReadAll(s.R)
		if err != nil {
			return nil, err
		}
	}

	dict := maps.Clone(s.Dict)
	if dict == nil {
		dict = Dict{}
	}
	if !pdf.opt.HumanReadable && dict["Filter"] == nil {
		buf := &bytes.Buffer{}
		zw := zlib.NewWriter(buf)
		_, err := zw.Write(data)
		if err != nil {
			return nil, err
		}
		err = zw.Close()
		if err != nil {
			return nil, err
		}
		data = buf.Bytes()
		dict["Filter"] = Name("FlateDecode")
	}
	dict["Length"] = Integer(len(data))

	return &Stream{Dict: dict, R: bytes.NewReader(data)}, nil
}

// Close writes the cross-reference table and the trailer.  The Writer
// cannot be used after Close has been called.
// If info is 0, the trailer has no Info entry.
func (pdf *Writer) Close(root, info Reference) error {
	if pdf.w == nil {
		return errClosed
	}
	if root == 0 {
		return errNoRoot
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": root,
	}
	if info != 0 {
		trailer["Info"] = info
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	pdf.w = nil
	return nil
}

func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	for i := uint32(0); i < pdf.nextRef; i++ {
		entry := pdf.xref[i]
		if entry != nil {
			_, err = fmt.Fprintf(pdf.w, "%010d %05d n\r\n",
				entry.Pos, entry.Generation)
		} else {
			// free object
			_, err = pdf.w.Write([]byte("0000000000 65535 f\r\n"))
		}
		if err != nil {
			return err
		}
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

var errClosed = errors.New("PDF writer already closed")
