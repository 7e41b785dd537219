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
	"bufio"
	"errors"
	"io"
	"os"

	"golang.org/x/exp/slices"
)

// Data is an in-memory representation of a PDF document under construction.
// It maps object references to the objects stored under these references.
//
// Data implements the [Putter] interface and is the usual target of
// [Integrator.Integrate].
type Data struct {
	version Version
	objects map[Reference]Object
	lastRef uint32
	root    Reference
	info    Dict
}

// NewData creates a new, empty document for the given PDF version.
func NewData(v Version) *Data {
	res := &Data{
		version: v,
		objects: map[Reference]Object{},
	}
	return res
}

// Version returns the PDF version of the document.
func (d *Data) Version() Version {
	return d.version
}

// Alloc allocates a new object number for an indirect object.
// Object numbers increase monotonically and are never reused.
func (d *Data) Alloc() Reference {
	for {
		d.lastRef++
		ref := NewReference(d.lastRef, 0)
		if _, ok := d.objects[ref]; !ok {
			return ref
		}
	}
}

// Put stores obj under the reference ref.  A previous object stored under
// the same reference is replaced.  If obj is nil, the reference is removed
// from the table.
func (d *Data) Put(ref Reference, obj Object) error {
	if obj == nil {
		delete(d.objects, ref)
	} else {
		d.objects[ref] = obj
	}
	return nil
}

// Get returns the object stored under ref, or nil if no such object exists.
// If the object is a stream which can be rewound, the stream data is reset
// to the beginning.
func (d *Data) Get(ref Reference) (Object, error) {
	obj := d.objects[ref]
	if s, ok := obj.(*Stream); ok {
		if ss, ok := s.R.(io.Seeker); ok {
			_, err := ss.Seek(0, io.SeekStart)
			if err != nil {
				return nil, err
			}
		}
	}
	return obj, nil
}

// Len returns the number of objects stored in the document.
func (d *Data) Len() int {
	return len(d.objects)
}

// SetRoot sets the document catalog, i.e. the Root entry of the trailer.
func (d *Data) SetRoot(ref Reference) {
	d.root = ref
}

// Root returns the reference of the document catalog.  The result is 0 if
// [Data.SetRoot] has not been called.
func (d *Data) Root() Reference {
	return d.root
}

// SetInfo sets the document information dictionary.
// The dictionary is stored as an indirect object when the file is written.
func (d *Data) SetInfo(info Dict) {
	d.info = info
}

// References returns all references in use, sorted by object number.
func (d *Data) References() []Reference {
	refs := make([]Reference, 0, len(d.objects))
	for ref := range d.objects {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, func(a, b Reference) int {
		if a.Number() != b.Number() {
			return int(int64(a.Number()) - int64(b.Number()))
		}
		return int(a.Generation()) - int(b.Generation())
	})
	return refs
}

// Dangling returns all references which occur inside stored objects (or as
// the document root) but which do not resolve to an object in the table.
// A document without dangling references has an empty result.
func (d *Data) Dangling() []Reference {
	seen := map[Reference]bool{}
	var res []Reference
	check := func(ref Reference) {
		if seen[ref] {
			return
		}
		seen[ref] = true
		if _, ok := d.objects[ref]; !ok {
			res = append(res, ref)
		}
	}

	var walk func(obj Object)
	walk = func(obj Object) {
		switch obj := obj.(type) {
		case Reference:
			check(obj)
		case Array:
			for _, elem := range obj {
				walk(elem)
			}
		case Dict:
			for _, val := range obj {
				walk(val)
			}
		case *Stream:
			walk(obj.Dict)
		}
	}

	if d.root != 0 {
		check(d.root)
	}
	for _, ref := range d.References() {
		walk(d.objects[ref])
	}
	walk(d.info)
	return res
}

// Write writes the PDF document to w.
// The objects are written in the order of their object numbers.
func (d *Data) Write(w io.Writer, opt *WriterOptions) error {
	if d.root == 0 {
		return errNoRoot
	}

	pdf, err := NewWriter(w, d.version, opt)
	if err != nil {
		return err
	}

	for _, ref := range d.References() {
		obj, err := d.Get(ref)
		if err != nil {
			return err
		}
		err = pdf.Put(ref, obj)
		if err != nil {
			return err
		}
	}

	var infoRef Reference
	if d.info != nil {
		infoRef = pdf.Alloc()
		err = pdf.Put(infoRef, d.info)
		if err != nil {
			return err
		}
	}

	return pdf.Close(d.root, infoRef)
}

// Save writes the PDF document to the named file.  If the file already
// exists, it is overwritten.
func (d *Data) Save(fname string, opt *WriterOptions) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
	}()

	buf := bufio.NewWriter(fd)
	err = d.Write(buf, opt)
	if err != nil {
		return err
	}
	return buf.Flush()
}

var errNoRoot = errors.New("missing /Root in trailer")
