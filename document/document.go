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

// Package document builds PDF documents.
//
// A [Document] keeps all pages and fonts in memory.  Fonts are subset when
// the document is written, so that only the glyphs needed for the text on
// the pages are embedded.
package document

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/pdfdoc/font/truetype"
	"seehuhn.de/go/pdfdoc/pagetree"
	"seehuhn.de/go/pdfdoc/pdf"
	"seehuhn.de/go/pdfdoc/resource"
)

// Producer is the value of the /Producer entry in the document information
// dictionary.
const Producer = "seehuhn.de/go/pdfdoc"

// Options control the construction of a document.
type Options struct {
	// Version is the PDF version of the output.  The default is PDF 2.0.
	Version pdf.Version

	// HumanReadable disables compression of streams.
	HumanReadable bool

	// Embedding selects how fonts are included in the file.
	Embedding truetype.Embedding

	Title        string
	Author       string
	Creator      string
	CreationDate time.Time

	// Trace receives diagnostic messages.  If this is nil, messages go to
	// the tracer selected by the key "pdfdoc.document".
	Trace tracing.Trace
}

// Document is a PDF document under construction.
type Document struct {
	data      *pdf.Data
	root      *pagetree.Root
	resources *resource.Resources
	fonts     map[pdf.Name]*truetype.Font

	opt   Options
	trace tracing.Trace
}

// New creates an empty document.
func New(opt *Options) *Document {
	var o Options
	if opt != nil {
		o = *opt
	}
	if o.Version == 0 {
		o.Version = pdf.V2_0
	}
	trace := o.Trace
	if trace == nil {
		trace = tracer()
	}

	data := pdf.NewData(o.Version)
	doc := &Document{
		data:      data,
		root:      pagetree.NewRoot(data),
		resources: resource.New(data),
		fonts:     map[pdf.Name]*truetype.Font{},
		opt:       o,
		trace:     trace,
	}
	return doc
}

// Data returns the document table.  The table is only complete after
// [Document.Write] or [Document.Save] has been called.
func (doc *Document) Data() *pdf.Data {
	return doc.data
}

// AddPage appends a new, empty page and returns the page number.  Pages
// are numbered 1, 2, ....
func (doc *Document) AddPage(paper Paper) int {
	_, n := doc.root.Pages().NewPage(doc.data, doc.resources.Reference(), paper.MediaBox())
	doc.trace.Debugf("page %d: %gx%g", n, paper.Width.Points(), paper.Height.Points())
	return n
}

// NumPages returns the number of pages in the document.
func (doc *Document) NumPages() int {
	return doc.root.Pages().Count()
}

// AddFont loads a TrueType or OpenType font from a file and returns the
// code used to select the font in [Document.ShowText].
func (doc *Document) AddFont(fname string) (pdf.Name, error) {
	f, err := truetype.New(doc.data, fname, &truetype.Options{
		Embedding: doc.opt.Embedding,
		Trace:     doc.opt.Trace,
	})
	if err != nil {
		return "", err
	}
	code := doc.resources.Add(f)
	doc.fonts[code] = f
	doc.trace.Infof("font %s: %s", code, f.Info())
	return code, nil
}

// Font returns the font registered under the given code.
func (doc *Document) Font(code pdf.Name) (*truetype.Font, bool) {
	f, ok := doc.fonts[code]
	return f, ok
}

// ShowText places text on a page.  The position (x, y) is the start of
// the baseline, measured from the bottom left corner of the page.
func (doc *Document) ShowText(pageNo int, code pdf.Name, size float64, x, y Length, text string) error {
	kids := doc.root.Pages().Kids()
	if pageNo < 1 || pageNo > len(kids) {
		return fmt.Errorf("page %d: %w", pageNo, errNoPage)
	}
	f, ok := doc.fonts[code]
	if !ok {
		return fmt.Errorf("font %q: %w", code, errNoFont)
	}

	page := kids[pageNo-1]
	contents, _ := page.Contents().(*pagetree.Contents)
	if contents == nil {
		contents = pagetree.NewContents(doc.data)
		page.SetContents(contents)
	}

	f.AddText(text)
	fmt.Fprintf(contents, "BT\n%s %s Tf\n%s %s Td\n",
		pdf.Format(code), pdf.Format(pdf.Number(size)),
		pdf.Format(pdf.Number(x.Points())), pdf.Format(pdf.Number(y.Points())))
	contents.Defer(func() []byte {
		return []byte(pdf.Format(f.Encode(text)) + " Tj\n")
	})
	fmt.Fprint(contents, "ET\n")
	return nil
}

// Finalize subsets the fonts and inserts all objects of the document into
// the document table.  Finalize is called by [Document.Write]; calling it
// more than once is harmless.
func (doc *Document) Finalize() error {
	err := doc.resources.Integrate(doc.data)
	if err != nil {
		return err
	}
	err = doc.root.Integrate(doc.data)
	if err != nil {
		return err
	}
	doc.data.SetRoot(doc.root.Reference())
	doc.data.SetInfo(doc.infoDict())
	return nil
}

// Write finalizes the document and writes the PDF file to w.
func (doc *Document) Write(w io.Writer) error {
	err := doc.Finalize()
	if err != nil {
		return err
	}
	return doc.data.Write(w, doc.writerOptions())
}

// Save finalizes the document and writes the PDF file to the file fname.
func (doc *Document) Save(fname string) error {
	err := doc.Finalize()
	if err != nil {
		return err
	}
	err = doc.data.Save(fname, doc.writerOptions())
	if err != nil {
		return err
	}
	doc.trace.Infof("wrote %s (%d pages, %d objects)", fname, doc.NumPages(), doc.data.Len())
	return nil
}

func (doc *Document) writerOptions() *pdf.WriterOptions {
	return &pdf.WriterOptions{
		HumanReadable: doc.opt.HumanReadable,
	}
}

func (doc *Document) infoDict() pdf.Dict {
	info := pdf.Dict{
		"Producer": pdf.TextString(Producer),
	}
	if doc.opt.Title != "" {
		info["Title"] = pdf.TextString(doc.opt.Title)
	}
	if doc.opt.Author != "" {
		info["Author"] = pdf.TextString(doc.opt.Author)
	}
	if doc.opt.Creator != "" {
		info["Creator"] = pdf.TextString(doc.opt.Creator)
	}
	if !doc.opt.CreationDate.IsZero() {
		info["CreationDate"] = pdf.Date(doc.opt.CreationDate)
	}
	return info
}

var (
	errNoPage = errors.New("no such page")
	errNoFont = errors.New("unknown font")
)

// tracer traces with key 'pdfdoc.document'.
func tracer() tracing.Trace {
	return tracing.Select("pdfdoc.document")
}
