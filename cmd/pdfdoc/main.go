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

// Pdfdoc writes a PDF file which shows a short text, using an embedded
// subset of a TrueType font.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"

	"seehuhn.de/go/pdfdoc/document"
	"seehuhn.de/go/pdfdoc/font/truetype"
	"seehuhn.de/go/pdfdoc/pdf"
)

func main() {
	fontFile := flag.String("font", "", "TrueType or OpenType font `file`")
	text := flag.String("text", "Hello World", "text to show on every page")
	numPages := flag.Int("pages", 1, "number of pages")
	paperName := flag.String("paper", "a4", "paper size (a4, a5, letter; add -landscape to rotate)")
	fontSize := flag.Float64("size", 24, "font size in points")
	margin := flag.String("margin", "25mm", "distance of the text from the top left corner")
	embed := flag.String("embed", "subset", "font embedding (subset, complete, external)")
	version := flag.String("version", "2.0", "PDF version")
	title := flag.String("title", "", "document title")
	uncompressed := flag.Bool("uncompressed", false, "do not compress streams")
	traceLevel := flag.String("trace", "Error", "trace level (Debug, Info, Error)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.pdf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	outName := flag.Arg(0)

	trace := gologadapter.New()
	trace.SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))

	err := run(trace, &config{
		outName:      outName,
		fontFile:     *fontFile,
		text:         *text,
		numPages:     *numPages,
		paperName:    *paperName,
		fontSize:     *fontSize,
		margin:       *margin,
		embed:        *embed,
		version:      *version,
		title:        *title,
		uncompressed: *uncompressed,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "pdfdoc:", err)
		os.Exit(1)
	}
}

type config struct {
	outName      string
	fontFile     string
	text         string
	numPages     int
	paperName    string
	fontSize     float64
	margin       string
	embed        string
	version      string
	title        string
	uncompressed bool
}

func run(trace tracing.Trace, cfg *config) error {
	paper, ok := document.PaperByName(cfg.paperName)
	if !ok {
		return fmt.Errorf("unknown paper size %q", cfg.paperName)
	}
	margin, err := parseLength(cfg.margin)
	if err != nil {
		return err
	}
	embedding, err := parseEmbedding(cfg.embed)
	if err != nil {
		return err
	}
	ver, err := pdf.ParseVersion(cfg.version)
	if err != nil {
		return err
	}
	if cfg.numPages < 1 {
		return fmt.Errorf("invalid number of pages %d", cfg.numPages)
	}

	doc := document.New(&document.Options{
		Version:       ver,
		HumanReadable: cfg.uncompressed,
		Embedding:     embedding,
		Title:         cfg.title,
		Creator:       "pdfdoc",
		Trace:         trace,
	})

	var code pdf.Name
	if cfg.fontFile != "" {
		code, err = doc.AddFont(cfg.fontFile)
		if err != nil {
			return err
		}
	}

	lines := strings.Split(cfg.text, `\n`)
	for i := 0; i < cfg.numPages; i++ {
		pageNo := doc.AddPage(paper)
		if code == "" {
			continue
		}
		y := paper.Height - margin - document.Length(cfg.fontSize)
		for _, line := range lines {
			err = doc.ShowText(pageNo, code, cfg.fontSize, margin, y, line)
			if err != nil {
				return err
			}
			y -= document.Length(1.2 * cfg.fontSize)
		}
	}

	if cfg.outName != "-" {
		return doc.Save(cfg.outName)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("not writing binary PDF data to a terminal")
	}
	return writeTo(os.Stdout, doc)
}

func writeTo(w io.Writer, doc *document.Document) error {
	buf := bufio.NewWriter(w)
	err := doc.Write(buf)
	if err != nil {
		return err
	}
	return buf.Flush()
}

// parseLength parses a length like "25mm" or "1.5in".  Numbers without a
// unit are in points.
func parseLength(s string) (document.Length, error) {
	s = strings.TrimSpace(s)
	unit := document.Pt
	if len(s) > 2 {
		if u, ok := document.ParseUnit(s[len(s)-2:]); ok {
			unit = u
			s = s[:len(s)-2]
		}
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return document.Length(x) * unit, nil
}

func parseEmbedding(s string) (truetype.Embedding, error) {
	for _, e := range []truetype.Embedding{truetype.Subset, truetype.Complete, truetype.External} {
		if e.String() == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown font embedding %q", s)
}
