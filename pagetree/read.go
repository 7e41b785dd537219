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

package pagetree

import (
	"errors"
	"fmt"

	"seehuhn.de/go/pdfdoc/pdf"
)

// FindPages walks the page tree of a written document, starting at the
// document catalog, and returns the references of all pages in page order.
func FindPages(r pdf.Getter, catalog pdf.Reference) ([]pdf.Reference, error) {
	root, err := getDict(r, catalog)
	if err != nil {
		return nil, err
	}
	pagesRef, ok := root["Pages"].(pdf.Reference)
	if !ok {
		return nil, errInvalidPageTree
	}

	var res []pdf.Reference
	todo := []pdf.Reference{pagesRef}
	seen := map[pdf.Reference]bool{
		pagesRef: true,
	}
	for len(todo) > 0 {
		k := len(todo) - 1
		ref := todo[k]
		todo = todo[:k]

		node, err := getDict(r, ref)
		if err != nil {
			return nil, err
		}
		switch node["Type"] {
		case pdf.Name("Page"):
			res = append(res, ref)
		case pdf.Name("Pages"):
			kids, _ := node["Kids"].(pdf.Array)
			for i := len(kids) - 1; i >= 0; i-- {
				kidRef, ok := kids[i].(pdf.Reference)
				if !ok || seen[kidRef] {
					return nil, errInvalidPageTree
				}
				todo = append(todo, kidRef)
				seen[kidRef] = true
			}
		default:
			return nil, fmt.Errorf("%s: unexpected node type %v", ref, node["Type"])
		}
	}

	return res, nil
}

func getDict(r pdf.Getter, ref pdf.Reference) (pdf.Dict, error) {
	obj, err := r.Get(ref)
	if err != nil {
		return nil, err
	}
	dict, ok := obj.(pdf.Dict)
	if !ok {
		return nil, fmt.Errorf("%s: expected Dict but got %T", ref, obj)
	}
	return dict, nil
}

var errInvalidPageTree = errors.New("invalid page tree")
