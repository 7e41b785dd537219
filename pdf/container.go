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

// Allocator hands out object numbers for indirect objects.
type Allocator interface {
	// Alloc returns a reference which has not been returned before.
	// Allocation cannot fail.
	Alloc() Reference
}

// Putter is the destination of [Integrator.Integrate].  Objects stored
// under a reference which is already in use replace the previous value.
type Putter interface {
	Allocator
	Put(ref Reference, obj Object) error
}

// Identified is implemented by entities which own an indirect object.
// The reference is allocated when the entity is constructed and never
// changes afterwards.
type Identified interface {
	Reference() Reference
}

// Exporter is implemented by entities which can describe their current
// state as a PDF object.
//
// AsPDF must not modify the entity: calling it twice without changing the
// entity in between gives identical output.
type Exporter interface {
	Identified
	AsPDF() Object
}

// Integrator is implemented by entities which can insert themselves into a
// PDF file.
//
// Integrate stores the object returned by AsPDF under the entity's
// reference, and then integrates all children owned by the entity, in a
// fixed order.  Integrate must only be called once all modifications of
// the entity and its children are complete.  Calling Integrate again
// without intermediate changes overwrites the stored objects with
// identical values.
type Integrator interface {
	Exporter
	Integrate(w Putter) error
}

// Export stores the object returned by obj.AsPDF under obj's reference.
// This is the first step of most [Integrator.Integrate] implementations.
func Export(w Putter, obj Exporter) error {
	return w.Put(obj.Reference(), obj.AsPDF())
}

// Getter gives access to objects stored in a PDF file.
type Getter interface {
	Get(ref Reference) (Object, error)
}
