// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package enums

import (
	"iter"
	"slices"

	"fillmore-labs.com/constenum/tsast"
)

// Registry aggregates the tracking state of all enums of one file, keyed by name.
//
// Merged declarations of the same name share a single [Tracking] entry.
// A Registry lives for one analysis run and must not be reused.
type Registry struct {
	entries map[string]*Tracking
	order   []*Tracking
}

// NewRegistry creates an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Tracking)}
}

// Lookup returns the entry for the named enum.
func (r *Registry) Lookup(name string) (*Tracking, bool) {
	t, ok := r.entries[name]

	return t, ok
}

// Declare records an occurrence of an enum declaration and returns its entry.
//
// The first occurrence of a name creates the entry and fixes whether the enum is
// const; later occurrences are appended for merging.
func (r *Registry) Declare(decl *tsast.EnumDecl) *Tracking {
	name := decl.Name.Name

	t, ok := r.entries[name]
	if !ok {
		t = newTracking(name, decl.IsConst())
		r.entries[name] = t
		r.order = append(r.order, t)
	}

	t.Occurrences = append(t.Occurrences, decl)

	return t
}

// Disqualify permanently removes the named enum from eligibility.
// Unknown names are ignored.
func (r *Registry) Disqualify(name string) {
	if t, ok := r.entries[name]; ok {
		t.Disqualify()
	}
}

// All yields the entries in the order their first declaration was encountered.
func (r *Registry) All() iter.Seq[*Tracking] {
	return slices.Values(r.order)
}

// Len returns the number of tracked enums.
func (r *Registry) Len() int {
	return len(r.order)
}
