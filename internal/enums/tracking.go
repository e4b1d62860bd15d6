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

import "fillmore-labs.com/constenum/tsast"

// Tracking is the analysis state of one enum, aggregated over all its declarations.
type Tracking struct {
	// Name identifies the enum within the file.
	Name string

	// IsConst is true when the enum is already declared const.
	// It is taken from the first occurrence.
	IsConst bool

	// Occurrences are the declaration sites in source order.
	Occurrences []*tsast.EnumDecl

	// Members maps canonical member names to whether their value is constant-foldable.
	Members Members

	disqualified bool
}

func newTracking(name string, isConst bool) *Tracking {
	return &Tracking{
		Name:    name,
		IsConst: isConst,
		Members: make(Members),
	}
}

// CanBeConst reports whether the enum is still eligible to be declared const.
func (t *Tracking) CanBeConst() bool {
	return !t.disqualified
}

// Disqualify permanently removes the enum from eligibility.
func (t *Tracking) Disqualify() {
	t.disqualified = true
}

// Accumulate folds the constancy of one member into the eligibility.
func (t *Tracking) Accumulate(constant bool) {
	if !constant {
		t.disqualified = true
	}
}

// Members maps canonical member names to whether their value is constant-foldable.
type Members map[string]bool

// Constant reports whether the named member is known and constant-foldable.
// Unknown members are not constant.
func (m Members) Constant(name string) bool {
	return m[name]
}

// Known reports whether the named member has been recorded.
func (m Members) Known(name string) bool {
	_, ok := m[name]

	return ok
}

// Record sets the constancy of a member. Members already recorded keep their
// first value; Record reports whether the member was added.
func (m Members) Record(name string, constant bool) bool {
	if _, ok := m[name]; ok {
		return false
	}

	m[name] = constant

	return true
}
