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

package declaration

import (
	"fillmore-labs.com/constenum/internal/enums"
	"fillmore-labs.com/constenum/internal/evaluate"
	"fillmore-labs.com/constenum/tsast"
)

// Processor merges enum declarations into an [enums.Registry].
type Processor struct {
	Registry  *enums.Registry
	Evaluator evaluate.Evaluator
}

// New creates a [Processor] for the given registry.
func New(registry *enums.Registry) Processor {
	return Processor{Registry: registry, Evaluator: evaluate.New(registry)}
}

// Process records one enum declaration.
//
// Members are evaluated in declaration order, so an initializer only sees
// members recorded by earlier declarations and by preceding members of this one.
func (p Processor) Process(decl *tsast.EnumDecl) *enums.Tracking {
	if decl.Name == nil {
		return nil
	}

	t := p.Registry.Declare(decl)

	for _, m := range decl.Members {
		if m == nil {
			continue
		}

		constant := p.member(t, m)

		if name, ok := m.CanonicalName(); ok {
			t.Members.Record(name, constant)
		} else {
			constant = false // dynamically computed name
		}

		t.Accumulate(constant)
	}

	if decl.Exported() {
		t.Disqualify()
	}

	return t
}

// member decides whether a single member is constant-foldable.
func (p Processor) member(t *enums.Tracking, m *tsast.EnumMember) bool {
	switch {
	case t.IsConst:
		return true

	case m.Init == nil:
		return true // auto-increment

	default:
		return p.Evaluator.Constant(m.Init, t.Members)
	}
}
