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

package tsast

// Exported reports whether the declaration carries an export modifier.
func (s *EnumDecl) Exported() bool { return s.Export.IsValid() }

// Declared reports whether the declaration carries a declare modifier.
func (s *EnumDecl) Declared() bool { return s.Declare.IsValid() }

// IsConst reports whether the declaration carries a const modifier.
func (s *EnumDecl) IsConst() bool { return s.Const.IsValid() }

// CanonicalName returns the member name as seen by property access.
//
// Plain identifiers, string literals, substitution-free templates and computed
// names consisting of one of those literals have a canonical name; dynamically
// computed names have none.
func (s *EnumMember) CanonicalName() (string, bool) {
	if id, ok := s.Name.(*Ident); ok && !s.Computed {
		return id.Name, true
	}

	return StringValue(s.Name)
}

// StringValue returns the value of a literal string expression.
// Substitution-free templates count as literal strings, parentheses are ignored.
func StringValue(x Expr) (string, bool) {
	switch x := x.(type) {
	case *BasicLit:
		if x.Kind != String {
			return "", false
		}

		return x.Value, true

	case *TemplateLit:
		if len(x.Exprs) > 0 || len(x.Quasis) != 1 {
			return "", false
		}

		return x.Quasis[0], true

	case *ParenExpr:
		return StringValue(x.X)

	default:
		return "", false
	}
}

// Unparen returns the expression with any enclosing parentheses removed.
func Unparen(x Expr) Expr {
	for {
		p, ok := x.(*ParenExpr)
		if !ok {
			return x
		}

		x = p.X
	}
}
