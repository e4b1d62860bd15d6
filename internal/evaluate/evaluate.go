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

package evaluate

import (
	"fillmore-labs.com/constenum/internal/enums"
	"fillmore-labs.com/constenum/internal/usage"
	"fillmore-labs.com/constenum/tsast"
	"fillmore-labs.com/constenum/tsast/edge"
)

// Evaluator decides whether enum member initializers are constant-foldable.
//
// Evaluation has a side effect: enums referenced in ways incompatible with
// const enums are disqualified in the [enums.Registry].
type Evaluator struct {
	Registry *enums.Registry
}

// New creates an [Evaluator] working on the given registry.
func New(registry *enums.Registry) Evaluator {
	return Evaluator{Registry: registry}
}

// Constant reports whether the initializer x only references literals and
// constant members. members holds the sibling members recorded so far.
func (e Evaluator) Constant(x tsast.Expr, members enums.Members) bool {
	ev := evaluation{Evaluator: e, members: members}

	return ev.expr(x, nil, edge.EnumMember_Init)
}

// evaluation is a single initializer evaluation.
type evaluation struct {
	Evaluator
	members enums.Members
}

// expr evaluates x, found at field k of parent.
func (ev evaluation) expr(x tsast.Expr, parent tsast.Node, k edge.Kind) bool {
	switch x := x.(type) {
	case nil:
		return true

	case *tsast.Ident:
		return ev.ident(x, parent, k)

	case *tsast.MemberExpr:
		if x.Sel != nil && ev.memberAccess(x.X, x.Sel.Name) {
			return true // E.m
		}

		ev.expr(x.X, x, edge.MemberExpr_X)

		return false

	case *tsast.IndexExpr:
		if name, ok := tsast.StringValue(x.Index); ok && ev.memberAccess(x.X, name) {
			return true // E["m"]
		}

		if id, ok := tsast.Unparen(x.X).(*tsast.Ident); ok && ev.tracked(id.Name) {
			ev.Registry.Disqualify(id.Name) // dynamic lookup
		} else {
			ev.expr(x.X, x, edge.IndexExpr_X)
		}

		ev.expr(x.Index, x, edge.IndexExpr_Index)

		return false

	case *tsast.BasicLit, *tsast.TemplateLit,
		*tsast.BinaryExpr, *tsast.CondExpr, *tsast.ParenExpr,
		*tsast.CallExpr, *tsast.ArrayLit, *tsast.ObjectLit,
		*tsast.Property, *tsast.SpreadElement:
		return ev.children(x)

	case *tsast.UnaryExpr:
		constant := ev.children(x)

		switch x.Op {
		case "++", "--", "delete":
			return false // side effect

		default:
			return constant
		}

	default: // *tsast.AssignExpr, *tsast.FuncLit, *tsast.Unknown, ...
		ev.children(x)

		return false
	}
}

// ident evaluates a bare identifier.
func (ev evaluation) ident(id *tsast.Ident, parent tsast.Node, k edge.Kind) bool {
	if ev.members.Known(id.Name) {
		return ev.members.Constant(id.Name) // sibling member
	}

	usage.Validator{Registry: ev.Registry}.Check(id, parent, k)

	return false
}

// children evaluates all child expressions of n; the result is constant when all of them are.
func (ev evaluation) children(n tsast.Node) bool {
	constant := true

	for k, child := range tsast.Children(n) {
		x, ok := child.(tsast.Expr)
		if !ok {
			ev.scan(child, n, k) // function bodies
			constant = false

			continue
		}

		if !ev.expr(x, n, k) {
			constant = false
		}
	}

	return constant
}

// scan checks all identifiers of a non-expression subtree for unsafe enum usage.
func (ev evaluation) scan(root, parent tsast.Node, k edge.Kind) {
	v := usage.Validator{Registry: ev.Registry}

	tsast.Inspect(root, func(c tsast.Cursor) bool {
		if c.Parent == nil {
			c.Parent, c.Edge = parent, k
		}

		switch n := c.Node.(type) {
		case *tsast.Ident:
			v.Check(n, c.Parent, c.Edge)

			return false

		case *tsast.EnumDecl:
			return false

		default:
			return true
		}
	})
}

// memberAccess reports whether base names a tracked enum whose member is known constant.
func (ev evaluation) memberAccess(base tsast.Expr, member string) bool {
	id, ok := tsast.Unparen(base).(*tsast.Ident)
	if !ok {
		return false
	}

	t, ok := ev.Registry.Lookup(id.Name)

	return ok && t.Members.Constant(member)
}

func (ev evaluation) tracked(name string) bool {
	_, ok := ev.Registry.Lookup(name)

	return ok
}
