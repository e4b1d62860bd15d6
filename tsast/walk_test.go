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

package tsast_test

import (
	"slices"
	"testing"

	"fillmore-labs.com/constenum/internal/testsource"
	. "fillmore-labs.com/constenum/tsast"
	"fillmore-labs.com/constenum/tsast/edge"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	_, f := testsource.Parse(t, `
enum E { A = 1 }
export { E as F };
const x = { y, [z]: E.A };
`)

	type visit struct {
		name string
		edge edge.Kind
	}

	var got []visit

	Inspect(f, func(c Cursor) bool {
		if id, ok := c.Node.(*Ident); ok {
			got = append(got, visit{id.Name, c.Edge})
		}

		return true
	})

	want := []visit{
		{"E", edge.EnumDecl_Name},
		{"A", edge.EnumMember_Name},
		{"E", edge.ExportSpec_Local},
		{"F", edge.ExportSpec_Exported},
		{"x", edge.VarSpec_Name},
		{"y", edge.Property_Key},
		{"y", edge.Property_Value},
		{"z", edge.Property_Key},
		{"E", edge.MemberExpr_X},
		{"A", edge.MemberExpr_Sel},
	}

	if !slices.Equal(got, want) {
		t.Errorf("Got visits %v, want %v", got, want)
	}
}

func TestInspectPrune(t *testing.T) {
	t.Parallel()

	_, f := testsource.Parse(t, "enum E { A = x }\nf(y);")

	var names []string

	Inspect(f, func(c Cursor) bool {
		switch n := c.Node.(type) {
		case *EnumDecl:
			return false

		case *Ident:
			names = append(names, n.Name)
		}

		return true
	})

	if want := []string{"f", "y"}; !slices.Equal(names, want) {
		t.Errorf("Got %q, want %q", names, want)
	}
}

func TestPreorderStop(t *testing.T) {
	t.Parallel()

	_, f := testsource.Parse(t, "a; b; c;")

	var names []string

	for n := range Preorder(f) {
		id, ok := n.(*Ident)
		if !ok {
			continue
		}

		if names = append(names, id.Name); len(names) == 2 {
			break
		}
	}

	if want := []string{"a", "b"}; !slices.Equal(names, want) {
		t.Errorf("Got %q, want %q", names, want)
	}
}

func TestChildrenShared(t *testing.T) {
	t.Parallel()

	id := &Ident{Name: "E"}
	spec := &ExportSpec{Local: id, Exported: id}

	var kinds []edge.Kind
	for k := range Children(spec) {
		kinds = append(kinds, k)
	}

	if want := []edge.Kind{edge.ExportSpec_Local}; !slices.Equal(kinds, want) {
		t.Errorf("Got %v, want %v", kinds, want)
	}
}
