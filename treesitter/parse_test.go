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


package treesitter_test

import (
	"context"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/constenum/analyzer"
	"fillmore-labs.com/constenum/internal/testsource"
	. "fillmore-labs.com/constenum/treesitter"
	"fillmore-labs.com/constenum/tsast"
)

func parse(tb testing.TB, src string) (*token.FileSet, *tsast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := Parse(context.Background(), fset, "test.ts", []byte(src))
	require.NoError(tb, err)

	return fset, f
}

func parseExpr(tb testing.TB, src string) tsast.Expr {
	tb.Helper()

	_, f := parse(tb, src)
	require.Len(tb, f.Stmts, 1)

	s, ok := f.Stmts[0].(*tsast.ExprStmt)
	require.True(tb, ok, "statement is %T", f.Stmts[0])

	return s.X
}

func TestParseEnum(t *testing.T) {
	t.Parallel()

	const src = "export declare const enum Color { Red = 'r', [\"Green\"], Blue = Red + 1 } // trailing\n"

	fset, f := parse(t, src)

	decl, err := testsource.FirstEnum(f)
	require.NoError(t, err)

	assert.True(t, decl.Exported())
	assert.True(t, decl.Declared())
	assert.True(t, decl.IsConst())
	assert.Equal(t, "Color", decl.Name.Name)
	assert.Equal(t, 0, fset.Position(decl.Pos()).Offset)
	assert.Equal(t, 21, fset.Position(decl.Enum).Offset)
	require.Len(t, decl.Members, 3)

	red, ok := tsast.StringValue(decl.Members[0].Init)
	require.True(t, ok)
	assert.Equal(t, "r", red)

	assert.True(t, decl.Members[1].Computed)

	sum, ok := decl.Members[2].Init.(*tsast.BinaryExpr)
	require.True(t, ok, "initializer is %T", decl.Members[2].Init)
	assert.Equal(t, "+", sum.Op)

	require.Len(t, f.Comments, 1)
	assert.Equal(t, "// trailing", f.Comments[0].Text)
}

func TestParseExpressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want any
	}{
		{"a.b?.c", &tsast.MemberExpr{}},
		{"a[b]", &tsast.IndexExpr{}},
		{"new Foo(1)", &tsast.CallExpr{}},
		{"x => x", &tsast.FuncLit{}},
		{"(x: number, ...rest) => { return x; }", &tsast.FuncLit{}},
		{"<T,>(x: T) => x", &tsast.FuncLit{}},
		{"a ?? b || c", &tsast.BinaryExpr{}},
		{"a ? b : c", &tsast.CondExpr{}},
		{"a += 1", &tsast.AssignExpr{}},
		{"!a", &tsast.UnaryExpr{}},
		{"a!", &tsast.Ident{}},
		{"a as const", &tsast.Ident{}},
		{"[1, , 2n]", &tsast.ArrayLit{}},
		{"({ a, b: 1, [c]: 2, m() {} })", &tsast.ParenExpr{}},
		{"a, b", &tsast.Unknown{}},
		{"tag`x`", &tsast.Unknown{}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			x := parseExpr(t, tt.src)
			assert.IsType(t, tt.want, x)
		})
	}
}

func TestPrecedence(t *testing.T) {
	t.Parallel()

	x := parseExpr(t, "1 + 2 * 3 ** 2 ** 1")

	sum, ok := x.(*tsast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", sum.Op)

	product, ok := sum.Y.(*tsast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", product.Op)

	power, ok := product.Y.(*tsast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "**", power.Op)
	assert.IsType(t, &tsast.BinaryExpr{}, power.Y, "exponentiation is right-associative")
}

func TestParseUpdate(t *testing.T) {
	t.Parallel()

	postfix, ok := parseExpr(t, "i++").(*tsast.UnaryExpr)
	require.True(t, ok)
	assert.True(t, postfix.Postfix)
	assert.Equal(t, "++", postfix.Op)

	prefix, ok := parseExpr(t, "--i").(*tsast.UnaryExpr)
	require.True(t, ok)
	assert.False(t, prefix.Postfix)
	assert.Equal(t, "--", prefix.Op)
}

func TestParseArrayHoles(t *testing.T) {
	t.Parallel()

	array, ok := parseExpr(t, "[1, , 2n,]").(*tsast.ArrayLit)
	require.True(t, ok)
	require.Len(t, array.Elts, 3)

	assert.Nil(t, array.Elts[1])

	big, ok := array.Elts[2].(*tsast.BasicLit)
	require.True(t, ok)
	assert.Equal(t, tsast.BigInt, big.Kind)
}

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	template, ok := parseExpr(t, "`a${x}b\\n`").(*tsast.TemplateLit)
	require.True(t, ok)

	assert.Equal(t, []string{"a", "b\n"}, template.Quasis)
	require.Len(t, template.Exprs, 1)
	assert.IsType(t, &tsast.Ident{}, template.Exprs[0])
}

func TestParseStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want string
	}{
		{`"plain"`, "plain"},
		{`"a\nb"`, "a\nb"},
		{`'it\'s'`, "it's"},
		{`'\x41B\u{43}'`, "ABC"},
		{`"\q"`, "q"},
		{"`\\t`", "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			got, ok := tsast.StringValue(parseExpr(t, tt.src))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatements(t *testing.T) {
	t.Parallel()

	const src = `
type T = { a: E };
interface I { b: E }
namespace N {
  export function f(x: E): E { if (x) { return x; } else return E.A; }
}
let v: Array<E> = [], w;
export { v as w };
export default v;
`

	_, f := parse(t, src)
	require.Len(t, f.Stmts, 6)

	assert.IsType(t, &tsast.Unknown{}, f.Stmts[0])
	assert.IsType(t, &tsast.Unknown{}, f.Stmts[1])
	assert.IsType(t, &tsast.ModuleDecl{}, f.Stmts[2])
	assert.IsType(t, &tsast.VarDecl{}, f.Stmts[3])
	assert.IsType(t, &tsast.ExportNamed{}, f.Stmts[4])
	assert.IsType(t, &tsast.ExportDefault{}, f.Stmts[5])

	for _, s := range f.Stmts[:2] {
		for n := range tsast.Preorder(s) {
			_, ok := n.(*tsast.Ident)
			assert.False(t, ok, "type declarations hold no identifiers")
		}
	}

	module, ok := f.Stmts[2].(*tsast.ModuleDecl)
	require.True(t, ok)
	assert.Equal(t, "N", module.Name.Name)
	require.Len(t, module.Body.List, 1)

	export, ok := module.Body.List[0].(*tsast.ExportNamed)
	require.True(t, ok)
	assert.IsType(t, &tsast.FuncDecl{}, export.Decl)

	vars, ok := f.Stmts[3].(*tsast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "let", vars.Kind)
	assert.Len(t, vars.Specs, 2)
}

func TestParseLoopsAndClasses(t *testing.T) {
	t.Parallel()

	const src = `
for (const k in A) { use(k); }
class C { m(k: string) { return B[k]; } }
switch (x) { case D.X: break; }
`

	_, f := parse(t, src)
	require.Len(t, f.Stmts, 3)

	var names []string

	tsast.Inspect(f, func(c tsast.Cursor) bool {
		if id, ok := c.Node.(*tsast.Ident); ok {
			names = append(names, id.Name)
		}

		return true
	})

	assert.Equal(t, []string{"k", "A", "use", "k", "k", "B", "k", "x", "D", "X"}, names)
}

func TestParseComments(t *testing.T) {
	t.Parallel()

	_, f := parse(t, "enum E { /* inner */ A } // outer\n")

	require.Len(t, f.Comments, 2)
	assert.Equal(t, "/* inner */", f.Comments[0].Text)
	assert.Equal(t, "// outer", f.Comments[1].Text)
}

func TestParseTypePositions(t *testing.T) {
	t.Parallel()

	const src = `enum E { A }
let x: E = E.A;
function f(k: keyof typeof E): E[] { return [E.A]; }
class C implements Partial<Record<E, number>> { value: E = E["A"]; }
`

	fset, f := parse(t, src)

	diagnostics := analyzer.Default.Diagnostics(fset, f)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, 0, fset.Position(diagnostics[0].Pos).Offset)
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	tests := []string{
		"enum E { A",
		"f(",
		"'open",
		"}",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(context.Background(), token.NewFileSet(), "bad.ts", []byte(src))
			require.ErrorIs(t, err, ErrSyntax)
			assert.Contains(t, err.Error(), "bad.ts:1:")
		})
	}
}
