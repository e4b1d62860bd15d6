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

// Package testsource provides utilities for parsing TypeScript sources in tests.
package testsource

import (
	"context"
	"errors"
	"go/token"
	"testing"

	"fillmore-labs.com/constenum/treesitter"
	"fillmore-labs.com/constenum/tsast"
)

// ParseFile parses src into a syntax tree and registers it in fset under filename.
func ParseFile(fset *token.FileSet, filename, src string) (*tsast.File, error) {
	return treesitter.Parse(context.Background(), fset, filename, []byte(src))
}

// Parse parses a TypeScript source fragment into a syntax tree.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *tsast.File: The parsed syntax tree of the source file.
func Parse(tb testing.TB, src string) (*token.FileSet, *tsast.File) {
	tb.Helper()

	const filename = "test.ts"

	fset := token.NewFileSet()

	f, err := ParseFile(fset, filename, src)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// ParseExpr parses a single expression.
func ParseExpr(tb testing.TB, src string) tsast.Expr {
	tb.Helper()

	_, f := Parse(tb, src)

	if len(f.Stmts) != 1 {
		tb.Fatalf("Expected a single expression in %q, got %d statements", src, len(f.Stmts))
	}

	s, ok := f.Stmts[0].(*tsast.ExprStmt)
	if !ok {
		tb.Fatalf("Expected an expression in %q, got %T", src, f.Stmts[0])
	}

	return s.X
}

// Enums returns all enum declarations of f in source order.
func Enums(f *tsast.File) []*tsast.EnumDecl {
	var decls []*tsast.EnumDecl

	for n := range tsast.Preorder(f) {
		if d, ok := n.(*tsast.EnumDecl); ok {
			decls = append(decls, d)
		}
	}

	return decls
}

// ErrNoEnum is returned by [FirstEnum] when the file declares no enum.
var ErrNoEnum = errors.New("no enum declaration")

// FirstEnum returns the first enum declaration of f.
func FirstEnum(f *tsast.File) (*tsast.EnumDecl, error) {
	if decls := Enums(f); len(decls) > 0 {
		return decls[0], nil
	}

	return nil, ErrNoEnum
}
