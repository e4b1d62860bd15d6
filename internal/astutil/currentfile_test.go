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

package astutil_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/constenum/internal/astutil"
	"fillmore-labs.com/constenum/internal/testsource"
	"fillmore-labs.com/constenum/tsast"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//nolint:constenum", true},
		{"// nolint:constenum", true},
		{"//nolint:unused,ConstEnum", true},
		{"//nolint:all", true},
		{"//nolint:unused", false},
		{"// constenum", false},
		{"/* nolint:constenum */", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&tsast.Comment{Text: tt.text}); got != tt.want {
			t.Errorf("CommentHasNoLint(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	const src = `enum A { X } // nolint:constenum
enum B { Y } // other
// nolint:constenum
enum C { Z }
`

	fset, f := testsource.Parse(t, src)
	c := NewCurrentFile(fset, f)

	want := map[string]bool{"A": true, "B": false, "C": false}

	for _, d := range testsource.Enums(f) {
		if got := c.NoLintComment(d.Pos()); got != want[d.Name.Name] {
			t.Errorf("NoLintComment(%s) = %v, want %v", d.Name.Name, got, want[d.Name.Name])
		}
	}

	if c.NoLint() {
		t.Error("Expected file without leading nolint comment to be analyzed")
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		generated bool
		nolint    bool
	}{
		{"plain", "enum A { X }", false, false},
		{"generated", "// Code generated by tsgen. DO NOT EDIT.\n\nenum A { X }", true, false},
		{"tagged", "/**\n * @generated\n */\nenum A { X }", true, false},
		{"late marker", "enum A { X }\n// Code generated by tsgen. DO NOT EDIT.", false, false},
		{"nolint", "//nolint:constenum\nenum A { X }", false, true},
		{"empty", "// Code generated by tsgen. DO NOT EDIT.\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f := testsource.Parse(t, tt.src)
			c := NewCurrentFile(fset, f)

			if !c.Valid() {
				t.Fatal("Expected valid file")
			}

			if got := c.Generated(); got != tt.generated {
				t.Errorf("Generated() = %v, want %v", got, tt.generated)
			}

			if got := c.NoLint(); got != tt.nolint {
				t.Errorf("NoLint() = %v, want %v", got, tt.nolint)
			}
		})
	}
}

func TestCurrentFileInvalid(t *testing.T) {
	t.Parallel()

	_, f := testsource.Parse(t, "enum A { X }")

	if NewCurrentFile(token.NewFileSet(), f).Valid() {
		t.Error("Expected file from another file set to be invalid")
	}

	if NewCurrentFile(nil, nil).Valid() {
		t.Error("Expected nil file to be invalid")
	}
}
