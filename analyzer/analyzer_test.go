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

package analyzer_test

import (
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/constenum/analyzer"
	"fillmore-labs.com/constenum/internal/testsource"
	"fillmore-labs.com/constenum/tsast"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "testdata/default",
		},
		{
			name:    "NoFix",
			dir:     "testdata/nofix",
			options: WithSuggestFixes(false),
		},
		{
			name: "Generated",
			dir:  "testdata/generated",
		},
		{
			name:    "IncludeGenerated",
			dir:     "testdata/includegenerated",
			options: Options{WithGenerated(true), WithSuggestFixes(true)},
		},
		{
			name:    "Ignore",
			dir:     "testdata/ignore",
			options: WithIgnore("Color"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)
			testsource.Run(t, tt.dir, a.Diagnostics)
		})
	}
}

func TestDiagnosticRange(t *testing.T) {
	t.Parallel()

	const src = "let x = 1;\ndeclare enum Color { Red, Green, Blue }\n"

	fset, f := testsource.Parse(t, src)

	diagnostics := Default.Diagnostics(fset, f)
	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
	}

	d := diagnostics[0]

	if got, want := offset(fset, d.Pos), 11; got != want {
		t.Errorf("Got diagnostic start %d, want %d", got, want)
	}

	if got, want := offset(fset, d.End), 29; got != want {
		t.Errorf("Got diagnostic end %d, want %d", got, want)
	}

	if len(d.SuggestedFixes) != 1 || len(d.SuggestedFixes[0].TextEdits) != 1 {
		t.Fatalf("Got fixes %v, want exactly one edit", d.SuggestedFixes)
	}

	edit := d.SuggestedFixes[0].TextEdits[0]

	if got, want := offset(fset, edit.Pos), 19; got != want || edit.End != edit.Pos {
		t.Errorf("Got edit at [%d, %d), want insertion at %d", got, offset(fset, edit.End), want)
	}

	if got, want := string(edit.NewText), "const "; got != want {
		t.Errorf("Got edit text %q, want %q", got, want)
	}
}

func TestRunWithoutFileSet(t *testing.T) {
	t.Parallel()

	_, f := testsource.Parse(t, "enum Color { Red }")

	var diagnostics []analysis.Diagnostic

	Default.Run(token.NewFileSet(), f, func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) })

	if len(diagnostics) != 0 {
		t.Errorf("Got %d diagnostics for an unregistered file, want none", len(diagnostics))
	}

	if got := Default.Diagnostics(nil, &tsast.File{}); len(got) != 0 {
		t.Errorf("Got %d diagnostics without a file set, want none", len(got))
	}
}

func offset(fset *token.FileSet, pos token.Pos) int {
	return fset.Position(pos).Offset
}
