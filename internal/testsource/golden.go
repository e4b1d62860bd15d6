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

package testsource

import (
	"bytes"
	"cmp"
	"fmt"
	"go/token"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/txtar"

	"fillmore-labs.com/constenum/tsast"
)

// DiagnoseFunc analyzes a single file.
type DiagnoseFunc func(fset *token.FileSet, f *tsast.File) []analysis.Diagnostic

// Run checks diagnose against the txtar archives in dir.
//
// Every .ts file of an archive is parsed and analyzed. Expected diagnostics are
// given by comments of the form
//
//	// want "regexp" ...
//
// on the line where the diagnostic is reported. When the archive holds a
// file with the same name and a .golden suffix, the suggested fixes of all
// diagnostics are applied and the result is compared to it.
func Run(t *testing.T, dir string, diagnose DiagnoseFunc) {
	t.Helper()

	archives, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("Can't list archives: %v", err)
	}

	if len(archives) == 0 {
		t.Fatalf("No archives in %s", dir)
	}

	for _, name := range archives {
		ar, err := txtar.ParseFile(name)
		if err != nil {
			t.Fatalf("Can't read archive: %v", err)
		}

		t.Run(strings.TrimSuffix(filepath.Base(name), ".txtar"), func(t *testing.T) {
			t.Parallel()

			golden := make(map[string][]byte)
			for _, f := range ar.Files {
				if base, ok := strings.CutSuffix(f.Name, ".golden"); ok {
					golden[base] = f.Data
				}
			}

			for _, f := range ar.Files {
				if filepath.Ext(f.Name) != ".ts" {
					continue
				}

				want, ok := golden[f.Name]
				checkFile(t, f.Name, f.Data, diagnose, want, ok)
			}
		})
	}
}

func checkFile(t *testing.T, name string, src []byte, diagnose DiagnoseFunc, golden []byte, hasGolden bool) {
	t.Helper()

	fset := token.NewFileSet()

	f, err := ParseFile(fset, name, string(src))
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", name, err)
	}

	diagnostics := diagnose(fset, f)

	checkExpectations(t, fset, f, diagnostics)

	if !hasGolden {
		return
	}

	got, err := applyFixes(fset, src, diagnostics)
	if err != nil {
		t.Errorf("%s: %v", name, err)

		return
	}

	if !bytes.Equal(got, golden) {
		t.Errorf("%s: fixed source differs from golden file\n--- got ---\n%s\n--- want ---\n%s", name, got, golden)
	}
}

// expectation is a single expected diagnostic.
type expectation struct {
	line    int
	pattern *regexp.Regexp
	matched bool
}

var wantComment = regexp.MustCompile(`//\s*want\s+(.*)$`)

func checkExpectations(t *testing.T, fset *token.FileSet, f *tsast.File, diagnostics []analysis.Diagnostic) {
	t.Helper()

	var expectations []*expectation

	for _, c := range f.Comments {
		m := wantComment.FindStringSubmatch(c.Text)
		if m == nil {
			continue
		}

		line := fset.Position(c.Pos()).Line

		patterns, err := parsePatterns(m[1])
		if err != nil {
			t.Errorf("%s: invalid expectation: %v", fset.Position(c.Pos()), err)

			continue
		}

		for _, re := range patterns {
			expectations = append(expectations, &expectation{line: line, pattern: re})
		}
	}

	for _, d := range diagnostics {
		posn := fset.Position(d.Pos)

		i := slices.IndexFunc(expectations, func(e *expectation) bool {
			return !e.matched && e.line == posn.Line && e.pattern.MatchString(d.Message)
		})
		if i < 0 {
			t.Errorf("%s: unexpected diagnostic: %s", posn, d.Message)

			continue
		}

		expectations[i].matched = true
	}

	for _, e := range expectations {
		if !e.matched {
			t.Errorf("%s:%d: no diagnostic was reported matching %q", f.Name, e.line, e.pattern)
		}
	}
}

// parsePatterns splits a sequence of quoted regular expressions.
func parsePatterns(s string) ([]*regexp.Regexp, error) {
	var patterns []*regexp.Regexp

	for s = strings.TrimSpace(s); s != ""; s = strings.TrimSpace(s) {
		q, err := strconv.QuotedPrefix(s)
		if err != nil {
			return nil, fmt.Errorf("expected quoted pattern at %q: %w", s, err)
		}

		s = s[len(q):]

		text, err := strconv.Unquote(q)
		if err != nil {
			return nil, err
		}

		re, err := regexp.Compile(text)
		if err != nil {
			return nil, err
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

// applyFixes applies the edits of all suggested fixes to src.
func applyFixes(fset *token.FileSet, src []byte, diagnostics []analysis.Diagnostic) ([]byte, error) {
	type edit struct {
		start, end int
		text       []byte
	}

	var edits []edit

	for _, d := range diagnostics {
		for _, fix := range d.SuggestedFixes {
			for _, e := range fix.TextEdits {
				end := e.End
				if !end.IsValid() {
					end = e.Pos
				}

				edits = append(edits, edit{
					start: fset.Position(e.Pos).Offset,
					end:   fset.Position(end).Offset,
					text:  e.NewText,
				})
			}
		}
	}

	slices.SortStableFunc(edits, func(a, b edit) int { return cmp.Compare(a.start, b.start) })

	var out bytes.Buffer

	last := 0
	for _, e := range edits {
		if e.start < last || e.end < e.start || e.end > len(src) {
			return nil, fmt.Errorf("overlapping or invalid edit at offset %d", e.start)
		}

		out.Write(src[last:e.start])
		out.Write(e.text)
		last = e.end
	}

	out.Write(src[last:])

	return out.Bytes(), nil
}
