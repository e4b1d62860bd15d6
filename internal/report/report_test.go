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

package report_test

import (
	"context"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/constenum/internal/astutil"
	. "fillmore-labs.com/constenum/internal/report"
	"fillmore-labs.com/constenum/internal/run"
	"fillmore-labs.com/constenum/internal/testsource"
)

func TestProcessDiagnostics(t *testing.T) {
	t.Parallel()

	const src = `enum B { X }
enum A { Y } // nolint:constenum
const enum C { Z }
enum A { W }
enum B { V }
export enum D { U }
enum E { T }
`

	fset, f := testsource.Parse(t, src)
	registry := run.Track(context.Background(), f)

	var lines []int
	ProcessDiagnostics(context.Background(), astutil.NewCurrentFile(fset, f), registry,
		Options{Ignore: map[string]struct{}{"E": {}}},
		func(d analysis.Diagnostic) {
			if d.Message != Message {
				t.Errorf("Got message %q, want %q", d.Message, Message)
			}

			if len(d.SuggestedFixes) != 0 {
				t.Errorf("Got %d fixes, want none", len(d.SuggestedFixes))
			}

			lines = append(lines, fset.Position(d.Pos).Line)
		})

	// registry order, then occurrence order
	if want := []int{1, 5, 4}; !slices.Equal(lines, want) {
		t.Errorf("Got diagnostics on lines %v, want %v", lines, want)
	}
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, "export declare enum Color { Red }")

	decl, err := testsource.FirstEnum(f)
	if err != nil {
		t.Fatal(err)
	}

	d := Diagnostic(decl, true)

	if got, want := fset.Position(d.Pos).Offset, 0; got != want {
		t.Errorf("Got start %d, want %d", got, want)
	}

	if got, want := fset.Position(d.End).Offset, 25; got != want {
		t.Errorf("Got end %d, want %d", got, want)
	}

	if len(d.SuggestedFixes) != 1 {
		t.Fatalf("Got %d fixes, want 1", len(d.SuggestedFixes))
	}

	edits := d.SuggestedFixes[0].TextEdits
	if len(edits) != 1 {
		t.Fatalf("Got %d edits, want 1", len(edits))
	}

	if got, want := fset.Position(edits[0].Pos).Offset, 15; got != want || edits[0].End != edits[0].Pos {
		t.Errorf("Got edit at %d, want insertion at %d", got, want)
	}

	if got, want := string(edits[0].NewText), "const "; got != want {
		t.Errorf("Got edit text %q, want %q", got, want)
	}
}
