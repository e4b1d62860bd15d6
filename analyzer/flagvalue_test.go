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
	"strings"
	"testing"

	. "fillmore-labs.com/constenum/analyzer"
	"fillmore-labs.com/constenum/internal/testsource"
)

func TestFlags(t *testing.T) {
	t.Parallel()

	const src = `
enum Color { Red }
enum Shape { Circle }
enum Size { Small }
`

	tests := []struct {
		name  string
		args  []string
		want  int
		fixes bool
	}{
		{
			name:  "Default",
			want:  3,
			fixes: true,
		},
		{
			name: "NoFixes",
			args: []string{"-suggest-fixes=false"},
			want: 3,
		},
		{
			name:  "Ignore",
			args:  []string{"-ignore", "Color, Shape"},
			want:  1,
			fixes: true,
		},
		{
			name:  "IgnoreRepeated",
			args:  []string{"-ignore=Color", "-ignore=Size,"},
			want:  1,
			fixes: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New()
			if err := a.Flags.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			fset, f := testsource.Parse(t, src)
			diagnostics := a.Diagnostics(fset, f)

			if len(diagnostics) != tt.want {
				t.Fatalf("Got %d diagnostics, want %d", len(diagnostics), tt.want)
			}

			for _, d := range diagnostics {
				if got := len(d.SuggestedFixes) > 0; got != tt.fixes {
					t.Errorf("Diagnostic has fixes = %v, want %v", got, tt.fixes)
				}
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	t.Parallel()

	a := New(WithGenerated(true))

	f := a.Flags.Lookup("generated")
	if f == nil {
		t.Fatal("Flag generated not registered")
	}

	if got, want := f.Value.String(), "true"; got != want {
		t.Errorf("Got generated = %s, want %s", got, want)
	}

	if err := a.Flags.Set("generated", "off"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if got, want := f.Value.String(), "false"; got != want {
		t.Errorf("Got generated = %s, want %s", got, want)
	}

	if err := a.Flags.Set("generated", "maybe"); err == nil {
		t.Error("Expected error for invalid boolean")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	a := New()

	const expectedUsage = `
  -suggest-fixes
    	attach suggested fixes to diagnostics (default true)
`

	var out strings.Builder
	a.Flags.SetOutput(&out)
	a.Flags.PrintDefaults()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("PrintDefaults() = %q, want suffix %q", got, want)
	}
}
