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

package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/constenum/internal/astutil"
	"fillmore-labs.com/constenum/internal/enums"
	"fillmore-labs.com/constenum/tsast"
)

const (
	// Message is the diagnostic message for enums that can be declared const.
	Message = "enum can be declared const"

	// constQualifier is inserted before the enum keyword.
	constQualifier = "const "
)

// Options control which diagnostics are emitted.
type Options struct {
	// SuggestFixes attaches a suggested fix to every diagnostic.
	SuggestFixes bool

	// Ignore holds names of enums that are never reported.
	Ignore map[string]struct{}
}

// ProcessDiagnostics generates and emits diagnostics for enums that can be declared const.
//
// This is the final phase of the analyzer pipeline and must only run after the whole
// file has been tracked. Every eligible occurrence of a not-yet-const enum is reported,
// in registry order and then occurrence order.
func ProcessDiagnostics(ctx context.Context, currentFile astutil.CurrentFile, registry *enums.Registry, opts Options, reportf func(analysis.Diagnostic)) {
	defer trace.StartRegion(ctx, "Report").End()

	for t := range registry.All() {
		if t.IsConst || !t.CanBeConst() {
			continue
		}

		if _, ignored := opts.Ignore[t.Name]; ignored {
			continue
		}

		for _, decl := range t.Occurrences {
			if currentFile.NoLintComment(decl.Pos()) {
				continue
			}

			reportf(Diagnostic(decl, opts.SuggestFixes))
		}
	}
}

// Diagnostic creates the diagnostic for one enum declaration.
//
// The reported range spans from the start of the declaration to the end of its name.
// The suggested fix inserts the const qualifier before the enum keyword, which is
// the declaration start unless a declare modifier precedes it.
func Diagnostic(decl *tsast.EnumDecl, suggestFix bool) analysis.Diagnostic {
	diagnostic := analysis.Diagnostic{
		Pos:     decl.Pos(),
		End:     decl.Name.End(),
		Message: Message,
	}

	if suggestFix {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
			Message: Message,
			TextEdits: []analysis.TextEdit{{
				// "declare const enum" is valid, "const declare enum" is not.
				Pos:     decl.Enum,
				End:     decl.Enum,
				NewText: []byte(constQualifier),
			}},
		}}
	}

	return diagnostic
}
