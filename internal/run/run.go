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

package run

import (
	"context"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/constenum/internal/astutil"
	"fillmore-labs.com/constenum/internal/config"
	"fillmore-labs.com/constenum/internal/declaration"
	"fillmore-labs.com/constenum/internal/enums"
	"fillmore-labs.com/constenum/internal/report"
	"fillmore-labs.com/constenum/internal/usage"
	"fillmore-labs.com/constenum/tsast"
)

// Run executes the constenum analyzer's pipeline on a single file.
func (r *Options) Run(fset *token.FileSet, file *tsast.File, reportf func(analysis.Diagnostic)) {
	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ConstEnum")
	defer task.End()

	currentFile := astutil.NewCurrentFile(fset, file)
	if !currentFile.Valid() {
		return
	}

	trace.Log(ctx, "file", file.Name)

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		return
	}

	// Skip files with nolint comment
	if currentFile.NoLint() {
		return
	}

	// Stage 1: Track declarations and usages in a single pass
	registry := Track(ctx, file)

	// Stage 2: Report enums that can be declared const
	report.ProcessDiagnostics(ctx, currentFile, registry, report.Options{
		SuggestFixes: r.Behavior.Enabled(config.SuggestFixes),
		Ignore:       r.Ignore,
	}, reportf)
}

// Track walks the tree once, recording enum declarations and disqualifying
// enums that are used in ways incompatible with const enums.
func Track(ctx context.Context, root tsast.Node) *enums.Registry {
	defer trace.StartRegion(ctx, "Track").End()

	registry := enums.NewRegistry()
	declarations := declaration.New(registry)
	usages := usage.Validator{Registry: registry}

	tsast.Inspect(root, func(c tsast.Cursor) bool {
		switch n := c.Node.(type) {
		case *tsast.Ident:
			usages.Check(n, c.Parent, c.Edge)

			return false

		case *tsast.EnumDecl:
			// Members are consumed by the processor
			declarations.Process(n)

			return false

		default:
			return true
		}
	})

	return registry
}
