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

package analyzer

import (
	"flag"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/constenum/internal/run"
	"fillmore-labs.com/constenum/tsast"
)

// Public API constants for the constenum analyzer.
const (
	name = "constenum"
	doc  = `constenum detects enums that can be declared const`
	url  = "https://pkg.go.dev/fillmore-labs.com/constenum"
)

// Analyzer describes a configured constenum analysis of TypeScript files.
//
// An Analyzer is safe for concurrent use once its flags have been parsed;
// every run owns its own state.
type Analyzer struct {
	// The Name of the analyzer, used in nolint directives.
	Name string

	// Doc is the documentation for the analyzer.
	Doc string

	// URL holds an optional link to a web page with additional documentation.
	URL string

	// Flags defines any flags accepted by the analyzer.
	Flags flag.FlagSet

	options *run.Options
}

// New creates a new instance of the constenum analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For most uses the
// pre-configured [Default] analyzer is sufficient.
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &Analyzer{
		Name:    name,
		Doc:     doc,
		URL:     url,
		options: r,
	}

	registerFlags(&a.Flags, r)

	return a
}

// Default is a pre-configured *[Analyzer] for detecting enums that can be declared const.
var Default = New()

// Run analyzes a single file and passes every finding to report.
// The file must be registered in fset.
func (a *Analyzer) Run(fset *token.FileSet, file *tsast.File, report func(analysis.Diagnostic)) {
	a.options.Run(fset, file, report)
}

// Diagnostics analyzes a single file and returns its findings.
func (a *Analyzer) Diagnostics(fset *token.FileSet, file *tsast.File) []analysis.Diagnostic {
	var diagnostics []analysis.Diagnostic

	a.Run(fset, file, func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) })

	return diagnostics
}
