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


// Package treesitter parses TypeScript source text into a [tsast.File] using the
// tree-sitter TypeScript grammar.
//
// Type annotations, type declarations and imports become opaque
// [tsast.Unknown] nodes, so names in type positions are never value
// references.
//
// Usage:
//
//	fset := token.NewFileSet()
//
//	f, err := treesitter.Parse(ctx, fset, "color.ts", src)
//	if err != nil {
//		return err
//	}
//
//	diagnostics := analyzer.Default.Diagnostics(fset, f)
package treesitter
