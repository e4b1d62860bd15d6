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

// Package estree decodes typescript-estree syntax trees into [tsast] files.
//
// typescript-estree is the parser used by typescript-eslint. Its JSON output,
// produced with the range and comment options enabled, can be fed to
// [Decode] together with the original source text:
//
//	f, err := estree.Decode(fset, "colors.ts", src, tree)
//	if err != nil {
//		return err
//	}
//
//	diagnostics := analyzer.Default.Diagnostics(fset, f)
//
// Type-only syntax such as interfaces, type aliases and type annotations is
// kept as opaque nodes, so identifiers in type positions are never reported
// as value usages.
package estree
