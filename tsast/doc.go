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

// Package tsast declares the types used to represent TypeScript syntax trees
// for the constenum analyzer.
//
// The model covers the declarations and expressions the analysis inspects in
// detail. Everything else is represented by [Unknown] nodes, which keep their
// children so that a traversal still sees every identifier in the file.
//
// Positions are [go/token.Pos] values relative to a [go/token.File] registered
// in a [go/token.FileSet], so offsets and line information come from the
// standard position machinery.
package tsast
