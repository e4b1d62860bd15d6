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

package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/constenum/tsast"
)

// constenum is the name of the linter.
const constenum = "constenum"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *tsast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and a *[tsast.File].
func NewCurrentFile(fset *token.FileSet, file *tsast.File) CurrentFile {
	if fset == nil || file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{file, handle, IsGenerated(file)}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Offset returns the byte offset of pos in the file.
func (c CurrentFile) Offset(pos token.Pos) int {
	return c.handle.Offset(pos)
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLint checks whether the file opts out of the analysis with a
// //nolint:constenum comment before its first statement.
func (c CurrentFile) NoLint() bool {
	if c.file == nil {
		return false
	}

	for _, comment := range leadingComments(c.file) {
		if CommentHasNoLint(comment) {
			return true
		}
	}

	return false
}

// NoLintComment checks if a line is followed by a //nolint:constenum comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the declaration
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *tsast.Comment, p token.Pos) int { return int(c.Pos() - p) })

	for _, comment := range c.file.Comments[i:] {
		if c.line(comment.Pos()) != c.line(pos) {
			return false // not on this line
		}

		if CommentHasNoLint(comment) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:constenum` directive.
func CommentHasNoLint(comment *tsast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == constenum || l == "all" {
			return true
		}
	}

	return false
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$|@generated\b`)

// IsGenerated reports whether the file was generated by a program.
// Like [go/ast.IsGenerated], it looks for a "// Code generated ... DO NOT EDIT."
// line before the first statement, and also accepts an @generated tag.
func IsGenerated(file *tsast.File) bool {
	for _, comment := range leadingComments(file) {
		for line := range strings.Lines(comment.Text) {
			if generatedPattern.MatchString(strings.TrimRight(line, "\r\n")) {
				return true
			}
		}
	}

	return false
}

// leadingComments returns the comments before the first statement.
func leadingComments(file *tsast.File) []*tsast.Comment {
	if len(file.Stmts) == 0 {
		return file.Comments
	}

	first := file.Stmts[0].Pos()

	i, _ := slices.BinarySearchFunc(file.Comments, first,
		func(c *tsast.Comment, p token.Pos) int { return int(c.Pos() - p) })

	return file.Comments[:i]
}
