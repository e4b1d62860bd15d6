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


package testsource_test

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/constenum/internal/testsource"
	"fillmore-labs.com/constenum/treesitter"
)

func TestEnums(t *testing.T) {
	t.Parallel()

	_, f := Parse(t, "enum A {}\nnamespace N { enum B {} }\nfunction f() { enum C {} }\n")

	var names []string
	for _, d := range Enums(f) {
		names = append(names, d.Name.Name)
	}

	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestFirstEnum(t *testing.T) {
	t.Parallel()

	_, f := Parse(t, "let x = 1;")

	_, err := FirstEnum(f)
	assert.ErrorIs(t, err, ErrNoEnum)
}

func TestParseFileError(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(token.NewFileSet(), "bad.ts", "enum E {")
	require.ErrorIs(t, err, treesitter.ErrSyntax)
}

func TestParseExpr(t *testing.T) {
	t.Parallel()

	x := ParseExpr(t, "E.A")
	assert.Equal(t, 0, int(x.Pos())-1, "positions start at the file base")
}
