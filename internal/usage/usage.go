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

package usage

import (
	"fillmore-labs.com/constenum/internal/enums"
	"fillmore-labs.com/constenum/tsast"
	"fillmore-labs.com/constenum/tsast/edge"
)

// Validator disqualifies enums that are used in ways a const enum does not support.
type Validator struct {
	Registry *enums.Registry
}

// Check inspects a single identifier found at the given field of parent.
//
// Property access (E.m), literal index access (E["m"]) and re-exports are
// compatible with const enums. Any other reference to a tracked enum
// disqualifies it.
func (v Validator) Check(id *tsast.Ident, parent tsast.Node, k edge.Kind) {
	if Safe(parent, k) {
		return
	}

	v.Registry.Disqualify(id.Name)
}

// Safe reports whether an identifier at the given field of parent is compatible with const enums.
func Safe(parent tsast.Node, k edge.Kind) bool {
	if k.Name() {
		return true // not a reference
	}

	switch k {
	case edge.MemberExpr_X, // E.m
		edge.ExportSpec_Local,  // export { E }
		edge.ExportDefault_X: // export default E
		return true

	case edge.IndexExpr_X: // E["m"]
		ix, ok := parent.(*tsast.IndexExpr)
		if !ok {
			return false
		}

		_, literal := tsast.StringValue(ix.Index)

		return literal

	case edge.Property_Key: // { E: ... }
		p, ok := parent.(*tsast.Property)

		return ok && !p.Computed

	default:
		return false
	}
}
