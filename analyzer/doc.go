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

// Package analyzer implements the constenum static analysis pass.
//
// # Overview
//
// ConstEnum detects TypeScript enums that can be declared const without
// changing program behavior.
//
// # Example
//
// Before:
//
//	enum Direction {
//	    Up = 1,
//	    Down = Up + 1,
//	}
//
//	move(Direction.Down)
//
// After applying constenum's suggested fix:
//
//	const enum Direction {
//	    Up = 1,
//	    Down = Up + 1,
//	}
//
//	move(Direction.Down)
//
// # Eligibility
//
// An enum is reported when
//
//   - every member value is built from literals and constant members of
//     earlier-declared enums,
//   - it is only accessed as E.m or E["m"], or re-exported, and
//   - none of its declarations is exported.
//
// Declarations of the same name are merged and reported together.
// A "// nolint:constenum" comment on the declaration line suppresses a finding.
//
// # Limitations
//
// A file is analyzed in a single pass. References that appear before an
// enum's first declaration, such as a dynamic lookup in a hoisted function
// declared above it, are not seen:
//
//	function name(k: string) {
//	    return Direction[k]
//	}
//
//	enum Direction { Up, Down }
//
// Here Direction is still reported, and applying the fix breaks name.
// Review such findings before applying fixes.
package analyzer
