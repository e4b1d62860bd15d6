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

package config_test

import (
	"testing"

	. "fillmore-labs.com/constenum/internal/config"
)

func TestBehavior(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()

	if b.Enabled(IncludeGenerated) {
		t.Error("Expected generated files to be skipped by default")
	}

	if !b.Enabled(SuggestFixes) {
		t.Error("Expected fixes to be suggested by default")
	}

	b.Set(IncludeGenerated, true)
	b.Set(SuggestFixes, false)

	if !b.Enabled(IncludeGenerated) || b.Enabled(SuggestFixes) {
		t.Errorf("Got generated=%v, fixes=%v after toggling", b.Enabled(IncludeGenerated), b.Enabled(SuggestFixes))
	}
}

func TestNewBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(IncludeGenerated, SuggestFixes)

	for _, flag := range []Config{IncludeGenerated, SuggestFixes} {
		if !b.Enabled(flag) {
			t.Errorf("Flag %d not enabled", flag)
		}
	}

	var zero Behavior
	if zero.Enabled(IncludeGenerated | SuggestFixes) {
		t.Error("Expected zero value to have no flags enabled")
	}
}
