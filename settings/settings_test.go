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

package settings_test

import (
	"errors"
	"reflect"
	"testing"

	constenum "fillmore-labs.com/constenum/analyzer"
	. "fillmore-labs.com/constenum/settings"
)

const allSettingsJSON = `{
	"generated": true,
	"suggest-fixes": false,
	"ignore": ["Color", "Direction"]
}`

const allSettingsYAML = `
generated: true
suggest-fixes: false
ignore:
  - Color
  - Direction
`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"json", allSettingsJSON, reflect.TypeFor[Settings]().NumField()},
		{"yaml", allSettingsYAML, reflect.TypeFor[Settings]().NumField()},
		{"partial", "generated: false\n", 1},
		{"none", `{}`, 0},
		{"empty", "", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := Decode([]byte(tc.settings))
			if err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), constenum.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestSettingsIgnore(t *testing.T) {
	t.Parallel()

	s, err := Decode([]byte(allSettingsYAML))
	if err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	if got, want := s.Ignore, []string{"Color", "Direction"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Got ignore list %q, want %q", got, want)
	}

	if s.Generated == nil || !*s.Generated {
		t.Errorf("Got generated %v, want true", s.Generated)
	}
}

func TestSettingsInvalid(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
	}{
		{"unknown", "scope: true\n"},
		{"type", "generated: [1]\n"},
		{"syntax", "{"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Decode([]byte(tc.settings)); !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Got error %v, want %v", err, ErrInvalidSettings)
			}
		})
	}
}
