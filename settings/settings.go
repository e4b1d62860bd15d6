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

package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	constenum "fillmore-labs.com/constenum/analyzer"
)

// ErrInvalidSettings is returned when a settings document can't be decoded.
var ErrInvalidSettings = errors.New("invalid constenum settings")

// Settings represents the configuration options for an instance of the analyzer.
type Settings struct {
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero" yaml:"generated,omitempty"`
	// SuggestFixes attaches suggested fixes to diagnostics.
	SuggestFixes *bool `json:"suggest-fixes,omitzero" yaml:"suggest-fixes,omitempty"`
	// Ignore lists enum names that are never reported.
	Ignore []string `json:"ignore,omitzero" yaml:"ignore,omitempty"`
}

// Decode reads [Settings] from a YAML or JSON document.
// Unknown keys are rejected; an empty document yields empty settings.
func Decode(data []byte) (Settings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return s, nil
}

// Options converts [Settings] into a list of [constenum.Option] for the constenum analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []constenum.Option {
	var opts []constenum.Option

	opts = appendOption(opts, s.Generated, constenum.WithGenerated)
	opts = appendOption(opts, s.SuggestFixes, constenum.WithSuggestFixes)

	if len(s.Ignore) > 0 {
		opts = append(opts, constenum.WithIgnore(s.Ignore...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [constenum.Option] list.
func appendOption[T any](opts []constenum.Option, value *T, constructor func(T) constenum.Option) []constenum.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
