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

package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/constenum/internal/config"
	"fillmore-labs.com/constenum/internal/run"
)

// Option configures specific behavior of a [New] constenum analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSuggestFixes is an [Option] to configure whether diagnostics carry a suggested fix.
func WithSuggestFixes(suggestFixes bool) Option { return suggestFixesOption{suggestFixes: suggestFixes} }

type suggestFixesOption struct{ suggestFixes bool }

func (o suggestFixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.suggestFixes)
}

func (o suggestFixesOption) LogAttr() slog.Attr {
	return slog.Bool("suggest-fixes", o.suggestFixes)
}

// WithIgnore is an [Option] to exclude enums from being reported by name.
// Ignored enums are still analyzed, so references to them are resolved as usual.
func WithIgnore(names ...string) Option { return ignoreOption{names: slices.Clone(names)} }

type ignoreOption struct{ names []string }

func (o ignoreOption) apply(r *run.Options) {
	r.AddIgnore(o.names...)
}

func (o ignoreOption) LogAttr() slog.Attr {
	return slog.Any("ignore", o.names)
}
