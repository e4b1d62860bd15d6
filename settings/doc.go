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

/*
Package settings decodes configuration documents for the [constenum] analyzer.

# Usage

A settings document is YAML or JSON:

	---
	generated: false
	suggest-fixes: true
	ignore:
	  - HttpStatus
	  - LogLevel

Decode it and pass the resulting options to the analyzer:

	s, err := settings.Decode(data)
	if err != nil {
		return err
	}

	a := analyzer.New(s.Options()...)

Settings that are not present keep the analyzer defaults.

[constenum]: https://pkg.go.dev/fillmore-labs.com/constenum/analyzer
*/
package settings
