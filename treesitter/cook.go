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


package treesitter

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// cook returns the value of the raw text of a string literal or template chunk.
// Malformed escapes keep the escaped character.
func cook(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}

	var b strings.Builder

	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			b.WriteByte(raw[i])

			continue
		}

		i++

		switch e := raw[i]; e {
		case 'n':
			b.WriteByte('\n')

		case 't':
			b.WriteByte('\t')

		case 'r':
			b.WriteByte('\r')

		case 'b':
			b.WriteByte('\b')

		case 'f':
			b.WriteByte('\f')

		case 'v':
			b.WriteByte('\v')

		case '0':
			b.WriteByte(0)

		case '\r', '\n': // line continuation
			if e == '\r' && i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}

		case 'x', 'u':
			var (
				r rune
				n int
			)

			if e == 'x' {
				r, n = hex(raw[i+1:], 2)
			} else {
				r, n = unicodeEscape(raw[i+1:])
			}

			if n == 0 {
				r = rune(e)
			}

			b.WriteRune(r)
			i += n

		default:
			r, size := utf8.DecodeRuneInString(raw[i:])
			b.WriteRune(r)
			i += size - 1
		}
	}

	return b.String()
}

// unicodeEscape decodes the digits of \uXXXX or \u{X...} and returns the rune
// and the number of bytes consumed, zero on failure.
func unicodeEscape(s string) (rune, int) {
	if !strings.HasPrefix(s, "{") {
		return hex(s, 4)
	}

	end := strings.IndexByte(s, '}')
	if end < 0 {
		return 0, 0
	}

	v, err := strconv.ParseUint(s[1:end], 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, 0
	}

	return rune(v), end + 1
}

// hex decodes exactly n hexadecimal digits. It consumes nothing on failure.
func hex(s string, n int) (rune, int) {
	if len(s) < n {
		return 0, 0
	}

	v, err := strconv.ParseUint(s[:n], 16, 32)
	if err != nil {
		return 0, 0
	}

	return rune(v), n
}
