// Copyright 2020 CUE Authors
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

package literal

import "testing"

func TestUnquote(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		q        byte
		delimLen int
		want     string
	}{
		{"simple double", `"abc"`, '"', 1, "abc"},
		{"simple single", `'abc'`, '\'', 1, "abc"},
		{"escaped newline", `"a\nb"`, '"', 1, "a\nb"},
		{"escaped quote", `"a\"b"`, '"', 1, `a"b`},
		{"escaped backslash", `"a\\b"`, '"', 1, `a\b`},
		{"unknown escape passes through", `"a\qb"`, '"', 1, "aqb"},
		{"raw string no escapes", "`a\\nb`", '`', 1, `a\nb`},
		{"triple quoted with embedded doubles", `"""he said ""hi"" to me"""`, '"', 3, `he said ""hi"" to me`},
		{"empty string", `""`, '"', 1, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Unquote(tc.raw, tc.q, tc.delimLen)
			if err != nil {
				t.Fatalf("Unquote(%q) error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("Unquote(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"abc", `"abc"`},
		{"a\nb", `"a\nb"`},
		{"a\"b", `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\tb\rc", `"a\tb\rc"`},
		{"", `""`},
		{"☺", `"☺"`},
	}
	for _, tc := range testCases {
		if got := Quote(tc.in); got != tc.out {
			t.Errorf("Quote(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestMaxQuoteRun(t *testing.T) {
	testCases := []struct {
		s    string
		q    byte
		want int
	}{
		{`he said ""hi"" to me`, '"', 2},
		{`no quotes here`, '"', 0},
		{`"""`, '"', 3},
	}
	for _, tc := range testCases {
		if got := MaxQuoteRun(tc.s, tc.q); got != tc.want {
			t.Errorf("MaxQuoteRun(%q, %q) = %d, want %d", tc.s, tc.q, got, tc.want)
		}
	}
}
