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

func TestUnindent(t *testing.T) {
	testCases := []struct {
		name, in, want string
	}{
		{
			"common leading spaces stripped",
			"  foo\n  bar\n  baz",
			"foo\nbar\nbaz",
		},
		{
			"uneven indent keeps relative indent",
			"  foo\n    bar",
			"foo\n  bar",
		},
		{
			"blank lines ignored when computing common indent",
			"  foo\n\n  bar",
			"foo\n\nbar",
		},
		{
			"no common indent is a no-op",
			"foo\n  bar",
			"foo\n  bar",
		},
		{
			"single line loses its indent",
			"  foo",
			"foo",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Unindent(tc.in); got != tc.want {
				t.Errorf("Unindent(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSingleLine(t *testing.T) {
	testCases := []struct {
		name, in, want string
	}{
		{"simple join", "foo\nbar", "foo bar"},
		{"trailing whitespace before break collapsed", "foo   \nbar", "foo bar"},
		{"leading whitespace after break collapsed", "foo\n   bar", "foo bar"},
		{"crlf", "foo\r\nbar", "foo bar"},
		{"multiple breaks collapse to one space", "foo\n\n\nbar", "foo bar"},
		{"no break is unchanged", "foo bar", "foo bar"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SingleLine(tc.in); got != tc.want {
				t.Errorf("SingleLine(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
