// Copyright 2018 The CUE Authors
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

package printer

import (
	"testing"

	"github.com/ysthakur/paml/ast"
	"github.com/ysthakur/paml/cst"
)

func print(t *testing.T, src string) string {
	t.Helper()
	res, err := cst.Parse(src)
	if err != nil {
		t.Fatalf("cst.Parse(%q) error: %v", src, err)
	}
	v, err := ast.Lower(res)
	if err != nil {
		t.Fatalf("ast.Lower(%q) error: %v", src, err)
	}
	return Print(v)
}

func TestPrintCanonicalizes(t *testing.T) {
	testCases := []struct {
		name, src, want string
	}{
		{"drops extra whitespace", "  [ 1 ,  2 ]  ", "[1, 2]"},
		{"newline separators become commas", "[\n  1\n  2\n]", "[1, 2]"},
		{"drops trailing comma", "[1, 2,]", "[1, 2]"},
		{"strips comments", "[1, # c\n 2]", "[1, 2]"},
		{"map uses space between key and value", "{a 1, b 2}", `{"a" 1, "b" 2}`},
		{"requotes single-quoted strings as double", "['hi']", `["hi"]`},
		{"requotes raw strings as double", "[`hi`]", `["hi"]`},
		{"bareword becomes quoted string", "[hello]", `["hello"]`},
		{"bool unchanged", "[true, false]", "[true, false]"},
		{"number literal preserved", "[1.50]", "[1.50]"},
		{"nested structures", "{a [1, {b 2}]}", `{"a" [1, {"b" 2}]}`},
		{"empty list", "[]", "[]"},
		{"empty map", "{}", "{}"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := print(t, tc.src); got != tc.want {
				t.Errorf("Print(%q) = %q, want %q", tc.src, got, tc.want)
			}
		})
	}
}

func TestPrintEscapesStrings(t *testing.T) {
	v := &ast.Str{Val: `a"b`}
	got := Print(v)
	want := `"a\"b"`
	if got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}

func TestPrintIsIdempotent(t *testing.T) {
	src := `{a 1, b [2, 3], c "x"}`
	once := print(t, src)
	twice := print(t, once)
	if once != twice {
		t.Errorf("Print is not idempotent: %q != %q", once, twice)
	}
}
