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

package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ysthakur/paml/token"
)

type elt struct {
	typ      token.Type
	text     string
	delimLen int
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want []elt
	}{
		{"comma", ",", []elt{{token.Comma, ",", 0}}},
		{"brackets", "[]{}", []elt{
			{token.LSquare, "[", 0},
			{token.RSquare, "]", 0},
			{token.LBrace, "{", 0},
			{token.RBrace, "}", 0},
		}},
		{"block comment delims", "#[#]", []elt{
			{token.MultilineCommentStart, "#[", 0},
			{token.MultilineCommentEnd, "#]", 0},
		}},
		{"line comment start", "# hi", []elt{
			{token.SingleLineCommentStart, "#", 0},
			{token.HorizontalWhitespace, " ", 0},
			{token.BareString, "hi", 0},
		}},
		{"crlf newline", "a\r\nb", []elt{
			{token.BareString, "a", 0},
			{token.Newline, "\r\n", 0},
			{token.BareString, "b", 0},
		}},
		{"lone cr newline", "a\rb", []elt{
			{token.BareString, "a", 0},
			{token.Newline, "\r", 0},
			{token.BareString, "b", 0},
		}},
		{"horizontal whitespace run", "a   \tb", []elt{
			{token.BareString, "a", 0},
			{token.HorizontalWhitespace, "   \t", 0},
			{token.BareString, "b", 0},
		}},
		{"bareword", "foo_bar-baz", []elt{{token.BareString, "foo_bar-baz", 0}}},
		{"simple quoted string", `"abc"`, []elt{{token.QuotedString, `"abc"`, 1}}},
		{"empty quoted string", `""`, []elt{{token.QuotedString, `""`, 1}}},
		{"triple quoted with embedded doubles", `"""he said ""hi"" to me"""`, []elt{
			{token.QuotedString, `"""he said ""hi"" to me"""`, 3},
		}},
		{"raw string", "`hello`", []elt{{token.QuotedString, "`hello`", 1}}},
		{"escaped quote inside string", `"a\"b"`, []elt{{token.QuotedString, `"a\"b"`, 1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.src)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tc.src, err)
			}
			var got []elt
			for _, tok := range toks {
				got = append(got, elt{tok.Type, tok.Span.Slice(tc.src), tok.DelimLen})
			}
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(elt{})); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

func TestTokenizeSpans(t *testing.T) {
	src := "foo [1 2]"
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	for _, tok := range toks {
		if !tok.Span.IsValid() {
			t.Fatalf("invalid span %v for token %v", tok.Span, tok.Type)
		}
		if tok.Span.Start < 0 || tok.Span.End > len(src) {
			t.Fatalf("span %v out of bounds for src of length %d", tok.Span, len(src))
		}
	}
	// Reconstructing the source from the token spans (they are
	// contiguous for this input) must reproduce it exactly.
	var got string
	for _, tok := range toks {
		got += tok.Span.Slice(src)
	}
	if got != src {
		t.Fatalf("span concatenation = %q, want %q", got, src)
	}
}

func TestTokenizeErrors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"unterminated double quote", `"unterminated`},
		{"unterminated raw string", "`unterminated"},
		{"no escaped character", `"abc\`},
		{"incorrect opening quotes", `""""`}, // run of 4: half=2, even -> error
		{"mismatched ending quotes", `"""a"""""`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Tokenize(tc.src); err == nil {
				t.Fatalf("Tokenize(%q) succeeded, want error", tc.src)
			}
		})
	}
}

func TestQuoteRunParity(t *testing.T) {
	// A run of length 6 (even): half is 3 (odd), so this is a valid
	// empty string with delim_len 3.
	toks, err := Tokenize(`""""""`) // 6 quotes, half = 3 (odd) -> ok, empty string, delim_len 3
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].DelimLen != 3 {
		t.Fatalf("got %+v, want single QuotedString with DelimLen 3", toks)
	}
}
