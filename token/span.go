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

// Package token defines byte-span source positions shared by the
// scanner, parser, and error types.
package token

import "fmt"

// Span is a half-open byte range [Start, End) into a source text. It is
// the only position representation the core pipeline needs: there is no
// file set and no line/column table, since every consumer either has the
// source text at hand (to compute line/column lazily) or only cares about
// relative order and length.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// IsValid reports whether the span is well formed.
func (s Span) IsValid() bool { return s.Start >= 0 && s.End >= s.Start }

// Slice returns the substring of src covered by s.
func (s Span) Slice(src string) string { return src[s.Start:s.End] }

// Cover returns the smallest span that contains both s and o.
func (s Span) Cover(o Span) Span {
	start, end := s.Start, s.End
	if o.Start < start {
		start = o.Start
	}
	if o.End > end {
		end = o.End
	}
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// LineCol computes the 1-based line and column of offset within src,
// counting columns in bytes. It is used only for human-readable error
// messages; the core pipeline itself never needs it.
func LineCol(src string, offset int) (line, col int) {
	line = 1
	lineStart := 0
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}
