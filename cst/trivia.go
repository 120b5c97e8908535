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

package cst

import "github.com/ysthakur/paml/token"

// TriviaKind classifies one contiguous piece of trivia.
type TriviaKind int

const (
	HorizontalWhitespace TriviaKind = iota
	Newline
	SingleLineComment
	MultilineComment
)

func (k TriviaKind) String() string {
	switch k {
	case HorizontalWhitespace:
		return "HorizontalWhitespace"
	case Newline:
		return "Newline"
	case SingleLineComment:
		return "SingleLineComment"
	case MultilineComment:
		return "MultilineComment"
	default:
		return "TriviaKind(?)"
	}
}

// TriviaPart is one contiguous run of a single trivia kind.
type TriviaPart struct {
	Span token.Span
	Kind TriviaKind
}

// Trivia is an ordered, contiguous sequence of TriviaParts. Concatenating
// the spans of a Trivia value and the non-trivia spans around it, in
// order, reproduces the exact source text that trivia covers: this is
// the lossless property applied to whitespace and comments.
type Trivia struct {
	Parts []TriviaPart
}

// Span returns the span covering every part, or a zero-length span at
// off if Trivia is empty.
func (t Trivia) Span(off int) token.Span {
	if len(t.Parts) == 0 {
		return token.Span{Start: off, End: off}
	}
	return token.Span{Start: t.Parts[0].Span.Start, End: t.Parts[len(t.Parts)-1].Span.End}
}

// Empty reports whether the trivia has no parts.
func (t Trivia) Empty() bool { return len(t.Parts) == 0 }
