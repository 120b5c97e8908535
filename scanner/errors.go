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
	"fmt"

	"github.com/ysthakur/paml/token"
)

// NoEndingQuoteError reports a quoted string whose opening delimiter is
// never matched by a closing run before EOF.
type NoEndingQuoteError struct {
	OpenSpan token.Span
}

func (e *NoEndingQuoteError) Error() string {
	return fmt.Sprintf("no ending quote for string opened at %v", e.OpenSpan)
}
func (e *NoEndingQuoteError) Span() token.Span { return e.OpenSpan }

// NoEscapedCharacterError reports a backslash immediately followed by EOF.
type NoEscapedCharacterError struct {
	BackslashSpan token.Span
}

func (e *NoEscapedCharacterError) Error() string {
	return fmt.Sprintf("no character to escape at %v", e.BackslashSpan)
}
func (e *NoEscapedCharacterError) Span() token.Span { return e.BackslashSpan }

// IncorrectOpeningQuotesError reports an even-length quote run whose
// half is itself even, violating the odd-delimiter discipline.
type IncorrectOpeningQuotesError struct {
	RunSpan token.Span
}

func (e *IncorrectOpeningQuotesError) Error() string {
	return fmt.Sprintf("incorrect number of opening quotes at %v", e.RunSpan)
}
func (e *IncorrectOpeningQuotesError) Span() token.Span { return e.RunSpan }

// MismatchedEndingQuotesError reports a closing quote run longer than
// the opening delimiter it was meant to match.
type MismatchedEndingQuotesError struct {
	OpenSpan token.Span
	EndSpan  token.Span
}

func (e *MismatchedEndingQuotesError) Error() string {
	return fmt.Sprintf("mismatched ending quotes at %v for string opened at %v", e.EndSpan, e.OpenSpan)
}
func (e *MismatchedEndingQuotesError) Span() token.Span { return e.EndSpan }
