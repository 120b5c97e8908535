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

import (
	"fmt"

	"github.com/ysthakur/paml/token"
)

// ParseError is returned by Parse when a document cannot be turned into
// a ParseTree at all. Unlike ValidationErrors, a ParseError aborts tree
// construction.
type ParseError struct {
	Msg  string
	Sp   token.Span
	Wrap error // non-nil for a wrapped TokenizeError
}

func (e *ParseError) Error() string    { return e.Msg }
func (e *ParseError) Span() token.Span { return e.Sp }
func (e *ParseError) Unwrap() error    { return e.Wrap }

func errEmptyFile() *ParseError {
	return &ParseError{Msg: "empty file: no expression found"}
}

func errExpectedValue(sp token.Span) *ParseError {
	return &ParseError{Msg: "expected a value", Sp: sp}
}

func errUnexpectedEOF(sp token.Span) *ParseError {
	return &ParseError{Msg: "unexpected end of file", Sp: sp}
}

func errUnexpectedToken(sp token.Span, desc string) *ParseError {
	return &ParseError{Msg: fmt.Sprintf("unexpected token: %s", desc), Sp: sp}
}

func errUnmatchedStartDelimiter(expected string, causeSpan token.Span) *ParseError {
	return &ParseError{
		Msg: fmt.Sprintf("unmatched start delimiter, expected %q", expected),
		Sp:  causeSpan,
	}
}

func errUnmatchedEndDelimiter(ending string, sp token.Span) *ParseError {
	return &ParseError{
		Msg: fmt.Sprintf("unmatched end delimiter %q", ending),
		Sp:  sp,
	}
}

func errTokenize(inner error) *ParseError {
	sp := token.Span{}
	if spanner, ok := inner.(interface{ Span() token.Span }); ok {
		sp = spanner.Span()
	}
	return &ParseError{Msg: inner.Error(), Sp: sp, Wrap: inner}
}

// ValidationError is a non-fatal finding collected during CST
// construction: it does not prevent the tree from being built, but it
// does prevent lowering to the AST.
type ValidationError interface {
	error
	Span() token.Span
}

// DuplicateKey reports that a map literal repeats a key.
type DuplicateKey struct {
	Key      string
	OrigSpan token.Span
	DupeSpan token.Span
}

func (e *DuplicateKey) Error() string {
	return fmt.Sprintf("duplicate key %q (first used at %v)", e.Key, e.OrigSpan)
}
func (e *DuplicateKey) Span() token.Span { return e.DupeSpan }

// UnrecognizedStringFormatType reports a bareword string-format prefix
// that is not one of the recognized tags (unindent, singleLine).
type UnrecognizedStringFormatType struct {
	Tag string
	Sp  token.Span
}

func (e *UnrecognizedStringFormatType) Error() string {
	return fmt.Sprintf("unrecognized string format type %q", e.Tag)
}
func (e *UnrecognizedStringFormatType) Span() token.Span { return e.Sp }
