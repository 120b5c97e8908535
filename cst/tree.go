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

// Package cst implements the lossless parser: a token-driven parser that
// produces a concrete syntax tree preserving every byte of source,
// including trivia, annotated with byte spans, plus a list of semantic
// validation errors that do not prevent tree construction.
package cst

import (
	"github.com/ysthakur/paml/literal"
	"github.com/ysthakur/paml/token"
)

// Kind discriminates the variants of a ParseTree node.
type Kind int

const (
	KindBool Kind = iota
	KindNum
	KindBareString
	KindQuotedString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindNum:
		return "Num"
	case KindBareString:
		return "BareString"
	case KindQuotedString:
		return "QuotedString"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	default:
		return "Kind(?)"
	}
}

// Node is any member of the ParseTree. Every node carries a byte span
// into the source text the parse result owns.
type Node interface {
	Kind() Kind
	Span() token.Span
}

// Bool is a `true`/`false` bareword lowered to its boolean value.
type Bool struct {
	Val bool
	Sp  token.Span
}

func (n *Bool) Kind() Kind      { return KindBool }
func (n *Bool) Span() token.Span { return n.Sp }

// Num is a bareword recognized by the decimal number grammar, kept in
// its decomposed form so the printer can reproduce its digits exactly.
type Num struct {
	Val literal.Num
	Sp  token.Span
}

func (n *Num) Kind() Kind      { return KindNum }
func (n *Num) Span() token.Span { return n.Sp }

// BareString is an unquoted word that is neither a bool nor a number.
type BareString struct {
	Val string
	Sp  token.Span
}

func (n *BareString) Kind() Kind      { return KindBareString }
func (n *BareString) Span() token.Span { return n.Sp }

// StringFormat identifies the normalization tag attached to a quoted
// string by an immediately preceding bareword, if any.
type StringFormat int

const (
	// FormatNone means the string had no bareword prefix.
	FormatNone StringFormat = iota
	// FormatUnindent is the "unindent" tag.
	FormatUnindent
	// FormatSingleLine is the "singleLine" tag.
	FormatSingleLine
	// FormatUnknown is an unrecognized tag; the payload is kept
	// verbatim and an UnrecognizedStringFormatType validation error
	// is recorded.
	FormatUnknown
)

// QuotedString is a quoted string literal, already unescaped, with its
// delimiter length and optional format tag preserved so the printer and
// encoder can make informed choices (the printer always re-quotes
// canonically, but callers inspecting the CST directly can see the
// original form).
type QuotedString struct {
	Val        string
	Format     StringFormat
	FormatName string // the raw bareword text, even when Format is FormatUnknown
	DelimLen   int
	Sp         token.Span
}

func (n *QuotedString) Kind() Kind      { return KindQuotedString }
func (n *QuotedString) Span() token.Span { return n.Sp }

// List is a `[ ... ]` container.
type List struct {
	OpenerSpan  token.Span
	AfterOpener Trivia
	Items       []ListItem
	CloserSpan  token.Span
}

func (n *List) Kind() Kind { return KindList }
func (n *List) Span() token.Span {
	return token.Span{Start: n.OpenerSpan.Start, End: n.CloserSpan.End}
}

// ListItem is one element of a List, with the trivia that follows it
// and the separator (if any) that terminated it.
type ListItem struct {
	Item      Node
	AfterItem Trivia
	Sep       *Separator
}

// Map is a `{ ... }` container.
type Map struct {
	OpenerSpan  token.Span
	AfterOpener Trivia
	Items       []MapItem
	CloserSpan  token.Span
}

func (n *Map) Kind() Kind { return KindMap }
func (n *Map) Span() token.Span {
	return token.Span{Start: n.OpenerSpan.Start, End: n.CloserSpan.End}
}

// MapItem is one key/value pair of a Map.
type MapItem struct {
	Key      Node
	AfterKey Trivia
	Val      Node
	AfterVal Trivia
	Sep      *Separator
}

// Separator is the comma or newline token that ends a list or map item.
type Separator struct {
	SepSpan token.Span
	After   Trivia
}
