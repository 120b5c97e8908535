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

// Package ast implements the lossy view of a parsed document: trivia,
// delimiter lengths, and string-format metadata are discarded, leaving
// a plain value tree suitable for the printer and for direct
// inspection.
package ast

import (
	"fmt"

	"github.com/ysthakur/paml/cst"
	"github.com/ysthakur/paml/literal"
	"github.com/ysthakur/paml/token"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindBool Kind = iota
	KindNum
	KindStr
	KindList
	KindMap
)

// Value is any node of the lossy AST.
type Value interface {
	Kind() Kind
	Span() token.Span
}

type Bool struct {
	Val bool
	Sp  token.Span
}

func (v *Bool) Kind() Kind      { return KindBool }
func (v *Bool) Span() token.Span { return v.Sp }

type Num struct {
	Val literal.Num
	Sp  token.Span
}

func (v *Num) Kind() Kind      { return KindNum }
func (v *Num) Span() token.Span { return v.Sp }

type Str struct {
	Val string
	Sp  token.Span
}

func (v *Str) Kind() Kind      { return KindStr }
func (v *Str) Span() token.Span { return v.Sp }

type List struct {
	Items []Value
	Sp    token.Span
}

func (v *List) Kind() Kind      { return KindList }
func (v *List) Span() token.Span { return v.Sp }

// Pair is one key/value entry of a Map, kept in source order: a Map is
// an ordered sequence of pairs, not a Go map, since duplicate keys are
// a validation error rather than something to silently merge.
type Pair struct {
	Key Value
	Val Value
}

type Map struct {
	Pairs []Pair
	Sp    token.Span
}

func (v *Map) Kind() Kind      { return KindMap }
func (v *Map) Span() token.Span { return v.Sp }

// ErrHasValidationErrors is returned by Lower when the parse result
// still carries validation errors: lowering to the AST is only allowed
// once validation_errors is empty.
type ErrHasValidationErrors struct {
	Errors []cst.ValidationError
}

func (e *ErrHasValidationErrors) Error() string {
	return fmt.Sprintf("cannot lower to AST: %d validation error(s)", len(e.Errors))
}

// Lower converts a lossless parse Result into the lossy AST, discarding
// trivia, delimiter lengths, and string-format metadata (the format
// transform has already been applied to the CST's string value). It
// fails if the result carries any validation errors.
func Lower(r *cst.Result) (Value, error) {
	if len(r.ValidationErrors) > 0 {
		return nil, &ErrHasValidationErrors{Errors: r.ValidationErrors}
	}
	return lower(r.Tree), nil
}

func lower(n cst.Node) Value {
	switch v := n.(type) {
	case *cst.Bool:
		return &Bool{Val: v.Val, Sp: v.Sp}
	case *cst.Num:
		return &Num{Val: v.Val, Sp: v.Sp}
	case *cst.BareString:
		return &Str{Val: v.Val, Sp: v.Sp}
	case *cst.QuotedString:
		return &Str{Val: v.Val, Sp: v.Sp}
	case *cst.List:
		items := make([]Value, len(v.Items))
		for i, it := range v.Items {
			items[i] = lower(it.Item)
		}
		return &List{Items: items, Sp: v.Span()}
	case *cst.Map:
		pairs := make([]Pair, len(v.Items))
		for i, it := range v.Items {
			pairs[i] = Pair{Key: lower(it.Key), Val: lower(it.Val)}
		}
		return &Map{Pairs: pairs, Sp: v.Span()}
	default:
		panic(fmt.Sprintf("ast: unhandled cst node type %T", n))
	}
}
