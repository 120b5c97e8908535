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

// Package errors defines shared error types for the tokenizer, parser,
// and validation passes. Every error here carries at least a byte span
// pinpointing the cause, per the error handling policy: tokenize and
// parse errors abort their pass, validation errors are accumulated.
package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ysthakur/paml/token"
)

// Error is the common interface for positioned errors produced by the
// tokenizer, parser, and validation pass.
type Error interface {
	error
	Span() token.Span
}

// posError is the concrete Error implementation used throughout the
// core pipeline.
type posError struct {
	span token.Span
	msg  string
}

func (e *posError) Error() string    { return e.msg }
func (e *posError) Span() token.Span { return e.span }

// New creates an Error with the given span and message.
func New(span token.Span, format string, args ...interface{}) Error {
	return &posError{span: span, msg: fmt.Sprintf(format, args...)}
}

// List is an accumulator of Errors, used for the non-fatal validation
// errors collected during CST construction (DuplicateKey,
// UnrecognizedStringFormatType). Its zero value is ready to use.
type List []Error

// Add appends err to the list.
func (p *List) Add(err Error) { *p = append(*p, err) }

// Addf appends a new positioned error built from format and args.
func (p *List) Addf(span token.Span, format string, args ...interface{}) {
	p.Add(New(span, format, args...))
}

// Err returns the list as an error, or nil if the list is empty.
func (p List) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

// Sort orders the list by span start, then span end.
func (p List) Sort() {
	sort.SliceStable(p, func(i, j int) bool {
		a, b := p[i].Span(), p[j].Span()
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})
}

// Error implements the error interface, rendering every message in the
// list, one per line.
func (p List) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	var b strings.Builder
	for i, e := range p {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
