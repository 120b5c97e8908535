// Copyright 2025 CUE Authors
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

// Package encode implements the generic encoder: a visitor-driven writer
// that turns a host value into text directly, without going through the
// tokenizer, cst, or ast packages. A value drives the encoder by calling
// its Emit*/Begin*/End* methods in the order its shape requires; the
// encoder is purely a sink and never looks back at what it has already
// written.
package encode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ysthakur/paml/literal"
)

// Marshaler is implemented by values that know how to drive an Encoder
// themselves.
type Marshaler interface {
	EncodePaml(e *Encoder) error
}

// Encoder accumulates text. It has no notion of indentation or pretty
// printing; the output is the one canonical form the format defines for
// machine-written data.
type Encoder struct {
	b strings.Builder
}

// New returns an empty Encoder.
func New() *Encoder { return &Encoder{} }

// String returns everything written to e so far.
func (e *Encoder) String() string { return e.b.String() }

// Encode is a convenience entry point: it drives m against a fresh
// Encoder and returns the resulting text.
func Encode(m Marshaler) (string, error) {
	e := New()
	if err := m.EncodePaml(e); err != nil {
		return "", err
	}
	return e.String(), nil
}

// EmitBool writes a boolean scalar.
func (e *Encoder) EmitBool(v bool) {
	if v {
		e.b.WriteString("true")
	} else {
		e.b.WriteString("false")
	}
}

// EmitInt writes a signed integer scalar.
func (e *Encoder) EmitInt(v int64) {
	e.b.WriteString(strconv.FormatInt(v, 10))
}

// EmitUint writes an unsigned integer scalar.
func (e *Encoder) EmitUint(v uint64) {
	e.b.WriteString(strconv.FormatUint(v, 10))
}

// EmitFloat writes a floating point scalar using the shortest decimal
// representation that round-trips back to v.
func (e *Encoder) EmitFloat(v float64) {
	e.b.WriteString(literal.FormatFloat(v))
}

// EmitString writes s as a double-quoted string with escapes.
func (e *Encoder) EmitString(s string) {
	e.b.WriteString(literal.Quote(s))
}

// EmitChar writes a single rune as a one-character double-quoted string.
func (e *Encoder) EmitChar(r rune) {
	e.EmitString(string(r))
}

// EmitBytes writes b as a sequence of unsigned byte values, per the
// "bytes → sequence of unsigned integers" emission rule.
func (e *Encoder) EmitBytes(b []byte) {
	seq := e.BeginSeq()
	for _, by := range b {
		seq.Elem(func(e *Encoder) error {
			e.EmitUint(uint64(by))
			return nil
		})
	}
	seq.End()
}

// EmitUnit writes the unit value.
func (e *Encoder) EmitUnit() {
	e.b.WriteString("null")
}

// EmitNone writes an absent Option as the tagged unit variant ~None.
func (e *Encoder) EmitNone() {
	e.b.WriteString("~None null")
}

// EmitSome writes a present Option as the tagged newtype variant ~Some,
// calling f to emit the wrapped value inside the tuple body.
func (e *Encoder) EmitSome(f func(*Encoder) error) error {
	e.b.WriteString("~Some [")
	if err := f(e); err != nil {
		return err
	}
	e.b.WriteString(",]")
	return nil
}

// BeginTag writes the `~Name ` prefix used by named structs, struct
// variants, newtype structs, and unit variants to signal the decoder
// which shape follows.
func (e *Encoder) BeginTag(name string) {
	e.b.WriteByte('~')
	e.b.WriteString(name)
	e.b.WriteByte(' ')
}

// SeqEncoder accumulates a `[v0,v1,...,vn,]` sequence; a comma follows
// every element, including the last, so appending another element never
// requires rewriting earlier output.
type SeqEncoder struct {
	e *Encoder
}

// BeginSeq opens a sequence and returns a SeqEncoder to add elements to
// it.
func (e *Encoder) BeginSeq() *SeqEncoder {
	e.b.WriteByte('[')
	return &SeqEncoder{e: e}
}

// Elem emits one element by calling f, followed by its trailing comma.
func (s *SeqEncoder) Elem(f func(*Encoder) error) error {
	if err := f(s.e); err != nil {
		return err
	}
	s.e.b.WriteByte(',')
	return nil
}

// End closes the sequence.
func (s *SeqEncoder) End() {
	s.e.b.WriteByte(']')
}

// MapEncoder accumulates a `{k v,k v,...}` map; a comma follows every
// pair, including the last.
type MapEncoder struct {
	e       *Encoder
	pending bool
}

// BeginMap opens a map and returns a MapEncoder to add entries to it.
func (e *Encoder) BeginMap() *MapEncoder {
	e.b.WriteByte('{')
	return &MapEncoder{e: e}
}

// Key emits one entry's key by calling f, then a single separating
// space; the caller must follow with exactly one Value call.
func (m *MapEncoder) Key(f func(*Encoder) error) error {
	if m.pending {
		return fmt.Errorf("encode: Key called twice without a matching Value")
	}
	if err := f(m.e); err != nil {
		return err
	}
	m.e.b.WriteByte(' ')
	m.pending = true
	return nil
}

// Value emits one entry's value by calling f, then the entry's trailing
// comma.
func (m *MapEncoder) Value(f func(*Encoder) error) error {
	if !m.pending {
		return fmt.Errorf("encode: Value called without a preceding Key")
	}
	if err := f(m.e); err != nil {
		return err
	}
	m.e.b.WriteByte(',')
	m.pending = false
	return nil
}

// End closes the map.
func (m *MapEncoder) End() {
	m.e.b.WriteByte('}')
}
