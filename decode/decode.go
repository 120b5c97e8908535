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

// Package decode implements the generic decoder: a character-stream
// deserializer that reads directly off the source text, independent of
// the tokenizer, cst, and ast packages. A target drives the decoder by
// asking it to decode one shape at a time (bool, string, seq, map, a
// tagged variant...); the decoder advances its cursor lazily and never
// builds an intermediate tree.
package decode

import (
	"fmt"
	"strconv"
	"strings"
)

// Unmarshaler is implemented by values that know how to consume a
// Decoder themselves.
type Unmarshaler interface {
	DecodePaml(d *Decoder) error
}

// Decode is a convenience entry point: it decodes one value with u from
// src and requires that nothing but trivia follows it.
func Decode(src string, u Unmarshaler) error {
	d := New(src)
	if err := u.DecodePaml(d); err != nil {
		return err
	}
	return d.Finish()
}

// EOFError is returned when a value was expected but the input was
// exhausted.
type EOFError struct{}

func (EOFError) Error() string { return "paml: unexpected end of input" }

// TrailingCharactersError is returned by Finish when non-trivia text
// remains after the value it decoded.
type TrailingCharactersError struct {
	Rest string
}

func (e *TrailingCharactersError) Error() string {
	rest := e.Rest
	if len(rest) > 40 {
		rest = rest[:40] + "..."
	}
	return fmt.Sprintf("paml: trailing characters: %q", rest)
}

// ExpectedTypeError is returned when a typed dispatch (newtype_struct,
// enum, tuple) did not find the leading `~` or structural character it
// requires.
type ExpectedTypeError struct {
	Want string
	Pos  int
}

func (e *ExpectedTypeError) Error() string {
	return fmt.Sprintf("paml: expected %s at offset %d", e.Want, e.Pos)
}

// MessageError wraps a caller-supplied contextual failure, e.g. from a
// custom Unmarshaler that rejects an otherwise well-formed value.
type MessageError struct {
	Msg string
}

func (e *MessageError) Error() string { return e.Msg }

// Decoder is a cursor into source text.
type Decoder struct {
	src string
	pos int
}

// New returns a Decoder positioned at the start of src.
func New(src string) *Decoder { return &Decoder{src: src} }

// Finish skips trailing trivia and fails if anything but trivia remains.
func (d *Decoder) Finish() error {
	if err := d.skipTrivia(); err != nil {
		return err
	}
	if d.pos < len(d.src) {
		return &TrailingCharactersError{Rest: d.src[d.pos:]}
	}
	return nil
}

func isWordBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '{', '}', '[', ']', ',':
		return true
	}
	return false
}

// skipTrivia consumes whitespace, `#`-to-end-of-line comments, and
// (possibly nested) `#[...#]` block comments.
func (d *Decoder) skipTrivia() error {
	for d.pos < len(d.src) {
		c := d.src[d.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			d.pos++
		case c == '#' && d.peekAt(d.pos+1) == '[':
			if err := d.skipBlockComment(); err != nil {
				return err
			}
		case c == '#':
			for d.pos < len(d.src) && d.src[d.pos] != '\n' {
				d.pos++
			}
		default:
			return nil
		}
	}
	return nil
}

func (d *Decoder) peekAt(i int) byte {
	if i < 0 || i >= len(d.src) {
		return 0
	}
	return d.src[i]
}

func (d *Decoder) skipBlockComment() error {
	depth := 0
	for d.pos < len(d.src) {
		if d.src[d.pos] == '#' && d.peekAt(d.pos+1) == '[' {
			depth++
			d.pos += 2
			continue
		}
		if d.src[d.pos] == '#' && d.peekAt(d.pos+1) == ']' {
			depth--
			d.pos += 2
			if depth == 0 {
				return nil
			}
			continue
		}
		d.pos++
	}
	return EOFError{}
}

// lexeme returns the bareword starting at d.pos, stopping before the
// next word boundary, without consuming it.
func (d *Decoder) lexeme() string {
	start := d.pos
	i := start
	for i < len(d.src) && !isWordBoundary(d.src[i]) {
		i++
	}
	return d.src[start:i]
}

// AnyVisitor receives the event chosen by DecodeAny's dispatch.
type AnyVisitor interface {
	VisitBool(bool) error
	VisitUnit() error
	VisitInt64(int64) error
	VisitString(string) error
	VisitSeq(*SeqDecoder) error
	VisitMap(*MapDecoder) error
}

var numPattern = func(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// DecodeAny performs the untyped dispatch: trims trivia, then routes to
// the visitor method matching the next structural cue, in the order
// seq, map, bool/unit, integer, string.
func (d *Decoder) DecodeAny(v AnyVisitor) error {
	if err := d.skipTrivia(); err != nil {
		return err
	}
	if d.pos >= len(d.src) {
		return EOFError{}
	}
	switch d.src[d.pos] {
	case '[':
		sd := d.BeginSeq()
		return v.VisitSeq(sd)
	case '{':
		md := d.BeginMap()
		return v.VisitMap(md)
	}
	word := d.lexeme()
	switch word {
	case "true":
		d.pos += len(word)
		return v.VisitBool(true)
	case "false":
		d.pos += len(word)
		return v.VisitBool(false)
	case "null":
		d.pos += len(word)
		return v.VisitUnit()
	}
	if word != "" && numPattern(word) {
		i, err := strconv.ParseInt(word, 10, 64)
		if err == nil {
			d.pos += len(word)
			return v.VisitInt64(i)
		}
	}
	s, err := d.DecodeString()
	if err != nil {
		return err
	}
	return v.VisitString(s)
}

// DecodeBool decodes exactly a `true` or `false` bareword.
func (d *Decoder) DecodeBool() (bool, error) {
	if err := d.skipTrivia(); err != nil {
		return false, err
	}
	word := d.lexeme()
	switch word {
	case "true":
		d.pos += len(word)
		return true, nil
	case "false":
		d.pos += len(word)
		return false, nil
	}
	return false, &MessageError{Msg: fmt.Sprintf("paml: expected bool, got %q", word)}
}

// DecodeUnit decodes exactly a `null` bareword.
func (d *Decoder) DecodeUnit() error {
	if err := d.skipTrivia(); err != nil {
		return err
	}
	word := d.lexeme()
	if word != "null" {
		return &MessageError{Msg: fmt.Sprintf("paml: expected null, got %q", word)}
	}
	d.pos += len(word)
	return nil
}

// DecodeInt64 decodes a signed integer bareword.
func (d *Decoder) DecodeInt64() (int64, error) {
	if err := d.skipTrivia(); err != nil {
		return 0, err
	}
	word := d.lexeme()
	if !numPattern(word) {
		return 0, &MessageError{Msg: fmt.Sprintf("paml: expected integer, got %q", word)}
	}
	i, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return 0, &MessageError{Msg: err.Error()}
	}
	d.pos += len(word)
	return i, nil
}

// DecodeUint64 decodes an unsigned integer bareword.
func (d *Decoder) DecodeUint64() (uint64, error) {
	if err := d.skipTrivia(); err != nil {
		return 0, err
	}
	word := d.lexeme()
	u, err := strconv.ParseUint(word, 10, 64)
	if err != nil {
		return 0, &MessageError{Msg: fmt.Sprintf("paml: expected unsigned integer, got %q", word)}
	}
	d.pos += len(word)
	return u, nil
}

// DecodeFloat64 decodes a floating point bareword.
func (d *Decoder) DecodeFloat64() (float64, error) {
	if err := d.skipTrivia(); err != nil {
		return 0, err
	}
	word := d.lexeme()
	f, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return 0, &MessageError{Msg: fmt.Sprintf("paml: expected number, got %q", word)}
	}
	d.pos += len(word)
	return f, nil
}

// DecodeString parses a string using the decoder's own rules, which are
// independent of the tokenizer's variable-length-delimiter quoting:
// `"`/`'` run to the matching quote with `\`-escapes, `` ` `` runs to
// end of line, and a bareword runs to the next structural boundary.
func (d *Decoder) DecodeString() (string, error) {
	if err := d.skipTrivia(); err != nil {
		return "", err
	}
	if d.pos >= len(d.src) {
		return "", EOFError{}
	}
	switch d.src[d.pos] {
	case '"', '\'':
		return d.decodeQuoted(d.src[d.pos])
	case '`':
		return d.decodeBacktick()
	default:
		word := d.lexeme()
		if word == "" {
			return "", &MessageError{Msg: "paml: expected string"}
		}
		d.pos += len(word)
		return word, nil
	}
}

func (d *Decoder) decodeQuoted(q byte) (string, error) {
	start := d.pos
	d.pos++ // opener
	var b strings.Builder
	for {
		if d.pos >= len(d.src) {
			d.pos = start
			return "", EOFError{}
		}
		c := d.src[d.pos]
		switch c {
		case q:
			d.pos++
			return b.String(), nil
		case '\\':
			if d.pos+1 >= len(d.src) {
				return "", EOFError{}
			}
			esc := d.src[d.pos+1]
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case '\'':
				b.WriteByte('\'')
			default:
				b.WriteByte(esc)
			}
			d.pos += 2
		default:
			b.WriteByte(c)
			d.pos++
		}
	}
}

func (d *Decoder) decodeBacktick() (string, error) {
	start := d.pos
	d.pos++ // opener
	contentStart := d.pos
	for d.pos < len(d.src) && d.src[d.pos] != '\n' {
		d.pos++
	}
	if d.pos == contentStart {
		d.pos = start
		return "", &MessageError{Msg: "paml: empty raw string payload"}
	}
	return d.src[contentStart:d.pos], nil
}

// consumeTag consumes a leading `~Identifier ` type tag, required by
// newtype_struct, enum, and tuple dispatch, and returns the identifier.
func (d *Decoder) consumeTag() (string, error) {
	if err := d.skipTrivia(); err != nil {
		return "", err
	}
	if d.pos >= len(d.src) || d.src[d.pos] != '~' {
		return "", &ExpectedTypeError{Want: "~", Pos: d.pos}
	}
	d.pos++
	name := d.lexeme()
	if name == "" {
		return "", &MessageError{Msg: "paml: expected identifier after '~'"}
	}
	d.pos += len(name)
	return name, nil
}

// DecodeTagged consumes a `~Name` prefix and returns Name, for
// newtype_struct/struct/enum targets that require one.
func (d *Decoder) DecodeTagged() (string, error) {
	return d.consumeTag()
}

// DecodeIdentifier decodes a bareword identifier; it is a thin alias for
// DecodeString used where the caller's intent is a tag or enum variant
// name rather than general string data.
func (d *Decoder) DecodeIdentifier() (string, error) {
	return d.DecodeString()
}

// SeqDecoder drives element-by-element decoding of a `[...]` sequence.
type SeqDecoder struct {
	d      *Decoder
	closer byte
}

// BeginSeq skips leading trivia, consumes the opening `[` and returns a
// SeqDecoder.
func (d *Decoder) BeginSeq() *SeqDecoder {
	_ = d.skipTrivia() // an unterminated comment leaves pos at EOF, which Next reports
	if d.pos < len(d.src) && d.src[d.pos] == '[' {
		d.pos++
	}
	return &SeqDecoder{d: d, closer: ']'}
}

// Next trims trivia and reports whether another element follows; if the
// closer is next it is consumed and false is returned. The caller
// decodes the element directly off the shared Decoder between a true
// result and the next Next call.
func (s *SeqDecoder) Next() (bool, error) {
	if err := s.d.skipTrivia(); err != nil {
		return false, err
	}
	if s.d.pos >= len(s.d.src) {
		return false, EOFError{}
	}
	if s.d.src[s.d.pos] == s.closer {
		s.d.pos++
		return false, nil
	}
	if s.d.src[s.d.pos] == ',' {
		s.d.pos++
		return s.Next()
	}
	return true, nil
}

// Dec returns the Decoder to use for the current element.
func (s *SeqDecoder) Dec() *Decoder { return s.d }

// MapDecoder drives key/value-by-key/value decoding of a `{...}` map.
type MapDecoder struct {
	d *Decoder
}

// BeginMap skips leading trivia, consumes the opening `{` and returns a
// MapDecoder.
func (d *Decoder) BeginMap() *MapDecoder {
	_ = d.skipTrivia() // an unterminated comment leaves pos at EOF, which NextKey reports
	if d.pos < len(d.src) && d.src[d.pos] == '{' {
		d.pos++
	}
	return &MapDecoder{d: d}
}

// NextKey trims trivia and reports whether another entry follows; if
// `}` is next it is consumed and false is returned.
func (m *MapDecoder) NextKey() (bool, error) {
	if err := m.d.skipTrivia(); err != nil {
		return false, err
	}
	if m.d.pos >= len(m.d.src) {
		return false, EOFError{}
	}
	if m.d.src[m.d.pos] == '}' {
		m.d.pos++
		return false, nil
	}
	if m.d.src[m.d.pos] == ',' {
		m.d.pos++
		return m.NextKey()
	}
	return true, nil
}

// Value trims trivia before the value following a key; it errors if the
// map closes with no value present.
func (m *MapDecoder) Value() error {
	if err := m.d.skipTrivia(); err != nil {
		return err
	}
	if m.d.pos >= len(m.d.src) || m.d.src[m.d.pos] == '}' {
		return &MessageError{Msg: "paml: missing map value"}
	}
	return nil
}

// Dec returns the Decoder to use for the current key or value.
func (m *MapDecoder) Dec() *Decoder { return m.d }
