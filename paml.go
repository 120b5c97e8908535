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

// Package paml ties the lossless parser, lossy AST, canonical printer,
// and the generic encoder/decoder together into the convenience entry
// points most callers want: Parse and Format for round-tripping
// documents, and Marshal/Unmarshal for binding Go values to and from
// the textual form by reflection.
package paml

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/ysthakur/paml/ast"
	"github.com/ysthakur/paml/cst"
	"github.com/ysthakur/paml/decode"
	"github.com/ysthakur/paml/encode"
	errs "github.com/ysthakur/paml/errors"
	"github.com/ysthakur/paml/printer"
	"github.com/ysthakur/paml/token"
)

// Parse tokenizes and parses src into a lossless Result, exactly as
// cst.Parse does. It is re-exported here so callers who only need the
// high-level API need not import the cst package directly.
func Parse(src string) (*cst.Result, error) {
	return cst.Parse(src)
}

// Format parses src and reprints it in canonical form. It fails if src
// does not parse, or if it parses with validation errors (duplicate
// keys, unrecognized string format tags), since those prevent lowering
// to the AST the printer consumes.
func Format(src string) (string, error) {
	res, err := cst.Parse(src)
	if err != nil {
		return "", err
	}
	v, err := ast.Lower(res)
	if err != nil {
		return "", err
	}
	return printer.Print(v), nil
}

// Lint parses src and returns every problem found as a single
// errors.List: a tokenize or parse failure as its sole entry, or
// every accumulated validation error (duplicate keys, unrecognized
// string format tags) otherwise sorted by position. It returns nil if
// src parses clean.
func Lint(src string) error {
	res, err := cst.Parse(src)
	if err != nil {
		var list errs.List
		if pe, ok := err.(interface{ Span() token.Span }); ok {
			list.Add(errs.New(pe.Span(), "%s", err.Error()))
		} else {
			list.Add(errs.New(token.Span{}, "%s", err.Error()))
		}
		return list.Err()
	}
	var list errs.List
	for _, v := range res.ValidationErrors {
		list.Add(v)
	}
	list.Sort()
	return list.Err()
}

// Variant is implemented by Go values that correspond to a tagged
// variant of a sum type: Marshal writes them with a `~Name` prefix
// naming the variant, and a matching Unmarshal target can implement
// VariantUnmarshaler to pick its concrete representation from the tag.
type Variant interface {
	Variant() string
}

// Marshal encodes v as paml text. Values implementing encode.Marshaler
// drive the Encoder themselves; otherwise Marshal falls back to
// reflection, using the "paml" struct tag the way encoding/json uses
// "json": `paml:"name,omitempty"`. A nil pointer or interface encodes
// as the unit value. Types implementing Variant are written with a
// `~Name` tag ahead of their map or tuple body.
func Marshal(v any) (string, error) {
	e := encode.New()
	if err := marshalValue(e, reflect.ValueOf(v)); err != nil {
		return "", err
	}
	return e.String(), nil
}

func marshalValue(e *encode.Encoder, v reflect.Value) error {
	if !v.IsValid() {
		e.EmitUnit()
		return nil
	}
	if m, ok := v.Interface().(encode.Marshaler); ok {
		return m.EncodePaml(e)
	}
	// Values implementing encoding.TextMarshaler (e.g. uuid.UUID) are
	// encoded as plain strings, the same fallback cuedata uses for CUE.
	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return err
		}
		e.EmitString(string(text))
		return nil
	}

	tagName := ""
	if variant, ok := v.Interface().(Variant); ok {
		tagName = variant.Variant()
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			e.EmitUnit()
			return nil
		}
		return marshalValue(e, v.Elem())
	case reflect.Bool:
		e.EmitBool(v.Bool())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.EmitInt(v.Int())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.EmitUint(v.Uint())
		return nil
	case reflect.Float32, reflect.Float64:
		e.EmitFloat(v.Float())
		return nil
	case reflect.String:
		e.EmitString(v.String())
		return nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			if v.IsNil() {
				e.EmitUnit()
				return nil
			}
			e.EmitBytes(v.Bytes())
			return nil
		}
		if tagName != "" {
			e.BeginTag(tagName)
		}
		if v.Kind() == reflect.Slice && v.IsNil() {
			e.EmitUnit()
			return nil
		}
		seq := e.BeginSeq()
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if err := seq.Elem(func(e *encode.Encoder) error { return marshalValue(e, elem) }); err != nil {
				return err
			}
		}
		seq.End()
		return nil
	case reflect.Map:
		if tagName != "" {
			e.BeginTag(tagName)
		}
		if v.IsNil() {
			e.EmitUnit()
			return nil
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		m := e.BeginMap()
		for _, k := range keys {
			val := v.MapIndex(k)
			if err := m.Key(func(e *encode.Encoder) error { e.EmitString(fmt.Sprint(k.Interface())); return nil }); err != nil {
				return err
			}
			if err := m.Value(func(e *encode.Encoder) error { return marshalValue(e, val) }); err != nil {
				return err
			}
		}
		m.End()
		return nil
	case reflect.Struct:
		if tagName != "" {
			e.BeginTag(tagName)
		}
		return marshalStruct(e, v)
	default:
		return fmt.Errorf("paml: cannot marshal %s", v.Type())
	}
}

type fieldInfo struct {
	index     int
	name      string
	omitempty bool
}

func structFields(t reflect.Type) []fieldInfo {
	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := f.Name
		omitempty := false
		if tag, ok := f.Tag.Lookup("paml"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitempty = true
				}
			}
		}
		fields = append(fields, fieldInfo{index: i, name: name, omitempty: omitempty})
	}
	return fields
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

func marshalStruct(e *encode.Encoder, v reflect.Value) error {
	fields := structFields(v.Type())
	m := e.BeginMap()
	for _, f := range fields {
		fv := v.Field(f.index)
		if f.omitempty && isEmptyValue(fv) {
			continue
		}
		if err := m.Key(func(e *encode.Encoder) error { e.EmitString(f.name); return nil }); err != nil {
			return err
		}
		if err := m.Value(func(e *encode.Encoder) error { return marshalValue(e, fv) }); err != nil {
			return err
		}
	}
	m.End()
	return nil
}

// Unmarshal decodes src into v, which must be a non-nil pointer.
// Pointer targets implementing decode.Unmarshaler drive the Decoder
// themselves; otherwise Unmarshal falls back to reflection, matching
// Marshal's rules for the "paml" struct tag.
func Unmarshal(src string, v any) error {
	d := decode.New(src)
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("paml: Unmarshal requires a non-nil pointer, got %T", v)
	}
	if err := unmarshalValue(d, rv.Elem()); err != nil {
		return err
	}
	return d.Finish()
}

func unmarshalValue(d *decode.Decoder, v reflect.Value) error {
	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(decode.Unmarshaler); ok {
			return u.DecodePaml(d)
		}
		if u, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			s, err := d.DecodeString()
			if err != nil {
				return err
			}
			return u.UnmarshalText([]byte(s))
		}
	}
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return unmarshalValue(d, v.Elem())
	case reflect.Bool:
		b, err := d.DecodeBool()
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := d.DecodeInt64()
		if err != nil {
			return err
		}
		v.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := d.DecodeUint64()
		if err != nil {
			return err
		}
		v.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := d.DecodeFloat64()
		if err != nil {
			return err
		}
		v.SetFloat(f)
		return nil
	case reflect.String:
		s, err := d.DecodeString()
		if err != nil {
			return err
		}
		v.SetString(s)
		return nil
	case reflect.Slice:
		seq := d.BeginSeq()
		var elems []reflect.Value
		for {
			more, err := seq.Next()
			if err != nil {
				return err
			}
			if !more {
				break
			}
			elem := reflect.New(v.Type().Elem()).Elem()
			if err := unmarshalValue(seq.Dec(), elem); err != nil {
				return err
			}
			elems = append(elems, elem)
		}
		out := reflect.MakeSlice(v.Type(), len(elems), len(elems))
		for i, elem := range elems {
			out.Index(i).Set(elem)
		}
		v.Set(out)
		return nil
	case reflect.Map:
		m := d.BeginMap()
		out := reflect.MakeMap(v.Type())
		for {
			more, err := m.NextKey()
			if err != nil {
				return err
			}
			if !more {
				break
			}
			key, err := m.Dec().DecodeString()
			if err != nil {
				return err
			}
			if err := m.Value(); err != nil {
				return err
			}
			val := reflect.New(v.Type().Elem()).Elem()
			if err := unmarshalValue(m.Dec(), val); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(key).Convert(v.Type().Key()), val)
		}
		v.Set(out)
		return nil
	case reflect.Struct:
		return unmarshalStruct(d, v)
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return fmt.Errorf("paml: cannot unmarshal into non-empty interface %s", v.Type())
		}
		av := &anyVisitor{}
		if err := d.DecodeAny(av); err != nil {
			return err
		}
		v.Set(reflect.ValueOf(av.val))
		return nil
	default:
		return fmt.Errorf("paml: cannot unmarshal into %s", v.Type())
	}
}

// anyVisitor builds a generic Go value (bool, int64, string, []any,
// map[string]any, or nil) out of a DecodeAny dispatch, for Unmarshal
// targets typed as `any`.
type anyVisitor struct {
	val any
}

func (v *anyVisitor) VisitBool(b bool) error   { v.val = b; return nil }
func (v *anyVisitor) VisitUnit() error         { v.val = nil; return nil }
func (v *anyVisitor) VisitInt64(i int64) error { v.val = i; return nil }
func (v *anyVisitor) VisitString(s string) error {
	v.val = s
	return nil
}
func (v *anyVisitor) VisitSeq(s *decode.SeqDecoder) error {
	var out []any
	for {
		more, err := s.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		elem := &anyVisitor{}
		if err := s.Dec().DecodeAny(elem); err != nil {
			return err
		}
		out = append(out, elem.val)
	}
	v.val = out
	return nil
}
func (v *anyVisitor) VisitMap(m *decode.MapDecoder) error {
	out := make(map[string]any)
	for {
		more, err := m.NextKey()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		key, err := m.Dec().DecodeString()
		if err != nil {
			return err
		}
		if err := m.Value(); err != nil {
			return err
		}
		val := &anyVisitor{}
		if err := m.Dec().DecodeAny(val); err != nil {
			return err
		}
		out[key] = val.val
	}
	v.val = out
	return nil
}

func unmarshalStruct(d *decode.Decoder, v reflect.Value) error {
	byName := make(map[string]int)
	for _, f := range structFields(v.Type()) {
		byName[f.name] = f.index
	}
	m := d.BeginMap()
	for {
		more, err := m.NextKey()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		key, err := m.Dec().DecodeString()
		if err != nil {
			return err
		}
		if err := m.Value(); err != nil {
			return err
		}
		idx, ok := byName[key]
		if !ok {
			// skip the value of an unrecognized field
			var discard any
			if err := unmarshalValue(m.Dec(), reflect.ValueOf(&discard).Elem()); err != nil {
				return err
			}
			continue
		}
		if err := unmarshalValue(m.Dec(), v.Field(idx)); err != nil {
			return err
		}
	}
	return nil
}
