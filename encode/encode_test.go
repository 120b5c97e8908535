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

package encode

import "testing"

func TestEmitScalars(t *testing.T) {
	e := New()
	e.EmitBool(true)
	e.EmitUnit()
	if got, want := e.String(), "truenull"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitString(t *testing.T) {
	e := New()
	e.EmitString("a\"b")
	if got, want := e.String(), `"a\"b"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitBytes(t *testing.T) {
	e := New()
	e.EmitBytes([]byte{1, 2, 255})
	if got, want := e.String(), "[1,2,255,]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitSeqTrailingComma(t *testing.T) {
	e := New()
	seq := e.BeginSeq()
	seq.Elem(func(e *Encoder) error { e.EmitInt(1); return nil })
	seq.Elem(func(e *Encoder) error { e.EmitInt(2); return nil })
	seq.End()
	if got, want := e.String(), "[1,2,]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitEmptySeq(t *testing.T) {
	e := New()
	seq := e.BeginSeq()
	seq.End()
	if got, want := e.String(), "[]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitMap(t *testing.T) {
	e := New()
	m := e.BeginMap()
	m.Key(func(e *Encoder) error { e.EmitString("a"); return nil })
	m.Value(func(e *Encoder) error { e.EmitInt(1); return nil })
	m.Key(func(e *Encoder) error { e.EmitString("b"); return nil })
	m.Value(func(e *Encoder) error { e.EmitInt(2); return nil })
	m.End()
	if got, want := e.String(), `{"a" 1,"b" 2,}`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitOption(t *testing.T) {
	e := New()
	e.EmitNone()
	if got, want := e.String(), "~None null"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	e2 := New()
	e2.EmitSome(func(e *Encoder) error { e.EmitInt(5); return nil })
	if got, want := e2.String(), "~Some [5,]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitTaggedStruct(t *testing.T) {
	e := New()
	e.BeginTag("Point")
	m := e.BeginMap()
	m.Key(func(e *Encoder) error { e.EmitString("x"); return nil })
	m.Value(func(e *Encoder) error { e.EmitInt(1); return nil })
	m.End()
	if got, want := e.String(), `~Point {"x" 1,}`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type point struct{ x, y int64 }

func (p point) EncodePaml(e *Encoder) error {
	e.BeginTag("Point")
	m := e.BeginMap()
	if err := m.Key(func(e *Encoder) error { e.EmitString("x"); return nil }); err != nil {
		return err
	}
	if err := m.Value(func(e *Encoder) error { e.EmitInt(p.x); return nil }); err != nil {
		return err
	}
	if err := m.Key(func(e *Encoder) error { e.EmitString("y"); return nil }); err != nil {
		return err
	}
	if err := m.Value(func(e *Encoder) error { e.EmitInt(p.y); return nil }); err != nil {
		return err
	}
	m.End()
	return nil
}

func TestEncodeMarshaler(t *testing.T) {
	got, err := Encode(point{x: 1, y: 2})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := `~Point {"x" 1,"y" 2,}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
