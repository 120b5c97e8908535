// Copyright 2020 CUE Authors
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

package literal

import "testing"

func TestParseNum(t *testing.T) {
	testCases := []struct {
		text string
		ok   bool
		want Num
	}{
		{"123", true, Num{Int: "123"}},
		{"-123", true, Num{Int: "-123"}},
		{"+42", true, Num{Int: "+42"}},
		{"1.5", true, Num{Int: "1", Dec: "5", HasDec: true}},
		{"1e10", true, Num{Int: "1", Exp: "10", HasExp: true}},
		{"1.5e-10", true, Num{Int: "1", Dec: "5", HasDec: true, Exp: "-10", HasExp: true}},
		{"not a number", false, Num{}},
		{"1.", false, Num{}},
		{"", false, Num{}},
	}
	for _, tc := range testCases {
		got, ok := ParseNum(tc.text)
		if ok != tc.ok {
			t.Errorf("ParseNum(%q) ok = %v, want %v", tc.text, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if got != tc.want {
			t.Errorf("ParseNum(%q) = %+v, want %+v", tc.text, got, tc.want)
		}
		if got.String() != tc.text {
			t.Errorf("ParseNum(%q).String() = %q, want %q", tc.text, got.String(), tc.text)
		}
	}
}

func TestNumIsInt(t *testing.T) {
	n, _ := ParseNum("123")
	if !n.IsInt() {
		t.Error("123 should be an int")
	}
	n, _ = ParseNum("1.5")
	if n.IsInt() {
		t.Error("1.5 should not be an int")
	}
	n, _ = ParseNum("1e10")
	if n.IsInt() {
		t.Error("1e10 should not be an int")
	}
}

func TestNumInt64(t *testing.T) {
	n, _ := ParseNum("-42")
	i, err := n.Int64()
	if err != nil || i != -42 {
		t.Errorf("Int64() = %d, %v, want -42, nil", i, err)
	}

	n, _ = ParseNum("1.5")
	if _, err := n.Int64(); err == nil {
		t.Error("Int64() on decimal should error")
	}
}

func TestNumFloat64(t *testing.T) {
	n, _ := ParseNum("1.5e2")
	f, err := n.Float64()
	if err != nil || f != 150 {
		t.Errorf("Float64() = %v, %v, want 150, nil", f, err)
	}
}

func TestFormatFloat(t *testing.T) {
	if got := FormatFloat(1.5); got != "1.5" {
		t.Errorf("FormatFloat(1.5) = %q, want 1.5", got)
	}
}

func TestFormatInt(t *testing.T) {
	if got := FormatInt(-42); got != "-42" {
		t.Errorf("FormatInt(-42) = %q, want -42", got)
	}
}
