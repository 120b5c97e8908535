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

import (
	"regexp"
	"strconv"
	"strings"
)

// Num is a decomposed decimal literal: an integer part (possibly signed),
// an optional decimal part without its leading dot, and an optional
// exponent without its leading 'e'. Concatenating Int, "."+Dec (if
// HasDec), and "e"+Exp (if HasExp) always reproduces a valid decimal
// literal.
type Num struct {
	Int    string
	Dec    string
	HasDec bool
	Exp    string
	HasExp bool
}

var numPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// ParseNum attempts to decompose text as a Num. It reports false if text
// does not match the decimal number grammar, in which case the bareword
// it came from remains a plain string.
func ParseNum(text string) (Num, bool) {
	if !numPattern.MatchString(text) {
		return Num{}, false
	}

	rest := text
	var n Num

	if i := strings.IndexAny(rest, "eE"); i >= 0 {
		n.HasExp = true
		n.Exp = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		n.HasDec = true
		n.Dec = rest[i+1:]
		rest = rest[:i]
	}
	n.Int = rest
	return n, true
}

// String reproduces the original decimal literal, except that an
// exponent marker is always written as a lowercase 'e'.
func (n Num) String() string {
	var b strings.Builder
	b.WriteString(n.Int)
	if n.HasDec {
		b.WriteByte('.')
		b.WriteString(n.Dec)
	}
	if n.HasExp {
		b.WriteByte('e')
		b.WriteString(n.Exp)
	}
	return b.String()
}

// Float64 converts the number to a float64.
func (n Num) Float64() (float64, error) {
	return strconv.ParseFloat(n.String(), 64)
}

// Int64 converts the number to an int64. It fails if the number has a
// decimal or exponent part.
func (n Num) Int64() (int64, error) {
	if n.HasDec || n.HasExp {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(n.Int, 10, 64)
}

// IsInt reports whether n has no decimal or exponent part, i.e. it can
// be represented as a plain integer.
func (n Num) IsInt() bool { return !n.HasDec && !n.HasExp }

// FormatFloat renders f as the shortest decimal string that round-trips
// back to f, the canonical float form used by the printer and encoder.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatInt renders i as a decimal integer literal.
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatUint renders u as a decimal integer literal.
func FormatUint(u uint64) string {
	return strconv.FormatUint(u, 10)
}
