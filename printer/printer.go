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

// Package printer implements the minimal canonical printer: AST ->
// text. It does not attempt to preserve the source's original
// formatting; that is the lossless CST's job.
package printer

import (
	"fmt"
	"strings"

	"github.com/ysthakur/paml/ast"
	"github.com/ysthakur/paml/literal"
)

// Print renders v as canonical text: true/false, number parts
// concatenated with '.' and 'e', strings double-quoted with escapes,
// lists as [e, e, e], and maps as {k v, k v}. A trailing comma is never
// emitted, regardless of what the source contained.
func Print(v ast.Value) string {
	var b strings.Builder
	write(&b, v)
	return b.String()
}

func write(b *strings.Builder, v ast.Value) {
	switch n := v.(type) {
	case *ast.Bool:
		if n.Val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *ast.Num:
		b.WriteString(n.Val.String())
	case *ast.Str:
		b.WriteString(literal.Quote(n.Val))
	case *ast.List:
		b.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, item)
		}
		b.WriteByte(']')
	case *ast.Map:
		b.WriteByte('{')
		for i, pair := range n.Pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, pair.Key)
			b.WriteByte(' ')
			write(b, pair.Val)
		}
		b.WriteByte('}')
	default:
		panic(fmt.Sprintf("printer: unhandled value type %T", v))
	}
}
