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

import "strings"

// Unindent strips the common leading horizontal whitespace from every
// non-empty line of s. It implements the "unindent" string format tag.
func Unindent(s string) string {
	lines := strings.Split(s, "\n")

	common := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := 0
		for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
			n++
		}
		if common == -1 || n < common {
			common = n
		}
	}
	if common <= 0 {
		return s
	}

	for i, line := range lines {
		if len(line) >= common {
			lines[i] = line[common:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.Join(lines, "\n")
}

// SingleLine replaces every line break, together with the horizontal
// whitespace surrounding it, with a single space. It implements the
// "singleLine" string format tag.
func SingleLine(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '\n' || c == '\r' {
			for b.Len() > 0 {
				tail := b.String()
				last := tail[len(tail)-1]
				if last != ' ' && last != '\t' {
					break
				}
				b.Reset()
				b.WriteString(tail[:len(tail)-1])
			}
			j := i
			for j < len(s) && (s[j] == '\n' || s[j] == '\r') {
				j++
			}
			for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
				j++
			}
			b.WriteByte(' ')
			i = j
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}
