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

// Package scanner implements the tokenizer: a UTF-8-correct lexical pass
// over source bytes that recognizes structural punctuation, whitespace
// classes, comments, bare words, and quoted strings with balanced
// variable-length delimiters. It is a pure function: it allocates no
// string content, only span bookkeeping.
package scanner

import (
	"unicode/utf8"

	"github.com/ysthakur/paml/token"
)

// Tokenize scans the entirety of src and returns its tokens in source
// order, or the first error encountered. Tokenize never recovers from an
// error: a malformed quoted string aborts the whole pass, matching the
// error handling policy that tokenize errors abort and are surfaced
// immediately.
func Tokenize(src string) ([]token.Token, error) {
	s := &scanner{src: src}
	var toks []token.Token
	for s.pos < len(s.src) {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

type scanner struct {
	src string
	pos int
}

// isBoundary reports whether b terminates a bare word or a run of
// horizontal whitespace. The boundary set is punctuation, quote
// openers, and ASCII whitespace.
func isBoundary(b byte) bool {
	switch b {
	case ',', '[', ']', '{', '}', '#', '\'', '"', '`':
		return true
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isHSpace(b byte) bool { return b == ' ' || b == '\t' }

// next scans and returns exactly one token starting at s.pos.
func (s *scanner) next() (token.Token, error) {
	start := s.pos
	c := s.src[start]
	switch c {
	case ',':
		s.pos++
		return token.Token{Type: token.Comma, Span: token.Span{Start: start, End: s.pos}}, nil
	case '[':
		s.pos++
		return token.Token{Type: token.LSquare, Span: token.Span{Start: start, End: s.pos}}, nil
	case ']':
		s.pos++
		return token.Token{Type: token.RSquare, Span: token.Span{Start: start, End: s.pos}}, nil
	case '{':
		s.pos++
		return token.Token{Type: token.LBrace, Span: token.Span{Start: start, End: s.pos}}, nil
	case '}':
		s.pos++
		return token.Token{Type: token.RBrace, Span: token.Span{Start: start, End: s.pos}}, nil
	case '#':
		switch s.byteAt(start + 1) {
		case '[':
			s.pos += 2
			return token.Token{Type: token.MultilineCommentStart, Span: token.Span{Start: start, End: s.pos}}, nil
		case ']':
			s.pos += 2
			return token.Token{Type: token.MultilineCommentEnd, Span: token.Span{Start: start, End: s.pos}}, nil
		default:
			s.pos++
			return token.Token{Type: token.SingleLineCommentStart, Span: token.Span{Start: start, End: s.pos}}, nil
		}
	case '\n':
		s.pos++
		return token.Token{Type: token.Newline, Span: token.Span{Start: start, End: s.pos}}, nil
	case '\r':
		if s.byteAt(start+1) == '\n' {
			s.pos += 2
		} else {
			s.pos++
		}
		return token.Token{Type: token.Newline, Span: token.Span{Start: start, End: s.pos}}, nil
	case ' ', '\t':
		s.pos++
		for s.pos < len(s.src) && isHSpace(s.src[s.pos]) {
			s.pos++
		}
		return token.Token{Type: token.HorizontalWhitespace, Span: token.Span{Start: start, End: s.pos}}, nil
	case '\'', '"', '`':
		return s.scanQuotedString(c)
	default:
		return s.scanBareString()
	}
}

func (s *scanner) byteAt(i int) byte {
	if i < 0 || i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

func (s *scanner) scanBareString() (token.Token, error) {
	start := s.pos
	for s.pos < len(s.src) {
		b := s.src[s.pos]
		if b < utf8.RuneSelf {
			if isBoundary(b) {
				break
			}
			s.pos++
			continue
		}
		_, w := utf8.DecodeRuneInString(s.src[s.pos:])
		s.pos += w
	}
	return token.Token{Type: token.BareString, Span: token.Span{Start: start, End: s.pos}}, nil
}

// quoteRun counts the run of identical quote bytes q starting at pos and
// returns its length and the offset just past it.
func (s *scanner) quoteRun(pos int, q byte) (n, end int) {
	for pos+n < len(s.src) && s.src[pos+n] == q {
		n++
	}
	return n, pos + n
}

func (s *scanner) scanQuotedString(q byte) (token.Token, error) {
	start := s.pos
	n, afterOpen := s.quoteRun(start, q)

	if n%2 == 0 {
		half := n / 2
		if half%2 == 0 {
			s.pos = afterOpen
			return token.Token{}, &IncorrectOpeningQuotesError{
				RunSpan: token.Span{Start: start, End: afterOpen},
			}
		}
		s.pos = afterOpen
		return token.Token{
			Type:     token.QuotedString,
			Span:     token.Span{Start: start, End: afterOpen},
			DelimLen: half,
		}, nil
	}

	delimLen := n
	raw := q == '`'
	openSpan := token.Span{Start: start, End: afterOpen}
	pos := afterOpen

	for {
		if pos >= len(s.src) {
			s.pos = pos
			return token.Token{}, &NoEndingQuoteError{OpenSpan: openSpan}
		}
		c := s.src[pos]
		switch {
		case c == q:
			runStart := pos
			m, afterRun := s.quoteRun(pos, q)
			switch {
			case m == delimLen:
				s.pos = afterRun
				return token.Token{
					Type:     token.QuotedString,
					Span:     token.Span{Start: start, End: afterRun},
					DelimLen: delimLen,
				}, nil
			case m > delimLen:
				s.pos = afterRun
				return token.Token{}, &MismatchedEndingQuotesError{
					OpenSpan: openSpan,
					EndSpan:  token.Span{Start: runStart, End: afterRun},
				}
			default:
				pos = afterRun
			}
		case !raw && c == '\\':
			if pos+1 >= len(s.src) {
				s.pos = pos + 1
				return token.Token{}, &NoEscapedCharacterError{
					BackslashSpan: token.Span{Start: pos, End: pos + 1},
				}
			}
			_, w := utf8.DecodeRuneInString(s.src[pos+1:])
			pos += 1 + w
		default:
			if c < utf8.RuneSelf {
				pos++
			} else {
				_, w := utf8.DecodeRuneInString(s.src[pos:])
				pos += w
			}
		}
	}
}
