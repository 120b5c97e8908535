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

package cst

import (
	"strconv"

	"github.com/ysthakur/paml/literal"
	"github.com/ysthakur/paml/scanner"
	"github.com/ysthakur/paml/token"
)

// Result is the lossless outcome of parsing a document: the tree, the
// trivia surrounding it, and any non-fatal validation errors found along
// the way. Result owns the source text; every span in the tree is a
// valid index into it.
type Result struct {
	Source           string
	Before           Trivia
	Tree             Node
	After            Trivia
	ValidationErrors []ValidationError
}

// Parse tokenizes and parses text into a lossless Result. Tokenize and
// parse errors abort and are returned; validation errors are
// accumulated into the Result and never prevent it from being returned.
func Parse(text string) (*Result, error) {
	toks, err := scanner.Tokenize(text)
	if err != nil {
		return nil, errTokenize(err)
	}

	p := &parser{src: text, toks: toks}

	before, err := p.parseIgnored()
	if err != nil {
		return nil, err
	}
	if p.pos >= len(p.toks) {
		return nil, errEmptyFile()
	}

	tree, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	after, err := p.parseIgnored()
	if err != nil {
		return nil, err
	}

	if p.pos < len(p.toks) {
		t := p.toks[p.pos]
		return nil, errUnexpectedToken(t.Span, t.Type.String())
	}

	p.validation = append(p.validation, collectDuplicateKeys(tree)...)

	return &Result{
		Source:           text,
		Before:           before,
		Tree:             tree,
		After:            after,
		ValidationErrors: p.validation,
	}, nil
}

type parser struct {
	src        string
	toks       []token.Token
	pos        int
	validation []ValidationError
}

func (p *parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) consumeIf(typ token.Type) (token.Token, bool) {
	t, ok := p.peek()
	if ok && t.Type == typ {
		p.pos++
		return t, true
	}
	return token.Token{}, false
}

func (p *parser) srcEndSpan() token.Span {
	return token.Span{Start: len(p.src), End: len(p.src)}
}

// parseExpr parses one value. It assumes any leading trivia has already
// been consumed by the caller.
func (p *parser) parseExpr() (Node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, errUnexpectedEOF(p.srcEndSpan())
	}
	switch t.Type {
	case token.LSquare:
		return p.parseList()
	case token.LBrace:
		return p.parseMap()
	case token.QuotedString:
		p.pos++
		return p.buildQuotedString(nil, t)
	case token.BareString:
		p.pos++
		text := t.Span.Slice(p.src)
		switch text {
		case "true":
			return &Bool{Val: true, Sp: t.Span}, nil
		case "false":
			return &Bool{Val: false, Sp: t.Span}, nil
		}
		if num, ok := literal.ParseNum(text); ok {
			return &Num{Val: num, Sp: t.Span}, nil
		}
		if qt, ok := p.peek(); ok && qt.Type == token.QuotedString && qt.Span.Start == t.Span.End {
			p.pos++
			return p.buildQuotedString(&t, qt)
		}
		return &BareString{Val: text, Sp: t.Span}, nil
	case token.MultilineCommentEnd:
		return nil, errUnmatchedEndDelimiter("#]", t.Span)
	default:
		return nil, errUnexpectedToken(t.Span, t.Type.String())
	}
}

func (p *parser) buildQuotedString(prefix *token.Token, qt token.Token) (*QuotedString, error) {
	raw := qt.Span.Slice(p.src)
	q := raw[0]
	val, err := literal.Unquote(raw, q, qt.DelimLen)
	if err != nil {
		return nil, &ParseError{Msg: err.Error(), Sp: qt.Span}
	}

	sp := qt.Span
	format := FormatNone
	formatName := ""
	if prefix != nil {
		formatName = prefix.Span.Slice(p.src)
		sp = token.Span{Start: prefix.Span.Start, End: qt.Span.End}
		switch formatName {
		case "unindent":
			format = FormatUnindent
			val = literal.Unindent(val)
		case "singleLine":
			format = FormatSingleLine
			val = literal.SingleLine(val)
		default:
			format = FormatUnknown
			p.validation = append(p.validation, &UnrecognizedStringFormatType{Tag: formatName, Sp: sp})
		}
	}
	return &QuotedString{
		Val:        val,
		Format:     format,
		FormatName: formatName,
		DelimLen:   qt.DelimLen,
		Sp:         sp,
	}, nil
}

func (p *parser) parseList() (Node, error) {
	openTok, _ := p.consumeIf(token.LSquare)
	afterOpener, err := p.parseIgnored()
	if err != nil {
		return nil, err
	}

	var items []ListItem
	for {
		if t, ok := p.peek(); ok && t.Type == token.RSquare {
			p.pos++
			return &List{OpenerSpan: openTok.Span, AfterOpener: afterOpener, Items: items, CloserSpan: t.Span}, nil
		}
		if _, ok := p.peek(); !ok {
			return nil, errUnmatchedStartDelimiter("]", openTok.Span)
		}

		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		afterItem, sep, err := p.parseItemTrivia()
		if err != nil {
			return nil, err
		}
		// List items need no separator: whitespace alone is enough, and
		// the next iteration handles the closer or EOF.
		items = append(items, ListItem{Item: item, AfterItem: afterItem, Sep: sep})
	}
}

func (p *parser) parseMap() (Node, error) {
	openTok, _ := p.consumeIf(token.LBrace)
	afterOpener, err := p.parseIgnored()
	if err != nil {
		return nil, err
	}

	var items []MapItem
	for {
		if t, ok := p.peek(); ok && t.Type == token.RBrace {
			p.pos++
			return &Map{OpenerSpan: openTok.Span, AfterOpener: afterOpener, Items: items, CloserSpan: t.Span}, nil
		}
		if _, ok := p.peek(); !ok {
			return nil, errUnmatchedStartDelimiter("}", openTok.Span)
		}

		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		afterKey, err := p.parseIgnored()
		if err != nil {
			return nil, err
		}
		if t, ok := p.peek(); !ok || t.Type == token.RBrace {
			sp := key.Span()
			if ok {
				sp = t.Span
			}
			return nil, errExpectedValue(sp)
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		afterVal, sep, err := p.parseItemTrivia()
		if err != nil {
			return nil, err
		}
		items = append(items, MapItem{Key: key, AfterKey: afterKey, Val: val, AfterVal: afterVal, Sep: sep})

		if sep == nil {
			t, ok := p.peek()
			if !ok {
				return nil, errUnmatchedStartDelimiter("}", openTok.Span)
			}
			if t.Type != token.RBrace {
				return nil, errUnexpectedToken(t.Span, t.Type.String())
			}
		}
	}
}

// parseIgnored consumes a maximal run of trivia, including newlines.
// It is used wherever trivia carries no separator meaning: document
// boundaries, after an opener, between a map key and its value, and
// after a separator token.
func (p *parser) parseIgnored() (Trivia, error) {
	var all []TriviaPart
	for {
		parts, err := p.consumeNonNewlineTrivia()
		if err != nil {
			return Trivia{}, err
		}
		all = append(all, parts...)
		if t, ok := p.consumeIf(token.Newline); ok {
			all = append(all, TriviaPart{Span: t.Span, Kind: Newline})
			continue
		}
		break
	}
	return Trivia{Parts: all}, nil
}

// parseItemTrivia consumes trivia following a list or map value up to
// (and including) the first comma or newline, which becomes the item's
// Separator; any trivia after the separator is folded into it. If
// neither a comma nor a newline is found, there is no separator.
func (p *parser) parseItemTrivia() (Trivia, *Separator, error) {
	parts, err := p.consumeNonNewlineTrivia()
	if err != nil {
		return Trivia{}, nil, err
	}
	if t, ok := p.consumeIf(token.Comma); ok {
		after, err := p.parseIgnored()
		if err != nil {
			return Trivia{}, nil, err
		}
		return Trivia{Parts: parts}, &Separator{SepSpan: t.Span, After: after}, nil
	}
	if t, ok := p.consumeIf(token.Newline); ok {
		after, err := p.parseIgnored()
		if err != nil {
			return Trivia{}, nil, err
		}
		return Trivia{Parts: parts}, &Separator{SepSpan: t.Span, After: after}, nil
	}
	return Trivia{Parts: parts}, nil, nil
}

// consumeNonNewlineTrivia consumes horizontal whitespace, single-line
// comments, and (possibly nested) multiline comments, stopping before
// the next newline, comma, or structural token.
func (p *parser) consumeNonNewlineTrivia() ([]TriviaPart, error) {
	var parts []TriviaPart
	for {
		added := false
		if t, ok := p.consumeIf(token.HorizontalWhitespace); ok {
			end := t.Span.End
			for {
				t2, ok2 := p.consumeIf(token.HorizontalWhitespace)
				if !ok2 {
					break
				}
				end = t2.Span.End
			}
			parts = append(parts, TriviaPart{Span: token.Span{Start: t.Span.Start, End: end}, Kind: HorizontalWhitespace})
			added = true
		}
		if t, ok := p.consumeIf(token.SingleLineCommentStart); ok {
			end := t.Span.End
			for {
				next, ok2 := p.peek()
				if !ok2 || next.Type == token.Newline {
					break
				}
				p.pos++
				end = next.Span.End
			}
			parts = append(parts, TriviaPart{Span: token.Span{Start: t.Span.Start, End: end}, Kind: SingleLineComment})
			added = true
		}
		if t, ok := p.consumeIf(token.MultilineCommentStart); ok {
			end, err := p.consumeMultilineCommentBody(t.Span)
			if err != nil {
				return nil, err
			}
			parts = append(parts, TriviaPart{Span: token.Span{Start: t.Span.Start, End: end}, Kind: MultilineComment})
			added = true
		}
		if t, ok := p.peek(); ok && t.Type == token.MultilineCommentEnd {
			return nil, errUnmatchedEndDelimiter("#]", t.Span)
		}
		if !added {
			break
		}
	}
	return parts, nil
}

// consumeMultilineCommentBody consumes tokens (of any kind; a block
// comment's body is not re-lexed) until the matching, possibly nested,
// end delimiter, and returns the byte offset just past it.
func (p *parser) consumeMultilineCommentBody(start token.Span) (int, error) {
	stack := []token.Span{start}
	for {
		t, ok := p.peek()
		if !ok {
			top := stack[len(stack)-1]
			return 0, errUnmatchedStartDelimiter("#]", top)
		}
		p.pos++
		switch t.Type {
		case token.MultilineCommentStart:
			stack = append(stack, t.Span)
		case token.MultilineCommentEnd:
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return t.Span.End, nil
			}
		}
	}
}

// collectDuplicateKeys walks the tree for Map nodes and records every
// repeated key, comparing by a key's canonical text. Keys that are
// themselves Lists or Maps are not comparable this way and are skipped,
// matching the recommendation to forbid (or not canonicalize) maps as
// keys.
func collectDuplicateKeys(n Node) []ValidationError {
	var errs []ValidationError
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case *Map:
			seen := make(map[string]token.Span, len(v.Items))
			for _, item := range v.Items {
				walk(item.Key)
				walk(item.Val)
				key, ok := keyText(item.Key)
				if !ok {
					continue
				}
				if orig, dup := seen[key]; dup {
					errs = append(errs, &DuplicateKey{Key: key, OrigSpan: orig, DupeSpan: item.Key.Span()})
				} else {
					seen[key] = item.Key.Span()
				}
			}
		case *List:
			for _, item := range v.Items {
				walk(item.Item)
			}
		}
	}
	walk(n)
	return errs
}

func keyText(n Node) (string, bool) {
	switch v := n.(type) {
	case *Bool:
		return strconv.FormatBool(v.Val), true
	case *Num:
		return v.Val.String(), true
	case *BareString:
		return v.Val, true
	case *QuotedString:
		return v.Val, true
	default:
		return "", false
	}
}
