/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package syntax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSyntax indicates a syntax string could not be parsed.
var ErrInvalidSyntax = errors.New("invalid syntax")

type lexemeKind int

const (
	lexEOF lexemeKind = iota
	lexKeyword
	lexData
	lexOpen
	lexClose
	lexBar
	lexBarBar
	lexAndAnd
	lexMultiplier
)

type lexeme struct {
	kind lexemeKind
	text string
	pos  int
}

// Parse parses a value definition such as "auto | [ <length> | <percentage> ]{1,4}".
//
// Precedence, loosest first: "|", "||", "&&", juxtaposition.
// A multiplier on a keyword or placeholder wraps it in a Group node
// that carries the multiplier.
func Parse(s string) (*Expression, error) {
	lexemes, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{lexemes: lexemes}
	if p.peek().kind == lexEOF {
		return nil, fmt.Errorf("%w: empty syntax", ErrInvalidSyntax)
	}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if next := p.peek(); next.kind != lexEOF {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidSyntax, next.text, next.pos)
	}
	return expr, nil
}

// MustParse is like Parse but panics on error. It is meant for
// syntaxes known at compile time.
func MustParse(s string) *Expression {
	expr, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return expr
}

func lex(s string) ([]lexeme, error) {
	var out []lexeme
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '[':
			out = append(out, lexeme{lexOpen, "[", i})
			i++
		case c == ']':
			out = append(out, lexeme{lexClose, "]", i})
			i++
		case c == '|':
			if i+1 < len(s) && s[i+1] == '|' {
				out = append(out, lexeme{lexBarBar, "||", i})
				i += 2
			} else {
				out = append(out, lexeme{lexBar, "|", i})
				i++
			}
		case c == '&':
			if i+1 >= len(s) || s[i+1] != '&' {
				return nil, fmt.Errorf("%w: lone '&' at offset %d", ErrInvalidSyntax, i)
			}
			out = append(out, lexeme{lexAndAnd, "&&", i})
			i += 2
		case c == ',':
			out = append(out, lexeme{lexKeyword, ",", i})
			i++
		case c == '?' || c == '*' || c == '+' || c == '#' || c == '!':
			out = append(out, lexeme{lexMultiplier, string(c), i})
			i++
		case c == '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated '{' at offset %d", ErrInvalidSyntax, i)
			}
			out = append(out, lexeme{lexMultiplier, s[i : i+end+1], i})
			i += end + 1
		case c == '<':
			end := strings.IndexByte(s[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated '<' at offset %d", ErrInvalidSyntax, i)
			}
			out = append(out, lexeme{lexData, strings.TrimSpace(s[i+1 : i+end]), i})
			i += end + 1
		case isIdentStart(c):
			start := i
			for i < len(s) && isIdentChar(s[i]) {
				i++
			}
			out = append(out, lexeme{lexKeyword, s[start:i], start})
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidSyntax, c, i)
		}
	}
	out = append(out, lexeme{lexEOF, "", len(s)})
	return out, nil
}

func isIdentStart(c byte) bool {
	return c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

type parser struct {
	lexemes []lexeme
	pos     int
}

func (p *parser) peek() lexeme {
	return p.lexemes[p.pos]
}

func (p *parser) next() lexeme {
	l := p.lexemes[p.pos]
	if l.kind != lexEOF {
		p.pos++
	}
	return l
}

func (p *parser) parseOr() (*Expression, error) {
	return p.parseBinary(lexBar, Or, p.parseOrOr)
}

func (p *parser) parseOrOr() (*Expression, error) {
	return p.parseBinary(lexBarBar, OrOr, p.parseAndAnd)
}

func (p *parser) parseAndAnd() (*Expression, error) {
	return p.parseBinary(lexAndAnd, AndAnd, p.parseJuxtaposition)
}

// parseBinary parses operands separated by op, collapsing a single operand.
func (p *parser) parseBinary(op lexemeKind, combinator CombinatorType, operand func() (*Expression, error)) (*Expression, error) {
	first, err := operand()
	if err != nil {
		return nil, err
	}
	subs := []*Expression{first}
	for p.peek().kind == op {
		p.next()
		sub, err := operand()
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if len(subs) == 1 {
		return first, nil
	}
	return &Expression{Type: Combinator, Combinator: combinator, SubExpressions: subs}, nil
}

func (p *parser) parseJuxtaposition() (*Expression, error) {
	var subs []*Expression
	for {
		switch p.peek().kind {
		case lexKeyword, lexData, lexOpen:
			term, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			subs = append(subs, term)
			continue
		}
		break
	}
	switch len(subs) {
	case 0:
		l := p.peek()
		if l.kind == lexEOF {
			return nil, fmt.Errorf("%w: unexpected end of syntax", ErrInvalidSyntax)
		}
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidSyntax, l.text, l.pos)
	case 1:
		return subs[0], nil
	}
	return &Expression{Type: Combinator, Combinator: Juxtaposition, SubExpressions: subs}, nil
}

func (p *parser) parseTerm() (*Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == lexMultiplier {
		l := p.next()
		m, err := parseMultiplier(l)
		if err != nil {
			return nil, err
		}
		expr = &Expression{
			Type:           Combinator,
			Combinator:     Group,
			Multiplier:     m,
			SubExpressions: []*Expression{expr},
		}
	}
	return expr, nil
}

func (p *parser) parsePrimary() (*Expression, error) {
	l := p.next()
	switch l.kind {
	case lexKeyword:
		return &Expression{Type: Keyword, Keyword: l.text}, nil
	case lexData:
		dt, ok := DataTypeFromString(l.text)
		if !ok {
			return nil, fmt.Errorf("%w: unknown data type <%s> at offset %d", ErrInvalidSyntax, l.text, l.pos)
		}
		return &Expression{Type: Data, DataType: dt}, nil
	case lexOpen:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != lexClose {
			return nil, fmt.Errorf("%w: missing ']' for '[' at offset %d", ErrInvalidSyntax, l.pos)
		}
		return inner, nil
	}
	return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidSyntax, l.text, l.pos)
}

func parseMultiplier(l lexeme) (Multiplier, error) {
	switch l.text {
	case "?":
		return Multiplier{Type: Range, Min: 0, Max: 1}, nil
	case "*":
		return Multiplier{Type: Range, Min: 0, Max: Unbounded}, nil
	case "+":
		return Multiplier{Type: Range, Min: 1, Max: Unbounded}, nil
	case "#", "!":
		return Multiplier{}, fmt.Errorf("%w: multiplier %q at offset %d is not supported", ErrInvalidSyntax, l.text, l.pos)
	}

	body := strings.TrimSuffix(strings.TrimPrefix(l.text, "{"), "}")
	minText, maxText, hasComma := strings.Cut(body, ",")
	minimum, err := strconv.Atoi(strings.TrimSpace(minText))
	if err != nil || minimum < 0 {
		return Multiplier{}, fmt.Errorf("%w: bad range %s at offset %d", ErrInvalidSyntax, l.text, l.pos)
	}
	maximum := minimum
	if hasComma {
		maxText = strings.TrimSpace(maxText)
		if maxText == "" {
			maximum = Unbounded
		} else if maximum, err = strconv.Atoi(maxText); err != nil {
			return Multiplier{}, fmt.Errorf("%w: bad range %s at offset %d", ErrInvalidSyntax, l.text, l.pos)
		}
	}
	if maximum < minimum || maximum == 0 {
		return Multiplier{}, fmt.Errorf("%w: bad range %s at offset %d", ErrInvalidSyntax, l.text, l.pos)
	}
	return Multiplier{Type: Range, Min: minimum, Max: maximum}, nil
}
