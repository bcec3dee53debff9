// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lexer turns tmonkey source text into a stream of [token.Token]s.
//
// The lexer is lazy: each call to [Lexer.Next] scans exactly one token. It
// does not track line or column information.
//
// Lexing is lenient. An unterminated string literal runs to the end of the
// input, and a number stops at its second dot. A character that cannot
// start any token ends the stream: it and everything after it are never
// tokenized, and the lexer reports [token.EOF] from then on. Use
// [Lexer.Stopped] to find out whether that happened.
package lexer

import (
	"github.com/rivo/uniseg"

	"github.com/tmonkey-lang/tmonkey/token"
)

// Lexer is a tmonkey lexer over a single source string.
//
// A Lexer is not safe for concurrent use.
type Lexer struct {
	text   string
	cursor int

	// Set once the lexer has stopped on a character it does not recognize.
	stopped bool
	stopAt  int
}

// New returns a lexer over text.
func New(text string) *Lexer {
	return &Lexer{text: text}
}

// All lexes text to completion, and returns every token including the final
// [token.EOF].
func All(text string) []token.Token {
	l := New(text)
	var out []token.Token
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok.IsEOF() {
			return out
		}
	}
}

// Next scans and returns the next token.
//
// Once Next has returned [token.EOF], every later call returns it too.
func (l *Lexer) Next() token.Token {
	mp := l.mustProgress()
	tok := l.next()
	if !tok.IsEOF() {
		mp.check()
	}
	return tok
}

// Offset returns the byte offset of the next unscanned character.
func (l *Lexer) Offset() int {
	return l.cursor
}

// Stopped reports whether lexing ended early on an unrecognized character.
//
// If it did, offset is the byte offset of that character and char is the
// complete user-perceived character (grapheme cluster) found there.
func (l *Lexer) Stopped() (offset int, char string, ok bool) {
	if !l.stopped {
		return 0, "", false
	}
	char, _, _, _ = uniseg.FirstGraphemeClusterInString(l.text[l.stopAt:], -1)
	return l.stopAt, char, true
}

func (l *Lexer) next() token.Token {
	if l.stopped {
		return token.Token{}
	}

	l.takeWhile(isSpace)
	if l.done() {
		return token.Token{}
	}

	start := l.cursor
	c := l.pop()

	switch c {
	case '+':
		return l.tokenFrom(start, token.Plus)
	case '-':
		return l.tokenFrom(start, token.Minus)
	case '*':
		return l.tokenFrom(start, token.Star)
	case '/':
		return l.tokenFrom(start, token.Slash)
	case '{':
		return l.tokenFrom(start, token.LBrace)
	case '}':
		return l.tokenFrom(start, token.RBrace)
	case '(':
		return l.tokenFrom(start, token.LParen)
	case ')':
		return l.tokenFrom(start, token.RParen)
	case '[':
		return l.tokenFrom(start, token.LBracket)
	case ']':
		return l.tokenFrom(start, token.RBracket)
	case ':':
		return l.tokenFrom(start, token.Colon)
	case ';':
		return l.tokenFrom(start, token.Semicolon)
	case ',':
		return l.tokenFrom(start, token.Comma)
	case '.':
		return l.tokenFrom(start, token.Dot)
	}

	switch {
	case c == '=':
		return l.tokenFrom(start, l.pick('=', token.EqEq, token.Eq))
	case c == '!':
		return l.tokenFrom(start, l.pick('=', token.NotEq, token.Bang))
	case c == '<':
		return l.tokenFrom(start, l.pick('=', token.LtEq, token.Lt))
	case c == '>':
		return l.tokenFrom(start, l.pick('=', token.GtEq, token.Gt))
	case c == '"':
		return l.lexString()
	case isDigit(c):
		return l.lexNumber(start)
	case isIdentStart(c):
		l.takeWhile(isIdentPart)
		text := l.text[start:l.cursor]
		return token.New(token.Lookup(text), text)
	}

	l.stopped = true
	l.stopAt = start
	return token.Token{}
}

// lexString lexes a string literal whose opening quote has been consumed.
//
// If the closing quote is missing, the literal runs to the end of the input.
func (l *Lexer) lexString() token.Token {
	start := l.cursor
	l.takeWhile(func(c byte) bool { return c != '"' })
	text := l.text[start:l.cursor]
	if !l.done() {
		l.pop() // Closing quote.
	}
	return token.New(token.String, text)
}

// lexNumber lexes a number whose first digit has been consumed.
//
// The first dot makes the number a float. A second dot is not consumed, so
// "3...14" produces the float "3." followed by two dots.
func (l *Lexer) lexNumber(start int) token.Token {
	kind := token.Integer
	for !l.done() {
		c := l.peek()
		if c == '.' {
			if kind == token.Float {
				break
			}
			kind = token.Float
		} else if !isDigit(c) {
			break
		}
		l.pop()
	}
	return l.tokenFrom(start, kind)
}

// pick consumes next and returns yes if it is the next character; otherwise
// returns no.
func (l *Lexer) pick(next byte, yes, no token.Kind) token.Kind {
	if !l.done() && l.peek() == next {
		l.pop()
		return yes
	}
	return no
}

func (l *Lexer) tokenFrom(start int, kind token.Kind) token.Token {
	return token.New(kind, l.text[start:l.cursor])
}

// done returns whether there is nothing left to scan.
func (l *Lexer) done() bool {
	return l.cursor >= len(l.text)
}

// peek returns the next character without consuming it. Must not be called
// when l.done().
func (l *Lexer) peek() byte {
	return l.text[l.cursor]
}

// pop consumes and returns the next character. Must not be called when
// l.done().
func (l *Lexer) pop() byte {
	c := l.text[l.cursor]
	l.cursor++
	return c
}

// takeWhile consumes characters while they match f.
func (l *Lexer) takeWhile(f func(byte) bool) {
	for !l.done() && f(l.peek()) {
		l.cursor++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
