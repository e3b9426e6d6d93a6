/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package lexer turns a token.Source into a stream of token.Token, skipping whitespace, commas
// and comments the way the GraphQL "Language" spec section defines as Ignored.
package lexer

import (
	"fmt"
	"strings"

	"github.com/gqlforge/gqlforge/graphql/token"
)

// Lexer is a stateful stream of tokens pulled on demand from a token.Source.
type Lexer struct {
	source *token.Source
	pos    int
}

// New builds a Lexer positioned at the start of source.
func New(source *token.Source) *Lexer {
	return &Lexer{source: source}
}

func (l *Lexer) body() []byte { return l.source.Body }

func (l *Lexer) peekByte() byte {
	if l.pos >= len(l.body()) {
		return 0
	}
	return l.body()[l.pos]
}

func (l *Lexer) byteAt(offset int) byte {
	p := l.pos + offset
	if p >= len(l.body()) {
		return 0
	}
	return l.body()[p]
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// skipIgnored advances past whitespace, commas, the UTF-8 BOM and "#"-comments, none of which
// produce a token.
func (l *Lexer) skipIgnored() {
	body := l.body()
	for l.pos < len(body) {
		c := body[l.pos]
		switch {
		case c == 0xEF && l.byteAt(1) == 0xBB && l.byteAt(2) == 0xBF:
			l.pos += 3
		case c == ' ' || c == '\t' || c == ',' || c == '\n':
			l.pos++
		case c == '\r':
			l.pos++
			if l.peekByte() == '\n' {
				l.pos++
			}
		case c == '#':
			for l.pos < len(body) && body[l.pos] != '\n' && body[l.pos] != '\r' {
				l.pos++
			}
		default:
			return
		}
	}
}

// Advance returns the next non-ignored token in the source, advancing past it.
func (l *Lexer) Advance() (*token.Token, error) {
	l.skipIgnored()

	start := l.pos
	body := l.body()
	if l.pos >= len(body) {
		return &token.Token{Kind: token.KindEOF, Start: start, End: start}, nil
	}

	c := body[l.pos]
	switch c {
	case '!':
		l.pos++
		return &token.Token{Kind: token.KindBang, Start: start, End: l.pos}, nil
	case '$':
		l.pos++
		return &token.Token{Kind: token.KindDollar, Start: start, End: l.pos}, nil
	case '&':
		l.pos++
		return &token.Token{Kind: token.KindAmp, Start: start, End: l.pos}, nil
	case '(':
		l.pos++
		return &token.Token{Kind: token.KindLeftParen, Start: start, End: l.pos}, nil
	case ')':
		l.pos++
		return &token.Token{Kind: token.KindRightParen, Start: start, End: l.pos}, nil
	case '.':
		if l.byteAt(1) == '.' && l.byteAt(2) == '.' {
			l.pos += 3
			return &token.Token{Kind: token.KindSpread, Start: start, End: l.pos}, nil
		}
		return nil, l.syntaxError(start, "Unexpected character \".\".")
	case ':':
		l.pos++
		return &token.Token{Kind: token.KindColon, Start: start, End: l.pos}, nil
	case '=':
		l.pos++
		return &token.Token{Kind: token.KindEquals, Start: start, End: l.pos}, nil
	case '@':
		l.pos++
		return &token.Token{Kind: token.KindAt, Start: start, End: l.pos}, nil
	case '[':
		l.pos++
		return &token.Token{Kind: token.KindLeftBracket, Start: start, End: l.pos}, nil
	case ']':
		l.pos++
		return &token.Token{Kind: token.KindRightBracket, Start: start, End: l.pos}, nil
	case '{':
		l.pos++
		return &token.Token{Kind: token.KindLeftBrace, Start: start, End: l.pos}, nil
	case '|':
		l.pos++
		return &token.Token{Kind: token.KindPipe, Start: start, End: l.pos}, nil
	case '}':
		l.pos++
		return &token.Token{Kind: token.KindRightBrace, Start: start, End: l.pos}, nil
	case '"':
		return l.readString(start)
	}

	if isNameStart(c) {
		return l.readName(start), nil
	}
	if isDigit(c) || c == '-' {
		return l.readNumber(start)
	}

	return nil, l.syntaxError(start, fmt.Sprintf("Unexpected character %q.", string(c)))
}

func (l *Lexer) readName(start int) *token.Token {
	body := l.body()
	for l.pos < len(body) && isNameContinue(body[l.pos]) {
		l.pos++
	}
	return &token.Token{Kind: token.KindName, Start: start, End: l.pos, Value: string(body[start:l.pos])}
}

func (l *Lexer) readNumber(start int) (*token.Token, error) {
	body := l.body()
	isFloat := false

	if body[l.pos] == '-' {
		l.pos++
	}
	if l.peekByte() == '0' {
		l.pos++
		if isDigit(l.peekByte()) {
			return nil, l.syntaxError(l.pos, "Invalid number, unexpected digit after 0.")
		}
	} else {
		for isDigit(l.peekByte()) {
			l.pos++
		}
	}

	if l.peekByte() == '.' {
		isFloat = true
		l.pos++
		if !isDigit(l.peekByte()) {
			return nil, l.syntaxError(l.pos, "Invalid number, expected digit but got: <EOF>.")
		}
		for isDigit(l.peekByte()) {
			l.pos++
		}
	}

	if c := l.peekByte(); c == 'e' || c == 'E' {
		isFloat = true
		l.pos++
		if c := l.peekByte(); c == '+' || c == '-' {
			l.pos++
		}
		if !isDigit(l.peekByte()) {
			return nil, l.syntaxError(l.pos, "Invalid number, expected digit but got: <EOF>.")
		}
		for isDigit(l.peekByte()) {
			l.pos++
		}
	}

	kind := token.KindInt
	if isFloat {
		kind = token.KindFloat
	}
	return &token.Token{Kind: kind, Start: start, End: l.pos, Value: string(body[start:l.pos])}, nil
}

func (l *Lexer) readString(start int) (*token.Token, error) {
	body := l.body()

	// Block string: """ ... """.
	if l.byteAt(1) == '"' && l.byteAt(2) == '"' {
		l.pos += 3
		blockStart := l.pos
		var raw strings.Builder
		for {
			if l.pos >= len(body) {
				return nil, l.syntaxError(l.pos, "Unterminated string.")
			}
			if body[l.pos] == '"' && l.byteAt(1) == '"' && l.byteAt(2) == '"' {
				l.pos += 3
				return &token.Token{
					Kind:  token.KindBlockString,
					Start: start,
					End:   l.pos,
					Value: blockStringValue(raw.String()),
				}, nil
			}
			if body[l.pos] == '\\' && l.byteAt(1) == '"' && l.byteAt(2) == '"' && l.byteAt(3) == '"' {
				raw.WriteString(`"""`)
				l.pos += 4
				continue
			}
			_ = blockStart
			raw.WriteByte(body[l.pos])
			l.pos++
		}
	}

	l.pos++
	var value strings.Builder
	for {
		if l.pos >= len(body) {
			return nil, l.syntaxError(l.pos, "Unterminated string.")
		}
		c := body[l.pos]
		if c == '"' {
			l.pos++
			return &token.Token{Kind: token.KindString, Start: start, End: l.pos, Value: value.String()}, nil
		}
		if c == '\n' || c == '\r' {
			return nil, l.syntaxError(l.pos, "Unterminated string.")
		}
		if c == '\\' {
			l.pos++
			esc := l.peekByte()
			switch esc {
			case '"':
				value.WriteByte('"')
			case '\\':
				value.WriteByte('\\')
			case '/':
				value.WriteByte('/')
			case 'b':
				value.WriteByte('\b')
			case 'f':
				value.WriteByte('\f')
			case 'n':
				value.WriteByte('\n')
			case 'r':
				value.WriteByte('\r')
			case 't':
				value.WriteByte('\t')
			case 'u':
				if l.pos+4 >= len(body) {
					return nil, l.syntaxError(l.pos, "Invalid character escape sequence.")
				}
				var r rune
				for i := 1; i <= 4; i++ {
					r = r*16 + rune(hexDigit(l.byteAt(i)))
				}
				value.WriteRune(r)
				l.pos += 4
			default:
				return nil, l.syntaxError(l.pos, fmt.Sprintf("Invalid character escape sequence: \\%c.", esc))
			}
			l.pos++
			continue
		}
		value.WriteByte(c)
		l.pos++
	}
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 0
	}
}

// blockStringValue strips the leading/trailing blank lines and common indentation from a block
// string's raw contents, per the GraphQL spec's BlockStringValue() algorithm.
func blockStringValue(raw string) string {
	lines := strings.Split(raw, "\n")

	commonIndent := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		indent := leadingWhitespace(line)
		if indent < len(line) && (commonIndent == -1 || indent < commonIndent) {
			commonIndent = indent
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if commonIndent <= len(lines[i]) {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

func isBlank(s string) bool {
	return leadingWhitespace(s) == len(s)
}

// SyntaxError reports a lexical fault anchored at a byte offset in the source being lexed.
type SyntaxError struct {
	Source  *token.Source
	Pos     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error: %s", e.Message)
}

func (l *Lexer) syntaxError(pos int, message string) error {
	return &SyntaxError{Source: l.source, Pos: pos, Message: message}
}
