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

// Package token defines the lexical tokens produced by package lexer and the Source a document is
// lexed from. The AST the parser builds carries byte-offset Spans directly, so a Source is just
// the byte body together with a display name; there is no separate line/column representation —
// error rendering (which would need one) is an external collaborator's concern.
package token

// Kind classifies a lexical token.
type Kind int

// Enumeration of Kind.
const (
	KindSOF Kind = iota + 1
	KindEOF
	KindBang
	KindDollar
	KindAmp
	KindLeftParen
	KindRightParen
	KindSpread
	KindColon
	KindEquals
	KindAt
	KindLeftBracket
	KindRightBracket
	KindLeftBrace
	KindPipe
	KindRightBrace
	KindName
	KindInt
	KindFloat
	KindString
	KindBlockString
)

// String renders kind the way it appears in parser error messages.
func (kind Kind) String() string {
	switch kind {
	case KindSOF:
		return "<SOF>"
	case KindEOF:
		return "<EOF>"
	case KindBang:
		return "!"
	case KindDollar:
		return "$"
	case KindAmp:
		return "&"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindSpread:
		return "..."
	case KindColon:
		return ":"
	case KindEquals:
		return "="
	case KindAt:
		return "@"
	case KindLeftBracket:
		return "["
	case KindRightBracket:
		return "]"
	case KindLeftBrace:
		return "{"
	case KindPipe:
		return "|"
	case KindRightBrace:
		return "}"
	case KindName:
		return "Name"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBlockString:
		return "BlockString"
	default:
		return "<Unknown>"
	}
}

// Token is a single lexical token: its Kind, the raw Value for the kinds that carry one (Name,
// Int, Float, String, BlockString), and the byte-offset span it occupies in its Source.
type Token struct {
	Kind  Kind
	Value string
	Start int
	End   int
}

// Source is a GraphQL document's source text together with a display name used only in error
// messages raised while lexing/parsing (e.g. "unexpected character"); it plays no role in
// validation, which reports by byte span alone.
type Source struct {
	Body []byte
	Name string
}

// NewSource wraps body as a Source, defaulting Name to "GraphQL request" the way the teacher's
// lexer/parser harness does.
func NewSource(body string) *Source {
	return &Source{Body: []byte(body), Name: "GraphQL request"}
}
