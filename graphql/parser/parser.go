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

// Package parser builds an ast.Document from a token.Source by recursive descent over
// package lexer's token stream. It understands only the executable subset of the GraphQL
// grammar (operations, fragments, selections, values, type references) — type-system definitions
// belong to a schema document, which a schema builder external to this module would parse.
package parser

import (
	"fmt"

	"github.com/gqlforge/gqlforge/graphql/ast"
	"github.com/gqlforge/gqlforge/graphql/lexer"
	"github.com/gqlforge/gqlforge/graphql/token"
)

// SyntaxError reports a grammatical fault anchored at a byte span in the source being parsed.
type SyntaxError struct {
	Source  *token.Source
	Span    ast.Span
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error: %s", e.Message)
}

type parser struct {
	source     *token.Source
	lexer      *lexer.Lexer
	tok        *token.Token
	lastTokEnd int
}

// Parse parses source into an executable Document.
func Parse(source *token.Source) (ast.Document, error) {
	p := &parser{source: source, lexer: lexer.New(source)}
	tok, err := p.lexer.Advance()
	if err != nil {
		return ast.Document{}, p.wrap(err)
	}
	p.tok = tok
	return p.parseDocument()
}

// MustParse parses source into a Document, panicking on a syntax error. Intended for call sites
// (mainly tests) that hold a source already known to be syntactically valid.
func MustParse(source *token.Source) ast.Document {
	doc, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return doc
}

func (p *parser) wrap(err error) error {
	if se, ok := err.(*lexer.SyntaxError); ok {
		return &SyntaxError{Source: p.source, Span: ast.Span{Start: se.Pos, End: se.Pos}, Message: se.Message}
	}
	return err
}

func (p *parser) advance() error {
	tok, err := p.lexer.Advance()
	if err != nil {
		return p.wrap(err)
	}
	p.lastTokEnd = p.tok.End
	p.tok = tok
	return nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{
		Source:  p.source,
		Span:    ast.Span{Start: p.tok.Start, End: p.tok.End},
		Message: fmt.Sprintf(format, args...),
	}
}

func (p *parser) expect(kind token.Kind) (*token.Token, error) {
	if p.tok.Kind != kind {
		return nil, p.errorf("Expected %s, found %s.", kind, p.describeToken())
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

func (p *parser) describeToken() string {
	if p.tok.Kind == token.KindName || p.tok.Kind == token.KindInt || p.tok.Kind == token.KindFloat ||
		p.tok.Kind == token.KindString || p.tok.Kind == token.KindBlockString {
		return fmt.Sprintf("%s %q", p.tok.Kind, p.tok.Value)
	}
	return p.tok.Kind.String()
}

func (p *parser) skip(kind token.Kind) (bool, error) {
	if p.tok.Kind != kind {
		return false, nil
	}
	return true, p.advance()
}

func (p *parser) parseName() (ast.Name, error) {
	tok, err := p.expect(token.KindName)
	if err != nil {
		return ast.Name{}, err
	}
	return ast.Name{Value: tok.Value, Loc: ast.Span{Start: tok.Start, End: tok.End}}, nil
}

//===----------------------------------------------------------------------------------------====//
// Document
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseDocument() (ast.Document, error) {
	start := p.tok.Start
	var defs []ast.Definition
	for p.tok.Kind != token.KindEOF {
		def, err := p.parseDefinition()
		if err != nil {
			return ast.Document{}, err
		}
		defs = append(defs, def)
	}
	return ast.Document{Definitions: defs, Loc: ast.Span{Start: start, End: p.tok.End}}, nil
}

func (p *parser) parseDefinition() (ast.Definition, error) {
	if p.tok.Kind == token.KindLeftBrace {
		return p.parseOperationDefinition()
	}
	if p.tok.Kind == token.KindName {
		switch p.tok.Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		}
	}
	return nil, p.errorf("Unexpected %s.", p.describeToken())
}

//===----------------------------------------------------------------------------------------====//
// Operations
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	start := p.tok.Start

	if p.tok.Kind == token.KindLeftBrace {
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			Operation:    ast.Query,
			Shorthand:    true,
			SelectionSet: selectionSet,
			Loc:          ast.Span{Start: start, End: selectionSet.Loc.End},
		}, nil
	}

	var opType ast.OperationType
	switch p.tok.Value {
	case "query":
		opType = ast.Query
	case "mutation":
		opType = ast.Mutation
	case "subscription":
		opType = ast.Subscription
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var name ast.Name
	if p.tok.Kind == token.KindName {
		n, err := p.parseName()
		if err != nil {
			return nil, err
		}
		name = n
	}

	varDefs, err := p.parseVariableDefinitions()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		Operation:           opType,
		Name:                name,
		VariableDefinitions: varDefs,
		Directives:          directives,
		SelectionSet:        selectionSet,
		Loc:                 ast.Span{Start: start, End: selectionSet.Loc.End},
	}, nil
}

func (p *parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if p.tok.Kind != token.KindLeftParen {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var defs []*ast.VariableDefinition
	for p.tok.Kind != token.KindRightParen {
		def, err := p.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if _, err := p.expect(token.KindRightParen); err != nil {
		return nil, err
	}
	return defs, nil
}

func (p *parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.tok.Start

	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}
	ttype, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	if ok, err := p.skip(token.KindEquals); err != nil {
		return nil, err
	} else if ok {
		v, err := p.parseValueLiteral(true)
		if err != nil {
			return nil, err
		}
		defaultValue = v
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	return &ast.VariableDefinition{
		Variable:     variable,
		Type:         ttype,
		DefaultValue: defaultValue,
		Directives:   directives,
		Loc:          ast.Span{Start: start, End: p.prevEnd()},
	}, nil
}

// prevEnd reports the end of the last consumed token — the natural closing position for a node
// whose grammar production ends at that token.
func (p *parser) prevEnd() int { return p.lastTokEnd }

func (p *parser) parseVariable() (ast.Variable, error) {
	start := p.tok.Start
	if _, err := p.expect(token.KindDollar); err != nil {
		return ast.Variable{}, err
	}
	name, err := p.parseName()
	if err != nil {
		return ast.Variable{}, err
	}
	return ast.Variable{Name: name, Loc: ast.Span{Start: start, End: name.Loc.End}}, nil
}

//===----------------------------------------------------------------------------------------====//
// Selection sets
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseSelectionSet() (ast.SelectionSet, error) {
	start := p.tok.Start
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return ast.SelectionSet{}, err
	}

	var selections []ast.Selection
	for p.tok.Kind != token.KindRightBrace {
		sel, err := p.parseSelection()
		if err != nil {
			return ast.SelectionSet{}, err
		}
		selections = append(selections, sel)
	}

	end, err := p.expect(token.KindRightBrace)
	if err != nil {
		return ast.SelectionSet{}, err
	}

	return ast.SelectionSet{Selections: selections, Loc: ast.Span{Start: start, End: end.End}}, nil
}

func (p *parser) parseSelection() (ast.Selection, error) {
	if p.tok.Kind == token.KindSpread {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *parser) parseField() (*ast.Field, error) {
	start := p.tok.Start

	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias, name ast.Name
	if ok, err := p.skip(token.KindColon); err != nil {
		return nil, err
	} else if ok {
		alias = nameOrAlias
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	} else {
		name = nameOrAlias
	}

	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	var selectionSet ast.SelectionSet
	if p.tok.Kind == token.KindLeftBrace {
		selectionSet, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}

	return &ast.Field{
		Alias:        alias,
		Name:         name,
		Arguments:    args,
		Directives:   directives,
		SelectionSet: selectionSet,
		Loc:          ast.Span{Start: start, End: p.prevEnd()},
	}, nil
}

func (p *parser) parseArguments() (ast.Arguments, error) {
	if p.tok.Kind != token.KindLeftParen {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var args ast.Arguments
	for p.tok.Kind != token.KindRightParen {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(token.KindRightParen); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parseArgument() (*ast.Argument, error) {
	start := p.tok.Start
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(false)
	if err != nil {
		return nil, err
	}
	return &ast.Argument{Name: name, Value: value, Loc: ast.Span{Start: start, End: p.prevEnd()}}, nil
}

//===----------------------------------------------------------------------------------------====//
// Fragments
//===----------------------------------------------------------------------------------------====//

// parseFragment parses "..." followed by either a FragmentSpread or an InlineFragment.
func (p *parser) parseFragment() (ast.Selection, error) {
	start := p.tok.Start
	if _, err := p.expect(token.KindSpread); err != nil {
		return nil, err
	}

	if p.tok.Kind == token.KindName && p.tok.Value != "on" {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{
			Name:       name,
			Directives: directives,
			Loc:        ast.Span{Start: start, End: p.prevEnd()},
		}, nil
	}

	var typeCondition *ast.NamedType
	if p.tok.Kind == token.KindName && p.tok.Value == "on" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		typeCondition = &named
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.InlineFragment{
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           ast.Span{Start: start, End: selectionSet.Loc.End},
	}, nil
}

func (p *parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.tok.Start
	if err := p.advance(); err != nil { // "fragment"
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == token.KindName && p.tok.Value != "on" {
		return nil, p.errorf("Expected \"on\", found %s.", p.describeToken())
	}
	if err := p.advance(); err != nil { // "on"
		return nil, err
	}

	typeCondition, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.FragmentDefinition{
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           ast.Span{Start: start, End: selectionSet.Loc.End},
	}, nil
}

//===----------------------------------------------------------------------------------------====//
// Directives
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseDirectives() (ast.Directives, error) {
	var directives ast.Directives
	for p.tok.Kind == token.KindAt {
		d, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	return directives, nil
}

func (p *parser) parseDirective() (*ast.Directive, error) {
	start := p.tok.Start
	if err := p.advance(); err != nil { // "@"
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return &ast.Directive{Name: name, Arguments: args, Loc: ast.Span{Start: start, End: p.prevEnd()}}, nil
}

//===----------------------------------------------------------------------------------------====//
// Type references
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseType() (ast.Type, error) {
	start := p.tok.Start

	var ttype ast.NullableType
	if p.tok.Kind == token.KindLeftBracket {
		if err := p.advance(); err != nil {
			return nil, err
		}
		itemType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KindRightBracket); err != nil {
			return nil, err
		}
		ttype = ast.ListType{ItemType: itemType, Loc: ast.Span{Start: start, End: p.prevEnd()}}
	} else {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		ttype = named
	}

	if ok, err := p.skip(token.KindBang); err != nil {
		return nil, err
	} else if ok {
		return ast.NonNullType{Type: ttype, Loc: ast.Span{Start: start, End: p.prevEnd()}}, nil
	}
	return ttype, nil
}

func (p *parser) parseNamedType() (ast.NamedType, error) {
	name, err := p.parseName()
	if err != nil {
		return ast.NamedType{}, err
	}
	return ast.NamedType{Name: name, Loc: name.Loc}, nil
}

//===----------------------------------------------------------------------------------------====//
// Values
//===----------------------------------------------------------------------------------------====//

func (p *parser) parseValueLiteral(constOnly bool) (ast.Value, error) {
	start := p.tok.Start
	switch p.tok.Kind {
	case token.KindLeftBracket:
		return p.parseList(constOnly)
	case token.KindLeftBrace:
		return p.parseObject(constOnly)
	case token.KindInt:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.IntValue{Raw: tok.Value, Loc: ast.Span{Start: start, End: tok.End}}, nil
	case token.KindFloat:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.FloatValue{Raw: tok.Value, Loc: ast.Span{Start: start, End: tok.End}}, nil
	case token.KindString, token.KindBlockString:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.StringValue{Value: tok.Value, Loc: ast.Span{Start: start, End: tok.End}}, nil
	case token.KindName:
		switch p.tok.Value {
		case "true":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.BooleanValue{Value: true, Loc: ast.Span{Start: start, End: p.prevEnd()}}, nil
		case "false":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.BooleanValue{Value: false, Loc: ast.Span{Start: start, End: p.prevEnd()}}, nil
		case "null":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.NullValue{Loc: ast.Span{Start: start, End: p.prevEnd()}}, nil
		default:
			tok := p.tok
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.EnumValue{Value: tok.Value, Loc: ast.Span{Start: start, End: tok.End}}, nil
		}
	case token.KindDollar:
		if constOnly {
			return nil, p.errorf("Unexpected %s.", p.describeToken())
		}
		return p.parseVariable()
	}
	return nil, p.errorf("Unexpected %s.", p.describeToken())
}

func (p *parser) parseList(constOnly bool) (ast.Value, error) {
	start := p.tok.Start
	if err := p.advance(); err != nil { // "["
		return nil, err
	}
	var values []ast.Value
	for p.tok.Kind != token.KindRightBracket {
		v, err := p.parseValueLiteral(constOnly)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	end, err := p.expect(token.KindRightBracket)
	if err != nil {
		return nil, err
	}
	return ast.ListValue{Values: values, Loc: ast.Span{Start: start, End: end.End}}, nil
}

func (p *parser) parseObject(constOnly bool) (ast.Value, error) {
	start := p.tok.Start
	if err := p.advance(); err != nil { // "{"
		return nil, err
	}
	var fields []*ast.ObjectField
	for p.tok.Kind != token.KindRightBrace {
		f, err := p.parseObjectField(constOnly)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	end, err := p.expect(token.KindRightBrace)
	if err != nil {
		return nil, err
	}
	return ast.ObjectValue{Fields: fields, Loc: ast.Span{Start: start, End: end.End}}, nil
}

func (p *parser) parseObjectField(constOnly bool) (*ast.ObjectField, error) {
	start := p.tok.Start
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(constOnly)
	if err != nil {
		return nil, err
	}
	return &ast.ObjectField{Name: name, Value: value, Loc: ast.Span{Start: start, End: p.prevEnd()}}, nil
}
