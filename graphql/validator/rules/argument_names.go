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

package rules

import (
	"github.com/gqlforge/gqlforge/graphql"
	"github.com/gqlforge/gqlforge/graphql/ast"
	messages "github.com/gqlforge/gqlforge/graphql/internal/validator"
	"github.com/gqlforge/gqlforge/graphql/validator"
	"github.com/gqlforge/gqlforge/internal/util"
)

// KnownArgumentNames implements the "Argument Names" validation rule: every argument supplied to a
// field or a directive must be declared on that field's or directive's definition.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Argument-Names.
type KnownArgumentNames struct{}

// CheckFieldArgument implements validator.FieldArgumentRule. The traversal engine has already
// resolved argDef by looking the argument up on the field's definition, so a nil argDef here
// (with a known field) means the field simply doesn't declare an argument of that name.
func (KnownArgumentNames) CheckFieldArgument(
	ctx *validator.ValidationContext,
	field *validator.FieldInfo,
	argDef *graphql.ArgumentDefinition,
	arg *ast.Argument) validator.NextCheckAction {

	if argDef != nil || field.Def() == nil {
		return validator.ContinueCheck
	}

	ctx.ReportError(
		graphql.KindArgumentDoesNotExistOnField,
		messages.UnknownArgMessage(
			arg.Name.Value,
			field.Name(),
			field.ParentType().(graphql.NamedType).Name(),
			util.SuggestionList(arg.Name.Value, field.KnownArgNames()),
		),
		arg.Span(),
	)

	return validator.ContinueCheck
}

// CheckDirectiveArgument implements validator.DirectiveArgumentRule.
func (KnownArgumentNames) CheckDirectiveArgument(
	ctx *validator.ValidationContext,
	directive *validator.DirectiveInfo,
	argDef *graphql.ArgumentDefinition,
	arg *ast.Argument) validator.NextCheckAction {

	if argDef != nil || directive.Def() == nil {
		return validator.ContinueCheck
	}

	ctx.ReportError(
		graphql.KindArgumentDoesNotExistOnDirective,
		messages.UnknownDirectiveArgMessage(
			arg.Name.Value,
			directive.Name(),
			util.SuggestionList(arg.Name.Value, directive.KnownArgNames()),
		),
		arg.Span(),
	)

	return validator.ContinueCheck
}
