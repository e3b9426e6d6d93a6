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
)

// ProvidedRequiredArguments implements the "Required Arguments" validation rule: every non-null argument
// without a default value must be supplied, on both fields and directives.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Required-Arguments.
type ProvidedRequiredArguments struct{}

// CheckField implements validator.FieldRule.
func (ProvidedRequiredArguments) CheckField(
	ctx *validator.ValidationContext,
	field *validator.FieldInfo) validator.NextCheckAction {

	fieldDef := field.Def()
	if fieldDef == nil {
		return validator.ContinueCheck
	}

	for _, missing := range missingRequiredArgs(fieldDef.Args, field.Node().Arguments) {
		ctx.ReportError(
			graphql.KindRequiredArgumentMissing,
			messages.MissingFieldArgMessage(missing.name, field.Name(), graphql.Inspect(missing.argType)),
			field.Node().Span(),
		)
	}

	return validator.ContinueCheck
}

// CheckDirective implements validator.DirectiveRule.
func (ProvidedRequiredArguments) CheckDirective(
	ctx *validator.ValidationContext,
	directive *validator.DirectiveInfo) validator.NextCheckAction {

	directiveDef := directive.Def()
	if directiveDef == nil {
		return validator.ContinueCheck
	}

	for _, missing := range missingRequiredArgs(directiveDef.Args, directive.Node().Arguments) {
		ctx.ReportError(
			graphql.KindRequiredArgumentMissing,
			messages.MissingDirectiveArgMessage(missing.name, directive.Name(), graphql.Inspect(missing.argType)),
			directive.Node().Span(),
		)
	}

	return validator.ContinueCheck
}

type missingArg struct {
	name    string
	argType graphql.Type
}

// missingRequiredArgs reports every argument declared as required in defs that has no
// corresponding entry in supplied.
func missingRequiredArgs(defs graphql.ArgumentDefinitionMap, supplied ast.Arguments) []missingArg {
	if len(defs) == 0 {
		return nil
	}

	given := make(map[string]bool, len(supplied))
	for _, arg := range supplied {
		given[arg.Name.Value] = true
	}

	var missing []missingArg
	for name, def := range defs {
		if graphql.IsRequiredArgument(def) && !given[name] {
			missing = append(missing, missingArg{name: name, argType: def.Type})
		}
	}
	return missing
}
