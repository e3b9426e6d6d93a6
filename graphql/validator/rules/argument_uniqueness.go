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

// UniqueArgumentNames implements the "Argument Uniqueness" validation rule: every argument list
// (on a field or a directive) must name each argument at most once.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Argument-Uniqueness.
type UniqueArgumentNames struct{}

// CheckField implements validator.FieldRule.
func (rule UniqueArgumentNames) CheckField(
	ctx *validator.ValidationContext,
	field *validator.FieldInfo) validator.NextCheckAction {

	rule.checkArgs(ctx, field.Node().Arguments)
	return validator.ContinueCheck
}

// CheckDirective implements validator.DirectiveRule.
func (rule UniqueArgumentNames) CheckDirective(
	ctx *validator.ValidationContext,
	directive *validator.DirectiveInfo) validator.NextCheckAction {

	rule.checkArgs(ctx, directive.Node().Arguments)
	return validator.ContinueCheck
}

func (UniqueArgumentNames) checkArgs(ctx *validator.ValidationContext, args ast.Arguments) {
	if len(args) < 2 {
		return
	}

	seen := make(map[string]ast.Name, len(args))
	for _, arg := range args {
		name := arg.Name
		if first, taken := seen[name.Value]; taken {
			ctx.ReportError(
				graphql.KindNonUniqueArgumentNames,
				messages.DuplicateArgMessage(name.Value),
				name.Span(),
				graphql.Annotation{Span: first.Span()},
			)
			continue
		}
		seen[name.Value] = name
	}
}
