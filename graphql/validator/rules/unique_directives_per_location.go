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

// UniqueDirectivesPerLocation implements the "Directives Are Unique Per Location" validation rule.
//
// The June 2018 GraphQL specification has no notion of a repeatable directive: the same directive
// name may not appear twice at one location, regardless of what graphql.DirectiveDefinition.Repeatable
// reports.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Directives-Are-Unique-Per-Location.
type UniqueDirectivesPerLocation struct{}

// CheckDirectives implements validator.DirectivesRule.
func (rule UniqueDirectivesPerLocation) CheckDirectives(
	ctx *validator.ValidationContext,
	directives ast.Directives,
	location graphql.DirectiveLocation) validator.NextCheckAction {

	if len(directives) < 2 {
		return validator.ContinueCheck
	}

	knownDirectives := make(map[string]*ast.Directive, len(directives))
	for _, directive := range directives {
		name := directive.Name.Value
		if known, exists := knownDirectives[name]; exists {
			ctx.ReportError(
				graphql.KindNonUniqueDirectivesPerLocation,
				messages.DuplicateDirectiveMessage(name),
				known.Span(),
				graphql.Annotation{Span: directive.Span()},
			)
			continue
		}
		knownDirectives[name] = directive
	}

	return validator.ContinueCheck
}
