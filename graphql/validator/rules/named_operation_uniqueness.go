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

// UniqueOperationNames implements the "Operation Name Uniqueness" validation rule: named
// operations in one document must all have distinct names. Anonymous operations (the shorthand
// form) carry no name and are exempt.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Operation-Name-Uniqueness.
type UniqueOperationNames struct{}

// CheckOperation implements validator.OperationRule. Operation definitions are only ever
// top-level, so there is nothing beneath this node the rule needs to see.
func (UniqueOperationNames) CheckOperation(
	ctx *validator.ValidationContext,
	operation *ast.OperationDefinition) validator.NextCheckAction {

	name := operation.Name
	if name.Value == "" {
		return validator.SkipCheckForChildNodes
	}

	if first, taken := ctx.KnownOperationNames[name.Value]; taken {
		ctx.ReportError(
			graphql.KindNonUniqueOperationNames,
			messages.DuplicateOperationNameMessage(name.Value),
			name.Span(),
			graphql.Annotation{Span: first.Span()},
		)
		return validator.SkipCheckForChildNodes
	}

	ctx.KnownOperationNames[name.Value] = name
	return validator.SkipCheckForChildNodes
}
