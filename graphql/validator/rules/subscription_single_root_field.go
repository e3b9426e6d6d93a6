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

// SingleFieldSubscriptions implements the "Single root field" validation rule: a subscription
// operation's top-level selection set must contain exactly one field.
//
// This does not run the full CollectFields algorithm (expanding fragments, evaluating
// @skip/@include) before counting root selections — it counts syntactic top-level selections,
// matching the reference implementations' behavior rather than a literal reading of the spec.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Single-root-field.
type SingleFieldSubscriptions struct{}

// CheckOperation implements validator.OperationRule.
func (SingleFieldSubscriptions) CheckOperation(
	ctx *validator.ValidationContext,
	operation *ast.OperationDefinition) validator.NextCheckAction {

	if operation.Operation != ast.Subscription {
		return validator.ContinueCheck
	}

	roots := operation.SelectionSet.Selections
	if len(roots) == 1 {
		return validator.ContinueCheck
	}

	var name string
	if operation.HasName() {
		name = operation.Name.Value
	}

	var extraRoots []graphql.Annotation
	if len(roots) > 1 {
		for _, extra := range roots[1:] {
			extraRoots = append(extraRoots, graphql.Annotation{Span: extra.Span()})
		}
	}

	ctx.ReportError(
		graphql.KindSubscriptionRootNotSingleField,
		messages.SingleFieldOnlyMessage(name),
		operation.Span(),
		extraRoots...,
	)

	return validator.SkipCheckForChildNodes
}
