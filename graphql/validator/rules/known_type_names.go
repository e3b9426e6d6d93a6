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

// KnownTypeNames implements the "Fragment Spread Type Existence" validation rule: every named
// type referenced by a variable definition or a fragment type condition must be declared by the
// schema.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Fragment-Spread-Type-Existence.
type KnownTypeNames struct{}

// CheckOperation implements validator.OperationRule.
func (rule KnownTypeNames) CheckOperation(
	ctx *validator.ValidationContext,
	operation *ast.OperationDefinition) validator.NextCheckAction {

	for _, varDef := range operation.VariableDefinitions {
		rule.checkTypeName(ctx, varDef.Type)
	}
	return validator.ContinueCheck
}

// CheckFragment implements validator.FragmentRule.
func (rule KnownTypeNames) CheckFragment(
	ctx *validator.ValidationContext,
	fragmentInfo *validator.FragmentInfo,
	fragment *ast.FragmentDefinition) validator.NextCheckAction {

	rule.checkTypeName(ctx, fragment.TypeCondition)
	return validator.ContinueCheck
}

// CheckInlineFragment implements validator.InlineFragmentRule.
func (rule KnownTypeNames) CheckInlineFragment(
	ctx *validator.ValidationContext,
	parentType graphql.Type,
	typeCondition graphql.Type,
	fragment *ast.InlineFragment) validator.NextCheckAction {

	if fragment.HasTypeCondition() {
		rule.checkTypeName(ctx, *fragment.TypeCondition)
	}
	return validator.ContinueCheck
}

// namedTypeNode strips List/NonNull wrappers off typeNode to find the ast.NamedType underneath.
func namedTypeNode(typeNode ast.Type) ast.NamedType {
	for {
		switch node := typeNode.(type) {
		case ast.NamedType:
			return node
		case ast.ListType:
			typeNode = node.ItemType
		case ast.NonNullType:
			typeNode = node.Type
		}
	}
}

func (KnownTypeNames) checkTypeName(ctx *validator.ValidationContext, typeNode ast.Type) {
	named := namedTypeNode(typeNode)
	typeName := named.Name.Value
	if _, ok := ctx.Schema().TypeMap()[typeName]; ok {
		return
	}

	ctx.ReportError(
		graphql.KindFragmentSpreadTypeUnknown,
		messages.UnknownTypeMessage(
			typeName,
			util.SuggestionList(typeName, ctx.ExistingTypeNames()),
		),
		named.Span(),
	)
}
