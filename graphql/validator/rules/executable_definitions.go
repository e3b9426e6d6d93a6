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
	"github.com/gqlforge/gqlforge/graphql/ast"
	"github.com/gqlforge/gqlforge/graphql/validator"
)

// ExecutableDefinitions implements the "Executable Definitions" validation rule: a document is
// only valid if all of its definitions are operation or fragment definitions.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Executable-Definitions.
//
// ast.Document.Definitions is typed as []ast.Definition, and ast.Definition is implemented only by
// *ast.OperationDefinition and *ast.FragmentDefinition — a type-system definition (schema, scalar,
// directive, ...) cannot reach this validator at all, so the condition this rule polices is
// enforced structurally by the AST rather than checked here. It is kept as a registered rule, with
// its own Kind, so that a caller reading the rule set sees every section of the spec accounted
// for.
type ExecutableDefinitions struct{}

// CheckOperation implements validator.OperationRule.
func (rule ExecutableDefinitions) CheckOperation(
	ctx *validator.ValidationContext,
	operation *ast.OperationDefinition) validator.NextCheckAction {
	return validator.ContinueCheck
}
