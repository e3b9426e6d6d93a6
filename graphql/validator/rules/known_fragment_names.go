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

// KnownFragmentNames implements the "Fragment spread target defined" validation rule.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Fragment-spread-target-defined.
type KnownFragmentNames struct{}

// CheckFragmentSpread implements validator.FragmentSpreadRule.
func (rule KnownFragmentNames) CheckFragmentSpread(
	ctx *validator.ValidationContext,
	parentType graphql.Type,
	fragmentInfo *validator.FragmentInfo,
	fragmentSpread *ast.FragmentSpread) validator.NextCheckAction {

	// Fragment spreads must refer to fragments defined somewhere in the document.
	if fragmentInfo == nil {
		fragName := fragmentSpread.Name.Value
		ctx.ReportError(
			graphql.KindFragmentSpreadTargetNotDefined,
			messages.UnknownFragmentMessage(fragName),
			fragmentSpread.Name.Span(),
		)
	}

	return validator.ContinueCheck
}
