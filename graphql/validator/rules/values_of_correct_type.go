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
	"github.com/gqlforge/gqlforge/graphql/validator"
)

// ValuesOfCorrectType implements the "Value Type Correctness" validation rule: every literal
// value (argument value, input-object field value, list element, or variable default) must match
// the shape of the input type it occupies. It delegates the actual shape check to
// validator.Coerce, the standalone input coercion component (graphql/validator/coercion.go),
// rather than re-implementing the null/list/enum/scalar/input-object matrix inline — Coerce
// already walks the full literal in one call, so this rule runs it once per value position and
// stops the traversal from descending into that literal's children a second time.
type ValuesOfCorrectType struct{}

// CheckValue implements validator.ValueRule.
func (rule ValuesOfCorrectType) CheckValue(
	ctx *validator.ValidationContext,
	valueType graphql.Type,
	value ast.Value) validator.NextCheckAction {

	for _, coercionErr := range validator.Coerce(valueType, value, nil) {
		// Duplicate input object keys are rules.UniqueInputFieldNames's responsibility; Coerce
		// also detects them (it must, to serve standalone callers that don't run that rule), so
		// skip them here to avoid reporting the same duplicate key twice.
		if coercionErr.Kind == graphql.KindNonUniqueFieldNames {
			continue
		}
		ctx.ReportError(coercionErr.Kind, coercionErr.Message, coercionErr.Span)
	}

	// Coerce already recursed into every list element and object field; don't let the walker
	// visit them again for this rule.
	return validator.SkipCheckForChildNodes
}
