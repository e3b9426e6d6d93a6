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

package testutil

import (
	"github.com/gqlforge/gqlforge/graphql"
	"github.com/gqlforge/gqlforge/graphql/ast"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

// ErrorFieldsMatcher sets up fields of a graphql.Error to match.
type ErrorFieldsMatcher func(gstruct.Fields)

// MessageEqual matches a graphql.Error's Message to equal s exactly.
func MessageEqual(s string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Message"] = gomega.Equal(s)
	}
}

// MessageContainSubstring matches a graphql.Error's Message to contain s.
func MessageContainSubstring(s string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Message"] = gomega.ContainSubstring(s)
	}
}

// PrimarySpanEqual matches a graphql.Error's primary annotation to be anchored at span.
func PrimarySpanEqual(span ast.Span) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Primary"] = gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{
			"Span": gomega.Equal(span),
		})
	}
}

// SecondarySpansConsistOf matches a graphql.Error's secondary annotations to be anchored, in any
// order, at exactly the given spans.
func SecondarySpansConsistOf(spans ...ast.Span) ErrorFieldsMatcher {
	matchers := make([]interface{}, len(spans))
	for i, span := range spans {
		matchers[i] = gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{"Span": gomega.Equal(span)})
	}
	return func(fields gstruct.Fields) {
		fields["Secondary"] = gomega.ConsistOf(matchers...)
	}
}

// KindIs matches a graphql.Error's Kind to equal kind.
func KindIs(kind graphql.Kind) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Kind"] = gomega.Equal(kind)
	}
}

// MatchGraphQLError matches a *graphql.Error against the given field matchers, ignoring any
// field not named by one of them.
//
//	Expect(err).Should(MatchGraphQLError(
//		MessageContainSubstring("Unknown argument"),
//		KindIs(graphql.KindArgumentDoesNotExistOnField),
//	))
func MatchGraphQLError(matchers ...ErrorFieldsMatcher) types.GomegaMatcher {
	fields := gstruct.Fields{}
	for _, matcher := range matchers {
		matcher(fields)
	}
	return gstruct.PointTo(gstruct.MatchFields(gstruct.IgnoreExtras, fields))
}

// ConsistOfGraphQLErrors matches a graphql.Errors collection to consist of exactly the given
// per-error matchers, in any order.
//
//	Expect(errs).Should(ConsistOfGraphQLErrors(
//		MatchGraphQLError(MessageContainSubstring("First error")),
//		MatchGraphQLError(MessageContainSubstring("Second error")),
//	))
func ConsistOfGraphQLErrors(matchers ...interface{}) types.GomegaMatcher {
	return gomega.ConsistOf(matchers...)
}
