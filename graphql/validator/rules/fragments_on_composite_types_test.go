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

package rules_test

import (
	"github.com/gqlforge/gqlforge/graphql"
	messages "github.com/gqlforge/gqlforge/graphql/internal/validator"
	"github.com/gqlforge/gqlforge/graphql/validator/rules"
	"github.com/gqlforge/gqlforge/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// graphql-js/src/validation/__tests__/FragmentsOnCompositeTypes-test.js@8c96dc8
var _ = Describe("Validate: Fragments on composite types", func() {
	expectErrors := func(queryStr string) GomegaAssertion {
		return expectValidationErrors(rules.FragmentsOnCompositeTypes{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	fragmentOnNonComposite := func(fragName string, typeName string) types.GomegaMatcher {
		return testutil.MatchGraphQLError(
			testutil.KindIs(graphql.KindFragmentDefinitionTargetTypeNotComposite),
			testutil.MessageEqual(messages.FragmentOnNonCompositeErrorMessage(fragName, typeName)),
		)
	}

	It("object is valid fragment type", func() {
		expectValid(`
      fragment validFragment on Dog {
        barks
      }
    `)
	})

	It("interface is valid fragment type", func() {
		expectValid(`
      fragment validFragment on Pet {
        name
      }
    `)
	})

	It("object is valid inline fragment type", func() {
		expectValid(`
      fragment validFragment on Pet {
        ... on Dog {
          barks
        }
      }
    `)
	})

	It("inline fragment without type is valid", func() {
		expectValid(`
      fragment validFragment on Pet {
        ... {
          name
        }
      }
    `)
	})

	It("union is valid fragment type", func() {
		expectValid(`
      fragment validFragment on CatOrDog {
        __typename
      }
    `)
	})

	It("scalar is invalid fragment type", func() {
		expectErrors(`
      fragment scalarFragment on Boolean {
        bad
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fragmentOnNonComposite("scalarFragment", "Boolean"),
		))
	})

	It("enum is invalid fragment type", func() {
		expectErrors(`
      fragment scalarFragment on FurColor {
        bad
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fragmentOnNonComposite("scalarFragment", "FurColor"),
		))
	})

	It("input object is invalid fragment type", func() {
		expectErrors(`
      fragment inputFragment on ComplexInput {
        stringField
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fragmentOnNonComposite("inputFragment", "ComplexInput"),
		))
	})

	It("scalar is invalid inline fragment type", func() {
		expectErrors(`
      fragment invalidFragment on Pet {
        ... on String {
          barks
        }
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			testutil.MatchGraphQLError(
				testutil.KindIs(graphql.KindInlineFragmentTargetTypeNotComposite),
				testutil.MessageEqual(messages.InlineFragmentOnNonCompositeErrorMessage("String")),
			),
		))
	})
})
