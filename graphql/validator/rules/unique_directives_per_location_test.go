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

// graphql-js/src/validation/__tests__/UniqueDirectivesPerLocation-test.js@8c96dc8
var _ = Describe("Validate: Directives Are Unique Per Location", func() {
	expectErrors := func(queryStr string) GomegaAssertion {
		return expectValidationErrors(rules.UniqueDirectivesPerLocation{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	duplicateDirective := func(directiveName string) types.GomegaMatcher {
		return testutil.MatchGraphQLError(
			testutil.KindIs(graphql.KindNonUniqueDirectivesPerLocation),
			testutil.MessageEqual(messages.DuplicateDirectiveMessage(directiveName)),
		)
	}

	It("no directives", func() {
		expectValid(`
      fragment Test on Type {
        field
      }
    `)
	})

	It("unique directives in different locations", func() {
		expectValid(`
      fragment Test on Type @directiveA {
        field @directiveB
      }
    `)
	})

	It("unique directives in same locations", func() {
		expectValid(`
      fragment Test on Type @directiveA @directiveB {
        field @directiveA @directiveB
      }
    `)
	})

	It("same directives in different locations", func() {
		expectValid(`
      fragment Test on Type @directiveA {
        field @directiveA
      }
    `)
	})

	It("same directives in similar locations", func() {
		expectValid(`
      fragment Test on Type {
        field @directive
        field @directive
      }
    `)
	})

	It("duplicate directives in one location", func() {
		expectErrors(`
      fragment Test on Type {
        field @directive @directive
      }
    `).Should(testutil.ConsistOfGraphQLErrors(duplicateDirective("directive")))
	})

	It("many duplicate directives in one location", func() {
		expectErrors(`
      fragment Test on Type {
        field @directive @directive @directive
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			duplicateDirective("directive"),
			duplicateDirective("directive"),
		))
	})

	It("different duplicate directives in one location", func() {
		expectErrors(`
      fragment Test on Type {
        field @directiveA @directiveB @directiveA @directiveB
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			duplicateDirective("directiveA"),
			duplicateDirective("directiveB"),
		))
	})

	It("duplicate directives in many locations", func() {
		expectErrors(`
      fragment Test on Type @directive @directive {
        field @directive @directive
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			duplicateDirective("directive"),
			duplicateDirective("directive"),
		))
	})
})
