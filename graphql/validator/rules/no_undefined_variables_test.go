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

// graphql-js/src/validation/__tests__/NoUndefinedVariables-test.js@8c96dc8
var _ = Describe("Validate: No undefined variables", func() {
	expectErrors := func(queryStr string) GomegaAssertion {
		return expectValidationErrors(rules.NoUndefinedVariables{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	undefVar := func(varName string, opName string) types.GomegaMatcher {
		return testutil.MatchGraphQLError(
			testutil.KindIs(graphql.KindVariableUndefined),
			testutil.MessageEqual(messages.UndefinedVarMessage(varName, opName)),
		)
	}

	It("all variables defined", func() {
		expectValid(`
      query Foo($a: String, $b: String, $c: String) {
        field(a: $a, b: $b, c: $c)
      }
    `)
	})

	It("all variables deeply defined", func() {
		expectValid(`
      query Foo($a: String, $b: String, $c: String) {
        field(a: $a) {
          field(b: $b) {
            field(c: $c)
          }
        }
      }
    `)
	})

	It("all variables deeply in inline fragments defined", func() {
		expectValid(`
      query Foo($a: String, $b: String, $c: String) {
        ... on Type {
          field(a: $a) {
            field(b: $b) {
              ... on Type {
                field(c: $c)
              }
            }
          }
        }
      }
    `)
	})

	It("all variables in fragments deeply defined", func() {
		expectValid(`
      query Foo($a: String, $b: String, $c: String) {
        ...FragA
      }
      fragment FragA on Type {
        field(a: $a) {
          ...FragB
        }
      }
      fragment FragB on Type {
        field(b: $b) {
          ...FragC
        }
      }
      fragment FragC on Type {
        field(c: $c)
      }
    `)
	})

	It("variable within single fragment defined in multiple operations", func() {
		expectValid(`
      query Foo($a: String) {
        ...FragA
      }
      query Bar($a: String) {
        ...FragA
      }
      fragment FragA on Type {
        field(a: $a)
      }
    `)
	})

	It("variable within fragments defined in operations", func() {
		expectValid(`
      query Foo($a: String) {
        ...FragA
      }
      query Bar($b: String) {
        ...FragB
      }
      fragment FragA on Type {
        field(a: $a)
      }
      fragment FragB on Type {
        field(b: $b)
      }
    `)
	})

	It("variable within recursive fragment defined", func() {
		expectValid(`
      query Foo($a: String) {
        ...FragA
      }
      fragment FragA on Type {
        field(a: $a) {
          ...FragA
        }
      }
    `)
	})

	It("variable not defined", func() {
		expectErrors(`
      query Foo($a: String, $b: String, $c: String) {
        field(a: $a, b: $b, c: $c, d: $d)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(undefVar("d", "Foo")))
	})

	It("variable not defined by un-named query", func() {
		expectErrors(`
      {
        field(a: $a)
      }
   `).Should(testutil.ConsistOfGraphQLErrors(undefVar("a", "")))
	})

	It("multiple variables not defined", func() {
		expectErrors(`
      query Foo($b: String) {
        field(a: $a, b: $b, c: $c)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefVar("a", "Foo"),
			undefVar("c", "Foo"),
		))
	})

	It("variable in fragment not defined by un-named query", func() {
		expectErrors(`
      {
        ...FragA
      }
      fragment FragA on Type {
        field(a: $a)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(undefVar("a", "")))
	})

	It("variable in fragment not defined by operation", func() {
		expectErrors(`
      query Foo($a: String, $b: String) {
        ...FragA
      }
      fragment FragA on Type {
        field(a: $a) {
          ...FragB
        }
      }
      fragment FragB on Type {
        field(b: $b) {
          ...FragC
        }
      }
      fragment FragC on Type {
        field(c: $c)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(undefVar("c", "Foo")))
	})

	It("multiple variables in fragments not defined", func() {
		expectErrors(`
      query Foo($b: String) {
        ...FragA
      }
      fragment FragA on Type {
        field(a: $a) {
          ...FragB
        }
      }
      fragment FragB on Type {
        field(b: $b) {
          ...FragC
        }
      }
      fragment FragC on Type {
        field(c: $c)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefVar("a", "Foo"),
			undefVar("c", "Foo"),
		))
	})

	It("single variable in fragment not defined by multiple operations", func() {
		expectErrors(`
      query Foo($a: String) {
        ...FragAB
      }
      query Bar($a: String) {
        ...FragAB
      }
      fragment FragAB on Type {
        field(a: $a, b: $b)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefVar("b", "Foo"),
			undefVar("b", "Bar"),
		))
	})

	It("variables in fragment not defined by multiple operations", func() {
		expectErrors(`
      query Foo($b: String) {
        ...FragAB
      }
      query Bar($a: String) {
        ...FragAB
      }
      fragment FragAB on Type {
        field(a: $a, b: $b)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefVar("a", "Foo"),
			undefVar("b", "Bar"),
		))
	})

	It("variable in fragment used by other operation", func() {
		expectErrors(`
      query Foo($b: String) {
        ...FragA
      }
      query Bar($a: String) {
        ...FragB
      }
      fragment FragA on Type {
        field(a: $a)
      }
      fragment FragB on Type {
        field(b: $b)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefVar("a", "Foo"),
			undefVar("b", "Bar"),
		))
	})

	It("multiple undefined variables produce multiple errors", func() {
		expectErrors(`
      query Foo($b: String) {
        ...FragAB
      }
      query Bar($a: String) {
        ...FragAB
      }
      fragment FragAB on Type {
        field1(a: $a, b: $b)
        ...FragC
        field3(a: $a, b: $b)
      }
      fragment FragC on Type {
        field2(c: $c)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefVar("a", "Foo"),
			undefVar("a", "Foo"),
			undefVar("c", "Foo"),
			undefVar("b", "Bar"),
			undefVar("b", "Bar"),
			undefVar("c", "Bar"),
		))
	})
})
