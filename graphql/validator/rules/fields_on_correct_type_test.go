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

// graphql-js/src/validation/__tests__/FieldsOnCorrectType-test.js@8c96dc8
var _ = Describe("Validate: Fields on correct type", func() {
	expectErrors := func(queryStr string) GomegaAssertion {
		return expectValidationErrors(rules.FieldsOnCorrectType{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	undefinedField := func(
		fieldName string,
		typeName string,
		suggestedTypes []string,
		suggestedFields []string) types.GomegaMatcher {

		return testutil.MatchGraphQLError(
			testutil.KindIs(graphql.KindFieldDoesNotExistOnType),
			testutil.MessageEqual(
				messages.UndefinedFieldMessage(fieldName, typeName, suggestedTypes, suggestedFields),
			),
		)
	}

	It("Object field selection", func() {
		expectValid(`
      fragment objectFieldSelection on Dog {
        __typename
        name
      }
    `)
	})

	It("Aliased object field selection", func() {
		expectValid(`
      fragment aliasedObjectFieldSelection on Dog {
        tn : __typename
        otherName : name
      }
    `)
	})

	It("Interface field selection", func() {
		expectValid(`
      fragment interfaceFieldSelection on Pet {
        __typename
        name
      }
    `)
	})

	It("Aliased interface field selection", func() {
		expectValid(`
      fragment interfaceFieldSelection on Pet {
        otherName : name
      }
    `)
	})

	It("Lying alias selection", func() {
		expectValid(`
      fragment lyingAliasSelection on Dog {
        name : nickname
      }
    `)
	})

	It("Ignores fields on unknown type", func() {
		expectValid(`
      fragment unknownSelection on UnknownType {
        unknownField
      }
    `)
	})

	It("reports errors when type is known again", func() {
		expectErrors(`
      fragment typeKnownAgain on Pet {
        unknown_pet_field {
          ... on Cat {
            unknown_cat_field
          }
        }
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefinedField("unknown_pet_field", "Pet", nil, nil),
			undefinedField("unknown_cat_field", "Cat", nil, nil),
		))
	})

	It("Field not defined on fragment", func() {
		expectErrors(`
      fragment fieldNotDefined on Dog {
        meowVolume
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefinedField("meowVolume", "Dog", nil, []string{"barkVolume"}),
		))
	})

	It("Ignores deeply unknown field", func() {
		expectErrors(`
      fragment deepFieldNotDefined on Dog {
        unknown_field {
          deeper_unknown_field
        }
      }
    `).Should(testutil.ConsistOfGraphQLErrors(undefinedField("unknown_field", "Dog", nil, nil)))
	})

	It("Sub-field not defined", func() {
		expectErrors(`
      fragment subFieldNotDefined on Human {
        pets {
          unknown_field
        }
      }
    `).Should(testutil.ConsistOfGraphQLErrors(undefinedField("unknown_field", "Pet", nil, nil)))
	})

	It("Field not defined on inline fragment", func() {
		expectErrors(`
      fragment fieldNotDefined on Pet {
        ... on Dog {
          meowVolume
        }
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefinedField("meowVolume", "Dog", nil, []string{"barkVolume"}),
		))
	})

	It("Aliased field target not defined", func() {
		expectErrors(`
      fragment aliasedFieldTargetNotDefined on Dog {
        volume : mooVolume
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefinedField("mooVolume", "Dog", nil, []string{"barkVolume"}),
		))
	})

	It("Aliased lying field target not defined", func() {
		expectErrors(`
      fragment aliasedLyingFieldTargetNotDefined on Dog {
        barkVolume : kawVolume
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			undefinedField("kawVolume", "Dog", nil, []string{"barkVolume"}),
		))
	})

	It("Not defined on interface", func() {
		expectErrors(`
      fragment notDefinedOnInterface on Pet {
        tailLength
      }
    `).Should(testutil.ConsistOfGraphQLErrors(undefinedField("tailLength", "Pet", nil, nil)))
	})

	It("Defined on implementors but not on interface", func() {
		expectErrors(`
      fragment definedOnImplementorsButNotInterface on Pet {
        nickname
      }
    `).Should(Or(
			testutil.ConsistOfGraphQLErrors(
				undefinedField("nickname", "Pet", []string{"Dog", "Cat"}, []string{"name"}),
			),
			testutil.ConsistOfGraphQLErrors(
				undefinedField("nickname", "Pet", []string{"Cat", "Dog"}, []string{"name"}),
			),
		))
	})

	It("Meta field selection on union", func() {
		expectValid(`
      fragment directFieldSelectionOnUnion on CatOrDog {
        __typename
      }
    `)
	})

	It("Direct field selection on union", func() {
		expectErrors(`
      fragment directFieldSelectionOnUnion on CatOrDog {
        directField
      }
    `).Should(testutil.ConsistOfGraphQLErrors(undefinedField("directField", "CatOrDog", nil, nil)))
	})

	It("Defined on implementors queried on union", func() {
		expectErrors(`
      fragment definedOnImplementorsQueriedOnUnion on CatOrDog {
        name
      }
    `).Should(Or(
			testutil.ConsistOfGraphQLErrors(
				undefinedField(
					"name",
					"CatOrDog",
					[]string{"Being", "Pet", "Canine", "Dog", "Cat"},
					nil,
				),
			),
			testutil.ConsistOfGraphQLErrors(
				undefinedField(
					"name",
					"CatOrDog",
					[]string{"Being", "Pet", "Canine", "Cat", "Dog"},
					nil,
				),
			),
		))
	})

	It("valid field in inline fragment", func() {
		expectValid(`
      fragment objectFieldSelection on Pet {
        ... on Dog {
          name
        }
        ... {
          name
        }
      }
    `)
	})

	// Also checks graphql/internal/validator/messages_test.go when syncing with
	// FieldsOnCorrectType-test.js from graphql-js.
})
