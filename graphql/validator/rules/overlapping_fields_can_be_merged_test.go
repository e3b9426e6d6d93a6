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

// graphql-js/src/validation/__tests__/OverlappingFieldsCanBeMerged-test.js@8c96dc8
var _ = Describe("Validate: Overlapping fields can be merged", func() {
	expectErrors := func(queryStr string) GomegaAssertion {
		return expectValidationErrors(rules.OverlappingFieldsCanBeMerged{}, queryStr)
	}

	expectValid := func(queryStr string) {
		expectErrors(queryStr).Should(Equal(graphql.NoErrors()))
	}

	expectErrorsWithSchema := func(schema graphql.Schema, queryStr string) GomegaAssertion {
		return expectValidationErrorsWithSchema(
			schema,
			rules.OverlappingFieldsCanBeMerged{},
			queryStr,
		)
	}

	expectValidWithSchema := func(schema graphql.Schema, queryStr string) {
		expectErrorsWithSchema(schema, queryStr).Should(Equal(graphql.NoErrors()))
	}

	fieldsConflictMessage := func(responseKey string, reason interface{}) string {
		return messages.FieldsConflictMessage(&messages.FieldConflictReason{
			ResponseKey:              responseKey,
			MessageOrSubFieldReasons: reason,
		})
	}

	fieldsConflict := func(responseKey string, reason interface{}) types.GomegaMatcher {
		return testutil.MatchGraphQLError(
			testutil.KindIs(graphql.KindFieldSelectionsDoNotMerge),
			testutil.MessageEqual(fieldsConflictMessage(responseKey, reason)),
		)
	}

	It("unique fields", func() {
		expectValid(`
      fragment uniqueFields on Dog {
        name
        nickname
      }
    `)
	})

	It("identical fields", func() {
		expectValid(`
      fragment mergeIdenticalFields on Dog {
        name
        name
      }
    `)
	})

	It("identical fields with identical args", func() {
		expectValid(`
      fragment mergeIdenticalFieldsWithIdenticalArgs on Dog {
        doesKnowCommand(dogCommand: SIT)
        doesKnowCommand(dogCommand: SIT)
      }
    `)
	})

	It("identical fields with identical directives", func() {
		expectValid(`
      fragment mergeSameFieldsWithSameDirectives on Dog {
        name @include(if: true)
        name @include(if: true)
      }
    `)
	})

	It("different args with different aliases", func() {
		expectValid(`
      fragment differentArgsWithDifferentAliases on Dog {
        knowsSit: doesKnowCommand(dogCommand: SIT)
        knowsDown: doesKnowCommand(dogCommand: DOWN)
      }
    `)
	})

	It("different directives with different aliases", func() {
		expectValid(`
      fragment differentDirectivesWithDifferentAliases on Dog {
        nameIfTrue: name @include(if: true)
        nameIfFalse: name @include(if: false)
      }
    `)
	})

	It("different skip/include directives accepted", func() {
		// Note: Differing skip/include directives don"t create an ambiguous return value and are
		// acceptable in conditions where differing runtime values may have the same desired effect of
		// including or skipping a field.
		expectValid(`
      fragment differentDirectivesWithDifferentAliases on Dog {
        name @include(if: true)
        name @include(if: false)
      }
    `)
	})

	It("Same aliases with different field targets", func() {
		expectErrors(`
      fragment sameAliasesWithDifferentFieldTargets on Dog {
        fido: name
        fido: nickname
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("fido", "name and nickname are different fields"),
		))
	})

	It("Same aliases allowed on non-overlapping fields", func() {
		// This is valid since no object can be both a "Dog" and a "Cat", thus
		// these fields can never overlap.
		expectValid(`
      fragment sameAliasesWithDifferentFieldTargets on Pet {
        ... on Dog {
          name
        }
        ... on Cat {
          name: nickname
        }
      }
    `)
	})

	It("Alias masking direct field access", func() {
		expectErrors(`
      fragment aliasMaskingDirectFieldAccess on Dog {
        name: nickname
        name
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("name", "nickname and name are different fields"),
		))
	})

	It("different args, second adds an argument", func() {
		expectErrors(`
      fragment conflictingArgs on Dog {
        doesKnowCommand
        doesKnowCommand(dogCommand: HEEL)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("doesKnowCommand", "they have differing arguments"),
		))
	})

	It("different args, second missing an argument", func() {
		expectErrors(`
      fragment conflictingArgs on Dog {
        doesKnowCommand(dogCommand: SIT)
        doesKnowCommand
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("doesKnowCommand", "they have differing arguments"),
		))
	})

	It("conflicting args", func() {
		expectErrors(`
      fragment conflictingArgs on Dog {
        doesKnowCommand(dogCommand: SIT)
        doesKnowCommand(dogCommand: HEEL)
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("doesKnowCommand", "they have differing arguments"),
		))
	})

	It("allows different args where no conflict is possible", func() {
		// This is valid since no object can be both a "Dog" and a "Cat", thus
		// these fields can never overlap.
		expectValid(`
      fragment conflictingArgs on Pet {
        ... on Dog {
          name(surname: true)
        }
        ... on Cat {
          name
        }
      }
    `)
	})

	It("encounters conflict in fragments", func() {
		expectErrors(`
      {
        ...A
        ...B
      }
      fragment A on Type {
        x: a
      }
      fragment B on Type {
        x: b
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("x", "a and b are different fields"),
		))
	})

	It("reports each conflict once", func() {
		expectErrors(`
      {
        f1 {
          ...A
          ...B
        }
        f2 {
          ...B
          ...A
        }
        f3 {
          ...A
          ...B
          x: c
        }
      }
      fragment A on Type {
        x: a
      }
      fragment B on Type {
        x: b
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("x", "a and b are different fields"),
			fieldsConflict("x", "c and a are different fields"),
			fieldsConflict("x", "c and b are different fields"),
		))
	})

	It("deep conflict", func() {
		expectErrors(`
      {
        field {
          x: a
        },
        field {
          x: b
        }
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("field", []*messages.FieldConflictReason{
				{
					ResponseKey:              "x",
					MessageOrSubFieldReasons: "a and b are different fields",
				},
			}),
		))
	})

	It("deep conflict with multiple issues", func() {
		expectErrors(`
      {
        field {
          x: a
          y: c
        },
        field {
          x: b
          y: d
        }
      }
    `).Should(Or(
			testutil.ConsistOfGraphQLErrors(
				fieldsConflict("field", []*messages.FieldConflictReason{
					{
						ResponseKey:              "x",
						MessageOrSubFieldReasons: "a and b are different fields",
					},
					{
						ResponseKey:              "y",
						MessageOrSubFieldReasons: "c and d are different fields",
					},
				}),
			),
			testutil.ConsistOfGraphQLErrors(
				fieldsConflict("field", []*messages.FieldConflictReason{
					{
						ResponseKey:              "y",
						MessageOrSubFieldReasons: "c and d are different fields",
					},
					{
						ResponseKey:              "x",
						MessageOrSubFieldReasons: "a and b are different fields",
					},
				}),
			),
		))
	})

	It("very deep conflict", func() {
		expectErrors(`
      {
        field {
          deepField {
            x: a
          }
        },
        field {
          deepField {
            x: b
          }
        }
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("field", []*messages.FieldConflictReason{
				{
					ResponseKey: "deepField",
					MessageOrSubFieldReasons: []*messages.FieldConflictReason{
						{
							ResponseKey:              "x",
							MessageOrSubFieldReasons: "a and b are different fields",
						},
					},
				},
			}),
		))
	})

	It("reports deep conflict to nearest common ancestor", func() {
		expectErrors(`
      {
        field {
          deepField {
            x: a
          }
          deepField {
            x: b
          }
        },
        field {
          deepField {
            y
          }
        }
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("deepField", []*messages.FieldConflictReason{
				{
					ResponseKey:              "x",
					MessageOrSubFieldReasons: "a and b are different fields",
				},
			}),
		))
	})

	It("reports deep conflict to nearest common ancestor in fragments", func() {
		expectErrors(`
      {
        field {
          ...F
        }
        field {
          ...F
        }
      }
      fragment F on T {
        deepField {
          deeperField {
            x: a
          }
          deeperField {
            x: b
          }
        },
        deepField {
          deeperField {
            y
          }
        }
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("deeperField", []*messages.FieldConflictReason{
				{
					ResponseKey:              "x",
					MessageOrSubFieldReasons: "a and b are different fields",
				},
			}),
		))
	})

	It("reports deep conflict in nested fragments", func() {
		expectErrors(`
      {
        field {
          ...F
        }
        field {
          ...I
        }
      }
      fragment F on T {
        x: a
        ...G
      }
      fragment G on T {
        y: c
      }
      fragment I on T {
        y: d
        ...J
      }
      fragment J on T {
        x: b
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("field", []*messages.FieldConflictReason{
				{
					ResponseKey:              "x",
					MessageOrSubFieldReasons: "a and b are different fields",
				},
				{
					ResponseKey:              "y",
					MessageOrSubFieldReasons: "c and d are different fields",
				},
			}),
		))
	})

	It("ignores unknown fragments", func() {
		expectValid(`
      {
        field
        ...Unknown
        ...Known
      }

      fragment Known on T {
        field
        ...OtherUnknown
      }
    `)
	})

	Describe("return types must be unambiguous", func() {
		var schema graphql.Schema

		BeforeEach(func() {
			someBoxFields := graphql.FieldDefinitionMap{}
			SomeBox := graphql.NewInterface(graphql.InterfaceConfig{
				Name:   "SomeBox",
				Fields: someBoxFields,
			})

			intBoxFields := graphql.FieldDefinitionMap{}
			IntBox := graphql.NewObject(graphql.ObjectConfig{
				Name:       "IntBox",
				Fields:     intBoxFields,
				Interfaces: []graphql.Interface{SomeBox},
			})

			stringBoxFields := graphql.FieldDefinitionMap{}
			StringBox := graphql.NewObject(graphql.ObjectConfig{
				Name:       "StringBox",
				Fields:     stringBoxFields,
				Interfaces: []graphql.Interface{SomeBox},
			})

			someBoxFields["deepBox"] = &graphql.FieldDefinition{Name: "deepBox", Type: SomeBox}
			someBoxFields["unrelatedField"] = &graphql.FieldDefinition{
				Name: "unrelatedField",
				Type: graphql.String(),
			}

			intBoxFields["scalar"] = &graphql.FieldDefinition{Name: "scalar", Type: graphql.Int()}
			intBoxFields["deepBox"] = &graphql.FieldDefinition{Name: "deepBox", Type: IntBox}
			intBoxFields["unrelatedField"] = &graphql.FieldDefinition{
				Name: "unrelatedField",
				Type: graphql.String(),
			}
			intBoxFields["listStringBox"] = &graphql.FieldDefinition{
				Name: "listStringBox",
				Type: graphql.NewList(StringBox),
			}
			intBoxFields["stringBox"] = &graphql.FieldDefinition{Name: "stringBox", Type: StringBox}
			intBoxFields["intBox"] = &graphql.FieldDefinition{Name: "intBox", Type: IntBox}

			stringBoxFields["scalar"] = &graphql.FieldDefinition{Name: "scalar", Type: graphql.String()}
			stringBoxFields["deepBox"] = &graphql.FieldDefinition{Name: "deepBox", Type: StringBox}
			stringBoxFields["unrelatedField"] = &graphql.FieldDefinition{
				Name: "unrelatedField",
				Type: graphql.String(),
			}
			stringBoxFields["listStringBox"] = &graphql.FieldDefinition{
				Name: "listStringBox",
				Type: graphql.NewList(StringBox),
			}
			stringBoxFields["stringBox"] = &graphql.FieldDefinition{Name: "stringBox", Type: StringBox}
			stringBoxFields["intBox"] = &graphql.FieldDefinition{Name: "intBox", Type: IntBox}

			NonNullStringBox1 := graphql.NewInterface(graphql.InterfaceConfig{
				Name: "NonNullStringBox1",
				Fields: graphql.FieldDefinitionMap{
					"scalar": {Name: "scalar", Type: graphql.NewNonNull(graphql.String())},
				},
			})

			NonNullStringBox1Impl := graphql.NewObject(graphql.ObjectConfig{
				Name: "NonNullStringBox1Impl",
				Fields: graphql.FieldDefinitionMap{
					"scalar":         {Name: "scalar", Type: graphql.NewNonNull(graphql.String())},
					"unrelatedField": {Name: "unrelatedField", Type: graphql.String()},
					"deepBox":        {Name: "deepBox", Type: SomeBox},
				},
				Interfaces: []graphql.Interface{SomeBox, NonNullStringBox1},
			})

			NonNullStringBox2 := graphql.NewInterface(graphql.InterfaceConfig{
				Name: "NonNullStringBox2",
				Fields: graphql.FieldDefinitionMap{
					"scalar": {Name: "scalar", Type: graphql.NewNonNull(graphql.String())},
				},
			})

			NonNullStringBox2Impl := graphql.NewObject(graphql.ObjectConfig{
				Name: "NonNullStringBox2Impl",
				Fields: graphql.FieldDefinitionMap{
					"scalar":         {Name: "scalar", Type: graphql.NewNonNull(graphql.String())},
					"unrelatedField": {Name: "unrelatedField", Type: graphql.String()},
					"deepBox":        {Name: "deepBox", Type: SomeBox},
				},
				Interfaces: []graphql.Interface{SomeBox, NonNullStringBox2},
			})

			Node := graphql.NewObject(graphql.ObjectConfig{
				Name: "Node",
				Fields: graphql.FieldDefinitionMap{
					"id":   {Name: "id", Type: graphql.ID()},
					"name": {Name: "name", Type: graphql.String()},
				},
			})

			Edge := graphql.NewObject(graphql.ObjectConfig{
				Name: "Edge",
				Fields: graphql.FieldDefinitionMap{
					"node": {Name: "node", Type: Node},
				},
			})

			Connection := graphql.NewObject(graphql.ObjectConfig{
				Name: "Connection",
				Fields: graphql.FieldDefinitionMap{
					"edges": {Name: "edges", Type: graphql.NewList(Edge)},
				},
			})

			schema = graphql.NewSchema(graphql.SchemaConfig{
				Query: graphql.NewObject(graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.FieldDefinitionMap{
						"someBox":    {Name: "someBox", Type: SomeBox},
						"connection": {Name: "connection", Type: Connection},
						"a":          {Name: "a", Type: graphql.String()},
					},
				}),
				Types: []graphql.NamedType{
					IntBox,
					StringBox,
					NonNullStringBox1Impl,
					NonNullStringBox2Impl,
				},
			})
		})

		It("conflicting return types which potentially overlap", func() {
			// This is invalid since an object could potentially be both the Object type IntBox and the
			// interface type NonNullStringBox1. While that condition does not exist in the current
			// schema, the schema could expand in the future to allow this. Thus It is invalid.
			expectErrorsWithSchema(
				schema,
				`
          {
            someBox {
              ...on IntBox {
                scalar
              }
              ...on NonNullStringBox1 {
                scalar
              }
            }
          }
        `,
			).Should(Or(
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("scalar", "they return conflicting types Int and String!"),
				),
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("scalar", "they return conflicting types String! and Int"),
				),
			))
		})

		It("compatible return shapes on different return types", func() {
			// In this case `deepBox` returns `SomeBox` in the first usage, and `StringBox` in the second
			// usage. These return types are not the same! however this is valid because the return
			// *shapes* are compatible.
			expectValidWithSchema(
				schema,
				`
          {
            someBox {
              ... on SomeBox {
                deepBox {
                  unrelatedField
                }
              }
              ... on StringBox {
                deepBox {
                  unrelatedField
                }
              }
            }
          }
        `,
			)
		})

		It("disallows differing return types despite no overlap", func() {
			expectErrorsWithSchema(
				schema,
				`
          {
            someBox {
              ... on IntBox {
                scalar
              }
              ... on StringBox {
                scalar
              }
            }
          }
        `,
			).Should(Or(
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("scalar", "they return conflicting types Int and String"),
				),
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("scalar", "they return conflicting types String and Int"),
				),
			))
		})

		It("reports correctly when a non-exclusive follows an exclusive", func() {
			expectErrorsWithSchema(
				schema,
				`
          {
            someBox {
              ... on IntBox {
                deepBox {
                  ...X
                }
              }
            }
            someBox {
              ... on StringBox {
                deepBox {
                  ...Y
                }
              }
            }
            memoed: someBox {
              ... on IntBox {
                deepBox {
                  ...X
                }
              }
            }
            memoed: someBox {
              ... on StringBox {
                deepBox {
                  ...Y
                }
              }
            }
            other: someBox {
              ...X
            }
            other: someBox {
              ...Y
            }
          }
          fragment X on SomeBox {
            scalar
          }
          fragment Y on SomeBox {
            scalar: unrelatedField
          }
        `,
			).Should(testutil.ConsistOfGraphQLErrors(
				fieldsConflict("other", []*messages.FieldConflictReason{
					{
						ResponseKey:              "scalar",
						MessageOrSubFieldReasons: "scalar and unrelatedField are different fields",
					},
				}),
			))
		})

		It("disallows differing return type nullability despite no overlap", func() {
			expectErrorsWithSchema(
				schema,
				`
          {
            someBox {
              ... on NonNullStringBox1 {
                scalar
              }
              ... on StringBox {
                scalar
              }
            }
          }
        `,
			).Should(Or(
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("scalar", "they return conflicting types String! and String"),
				),
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("scalar", "they return conflicting types String and String!"),
				),
			))
		})

		It("disallows differing return type list despite no overlap", func() {
			expectErrorsWithSchema(
				schema,
				`
          {
            someBox {
              ... on IntBox {
                box: listStringBox {
                  scalar
                }
              }
              ... on StringBox {
                box: stringBox {
                  scalar
                }
              }
            }
          }
        `,
			).Should(Or(
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("box", "they return conflicting types [StringBox] and StringBox"),
				),
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("box", "they return conflicting types StringBox and [StringBox]"),
				),
			))

			expectErrorsWithSchema(
				schema,
				`
          {
            someBox {
              ... on IntBox {
                box: stringBox {
                  scalar
                }
              }
              ... on StringBox {
                box: listStringBox {
                  scalar
                }
              }
            }
          }
        `,
			).Should(Or(
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("box", "they return conflicting types StringBox and [StringBox]"),
				),
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("box", "they return conflicting types [StringBox] and StringBox"),
				),
			))
		})

		It("disallows differing subfields", func() {
			expectErrorsWithSchema(
				schema,
				`
          {
            someBox {
              ... on IntBox {
                box: stringBox {
                  val: scalar
                  val: unrelatedField
                }
              }
              ... on StringBox {
                box: stringBox {
                  val: scalar
                }
              }
            }
          }
        `,
			).Should(testutil.ConsistOfGraphQLErrors(
				fieldsConflict("val", "scalar and unrelatedField are different fields"),
			))
		})

		It("disallows differing deep return types despite no overlap", func() {
			expectErrorsWithSchema(
				schema,
				`
          {
            someBox {
              ... on IntBox {
                box: stringBox {
                  scalar
                }
              }
              ... on StringBox {
                box: intBox {
                  scalar
                }
              }
            }
          }
        `,
			).Should(Or(
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("box", []*messages.FieldConflictReason{
						{
							ResponseKey:              "scalar",
							MessageOrSubFieldReasons: "they return conflicting types String and Int",
						},
					}),
				),
				testutil.ConsistOfGraphQLErrors(
					fieldsConflict("box", []*messages.FieldConflictReason{
						{
							ResponseKey:              "scalar",
							MessageOrSubFieldReasons: "they return conflicting types Int and String",
						},
					}),
				),
			))
		})

		It("allows non-conflicting overlapping types", func() {
			expectValidWithSchema(
				schema,
				`
          {
            someBox {
              ... on IntBox {
                scalar: unrelatedField
              }
              ... on StringBox {
                scalar
              }
            }
          }
        `,
			)
		})

		It("same wrapped scalar return types", func() {
			expectValidWithSchema(
				schema,
				`
          {
            someBox {
              ...on NonNullStringBox1 {
                scalar
              }
              ...on NonNullStringBox2 {
                scalar
              }
            }
          }
        `,
			)
		})

		It("allows inline typeless fragments", func() {
			expectValidWithSchema(
				schema,
				`
          {
            a
            ... {
              a
            }
          }
        `,
			)
		})

		It("compares deep types including list", func() {
			expectErrorsWithSchema(
				schema,
				`
          {
            connection {
              ...edgeID
              edges {
                node {
                  id: name
                }
              }
            }
          }

          fragment edgeID on Connection {
            edges {
              node {
                id
              }
            }
          }
        `,
			).Should(testutil.ConsistOfGraphQLErrors(
				fieldsConflict("edges", []*messages.FieldConflictReason{
					{
						ResponseKey: "node",
						MessageOrSubFieldReasons: []*messages.FieldConflictReason{
							{
								ResponseKey:              "id",
								MessageOrSubFieldReasons: "name and id are different fields",
							},
						},
					},
				}),
			))
		})

		It("ignores unknown types", func() {
			expectValidWithSchema(
				schema,
				`
          {
            someBox {
              ...on UnknownType {
                scalar
              }
              ...on NonNullStringBox2 {
                scalar
              }
            }
          }
        `,
			)
		})

		It("error message contains hint for alias conflict", func() {
			// The error template should end with a hint for the user to try using
			// different aliases.
			Expect(fieldsConflictMessage("x", "a and b are different fields")).Should(Equal(
				`Fields "x" conflict because a and b are different fields. Use different aliases on the fields to fetch both if this was intentional.`,
			))
		})

		It("works for field names that are JS keywords", func() {
			fooFields := graphql.FieldDefinitionMap{
				"constructor": {Name: "constructor", Type: graphql.String()},
			}
			Foo := graphql.NewObject(graphql.ObjectConfig{
				Name:   "Foo",
				Fields: fooFields,
			})

			schemaWithKeywords := graphql.NewSchema(graphql.SchemaConfig{
				Query: graphql.NewObject(graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.FieldDefinitionMap{
						"foo": {Name: "foo", Type: Foo},
					},
				}),
			})

			expectValidWithSchema(
				schemaWithKeywords,
				`
          {
            foo {
              constructor
            }
          }
        `,
			)
		})
	})

	It("does not infinite loop on recursive fragment", func() {
		expectValid(`
      fragment fragA on Human { name, relatives { name, ...fragA } }
    `)
	})

	It("does not infinite loop on immediately recursive fragment", func() {
		expectValid(`
      fragment fragA on Human { name, ...fragA }
    `)
	})

	It("does not infinite loop on transitively recursive fragment", func() {
		expectValid(`
      fragment fragA on Human { name, ...fragB }
      fragment fragB on Human { name, ...fragC }
      fragment fragC on Human { name, ...fragA }
    `)
	})

	It("finds invalid case even with immediately recursive fragment", func() {
		expectErrors(`
      fragment sameAliasesWithDifferentFieldTargets on Dog {
        ...sameAliasesWithDifferentFieldTargets
        fido: name
        fido: nickname
      }
    `).Should(testutil.ConsistOfGraphQLErrors(
			fieldsConflict("fido", "name and nickname are different fields"),
		))
	})
})
