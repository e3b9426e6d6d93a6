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

package validator

import (
	"github.com/gqlforge/gqlforge/graphql"
	"github.com/gqlforge/gqlforge/graphql/ast"
	astutil "github.com/gqlforge/gqlforge/graphql/util/ast"
)

// VariableUsage is one occurrence of a variable within an operation's selection set (including
// selection sets reached by spreading a fragment), together with the type expected at that
// position and whether the position itself (an argument or input field) carries a default value.
type VariableUsage struct {
	Variable                ast.Variable
	Type                    graphql.Type // expected type at this position; nil if unresolvable
	HasLocationDefaultValue bool
}

// VariableUsages returns every variable usage reachable from operation, walking its selection set
// and every fragment it spreads (transitively, deduplicated). The result is cached on ctx since
// VariablesInAllowedPosition, NoUnusedVariables and NoUndefinedVariables all need the same
// traversal.
func (ctx *ValidationContext) VariableUsages(operation *ast.OperationDefinition) []VariableUsage {
	if cached, ok := ctx.variableUsages[operation]; ok {
		return cached
	}

	collector := &variableUsageCollector{
		ctx:      ctx,
		resolver: astutil.TypeResolver{Schema: ctx.schema},
		visited:  map[string]bool{},
	}
	collector.collectSelectionSet(operation.SelectionSet, ctx.operationType(operation))

	if ctx.variableUsages == nil {
		ctx.variableUsages = map[*ast.OperationDefinition][]VariableUsage{}
	}
	ctx.variableUsages[operation] = collector.usages

	return collector.usages
}

// operationType returns the root Object type an operation selects against, or nil if the schema
// doesn't define one for the operation's kind (e.g. no mutation root).
func (ctx *ValidationContext) operationType(operation *ast.OperationDefinition) graphql.Type {
	switch operation.Operation {
	case ast.Mutation:
		if t := ctx.schema.MutationType(); t != nil {
			return t
		}
		return nil
	case ast.Subscription:
		if t := ctx.schema.SubscriptionType(); t != nil {
			return t
		}
		return nil
	default:
		return ctx.schema.QueryType()
	}
}

type variableUsageCollector struct {
	ctx      *ValidationContext
	resolver astutil.TypeResolver
	usages   []VariableUsage
	visited  map[string]bool // fragment names already expanded, to break cycles and avoid duplicates
}

func (c *variableUsageCollector) collectSelectionSet(selectionSet ast.SelectionSet, parentType graphql.Type) {
	for _, selection := range selectionSet.Selections {
		switch selection := selection.(type) {
		case *ast.Field:
			fieldDef := c.resolver.ResolveField(parentType, selection)

			for _, arg := range selection.Arguments {
				var (
					argType    graphql.Type
					hasDefault bool
				)
				if fieldDef != nil {
					if argDef := fieldDef.Args[arg.Name.Value]; argDef != nil {
						argType, hasDefault = argDef.Type, argDef.HasDefault
					}
				}
				c.collectValue(arg.Value, argType, hasDefault)
			}

			c.collectDirectives(selection.Directives)

			var fieldType graphql.Type
			if fieldDef != nil {
				fieldType = fieldDef.Type
			}
			c.collectSelectionSet(selection.SelectionSet, fieldType)

		case *ast.InlineFragment:
			c.collectDirectives(selection.Directives)
			childType := parentType
			if selection.HasTypeCondition() {
				childType = c.resolver.ResolveType(*selection.TypeCondition)
			}
			c.collectSelectionSet(selection.SelectionSet, childType)

		case *ast.FragmentSpread:
			c.collectDirectives(selection.Directives)

			name := selection.Name.Value
			if c.visited[name] {
				continue
			}
			c.visited[name] = true

			fragment := c.ctx.Fragment(name)
			if fragment == nil {
				continue
			}
			c.collectSelectionSet(fragment.SelectionSet, c.resolver.ResolveType(fragment.TypeCondition))
		}
	}
}

func (c *variableUsageCollector) collectDirectives(directives ast.Directives) {
	for _, directive := range directives {
		directiveDef := c.ctx.schema.Directive(directive.Name.Value)
		for _, arg := range directive.Arguments {
			var (
				argType    graphql.Type
				hasDefault bool
			)
			if directiveDef != nil {
				if argDef := directiveDef.Args[arg.Name.Value]; argDef != nil {
					argType, hasDefault = argDef.Type, argDef.HasDefault
				}
			}
			c.collectValue(arg.Value, argType, hasDefault)
		}
	}
}

// collectValue walks a value literal looking for variables, tracking the expected type and
// whether the immediately-enclosing position has a default, at every depth.
func (c *variableUsageCollector) collectValue(value ast.Value, valueType graphql.Type, hasLocationDefaultValue bool) {
	switch value := value.(type) {
	case ast.Variable:
		c.usages = append(c.usages, VariableUsage{
			Variable:                value,
			Type:                    valueType,
			HasLocationDefaultValue: hasLocationDefaultValue,
		})

	case ast.ListValue:
		var itemType graphql.Type
		if list, ok := graphql.NullableTypeOf(valueType).(graphql.List); ok {
			itemType = list.ItemType()
		}
		for _, item := range value.Values {
			c.collectValue(item, itemType, false)
		}

	case ast.ObjectValue:
		inputObject, _ := graphql.NullableTypeOf(valueType).(graphql.InputObject)
		for _, field := range value.Fields {
			var (
				fieldType  graphql.Type
				hasDefault bool
			)
			if inputObject != nil {
				if fieldDef := inputObject.Fields()[field.Name.Value]; fieldDef != nil {
					fieldType, hasDefault = fieldDef.Type, fieldDef.HasDefault
				}
			}
			c.collectValue(field.Value, fieldType, hasDefault)
		}
	}
}
