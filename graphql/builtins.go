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

package graphql

import (
	"strconv"

	"github.com/gqlforge/gqlforge/graphql/ast"
)

// This file implements the built-in leaf scalars and the directives required by the
// specification's "Type System.Directives" section.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives

//===----------------------------------------------------------------------------------------====//
// Built-in scalars
//===----------------------------------------------------------------------------------------====//

func identityCoercion(name string) ScalarConfig {
	return ScalarConfig{
		Name: name,
		CoerceLiteral: func(value ast.Value) (interface{}, error) {
			var accepted bool
			switch literal := value.(type) {
			case ast.BooleanValue:
				accepted = name == "Boolean"
			case ast.StringValue:
				accepted = name == "String" || name == "ID"
			case ast.FloatValue:
				accepted = name == "Float"
			case ast.IntValue:
				_, err := strconv.ParseInt(literal.Raw, 10, 32)
				accepted = name == "Float" || name == "ID" || (name == "Int" && err == nil)
			}
			if !accepted {
				return nil, NewError(KindCoercion, name+" cannot represent this literal", value.Span())
			}
			return value.Interface(), nil
		},
		CoerceVariable: func(value interface{}) (interface{}, error) {
			return value, nil
		},
	}
}

var (
	stringScalar  = NewScalar(identityCoercion("String"))
	booleanScalar = NewScalar(identityCoercion("Boolean"))
	intScalar     = NewScalar(identityCoercion("Int"))
	floatScalar   = NewScalar(identityCoercion("Float"))
	idScalar      = NewScalar(identityCoercion("ID"))
)

// String returns the built-in String scalar.
func String() Scalar { return stringScalar }

// Boolean returns the built-in Boolean scalar.
func Boolean() Scalar { return booleanScalar }

// Int returns the built-in Int scalar.
func Int() Scalar { return intScalar }

// Float returns the built-in Float scalar.
func Float() Scalar { return floatScalar }

// ID returns the built-in ID scalar.
func ID() Scalar { return idScalar }

//===----------------------------------------------------------------------------------------====//
// @skip and @include
//===----------------------------------------------------------------------------------------====//
// Both may be provided for fields, fragment spreads and inline fragments, conditionally excluding
// or including the annotated site as described by the `if` argument.

var skipDirective = &DirectiveDefinition{
	Name: "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` " +
		"argument is true.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: ArgumentDefinitionMap{
		"if": {
			Name:        "if",
			Type:        NewNonNull(Boolean()),
			Description: "Skipped when true.",
		},
	},
}

// SkipDirective returns the definition of the built-in @skip directive.
func SkipDirective() *DirectiveDefinition { return skipDirective }

var includeDirective = &DirectiveDefinition{
	Name: "include",
	Description: "Directs the executor to include this field or fragment only when " +
		"the `if` argument is true.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: ArgumentDefinitionMap{
		"if": {
			Name:        "if",
			Type:        NewNonNull(Boolean()),
			Description: "Included when true.",
		},
	},
}

// IncludeDirective returns the definition of the built-in @include directive.
func IncludeDirective() *DirectiveDefinition { return includeDirective }

// StandardDirectives returns the directives every schema understands per the specification's
// "Type System.Directives" section. @deprecated is a type-system-definition-language concern
// (FIELD_DEFINITION / ENUM_VALUE locations) and plays no role in executable-document validation,
// so it is omitted here.
func StandardDirectives() []*DirectiveDefinition {
	return []*DirectiveDefinition{
		SkipDirective(),
		IncludeDirective(),
	}
}
