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

package ast

import (
	"github.com/gqlforge/gqlforge/graphql"
	"github.com/gqlforge/gqlforge/graphql/ast"
)

// TypeResolver is an utility class which tries to resolve type for an AST nodes in a given schema.
type TypeResolver struct {
	Schema graphql.Schema
}

// ResolveType determines Type for an ast.Type.
func (resolver TypeResolver) ResolveType(ttype ast.Type) graphql.Type {
	// wrapTypes[i] is true for a list wrapping, false for a non-null wrapping, recorded from
	// outermost to innermost so it can be replayed in reverse once the named type is known.
	var (
		wrapTypes []bool
		t         graphql.Type
	)

named_type_loop:
	for {
		switch astType := ttype.(type) {
		case ast.ListType:
			wrapTypes = append(wrapTypes, true)
			ttype = astType.ItemType

		case ast.NamedType:
			t = resolver.Schema.TypeMap()[astType.Name.Value]
			break named_type_loop

		case ast.NonNullType:
			wrapTypes = append(wrapTypes, false)
			ttype = astType.Type

		default:
			break named_type_loop
		}
	}

	if t != nil {
		for i := len(wrapTypes); i > 0; i-- {
			if wrapTypes[i-1] {
				t = graphql.NewList(t)
			} else {
				t = graphql.NewNonNull(t)
			}
		}
	}

	return t
}

// ResolveField determines the field definition for an ast.Field's name within parentType. Returns
// nil when the field is unknown; callers (FieldsOnCorrectType and friends) distinguish "no field"
// from "can't resolve the parent type" by also checking whether parentType is nil.
func (resolver TypeResolver) ResolveField(parentType graphql.Type, field *ast.Field) *graphql.FieldDefinition {
	if parentType == nil {
		return nil
	}

	name := field.Name.Value

	if name == graphql.TypenameMetaFieldName && graphql.IsCompositeType(parentType) {
		return graphql.TypenameMetaFieldDef()
	}

	switch parentType := parentType.(type) {
	case graphql.Object:
		return parentType.Fields()[name]

	case graphql.Interface:
		return parentType.Fields()[name]
	}

	return nil
}
