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
	"fmt"
	"strings"

	"github.com/gqlforge/gqlforge/graphql"
	"github.com/gqlforge/gqlforge/graphql/ast"
	messages "github.com/gqlforge/gqlforge/graphql/internal/validator"
	"github.com/gqlforge/gqlforge/internal/util"
)

// PathSegment is a cons cell in the path to a value being coerced. Appending a segment never
// copies the prefix: every CoercionError reported while coercing beneath some node shares the
// same PathSegment chain down to the root.
type PathSegment struct {
	Prev      *PathSegment
	FieldName string
	ListIndex int
	IsIndex   bool
}

func (p *PathSegment) pushField(fieldName string) *PathSegment {
	return &PathSegment{Prev: p, FieldName: fieldName}
}

func (p *PathSegment) pushIndex(index int) *PathSegment {
	return &PathSegment{Prev: p, ListIndex: index, IsIndex: true}
}

// String renders the path as a JSON-pointer-like string, e.g. ".field[2].nested".
func (p *PathSegment) String() string {
	var segments []string
	for s := p; s != nil; s = s.Prev {
		if s.IsIndex {
			segments = append(segments, fmt.Sprintf("[%d]", s.ListIndex))
		} else {
			segments = append(segments, "."+s.FieldName)
		}
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, "")
}

// CoercionError reports a single structural mismatch found by Coerce, located both by the
// source span of the offending value and by its Path within the value tree being coerced. Kind
// names the same sub-case taxonomy rules.ValuesOfCorrectType reports under, since that rule
// delegates its literal-value checking to Coerce.
type CoercionError struct {
	Kind    graphql.Kind
	Message string
	Path    *PathSegment
	Span    ast.Span
}

// Coerce structurally validates value against inputType. rules.ValuesOfCorrectType delegates its
// literal-value checking to Coerce for every value position it visits; Coerce is also exposed
// standalone for default-value and variable-value coercion against an input type reference.
// It does not resolve variables: a bare ast.Variable is accepted wherever it appears, deferring
// to rules.VariablesInAllowedPosition for variable-to-location compatibility. Every mismatch
// found is collected and returned; Coerce never stops at the first error, matching
// ValuesOfCorrectType's policy of maximizing diagnostic yield on a single pass.
func Coerce(inputType graphql.Type, value ast.Value, path *PathSegment) []CoercionError {
	return coerce(inputType, inputType, value, path, true /* implicitListPromotionAllowed */)
}

// coerce checks value against inputType. locationType is the type expected at the value's
// position with all its wrappers, and is the type that error messages name.
func coerce(
	locationType graphql.Type,
	inputType graphql.Type,
	value ast.Value,
	path *PathSegment,
	implicitListPromotionAllowed bool) []CoercionError {

	if _, isVariable := value.(ast.Variable); isVariable {
		return nil
	}

	if nonNull, ok := inputType.(graphql.NonNull); ok {
		if _, isNull := value.(ast.NullValue); isNull {
			return []CoercionError{{
				Kind:    graphql.KindNullValueForRequiredType,
				Message: messages.BadValueMessage(graphql.Inspect(inputType), printValue(value), nil),
				Path:    path,
				Span:    value.Span(),
			}}
		}
		return coerce(locationType, nonNull.InnerType(), value, path, implicitListPromotionAllowed)
	}

	if _, isNull := value.(ast.NullValue); isNull {
		// Null is always valid against a nullable type.
		return nil
	}

	if listType, ok := inputType.(graphql.List); ok {
		if listValue, ok := value.(ast.ListValue); ok {
			var errs []CoercionError
			for i, item := range listValue.Values {
				errs = append(errs, coerce(listType.ItemType(), listType.ItemType(), item, path.pushIndex(i), false)...)
			}
			return errs
		}

		if !implicitListPromotionAllowed {
			return []CoercionError{{
				Kind:    graphql.KindNoImplicitConversion,
				Message: messages.BadValueMessage(graphql.Inspect(locationType), printValue(value), nil),
				Path:    path,
				Span:    value.Span(),
			}}
		}

		// Implicit list promotion: a bare value stands for a single-element list, but only at
		// the outermost list depth reached from the call to Coerce.
		return coerce(locationType, listType.ItemType(), value, path, false)
	}

	namedType := graphql.NamedTypeOf(inputType)

	if inputObjectType, ok := namedType.(graphql.InputObject); ok {
		objectValue, ok := value.(ast.ObjectValue)
		if !ok {
			return []CoercionError{{
				Kind:    graphql.KindNoImplicitConversion,
				Message: messages.BadValueMessage(graphql.Inspect(locationType), printValue(value), nil),
				Path:    path,
				Span:    value.Span(),
			}}
		}
		return coerceInputObject(inputObjectType, objectValue, path)
	}

	if enumType, ok := namedType.(graphql.Enum); ok {
		enumValue, ok := value.(ast.EnumValue)
		if !ok {
			name := printValue(value)
			return []CoercionError{{
				Kind:    graphql.KindNoImplicitConversion,
				Message: messages.BadValueMessage(graphql.Inspect(locationType), name, enumSuggestion(name, enumType)),
				Path:    path,
				Span:    value.Span(),
			}}
		}
		if _, exists := enumType.Values()[enumValue.Value]; !exists {
			name := printValue(value)
			return []CoercionError{{
				Kind:    graphql.KindNoEnumMemberWithName,
				Message: messages.BadValueMessage(graphql.Inspect(locationType), name, enumSuggestion(name, enumType)),
				Path:    path,
				Span:    value.Span(),
			}}
		}
		return nil
	}

	if scalarType, ok := namedType.(graphql.Scalar); ok {
		if _, err := scalarType.CoerceLiteralValue(value); err != nil {
			if e, ok := err.(*graphql.Error); ok && e.Kind == graphql.KindCoercion {
				return []CoercionError{{
					Kind:    graphql.KindNoImplicitConversion,
					Message: messages.BadValueMessage(graphql.Inspect(locationType), printValue(value), nil),
					Path:    path,
					Span:    value.Span(),
				}}
			}
			return []CoercionError{{
				Kind:    graphql.KindNoImplicitConversion,
				Message: messages.BadScalarValueMessage(graphql.Inspect(locationType), printValue(value), err.Error()),
				Path:    path,
				Span:    value.Span(),
			}}
		}
		return nil
	}

	return nil
}

func enumSuggestion(name string, enumType graphql.Enum) []string {
	values := enumType.Values()
	names := make([]string, 0, len(values))
	for n := range values {
		names = append(names, n)
	}
	return util.SuggestionList(name, names)
}

func coerceInputObject(
	inputObjectType graphql.InputObject,
	objectValue ast.ObjectValue,
	path *PathSegment) []CoercionError {

	var (
		errs      []CoercionError
		fieldDefs = inputObjectType.Fields()
		seen      = make(map[string]bool, len(objectValue.Fields))
	)

	var knownFieldNames []string
	for _, field := range objectValue.Fields {
		name := field.Name.Value

		if seen[name] {
			errs = append(errs, CoercionError{
				Kind:    graphql.KindNonUniqueFieldNames,
				Message: messages.DuplicateInputFieldMessage(name),
				Path:    path,
				Span:    field.Name.Span(),
			})
			continue
		}
		seen[name] = true

		fieldDef, exists := fieldDefs[name]
		known := exists && graphql.IsInputType(fieldDef.Type)
		if !known {
			if knownFieldNames == nil {
				knownFieldNames = make([]string, 0, len(fieldDefs))
				for n := range fieldDefs {
					knownFieldNames = append(knownFieldNames, n)
				}
			}
			errs = append(errs, CoercionError{
				Kind:    graphql.KindNoInputFieldWithName,
				Message: messages.UnknownFieldMessage(inputObjectType.Name(), name, util.SuggestionList(name, knownFieldNames)),
				Path:    path,
				Span:    field.Name.Span(),
			})
			continue
		}

		errs = append(errs, coerce(fieldDef.Type, fieldDef.Type, field.Value, path.pushField(name), true)...)
	}

	var missing []string
	for name, fieldDef := range fieldDefs {
		if !graphql.IsRequiredInputField(fieldDef) || seen[name] {
			continue
		}
		missing = append(missing, name)
	}
	if len(missing) > 0 {
		errs = append(errs, CoercionError{
			Kind:    graphql.KindNoValueForRequiredFields,
			Message: messages.RequiredFieldsMessage(inputObjectType.Name(), missing),
			Path:    path,
			Span:    objectValue.Span(),
		})
	}

	return errs
}
