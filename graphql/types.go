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

// Package graphql provides the schema contract the validator checks a document against: named
// types, their wrapping (list/non-null) combinators, directive definitions, and the small set of
// predicates (IsInputType, IsTypeSubTypeOf, ...) the validation rules need. It is deliberately
// silent about execution — resolvers, introspection and response serialization are an external
// collaborator's concern.
package graphql

import (
	"fmt"

	"github.com/gqlforge/gqlforge/graphql/ast"
)

// Type is implemented by every member of the type reference algebra: the six named type kinds
// plus List and NonNull, which wrap another Type.
type Type interface {
	typeNode()
}

// NamedType is a Type with an intrinsic name: Scalar, Object, Interface, Union, Enum or
// InputObject.
type NamedType interface {
	Type
	// Name returns the type's name, unique within a Schema.
	Name() string
	// Description returns the type's doc comment, or "" if it has none.
	Description() string
}

//===----------------------------------------------------------------------------------------====//
// Wrapping types
//===----------------------------------------------------------------------------------------====//

// List wraps a Type to describe a list of that type.
type List struct {
	ofType Type
}

// NewList builds a List wrapping ofType.
func NewList(ofType Type) List { return List{ofType: ofType} }

func (List) typeNode() {}

// ItemType returns the wrapped type.
func (l List) ItemType() Type { return l.ofType }

// NonNull wraps a NullableType (anything but another NonNull) to forbid a null value.
type NonNull struct {
	ofType Type
}

// NewNonNull builds a NonNull wrapping ofType. ofType must not itself be a NonNull.
func NewNonNull(ofType Type) NonNull { return NonNull{ofType: ofType} }

func (NonNull) typeNode() {}

// InnerType returns the wrapped, nullable type.
func (n NonNull) InnerType() Type { return n.ofType }

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// Scalar is a leaf type whose values are opaque to the document and coerced by implementation-
// specific logic.
type Scalar interface {
	NamedType
	// CoerceLiteralValue converts an AST literal to the scalar's internal representation. It
	// returns a *graphql.Error with Kind KindCoercion when value is not a valid literal for the
	// scalar, or any other error to indicate a scalar-specific failure (e.g. out-of-range).
	CoerceLiteralValue(value ast.Value) (interface{}, error)
	// CoerceVariableValue converts a decoded JSON-like value (as produced by ast.Value.Interface,
	// or supplied directly as operation variables) to the scalar's internal representation.
	CoerceVariableValue(value interface{}) (interface{}, error)
	scalarType()
}

// ScalarConfig supplies the behavior of a NewScalar.
type ScalarConfig struct {
	Name            string
	Description     string
	CoerceLiteral   func(value ast.Value) (interface{}, error)
	CoerceVariable  func(value interface{}) (interface{}, error)
}

type scalarType struct {
	config ScalarConfig
}

// NewScalar builds a Scalar from config.
func NewScalar(config ScalarConfig) Scalar { return &scalarType{config: config} }

func (*scalarType) typeNode()   {}
func (*scalarType) scalarType() {}

func (t *scalarType) Name() string        { return t.config.Name }
func (t *scalarType) Description() string { return t.config.Description }

func (t *scalarType) CoerceLiteralValue(value ast.Value) (interface{}, error) {
	return t.config.CoerceLiteral(value)
}

func (t *scalarType) CoerceVariableValue(value interface{}) (interface{}, error) {
	return t.config.CoerceVariable(value)
}

//===----------------------------------------------------------------------------------------====//
// Enum
//===----------------------------------------------------------------------------------------====//

// EnumValueDefinition describes one member of an Enum.
type EnumValueDefinition struct {
	Name              string
	Description       string
	DeprecationReason string // "" if not deprecated
}

// Deprecated reports whether the value carries a deprecation reason.
func (v *EnumValueDefinition) Deprecated() bool { return v.DeprecationReason != "" }

// Enum is a leaf type whose values are one of a fixed set of named members.
type Enum interface {
	NamedType
	// Values returns the enum's members keyed by name.
	Values() map[string]*EnumValueDefinition
	enumType()
}

type enumType struct {
	name        string
	description string
	values      map[string]*EnumValueDefinition
}

// EnumConfig supplies the values of a NewEnum.
type EnumConfig struct {
	Name        string
	Description string
	Values      map[string]*EnumValueDefinition
}

// NewEnum builds an Enum from config.
func NewEnum(config EnumConfig) Enum {
	return &enumType{name: config.Name, description: config.Description, values: config.Values}
}

func (*enumType) typeNode()  {}
func (*enumType) enumType() {}

func (t *enumType) Name() string                               { return t.name }
func (t *enumType) Description() string                        { return t.description }
func (t *enumType) Values() map[string]*EnumValueDefinition     { return t.values }

//===----------------------------------------------------------------------------------------====//
// Arguments
//===----------------------------------------------------------------------------------------====//

// ArgumentDefinition describes one argument accepted by a field or directive.
type ArgumentDefinition struct {
	Name         string
	Description  string
	Type         Type // must satisfy IsInputType
	DefaultValue interface{}
	HasDefault   bool
}

// ArgumentDefinitionMap indexes ArgumentDefinition by name, preserving no particular order;
// callers that need declaration order should keep a parallel slice.
type ArgumentDefinitionMap map[string]*ArgumentDefinition

//===----------------------------------------------------------------------------------------====//
// Object / Interface / Union
//===----------------------------------------------------------------------------------------====//

// FieldDefinition describes one field of an Object or Interface.
type FieldDefinition struct {
	Name              string
	Description       string
	Type              Type // must satisfy IsOutputType
	Args              ArgumentDefinitionMap
	DeprecationReason string
}

// Deprecated reports whether the field carries a deprecation reason.
func (f *FieldDefinition) Deprecated() bool { return f.DeprecationReason != "" }

// FieldDefinitionMap indexes FieldDefinition by name.
type FieldDefinitionMap map[string]*FieldDefinition

// TypenameMetaFieldName is the name of the meta-field that every composite type implicitly
// carries, resolving to the concrete type name of the object being selected on. Schema
// introspection (__schema, __type) is out of scope; __typename is a pure naming concern that
// validation still needs to recognize so that selecting it never trips FieldsOnCorrectType.
const TypenameMetaFieldName = "__typename"

var typenameMetaFieldDef = &FieldDefinition{
	Name:        TypenameMetaFieldName,
	Description: "The name of the current Object type at runtime.",
	Type: NewNonNull(NewScalar(ScalarConfig{
		Name: "String",
		CoerceLiteral: func(value ast.Value) (interface{}, error) {
			return value.Interface(), nil
		},
		CoerceVariable: func(value interface{}) (interface{}, error) {
			return value, nil
		},
	})),
}

// TypenameMetaFieldDef returns the field definition for the implicit __typename meta-field.
func TypenameMetaFieldDef() *FieldDefinition { return typenameMetaFieldDef }

// Object is a composite output type with a fixed set of fields.
type Object interface {
	NamedType
	Fields() FieldDefinitionMap
	Interfaces() []Interface
	objectType()
}

type objectType struct {
	name        string
	description string
	fields      FieldDefinitionMap
	interfaces  []Interface
}

// ObjectConfig supplies the shape of a NewObject.
type ObjectConfig struct {
	Name        string
	Description string
	Fields      FieldDefinitionMap
	Interfaces  []Interface
}

// NewObject builds an Object from config.
func NewObject(config ObjectConfig) Object {
	return &objectType{
		name:        config.Name,
		description: config.Description,
		fields:      config.Fields,
		interfaces:  config.Interfaces,
	}
}

func (*objectType) typeNode()   {}
func (*objectType) objectType() {}

func (t *objectType) Name() string                  { return t.name }
func (t *objectType) Description() string           { return t.description }
func (t *objectType) Fields() FieldDefinitionMap     { return t.fields }
func (t *objectType) Interfaces() []Interface        { return t.interfaces }

// Interface is an abstract output type: any Object implementing it must provide its fields.
type Interface interface {
	NamedType
	Fields() FieldDefinitionMap
	interfaceType()
}

type interfaceType struct {
	name        string
	description string
	fields      FieldDefinitionMap
}

// InterfaceConfig supplies the shape of a NewInterface.
type InterfaceConfig struct {
	Name        string
	Description string
	Fields      FieldDefinitionMap
}

// NewInterface builds an Interface from config.
func NewInterface(config InterfaceConfig) Interface {
	return &interfaceType{name: config.Name, description: config.Description, fields: config.Fields}
}

func (*interfaceType) typeNode()      {}
func (*interfaceType) interfaceType() {}

func (t *interfaceType) Name() string              { return t.name }
func (t *interfaceType) Description() string       { return t.description }
func (t *interfaceType) Fields() FieldDefinitionMap { return t.fields }

// Union is an abstract output type that is satisfied by exactly its listed possible Objects.
type Union interface {
	NamedType
	PossibleTypes() []Object
	unionType()
}

type unionType struct {
	name          string
	description   string
	possibleTypes []Object
}

// UnionConfig supplies the shape of a NewUnion.
type UnionConfig struct {
	Name          string
	Description   string
	PossibleTypes []Object
}

// NewUnion builds a Union from config.
func NewUnion(config UnionConfig) Union {
	return &unionType{name: config.Name, description: config.Description, possibleTypes: config.PossibleTypes}
}

func (*unionType) typeNode()  {}
func (*unionType) unionType() {}

func (t *unionType) Name() string             { return t.name }
func (t *unionType) Description() string      { return t.description }
func (t *unionType) PossibleTypes() []Object  { return t.possibleTypes }

//===----------------------------------------------------------------------------------------====//
// Input object
//===----------------------------------------------------------------------------------------====//

// InputFieldDefinition describes one field of an InputObject.
type InputFieldDefinition struct {
	Name         string
	Description  string
	Type         Type // must satisfy IsInputType
	DefaultValue interface{}
	HasDefault   bool
}

// InputFieldDefinitionMap indexes InputFieldDefinition by name.
type InputFieldDefinitionMap map[string]*InputFieldDefinition

// InputObject is a composite input type: a record of named, typed fields supplied as an object
// literal or an equivalent decoded value.
type InputObject interface {
	NamedType
	Fields() InputFieldDefinitionMap
	inputObjectType()
}

type inputObjectType struct {
	name        string
	description string
	fields      InputFieldDefinitionMap
}

// InputObjectConfig supplies the shape of a NewInputObject.
type InputObjectConfig struct {
	Name        string
	Description string
	Fields      InputFieldDefinitionMap
}

// NewInputObject builds an InputObject from config.
func NewInputObject(config InputObjectConfig) InputObject {
	return &inputObjectType{name: config.Name, description: config.Description, fields: config.Fields}
}

func (*inputObjectType) typeNode()        {}
func (*inputObjectType) inputObjectType() {}

func (t *inputObjectType) Name() string                     { return t.name }
func (t *inputObjectType) Description() string              { return t.description }
func (t *inputObjectType) Fields() InputFieldDefinitionMap   { return t.fields }

//===----------------------------------------------------------------------------------------====//
// Directives
//===----------------------------------------------------------------------------------------====//

// DirectiveLocation names a site where a directive may be applied.
type DirectiveLocation string

// Enumeration of DirectiveLocation relevant to an executable document. Type-system locations
// (SCHEMA, SCALAR, OBJECT, ...) belong to SDL validation, out of scope here.
const (
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"
)

// DirectiveDefinition describes a directive known to the schema.
type DirectiveDefinition struct {
	Name        string
	Description string
	Locations   []DirectiveLocation
	Args        ArgumentDefinitionMap
	Repeatable  bool
}

// HasLocation reports whether loc is among d's valid locations.
func (d *DirectiveDefinition) HasLocation(loc DirectiveLocation) bool {
	for _, l := range d.Locations {
		if l == loc {
			return true
		}
	}
	return false
}

//===----------------------------------------------------------------------------------------====//
// Schema
//===----------------------------------------------------------------------------------------====//

// Schema is the contract a document is validated against: its root operation types, every named
// type reachable from them, and the directives it understands.
type Schema interface {
	QueryType() Object
	MutationType() Object   // nil if the schema has no mutation root
	SubscriptionType() Object // nil if the schema has no subscription root
	// Type looks up a named type by name, returning nil if absent.
	Type(name string) NamedType
	// TypeMap returns every named type known to the schema, keyed by name.
	TypeMap() map[string]NamedType
	// Directive looks up a directive definition by name, returning nil if absent.
	Directive(name string) *DirectiveDefinition
	// Directives returns every directive known to the schema.
	Directives() []*DirectiveDefinition
}

type schema struct {
	query        Object
	mutation     Object
	subscription Object
	types        map[string]NamedType
	directives   map[string]*DirectiveDefinition
	directiveList []*DirectiveDefinition
}

// SchemaConfig supplies the shape of a NewSchema.
type SchemaConfig struct {
	Query        Object
	Mutation     Object
	Subscription Object
	Types        []NamedType
	Directives   []*DirectiveDefinition
}

// NewSchema builds a Schema from config, indexing Types and Directives by name. Types reachable
// only transitively (through field/argument/interface references) need not be listed explicitly;
// NewSchema walks the root types and every entry in Types to build a complete map.
func NewSchema(config SchemaConfig) Schema {
	s := &schema{
		query:        config.Query,
		mutation:     config.Mutation,
		subscription: config.Subscription,
		types:        map[string]NamedType{},
		directives:   map[string]*DirectiveDefinition{},
	}

	for _, d := range config.Directives {
		s.directives[d.Name] = d
		s.directiveList = append(s.directiveList, d)
	}

	seed := append([]NamedType{}, config.Types...)
	if config.Query != nil {
		seed = append(seed, config.Query)
	}
	if config.Mutation != nil {
		seed = append(seed, config.Mutation)
	}
	if config.Subscription != nil {
		seed = append(seed, config.Subscription)
	}
	for _, t := range seed {
		collectNamedTypes(t, s.types)
	}

	return s
}

// collectNamedTypes walks t and everything reachable from it (field types, argument types,
// interfaces, union members, input fields), registering every NamedType found into out.
func collectNamedTypes(t Type, out map[string]NamedType) {
	named, wrapped := unwrap(t)
	if named == nil {
		return
	}
	if _, seen := out[named.Name()]; seen {
		return
	}
	out[named.Name()] = named
	_ = wrapped

	switch nt := named.(type) {
	case Object:
		for _, f := range nt.Fields() {
			collectNamedTypes(f.Type, out)
			for _, arg := range f.Args {
				collectNamedTypes(arg.Type, out)
			}
		}
		for _, iface := range nt.Interfaces() {
			collectNamedTypes(iface, out)
		}
	case Interface:
		for _, f := range nt.Fields() {
			collectNamedTypes(f.Type, out)
			for _, arg := range f.Args {
				collectNamedTypes(arg.Type, out)
			}
		}
	case Union:
		for _, possible := range nt.PossibleTypes() {
			collectNamedTypes(possible, out)
		}
	case InputObject:
		for _, f := range nt.Fields() {
			collectNamedTypes(f.Type, out)
		}
	}
}

// unwrap strips List/NonNull wrapping, returning the innermost NamedType (nil if t is nil) and
// whether any wrapping was present.
func unwrap(t Type) (NamedType, bool) {
	wrapped := false
	for {
		switch v := t.(type) {
		case List:
			wrapped = true
			t = v.ofType
		case NonNull:
			wrapped = true
			t = v.ofType
		case NamedType:
			return v, wrapped
		default:
			return nil, wrapped
		}
	}
}

func (s *schema) QueryType() Object        { return s.query }
func (s *schema) MutationType() Object     { return s.mutation }
func (s *schema) SubscriptionType() Object { return s.subscription }

func (s *schema) Type(name string) NamedType          { return s.types[name] }
func (s *schema) TypeMap() map[string]NamedType        { return s.types }
func (s *schema) Directive(name string) *DirectiveDefinition { return s.directives[name] }
func (s *schema) Directives() []*DirectiveDefinition   { return s.directiveList }

//===----------------------------------------------------------------------------------------====//
// Predicates
//===----------------------------------------------------------------------------------------====//

// IsNonNullType reports whether t is a NonNull.
func IsNonNullType(t Type) bool {
	_, ok := t.(NonNull)
	return ok
}

// IsListType reports whether t is a List.
func IsListType(t Type) bool {
	_, ok := t.(List)
	return ok
}

// NullableTypeOf strips exactly one NonNull wrapping from t, if present.
func NullableTypeOf(t Type) Type {
	if nn, ok := t.(NonNull); ok {
		return nn.ofType
	}
	return t
}

// NamedTypeOf strips all List/NonNull wrapping from t, returning the innermost NamedType (or nil
// if t is nil or not built from the type reference algebra).
func NamedTypeOf(t Type) NamedType {
	named, _ := unwrap(t)
	return named
}

// IsScalarType reports whether t is a Scalar.
func IsScalarType(t Type) bool {
	_, ok := t.(Scalar)
	return ok
}

// IsEnumType reports whether t is an Enum.
func IsEnumType(t Type) bool {
	_, ok := t.(Enum)
	return ok
}

// IsObjectType reports whether t is an Object.
func IsObjectType(t Type) bool {
	_, ok := t.(Object)
	return ok
}

// IsInterfaceType reports whether t is an Interface.
func IsInterfaceType(t Type) bool {
	_, ok := t.(Interface)
	return ok
}

// IsUnionType reports whether t is a Union.
func IsUnionType(t Type) bool {
	_, ok := t.(Union)
	return ok
}

// IsInputObjectType reports whether t is an InputObject.
func IsInputObjectType(t Type) bool {
	_, ok := t.(InputObject)
	return ok
}

// IsLeafType reports whether t is a Scalar or Enum: a type with no sub-selections.
func IsLeafType(t Type) bool {
	switch t.(type) {
	case Scalar, Enum:
		return true
	default:
		return false
	}
}

// IsCompositeType reports whether t is an Object, Interface or Union: a type that requires
// sub-selections.
func IsCompositeType(t Type) bool {
	switch t.(type) {
	case Object, Interface, Union:
		return true
	default:
		return false
	}
}

// IsAbstractType reports whether t is an Interface or Union.
func IsAbstractType(t Type) bool {
	switch t.(type) {
	case Interface, Union:
		return true
	default:
		return false
	}
}

// IsInputType reports whether t (after unwrapping List/NonNull) is a Scalar, Enum or InputObject
// — the set of types legal for a variable definition or an input field/argument.
func IsInputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case Scalar, Enum, InputObject:
		return true
	default:
		return false
	}
}

// IsOutputType reports whether t (after unwrapping List/NonNull) is a Scalar, Object, Interface,
// Union or Enum — the set of types legal for a field.
func IsOutputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case Scalar, Object, Interface, Union, Enum:
		return true
	default:
		return false
	}
}

// IsRequiredArgument reports whether arg must be supplied: non-null typed and without a default.
func IsRequiredArgument(arg *ArgumentDefinition) bool {
	return IsNonNullType(arg.Type) && !arg.HasDefault
}

// IsRequiredInputField reports whether f must be supplied: non-null typed and without a default.
func IsRequiredInputField(f *InputFieldDefinition) bool {
	return IsNonNullType(f.Type) && !f.HasDefault
}

// PossibleTypes returns the set of Object types that could satisfy t: {t} itself if t is an
// Object, Union.PossibleTypes() for a Union, or the schema's objects implementing t for an
// Interface.
func PossibleTypes(schema Schema, t Type) []Object {
	switch t := t.(type) {
	case Object:
		return []Object{t}
	case Union:
		return t.PossibleTypes()
	case Interface:
		var possible []Object
		for _, named := range schema.TypeMap() {
			if obj, ok := named.(Object); ok && implementsInterface(obj, t) {
				possible = append(possible, obj)
			}
		}
		return possible
	default:
		return nil
	}
}

func implementsInterface(obj Object, iface Interface) bool {
	for _, i := range obj.Interfaces() {
		if i.Name() == iface.Name() {
			return true
		}
	}
	return false
}

// IsTypeSubTypeOf reports whether maybeSubType is usable everywhere superType is expected: equal
// types; a NonNull is a subtype of its inner type and of another NonNull of a subtype; a List is
// a subtype of another List whose item type it is a subtype of; and an Object is a subtype of an
// abstract type it is one of the possible types of. An Interface or Union is not a subtype of any
// type other than itself.
func IsTypeSubTypeOf(schema Schema, maybeSubType, superType Type) bool {
	if maybeSubType == superType {
		return true
	}
	if named, ok := maybeSubType.(NamedType); ok {
		if superNamed, ok := superType.(NamedType); ok && named.Name() == superNamed.Name() {
			return true
		}
	}

	if superNN, ok := superType.(NonNull); ok {
		subNN, ok := maybeSubType.(NonNull)
		if !ok {
			return false
		}
		return IsTypeSubTypeOf(schema, subNN.ofType, superNN.ofType)
	}
	if subNN, ok := maybeSubType.(NonNull); ok {
		return IsTypeSubTypeOf(schema, subNN.ofType, superType)
	}

	if superList, ok := superType.(List); ok {
		subList, ok := maybeSubType.(List)
		if !ok {
			return false
		}
		return IsTypeSubTypeOf(schema, subList.ofType, superList.ofType)
	}
	if _, ok := maybeSubType.(List); ok {
		return false
	}

	if IsAbstractType(superType) {
		subObj, ok := maybeSubType.(Object)
		if !ok {
			return false
		}
		for _, possible := range PossibleTypes(schema, superType) {
			if possible.Name() == subObj.Name() {
				return true
			}
		}
	}

	return false
}

// DoTypesOverlap reports whether a value could satisfy both typeA and typeB at once: true for
// identical types, for two abstract types sharing a possible type, and for an abstract/concrete
// pair where the concrete type is among the abstract type's possible types.
func DoTypesOverlap(schema Schema, typeA, typeB Type) bool {
	if namedA, ok := typeA.(NamedType); ok {
		if namedB, ok := typeB.(NamedType); ok && namedA.Name() == namedB.Name() {
			return true
		}
	}

	aAbstract, aOk := isAbstractNamed(typeA)
	bAbstract, bOk := isAbstractNamed(typeB)

	if aOk && bOk {
		for _, possibleA := range PossibleTypes(schema, aAbstract) {
			for _, possibleB := range PossibleTypes(schema, bAbstract) {
				if possibleA.Name() == possibleB.Name() {
					return true
				}
			}
		}
		return false
	}
	if aOk {
		return hasPossibleType(schema, aAbstract, typeB)
	}
	if bOk {
		return hasPossibleType(schema, bAbstract, typeA)
	}
	return false
}

func isAbstractNamed(t Type) (Type, bool) {
	if IsAbstractType(t) {
		return t, true
	}
	return nil, false
}

func hasPossibleType(schema Schema, abstractType Type, candidate Type) bool {
	obj, ok := candidate.(Object)
	if !ok {
		return false
	}
	for _, possible := range PossibleTypes(schema, abstractType) {
		if possible.Name() == obj.Name() {
			return true
		}
	}
	return false
}

// Inspect renders t the way it would appear written in SDL: "Name", "[Name]", "Name!", "[Name!]!"
// and so on.
func Inspect(t Type) string {
	switch t := t.(type) {
	case nil:
		return "<nil>"
	case NamedType:
		return t.Name()
	case List:
		return fmt.Sprintf("[%s]", Inspect(t.ofType))
	case NonNull:
		return fmt.Sprintf("%s!", Inspect(t.ofType))
	default:
		return fmt.Sprintf("%v", t)
	}
}
