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

// Package ast describes the shape of a parsed GraphQL executable document: operations,
// fragments, selections, values and type references. It says nothing about how a document is
// produced; the lexer and parser that build one are external collaborators. Every node carries a
// Span, which doubles as the node's cache identity within a single document — callers key caches
// on it instead of mutating the AST in place.
package ast

// Span is a half-open byte-offset range [Start, End) into the source that produced a document.
type Span struct {
	Start int
	End   int
}

// Cover returns the smallest span that contains both s and other.
func (s Span) Cover(other Span) Span {
	cover := s
	if other.Start < cover.Start {
		cover.Start = other.Start
	}
	if other.End > cover.End {
		cover.End = other.End
	}
	return cover
}

// Node is implemented by every element of the executable AST.
type Node interface {
	// Span reports the node's source location, also used as its cache identity.
	Span() Span
}

// Name is a GraphQL name token: an identifier matching /[_A-Za-z][_0-9A-Za-z]*/.
type Name struct {
	Value string
	Loc   Span
}

// Span implements Node.
func (n Name) Span() Span { return n.Loc }

//===----------------------------------------------------------------------------------------====//
// Documents
//===----------------------------------------------------------------------------------------====//

// Document is an ordered sequence of operation and fragment definitions. Nothing about the AST
// itself guarantees uniqueness of names; that is left to validation (UniqueOperationNames,
// UniqueFragmentNames).
type Document struct {
	Definitions []Definition
	Loc         Span
}

// Span implements Node.
func (d *Document) Span() Span { return d.Loc }

// Operations returns the operation definitions in declaration order.
func (d *Document) Operations() []*OperationDefinition {
	var ops []*OperationDefinition
	for _, def := range d.Definitions {
		if op, ok := def.(*OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments returns the fragment definitions in declaration order.
func (d *Document) Fragments() []*FragmentDefinition {
	var frags []*FragmentDefinition
	for _, def := range d.Definitions {
		if frag, ok := def.(*FragmentDefinition); ok {
			frags = append(frags, frag)
		}
	}
	return frags
}

// Definition is either an OperationDefinition or a FragmentDefinition. Type-system definitions
// belong to a schema document, not an executable one, and are out of scope here.
type Definition interface {
	Node
	GetDirectives() Directives
	definitionNode()
}

//===----------------------------------------------------------------------------------------====//
// Operations
//===----------------------------------------------------------------------------------------====//

// OperationType classifies an OperationDefinition.
type OperationType string

// Enumeration of OperationType.
const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// OperationDefinition represents a query, mutation or subscription, including the shorthand form
// ("{ field }"), which is always an anonymous query.
type OperationDefinition struct {
	// Operation is the operation's kind. The shorthand form omits it in source; implementations
	// still report Query here so callers never special-case the shorthand.
	Operation OperationType

	// Name is the operation's name, or the zero Name if anonymous (including shorthand form).
	Name Name

	VariableDefinitions []*VariableDefinition
	Directives          Directives
	SelectionSet        SelectionSet

	// Shorthand is true for the bare "{ ... }" form, which may carry neither a name, variable
	// definitions nor directives.
	Shorthand bool

	Loc Span
}

var _ Definition = (*OperationDefinition)(nil)

// Span implements Node.
func (op *OperationDefinition) Span() Span { return op.Loc }

// GetDirectives implements Definition.
func (op *OperationDefinition) GetDirectives() Directives { return op.Directives }

func (*OperationDefinition) definitionNode() {}

// HasName reports whether the operation carries an explicit name.
func (op *OperationDefinition) HasName() bool { return op.Name.Value != "" }

//===----------------------------------------------------------------------------------------====//
// Variables
//===----------------------------------------------------------------------------------------====//

// VariableDefinition declares a variable accepted by an operation.
type VariableDefinition struct {
	Variable     Variable
	Type         Type
	DefaultValue Value // nil if absent
	Directives   Directives
	Loc          Span
}

// Span implements Node.
func (v *VariableDefinition) Span() Span { return v.Loc }

// Variable refers to a named variable ("$name"). Legal only outside const contexts (never in a
// default value or in a directive argument on a type-system definition).
type Variable struct {
	Name Name
	Loc  Span
}

// Span implements Node.
func (v Variable) Span() Span { return v.Loc }

func (Variable) valueNode() {}

// Interface implements Value.
func (v Variable) Interface() interface{} { return v.Name.Value }

//===----------------------------------------------------------------------------------------====//
// Fragments
//===----------------------------------------------------------------------------------------====//

// FragmentDefinition declares a named, reusable selection set conditioned on a composite type.
type FragmentDefinition struct {
	Name          Name
	TypeCondition NamedType
	Directives    Directives
	SelectionSet  SelectionSet
	Loc           Span
}

var _ Definition = (*FragmentDefinition)(nil)

// Span implements Node.
func (f *FragmentDefinition) Span() Span { return f.Loc }

// GetDirectives implements Definition.
func (f *FragmentDefinition) GetDirectives() Directives { return f.Directives }

func (*FragmentDefinition) definitionNode() {}

//===----------------------------------------------------------------------------------------====//
// Selection sets
//===----------------------------------------------------------------------------------------====//

// SelectionSet is an ordered list of selections, i.e. what appears between a pair of braces.
type SelectionSet struct {
	Selections []Selection
	Loc        Span
}

// Span implements Node.
func (s SelectionSet) Span() Span { return s.Loc }

// Empty reports whether the selection set has no selections.
func (s SelectionSet) Empty() bool { return len(s.Selections) == 0 }

// Selection is one of Field, FragmentSpread or InlineFragment.
type Selection interface {
	Node
	selectionNode()
}

// Field selects one piece of information, optionally aliased and optionally carrying a
// sub-selection set when its type is composite.
type Field struct {
	Alias        Name // zero Name if no alias is present
	Name         Name
	Arguments    Arguments
	Directives   Directives
	SelectionSet SelectionSet // zero value (no Selections) if the field has none
	Loc          Span
}

var _ Selection = (*Field)(nil)

// Span implements Node.
func (f *Field) Span() Span { return f.Loc }

func (*Field) selectionNode() {}

// ResponseKey is the field's alias if present, otherwise its name.
func (f *Field) ResponseKey() string {
	if f.Alias.Value != "" {
		return f.Alias.Value
	}
	return f.Name.Value
}

// FragmentSpread applies a named fragment's selection set via "...Name".
type FragmentSpread struct {
	Name       Name
	Directives Directives
	Loc        Span
}

var _ Selection = (*FragmentSpread)(nil)

// Span implements Node.
func (s *FragmentSpread) Span() Span { return s.Loc }

func (*FragmentSpread) selectionNode() {}

// InlineFragment applies a selection set directly, optionally narrowed by a type condition.
type InlineFragment struct {
	TypeCondition *NamedType // nil when the fragment has no type condition
	Directives    Directives
	SelectionSet  SelectionSet
	Loc           Span
}

var _ Selection = (*InlineFragment)(nil)

// Span implements Node.
func (f *InlineFragment) Span() Span { return f.Loc }

func (*InlineFragment) selectionNode() {}

// HasTypeCondition reports whether the inline fragment narrows its parent type.
func (f *InlineFragment) HasTypeCondition() bool { return f.TypeCondition != nil }

//===----------------------------------------------------------------------------------------====//
// Arguments
//===----------------------------------------------------------------------------------------====//

// Arguments is an ordered list of field or directive arguments.
type Arguments []*Argument

// ByName performs a linear scan for name; argument lists are small so this is acceptable.
func (args Arguments) ByName(name string) *Argument {
	for _, arg := range args {
		if arg.Name.Value == name {
			return arg
		}
	}
	return nil
}

// Argument binds a Value to a name within a Field or Directive application.
type Argument struct {
	Name  Name
	Value Value
	Loc   Span
}

// Span implements Node.
func (a *Argument) Span() Span { return a.Loc }

//===----------------------------------------------------------------------------------------====//
// Directives
//===----------------------------------------------------------------------------------------====//

// Directives is an ordered list of directive applications.
type Directives []*Directive

// ByName returns every directive in ds with the given name, in source order.
func (ds Directives) ByName(name string) []*Directive {
	var found []*Directive
	for _, d := range ds {
		if d.Name.Value == name {
			found = append(found, d)
		}
	}
	return found
}

// Directive applies a named directive with optional arguments.
type Directive struct {
	Name      Name
	Arguments Arguments
	Loc       Span
}

// Span implements Node.
func (d *Directive) Span() Span { return d.Loc }

//===----------------------------------------------------------------------------------------====//
// Type references
//===----------------------------------------------------------------------------------------====//

// Type is a reference to a type in source form: NamedType, ListType or NonNullType.
type Type interface {
	Node
	typeNode()
}

// NullableType is a Type that NonNullType may wrap: NamedType or ListType.
type NullableType interface {
	Type
	nullableTypeNode()
}

// NamedType refers to a type by name.
type NamedType struct {
	Name Name
	Loc  Span
}

var (
	_ Type         = NamedType{}
	_ NullableType = NamedType{}
)

// Span implements Node.
func (t NamedType) Span() Span { return t.Loc }

func (NamedType) typeNode()         {}
func (NamedType) nullableTypeNode() {}

// ListType refers to a list of some item type.
type ListType struct {
	ItemType Type
	Loc      Span
}

var (
	_ Type         = ListType{}
	_ NullableType = ListType{}
)

// Span implements Node.
func (t ListType) Span() Span { return t.Loc }

func (ListType) typeNode()         {}
func (ListType) nullableTypeNode() {}

// NonNullType refers to a non-null variant of a NullableType.
type NonNullType struct {
	Type NullableType
	Loc  Span
}

var _ Type = NonNullType{}

// Span implements Node.
func (t NonNullType) Span() Span { return t.Loc }

func (NonNullType) typeNode() {}

//===----------------------------------------------------------------------------------------====//
// Values
//===----------------------------------------------------------------------------------------====//

// Value is one of Variable, IntValue, FloatValue, StringValue, BooleanValue, NullValue,
// EnumValue, ListValue or ObjectValue. Variable is only legal where the grammar allows a
// non-const value.
type Value interface {
	Node
	// Interface returns a plain Go representation of the literal (numbers as their raw source text,
	// strings as their decoded value, bools, nil, []interface{}, map[string]interface{}, or a
	// variable's name).
	Interface() interface{}
	valueNode()
}

// IntValue is an integer literal.
type IntValue struct {
	Raw string
	Loc Span
}

func (v IntValue) Span() Span             { return v.Loc }
func (IntValue) valueNode()               {}
func (v IntValue) Interface() interface{} { return v.Raw }

// FloatValue is a floating point literal.
type FloatValue struct {
	Raw string
	Loc Span
}

func (v FloatValue) Span() Span             { return v.Loc }
func (FloatValue) valueNode()               {}
func (v FloatValue) Interface() interface{} { return v.Raw }

// StringValue is a string or block-string literal.
type StringValue struct {
	Value string
	Loc   Span
}

func (v StringValue) Span() Span             { return v.Loc }
func (StringValue) valueNode()               {}
func (v StringValue) Interface() interface{} { return v.Value }

// BooleanValue is "true" or "false".
type BooleanValue struct {
	Value bool
	Loc   Span
}

func (v BooleanValue) Span() Span             { return v.Loc }
func (BooleanValue) valueNode()               {}
func (v BooleanValue) Interface() interface{} { return v.Value }

// NullValue is the literal "null".
type NullValue struct {
	Loc Span
}

func (v NullValue) Span() Span             { return v.Loc }
func (NullValue) valueNode()               {}
func (v NullValue) Interface() interface{} { return nil }

// EnumValue is a bare name used as an enum member reference.
type EnumValue struct {
	Value string
	Loc   Span
}

func (v EnumValue) Span() Span             { return v.Loc }
func (EnumValue) valueNode()               {}
func (v EnumValue) Interface() interface{} { return v.Value }

// ListValue is "[" Value* "]".
type ListValue struct {
	Values []Value
	Loc    Span
}

func (v ListValue) Span() Span { return v.Loc }
func (ListValue) valueNode()   {}

// Interface implements Value.
func (v ListValue) Interface() interface{} {
	out := make([]interface{}, len(v.Values))
	for i, item := range v.Values {
		out[i] = item.Interface()
	}
	return out
}

// ObjectValue is "{" ObjectField* "}". Duplicate keys are preserved here — rejecting them is a
// validation concern, not a parse error.
type ObjectValue struct {
	Fields []*ObjectField
	Loc    Span
}

func (v ObjectValue) Span() Span { return v.Loc }
func (ObjectValue) valueNode()   {}

// Interface implements Value.
func (v ObjectValue) Interface() interface{} {
	out := make(map[string]interface{}, len(v.Fields))
	for _, f := range v.Fields {
		out[f.Name.Value] = f.Value.Interface()
	}
	return out
}

// ByName returns every field in v with the given name, in source order (there may be more than
// one when the literal carries duplicate keys).
func (v ObjectValue) ByName(name string) []*ObjectField {
	var found []*ObjectField
	for _, f := range v.Fields {
		if f.Name.Value == name {
			found = append(found, f)
		}
	}
	return found
}

// ObjectField assigns a Value to a field name within an ObjectValue.
type ObjectField struct {
	Name  Name
	Value Value
	Loc   Span
}

// Span implements Node.
func (f *ObjectField) Span() Span { return f.Loc }
