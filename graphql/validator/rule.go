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
)

// A Rule implements one section under "Validation" in the June 2018 GraphQL specification. Each
// rule opts in to the node kinds it cares about by implementing one or more of the interfaces
// below; walk dispatches to every applicable interface a rule satisfies.
//
// See https://graphql.github.io/graphql-spec/June2018/#sec-Validation.

// NextCheckAction is returned by every Check* method to tell the driver what to do the next time
// the same rule would be invoked during the current validation run.
type NextCheckAction int

// Enumeration of NextCheckAction.
const (
	// ContinueCheck runs the rule again on the next applicable node.
	ContinueCheck NextCheckAction = iota

	// SkipCheckForChildNodes suppresses the rule for descendants of the node just checked, but
	// resumes it once the walk leaves that subtree.
	SkipCheckForChildNodes

	// StopCheck disables the rule for the remainder of the current validation run.
	StopCheck
)

// OperationRule validates an OperationDefinition.
type OperationRule interface {
	CheckOperation(ctx *ValidationContext, operation *ast.OperationDefinition) NextCheckAction
}

// VariableRule validates a VariableDefinition, after variable usages within its operation (direct
// or via spread fragments) have been collected, so rules can inspect VariableInfo.Used.
type VariableRule interface {
	CheckVariable(ctx *ValidationContext, info *VariableInfo) NextCheckAction
}

// FragmentRule validates a FragmentDefinition.
type FragmentRule interface {
	CheckFragment(
		ctx *ValidationContext,
		fragmentInfo *FragmentInfo,
		fragment *ast.FragmentDefinition) NextCheckAction
}

// SelectionSetRule validates a SelectionSet, given the (unwrapped) composite type it is selecting
// against.
type SelectionSetRule interface {
	CheckSelectionSet(
		ctx *ValidationContext,
		ttype graphql.Type,
		selectionSet ast.SelectionSet) NextCheckAction
}

// FieldInfo carries everything known about a Field being checked: the schema type it is selected
// from, its resolved FieldDefinition (nil for an unknown field), and the AST node itself.
type FieldInfo struct {
	parentType    graphql.Type
	def           *graphql.FieldDefinition
	node          *ast.Field
	knownArgNames []string
}

// ParentType returns the composite type (Object, Interface or Union) the field is selected from.
func (info *FieldInfo) ParentType() graphql.Type {
	return info.parentType
}

// Def returns the field's definition in schema, or nil if the field is unknown to its parent type.
func (info *FieldInfo) Def() *graphql.FieldDefinition {
	return info.def
}

// Type returns the field's declared type, or nil if Def is nil.
func (info *FieldInfo) Type() graphql.Type {
	if info.def != nil {
		return info.def.Type
	}
	return nil
}

// Node returns the AST node selecting the field.
func (info *FieldInfo) Node() *ast.Field {
	return info.node
}

// Name returns the field's name as written in the document.
func (info *FieldInfo) Name() string {
	return info.node.Name.Value
}

// KnownArgNames returns the names of arguments the field definition accepts, for use in "did you
// mean" suggestions. Lazily computed and cached on first call.
func (info *FieldInfo) KnownArgNames() []string {
	if info.knownArgNames != nil || info.def == nil {
		return info.knownArgNames
	}
	names := make([]string, 0, len(info.def.Args))
	for name := range info.def.Args {
		names = append(names, name)
	}
	info.knownArgNames = names
	return names
}

// FieldRule validates a Field.
type FieldRule interface {
	CheckField(ctx *ValidationContext, field *FieldInfo) NextCheckAction
}

// FieldArgumentRule validates an Argument applied to a Field.
type FieldArgumentRule interface {
	CheckFieldArgument(
		ctx *ValidationContext,
		field *FieldInfo,
		argDef *graphql.ArgumentDefinition,
		arg *ast.Argument) NextCheckAction
}

// InlineFragmentRule validates an InlineFragment.
type InlineFragmentRule interface {
	CheckInlineFragment(
		ctx *ValidationContext,
		parentType graphql.Type,
		typeCondition graphql.Type,
		fragment *ast.InlineFragment) NextCheckAction
}

// FragmentSpreadRule validates a FragmentSpread.
type FragmentSpreadRule interface {
	CheckFragmentSpread(
		ctx *ValidationContext,
		parentType graphql.Type,
		fragmentInfo *FragmentInfo,
		fragmentSpread *ast.FragmentSpread) NextCheckAction
}

// ValueRule validates a Value literal against the input type expected at its position. valueType
// is nil when the position's type could not be statically determined (e.g. an argument of an
// unknown field).
type ValueRule interface {
	CheckValue(ctx *ValidationContext, valueType graphql.Type, value ast.Value) NextCheckAction
}

// DirectiveInfo carries everything known about one Directive application: its definition in
// schema (nil if unknown), the AST node, and the location it was applied at.
type DirectiveInfo struct {
	def           *graphql.DirectiveDefinition
	node          *ast.Directive
	location      graphql.DirectiveLocation
	knownArgNames []string
}

// Def returns the directive's definition in schema, or nil if the directive is unknown.
func (info *DirectiveInfo) Def() *graphql.DirectiveDefinition {
	return info.def
}

// Node returns the AST node applying the directive.
func (info *DirectiveInfo) Node() *ast.Directive {
	return info.node
}

// Name returns the directive's name as written in the document.
func (info *DirectiveInfo) Name() string {
	return info.node.Name.Value
}

// Location reports where in the document the directive was applied.
func (info *DirectiveInfo) Location() graphql.DirectiveLocation {
	return info.location
}

// KnownArgNames returns the names of arguments the directive definition accepts, for use in "did
// you mean" suggestions. Lazily computed and cached on first call.
func (info *DirectiveInfo) KnownArgNames() []string {
	if info.knownArgNames != nil || info.def == nil {
		return info.knownArgNames
	}
	names := make([]string, 0, len(info.def.Args))
	for name := range info.def.Args {
		names = append(names, name)
	}
	info.knownArgNames = names
	return names
}

// DirectivesRule validates the full set of directives applied at one location (used by rules that
// must see every directive together, e.g. uniqueness-per-location).
type DirectivesRule interface {
	CheckDirectives(ctx *ValidationContext, directives ast.Directives, location graphql.DirectiveLocation) NextCheckAction
}

// DirectiveRule validates a single Directive application.
type DirectiveRule interface {
	CheckDirective(ctx *ValidationContext, directive *DirectiveInfo) NextCheckAction
}

// DirectiveArgumentRule validates an Argument applied to a Directive.
type DirectiveArgumentRule interface {
	CheckDirectiveArgument(
		ctx *ValidationContext,
		directive *DirectiveInfo,
		argDef *graphql.ArgumentDefinition,
		arg *ast.Argument) NextCheckAction
}

// VariableUsageRule validates one occurrence of a variable within an operation, after the
// operation's whole selection set (including spread fragments) has been collected. Unlike the
// other rules, it is not dispatched by the per-node walk; ValidationContext.VariableUsages
// collects usages directly from the operation so that a variable used inside a fragment is seen
// in the context of every operation that spreads that fragment, not just its lexical location.
type VariableUsageRule interface {
	CheckVariableUsage(
		ctx *ValidationContext,
		ttype graphql.Type,
		variable ast.Variable,
		hasLocationDefaultValue bool,
		info *VariableInfo) NextCheckAction
}
