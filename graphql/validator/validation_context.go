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
	internal "github.com/gqlforge/gqlforge/graphql/internal/validator"
	astutil "github.com/gqlforge/gqlforge/graphql/util/ast"
)

// A ValidationContext stores various states for running walk function and validation rules.
type ValidationContext struct {
	schema   graphql.Schema
	document ast.Document
	rules    *rules

	// Mapping FragmentDefinition's from their names; this is lazily computed on first query.
	fragments map[string]*ast.FragmentDefinition

	// Mapping fragment name to the FragmentInfo wrapping it, shared across every rule that asks for
	// the same fragment so that e.g. NoFragmentCycles' CycleChecked bit sticks.
	fragmentInfos map[string]*FragmentInfo

	// Per-operation variable usage cache; see VariableUsages.
	variableUsages map[*ast.OperationDefinition][]VariableUsage

	// Per-operation variable declaration cache; see VariableInfo.
	variableInfos map[*ast.OperationDefinition]map[string]*VariableInfo

	// Error list
	errs graphql.Errors

	//===----------------------------------------------------------------------------------------====//
	// States for "rules".
	//===----------------------------------------------------------------------------------------====//

	// "Skipping" state for the rule at index i; possible values are:
	//
	// - nil: run the rule
	// - skipRuleEntirely{}: stop applying the rule on any nodes
	// - an ast.Node: don't apply the rule on the child nodes of the given node
	skippingRules []interface{}

	//===----------------------------------------------------------------------------------------====//
	// States for walk functions
	//===----------------------------------------------------------------------------------------====//

	// Operation in the document that is being validated
	currentOperation *ast.OperationDefinition

	//===----------------------------------------------------------------------------------------====//
	// States for rules package
	//===----------------------------------------------------------------------------------------====//

	// UniqueOperationNames
	KnownOperationNames map[string]ast.Name

	// OverlappingFieldsCanBeMerged / FieldSelectionMerging

	// A memoization for when two fragments are compared "between" each other for conflicts. Two
	// fragments may be compared many times, so memoizing this can dramatically improve the
	// performance of this validator.
	FragmentPairSet internal.ConflictFragmentPairSet

	// A cache for the "field map" and list of fragment names found in any given selection set.
	// Selection sets may be asked for this information multiple times, so this improves the
	// performance of this validator.
	FieldsAndFragmentNamesCache internal.FieldsAndFragmentNamesCache

	// UniqueFragmentNames
	KnownFragmentNames map[string]ast.Name

	// KnownTypeNames

	// existingTypeNames caches all type names occurred in the schema; this is lazily initialized at
	// the first time ExistingTypeNames is called. It is used by the KnownTypeNames rule to make a
	// suggestion list.
	existingTypeNames []string
}

// skipRuleEntirely marks a rule index in skippingRules as permanently disabled for the remainder
// of the validation run (StopCheck).
type skipRuleEntirely struct{}

// newValidationContext initializes a validation context for validating given document.
func newValidationContext(schema graphql.Schema, document ast.Document, rules *rules) *ValidationContext {
	return &ValidationContext{
		schema:   schema,
		document: document,
		rules:    rules,

		skippingRules: make([]interface{}, rules.numRules),

		KnownOperationNames: map[string]ast.Name{},

		FragmentPairSet:             internal.NewConflictFragmentPairSet(),
		FieldsAndFragmentNamesCache: internal.NewFieldsAndFragmentNamesCache(),

		KnownFragmentNames: map[string]ast.Name{},
	}
}

// Schema returns schema of the document being validated.
func (ctx *ValidationContext) Schema() graphql.Schema {
	return ctx.schema
}

// Document returns the document being validated.
func (ctx *ValidationContext) Document() ast.Document {
	return ctx.document
}

// TypeResolver creates astutil.TypeResolver to resolve type for AST nodes during validation.
func (ctx *ValidationContext) TypeResolver() astutil.TypeResolver {
	return astutil.TypeResolver{
		Schema: ctx.schema,
	}
}

// Fragment looks up the FragmentDefinition with given name in current document.
func (ctx *ValidationContext) Fragment(name string) *ast.FragmentDefinition {
	fragmentMap := ctx.fragments
	if fragmentMap == nil {
		fragmentMap = map[string]*ast.FragmentDefinition{}
		for _, definition := range ctx.document.Fragments() {
			fragmentMap[definition.Name.Value] = definition
		}
		ctx.fragments = fragmentMap
	}
	return fragmentMap[name]
}

// FragmentInfo looks up (building and caching on first use) the FragmentInfo wrapping the named
// fragment, or nil if no such fragment is defined in the document.
func (ctx *ValidationContext) FragmentInfo(name string) *FragmentInfo {
	if info, ok := ctx.fragmentInfos[name]; ok {
		return info
	}

	definition := ctx.Fragment(name)
	if definition == nil {
		return nil
	}

	info := newFragmentInfo(ctx.schema, definition)
	if ctx.fragmentInfos == nil {
		ctx.fragmentInfos = map[string]*FragmentInfo{}
	}
	ctx.fragmentInfos[name] = info

	return info
}

// VariableInfo looks up the declaration of the variable named name within operation, resolving and
// caching its declared type on first use. Returns nil if the operation declares no such variable.
func (ctx *ValidationContext) VariableInfo(operation *ast.OperationDefinition, name string) *VariableInfo {
	byName, ok := ctx.variableInfos[operation]
	if !ok {
		byName = map[string]*VariableInfo{}
		resolver := ctx.TypeResolver()
		for _, def := range operation.VariableDefinitions {
			byName[def.Variable.Name.Value] = &VariableInfo{
				node:    def,
				typeDef: resolver.ResolveType(def.Type),
			}
		}
		if ctx.variableInfos == nil {
			ctx.variableInfos = map[*ast.OperationDefinition]map[string]*VariableInfo{}
		}
		ctx.variableInfos[operation] = byName
	}
	return byName[name]
}

// CurrentOperation returns the operation in the document being validated.
func (ctx *ValidationContext) CurrentOperation() *ast.OperationDefinition {
	return ctx.currentOperation
}

// ReportError constructs a graphql.Error anchored at primary and appends it to the current
// validation context for reporting.
func (ctx *ValidationContext) ReportError(
	kind graphql.Kind,
	message string,
	primary ast.Span,
	secondary ...graphql.Annotation) {

	ctx.errs.Emplace(kind, message, primary, secondary...)
}

// ExistingTypeNames returns list of types declared in the schema.
func (ctx *ValidationContext) ExistingTypeNames() []string {
	existingTypeNames := ctx.existingTypeNames
	if existingTypeNames == nil {
		typeMap := ctx.Schema().TypeMap()
		existingTypeNames = make([]string, 0, len(typeMap))
		for name := range typeMap {
			existingTypeNames = append(existingTypeNames, name)
		}
		ctx.existingTypeNames = existingTypeNames
	}
	return existingTypeNames
}
