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

// Package rules provides the complete set of validation rules required by the "Validation"
// section of the June 2018 GraphQL specification. Importing this package for side effect (e.g.
// `import _ "github.com/gqlforge/gqlforge/graphql/validator/rules"`) registers them with
// validator.StandardRules so that validator.Validate can run them.
package rules

import "github.com/gqlforge/gqlforge/graphql/validator"

func init() {
	validator.InitStandardRules(
		// Documents
		ExecutableDefinitions{},

		// Operations
		LoneAnonymousOperation{},
		SingleFieldSubscriptions{},
		UniqueOperationNames{},

		// Fields
		FieldsOnCorrectType{},
		ScalarLeafs{},
		OverlappingFieldsCanBeMerged{},

		// Arguments
		KnownArgumentNames{},
		UniqueArgumentNames{},
		ProvidedRequiredArguments{},

		// Fragments
		KnownFragmentNames{},
		NoFragmentCycles{},
		NoUnusedFragments{},
		PossibleFragmentSpreads{},
		UniqueFragmentNames{},
		FragmentsOnCompositeTypes{},

		// Values
		ValuesOfCorrectType{},
		UniqueInputFieldNames{},

		// Directives
		KnownDirectives{},
		DirectivesInValidLocations{},
		UniqueDirectivesPerLocation{},

		// Variables
		UniqueVariableNames{},
		NoUndefinedVariables{},
		NoUnusedVariables{},
		VariablesAreInputTypes{},
		VariablesInAllowedPosition{},

		// Types
		KnownTypeNames{},
	)
}
