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

// FragmentInfo wraps a FragmentDefinition with state shared across rules that need to traverse the
// fragment graph: its resolved type condition and a visited bit used by NoFragmentCycles to avoid
// re-walking a fragment (or a subgraph reachable from it) once it has already been checked in the
// current validation run.
type FragmentInfo struct {
	// CycleChecked is set once NoFragmentCycles has walked this fragment's selection set (and
	// everything it spreads) looking for cycles. It is exported because NoFragmentCycles drives the
	// DFS itself, pushing and popping fragments off its own stack as it goes.
	CycleChecked bool

	used bool

	definition    *ast.FragmentDefinition
	typeCondition graphql.Type
}

// Definition returns the fragment's AST definition.
func (info *FragmentInfo) Definition() *ast.FragmentDefinition {
	return info.definition
}

// Name returns the fragment's name.
func (info *FragmentInfo) Name() string {
	return info.definition.Name.Value
}

// TypeCondition returns the type the fragment's selection set applies to, or nil if the type
// condition names an unknown type.
func (info *FragmentInfo) TypeCondition() graphql.Type {
	return info.typeCondition
}

// Used reports whether the fragment has been reached, directly or transitively, by a fragment
// spread rooted at an operation.
func (info *FragmentInfo) Used() bool {
	return info.used
}

// RecursivelyMarkUsed marks the fragment as used and walks its selection set to mark every
// fragment it spreads, directly or through nested fragments, as used too. It is idempotent: a
// fragment already marked used (including one on a cycle that leads back to it) is not
// re-traversed.
func (info *FragmentInfo) RecursivelyMarkUsed(ctx *ValidationContext) {
	if info.used {
		return
	}
	info.used = true

	selectionSets := []ast.SelectionSet{info.definition.SelectionSet}
	for len(selectionSets) > 0 {
		selectionSet := selectionSets[len(selectionSets)-1]
		selectionSets = selectionSets[:len(selectionSets)-1]

		for _, selection := range selectionSet.Selections {
			switch sel := selection.(type) {
			case *ast.Field:
				selectionSets = append(selectionSets, sel.SelectionSet)

			case *ast.InlineFragment:
				selectionSets = append(selectionSets, sel.SelectionSet)

			case *ast.FragmentSpread:
				if spread := ctx.FragmentInfo(sel.Name.Value); spread != nil {
					spread.RecursivelyMarkUsed(ctx)
				}
			}
		}
	}
}

func newFragmentInfo(schema graphql.Schema, definition *ast.FragmentDefinition) *FragmentInfo {
	resolver := astutil.TypeResolver{Schema: schema}
	return &FragmentInfo{
		definition:    definition,
		typeCondition: resolver.ResolveType(definition.TypeCondition),
	}
}
