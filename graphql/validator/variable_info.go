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

// VariableInfo wraps a VariableDefinition with its resolved declared type, for use by
// VariableUsageRule. A nil *VariableInfo, or a nil TypeDef, means the variable's declared type
// could not be statically resolved (e.g. it refers to an unknown type), in which case rules should
// skip type-compatibility checks for that usage rather than report a spurious error.
type VariableInfo struct {
	node    *ast.VariableDefinition
	typeDef graphql.Type
	used    bool
}

// Node returns the AST node declaring the variable.
func (info *VariableInfo) Node() *ast.VariableDefinition {
	return info.node
}

// Name returns the variable's name, without the leading "$".
func (info *VariableInfo) Name() string {
	return info.node.Variable.Name.Value
}

// TypeDef returns the variable's declared type, or nil if it couldn't be resolved.
func (info *VariableInfo) TypeDef() graphql.Type {
	return info.typeDef
}

// Used reports whether some usage of the variable has been observed within its operation.
func (info *VariableInfo) Used() bool {
	return info.used
}

// MarkUsed records that the variable was referenced somewhere within its operation, either
// directly or through a spread fragment.
func (info *VariableInfo) MarkUsed() {
	info.used = true
}
