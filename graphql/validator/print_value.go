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
	"strconv"
	"strings"

	"github.com/gqlforge/gqlforge/graphql/ast"
)

// printValue renders a literal value the way it appeared in the document, for use in "found ..."
// error messages. It is not a general-purpose AST printer: only the shapes Coerce reports on.
func printValue(value ast.Value) string {
	switch value := value.(type) {
	case ast.Variable:
		return "$" + value.Name.Value

	case ast.IntValue:
		return value.Raw

	case ast.FloatValue:
		return value.Raw

	case ast.StringValue:
		return strconv.Quote(value.Value)

	case ast.BooleanValue:
		return strconv.FormatBool(value.Value)

	case ast.NullValue:
		return "null"

	case ast.EnumValue:
		return value.Value

	case ast.ListValue:
		items := make([]string, len(value.Values))
		for i, item := range value.Values {
			items[i] = printValue(item)
		}
		return "[" + strings.Join(items, ", ") + "]"

	case ast.ObjectValue:
		fields := make([]string, len(value.Fields))
		for i, field := range value.Fields {
			fields[i] = field.Name.Value + ": " + printValue(field.Value)
		}
		return "{" + strings.Join(fields, ", ") + "}"

	default:
		return "<unknown value>"
	}
}
