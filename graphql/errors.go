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

package graphql

import (
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/gqlforge/gqlforge/graphql/ast"
)

// Kind identifies the kind of validation failure an Error reports, so a caller can switch on it
// without string-matching a message. A rule in package validator/rules may report more than one
// Kind, one per sub-case it detects.
type Kind string

// Enumeration of Kind. Names follow the error taxonomy of the GraphQL specification's
// "Validation" section rather than the Go type name of the rule that reports them — several
// rules report more than one Kind depending on which sub-case fired.
const (
	// Document-level.
	KindExecutableDefinitions          Kind = "ExecutableDefinitions"
	KindNotLoneAnonymousOperation      Kind = "NotLoneAnonymousOperation"
	KindSubscriptionRootNotSingleField Kind = "SubscriptionRootNotSingleField"
	KindNonUniqueOperationNames        Kind = "NonUniqueOperationNames"

	// Field and selection.
	KindFieldDoesNotExistOnType         Kind = "FieldDoesNotExistOnType"
	KindLeafFieldSelectionsNotOnType    Kind = "LeafFieldSelectionsNotOnType"
	KindNonLeafFieldSelectionOnLeafType Kind = "NonLeafFieldSelectionOnLeafType"
	KindFieldSelectionsDoNotMerge       Kind = "FieldSelectionsDoNotMerge"

	// Arguments.
	KindArgumentDoesNotExistOnField     Kind = "ArgumentDoesNotExistOnField"
	KindArgumentDoesNotExistOnDirective Kind = "ArgumentDoesNotExistOnDirective"
	KindNonUniqueArgumentNames          Kind = "NonUniqueArgumentNames"
	KindRequiredArgumentMissing         Kind = "RequiredArgumentMissing"

	// Values (also reported standalone by the input coercion component, graphql/validator/coercion.go).
	KindNullValueForRequiredType Kind = "NullValueForRequiredType"
	KindNoImplicitConversion     Kind = "NoImplicitConversion"
	KindNoEnumMemberWithName     Kind = "NoEnumMemberWithName"
	KindNonUniqueFieldNames      Kind = "NonUniqueFieldNames"
	KindNoInputFieldWithName     Kind = "NoInputFieldWithName"
	KindNoValueForRequiredFields Kind = "NoValueForRequiredFields"

	// Fragments.
	KindNonUniqueFragmentNames                   Kind = "NonUniqueFragmentNames"
	KindFragmentDefinitionTargetTypeNotComposite Kind = "FragmentDefinitionTargetTypeNotComposite"
	KindInlineFragmentTargetTypeNotComposite     Kind = "InlineFragmentTargetTypeNotComposite"
	KindFragmentDefinitionUnused                 Kind = "FragmentDefinitionUnused"
	KindFragmentSpreadTargetNotDefined           Kind = "FragmentSpreadTargetNotDefined"
	KindFragmentSpreadTypeImpossible             Kind = "FragmentSpreadTypeImpossible"
	KindFragmentCycle                            Kind = "FragmentCycle"
	KindFragmentSpreadTypeUnknown                Kind = "FragmentSpreadTypeUnknown"

	// Directives.
	KindDirectiveDoesNotExist          Kind = "DirectiveDoesNotExist"
	KindDirectiveInInvalidLocation     Kind = "DirectiveInInvalidLocation"
	KindNonUniqueDirectivesPerLocation Kind = "NonUniqueDirectivesPerLocation"

	// Variables.
	KindNonUniqueVariableNames Kind = "NonUniqueVariableNames"
	KindVariableTypeNotInput   Kind = "VariableTypeNotInput"
	KindVariableUndefined      Kind = "VariableUndefined"
	KindVariableUnused         Kind = "VariableUnused"
	KindInvalidVariableUsage   Kind = "InvalidVariableUsage"

	// KindCoercion is reported directly by Scalar.CoerceLiteralValue implementations; it is not
	// tied to a single rule or to the taxonomy above, which describes the shape of the mismatch
	// in its caller's own terms instead (e.g. KindNoImplicitConversion).
	KindCoercion Kind = "Coercion"
)

// Annotation pairs a source span with a human-readable message. An Error carries exactly one
// Primary annotation and zero or more Secondary ones that add context (e.g. the other location a
// conflicting field was selected at).
type Annotation struct {
	Span    ast.Span
	Message string
}

// Error is a single validation failure. Its Kind names the rule that produced it; Message is the
// spec-wording description of the failure; Primary is where in the document the failure is
// anchored; Secondary annotates related locations.
type Error struct {
	Kind      Kind
	Message   string
	Primary   Annotation
	Secondary []Annotation

	// Wrapped is set when the Error was derived from a lower-level error (e.g. a custom scalar's
	// CoerceLiteralValue returning a domain-specific error). It is nil otherwise.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap allows errors.Is/errors.As to see through to Wrapped.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Locations returns every span touched by the error, primary first.
func (e *Error) Locations() []ast.Span {
	spans := make([]ast.Span, 0, 1+len(e.Secondary))
	spans = append(spans, e.Primary.Span)
	for _, a := range e.Secondary {
		spans = append(spans, a.Span)
	}
	return spans
}

// jsonError is the wire shape for an Error; Wrapped is intentionally omitted since it is an
// internal Go error value with no stable serialization.
type jsonError struct {
	Kind      Kind         `json:"kind"`
	Message   string       `json:"message"`
	Primary   Annotation   `json:"primary"`
	Secondary []Annotation `json:"secondary,omitempty"`
}

// MarshalJSON implements json.Marshaler using the project's json-iterator configuration.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(jsonError{
		Kind:      e.Kind,
		Message:   e.Message,
		Primary:   e.Primary,
		Secondary: e.Secondary,
	})
}

// NewError builds an Error anchored at primary with the given message, kind and optional
// secondary annotations.
func NewError(kind Kind, message string, primary ast.Span, secondary ...Annotation) *Error {
	return &Error{
		Kind:      kind,
		Message:   message,
		Primary:   Annotation{Span: primary, Message: message},
		Secondary: secondary,
	}
}

// Errors is an ordered collection of validation Errors. The zero value is an empty, usable
// collection.
type Errors []*Error

// NoErrors returns an empty Errors collection, for callers that want to name the "valid, no
// errors" case explicitly.
func NoErrors() Errors { return nil }

// Emplace appends a new Error built from kind, message, primary span and optional secondary
// annotations.
func (errs *Errors) Emplace(kind Kind, message string, primary ast.Span, secondary ...Annotation) {
	*errs = append(*errs, NewError(kind, message, primary, secondary...))
}

// Append adds existing Errors to the collection.
func (errs *Errors) Append(more ...*Error) {
	*errs = append(*errs, more...)
}

// HasErrors reports whether the collection is non-empty.
func (errs Errors) HasErrors() bool {
	return len(errs) > 0
}

// Error implements the error interface by joining every message, one per line.
func (errs Errors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Message)
	}
	return b.String()
}

// MarshalJSON implements json.Marshaler, always producing a JSON array (never null) so API
// responses have a stable "errors" shape.
func (errs Errors) MarshalJSON() ([]byte, error) {
	if errs == nil {
		return []byte("[]"), nil
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal([]*Error(errs))
}
