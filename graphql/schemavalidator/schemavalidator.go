/**
 * Copyright (c) 2018, The Artemis Authors.
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

// Package schemavalidator walks an already-built graphql.Schema and asserts the invariants a
// well-formed schema must hold. Unlike graphql/validator, which checks an executable query document
// against a schema, schemavalidator checks the schema itself: that every named type reference is
// internally consistent, that built-in types and directives haven't been shadowed, that every
// Object/Interface correctly implements the interfaces it claims to, that enum values and input
// objects are well-formed, and that @oneOf input objects meet the nullability constraints that
// directive requires.
//
// Failure is collecting, not fail-fast: Validate runs every check and returns every error found, so
// a caller (typically schemabuilder, unless the schema was constructed with AssumeValid) can report
// every problem with a schema at once instead of one round-trip at a time.
package schemavalidator

import (
	"github.com/harborgql/harbor/graphql"
)

// Error codes surfaced in the "code" extension of errors returned by Validate.
const (
	// ReferenceIntegrity is reported when a named type reference (field type, argument type,
	// implemented interface, union member, directive argument, ...) does not resolve to the exact
	// Type instance registered under that name in the schema's TypeMap.
	ReferenceIntegrity = "REFERENCE_INTEGRITY"

	// BuiltInShadowed is reported when the schema's type map or directive list associates a built-in
	// name (a built-in scalar or a standard directive) with something other than the built-in
	// definition.
	BuiltInShadowed = "BUILT_IN_SHADOWED"

	// InterfaceFieldMissing is reported when an Object or Interface claims to implement an interface
	// but does not define one of that interface's fields.
	InterfaceFieldMissing = "INTERFACE_FIELD_MISSING"

	// InterfaceFieldTypeMismatch is reported when an implementing type's field exists but its output
	// type is not a valid subtype of the interface field's declared type.
	InterfaceFieldTypeMismatch = "INTERFACE_FIELD_TYPE_MISMATCH"

	// InterfaceArgMismatch is reported when an implementing type's field is missing an argument the
	// interface field declares, or declares it with a different type.
	InterfaceArgMismatch = "INTERFACE_ARG_MISMATCH"

	// ExtraRequiredArgument is reported when an implementing type's field declares an argument the
	// interface field doesn't have, and that extra argument is required (non-null, no default).
	ExtraRequiredArgument = "EXTRA_REQUIRED_ARGUMENT"

	// ReservedEnumValueName is reported when an enum value is named "true", "false" or "null".
	ReservedEnumValueName = "RESERVED_ENUM_VALUE_NAME"

	// InputObjectCycle is reported when an InputObject's fields form a cycle through one or more
	// NonNull-wrapped references, making the type impossible to ever instantiate.
	InputObjectCycle = "INPUT_OBJECT_CYCLE"

	// OneOfFieldNotNullable is reported when a field of an @oneOf InputObject has a NonNull type.
	OneOfFieldNotNullable = "ONE_OF_FIELD_NOT_NULLABLE"

	// OneOfFieldHasDefault is reported when a field of an @oneOf InputObject declares a default
	// value.
	OneOfFieldHasDefault = "ONE_OF_FIELD_HAS_DEFAULT"
)

// Validate walks schema and returns every invariant violation found. A zero-value (NoErrors) result
// means schema is well-formed.
func Validate(schema graphql.Schema) graphql.Errors {
	var errs graphql.Errors
	errs.AppendErrors(
		checkReferenceIntegrity(schema),
		checkBuiltins(schema),
		checkInterfaceImplementations(schema),
		checkEnumValues(schema),
		checkInputObjectAcyclicity(schema),
		checkOneOfInputObjects(schema),
	)
	return errs
}
