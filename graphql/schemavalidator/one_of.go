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

package schemavalidator

import (
	"fmt"

	"github.com/harborgql/harbor/graphql"
)

// checkOneOfInputObjects asserts that every InputObject declared with IsOneOf() true keeps to the
// shape a "supply exactly one field" InputObject requires: every field must be nullable (a
// NonNull field could never be left unset by the other branches) and none may carry a default value
// (a default would make "was this field supplied" ambiguous with the oneOf discriminant itself).
func checkOneOfInputObjects(schema graphql.Schema) graphql.Errors {
	var errs graphql.Errors
	typeMap := schema.TypeMap()

	for _, name := range typeMap.Names() {
		inputObject, ok := typeMap.Lookup(name).(graphql.InputObject)
		if !ok || !inputObject.IsOneOf() {
			continue
		}

		inputObject.Fields().Range(func(fieldName string, field graphql.InputField) bool {
			if graphql.IsNonNullType(field.Type()) {
				errs.Emplace(
					fmt.Sprintf("OneOf InputObject %q field %q must be nullable.", name, fieldName),
					graphql.ErrorExtensions{"code": OneOfFieldNotNullable})
			}
			if field.HasDefaultValue() {
				errs.Emplace(
					fmt.Sprintf("OneOf InputObject %q field %q must not have a default value.", name, fieldName),
					graphql.ErrorExtensions{"code": OneOfFieldHasDefault})
			}
			return true
		})
	}

	return errs
}
