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

// reservedEnumValueNames are names the GraphQL specification reserves for literals in the value
// language and may never be used as the name of an enum value.
var reservedEnumValueNames = map[string]bool{
	"true":  true,
	"false": true,
	"null":  true,
}

// checkEnumValues asserts that no Enum in the schema declares a value named "true", "false" or
// "null". Value name uniqueness within one enum needs no check here: EnumValueMap is keyed by name,
// so the type doing the declaring (graphql/enum.go's Finalize) cannot represent two values sharing a
// name in the first place -- there is nothing for a runtime walk to catch.
func checkEnumValues(schema graphql.Schema) graphql.Errors {
	var errs graphql.Errors
	typeMap := schema.TypeMap()

	for _, name := range typeMap.Names() {
		enum, ok := typeMap.Lookup(name).(graphql.Enum)
		if !ok {
			continue
		}
		for _, valueName := range enum.Values().Names() {
			if reservedEnumValueNames[valueName] {
				errs.Emplace(
					fmt.Sprintf("Enum %q cannot have a value named %q: it is reserved for use in the GraphQL value language.", name, valueName),
					graphql.ErrorExtensions{"code": ReservedEnumValueName})
			}
		}
	}

	return errs
}
