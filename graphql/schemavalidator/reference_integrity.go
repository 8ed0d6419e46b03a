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

// checkReferenceIntegrity re-walks every named-type reference reachable from the schema (field
// types, argument types, implemented interfaces, union members, directive arguments) and confirms
// each one resolves, by name, to the exact Type instance the schema's TypeMap has registered for
// that name.
//
// graphql.NewSchema's own TypeMap-building walk already enforces this for any graphql.Schema that
// actually exists: a name collision between two distinct Type instances makes NewSchema fail
// outright, so there would be no Schema value to hand to Validate in the first place (see the
// "Schema must contain unique named types" error in graphql/schema.go's TypeMap.add). This check
// exists to make that guarantee an explicit, load-bearing part of schemavalidator's contract rather
// than an accident of how the package's only Schema implementation happens to be built, since
// Validate documents this as one of the invariants a schema must hold regardless of how it was
// constructed.
func checkReferenceIntegrity(schema graphql.Schema) graphql.Errors {
	var errs graphql.Errors
	typeMap := schema.TypeMap()

	verify := func(ownerKind, ownerName string, ref graphql.Type) {
		if ref == nil {
			return
		}
		named := graphql.NamedTypeOf(ref)
		withName, ok := named.(graphql.TypeWithName)
		if !ok {
			return
		}
		name := withName.Name()
		if typeMap.Lookup(name) != named {
			errs.Emplace(
				fmt.Sprintf("%s %q references type %q, which is not the type the schema registered under that name.",
					ownerKind, ownerName, name),
				graphql.ErrorExtensions{"code": ReferenceIntegrity})
		}
	}

	for _, name := range typeMap.Names() {
		switch t := typeMap.Lookup(name).(type) {
		case graphql.Object:
			for _, iface := range t.Interfaces() {
				verify("Object", name, iface)
			}
			t.Fields().Range(func(_ string, field graphql.Field) bool {
				verify("Object", name, field.Type())
				for _, arg := range field.Args() {
					verify("Object", name, arg.Type())
				}
				return true
			})

		case graphql.Interface:
			for _, iface := range t.Interfaces() {
				verify("Interface", name, iface)
			}
			t.Fields().Range(func(_ string, field graphql.Field) bool {
				verify("Interface", name, field.Type())
				for _, arg := range field.Args() {
					verify("Interface", name, arg.Type())
				}
				return true
			})

		case graphql.Union:
			for _, member := range t.PossibleTypes().Slice() {
				verify("Union", name, member)
			}

		case graphql.InputObject:
			t.Fields().Range(func(_ string, field graphql.InputField) bool {
				verify("InputObject", name, field.Type())
				return true
			})
		}
	}

	for _, directive := range schema.Directives() {
		for _, arg := range directive.Args() {
			verify("Directive", directive.Name(), arg.Type())
		}
	}

	return errs
}
