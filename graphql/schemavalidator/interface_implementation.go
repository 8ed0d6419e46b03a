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
	"github.com/harborgql/harbor/internal/util"
)

// fielder adapts Object/Interface's differently-named field accessors behind one signature so
// checkInterfaceImplementations can treat both the same way.
type fielder interface {
	Fields() graphql.FieldMap
}

// checkInterfaceImplementations asserts, for every Object and Interface in the schema and every
// interface it claims to implement, that it actually implements it: every field the interface
// declares must exist, with a covariant output type and a compatible argument list.
//
// Grounded on graphql/type_comparators.go's IsTypeSubTypeOf for the output-type covariance rule
// (lists/non-null unwrap in lockstep, abstract types check schema.PossibleTypes membership) --
// exactly the rule spec.md §3 describes and the one already shipped in the package this validates.
// Argument compatibility has no existing implementation anywhere in the retrieved snapshot (the
// teacher never built a schema builder or validator to need one), so it's built fresh here following
// the same "walk both field lists, compare by name" shape as
// graphql/validator/rules/provided_required_arguments.go's required-argument check.
func checkInterfaceImplementations(schema graphql.Schema) graphql.Errors {
	var errs graphql.Errors
	typeMap := schema.TypeMap()

	for _, name := range typeMap.Names() {
		switch t := typeMap.Lookup(name).(type) {
		case graphql.Object:
			for _, iface := range t.Interfaces() {
				checkImplements(schema, &errs, name, t, iface)
			}
		case graphql.Interface:
			for _, iface := range t.Interfaces() {
				checkImplements(schema, &errs, name, t, iface)
			}
		}
	}

	return errs
}

func checkImplements(schema graphql.Schema, errs *graphql.Errors, implementorName string, implementor fielder, iface graphql.Interface) {
	ifaceName := iface.Name()
	implementorFields := implementor.Fields()

	iface.Fields().Range(func(fieldName string, ifaceField graphql.Field) bool {
		field := implementorFields.Lookup(fieldName)
		if field == nil {
			errs.Emplace(
				fmt.Sprintf("Interface field %s.%s is not implemented by %s.", ifaceName, fieldName, implementorName),
				graphql.ErrorExtensions{"code": InterfaceFieldMissing})
			return true
		}

		if !graphql.IsTypeSubTypeOf(schema, field.Type(), ifaceField.Type()) {
			errs.Emplace(
				fmt.Sprintf("Interface field %s.%s expects type %s but %s.%s is type %s.",
					ifaceName, fieldName, graphql.Inspect(ifaceField.Type()),
					implementorName, fieldName, graphql.Inspect(field.Type())),
				graphql.ErrorExtensions{"code": InterfaceFieldTypeMismatch})
		}

		checkArgumentCompatibility(errs, implementorName, ifaceName, fieldName, field.Args(), ifaceField.Args())
		return true
	})
}

// checkArgumentCompatibility enforces that implField's arguments are a superset of ifaceArgs: every
// interface argument must be present, with an invariant (exactly matching) type, and every extra
// argument implField adds beyond those must be optional (nullable or defaulted).
func checkArgumentCompatibility(errs *graphql.Errors, implementorName, ifaceName, fieldName string, implArgs, ifaceArgs []graphql.Argument) {
	implByName := make(map[string]*graphql.Argument, len(implArgs))
	implNames := make([]string, len(implArgs))
	for i := range implArgs {
		implByName[implArgs[i].Name()] = &implArgs[i]
		implNames[i] = implArgs[i].Name()
	}

	for i := range ifaceArgs {
		ifaceArg := &ifaceArgs[i]
		implArg, ok := implByName[ifaceArg.Name()]
		if !ok {
			errs.Emplace(
				fmt.Sprintf("Interface field %s.%s expects argument %q, which %s.%s does not define%s",
					ifaceName, fieldName, ifaceArg.Name(), implementorName, fieldName, didYouMean(ifaceArg.Name(), implNames)),
				graphql.ErrorExtensions{"code": InterfaceArgMismatch})
			continue
		}
		if !sameType(implArg.Type(), ifaceArg.Type()) {
			errs.Emplace(
				fmt.Sprintf("Interface field argument %s.%s(%s:) expects type %s but %s.%s(%s:) is type %s.",
					ifaceName, fieldName, ifaceArg.Name(), graphql.Inspect(ifaceArg.Type()),
					implementorName, fieldName, ifaceArg.Name(), graphql.Inspect(implArg.Type())),
				graphql.ErrorExtensions{"code": InterfaceArgMismatch})
		}
	}

	for i := range implArgs {
		extra := &implArgs[i]
		isFromInterface := false
		for j := range ifaceArgs {
			if ifaceArgs[j].Name() == extra.Name() {
				isFromInterface = true
				break
			}
		}
		if !isFromInterface && graphql.IsRequiredArgument(extra) {
			errs.Emplace(
				fmt.Sprintf("%s.%s(%s:) is required, but is not provided by interface field %s.%s.",
					implementorName, fieldName, extra.Name(), ifaceName, fieldName),
				graphql.ErrorExtensions{"code": ExtraRequiredArgument})
		}
	}
}

// sameType reports whether a and b are the exact same type expression: identical wrapping
// (List/NonNull nest the same way) down to the same named type. This is invariance, not the
// covariance IsTypeSubTypeOf implements -- an interface argument's type must match exactly, per
// spec.md §3 -- so it's a fresh (if structurally similar) recursive walk rather than a reuse of
// IsTypeSubTypeOf.
func sameType(a, b graphql.Type) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case graphql.NonNull:
		b, ok := b.(graphql.NonNull)
		return ok && sameType(a.InnerType(), b.InnerType())
	case graphql.List:
		b, ok := b.(graphql.List)
		return ok && sameType(a.ElementType(), b.ElementType())
	default:
		return false
	}
}

// didYouMean formats a " Did you mean ...?" suggestion suffix for a missing argument named name,
// picking close-enough candidates out of the implementing field's actual argument names. Returns
// "." (just closing the sentence) if no candidate is close enough to be worth suggesting.
func didYouMean(name string, candidates []string) string {
	suggestions := util.SuggestionList(name, candidates)
	if len(suggestions) == 0 {
		return "."
	}
	var message util.StringBuilder
	message.WriteString(". Did you mean ")
	util.OrList(&message, suggestions, 5, true)
	message.WriteString("?")
	return message.String()
}
