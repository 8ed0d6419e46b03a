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
	"strings"

	"github.com/harborgql/harbor/graphql"
)

// requiredInputObjectRef reports the name of the InputObject a NonNull-wrapped field type forces a
// caller to supply -- "" if t does not force one. A List never forces one, even a NonNull list:
// [Foo!]! can always be satisfied with an empty list, so a list reference can never be the tight
// link a cycle needs. Only a bare NonNull(InputObject) reference is unavoidable.
func requiredInputObjectRef(t graphql.Type) string {
	nonNull, ok := t.(graphql.NonNull)
	if !ok {
		return ""
	}
	inputObject, ok := nonNull.InnerType().(graphql.InputObject)
	if !ok {
		return ""
	}
	return inputObject.(graphql.TypeWithName).Name()
}

// checkInputObjectAcyclicity asserts that no InputObject's fields form a cycle of mandatory
// (NonNull, non-list) references back to itself -- such a type could never be instantiated, since
// supplying it always requires supplying another instance of a type further down the same chain.
//
// Grounded on the same "is this type reachable through an unavoidable path" shape as
// graphql/validator/rules/no_fragment_cycles.go's fragment-spread cycle detector (teacher's only
// existing cycle check), adapted from a fragment-spread graph to an InputObject-field graph.
func checkInputObjectAcyclicity(schema graphql.Schema) graphql.Errors {
	var errs graphql.Errors
	typeMap := schema.TypeMap()

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(typeMap.Names()))
	reported := map[string]bool{}

	var visit func(name string, path []string)
	visit = func(name string, path []string) {
		switch state[name] {
		case done:
			return
		case visiting:
			cycle := append(append([]string(nil), path...), name)
			key := strings.Join(cycle, ">")
			if !reported[key] {
				reported[key] = true
				errs.Emplace(
					fmt.Sprintf("InputObject fields form a cycle of mandatory references: %s.", strings.Join(cycle, " -> ")),
					graphql.ErrorExtensions{"code": InputObjectCycle})
			}
			return
		}

		inputObject, ok := typeMap.Lookup(name).(graphql.InputObject)
		if !ok {
			return
		}

		state[name] = visiting
		// childPath is a fresh copy, made once: every child visited from here shares it read-only, so
		// one child's recursive calls can't clobber what a sibling call already appended.
		childPath := append(append([]string(nil), path...), name)
		inputObject.Fields().Range(func(_ string, field graphql.InputField) bool {
			if childName := requiredInputObjectRef(field.Type()); childName != "" {
				visit(childName, childPath)
			}
			return true
		})
		state[name] = done
	}

	for _, name := range typeMap.Names() {
		if state[name] == unvisited {
			visit(name, nil)
		}
	}

	return errs
}
