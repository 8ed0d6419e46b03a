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

// builtInScalars pairs every built-in scalar name with the singleton Scalar instance
// graphql.NewSchema always registers under that name.
func builtInScalars() map[string]graphql.Type {
	return map[string]graphql.Type{
		"Int":     graphql.Int(),
		"Float":   graphql.Float(),
		"String":  graphql.String(),
		"Boolean": graphql.Boolean(),
		"ID":      graphql.ID(),
	}
}

// checkBuiltins confirms that the built-in scalars and standard directives are present under their
// reserved names and have not been displaced by a user-defined type or directive of the same name.
//
// graphql.NewSchema's TypeMap.add walk already makes this impossible for the scalars (it always adds
// the real Int/Float/String/Boolean/ID first and errors if a same-named, different type later turns
// up in config.Types), so this check can never actually fail for a schema built through NewSchema.
// It is still asserted explicitly, for the same reason checkReferenceIntegrity is: spec.md's
// invariant that built-ins are "always present and never replaced" is schemavalidator's to answer
// for, not an accident of the one Schema implementation in this repo. Standard directives carry no
// equivalent construction-time guarantee (NewSchema appends graphql.StandardDirectives() to
// whatever the caller supplied without checking for name collisions first), so the directive half of
// this check is the one that can genuinely catch something.
func checkBuiltins(schema graphql.Schema) graphql.Errors {
	var errs graphql.Errors
	typeMap := schema.TypeMap()

	for name, want := range builtInScalars() {
		if got := typeMap.Lookup(name); got != want {
			errs.Emplace(
				fmt.Sprintf("Built-in scalar %q must not be redefined, but the schema's type map resolves it to a different type.", name),
				graphql.ErrorExtensions{"code": BuiltInShadowed})
		}
	}

	standard := graphql.StandardDirectives()
	seen := map[string]int{}
	for _, directive := range schema.Directives() {
		seen[directive.Name()]++
	}
	for _, want := range standard {
		if seen[want.Name()] != 1 {
			errs.Emplace(
				fmt.Sprintf("Standard directive \"@%s\" must be present exactly once.", want.Name()),
				graphql.ErrorExtensions{"code": BuiltInShadowed})
		}
	}

	return errs
}
