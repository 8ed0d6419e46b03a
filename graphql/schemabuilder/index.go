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

package schemabuilder

import (
	"fmt"

	"github.com/harborgql/harbor/graphql"
	"github.com/harborgql/harbor/graphql/ast"
)

// typeKind identifies which of the six named type system kinds a typeGroup carries.
type typeKind int

const (
	scalarKind typeKind = iota
	objectKind
	interfaceKind
	unionKind
	enumKind
	inputObjectKind
)

func (k typeKind) String() string {
	switch k {
	case scalarKind:
		return "scalar"
	case objectKind:
		return "type"
	case interfaceKind:
		return "interface"
	case unionKind:
		return "union"
	case enumKind:
		return "enum"
	case inputObjectKind:
		return "input"
	}
	return "unknown"
}

// typeGroup gathers a named type's base definition together with every extension contributed to
// it, across however many documents were merged together for this build. Only the fields matching
// kind are ever populated.
type typeGroup struct {
	kind typeKind
	node ast.Node // the base definition, for error locations

	scalarDef  *ast.ScalarTypeDefinition
	scalarExts []*ast.ScalarTypeExtension

	objectDef  *ast.ObjectTypeDefinition
	objectExts []*ast.ObjectTypeExtension

	interfaceDef  *ast.InterfaceTypeDefinition
	interfaceExts []*ast.InterfaceTypeExtension

	unionDef  *ast.UnionTypeDefinition
	unionExts []*ast.UnionTypeExtension

	enumDef  *ast.EnumTypeDefinition
	enumExts []*ast.EnumTypeExtension

	inputDef  *ast.InputObjectTypeDefinition
	inputExts []*ast.InputObjectTypeExtension
}

// index is the result of scanning one or more merged documents: every named type definition and
// extension grouped by name, every directive definition by name, and the (at most one) schema
// definition together with any schema extensions.
type index struct {
	order  []string
	groups map[string]*typeGroup

	directiveDefs  map[string]*ast.DirectiveDefinition
	directiveOrder []string

	schemaDef  *ast.SchemaDefinition
	schemaExts []*ast.SchemaExtension
}

func newIndex(document ast.Document) (*index, graphql.Errors) {
	idx := &index{
		groups:        map[string]*typeGroup{},
		directiveDefs: map[string]*ast.DirectiveDefinition{},
	}

	group := func(name string) *typeGroup {
		g, ok := idx.groups[name]
		if !ok {
			g = &typeGroup{}
			idx.groups[name] = g
			idx.order = append(idx.order, name)
		}
		return g
	}

	// declareBase records the base definition for name the first time it's seen, rejecting a
	// second base definition (of any kind) for the same name.
	declareBase := func(name string, kind typeKind, node ast.Node) (*typeGroup, graphql.Errors) {
		g := group(name)
		if g.node != nil {
			return nil, buildError(DuplicateTypeName,
				fmt.Sprintf("There can be only one type named %q.", name), g.node, node)
		}
		g.kind = kind
		g.node = node
		return g, graphql.NoErrors()
	}

	// requireKind fetches (or, for an extension with no base yet, tentatively allocates) the group
	// for name and checks it matches kind.
	requireKind := func(name string, kind typeKind, node ast.Node) (*typeGroup, graphql.Errors) {
		g, ok := idx.groups[name]
		if !ok {
			return nil, buildError(ExtendingUnknownType,
				fmt.Sprintf("Cannot extend type %q because it is not defined.", name), node)
		}
		if g.node == nil {
			return nil, buildError(ExtendingUnknownType,
				fmt.Sprintf("Cannot extend type %q because it is not defined.", name), node)
		}
		if g.kind != kind {
			return nil, buildError(TypeExtensionKindMismatch,
				fmt.Sprintf("Cannot extend non-%s type %q as %s.", kind, name, kind), g.node, node)
		}
		return g, graphql.NoErrors()
	}

	for _, def := range document.Definitions {
		switch def := def.(type) {
		case *ast.ScalarTypeDefinition:
			name := def.Name.Value()
			g, errs := declareBase(name, scalarKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.scalarDef = def

		case *ast.ScalarTypeExtension:
			name := def.Name.Value()
			g, errs := requireKind(name, scalarKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.scalarExts = append(g.scalarExts, def)

		case *ast.ObjectTypeDefinition:
			name := def.Name.Value()
			g, errs := declareBase(name, objectKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.objectDef = def

		case *ast.ObjectTypeExtension:
			name := def.Name.Value()
			g, errs := requireKind(name, objectKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.objectExts = append(g.objectExts, def)

		case *ast.InterfaceTypeDefinition:
			name := def.Name.Value()
			g, errs := declareBase(name, interfaceKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.interfaceDef = def

		case *ast.InterfaceTypeExtension:
			name := def.Name.Value()
			g, errs := requireKind(name, interfaceKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.interfaceExts = append(g.interfaceExts, def)

		case *ast.UnionTypeDefinition:
			name := def.Name.Value()
			g, errs := declareBase(name, unionKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.unionDef = def

		case *ast.UnionTypeExtension:
			name := def.Name.Value()
			g, errs := requireKind(name, unionKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.unionExts = append(g.unionExts, def)

		case *ast.EnumTypeDefinition:
			name := def.Name.Value()
			g, errs := declareBase(name, enumKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.enumDef = def

		case *ast.EnumTypeExtension:
			name := def.Name.Value()
			g, errs := requireKind(name, enumKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.enumExts = append(g.enumExts, def)

		case *ast.InputObjectTypeDefinition:
			name := def.Name.Value()
			g, errs := declareBase(name, inputObjectKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.inputDef = def

		case *ast.InputObjectTypeExtension:
			name := def.Name.Value()
			g, errs := requireKind(name, inputObjectKind, def)
			if errs.HaveOccurred() {
				return nil, errs
			}
			g.inputExts = append(g.inputExts, def)

		case *ast.DirectiveDefinition:
			name := def.Name.Value()
			if _, exists := idx.directiveDefs[name]; exists {
				return nil, buildError(DuplicateTypeName,
					fmt.Sprintf("There can be only one directive named \"@%s\".", name), def)
			}
			idx.directiveDefs[name] = def
			idx.directiveOrder = append(idx.directiveOrder, name)

		case *ast.SchemaDefinition:
			if idx.schemaDef != nil {
				return nil, buildError(SchemaDefinitionConflict,
					"Must provide only one schema definition.", idx.schemaDef, def)
			}
			idx.schemaDef = def

		case *ast.SchemaExtension:
			idx.schemaExts = append(idx.schemaExts, def)

		default:
			return nil, buildError(UnsupportedDefinition,
				"Only type system definitions (schema, scalar, type, interface, union, enum, "+
					"input and directive definitions, and their extensions) can be built into a schema.",
				def)
		}
	}

	return idx, graphql.NoErrors()
}
