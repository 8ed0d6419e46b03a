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

// Package schemabuilder turns a parsed GraphQL SDL document (schema, scalar, type, interface,
// union, enum, input, directive definitions and their extensions) into a graphql.Schema. It
// bridges the ast package, which only knows about syntax, and the graphql package, which only
// knows about already-resolved TypeDefinition config structs; schemabuilder is the adapter that
// lets a service describe its schema in SDL instead of hand-assembling graphql.ObjectConfig values
// and friends.
package schemabuilder

import (
	"fmt"

	"github.com/harborgql/harbor/graphql"
	"github.com/harborgql/harbor/graphql/ast"
	"github.com/harborgql/harbor/graphql/schemavalidator"
)

// Error codes surfaced in the "code" extension of errors produced while building a schema from a
// document.
const (
	// UnknownType is reported when a type reference (field type, argument type, implemented
	// interface, union member, ...) names a type that is neither a built-in scalar nor defined
	// anywhere in the document(s) being built.
	UnknownType = "UNKNOWN_TYPE"

	// DuplicateTypeName is reported when two type definitions (of any kind) in the document(s)
	// being built declare the same name. It is also used for two directive definitions with one
	// name, and for a field, argument or enum value repeated within one definition.
	DuplicateTypeName = "DUPLICATE_TYPE_NAME"

	// ExtendingUnknownType is reported when a type extension names a type that has no matching
	// base definition anywhere in the document(s) being built.
	ExtendingUnknownType = "EXTENDING_UNKNOWN_TYPE"

	// TypeExtensionKindMismatch is reported when a type extension's kind (e.g. "extend interface")
	// doesn't match the kind of the base definition it extends.
	TypeExtensionKindMismatch = "TYPE_EXTENSION_KIND_MISMATCH"

	// SchemaDefinitionConflict is reported when the document(s) being built contain more than one
	// schema definition, or more than one root type of the same operation kind. It is also used
	// when no query root type can be found, when a root type or union member is not an Object
	// type, and when a type named as an implemented interface is not an Interface type.
	SchemaDefinitionConflict = "SCHEMA_DEFINITION_CONFLICT"

	// UnsupportedDefinition is reported when a definition that isn't part of the type system
	// definition language (an operation or fragment definition) is found in a document passed to
	// Build or Extend, which only accept type system documents.
	UnsupportedDefinition = "UNSUPPORTED_DEFINITION"
)

// buildError builds a graphql.Errors with a single entry tagged with the given schema-building
// error code, with locations taken from the given AST nodes.
func buildError(code string, message string, nodes ...ast.Node) graphql.Errors {
	var errs graphql.Errors
	if len(nodes) == 0 {
		errs.Emplace(message, graphql.ErrorExtensions{"code": code})
		return errs
	}
	locations := make([]graphql.ErrorLocation, len(nodes))
	for i, node := range nodes {
		locations[i] = graphql.ErrorLocationOfASTNode(node)
	}
	errs.Emplace(message, graphql.ErrorExtensions{"code": code}, locations)
	return errs
}

// Options controls optional behavior of Build and Extend beyond assembling the graphql.Schema
// itself.
type Options struct {
	// AssumeValid, if true, skips running the built schema through schemavalidator.Validate and
	// marks the resulting graphql.Schema's AssumeValid() accordingly. Set this only for schemas
	// whose source document is already known-good (e.g. checked once at build time and cached, or
	// generated by trusted tooling) -- per spec.md §4.C step 7, it exists to let that case skip
	// paying for validation on every build.
	AssumeValid bool
}

// Build constructs a graphql.Schema from a single type system document. The document must contain
// exactly the type system definitions (schema, scalar, type, interface, union, enum, input,
// directive, and their extensions) that make up the complete schema; it must not contain
// executable definitions (operations or fragments).
func Build(document ast.Document, opts Options) (graphql.Schema, graphql.Errors) {
	return build(document, opts)
}

// Extend constructs a graphql.Schema by merging an extension document's definitions into a base
// document's definitions before building. Unlike graphql.Schema, whose types are immutable once
// created (see the Schema Definition doc comment in graphql/schema.go), schemabuilder only ever
// produces brand new schemas: "extending" means assembling a new, merged SDL document and running
// it through the same builder Build uses, not mutating a previously-built graphql.Schema in place.
func Extend(base ast.Document, extension ast.Document, opts Options) (graphql.Schema, graphql.Errors) {
	merged := ast.Document{
		Definitions: make([]ast.Definition, 0, len(base.Definitions)+len(extension.Definitions)),
	}
	merged.Definitions = append(merged.Definitions, base.Definitions...)
	merged.Definitions = append(merged.Definitions, extension.Definitions...)
	return build(merged, opts)
}

// build is the shared implementation for Build and Extend: both just differ in how many documents
// contribute definitions to the merge.
func build(document ast.Document, opts Options) (graphql.Schema, graphql.Errors) {
	idx, errs := newIndex(document)
	if errs.HaveOccurred() {
		return nil, errs
	}

	b := &builder{
		index: idx,
		types: make(map[string]graphql.TypeDefinition, len(idx.order)),
	}

	// Seed the registry with built-in scalars so type references in the document can resolve to
	// them the same way as any document-defined type.
	for _, t := range []graphql.Type{graphql.Int(), graphql.Float(), graphql.String(), graphql.Boolean(), graphql.ID()} {
		named := t.(graphql.TypeWithName)
		b.types[named.Name()] = graphql.T(t)
	}

	// First pass: allocate a Config (shell) for every named type definition in the document, and
	// register it by name. Grouping already guarantees at most one base definition per name
	// (newIndex rejects duplicates), so each of these pointers is stable for the rest of building:
	// later field/argument/interface/member resolution looks types up by name and always gets the
	// exact same TypeDefinition pointer, which is what graphql's global type-instance cache keys
	// on (see the "createdTypes" registry in graphql/type_creator.go).
	for _, name := range idx.order {
		group := idx.groups[name]
		if errs := b.declare(name, group); errs.HaveOccurred() {
			return nil, errs
		}
	}

	// Second pass: fill in the fields/interfaces/members/values for every declared type, now that
	// every name in the document resolves to a TypeDefinition.
	for _, name := range idx.order {
		group := idx.groups[name]
		if errs := b.populate(name, group); errs.HaveOccurred() {
			return nil, errs
		}
	}

	directives, errs := b.buildDirectives()
	if errs.HaveOccurred() {
		return nil, errs
	}

	// Materialize every declared type into a graphql.Type so schema construction can see the full
	// type graph even for types that aren't reachable from a root operation type (e.g. an object
	// type that only ever appears as a union member added by a later extension).
	types := make([]graphql.Type, 0, len(idx.order))
	byName := make(map[string]graphql.Type, len(idx.order))
	for _, name := range idx.order {
		t, err := graphql.NewType(b.types[name])
		if err != nil {
			var errs graphql.Errors
			errs.Append(err)
			return nil, errs
		}
		types = append(types, t)
		byName[name] = t
	}

	query, mutation, subscription, errs := b.rootTypes(byName)
	if errs.HaveOccurred() {
		return nil, errs
	}

	schema, err := graphql.NewSchema(&graphql.SchemaConfig{
		Query:        query,
		Mutation:     mutation,
		Subscription: subscription,
		Types:        types,
		Directives:   directives,
		AssumeValid:  opts.AssumeValid,
	})
	if err != nil {
		var errs graphql.Errors
		errs.Append(err)
		return nil, errs
	}

	if !opts.AssumeValid {
		if errs := schemavalidator.Validate(schema); errs.HaveOccurred() {
			return nil, errs
		}
	}

	return schema, graphql.NoErrors()
}

// rootTypes determines the Query/Mutation/Subscription root types. A schema definition, if
// present, is authoritative. Otherwise, per the GraphQL specification's convention, types named
// "Query", "Mutation" and "Subscription" are used as the respective root types if they are
// declared.
func (b *builder) rootTypes(byName map[string]graphql.Type) (query, mutation, subscription graphql.Object, errs graphql.Errors) {
	asObject := func(name string, node ast.Node) (graphql.Object, graphql.Errors) {
		t, ok := byName[name]
		if !ok {
			return nil, buildError(UnknownType, fmt.Sprintf("Unknown type %q for root operation type.", name), node)
		}
		object, ok := t.(graphql.Object)
		if !ok {
			return nil, buildError(SchemaDefinitionConflict,
				fmt.Sprintf("Type %q used as a root operation type must be an Object type.", name), node)
		}
		return object, graphql.NoErrors()
	}

	if b.index.schemaDef != nil {
		for _, opType := range b.index.schemaDef.OperationTypes {
			name := opType.Type.Name.Value()
			object, errs := asObject(name, opType)
			if errs.HaveOccurred() {
				return nil, nil, nil, errs
			}
			switch opType.Operation {
			case ast.OperationTypeQuery:
				if query != nil {
					return nil, nil, nil, buildError(SchemaDefinitionConflict,
						"Schema definition must provide only one query type.", opType)
				}
				query = object
			case ast.OperationTypeMutation:
				if mutation != nil {
					return nil, nil, nil, buildError(SchemaDefinitionConflict,
						"Schema definition must provide only one mutation type.", opType)
				}
				mutation = object
			case ast.OperationTypeSubscription:
				if subscription != nil {
					return nil, nil, nil, buildError(SchemaDefinitionConflict,
						"Schema definition must provide only one subscription type.", opType)
				}
				subscription = object
			}
		}
		return query, mutation, subscription, graphql.NoErrors()
	}

	// No explicit schema definition: fall back to the conventionally-named root types, each
	// optional except Query.
	if t, ok := byName["Query"]; ok {
		object, ok := t.(graphql.Object)
		if !ok {
			return nil, nil, nil, buildError(SchemaDefinitionConflict, `Type "Query" must be an Object type.`)
		}
		query = object
	}
	if t, ok := byName["Mutation"]; ok {
		if object, ok := t.(graphql.Object); ok {
			mutation = object
		}
	}
	if t, ok := byName["Subscription"]; ok {
		if object, ok := t.(graphql.Object); ok {
			subscription = object
		}
	}
	if query == nil {
		return nil, nil, nil, buildError(SchemaDefinitionConflict,
			"Schema does not define a query root type: provide a schema definition or a type named \"Query\".")
	}
	return query, mutation, subscription, graphql.NoErrors()
}
