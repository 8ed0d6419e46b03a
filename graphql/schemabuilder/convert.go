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

// builder carries the state threaded through the two building passes: the parsed index and the
// registry mapping every named type (built-in or document-defined) to the exact TypeDefinition
// pointer that represents it.
type builder struct {
	index *index
	types map[string]graphql.TypeDefinition
}

func description(s *ast.StringValue) string {
	if s == nil {
		return ""
	}
	return s.Value()
}

// declare allocates the Config shell for a named type and registers it in b.types. Field lists,
// interface lists, union members and enum values are left for populate, which runs only once every
// name in the document is registered.
func (b *builder) declare(name string, group *typeGroup) graphql.Errors {
	switch group.kind {
	case scalarKind:
		b.types[name] = &graphql.ScalarConfig{
			Name:          name,
			Description:   description(group.scalarDef.Description),
			ResultCoercer: passthroughScalarCoercer{},
			InputCoercer:  passthroughScalarCoercer{},
		}

	case objectKind:
		b.types[name] = &graphql.ObjectConfig{
			Name:        name,
			Description: description(group.objectDef.Description),
		}

	case interfaceKind:
		b.types[name] = &graphql.InterfaceConfig{
			Name:        name,
			Description: description(group.interfaceDef.Description),
		}

	case unionKind:
		b.types[name] = &graphql.UnionConfig{
			Name:        name,
			Description: description(group.unionDef.Description),
		}

	case enumKind:
		b.types[name] = &graphql.EnumConfig{
			Name:        name,
			Description: description(group.enumDef.Description),
		}

	case inputObjectKind:
		b.types[name] = &graphql.InputObjectConfig{
			Name:        name,
			Description: description(group.inputDef.Description),
			IsOneOf:     hasDirective(group.inputDef.Directives, "oneOf"),
		}
	}
	return graphql.NoErrors()
}

// populate fills in the parts of a Config that reference other types, now that every named type
// in the document has a stable TypeDefinition pointer registered in b.types.
func (b *builder) populate(name string, group *typeGroup) graphql.Errors {
	switch group.kind {
	case objectKind:
		config := b.types[name].(*graphql.ObjectConfig)

		interfaces := append([]ast.NamedType(nil), group.objectDef.Interfaces...)
		fieldDefs := append([]*ast.FieldDefinition(nil), group.objectDef.Fields...)
		for _, ext := range group.objectExts {
			interfaces = append(interfaces, ext.Interfaces...)
			fieldDefs = append(fieldDefs, ext.Fields...)
		}

		ifaces, errs := b.resolveInterfaces(interfaces)
		if errs.HaveOccurred() {
			return errs
		}
		fields, errs := b.buildFields(fieldDefs)
		if errs.HaveOccurred() {
			return errs
		}
		config.Interfaces = ifaces
		config.Fields = fields

	case interfaceKind:
		config := b.types[name].(*graphql.InterfaceConfig)

		interfaces := append([]ast.NamedType(nil), group.interfaceDef.Interfaces...)
		fieldDefs := append([]*ast.FieldDefinition(nil), group.interfaceDef.Fields...)
		for _, ext := range group.interfaceExts {
			interfaces = append(interfaces, ext.Interfaces...)
			fieldDefs = append(fieldDefs, ext.Fields...)
		}

		ifaces, errs := b.resolveInterfaces(interfaces)
		if errs.HaveOccurred() {
			return errs
		}
		fields, errs := b.buildFields(fieldDefs)
		if errs.HaveOccurred() {
			return errs
		}
		config.Interfaces = ifaces
		config.Fields = fields
		// An interface needs a TypeResolver only when it's used polymorphically in a way that
		// can't be answered structurally; the executor falls back on the concrete value's runtime
		// type when none is provided, which is what a schema built purely from SDL (no resolver
		// code attached) must rely on.

	case unionKind:
		config := b.types[name].(*graphql.UnionConfig)

		memberRefs := append([]ast.NamedType(nil), group.unionDef.Types...)
		for _, ext := range group.unionExts {
			memberRefs = append(memberRefs, ext.Types...)
		}

		members := make([]graphql.ObjectTypeDefinition, 0, len(memberRefs))
		for _, ref := range memberRefs {
			memberName := ref.Name.Value()
			td, ok := b.types[memberName]
			if !ok {
				return buildError(UnknownType, fmt.Sprintf("Unknown type %q for union member.", memberName), ref)
			}
			object, ok := td.(graphql.ObjectTypeDefinition)
			if !ok {
				return buildError(SchemaDefinitionConflict,
					fmt.Sprintf("Union member %q must be an Object type.", memberName), ref)
			}
			members = append(members, object)
		}
		config.PossibleTypes = members

	case enumKind:
		config := b.types[name].(*graphql.EnumConfig)

		valueDefs := append([]*ast.EnumValueDefinition(nil), group.enumDef.Values...)
		for _, ext := range group.enumExts {
			valueDefs = append(valueDefs, ext.Values...)
		}

		values := graphql.EnumValueDefinitionMap{}
		for _, v := range valueDefs {
			valueName := v.Name.Value()
			if _, exists := values[valueName]; exists {
				return buildError(DuplicateTypeName,
					fmt.Sprintf("Enum %q has a repeated value named %q.", name, valueName), v)
			}
			var deprecation *graphql.Deprecation
			if d := findDirective(v.Directives, "deprecated"); d != nil {
				deprecation = deprecationFrom(d)
			}
			values[valueName] = graphql.EnumValueDefinition{
				Description: description(v.Description),
				Deprecation: deprecation,
			}
		}
		config.Values = values

	case inputObjectKind:
		config := b.types[name].(*graphql.InputObjectConfig)

		fieldDefs := append([]*ast.InputValueDefinition(nil), group.inputDef.Fields...)
		for _, ext := range group.inputExts {
			fieldDefs = append(fieldDefs, ext.Fields...)
		}

		fields := graphql.InputFields{}
		for _, f := range fieldDefs {
			fieldName := f.Name.Value()
			typeDef, errs := b.resolveType(f.Type)
			if errs.HaveOccurred() {
				return errs
			}
			fields[fieldName] = graphql.InputFieldDefinition{
				Description:  description(f.Description),
				Type:         typeDef,
				DefaultValue: defaultValue(f.DefaultValue, graphql.NilInputFieldDefaultValue),
			}
		}
		config.Fields = fields

	case scalarKind:
		config := b.types[name].(*graphql.ScalarConfig)
		directives := group.scalarDef.Directives
		for _, ext := range group.scalarExts {
			directives = append(directives, ext.Directives...)
		}
		if d := findDirective(directives, "specifiedBy"); d != nil {
			if arg := findArgument(d.Arguments, "url"); arg != nil {
				if s, ok := arg.Value.(ast.StringValue); ok {
					config.SpecifiedByURL = s.Value()
				}
			}
		}
	}
	return graphql.NoErrors()
}

// resolveInterfaces resolves a list of named interface references to InterfaceTypeDefinition
// pointers, in the order listed.
func (b *builder) resolveInterfaces(refs []ast.NamedType) ([]graphql.InterfaceTypeDefinition, graphql.Errors) {
	if len(refs) == 0 {
		return nil, graphql.NoErrors()
	}
	ifaces := make([]graphql.InterfaceTypeDefinition, 0, len(refs))
	for _, ref := range refs {
		name := ref.Name.Value()
		td, ok := b.types[name]
		if !ok {
			return nil, buildError(UnknownType, fmt.Sprintf("Unknown interface %q.", name), ref)
		}
		iface, ok := td.(graphql.InterfaceTypeDefinition)
		if !ok {
			return nil, buildError(SchemaDefinitionConflict,
				fmt.Sprintf("Type %q named as an implemented interface must be an Interface type.", name), ref)
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces, graphql.NoErrors()
}

// buildFields converts field definitions into a graphql.Fields map. The map does not keep the
// order of fieldDefs, so the built type's fields do not follow document order.
func (b *builder) buildFields(fieldDefs []*ast.FieldDefinition) (graphql.Fields, graphql.Errors) {
	fields := graphql.Fields{}
	for _, f := range fieldDefs {
		name := f.Name.Value()
		if _, exists := fields[name]; exists {
			return nil, buildError(DuplicateTypeName, fmt.Sprintf("Field %q is defined more than once.", name), f)
		}
		typeDef, errs := b.resolveType(f.Type)
		if errs.HaveOccurred() {
			return nil, errs
		}
		args, errs := b.buildArguments(f.Arguments)
		if errs.HaveOccurred() {
			return nil, errs
		}
		var deprecation *graphql.Deprecation
		if d := findDirective(f.Directives, "deprecated"); d != nil {
			deprecation = deprecationFrom(d)
		}
		fields[name] = graphql.FieldConfig{
			Description: description(f.Description),
			Type:        typeDef,
			Args:        args,
			Deprecation: deprecation,
		}
	}
	return fields, graphql.NoErrors()
}

// buildArguments converts a field or directive's argument definitions into an
// graphql.ArgumentConfigMap.
func (b *builder) buildArguments(argDefs []*ast.InputValueDefinition) (graphql.ArgumentConfigMap, graphql.Errors) {
	if len(argDefs) == 0 {
		return nil, graphql.NoErrors()
	}
	args := graphql.ArgumentConfigMap{}
	for _, a := range argDefs {
		name := a.Name.Value()
		if _, exists := args[name]; exists {
			return nil, buildError(DuplicateTypeName, fmt.Sprintf("Argument %q is defined more than once.", name), a)
		}
		typeDef, errs := b.resolveType(a.Type)
		if errs.HaveOccurred() {
			return nil, errs
		}
		args[name] = graphql.ArgumentConfig{
			Description:  description(a.Description),
			Type:         typeDef,
			DefaultValue: defaultValue(a.DefaultValue, graphql.NilArgumentDefaultValue),
		}
	}
	return args, graphql.NoErrors()
}

// resolveType translates an AST type reference (possibly wrapped in List/NonNull) into a
// TypeDefinition, resolving the innermost named type against the type registry.
func (b *builder) resolveType(t ast.Type) (graphql.TypeDefinition, graphql.Errors) {
	switch t := t.(type) {
	case ast.NamedType:
		name := t.Name.Value()
		td, ok := b.types[name]
		if !ok {
			return nil, buildError(UnknownType, fmt.Sprintf("Unknown type %q.", name), t)
		}
		return td, graphql.NoErrors()

	case ast.ListType:
		elem, errs := b.resolveType(t.ItemType)
		if errs.HaveOccurred() {
			return nil, errs
		}
		return graphql.ListOf(elem), graphql.NoErrors()

	case ast.NonNullType:
		elem, errs := b.resolveType(t.Type)
		if errs.HaveOccurred() {
			return nil, errs
		}
		return graphql.NonNullOf(elem), graphql.NoErrors()
	}
	return nil, buildError(UnknownType, "Unrecognized type reference.", t)
}

// buildDirectives converts every custom directive definition found in the document(s) into a
// graphql.Directive. Standard directives (@skip, @include, @deprecated, @specifiedBy, @oneOf) are
// always added on top of these by graphql.NewSchema; re-declaring one of them in SDL leaves two
// directives of that name in the schema, which schemavalidator reports as BuiltInShadowed (so Build
// and Extend fail unless Options.AssumeValid is set).
func (b *builder) buildDirectives() (graphql.DirectiveList, graphql.Errors) {
	var directives graphql.DirectiveList
	for _, name := range b.index.directiveOrder {
		def := b.index.directiveDefs[name]
		args, errs := b.buildArguments(def.Arguments)
		if errs.HaveOccurred() {
			return nil, errs
		}
		locations := make([]graphql.DirectiveLocation, len(def.Locations))
		for i, loc := range def.Locations {
			locations[i] = graphql.DirectiveLocation(loc.Value())
		}
		directive, err := graphql.NewDirective(&graphql.DirectiveConfig{
			Name:        name,
			Description: description(def.Description),
			Locations:   locations,
			Args:        args,
		})
		if err != nil {
			var errs graphql.Errors
			errs.Append(err)
			return nil, errs
		}
		directives = append(directives, directive)
	}
	return directives, graphql.NoErrors()
}

// findDirective returns the first directive named name in directives, or nil.
func findDirective(directives ast.Directives, name string) *ast.Directive {
	for _, d := range directives {
		if d.Name.Value() == name {
			return d
		}
	}
	return nil
}

// findArgument returns the argument named name in args, or nil.
func findArgument(args ast.Arguments, name string) *ast.Argument {
	for _, a := range args {
		if a.Name.Value() == name {
			return a
		}
	}
	return nil
}

// hasDirective reports whether directives contains a directive named name.
func hasDirective(directives ast.Directives, name string) bool {
	return findDirective(directives, name) != nil
}

// deprecationFrom builds a graphql.Deprecation from an @deprecated directive usage, falling back
// to the standard default reason when no "reason" argument is given.
func deprecationFrom(d *ast.Directive) *graphql.Deprecation {
	reason := graphql.DefaultDeprecationReason
	if arg := findArgument(d.Arguments, "reason"); arg != nil {
		if s, ok := arg.Value.(ast.StringValue); ok {
			reason = s.Value()
		}
	}
	return &graphql.Deprecation{Reason: reason}
}

// defaultValue converts a parsed default-value literal into the plain Go value that
// ArgumentConfig.DefaultValue / InputFieldDefinition.DefaultValue expect. nilSentinel is returned
// for an explicit "null" literal, to distinguish "default value is null" from "no default value"
// (see NilArgumentDefaultValue / NilInputFieldDefaultValue).
func defaultValue(v ast.Value, nilSentinel interface{}) interface{} {
	if v == nil {
		return nil
	}
	if _, ok := v.(ast.NullValue); ok {
		return nilSentinel
	}
	return v.Interface()
}

// passthroughScalarCoercer is used for custom scalars defined purely from SDL, which carries no
// executable behavior of its own: values pass through unchanged for results and variables, and
// argument literals are converted to their natural Go representation.
type passthroughScalarCoercer struct{}

var (
	_ graphql.ScalarResultCoercer = passthroughScalarCoercer{}
	_ graphql.ScalarInputCoercer  = passthroughScalarCoercer{}
)

func (passthroughScalarCoercer) CoerceResultValue(value interface{}) (interface{}, error) {
	return value, nil
}

func (passthroughScalarCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return value, nil
}

func (passthroughScalarCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return value.Interface(), nil
}
