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

package ast

import (
	"github.com/harborgql/harbor/graphql/token"
)

// This file adds the "Type System Definition Language" (SDL) nodes that 2.2's Document grammar
// reserves (TypeSystemDefinition, TypeSystemExtension) but that executable-only queries never use.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Type-System

// lastOf returns the last non-nil TokenRange.Last among the given nodes, or fallback if none.
func lastTokenOfDirectives(directives Directives, fallback *token.Token) *token.Token {
	if len(directives) > 0 {
		return directives.LastToken()
	}
	return fallback
}

//===----------------------------------------------------------------------------------------====//
// Descriptions
//===----------------------------------------------------------------------------------------====//
// Documentation is a first-class feature of GraphQL type systems. Most (but not all) type system
// definitions can have a description, formatted as a (possibly block) StringValue, preceding it.

//===----------------------------------------------------------------------------------------====//
// Input Values (used by argument and input field definitions)
//===----------------------------------------------------------------------------------------====//

// InputValueDefinition is used both for arguments of a field or directive, and for the fields of
// an Input Object type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InputValueDefinition
type InputValueDefinition struct {
	// Description documenting the argument or input field, nil if not given.
	Description *StringValue

	// Name of the argument or input field.
	Name Name

	// Type of value accepted.
	Type Type

	// DefaultValue is the value assumed when none is provided, nil if not given.
	DefaultValue Value

	// Directives applied to this argument or input field.
	Directives Directives
}

var _ Node = (*InputValueDefinition)(nil)

// TokenRange implements Node.
func (node *InputValueDefinition) TokenRange() token.Range {
	first := node.Name.Token
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}

	last := node.Type.TokenRange().Last
	if node.DefaultValue != nil {
		last = node.DefaultValue.TokenRange().Last
	}
	last = lastTokenOfDirectives(node.Directives, last)

	return token.Range{First: first, Last: last}
}

//===----------------------------------------------------------------------------------------====//
// Field and Enum Value Definitions
//===----------------------------------------------------------------------------------------====//

// FieldDefinition describes one field of an Object or Interface type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#FieldDefinition
type FieldDefinition struct {
	// Description documenting the field, nil if not given.
	Description *StringValue

	// Name of the field.
	Name Name

	// Arguments taken by the field.
	Arguments []*InputValueDefinition

	// Type of value yielded by the field.
	Type Type

	// Directives applied to the field.
	Directives Directives
}

var _ Node = (*FieldDefinition)(nil)

// TokenRange implements Node.
func (node *FieldDefinition) TokenRange() token.Range {
	first := node.Name.Token
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}

	last := node.Type.TokenRange().Last
	last = lastTokenOfDirectives(node.Directives, last)

	return token.Range{First: first, Last: last}
}

// EnumValueDefinition describes one value of an Enum type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#EnumValueDefinition
type EnumValueDefinition struct {
	// Description documenting the enum value, nil if not given.
	Description *StringValue

	// Name of the enum value. Must not be "true", "false" or "null".
	Name Name

	// Directives applied to the enum value.
	Directives Directives
}

var _ Node = (*EnumValueDefinition)(nil)

// TokenRange implements Node.
func (node *EnumValueDefinition) TokenRange() token.Range {
	first := node.Name.Token
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}
	last := lastTokenOfDirectives(node.Directives, node.Name.Token)
	return token.Range{First: first, Last: last}
}

//===----------------------------------------------------------------------------------------====//
// Schema Definition and Extension
//===----------------------------------------------------------------------------------------====//

// OperationTypeDefinition binds a root operation type to the Object type that implements it,
// inside a SchemaDefinition or SchemaExtension.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#OperationTypeDefinition
type OperationTypeDefinition struct {
	// Operation is the kind of root operation being bound (query, mutation or subscription).
	Operation OperationType

	// OperationToken is the Name token that spells the operation keyword.
	OperationToken *token.Token

	// Type names the Object type serving as this root operation's type.
	Type NamedType
}

var _ Node = (*OperationTypeDefinition)(nil)

// TokenRange implements Node.
func (node *OperationTypeDefinition) TokenRange() token.Range {
	return token.Range{First: node.OperationToken, Last: node.Type.TokenRange().Last}
}

// SchemaDefinition declares the root operation types of a schema.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#SchemaDefinition
type SchemaDefinition struct {
	DefinitionBase

	// Description documenting the schema, nil if not given.
	Description *StringValue

	// Keyword is the "schema" token.
	Keyword *token.Token

	// OperationTypes binds query/mutation/subscription to their root Object types.
	OperationTypes []*OperationTypeDefinition

	// RightBrace is the closing brace token of the operation type list.
	RightBrace *token.Token
}

var _ Definition = (*SchemaDefinition)(nil)

// TokenRange implements Node.
func (node *SchemaDefinition) TokenRange() token.Range {
	first := node.Keyword
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}
	return token.Range{First: first, Last: node.RightBrace}
}

// SchemaExtension adds directives or additional root operation types to a previously defined
// schema.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#SchemaExtension
type SchemaExtension struct {
	DefinitionBase

	// Keyword is the "extend" token.
	Keyword *token.Token

	// OperationTypes binds additional query/mutation/subscription root types, if any.
	OperationTypes []*OperationTypeDefinition

	// RightBrace is the closing brace token of the operation type list, nil when the extension only
	// adds directives and has no braces.
	RightBrace *token.Token
}

var _ Definition = (*SchemaExtension)(nil)

// TokenRange implements Node.
func (node *SchemaExtension) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		last = lastTokenOfDirectives(node.Directives, node.Keyword)
	}
	return token.Range{First: node.Keyword, Last: last}
}

//===----------------------------------------------------------------------------------------====//
// Directive Definition
//===----------------------------------------------------------------------------------------====//

// DirectiveDefinition declares a directive that may be used elsewhere in the document.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#DirectiveDefinition
type DirectiveDefinition struct {
	// Description documenting the directive, nil if not given.
	Description *StringValue

	// Keyword is the "directive" token.
	Keyword *token.Token

	// Name of the directive, not including the leading "@".
	Name Name

	// Arguments accepted when using the directive.
	Arguments []*InputValueDefinition

	// Repeatable indicates the directive may be applied more than once at the same location.
	Repeatable bool

	// Locations lists the valid locations for the directive to appear, as Name tokens.
	Locations []Name
}

var _ Node = (*DirectiveDefinition)(nil)

// definitionNode marks DirectiveDefinition as a Definition. A directive definition carries no
// directives of its own, so GetDirectives always returns nil.
func (DirectiveDefinition) definitionNode() {}

// GetDirectives implements Definition.
func (*DirectiveDefinition) GetDirectives() Directives {
	return nil
}

var _ Definition = (*DirectiveDefinition)(nil)

// TokenRange implements Node.
func (node *DirectiveDefinition) TokenRange() token.Range {
	first := node.Keyword
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}
	last := node.Name.Token
	if n := len(node.Locations); n > 0 {
		last = node.Locations[n-1].Token
	}
	return token.Range{First: first, Last: last}
}

//===----------------------------------------------------------------------------------------====//
// Scalar Type Definition and Extension
//===----------------------------------------------------------------------------------------====//

// ScalarTypeDefinition introduces a custom Scalar type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ScalarTypeDefinition
type ScalarTypeDefinition struct {
	DefinitionBase

	// Description documenting the scalar, nil if not given.
	Description *StringValue

	// Keyword is the "scalar" token.
	Keyword *token.Token

	// Name of the scalar.
	Name Name
}

var _ Definition = (*ScalarTypeDefinition)(nil)

// TokenRange implements Node.
func (node *ScalarTypeDefinition) TokenRange() token.Range {
	first := node.Keyword
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}
	return token.Range{First: first, Last: lastTokenOfDirectives(node.Directives, node.Name.Token)}
}

// ScalarTypeExtension adds directives to a previously defined Scalar type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ScalarTypeExtension
type ScalarTypeExtension struct {
	DefinitionBase

	// Keyword is the "extend" token.
	Keyword *token.Token

	// Name of the scalar being extended.
	Name Name
}

var _ Definition = (*ScalarTypeExtension)(nil)

// TokenRange implements Node.
func (node *ScalarTypeExtension) TokenRange() token.Range {
	return token.Range{First: node.Keyword, Last: lastTokenOfDirectives(node.Directives, node.Name.Token)}
}

//===----------------------------------------------------------------------------------------====//
// Object Type Definition and Extension
//===----------------------------------------------------------------------------------------====//

// ObjectTypeDefinition introduces an Object type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ObjectTypeDefinition
type ObjectTypeDefinition struct {
	DefinitionBase

	// Description documenting the type, nil if not given.
	Description *StringValue

	// Keyword is the "type" token.
	Keyword *token.Token

	// Name of the Object type.
	Name Name

	// Interfaces implemented by this Object, named by reference.
	Interfaces []NamedType

	// Fields defined by this Object.
	Fields []*FieldDefinition

	// RightBrace is the closing brace of the field list, nil when the type has no fields block.
	RightBrace *token.Token
}

var _ Definition = (*ObjectTypeDefinition)(nil)

// TokenRange implements Node.
func (node *ObjectTypeDefinition) TokenRange() token.Range {
	first := node.Keyword
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}
	last := node.RightBrace
	if last == nil {
		last = lastTokenOfDirectives(node.Directives, node.Name.Token)
		if len(node.Interfaces) > 0 {
			last = lastTokenOfDirectives(node.Directives, node.Interfaces[len(node.Interfaces)-1].TokenRange().Last)
		}
	}
	return token.Range{First: first, Last: last}
}

// ObjectTypeExtension adds interfaces, fields or directives to a previously defined Object type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#ObjectTypeExtension
type ObjectTypeExtension struct {
	DefinitionBase

	// Keyword is the "extend" token.
	Keyword *token.Token

	// Name of the Object type being extended.
	Name Name

	// Interfaces contributed by this extension, if any.
	Interfaces []NamedType

	// Fields contributed by this extension, if any.
	Fields []*FieldDefinition

	// RightBrace is the closing brace of the field list, nil when this extension has no fields block.
	RightBrace *token.Token
}

var _ Definition = (*ObjectTypeExtension)(nil)

// TokenRange implements Node.
func (node *ObjectTypeExtension) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		last = lastTokenOfDirectives(node.Directives, node.Name.Token)
	}
	return token.Range{First: node.Keyword, Last: last}
}

//===----------------------------------------------------------------------------------------====//
// Interface Type Definition and Extension
//===----------------------------------------------------------------------------------------====//

// InterfaceTypeDefinition introduces an Interface type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InterfaceTypeDefinition
type InterfaceTypeDefinition struct {
	DefinitionBase

	// Description documenting the interface, nil if not given.
	Description *StringValue

	// Keyword is the "interface" token.
	Keyword *token.Token

	// Name of the Interface type.
	Name Name

	// Interfaces transitively implemented by this interface (interface-on-interface).
	Interfaces []NamedType

	// Fields defined by this Interface.
	Fields []*FieldDefinition

	// RightBrace is the closing brace of the field list, nil when the type has no fields block.
	RightBrace *token.Token
}

var _ Definition = (*InterfaceTypeDefinition)(nil)

// TokenRange implements Node.
func (node *InterfaceTypeDefinition) TokenRange() token.Range {
	first := node.Keyword
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}
	last := node.RightBrace
	if last == nil {
		last = lastTokenOfDirectives(node.Directives, node.Name.Token)
	}
	return token.Range{First: first, Last: last}
}

// InterfaceTypeExtension adds interfaces, fields or directives to a previously defined Interface
// type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InterfaceTypeExtension
type InterfaceTypeExtension struct {
	DefinitionBase

	// Keyword is the "extend" token.
	Keyword *token.Token

	// Name of the Interface type being extended.
	Name Name

	// Interfaces contributed by this extension, if any.
	Interfaces []NamedType

	// Fields contributed by this extension, if any.
	Fields []*FieldDefinition

	// RightBrace is the closing brace of the field list, nil when this extension has no fields block.
	RightBrace *token.Token
}

var _ Definition = (*InterfaceTypeExtension)(nil)

// TokenRange implements Node.
func (node *InterfaceTypeExtension) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		last = lastTokenOfDirectives(node.Directives, node.Name.Token)
	}
	return token.Range{First: node.Keyword, Last: last}
}

//===----------------------------------------------------------------------------------------====//
// Union Type Definition and Extension
//===----------------------------------------------------------------------------------------====//

// UnionTypeDefinition introduces a Union type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#UnionTypeDefinition
type UnionTypeDefinition struct {
	DefinitionBase

	// Description documenting the union, nil if not given.
	Description *StringValue

	// Keyword is the "union" token.
	Keyword *token.Token

	// Name of the Union type.
	Name Name

	// Types lists the member Object types, named by reference.
	Types []NamedType
}

var _ Definition = (*UnionTypeDefinition)(nil)

// TokenRange implements Node.
func (node *UnionTypeDefinition) TokenRange() token.Range {
	first := node.Keyword
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}
	last := lastTokenOfDirectives(node.Directives, node.Name.Token)
	if n := len(node.Types); n > 0 {
		last = node.Types[n-1].TokenRange().Last
	}
	return token.Range{First: first, Last: last}
}

// UnionTypeExtension adds member types or directives to a previously defined Union type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#UnionTypeExtension
type UnionTypeExtension struct {
	DefinitionBase

	// Keyword is the "extend" token.
	Keyword *token.Token

	// Name of the Union type being extended.
	Name Name

	// Types contributed by this extension, if any.
	Types []NamedType
}

var _ Definition = (*UnionTypeExtension)(nil)

// TokenRange implements Node.
func (node *UnionTypeExtension) TokenRange() token.Range {
	last := lastTokenOfDirectives(node.Directives, node.Name.Token)
	if n := len(node.Types); n > 0 {
		last = node.Types[n-1].TokenRange().Last
	}
	return token.Range{First: node.Keyword, Last: last}
}

//===----------------------------------------------------------------------------------------====//
// Enum Type Definition and Extension
//===----------------------------------------------------------------------------------------====//

// EnumTypeDefinition introduces an Enum type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#EnumTypeDefinition
type EnumTypeDefinition struct {
	DefinitionBase

	// Description documenting the enum, nil if not given.
	Description *StringValue

	// Keyword is the "enum" token.
	Keyword *token.Token

	// Name of the Enum type.
	Name Name

	// Values defined by this Enum.
	Values []*EnumValueDefinition

	// RightBrace is the closing brace of the value list, nil when the type has no values block.
	RightBrace *token.Token
}

var _ Definition = (*EnumTypeDefinition)(nil)

// TokenRange implements Node.
func (node *EnumTypeDefinition) TokenRange() token.Range {
	first := node.Keyword
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}
	last := node.RightBrace
	if last == nil {
		last = lastTokenOfDirectives(node.Directives, node.Name.Token)
	}
	return token.Range{First: first, Last: last}
}

// EnumTypeExtension adds values or directives to a previously defined Enum type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#EnumTypeExtension
type EnumTypeExtension struct {
	DefinitionBase

	// Keyword is the "extend" token.
	Keyword *token.Token

	// Name of the Enum type being extended.
	Name Name

	// Values contributed by this extension, if any.
	Values []*EnumValueDefinition

	// RightBrace is the closing brace of the value list, nil when this extension has no values block.
	RightBrace *token.Token
}

var _ Definition = (*EnumTypeExtension)(nil)

// TokenRange implements Node.
func (node *EnumTypeExtension) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		last = lastTokenOfDirectives(node.Directives, node.Name.Token)
	}
	return token.Range{First: node.Keyword, Last: last}
}

//===----------------------------------------------------------------------------------------====//
// Input Object Type Definition and Extension
//===----------------------------------------------------------------------------------------====//

// InputObjectTypeDefinition introduces an Input Object type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InputObjectTypeDefinition
type InputObjectTypeDefinition struct {
	DefinitionBase

	// Description documenting the input object, nil if not given.
	Description *StringValue

	// Keyword is the "input" token.
	Keyword *token.Token

	// Name of the Input Object type.
	Name Name

	// Fields defined by this Input Object.
	Fields []*InputValueDefinition

	// RightBrace is the closing brace of the field list, nil when the type has no fields block.
	RightBrace *token.Token
}

var _ Definition = (*InputObjectTypeDefinition)(nil)

// TokenRange implements Node.
func (node *InputObjectTypeDefinition) TokenRange() token.Range {
	first := node.Keyword
	if node.Description != nil {
		first = node.Description.TokenRange().First
	}
	last := node.RightBrace
	if last == nil {
		last = lastTokenOfDirectives(node.Directives, node.Name.Token)
	}
	return token.Range{First: first, Last: last}
}

// InputObjectTypeExtension adds fields or directives to a previously defined Input Object type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#InputObjectTypeExtension
type InputObjectTypeExtension struct {
	DefinitionBase

	// Keyword is the "extend" token.
	Keyword *token.Token

	// Name of the Input Object type being extended.
	Name Name

	// Fields contributed by this extension, if any.
	Fields []*InputValueDefinition

	// RightBrace is the closing brace of the field list, nil when this extension has no fields block.
	RightBrace *token.Token
}

var _ Definition = (*InputObjectTypeExtension)(nil)

// TokenRange implements Node.
func (node *InputObjectTypeExtension) TokenRange() token.Range {
	last := node.RightBrace
	if last == nil {
		last = lastTokenOfDirectives(node.Directives, node.Name.Token)
	}
	return token.Range{First: node.Keyword, Last: last}
}
