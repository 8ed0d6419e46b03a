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

package parser

import (
	"github.com/harborgql/harbor/graphql/ast"
	"github.com/harborgql/harbor/graphql/token"
)

// This file parses the Type System Definition Language (SDL): schema, scalar, type, interface,
// union, enum, input and directive definitions, plus their "extend" counterparts. parseDefinition
// in parser.go dispatches here once it sees a leading description or one of the SDL keywords.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System

//	Description ::
//		StringValue
func (p *parser) parseDescription() (*ast.StringValue, error) {
	tok := p.peek()
	if tok.Kind != token.KindString && tok.Kind != token.KindBlockString {
		return nil, nil
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}
	return &ast.StringValue{Token: tok}, nil
}

//	TypeSystemDefinition ::
//		SchemaDefinition
//		TypeDefinition
//		DirectiveDefinition
//
// description is the already-parsed leading description, if any; callers that haven't already
// consumed one (e.g. when dispatching directly off a keyword token) pass nil.
func (p *parser) parseTypeSystemDefinition(description *ast.StringValue) (ast.Definition, error) {
	tok := p.peek()
	if tok.Kind != token.KindName {
		return nil, p.unexpected()
	}

	switch tok.Value {
	case "schema":
		return p.parseSchemaDefinition(description)
	case "scalar":
		return p.parseScalarTypeDefinition(description)
	case "type":
		return p.parseObjectTypeDefinition(description)
	case "interface":
		return p.parseInterfaceTypeDefinition(description)
	case "union":
		return p.parseUnionTypeDefinition(description)
	case "enum":
		return p.parseEnumTypeDefinition(description)
	case "input":
		return p.parseInputObjectTypeDefinition(description)
	case "directive":
		return p.parseDirectiveDefinition(description)
	}

	return nil, p.unexpected()
}

//	TypeSystemExtension ::
//		SchemaExtension
//		TypeExtension
func (p *parser) parseTypeSystemExtension() (ast.Definition, error) {
	keyword, err := p.expect(token.KindName) // "extend"
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.Kind != token.KindName {
		return nil, p.unexpected()
	}

	switch tok.Value {
	case "schema":
		return p.parseSchemaExtension(keyword)
	case "scalar":
		return p.parseScalarTypeExtension(keyword)
	case "type":
		return p.parseObjectTypeExtension(keyword)
	case "interface":
		return p.parseInterfaceTypeExtension(keyword)
	case "union":
		return p.parseUnionTypeExtension(keyword)
	case "enum":
		return p.parseEnumTypeExtension(keyword)
	case "input":
		return p.parseInputObjectTypeExtension(keyword)
	}

	return nil, p.unexpected()
}

//	SchemaDefinition ::
//		Description? schema Directives? { OperationTypeDefinition+ }
func (p *parser) parseSchemaDefinition(description *ast.StringValue) (*ast.SchemaDefinition, error) {
	keyword, err := p.expect(token.KindName) // "schema"
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var operationTypes []*ast.OperationTypeDefinition
	for {
		operationType, err := p.parseOperationTypeDefinition()
		if err != nil {
			return nil, err
		}
		operationTypes = append(operationTypes, operationType)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, err
		} else if stop {
			break
		}
	}
	rightBrace := p.lexer.Token().Prev

	return &ast.SchemaDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Keyword:        keyword,
		OperationTypes: operationTypes,
		RightBrace:     rightBrace,
	}, nil
}

//	SchemaExtension ::
//		extend schema Directives? { OperationTypeDefinition+ }
//		extend schema Directives
func (p *parser) parseSchemaExtension(keyword *token.Token) (*ast.SchemaExtension, error) {
	if err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}

	var directives ast.Directives
	var err error
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	if p.peek().Kind != token.KindLeftBrace {
		if len(directives) == 0 {
			return nil, p.unexpected()
		}
		return &ast.SchemaExtension{
			DefinitionBase: ast.DefinitionBase{Directives: directives},
			Keyword:        keyword,
		}, nil
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, err
	}

	var operationTypes []*ast.OperationTypeDefinition
	for {
		operationType, err := p.parseOperationTypeDefinition()
		if err != nil {
			return nil, err
		}
		operationTypes = append(operationTypes, operationType)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, err
		} else if stop {
			break
		}
	}
	rightBrace := p.lexer.Token().Prev

	return &ast.SchemaExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Keyword:        keyword,
		OperationTypes: operationTypes,
		RightBrace:     rightBrace,
	}, nil
}

//	OperationTypeDefinition ::
//		OperationType : NamedType
func (p *parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	operationToken, err := p.expect(token.KindName)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	namedType, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}

	return &ast.OperationTypeDefinition{
		Operation:      ast.OperationType(operationToken.Value),
		OperationToken: operationToken,
		Type:           namedType,
	}, nil
}

//	ScalarTypeDefinition ::
//		Description? scalar Name Directives?
func (p *parser) parseScalarTypeDefinition(description *ast.StringValue) (*ast.ScalarTypeDefinition, error) {
	keyword, err := p.expect(token.KindName) // "scalar"
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	return &ast.ScalarTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Keyword:        keyword,
		Name:           name,
	}, nil
}

//	ScalarTypeExtension ::
//		extend scalar Name Directives
func (p *parser) parseScalarTypeExtension(keyword *token.Token) (*ast.ScalarTypeExtension, error) {
	if err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != token.KindAt {
		return nil, p.unexpected()
	}
	directives, err := p.parseDirectives(true /* isConst */)
	if err != nil {
		return nil, err
	}

	return &ast.ScalarTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Keyword:        keyword,
		Name:           name,
	}, nil
}

//	ObjectTypeDefinition ::
//		Description? type Name ImplementsInterfaces? Directives? FieldsDefinition?
func (p *parser) parseObjectTypeDefinition(description *ast.StringValue) (*ast.ObjectTypeDefinition, error) {
	keyword, err := p.expect(token.KindName) // "type"
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.ObjectTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Keyword:        keyword,
		Name:           name,
		Interfaces:     interfaces,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	ObjectTypeExtension ::
//		extend type Name ImplementsInterfaces? Directives? FieldsDefinition
//		extend type Name ImplementsInterfaces? Directives
//		extend type Name ImplementsInterfaces
func (p *parser) parseObjectTypeExtension(keyword *token.Token) (*ast.ObjectTypeExtension, error) {
	if err := p.expectKeyword("type"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	var fields []*ast.FieldDefinition
	var rightBrace *token.Token
	if p.peek().Kind == token.KindLeftBrace {
		if fields, rightBrace, err = p.parseFieldsDefinition(); err != nil {
			return nil, err
		}
	} else if len(interfaces) == 0 && len(directives) == 0 {
		return nil, p.unexpected()
	}

	return &ast.ObjectTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Keyword:        keyword,
		Name:           name,
		Interfaces:     interfaces,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	ImplementsInterfaces ::
//		implements &? NamedType
//		ImplementsInterfaces & NamedType
func (p *parser) parseImplementsInterfaces() ([]ast.NamedType, error) {
	hasImplements, err := p.skipKeyword("implements")
	if err != nil {
		return nil, err
	}
	if !hasImplements {
		return nil, nil
	}

	// Tolerate a leading "&" before the first interface, matching common SDL usage.
	if _, err := p.skip(token.KindAmp); err != nil {
		return nil, err
	}

	var interfaces []ast.NamedType
	for {
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, namedType)

		hasNext, err := p.skip(token.KindAmp)
		if err != nil {
			return nil, err
		}
		if !hasNext {
			break
		}
	}

	return interfaces, nil
}

//	FieldsDefinition ::
//		{ FieldDefinition+ }
func (p *parser) parseFieldsDefinition() ([]*ast.FieldDefinition, *token.Token, error) {
	if p.peek().Kind != token.KindLeftBrace {
		return nil, nil, nil
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, nil, err
	}

	var fields []*ast.FieldDefinition
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, field)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, nil, err
		} else if stop {
			break
		}
	}

	return fields, p.lexer.Token().Prev, nil
}

//	FieldDefinition ::
//		Description? Name ArgumentsDefinition? : Type Directives?
func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	if p.peek().Kind == token.KindLeftParen {
		if arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	fieldType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	return &ast.FieldDefinition{
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        fieldType,
		Directives:  directives,
	}, nil
}

//	ArgumentsDefinition ::
//		( InputValueDefinition+ )
func (p *parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	if _, err := p.expect(token.KindLeftParen); err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	for {
		argument, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)

		stop, err := p.skip(token.KindRightParen)
		if err != nil {
			return nil, err
		} else if stop {
			break
		}
	}

	return arguments, nil
}

//	InputValueDefinition ::
//		Description? Name : Type DefaultValue? Directives?
func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return nil, err
	}

	valueType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	if p.peek().Kind == token.KindEquals {
		if defaultValue, err = p.parseDefaultValue(); err != nil {
			return nil, err
		}
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	return &ast.InputValueDefinition{
		Description:  description,
		Name:         name,
		Type:         valueType,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

//	InterfaceTypeDefinition ::
//		Description? interface Name ImplementsInterfaces? Directives? FieldsDefinition?
func (p *parser) parseInterfaceTypeDefinition(description *ast.StringValue) (*ast.InterfaceTypeDefinition, error) {
	keyword, err := p.expect(token.KindName) // "interface"
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.InterfaceTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Keyword:        keyword,
		Name:           name,
		Interfaces:     interfaces,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	InterfaceTypeExtension ::
//		extend interface Name ImplementsInterfaces? Directives? FieldsDefinition
//		extend interface Name ImplementsInterfaces? Directives
//		extend interface Name ImplementsInterfaces
func (p *parser) parseInterfaceTypeExtension(keyword *token.Token) (*ast.InterfaceTypeExtension, error) {
	if err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	var fields []*ast.FieldDefinition
	var rightBrace *token.Token
	if p.peek().Kind == token.KindLeftBrace {
		if fields, rightBrace, err = p.parseFieldsDefinition(); err != nil {
			return nil, err
		}
	} else if len(interfaces) == 0 && len(directives) == 0 {
		return nil, p.unexpected()
	}

	return &ast.InterfaceTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Keyword:        keyword,
		Name:           name,
		Interfaces:     interfaces,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	UnionTypeDefinition ::
//		Description? union Name Directives? UnionMemberTypes?
func (p *parser) parseUnionTypeDefinition(description *ast.StringValue) (*ast.UnionTypeDefinition, error) {
	keyword, err := p.expect(token.KindName) // "union"
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	return &ast.UnionTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Keyword:        keyword,
		Name:           name,
		Types:          types,
	}, nil
}

//	UnionTypeExtension ::
//		extend union Name Directives? UnionMemberTypes
//		extend union Name Directives
func (p *parser) parseUnionTypeExtension(keyword *token.Token) (*ast.UnionTypeExtension, error) {
	if err := p.expectKeyword("union"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}

	if len(types) == 0 && len(directives) == 0 {
		return nil, p.unexpected()
	}

	return &ast.UnionTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Keyword:        keyword,
		Name:           name,
		Types:          types,
	}, nil
}

//	UnionMemberTypes ::
//		= |? NamedType
//		UnionMemberTypes | NamedType
func (p *parser) parseUnionMemberTypes() ([]ast.NamedType, error) {
	hasEquals, err := p.skip(token.KindEquals)
	if err != nil {
		return nil, err
	}
	if !hasEquals {
		return nil, nil
	}

	// Tolerate a leading "|" before the first member, matching common SDL usage.
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var types []ast.NamedType
	for {
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, namedType)

		hasNext, err := p.skip(token.KindPipe)
		if err != nil {
			return nil, err
		}
		if !hasNext {
			break
		}
	}

	return types, nil
}

//	EnumTypeDefinition ::
//		Description? enum Name Directives? EnumValuesDefinition?
func (p *parser) parseEnumTypeDefinition(description *ast.StringValue) (*ast.EnumTypeDefinition, error) {
	keyword, err := p.expect(token.KindName) // "enum"
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	values, rightBrace, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.EnumTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Keyword:        keyword,
		Name:           name,
		Values:         values,
		RightBrace:     rightBrace,
	}, nil
}

//	EnumTypeExtension ::
//		extend enum Name Directives? EnumValuesDefinition
//		extend enum Name Directives
func (p *parser) parseEnumTypeExtension(keyword *token.Token) (*ast.EnumTypeExtension, error) {
	if err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	var values []*ast.EnumValueDefinition
	var rightBrace *token.Token
	if p.peek().Kind == token.KindLeftBrace {
		if values, rightBrace, err = p.parseEnumValuesDefinition(); err != nil {
			return nil, err
		}
	} else if len(directives) == 0 {
		return nil, p.unexpected()
	}

	return &ast.EnumTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Keyword:        keyword,
		Name:           name,
		Values:         values,
		RightBrace:     rightBrace,
	}, nil
}

//	EnumValuesDefinition ::
//		{ EnumValueDefinition+ }
func (p *parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, *token.Token, error) {
	if p.peek().Kind != token.KindLeftBrace {
		return nil, nil, nil
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, nil, err
	}

	var values []*ast.EnumValueDefinition
	for {
		value, err := p.parseEnumValueDefinition()
		if err != nil {
			return nil, nil, err
		}
		values = append(values, value)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, nil, err
		} else if stop {
			break
		}
	}

	return values, p.lexer.Token().Prev, nil
}

//	EnumValueDefinition ::
//		Description? EnumValue Directives?
//
//	EnumValue ::
//		Name but not true, false or null
func (p *parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	return &ast.EnumValueDefinition{
		Description: description,
		Name:        name,
		Directives:  directives,
	}, nil
}

//	InputObjectTypeDefinition ::
//		Description? input Name Directives? InputFieldsDefinition?
func (p *parser) parseInputObjectTypeDefinition(description *ast.StringValue) (*ast.InputObjectTypeDefinition, error) {
	keyword, err := p.expect(token.KindName) // "input"
	if err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	fields, rightBrace, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}

	return &ast.InputObjectTypeDefinition{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Description:    description,
		Keyword:        keyword,
		Name:           name,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	InputObjectTypeExtension ::
//		extend input Name Directives? InputFieldsDefinition
//		extend input Name Directives
func (p *parser) parseInputObjectTypeExtension(keyword *token.Token) (*ast.InputObjectTypeExtension, error) {
	if err := p.expectKeyword("input"); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.peek().Kind == token.KindAt {
		if directives, err = p.parseDirectives(true /* isConst */); err != nil {
			return nil, err
		}
	}

	var fields []*ast.InputValueDefinition
	var rightBrace *token.Token
	if p.peek().Kind == token.KindLeftBrace {
		if fields, rightBrace, err = p.parseInputFieldsDefinition(); err != nil {
			return nil, err
		}
	} else if len(directives) == 0 {
		return nil, p.unexpected()
	}

	return &ast.InputObjectTypeExtension{
		DefinitionBase: ast.DefinitionBase{Directives: directives},
		Keyword:        keyword,
		Name:           name,
		Fields:         fields,
		RightBrace:     rightBrace,
	}, nil
}

//	InputFieldsDefinition ::
//		{ InputValueDefinition+ }
func (p *parser) parseInputFieldsDefinition() ([]*ast.InputValueDefinition, *token.Token, error) {
	if p.peek().Kind != token.KindLeftBrace {
		return nil, nil, nil
	}

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return nil, nil, err
	}

	var fields []*ast.InputValueDefinition
	for {
		field, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, nil, err
		}
		fields = append(fields, field)

		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return nil, nil, err
		} else if stop {
			break
		}
	}

	return fields, p.lexer.Token().Prev, nil
}

//	DirectiveDefinition ::
//		Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
func (p *parser) parseDirectiveDefinition(description *ast.StringValue) (*ast.DirectiveDefinition, error) {
	keyword, err := p.expect(token.KindName) // "directive"
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KindAt); err != nil {
		return nil, err
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	if p.peek().Kind == token.KindLeftParen {
		if arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}

	repeatable, err := p.skipKeyword("repeatable")
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}

	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}

	return &ast.DirectiveDefinition{
		Description: description,
		Keyword:     keyword,
		Name:        name,
		Arguments:   arguments,
		Repeatable:  repeatable,
		Locations:   locations,
	}, nil
}

//	DirectiveLocations ::
//		|? DirectiveLocation
//		DirectiveLocations | DirectiveLocation
func (p *parser) parseDirectiveLocations() ([]ast.Name, error) {
	// Tolerate a leading "|" before the first location.
	if _, err := p.skip(token.KindPipe); err != nil {
		return nil, err
	}

	var locations []ast.Name
	for {
		location, err := p.parseName()
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)

		hasNext, err := p.skip(token.KindPipe)
		if err != nil {
			return nil, err
		}
		if !hasNext {
			break
		}
	}

	return locations, nil
}
