/*
 * Solsyn - Solidity declaration syntax for Go
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package parser

import (
	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/parser/lexer"
)

// ParseType parses a single type, e.g. `mapping(address => uint256[])`
func ParseType(input []byte, config Config) (ast.Type, error) {
	return parseAll(input, parseType, config)
}

// parseType parses a type, optionally followed by array suffixes
func parseType(p *parser) (ast.Type, error) {
	err := p.enterType()
	defer p.leaveType()
	if err != nil {
		return nil, err
	}

	ty, err := parseTypeWithoutSuffix(p)
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpaceAndComments()
		if !p.current.Is(lexer.TokenBracketOpen) {
			return ty, nil
		}

		p.nextSemanticToken()

		var size ast.Expression
		if !p.current.Is(lexer.TokenBracketClose) {
			size, err = parseExpression(p)
			if err != nil {
				return nil, err
			}
			p.skipSpaceAndComments()
		}

		endToken, err := p.mustOne(lexer.TokenBracketClose)
		if err != nil {
			return nil, err
		}

		ty = &ast.ArrayType{
			Type:   ty,
			Size:   size,
			EndPos: endToken.EndPos,
		}
	}
}

func parseTypeWithoutSuffix(p *parser) (ast.Type, error) {
	switch p.current.Type {
	case lexer.TokenParenOpen:
		return parseTupleType(p)

	case lexer.TokenIdentifier:
		name := string(p.currentTokenSource())

		if name == KeywordMapping {
			return parseMappingType(p)
		}

		if ast.IsElementaryTypeName(name) {
			return parseElementaryType(p, name)
		}

		path, err := parsePath(p, "type")
		if err != nil {
			return nil, err
		}
		return &ast.NominalType{
			Path: path,
		}, nil
	}

	return nil, p.expected("type").error(p)
}

// isTypeStart reports whether the current token may start a type
func (p *parser) isTypeStart() bool {
	return p.current.Is(lexer.TokenParenOpen) ||
		p.isNonReservedIdentifier() ||
		p.isKeyword(KeywordMapping)
}

// parseElementaryType parses an elementary type.
// An `address` may be followed by `payable`.
func parseElementaryType(p *parser, name string) (*ast.ElementaryType, error) {
	ty := &ast.ElementaryType{
		Name:  name,
		Range: p.current.Range,
	}
	p.next()

	if name == "address" {
		p.skipSpaceAndComments()
		if p.isKeyword(KeywordPayable) {
			ty.Payable = true
			ty.EndPos = p.current.EndPos
			p.next()
		}
	}

	return ty, nil
}

// parseTupleType parses a parenthesized, comma separated list of types,
// e.g. `(uint256, bool)`
func parseTupleType(p *parser) (*ast.TupleType, error) {
	startToken, err := p.mustOne(lexer.TokenParenOpen)
	if err != nil {
		return nil, err
	}

	var types []ast.Type

	p.skipSpaceAndComments()

	for !p.current.Is(lexer.TokenParenClose) {
		ty, err := parseType(p)
		if err != nil {
			return nil, err
		}
		types = append(types, ty)

		p.skipSpaceAndComments()

		switch p.current.Type {
		case lexer.TokenComma:
			p.nextSemanticToken()
			if p.current.Is(lexer.TokenParenClose) {
				return nil, p.expected("type").error(p)
			}

		case lexer.TokenParenClose:
			// handled by loop condition

		default:
			return nil, p.expectedToken(lexer.TokenComma, lexer.TokenParenClose).error(p)
		}
	}

	endToken := p.current
	p.next()

	return &ast.TupleType{
		Types: types,
		Range: ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	}, nil
}

// parseMappingType parses a mapping type,
// e.g. `mapping(address owner => uint256 balance)`.
// The key and value names are optional.
func parseMappingType(p *parser) (*ast.MappingType, error) {
	startToken, err := p.mustKeyword(KeywordMapping)
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()

	_, err = p.mustOne(lexer.TokenParenOpen)
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()

	keyType, err := parseType(p)
	if err != nil {
		return nil, err
	}

	keyName := parseOptionalName(p)

	p.skipSpaceAndComments()

	_, err = p.mustOne(lexer.TokenEqualGreater)
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()

	valueType, err := parseType(p)
	if err != nil {
		return nil, err
	}

	valueName := parseOptionalName(p)

	p.skipSpaceAndComments()

	endToken, err := p.mustOne(lexer.TokenParenClose)
	if err != nil {
		return nil, err
	}

	return &ast.MappingType{
		KeyType:   keyType,
		KeyName:   keyName,
		ValueType: valueType,
		ValueName: valueName,
		Range: ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	}, nil
}

// parseOptionalName parses a name, if the current token is a non-reserved identifier
func parseOptionalName(p *parser) *ast.Identifier {
	p.skipSpaceAndComments()

	if !p.isNonReservedIdentifier() {
		return nil
	}

	identifier := p.tokenToIdentifier(p.current)
	p.next()
	return &identifier
}

// parsePath parses a dot separated sequence of identifiers, e.g. `Exchange.Order`
func parsePath(p *parser, description string) (ast.Path, error) {
	identifier, err := p.nonReservedIdentifier(description)
	if err != nil {
		return nil, err
	}

	path := ast.NewPath(identifier)

	for {
		p.skipSpaceAndComments()
		if !p.current.Is(lexer.TokenDot) {
			return path, nil
		}

		p.nextSemanticToken()

		identifier, err = p.nonReservedIdentifier("identifier")
		if err != nil {
			return nil, err
		}

		path = append(path, identifier)
	}
}
