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

// ParseVariableDeclaration parses a variable declaration,
// e.g. a parameter `bytes calldata data`
func ParseVariableDeclaration(input []byte, config Config) (*ast.VariableDeclaration, error) {
	return parseAll(input, parseVariableDeclaration, config)
}

// parseVariableDeclaration parses a type,
// followed by an optional storage location and an optional name.
func parseVariableDeclaration(p *parser) (*ast.VariableDeclaration, error) {
	ty, err := parseType(p)
	if err != nil {
		return nil, err
	}

	declaration := &ast.VariableDeclaration{
		Type: ty,
	}

	p.skipSpaceAndComments()

	if p.current.Is(lexer.TokenIdentifier) {
		location, ok := lookupStorageLocation(string(p.currentTokenSource()))
		if ok {
			declaration.Storage = location
			declaration.StorageRange = p.current.Range
			p.next()
		}
	}

	declaration.Name = parseOptionalName(p)

	return declaration, nil
}

// parseVariableDeclarationForStruct parses a struct field:
// a type, followed by a required name.
// Storage locations are not allowed.
func parseVariableDeclarationForStruct(p *parser) (*ast.VariableDeclaration, error) {
	ty, err := parseType(p)
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()

	if p.current.Is(lexer.TokenIdentifier) {
		if _, ok := lookupStorageLocation(string(p.currentTokenSource())); ok {
			return nil, NewSyntaxError(
				p.current.StartPos,
				"struct fields may not have a storage location, got `%s`",
				p.currentTokenSource(),
			)
		}
	}

	name, err := p.nonReservedIdentifier("field name")
	if err != nil {
		return nil, err
	}

	return &ast.VariableDeclaration{
		Type: ty,
		Name: &name,
	}, nil
}
