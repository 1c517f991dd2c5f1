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

// declarationListPolicy determines how a declaration list is parsed
type declarationListPolicy struct {
	separator        lexer.TokenType
	parseDeclaration func(p *parser) (*ast.VariableDeclaration, error)
	// requireTrailingSeparator requires the last declaration to be followed by a separator
	requireTrailingSeparator bool
	// requireNonEmpty requires at least one declaration
	requireNonEmpty bool
}

var parameterListPolicy = declarationListPolicy{
	separator:        lexer.TokenComma,
	parseDeclaration: parseVariableDeclaration,
}

var fieldListPolicy = declarationListPolicy{
	separator:                lexer.TokenSemicolon,
	parseDeclaration:         parseVariableDeclarationForStruct,
	requireTrailingSeparator: true,
	requireNonEmpty:          true,
}

// ParseParameterList parses a comma separated list of variable declarations,
// e.g. `address to, uint256 amount`, without the enclosing parentheses.
// The trailing comma is optional, and the list may be empty.
func ParseParameterList(input []byte, config Config) (*ast.ParameterList, error) {
	return parseAll(input, parseParameterList, config)
}

// ParseFieldList parses a semicolon separated list of struct fields,
// e.g. `address to; uint256 amount;`, without the enclosing braces.
// The list must not be empty, and the last field must be followed by a semicolon.
func ParseFieldList(input []byte, config Config) (*ast.FieldList, error) {
	return parseAll(input, parseFieldList, config)
}

func parseParameterList(p *parser) (*ast.ParameterList, error) {
	return parseDeclarationList[ast.Comma](p, parameterListPolicy)
}

func parseFieldList(p *parser) (*ast.FieldList, error) {
	return parseDeclarationList[ast.Semicolon](p, fieldListPolicy)
}

// parseDeclarationList parses declarations separated by the policy's separator.
// Parsing stops at the first token which can not start a declaration,
// e.g. a closing parenthesis or brace.
func parseDeclarationList[S ast.Separator](
	p *parser,
	policy declarationListPolicy,
) (
	*ast.DeclarationList[S],
	error,
) {
	var separator S

	list := &ast.DeclarationList[S]{}

	var lastDeclaration *ast.VariableDeclaration

	for {
		p.skipSpaceAndComments()

		if !p.isTypeStart() {
			break
		}

		declaration, err := policy.parseDeclaration(p)
		if err != nil {
			return nil, err
		}

		list.Declarations = append(list.Declarations, declaration)
		list.TrailingSeparator = false
		lastDeclaration = declaration

		p.skipSpaceAndComments()

		if p.current.Is(policy.separator) {
			list.TrailingSeparator = true
			p.next()
			continue
		}

		if p.isTypeStart() {
			return nil, &MissingSeparatorError{
				Separator: separator.Token(),
				Pos:       declaration.EndPosition().Shifted(1),
			}
		}

		break
	}

	if policy.requireNonEmpty && lastDeclaration == nil {
		return nil, &EmptyFieldListError{
			Pos: p.current.StartPos,
		}
	}

	if policy.requireTrailingSeparator &&
		lastDeclaration != nil &&
		!list.TrailingSeparator {

		return nil, &MissingTrailingSeparatorError{
			Separator: separator.Token(),
			Pos:       lastDeclaration.EndPosition().Shifted(1),
		}
	}

	return list, nil
}
