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
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/common"
	"github.com/onflow/solsyn/parser/lexer"
)

// ParseDeclarations parses a sequence of function, struct, and state variable declarations.
// Leading comments are attached to the declaration they precede.
func ParseDeclarations(input []byte, config Config) ([]ast.Declaration, error) {
	return parseAll(
		input,
		func(p *parser) ([]ast.Declaration, error) {
			return parseDeclarations(p, lexer.TokenEOF)
		},
		config,
	)
}

// ParseFunctionDeclaration parses a function declaration without an implementation,
// e.g. `function transfer(address to, uint256 amount) external returns (bool);`
func ParseFunctionDeclaration(input []byte, config Config) (*ast.FunctionDeclaration, error) {
	return parseAll(
		input,
		func(p *parser) (*ast.FunctionDeclaration, error) {
			return parseFunctionDeclaration(p, p.takeLeadingComments())
		},
		config,
	)
}

// ParseStructDeclaration parses a struct declaration,
// e.g. `struct Mail { address from; address to; string contents; }`
func ParseStructDeclaration(input []byte, config Config) (*ast.StructDeclaration, error) {
	return parseAll(
		input,
		func(p *parser) (*ast.StructDeclaration, error) {
			return parseStructDeclaration(p, p.takeLeadingComments())
		},
		config,
	)
}

// ParseStateVariable parses a state variable declaration,
// e.g. `uint256 public constant MAX_SUPPLY = 1_000_000;`
func ParseStateVariable(input []byte, config Config) (*ast.StateVariableDeclaration, error) {
	return parseAll(
		input,
		func(p *parser) (*ast.StateVariableDeclaration, error) {
			return parseStateVariableDeclaration(p, p.takeLeadingComments())
		},
		config,
	)
}

func parseDeclarations(p *parser, endTokenType lexer.TokenType) (declarations []ast.Declaration, err error) {
	for {
		p.skipSpaceAndComments()

		comments := p.takeLeadingComments()

		switch p.current.Type {
		case lexer.TokenSemicolon:
			// Skip the semicolon
			p.next()
			continue

		case endTokenType, lexer.TokenEOF:
			return

		default:
			var declaration ast.Declaration
			declaration, err = parseDeclaration(p, comments)
			if err != nil {
				return nil, err
			}

			declarations = append(declarations, declaration)

			// Comments inside the declaration do not belong to the next declaration
			p.takeLeadingComments()
		}
	}
}

func parseDeclaration(p *parser, comments []*ast.Comment) (ast.Declaration, error) {
	switch {
	case p.isKeyword(KeywordFunction):
		return parseFunctionDeclaration(p, comments)

	case p.isKeyword(KeywordStruct):
		return parseStructDeclaration(p, comments)

	case p.isTypeStart():
		return parseStateVariableDeclaration(p, comments)
	}

	return nil, p.expectedKeyword(KeywordFunction, KeywordStruct).
		form("state variable type").
		error(p)
}

// parseFunctionDeclaration parses a function declaration:
//
//	`function` name `(` parameters `)` attributes [ `returns` `(` parameters `)` ] `;`
func parseFunctionDeclaration(p *parser, comments []*ast.Comment) (*ast.FunctionDeclaration, error) {
	startToken, err := p.mustKeyword(KeywordFunction)
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()

	identifier, err := p.nonReservedIdentifier("function name")
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()

	parameters, _, err := parseParenthesizedParameterList(p)
	if err != nil {
		return nil, err
	}

	attributes, err := parseFunctionAttributes(p)
	if err != nil {
		return nil, err
	}

	var returns *ast.ReturnParameters

	if p.isKeyword(KeywordReturns) {
		returnsToken := p.current
		p.nextSemanticToken()

		returnParameters, endPos, err := parseParenthesizedParameterList(p)
		if err != nil {
			return nil, err
		}

		returns = &ast.ReturnParameters{
			Parameters: returnParameters,
			Range: ast.NewRange(
				returnsToken.StartPos,
				endPos,
			),
		}
	}

	p.skipSpaceAndComments()

	switch p.current.Type {
	case lexer.TokenSemicolon:
		endToken := p.current
		p.next()

		return &ast.FunctionDeclaration{
			Identifier: identifier,
			Parameters: parameters,
			Attributes: attributes,
			Returns:    returns,
			Comments: ast.Comments{
				Leading: comments,
			},
			Range: ast.NewRange(
				startToken.StartPos,
				endToken.EndPos,
			),
		}, nil

	case lexer.TokenBraceOpen:
		return nil, &FunctionImplementationError{
			Pos: p.current.StartPos,
		}

	default:
		expected := p.expectedToken(lexer.TokenSemicolon)
		if returns == nil {
			expected.keyword(KeywordReturns)
		}
		return nil, expected.error(p)
	}
}

// parseParenthesizedParameterList parses a parameter list enclosed in parentheses.
// It returns the end position of the closing parenthesis.
func parseParenthesizedParameterList(p *parser) (*ast.ParameterList, ast.Position, error) {
	_, err := p.mustOne(lexer.TokenParenOpen)
	if err != nil {
		return nil, ast.EmptyPosition, err
	}

	parameters, err := parseParameterList(p)
	if err != nil {
		return nil, ast.EmptyPosition, err
	}

	p.skipSpaceAndComments()

	endToken, err := p.mustOne(lexer.TokenParenClose)
	if err != nil {
		return nil, ast.EmptyPosition, err
	}

	return parameters, endToken.EndPos, nil
}

// parseStructDeclaration parses a struct declaration:
//
//	`struct` name `{` fields `}`
func parseStructDeclaration(p *parser, comments []*ast.Comment) (*ast.StructDeclaration, error) {
	startToken, err := p.mustKeyword(KeywordStruct)
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()

	identifier, err := p.nonReservedIdentifier("struct name")
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()

	_, err = p.mustOne(lexer.TokenBraceOpen)
	if err != nil {
		return nil, err
	}

	fields, err := parseFieldList(p)
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()

	endToken, err := p.mustOne(lexer.TokenBraceClose)
	if err != nil {
		return nil, err
	}

	return &ast.StructDeclaration{
		Identifier: identifier,
		Fields:     fields,
		Comments: ast.Comments{
			Leading: comments,
		},
		Range: ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	}, nil
}

// parseStateVariableDeclaration parses a state variable declaration:
//
//	type attributes name [ `=` expression ] `;`
func parseStateVariableDeclaration(p *parser, comments []*ast.Comment) (*ast.StateVariableDeclaration, error) {
	ty, err := parseType(p)
	if err != nil {
		return nil, err
	}

	attributes := ast.NewVariableAttributes()

	for {
		p.skipSpaceAndComments()

		attribute, err := parseVariableAttribute(p)
		if err != nil {
			return nil, err
		}
		if attribute == nil {
			break
		}

		previous, inserted := attributes.Insert(attribute)
		if !inserted {
			return nil, NewDuplicateAttributeError(attribute, previous)
		}
	}

	identifier, err := p.nonReservedIdentifier("variable name")
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()

	// Another identifier following the name means
	// the presumed name was meant to be an attribute
	if p.isNonReservedIdentifier() {
		return nil, &UnknownVariableAttributeError{
			Name:       identifier.Identifier,
			Suggestion: closestVariableAttribute(identifier.Identifier),
			Range:      ast.NewRangeFromPositioned(identifier),
		}
	}

	var value ast.Expression

	if p.current.Is(lexer.TokenEqual) {
		p.nextSemanticToken()

		value, err = parseExpression(p)
		if err != nil {
			return nil, err
		}

		p.skipSpaceAndComments()
	}

	endToken, err := p.mustOne(lexer.TokenSemicolon)
	if err != nil {
		return nil, err
	}

	return &ast.StateVariableDeclaration{
		Type:       ty,
		Attributes: attributes,
		Identifier: identifier,
		Value:      value,
		Comments: ast.Comments{
			Leading: comments,
		},
		Range: ast.NewRange(
			ty.StartPosition(),
			endToken.EndPos,
		),
	}, nil
}

// parseVariableAttribute parses a state variable attribute, if any.
// It returns nil if the current token is not a variable attribute.
func parseVariableAttribute(p *parser) (ast.VariableAttribute, error) {
	if !p.current.Is(lexer.TokenIdentifier) {
		return nil, nil
	}

	keyword := string(p.currentTokenSource())

	switch keyword {
	case KeywordConstant:
		attribute := &ast.ConstantAttribute{
			Range: p.current.Range,
		}
		p.next()
		return attribute, nil

	case KeywordImmutable:
		attribute := &ast.ImmutableAttribute{
			Range: p.current.Range,
		}
		p.next()
		return attribute, nil

	case KeywordOverride:
		return parseOverride(p)
	}

	visibility, ok := lookupVisibility(keyword)
	if !ok {
		return nil, nil
	}

	if visibility == ast.VisibilityExternal {
		return nil, NewSyntaxError(
			p.current.StartPos,
			"invalid visibility for %s: `%s`",
			common.DeclarationKindStateVariable.Name(),
			keyword,
		)
	}

	attribute := &ast.VisibilityAttribute{
		Visibility: visibility,
		Range:      p.current.Range,
	}
	p.next()
	return attribute, nil
}

// closestVariableAttribute returns the variable attribute keyword
// with the smallest edit distance from the given name,
// or the empty string if all keywords are too different
func closestVariableAttribute(name string) (closest string) {
	nameRunes := []rune(name)

	closestDistance := len(name)

	sortedKeywords := make([]string, len(variableAttributeKeywords))
	copy(sortedKeywords, variableAttributeKeywords)
	sort.Strings(sortedKeywords)

	for _, keyword := range sortedKeywords {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(keyword),
			levenshtein.DefaultOptions,
		)

		// Don't suggest a keyword if the edits would replace all of it
		if distance < closestDistance && distance < len(keyword) {
			closest = keyword
			closestDistance = distance
		}
	}

	return
}
