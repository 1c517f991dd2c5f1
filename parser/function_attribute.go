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

// ParseFunctionAttributes parses the attributes of a function declaration,
// e.g. `external view virtual override(A, B) onlyOwner`.
// A function body is rejected.
func ParseFunctionAttributes(input []byte, config Config) (*ast.FunctionAttributes, error) {
	return parseAll(
		input,
		func(p *parser) (*ast.FunctionAttributes, error) {
			attributes, err := parseFunctionAttributes(p)
			if err != nil {
				return nil, err
			}

			if p.current.Is(lexer.TokenBraceOpen) {
				return nil, &FunctionImplementationError{
					Pos: p.current.StartPos,
				}
			}

			return attributes, nil
		},
		config,
	)
}

// ParseFunctionAttribute parses a single function attribute
func ParseFunctionAttribute(input []byte, config Config) (ast.FunctionAttribute, error) {
	return parseAll(input, parseFunctionAttribute, config)
}

// parseFunctionAttributes parses function attributes,
// until the end of the input, the `returns` keyword,
// a semicolon, or the opening brace of a function body.
//
// Parsing fails on the first attribute which is the same as a previous one.
func parseFunctionAttributes(p *parser) (*ast.FunctionAttributes, error) {
	attributes := ast.NewFunctionAttributes()

	for {
		p.skipSpaceAndComments()

		if p.isFunctionAttributesEnd() {
			return attributes, nil
		}

		attribute, err := parseFunctionAttribute(p)
		if err != nil {
			return nil, err
		}

		previous, inserted := attributes.Insert(attribute)
		if !inserted {
			return nil, NewDuplicateAttributeError(attribute, previous)
		}
	}
}

func (p *parser) isFunctionAttributesEnd() bool {
	switch p.current.Type {
	case lexer.TokenEOF,
		lexer.TokenSemicolon,
		lexer.TokenBraceOpen:

		return true

	case lexer.TokenIdentifier:
		return p.isKeyword(KeywordReturns)
	}

	return false
}

// functionAttributeAlternative is one form of function attributes.
// If the current token matches the alternative, it is parsed,
// otherwise the accepted tokens are added to the expectation.
type functionAttributeAlternative struct {
	matches func(p *parser) bool
	expect  func(p *parser, e *expectation)
	parse   func(p *parser) (ast.FunctionAttribute, error)
}

// functionAttributeAlternatives are tried in order, the first match wins
var functionAttributeAlternatives = []functionAttributeAlternative{
	{
		matches: func(p *parser) bool {
			_, ok := p.currentVisibility()
			return ok
		},
		expect: func(_ *parser, e *expectation) {
			e.keyword(visibilityKeywords...)
		},
		parse: parseVisibilityAttribute,
	},
	{
		matches: func(p *parser) bool {
			_, ok := p.currentMutability()
			return ok
		},
		expect: func(p *parser, e *expectation) {
			if p.config.NonPayableKeywordEnabled {
				e.keyword(mutabilityKeywordsWithNonPayable...)
			} else {
				e.keyword(mutabilityKeywords...)
			}
		},
		parse: parseMutabilityAttribute,
	},
	{
		matches: func(p *parser) bool {
			return p.isKeyword(KeywordVirtual)
		},
		expect: func(_ *parser, e *expectation) {
			e.keyword(KeywordVirtual)
		},
		parse: parseVirtualAttribute,
	},
	{
		matches: func(p *parser) bool {
			return p.isKeyword(KeywordOverride)
		},
		expect: func(_ *parser, e *expectation) {
			e.keyword(KeywordOverride)
		},
		parse: func(p *parser) (ast.FunctionAttribute, error) {
			return parseOverride(p)
		},
	},
	{
		matches: func(p *parser) bool {
			return p.isKeyword(KeywordImmutable)
		},
		expect: func(_ *parser, e *expectation) {
			e.keyword(KeywordImmutable)
		},
		parse: parseImmutableAttribute,
	},
	{
		// NOTE: `returns` is a hard keyword, so it is never a modifier name
		matches: func(p *parser) bool {
			return p.isNonReservedIdentifier()
		},
		expect: func(_ *parser, e *expectation) {
			e.form("modifier invocation")
		},
		parse: parseModifier,
	},
}

// parseFunctionAttribute parses one function attribute,
// using the first alternative that matches the current token.
func parseFunctionAttribute(p *parser) (ast.FunctionAttribute, error) {
	if p.current.Is(lexer.TokenBraceOpen) {
		return nil, &FunctionImplementationError{
			Pos: p.current.StartPos,
		}
	}

	expected := newExpectation()

	for _, alternative := range functionAttributeAlternatives {
		if alternative.matches(p) {
			return alternative.parse(p)
		}
		alternative.expect(p, expected)
	}

	return nil, expected.error(p)
}

func (p *parser) currentVisibility() (ast.Visibility, bool) {
	if !p.current.Is(lexer.TokenIdentifier) {
		return ast.VisibilityNotSpecified, false
	}
	return lookupVisibility(string(p.currentTokenSource()))
}

func (p *parser) currentMutability() (ast.Mutability, bool) {
	if !p.current.Is(lexer.TokenIdentifier) {
		return ast.MutabilityNotSpecified, false
	}
	return lookupMutability(
		string(p.currentTokenSource()),
		p.config.NonPayableKeywordEnabled,
	)
}

func parseVisibilityAttribute(p *parser) (ast.FunctionAttribute, error) {
	visibility, ok := p.currentVisibility()
	if !ok {
		return nil, p.expectedKeyword(visibilityKeywords...).error(p)
	}

	attribute := &ast.VisibilityAttribute{
		Visibility: visibility,
		Range:      p.current.Range,
	}
	p.next()
	return attribute, nil
}

func parseMutabilityAttribute(p *parser) (ast.FunctionAttribute, error) {
	mutability, ok := p.currentMutability()
	if !ok {
		return nil, p.expectedKeyword(mutabilityKeywords...).error(p)
	}

	attribute := &ast.MutabilityAttribute{
		Mutability: mutability,
		Range:      p.current.Range,
	}
	p.next()
	return attribute, nil
}

func parseVirtualAttribute(p *parser) (ast.FunctionAttribute, error) {
	token, err := p.mustKeyword(KeywordVirtual)
	if err != nil {
		return nil, err
	}

	return &ast.VirtualAttribute{
		Range: token.Range,
	}, nil
}

func parseImmutableAttribute(p *parser) (ast.FunctionAttribute, error) {
	token, err := p.mustKeyword(KeywordImmutable)
	if err != nil {
		return nil, err
	}

	return &ast.ImmutableAttribute{
		Range: token.Range,
	}, nil
}

// parseOverride parses an `override` attribute,
// optionally followed by a parenthesized list of paths, e.g. `override(A, B.C)`
func parseOverride(p *parser) (*ast.Override, error) {
	token, err := p.mustKeyword(KeywordOverride)
	if err != nil {
		return nil, err
	}

	override := &ast.Override{
		Range: token.Range,
	}

	p.skipSpaceAndComments()

	if !p.current.Is(lexer.TokenParenOpen) {
		return override, nil
	}

	p.nextSemanticToken()

	for {
		path, err := parsePath(p, "base contract name")
		if err != nil {
			return nil, err
		}
		override.Paths = append(override.Paths, path)

		p.skipSpaceAndComments()

		switch p.current.Type {
		case lexer.TokenComma:
			p.nextSemanticToken()

		case lexer.TokenParenClose:
			override.EndPos = p.current.EndPos
			p.next()
			return override, nil

		default:
			return nil, p.expectedToken(lexer.TokenComma, lexer.TokenParenClose).error(p)
		}
	}
}

// parseModifier parses a modifier invocation,
// i.e. a path, optionally followed by an argument list, e.g. `onlyRole(ADMIN)`
func parseModifier(p *parser) (ast.FunctionAttribute, error) {
	name, err := parsePath(p, "modifier name")
	if err != nil {
		return nil, err
	}

	modifier := &ast.Modifier{
		Name: name,
		Range: ast.NewRange(
			name.StartPosition(),
			name.EndPosition(),
		),
	}

	p.skipSpaceAndComments()

	if p.current.Is(lexer.TokenParenOpen) {
		arguments, err := parseArgumentList(p)
		if err != nil {
			return nil, err
		}
		modifier.Arguments = arguments
		modifier.EndPos = arguments.EndPos
	}

	return modifier, nil
}
