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

// Package parser implements a recursive descent parser
// for Solidity function attributes, declaration lists,
// and the declarations using them.
package parser

import (
	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/errors"
	"github.com/onflow/solsyn/parser/lexer"
)

const defaultTypeDepthLimit = 32
const defaultExpressionDepthLimit = 32

// Config configures the parser
type Config struct {
	// NonPayableKeywordEnabled determines if the `nonpayable` mutability keyword is enabled.
	// If disabled, `nonpayable` is parsed as a modifier name
	NonPayableKeywordEnabled bool
	// TypeDepthLimit is the maximum nesting depth of types.
	// If zero, a default limit is used
	TypeDepthLimit int
	// ExpressionDepthLimit is the maximum nesting depth of expressions.
	// If zero, a default limit is used
	ExpressionDepthLimit int
}

func (c Config) typeDepthLimit() int {
	if c.TypeDepthLimit <= 0 {
		return defaultTypeDepthLimit
	}
	return c.TypeDepthLimit
}

func (c Config) expressionDepthLimit() int {
	if c.ExpressionDepthLimit <= 0 {
		return defaultExpressionDepthLimit
	}
	return c.ExpressionDepthLimit
}

type parser struct {
	// tokens is a stream of tokens from the lexer
	tokens lexer.TokenStream
	// current is the current token being parsed
	current lexer.Token
	// errors are the parsing errors encountered
	errors []error
	// leadingComments are the comments skipped since they were last taken
	leadingComments []*ast.Comment
	// typeDepth is the depth of the type currently being parsed
	typeDepth int
	// expressionDepth is the depth of the expression currently being parsed
	expressionDepth int
	// config enables or disables syntax features
	config Config
}

// Parse creates a lexer to scan the given input string,
// and uses the given `parse` function to parse tokens into a result.
//
// It can be composed with different parse functions to parse the input string into different results.
// See e.g. ParseFunctionAttributes, ParseParameterList, ParseDeclarations.
//
// Parsing stops at the first error: the result is only valid if no errors are returned.
func Parse[T any](
	input []byte,
	parse func(*parser) (T, error),
	config Config,
) (
	result T,
	errs []error,
) {
	tokens := lexer.Lex(input)
	p := &parser{
		tokens: tokens,
		config: config,
	}

	// Get the initial token
	p.next()
	p.skipSpaceAndComments()

	result, err := parse(p)
	if err != nil {
		p.report(err)
		var empty T
		return empty, p.errors
	}

	p.skipSpaceAndComments()

	if !p.current.Is(lexer.TokenEOF) {
		p.report(NewSyntaxError(
			p.current.StartPos,
			"unexpected token: %s",
			p.current.Type,
		))
	}

	if len(p.errors) > 0 {
		var empty T
		return empty, p.errors
	}

	return result, nil
}

// parseAll parses the whole input,
// and returns all parsing errors as a single Error
func parseAll[T any](
	input []byte,
	parse func(*parser) (T, error),
	config Config,
) (
	T,
	error,
) {
	result, errs := Parse(input, parse, config)
	if len(errs) > 0 {
		var empty T
		return empty, Error{
			Code:   input,
			Errors: errs,
		}
	}
	return result, nil
}

func (p *parser) report(errs ...error) {
	for _, err := range errs {

		// Only `ParseError`s should be reported.
		// Other errors indicate a bug in the parser
		parseError, ok := err.(ParseError)
		if !ok {
			panic(errors.NewUnexpectedError("expected a ParseError, got %T", err))
		}

		p.errors = append(p.errors, parseError)
	}
}

// next advances to the next token.
// Error tokens produced by the lexer are reported and skipped.
func (p *parser) next() {
	for {
		token := p.tokens.Next()

		if token.Is(lexer.TokenError) {
			// Report error token as error, skip.
			err, ok := token.SpaceOrError.(error)
			// we just checked that this is an error token
			if !ok {
				panic(errors.NewUnreachableError())
			}
			parseError, ok := err.(ParseError)
			if !ok {
				parseError = NewSyntaxError(
					token.StartPos,
					"%s",
					err.Error(),
				)
			}
			p.report(parseError)
			continue
		}

		p.current = token
		return
	}
}

// nextSemanticToken advances past the current token to the next semantic token.
// It skips whitespace and comments.
func (p *parser) nextSemanticToken() {
	p.next()
	p.skipSpaceAndComments()
}

// skipSpaceAndComments skips whitespace and comments.
// Skipped comments are collected, so they can be attached to the next declaration.
func (p *parser) skipSpaceAndComments() {
	for {
		switch p.current.Type {
		case lexer.TokenSpace:
			// skip

		case lexer.TokenLineComment, lexer.TokenBlockComment:
			comment := ast.NewComment(p.currentTokenSource())
			p.leadingComments = append(p.leadingComments, comment)

		default:
			return
		}

		p.next()
	}
}

// takeLeadingComments returns the comments skipped since the last call,
// and resets them
func (p *parser) takeLeadingComments() []*ast.Comment {
	comments := p.leadingComments
	p.leadingComments = nil
	return comments
}

func (p *parser) currentTokenSource() []byte {
	return p.current.Source(p.tokens.Input())
}

// isToken reports whether the current token has the given type.
// For identifiers, the source must also equal the given string
func (p *parser) isToken(token lexer.Token, tokenType lexer.TokenType, expected string) bool {
	if !token.Is(tokenType) {
		return false
	}

	actual := token.Source(p.tokens.Input())
	return string(actual) == expected
}

// isKeyword reports whether the current token is the given keyword
func (p *parser) isKeyword(keyword string) bool {
	return p.isToken(p.current, lexer.TokenIdentifier, keyword)
}

// isHardKeyword reports whether the current token is a keyword
// which may not be used as an identifier
func (p *parser) isHardKeyword() bool {
	return p.current.Is(lexer.TokenIdentifier) &&
		isHardKeyword(string(p.currentTokenSource()))
}

// isNonReservedIdentifier reports whether the current token is an identifier
// which may be used as a name
func (p *parser) isNonReservedIdentifier() bool {
	return p.current.Is(lexer.TokenIdentifier) &&
		!isHardKeyword(string(p.currentTokenSource()))
}

func (p *parser) tokenToIdentifier(token lexer.Token) ast.Identifier {
	return ast.NewIdentifier(
		string(token.Source(p.tokens.Input())),
		token.StartPos,
	)
}

// nonReservedIdentifier returns the current token as an identifier,
// and advances to the next token.
// It fails if the current token is not an identifier, or a hard keyword
func (p *parser) nonReservedIdentifier(description string) (ast.Identifier, error) {
	if !p.current.Is(lexer.TokenIdentifier) {
		return ast.Identifier{}, p.expected(description).error(p)
	}

	if p.isHardKeyword() {
		return ast.Identifier{}, NewSyntaxError(
			p.current.StartPos,
			"expected %s, got keyword `%s`",
			description,
			p.currentTokenSource(),
		)
	}

	identifier := p.tokenToIdentifier(p.current)
	p.next()
	return identifier, nil
}

// mustOne requires the current token to be of the given type,
// and advances to the next token
func (p *parser) mustOne(tokenType lexer.TokenType) (lexer.Token, error) {
	token := p.current
	if !token.Is(tokenType) {
		return lexer.Token{}, p.expectedToken(tokenType).error(p)
	}
	p.next()
	return token, nil
}

// mustKeyword requires the current token to be the given keyword,
// and advances to the next token
func (p *parser) mustKeyword(keyword string) (lexer.Token, error) {
	token := p.current
	if !p.isKeyword(keyword) {
		return lexer.Token{}, p.expectedKeyword(keyword).error(p)
	}
	p.next()
	return token, nil
}

// enterExpression increases the expression depth,
// and fails if the expression depth limit is reached
func (p *parser) enterExpression() error {
	p.expressionDepth++
	if p.expressionDepth > p.config.expressionDepthLimit() {
		return ExpressionDepthLimitReachedError{
			Pos:   p.current.StartPos,
			Limit: p.config.expressionDepthLimit(),
		}
	}
	return nil
}

func (p *parser) leaveExpression() {
	p.expressionDepth--
}

// enterType increases the type depth,
// and fails if the type depth limit is reached
func (p *parser) enterType() error {
	p.typeDepth++
	if p.typeDepth > p.config.typeDepthLimit() {
		return TypeDepthLimitReachedError{
			Pos:   p.current.StartPos,
			Limit: p.config.typeDepthLimit(),
		}
	}
	return nil
}

func (p *parser) leaveType() {
	p.typeDepth--
}
