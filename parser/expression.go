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
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/parser/lexer"
)

// ParseExpression parses a single expression,
// e.g. a modifier argument or a state variable initializer
func ParseExpression(input []byte, config Config) (ast.Expression, error) {
	return parseAll(input, parseExpression, config)
}

// parseExpression parses a primary expression,
// optionally followed by invocations, e.g. `f(1)(2)`.
// Negated integer literals are folded into the literal.
func parseExpression(p *parser) (ast.Expression, error) {
	err := p.enterExpression()
	defer p.leaveExpression()
	if err != nil {
		return nil, err
	}

	expression, err := parsePrimaryExpression(p)
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpaceAndComments()
		if !p.current.Is(lexer.TokenParenOpen) {
			return expression, nil
		}

		arguments, err := parseArgumentList(p)
		if err != nil {
			return nil, err
		}

		expression = &ast.InvocationExpression{
			InvokedExpression: expression,
			Arguments:         arguments.Arguments,
			EndPos:            arguments.EndPos,
		}
	}
}

func parsePrimaryExpression(p *parser) (ast.Expression, error) {
	switch p.current.Type {
	case lexer.TokenMinus:
		startPos := p.current.StartPos
		p.nextSemanticToken()

		expression, err := parseExpression(p)
		if err != nil {
			return nil, err
		}

		if integer, ok := expression.(*ast.IntegerExpression); ok &&
			integer.Value.Sign() >= 0 {

			integer.Value.Neg(integer.Value)
			integer.StartPos = startPos
			return integer, nil
		}

		return &ast.UnaryMinusExpression{
			Expression: expression,
			StartPos:   startPos,
		}, nil

	case lexer.TokenDecimalIntegerLiteral:
		return parseIntegerLiteral(p, 10)

	case lexer.TokenHexadecimalIntegerLiteral:
		return parseIntegerLiteral(p, 16)

	case lexer.TokenString:
		return parseStringLiteral(p)

	case lexer.TokenIdentifier:
		switch string(p.currentTokenSource()) {
		case KeywordTrue, KeywordFalse:
			expression := &ast.BoolExpression{
				Value: p.isKeyword(KeywordTrue),
				Range: p.current.Range,
			}
			p.next()
			return expression, nil
		}

		path, err := parsePath(p, "expression")
		if err != nil {
			return nil, err
		}
		return &ast.IdentifierExpression{
			Path: path,
		}, nil
	}

	return nil, p.expected("expression").error(p)
}

// parseArgumentList parses a parenthesized, comma separated list of expressions.
// The current token must be the opening parenthesis.
func parseArgumentList(p *parser) (*ast.ArgumentList, error) {
	startToken, err := p.mustOne(lexer.TokenParenOpen)
	if err != nil {
		return nil, err
	}

	var arguments []ast.Expression

	p.skipSpaceAndComments()

	for !p.current.Is(lexer.TokenParenClose) {
		argument, err := parseExpression(p)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)

		p.skipSpaceAndComments()

		switch p.current.Type {
		case lexer.TokenComma:
			p.nextSemanticToken()
			if p.current.Is(lexer.TokenParenClose) {
				return nil, p.expected("expression").error(p)
			}

		case lexer.TokenParenClose:
			// handled by loop condition

		default:
			return nil, p.expectedToken(lexer.TokenComma, lexer.TokenParenClose).error(p)
		}
	}

	endToken := p.current
	p.next()

	return &ast.ArgumentList{
		Arguments: arguments,
		Range: ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	}, nil
}

func parseIntegerLiteral(p *parser, base int) (*ast.IntegerExpression, error) {
	token := p.current
	literal := string(p.currentTokenSource())
	p.next()

	digits := literal
	if base == 16 {
		digits = digits[2:]
	}

	if strings.HasPrefix(digits, "_") ||
		strings.HasSuffix(digits, "_") ||
		strings.Contains(digits, "__") {

		return nil, &InvalidIntegerLiteralError{
			Literal: literal,
			Range:   token.Range,
		}
	}

	value, ok := new(big.Int).SetString(strings.ReplaceAll(digits, "_", ""), base)
	if !ok {
		return nil, &InvalidIntegerLiteralError{
			Literal: literal,
			Range:   token.Range,
		}
	}

	return &ast.IntegerExpression{
		PositiveLiteral: literal,
		Value:           value,
		Base:            base,
		Range:           token.Range,
	}, nil
}

func parseStringLiteral(p *parser) (*ast.StringExpression, error) {
	token := p.current
	literal := p.currentTokenSource()
	p.next()

	value, err := unquoteStringLiteral(literal, token.StartPos)
	if err != nil {
		return nil, err
	}

	return &ast.StringExpression{
		Value: value,
		Range: token.Range,
	}, nil
}

// unquoteStringLiteral removes the quotes of the given string literal,
// and replaces escape sequences
func unquoteStringLiteral(literal []byte, startPos ast.Position) (string, error) {
	length := len(literal)
	if length < 2 {
		return "", NewSyntaxError(startPos, "invalid string literal: missing quotes")
	}

	content := literal[1 : length-1]

	var builder strings.Builder
	builder.Grow(len(content))

	for i := 0; i < len(content); {
		c := content[i]
		if c != '\\' {
			builder.WriteByte(c)
			i++
			continue
		}

		// content can't end with a single backslash,
		// the lexer would not have terminated the literal
		escapePos := startPos.Shifted(i + 1)
		i++
		c = content[i]
		i++

		switch c {
		case '\\', '\'', '"':
			builder.WriteByte(c)
		case 'n':
			builder.WriteByte('\n')
		case 'r':
			builder.WriteByte('\r')
		case 't':
			builder.WriteByte('\t')
		case 'x':
			if i+2 > len(content) {
				return "", NewSyntaxError(escapePos, "invalid escape sequence: incomplete hexadecimal escape")
			}
			value, err := strconv.ParseUint(string(content[i:i+2]), 16, 8)
			if err != nil {
				return "", NewSyntaxError(escapePos, "invalid escape sequence: invalid hexadecimal escape")
			}
			builder.WriteByte(byte(value))
			i += 2
		case 'u':
			if i+4 > len(content) {
				return "", NewSyntaxError(escapePos, "invalid escape sequence: incomplete unicode escape")
			}
			value, err := strconv.ParseUint(string(content[i:i+4]), 16, 16)
			if err != nil {
				return "", NewSyntaxError(escapePos, "invalid escape sequence: invalid unicode escape")
			}
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], rune(value))
			builder.Write(buf[:n])
			i += 4
		default:
			return "", NewSyntaxError(escapePos, "invalid escape sequence: `\\%c`", c)
		}
	}

	return builder.String(), nil
}
