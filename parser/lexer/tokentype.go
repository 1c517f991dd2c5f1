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

package lexer

import (
	"github.com/onflow/solsyn/errors"
)

type TokenType uint8

const EOF rune = -1

const (
	TokenError TokenType = iota
	TokenEOF
	TokenSpace
	TokenLineComment
	TokenBlockComment
	TokenIdentifier
	TokenDecimalIntegerLiteral
	TokenHexadecimalIntegerLiteral
	TokenString
	TokenParenOpen
	TokenParenClose
	TokenBraceOpen
	TokenBraceClose
	TokenBracketOpen
	TokenBracketClose
	TokenComma
	TokenSemicolon
	TokenDot
	TokenColon
	TokenEqual
	TokenEqualGreater
	TokenMinus
	// NOTE: not an actual token, must be last item
	TokenMax
)

func init() {
	// ensure all tokens have its string format
	for t := TokenType(0); t < TokenMax; t++ {
		_ = t.String()
	}
}

func (t TokenType) String() string {
	switch t {
	case TokenError:
		return "error"
	case TokenEOF:
		return "EOF"
	case TokenSpace:
		return "space"
	case TokenLineComment:
		return "line comment"
	case TokenBlockComment:
		return "block comment"
	case TokenIdentifier:
		return "identifier"
	case TokenDecimalIntegerLiteral:
		return "decimal integer"
	case TokenHexadecimalIntegerLiteral:
		return "hexadecimal integer"
	case TokenString:
		return "string"
	case TokenParenOpen:
		return `'('`
	case TokenParenClose:
		return `')'`
	case TokenBraceOpen:
		return `'{'`
	case TokenBraceClose:
		return `'}'`
	case TokenBracketOpen:
		return `'['`
	case TokenBracketClose:
		return `']'`
	case TokenComma:
		return `','`
	case TokenSemicolon:
		return `';'`
	case TokenDot:
		return `'.'`
	case TokenColon:
		return `':'`
	case TokenEqual:
		return `'='`
	case TokenEqualGreater:
		return `'=>'`
	case TokenMinus:
		return `'-'`
	default:
		panic(errors.NewUnreachableError())
	}
}
