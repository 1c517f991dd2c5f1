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
	"fmt"
)

// stateFn uses the input lexer to read runes and emit tokens.
//
// It either returns nil when reaching end of file or an error,
// or returns another stateFn for more scanning work.
type stateFn func(*lexer) stateFn

// rootState returns a stateFn that scans the file and emits tokens until
// reaching the end of the file.
func rootState(l *lexer) stateFn {

	for {
		var ty TokenType

		r := l.next()
		switch r {
		case EOF:
			return nil
		case '(':
			ty = TokenParenOpen
		case ')':
			ty = TokenParenClose
		case '{':
			ty = TokenBraceOpen
		case '}':
			ty = TokenBraceClose
		case '[':
			ty = TokenBracketOpen
		case ']':
			ty = TokenBracketClose
		case ',':
			ty = TokenComma
		case ';':
			ty = TokenSemicolon
		case ':':
			ty = TokenColon
		case '.':
			ty = TokenDot
		case '-':
			ty = TokenMinus
		case '=':
			if l.acceptOne('>') {
				ty = TokenEqualGreater
			} else {
				ty = TokenEqual
			}
		case ' ', '\t', '\r':
			return spaceState(false)
		case '\n':
			return spaceState(true)
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return numberState
		case '"', '\'':
			return stringState(r)
		case '/':
			r = l.next()
			switch r {
			case '/':
				return lineCommentState
			case '*':
				return blockCommentState
			default:
				l.backupOne()
				return l.error(fmt.Errorf("unrecognized character: %#U", '/'))
			}
		default:
			if isIdentifierStart(r) {
				return identifierState
			}
			return l.error(fmt.Errorf("unrecognized character: %#U", r))
		}

		l.emitType(ty)
	}
}

func (l *lexer) error(err error) stateFn {
	l.emitError(err)
	return nil
}

// numberState returns a stateFn that scans the following runes as a number
// and emits a corresponding token
func numberState(l *lexer) stateFn {
	// lookahead is already lexed.
	// parse more, if any
	if l.current == '0' {
		if l.acceptOne('x') {
			l.scanHexadecimalRemainder()
			if l.endOffset-l.startOffset <= 2 {
				return l.error(fmt.Errorf("missing digits"))
			}
			return l.emitTokenAndReturnRootState(TokenHexadecimalIntegerLiteral)
		}
	}

	l.scanDecimalRemainder()
	return l.emitTokenAndReturnRootState(TokenDecimalIntegerLiteral)
}

func spaceState(startIsNewline bool) stateFn {
	return func(l *lexer) stateFn {
		containsNewline := l.scanSpace()
		containsNewline = containsNewline || startIsNewline

		l.emit(
			TokenSpace,
			Space{
				ContainsNewline: containsNewline,
			},
		)

		return rootState
	}
}

func identifierState(l *lexer) stateFn {
	l.scanIdentifier()
	return l.emitTokenAndReturnRootState(TokenIdentifier)
}

func stringState(quote rune) stateFn {
	return func(l *lexer) stateFn {
		if !l.scanString(quote) {
			return l.error(fmt.Errorf("unterminated string literal"))
		}
		return l.emitTokenAndReturnRootState(TokenString)
	}
}

func lineCommentState(l *lexer) stateFn {
	l.scanLineComment()
	return l.emitTokenAndReturnRootState(TokenLineComment)
}

func blockCommentState(l *lexer) stateFn {
	if !l.scanBlockComment() {
		return l.error(fmt.Errorf("missing comment end `*/`"))
	}
	return l.emitTokenAndReturnRootState(TokenBlockComment)
}

func (l *lexer) emitTokenAndReturnRootState(ty TokenType) stateFn {
	l.emitType(ty)
	return rootState
}
