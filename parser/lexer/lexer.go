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
	"unicode/utf8"

	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/errors"
)

// TokenStream is a sequence of tokens.
// The cursor allows the parser to backtrack.
type TokenStream interface {
	// Next consumes and returns the next token.
	// At the end of the input, Next keeps returning an EOF token.
	Next() Token
	// Cursor returns the index of the next token to be returned by Next
	Cursor() int
	// Revert resets the stream to the given cursor
	Revert(cursor int)
	// Input returns the whole input as source
	Input() []byte
}

type lexer struct {
	// input is the entire input string
	input []byte
	// tokens contains all tokens of the stream
	tokens []Token
	// cursor is the offset in the token stream
	cursor int
	// startOffset is the start offset of the current word
	startOffset int
	// endOffset is the end offset of the current word
	endOffset int
	// prevEndOffset is the previous end offset, used for stepping back
	prevEndOffset int
	// current is the currently scanned rune
	current rune
	// startPos is the position of the first rune of the current word
	startPos ast.Position
	// endPos is the position of the last consumed rune
	endPos ast.Position
	// prevEndPos is the previous end position, used for stepping back
	prevEndPos ast.Position
	// nextPos is the position of the next rune to be consumed
	nextPos ast.Position
	// prevNextPos is the previous next position, used for stepping back
	prevNextPos ast.Position
	// canBackup indicates whether stepping back is allowed
	canBackup bool
}

var _ TokenStream = &lexer{}

func (l *lexer) Next() Token {
	if l.cursor >= len(l.tokens) {
		// At the end of the token stream,
		// keep returning the final EOF token
		return l.tokens[len(l.tokens)-1]
	}

	token := l.tokens[l.cursor]
	l.cursor++
	return token
}

func (l *lexer) Input() []byte {
	return l.input
}

func (l *lexer) Cursor() int {
	return l.cursor
}

func (l *lexer) Revert(cursor int) {
	l.cursor = cursor
}

// Lex scans the whole input into tokens.
// Lexing stops at the first error, which is reported as an error token,
// followed by the final EOF token.
func Lex(input []byte) TokenStream {
	startPos := ast.Position{
		Offset: 0,
		Line:   1,
		Column: 0,
	}
	l := &lexer{
		input:    input,
		startPos: startPos,
		nextPos:  startPos,
	}
	l.run(rootState)
	return l
}

// run executes the stateFn, which will scan the runes in the input
// and emit tokens.
//
// stateFn might return another stateFn to indicate further scanning work,
// or nil if there is no scanning work left to be done,
// i.e. run will keep running the returned stateFn until no more
// stateFn is returned, which for example happens when reaching the end of the file.
//
// When all stateFn have been executed, an EOF token is emitted.
func (l *lexer) run(state stateFn) {
	for state != nil {
		state = state(l)
	}

	l.startOffset = l.endOffset
	l.startPos = l.nextPos
	l.emitType(TokenEOF)
}

// next decodes the next rune (UTF8 character) from the input string.
//
// NOTE: next returns EOF at the end of the input,
// and may be stepped back from with backupOne
func (l *lexer) next() rune {
	l.canBackup = true
	l.prevEndOffset = l.endOffset
	l.prevEndPos = l.endPos
	l.prevNextPos = l.nextPos

	if l.endOffset >= len(l.input) {
		l.current = EOF
		return EOF
	}

	r, width := utf8.DecodeRune(l.input[l.endOffset:])

	l.endPos = l.nextPos
	l.endOffset += width

	if r == '\n' {
		l.nextPos = ast.Position{
			Offset: l.endOffset,
			Line:   l.endPos.Line + 1,
			Column: 0,
		}
	} else {
		l.nextPos = ast.Position{
			Offset: l.endOffset,
			Line:   l.endPos.Line,
			Column: l.endPos.Column + width,
		}
	}

	l.current = r

	return r
}

// backupOne steps back one rune.
// It may only be called once after a call to next.
func (l *lexer) backupOne() {
	if !l.canBackup {
		panic(errors.NewUnreachableError())
	}
	l.canBackup = false

	l.endOffset = l.prevEndOffset
	l.endPos = l.prevEndPos
	l.nextPos = l.prevNextPos
}

// acceptOne reads one rune ahead.
// It returns true if the next rune matches with the input rune,
// otherwise it steps back one rune and returns false.
func (l *lexer) acceptOne(r rune) bool {
	if l.next() == r {
		return true
	}
	l.backupOne()
	return false
}

func (l *lexer) word() []byte {
	return l.input[l.startOffset:l.endOffset]
}

func (l *lexer) emit(ty TokenType, spaceOrError any) {
	endPos := l.endPos
	if l.endOffset == l.startOffset {
		endPos = l.startPos
	}

	token := Token{
		Type:         ty,
		SpaceOrError: spaceOrError,
		Range:        ast.NewRange(l.startPos, endPos),
	}
	l.tokens = append(l.tokens, token)

	l.startOffset = l.endOffset
	l.startPos = l.nextPos
	l.canBackup = false
}

func (l *lexer) emitType(ty TokenType) {
	l.emit(ty, nil)
}

func (l *lexer) emitError(err error) {
	l.emit(TokenError, err)
}

func (l *lexer) scanSpace() (containsNewline bool) {
	// lookahead is already lexed.
	// parse more, if any
	for {
		r := l.next()
		switch r {
		case ' ', '\t', '\r':
			continue
		case '\n':
			containsNewline = true
		default:
			l.backupOne()
			return
		}
	}
}

func (l *lexer) scanIdentifier() {
	// lookahead is already lexed.
	// parse more, if any
	for {
		r := l.next()
		if !isIdentifierPart(r) {
			l.backupOne()
			return
		}
	}
}

func isIdentifierStart(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_' || r == '$'
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || isDecimalDigit(r)
}

func isDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexadecimalDigit(r rune) bool {
	return isDecimalDigit(r) ||
		r >= 'a' && r <= 'f' ||
		r >= 'A' && r <= 'F'
}

func (l *lexer) scanDecimalRemainder() {
	for {
		r := l.next()
		if !isDecimalDigit(r) && r != '_' {
			l.backupOne()
			return
		}
	}
}

func (l *lexer) scanHexadecimalRemainder() {
	for {
		r := l.next()
		if !isHexadecimalDigit(r) && r != '_' {
			l.backupOne()
			return
		}
	}
}

// scanString scans the remainder of a string literal,
// after the opening quote.
// It returns false if the string literal is not terminated.
func (l *lexer) scanString(quote rune) bool {
	for {
		r := l.next()
		switch r {
		case quote:
			return true
		case '\\':
			r = l.next()
			if r == EOF || r == '\n' {
				return false
			}
		case '\n', EOF:
			if r == '\n' {
				l.backupOne()
			}
			return false
		}
	}
}

func (l *lexer) scanLineComment() {
	// lookahead is already lexed.
	// parse more, if any
	for {
		r := l.next()
		switch r {
		case '\n', EOF:
			l.backupOne()
			return
		}
	}
}

// scanBlockComment scans the remainder of a block comment,
// after the opening `/*`.
// It returns false if the block comment is not terminated.
func (l *lexer) scanBlockComment() bool {
	for {
		r := l.next()
		switch r {
		case EOF:
			return false
		case '*':
			if l.acceptOne('/') {
				return true
			}
		}
	}
}
