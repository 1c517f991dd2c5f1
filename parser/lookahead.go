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
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/onflow/solsyn/parser/lexer"
)

// expectation accumulates what would have been accepted at the current position:
// token types, keywords, and other syntactic forms, like "type".
// It is used to report all alternatives when none of them matched.
type expectation struct {
	tokenTypes *bitset.BitSet
	keywords   []string
	forms      []string
}

func newExpectation() *expectation {
	return &expectation{
		tokenTypes: bitset.New(uint(lexer.TokenMax)),
	}
}

func (p *parser) expected(forms ...string) *expectation {
	return newExpectation().form(forms...)
}

func (p *parser) expectedToken(tokenTypes ...lexer.TokenType) *expectation {
	return newExpectation().token(tokenTypes...)
}

func (p *parser) expectedKeyword(keywords ...string) *expectation {
	return newExpectation().keyword(keywords...)
}

func (e *expectation) token(tokenTypes ...lexer.TokenType) *expectation {
	for _, tokenType := range tokenTypes {
		e.tokenTypes.Set(uint(tokenType))
	}
	return e
}

func (e *expectation) keyword(keywords ...string) *expectation {
	for _, keyword := range keywords {
		if !slices.Contains(e.keywords, keyword) {
			e.keywords = append(e.keywords, keyword)
		}
	}
	return e
}

func (e *expectation) form(forms ...string) *expectation {
	for _, form := range forms {
		if !slices.Contains(e.forms, form) {
			e.forms = append(e.forms, form)
		}
	}
	return e
}

// descriptions returns the descriptions of all expected alternatives:
// keywords first, in the order they were added,
// then other forms, then token types, in the order of their declaration
func (e *expectation) descriptions() []string {
	descriptions := make([]string, 0, len(e.keywords)+len(e.forms)+int(e.tokenTypes.Count()))

	for _, keyword := range e.keywords {
		descriptions = append(descriptions, fmt.Sprintf("`%s`", keyword))
	}

	descriptions = append(descriptions, e.forms...)

	for i, ok := e.tokenTypes.NextSet(0); ok; i, ok = e.tokenTypes.NextSet(i + 1) {
		descriptions = append(descriptions, lexer.TokenType(i).String())
	}

	return descriptions
}

// error returns an error for the current token, listing all expected alternatives
func (e *expectation) error(p *parser) *UnexpectedTokenError {
	token := p.current

	var got string
	switch token.Type {
	case lexer.TokenEOF:
		got = "end of input"
	case lexer.TokenIdentifier:
		if isHardKeyword(string(p.currentTokenSource())) {
			got = fmt.Sprintf("keyword `%s`", p.currentTokenSource())
		} else {
			got = fmt.Sprintf("identifier `%s`", p.currentTokenSource())
		}
	default:
		got = token.Type.String()
	}

	return &UnexpectedTokenError{
		Got:      got,
		Expected: e.descriptions(),
		Range:    token.Range,
	}
}
