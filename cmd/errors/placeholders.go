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

package main

import (
	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/parser"
)

var placeholderString = "placeholder"

const placeholderInt = 42

var placeholderStrings = []string{"'('", "`returns`"}

var placeholderSeparator = ";"

var placeholderPosition = ast.Position{Offset: 1, Line: 2, Column: 3}

var placeholderEndPosition = ast.Position{Offset: 4, Line: 5, Column: 6}

var placeholderRange = ast.Range{
	StartPos: placeholderPosition,
	EndPos:   placeholderEndPosition,
}

var placeholderPreviousRange = ast.Range{
	StartPos: ast.Position{Offset: 0, Line: 1, Column: 0},
	EndPos:   ast.Position{Offset: 0, Line: 1, Column: 0},
}

var placeholderCategory = ast.AttributeCategoryVisibility

// placeholderCode is the code passed to errors which compute suggested fixes
const placeholderCode = "placeholder placeholder"

// placeholderErrors returns an instance of every parse error,
// filled in with placeholder values.
func placeholderErrors() []parser.ParseError {
	return []parser.ParseError{
		&parser.SyntaxError{
			Message: placeholderString,
			Pos:     placeholderPosition,
		},
		&parser.UnexpectedTokenError{
			Got:      placeholderString,
			Expected: placeholderStrings,
			Range:    placeholderRange,
		},
		&parser.FunctionImplementationError{
			Pos: placeholderPosition,
		},
		&parser.DuplicateAttributeError{
			Category:      placeholderCategory,
			Attribute:     placeholderString,
			PreviousRange: placeholderPreviousRange,
			Range:         placeholderRange,
		},
		&parser.EmptyFieldListError{
			Pos: placeholderPosition,
		},
		&parser.MissingTrailingSeparatorError{
			Separator: placeholderSeparator,
			Pos:       placeholderPosition,
		},
		&parser.MissingSeparatorError{
			Separator: placeholderSeparator,
			Pos:       placeholderPosition,
		},
		&parser.UnknownVariableAttributeError{
			Name:       placeholderString,
			Suggestion: "public",
			Range:      placeholderRange,
		},
		&parser.InvalidIntegerLiteralError{
			Literal: placeholderString,
			Range:   placeholderRange,
		},
		parser.ExpressionDepthLimitReachedError{
			Pos:   placeholderPosition,
			Limit: placeholderInt,
		},
		parser.TypeDepthLimitReachedError{
			Pos:   placeholderPosition,
			Limit: placeholderInt,
		},
	}
}
