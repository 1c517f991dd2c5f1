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
	"strings"

	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/common"
	"github.com/onflow/solsyn/errors"
	"github.com/onflow/solsyn/pretty"
)

// Error

type Error struct {
	Code   []byte
	Errors []error
}

var _ errors.ParentError = Error{}

func (e Error) Error() string {
	var sb strings.Builder
	sb.WriteString("Parsing failed:\n")
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, nil, map[common.Location][]byte{nil: e.Code})
	if printErr != nil {
		panic(printErr)
	}
	sb.WriteString(errors.ErrorPrompt)
	return sb.String()
}

func (e Error) ChildErrors() []error {
	return e.Errors
}

func (e Error) Unwrap() []error {
	return e.Errors
}

// Diagnostic is a message for a range of the source code
type Diagnostic struct {
	Range   ast.Range
	Message string
}

// Diagnostics returns the errors as diagnostics, in order.
// Each error is followed by its notes, e.g. the previous declaration of a duplicate attribute.
func (e Error) Diagnostics() []Diagnostic {
	var diagnostics []Diagnostic

	for _, err := range e.Errors {
		var errRange ast.Range
		if positioned, ok := err.(ast.HasPosition); ok {
			errRange = ast.NewRangeFromPositioned(positioned)
		}

		diagnostics = append(
			diagnostics,
			Diagnostic{
				Range:   errRange,
				Message: err.Error(),
			},
		)

		if hasNotes, ok := err.(errors.ErrorNotes); ok {
			for _, note := range hasNotes.ErrorNotes() {
				var noteRange ast.Range
				if positioned, ok := note.(ast.HasPosition); ok {
					noteRange = ast.NewRangeFromPositioned(positioned)
				}

				diagnostics = append(
					diagnostics,
					Diagnostic{
						Range:   noteRange,
						Message: note.Message(),
					},
				)
			}
		}
	}

	return diagnostics
}

// ParserError

type ParseError interface {
	errors.UserError
	ast.HasPosition
	isParseError()
}

// SyntaxError

type SyntaxError struct {
	Message string
	Pos     ast.Position
}

func NewSyntaxError(pos ast.Position, message string, params ...any) *SyntaxError {
	return &SyntaxError{
		Pos:     pos,
		Message: fmt.Sprintf(message, params...),
	}
}

var _ ParseError = &SyntaxError{}
var _ errors.UserError = &SyntaxError{}

func (*SyntaxError) isParseError() {}

func (*SyntaxError) IsUserError() {}

func (e *SyntaxError) StartPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) EndPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// UnexpectedTokenError is reported when none of the alternatives
// at the current position matched the current token

type UnexpectedTokenError struct {
	// Got describes the current token
	Got string
	// Expected describes every alternative which would have been accepted
	Expected []string
	ast.Range
}

var _ ParseError = &UnexpectedTokenError{}
var _ errors.UserError = &UnexpectedTokenError{}

func (*UnexpectedTokenError) isParseError() {}

func (*UnexpectedTokenError) IsUserError() {}

func (e *UnexpectedTokenError) Error() string {
	switch len(e.Expected) {
	case 0:
		return fmt.Sprintf("unexpected %s", e.Got)
	case 1:
		return fmt.Sprintf(
			"unexpected %s, expected %s",
			e.Got,
			e.Expected[0],
		)
	default:
		return fmt.Sprintf(
			"unexpected %s, expected one of: %s",
			e.Got,
			strings.Join(e.Expected, ", "),
		)
	}
}

// FunctionImplementationError is reported when a function declaration has a body

type FunctionImplementationError struct {
	Pos ast.Position
}

var _ ParseError = &FunctionImplementationError{}
var _ errors.UserError = &FunctionImplementationError{}
var _ errors.SecondaryError = &FunctionImplementationError{}
var _ errors.HasDocumentationLink = &FunctionImplementationError{}

func (*FunctionImplementationError) isParseError() {}

func (*FunctionImplementationError) IsUserError() {}

func (e *FunctionImplementationError) StartPosition() ast.Position {
	return e.Pos
}

func (e *FunctionImplementationError) EndPosition() ast.Position {
	return e.Pos
}

func (e *FunctionImplementationError) Error() string {
	return "function declarations in this context may not have an implementation"
}

func (e *FunctionImplementationError) SecondaryError() string {
	return "replace the function body with `;`"
}

func (e *FunctionImplementationError) DocumentationLink() string {
	return "https://docs.soliditylang.org/en/latest/contracts.html#interfaces"
}

// DuplicateAttributeError is reported when an attribute is declared
// which is the same as a previously declared attribute,
// e.g. a second visibility or a modifier with the same name

type DuplicateAttributeError struct {
	Category ast.AttributeCategory
	// Attribute is the duplicate attribute, as written
	Attribute     string
	PreviousRange ast.Range
	ast.Range
}

// categorizedAttribute is implemented by both function and variable attributes
type categorizedAttribute interface {
	ast.HasPosition
	fmt.Stringer
	Category() ast.AttributeCategory
}

func NewDuplicateAttributeError(attribute, previous categorizedAttribute) *DuplicateAttributeError {
	return &DuplicateAttributeError{
		Category:      attribute.Category(),
		Attribute:     attribute.String(),
		Range:         ast.NewRangeFromPositioned(attribute),
		PreviousRange: ast.NewRangeFromPositioned(previous),
	}
}

var _ ParseError = &DuplicateAttributeError{}
var _ errors.UserError = &DuplicateAttributeError{}
var _ errors.SecondaryError = &DuplicateAttributeError{}
var _ errors.ErrorNotes = &DuplicateAttributeError{}
var _ errors.HasSuggestedFixes[ast.TextEdit] = &DuplicateAttributeError{}

func (*DuplicateAttributeError) isParseError() {}

func (*DuplicateAttributeError) IsUserError() {}

func (e *DuplicateAttributeError) Error() string {
	return fmt.Sprintf(
		"duplicate %s attribute `%s`",
		e.Category.Name(),
		e.Attribute,
	)
}

func (e *DuplicateAttributeError) SecondaryError() string {
	if e.Category == ast.AttributeCategoryModifier {
		return "a modifier may only be invoked once"
	}
	return fmt.Sprintf(
		"only one %s attribute is allowed",
		e.Category.Name(),
	)
}

func (e *DuplicateAttributeError) ErrorNotes() []errors.ErrorNote {
	return []errors.ErrorNote{
		PreviousDeclarationNote{
			Range: e.PreviousRange,
		},
	}
}

func (e *DuplicateAttributeError) SuggestFixes(code string) []errors.SuggestedFix[ast.TextEdit] {
	return []errors.SuggestedFix[ast.TextEdit]{
		{
			Message: "Remove the duplicate attribute",
			TextEdits: []ast.TextEdit{
				{
					Replacement: "",
					Range:       e.Range.AttachLeft(code),
				},
			},
		},
	}
}

// PreviousDeclarationNote

type PreviousDeclarationNote struct {
	ast.Range
}

var _ errors.ErrorNote = PreviousDeclarationNote{}

func (n PreviousDeclarationNote) Message() string {
	return "previous declaration is here"
}

// EmptyFieldListError is reported when a struct has no fields

type EmptyFieldListError struct {
	Pos ast.Position
}

var _ ParseError = &EmptyFieldListError{}
var _ errors.UserError = &EmptyFieldListError{}
var _ errors.SecondaryError = &EmptyFieldListError{}
var _ errors.HasDocumentationLink = &EmptyFieldListError{}

func (*EmptyFieldListError) isParseError() {}

func (*EmptyFieldListError) IsUserError() {}

func (e *EmptyFieldListError) StartPosition() ast.Position {
	return e.Pos
}

func (e *EmptyFieldListError) EndPosition() ast.Position {
	return e.Pos
}

func (e *EmptyFieldListError) Error() string {
	return "empty struct body disallowed"
}

func (e *EmptyFieldListError) SecondaryError() string {
	return "declare at least one field"
}

func (e *EmptyFieldListError) DocumentationLink() string {
	return "https://docs.soliditylang.org/en/latest/types.html#structs"
}

// MissingTrailingSeparatorError is reported when the last declaration
// of a list which requires a trailing separator is not followed by one,
// e.g. the last field of a struct is not followed by a semicolon

type MissingTrailingSeparatorError struct {
	Separator string
	// Pos is the position after the last declaration
	Pos ast.Position
}

var _ ParseError = &MissingTrailingSeparatorError{}
var _ errors.UserError = &MissingTrailingSeparatorError{}
var _ errors.SecondaryError = &MissingTrailingSeparatorError{}
var _ errors.HasSuggestedFixes[ast.TextEdit] = &MissingTrailingSeparatorError{}

func (*MissingTrailingSeparatorError) isParseError() {}

func (*MissingTrailingSeparatorError) IsUserError() {}

func (e *MissingTrailingSeparatorError) StartPosition() ast.Position {
	return e.Pos
}

func (e *MissingTrailingSeparatorError) EndPosition() ast.Position {
	return e.Pos
}

func (e *MissingTrailingSeparatorError) Error() string {
	return "expected trailing separator"
}

func (e *MissingTrailingSeparatorError) SecondaryError() string {
	return fmt.Sprintf(
		"add `%s` after the last declaration",
		e.Separator,
	)
}

func (e *MissingTrailingSeparatorError) SuggestFixes(_ string) []errors.SuggestedFix[ast.TextEdit] {
	return []errors.SuggestedFix[ast.TextEdit]{
		{
			Message: fmt.Sprintf("Insert `%s`", e.Separator),
			TextEdits: []ast.TextEdit{
				{
					Insertion: e.Separator,
					Range: ast.Range{
						StartPos: e.Pos,
						EndPos:   e.Pos,
					},
				},
			},
		},
	}
}

// MissingSeparatorError is reported when two declarations of a list
// are not separated by the separator of the list

type MissingSeparatorError struct {
	Separator string
	// Pos is the position after the declaration missing the separator
	Pos ast.Position
}

var _ ParseError = &MissingSeparatorError{}
var _ errors.UserError = &MissingSeparatorError{}
var _ errors.SecondaryError = &MissingSeparatorError{}
var _ errors.HasSuggestedFixes[ast.TextEdit] = &MissingSeparatorError{}

func (*MissingSeparatorError) isParseError() {}

func (*MissingSeparatorError) IsUserError() {}

func (e *MissingSeparatorError) StartPosition() ast.Position {
	return e.Pos
}

func (e *MissingSeparatorError) EndPosition() ast.Position {
	return e.Pos
}

func (e *MissingSeparatorError) Error() string {
	return fmt.Sprintf(
		"missing `%s` between declarations",
		e.Separator,
	)
}

func (e *MissingSeparatorError) SecondaryError() string {
	return fmt.Sprintf(
		"separate the declarations with `%s`",
		e.Separator,
	)
}

func (e *MissingSeparatorError) SuggestFixes(_ string) []errors.SuggestedFix[ast.TextEdit] {
	return []errors.SuggestedFix[ast.TextEdit]{
		{
			Message: fmt.Sprintf("Insert `%s`", e.Separator),
			TextEdits: []ast.TextEdit{
				{
					Insertion: e.Separator,
					Range: ast.Range{
						StartPos: e.Pos,
						EndPos:   e.Pos,
					},
				},
			},
		},
	}
}

// UnknownVariableAttributeError is reported when an identifier
// is followed by the name of a state variable,
// i.e. the identifier is used as an attribute, but it is not one

type UnknownVariableAttributeError struct {
	Name string
	// Suggestion is the closest known attribute, if any
	Suggestion string
	ast.Range
}

var _ ParseError = &UnknownVariableAttributeError{}
var _ errors.UserError = &UnknownVariableAttributeError{}
var _ errors.SecondaryError = &UnknownVariableAttributeError{}
var _ errors.HasSuggestedFixes[ast.TextEdit] = &UnknownVariableAttributeError{}

func (*UnknownVariableAttributeError) isParseError() {}

func (*UnknownVariableAttributeError) IsUserError() {}

func (e *UnknownVariableAttributeError) Error() string {
	return fmt.Sprintf(
		"unknown state variable attribute `%s`",
		e.Name,
	)
}

func (e *UnknownVariableAttributeError) SecondaryError() string {
	if e.Suggestion == "" {
		return fmt.Sprintf(
			"expected one of: %s",
			strings.Join(variableAttributeKeywords, ", "),
		)
	}
	return fmt.Sprintf("did you mean `%s`?", e.Suggestion)
}

func (e *UnknownVariableAttributeError) SuggestFixes(_ string) []errors.SuggestedFix[ast.TextEdit] {
	if e.Suggestion == "" {
		return nil
	}
	return []errors.SuggestedFix[ast.TextEdit]{
		{
			Message: fmt.Sprintf("Replace with `%s`", e.Suggestion),
			TextEdits: []ast.TextEdit{
				{
					Replacement: e.Suggestion,
					Range:       e.Range,
				},
			},
		},
	}
}

// InvalidIntegerLiteralError

type InvalidIntegerLiteralError struct {
	Literal string
	ast.Range
}

var _ ParseError = &InvalidIntegerLiteralError{}
var _ errors.UserError = &InvalidIntegerLiteralError{}
var _ errors.SecondaryError = &InvalidIntegerLiteralError{}

func (*InvalidIntegerLiteralError) isParseError() {}

func (*InvalidIntegerLiteralError) IsUserError() {}

func (e *InvalidIntegerLiteralError) Error() string {
	return fmt.Sprintf("invalid integer literal `%s`", e.Literal)
}

func (e *InvalidIntegerLiteralError) SecondaryError() string {
	return "underscores may only be used between digits"
}

// ExpressionDepthLimitReachedError is reported when the expression depth limit was reached
type ExpressionDepthLimitReachedError struct {
	Pos   ast.Position
	Limit int
}

var _ ParseError = ExpressionDepthLimitReachedError{}
var _ errors.UserError = ExpressionDepthLimitReachedError{}
var _ errors.SecondaryError = ExpressionDepthLimitReachedError{}

func (ExpressionDepthLimitReachedError) isParseError() {}

func (ExpressionDepthLimitReachedError) IsUserError() {}

func (e ExpressionDepthLimitReachedError) Error() string {
	return fmt.Sprintf(
		"expression too deeply nested, exceeded depth limit of %d",
		e.Limit,
	)
}

func (e ExpressionDepthLimitReachedError) SecondaryError() string {
	return "Consider using a constant for the nested expression"
}

func (e ExpressionDepthLimitReachedError) StartPosition() ast.Position {
	return e.Pos
}

func (e ExpressionDepthLimitReachedError) EndPosition() ast.Position {
	return e.Pos
}

// TypeDepthLimitReachedError is reported when the type depth limit was reached
type TypeDepthLimitReachedError struct {
	Pos   ast.Position
	Limit int
}

var _ ParseError = TypeDepthLimitReachedError{}
var _ errors.UserError = TypeDepthLimitReachedError{}
var _ errors.SecondaryError = TypeDepthLimitReachedError{}

func (TypeDepthLimitReachedError) isParseError() {}

func (TypeDepthLimitReachedError) IsUserError() {}

func (e TypeDepthLimitReachedError) Error() string {
	return fmt.Sprintf(
		"type too deeply nested, exceeded depth limit of %d",
		e.Limit,
	)
}

func (e TypeDepthLimitReachedError) SecondaryError() string {
	return "Consider breaking complex nested types into struct types"
}

func (e TypeDepthLimitReachedError) StartPosition() ast.Position {
	return e.Pos
}

func (e TypeDepthLimitReachedError) EndPosition() ast.Position {
	return e.Pos
}
