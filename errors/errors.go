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

// Package errors contains the error interfaces shared by the parser,
// the error pretty printer, and the commands.
package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"
)

const ErrorPrompt = "\nerror: parsing failed, see the diagnostics above for details\n"

// InternalError is a bug in the parser, never in the parsed code.
// Internal errors are panicked and never reported as diagnostics.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is caused by the parsed code, e.g. a duplicate attribute.
// All parse errors are user errors.
type UserError interface {
	error
	IsUserError()
}

// UnreachableError is panicked when a code path
// which the parser considers impossible is reached,
// e.g. an unknown attribute category.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (e UnreachableError) IsInternalError() {}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

// UnexpectedError is panicked when the parser is used incorrectly,
// e.g. a non-parse error is reported, or a text edit is malformed.
type UnexpectedError struct {
	Err error
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(message string, arg ...any) UnexpectedError {
	return UnexpectedError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (e UnexpectedError) Unwrap() error {
	return e.Err
}

func (e UnexpectedError) Error() string {
	return e.Err.Error()
}

func (e UnexpectedError) IsInternalError() {}

// SecondaryError is implemented by errors with a hint
// printed below the source excerpt
type SecondaryError interface {
	SecondaryError() string
}

// ErrorNotes is implemented by errors which refer to further source locations,
// e.g. the previous declaration of a duplicate attribute
type ErrorNotes interface {
	ErrorNotes() []ErrorNote
}

type ErrorNote interface {
	Message() string
}

// ParentError groups the errors of one parse
type ParentError interface {
	error
	ChildErrors() []error
}

type HasDocumentationLink interface {
	DocumentationLink() string
}

// SuggestedFix is a set of edits which resolves an error when applied together
type SuggestedFix[T any] struct {
	Message   string
	TextEdits []T
}

// HasSuggestedFixes is implemented by errors which can compute fixes
// from the code they were reported for.
type HasSuggestedFixes[T any] interface {
	SuggestFixes(code string) []SuggestedFix[T]
}

// IsUserError reports whether the error is caused by the parsed code:
// it is a user error, wraps one,
// or is a parent error whose children are all user errors.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case ParentError:
		children := err.ChildErrors()
		if len(children) == 0 {
			return false
		}
		for _, child := range children {
			if !IsUserError(child) {
				return false
			}
		}
		return true
	case xerrors.Wrapper:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}
