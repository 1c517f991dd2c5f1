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

// Package ast contains the AST nodes for Solidity declarations:
// types, variable declarations, declaration lists,
// function and variable attributes, and the declarations using them.
// All AST nodes have position information and can be rendered
// back to source code using their prettier document.
// Nodes also implement the json.Marshaler interface
// so can be serialized to a stable JSON format.
package ast

import "github.com/onflow/solsyn/errors"

// TextEdit is a change to the source code, used by suggested fixes.
// An insertion is applied at the zero-length range's start offset,
// a replacement replaces the (inclusive) range.
type TextEdit struct {
	Replacement string
	Insertion   string
	Range
}

func (edit TextEdit) ApplyTo(code string) string {
	start := edit.Range.StartPos.Offset
	end := edit.Range.EndPos.Offset

	if edit.Insertion != "" {
		if edit.Replacement != "" {
			panic(errors.NewUnexpectedError("TextEdit with Insertion should not have a Replacement"))
		}
		if start != end {
			panic(errors.NewUnexpectedError("TextEdit with Insertion should have a zero-length range"))
		}

		return code[:start] + edit.Insertion + code[end:]
	}

	return code[:start] + edit.Replacement + code[end+1:]
}
