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

package ast

import (
	"fmt"

	"github.com/turbolent/prettier"

	"github.com/onflow/solsyn/common"
)

// Declaration is a top-level or contract-level declaration:
// a function, a struct, or a state variable.
type Declaration interface {
	HasPosition
	fmt.Stringer
	Doc() prettier.Doc
	isDeclaration()
	DeclarationIdentifier() *Identifier
	DeclarationKind() common.DeclarationKind
	DeclarationDocString() string
}

// ProgramDocument renders the given declarations, separated by an empty line.
func ProgramDocument(declarations []Declaration) prettier.Doc {
	doc := prettier.Concat{}
	for i, declaration := range declarations {
		if i > 0 {
			doc = append(
				doc,
				prettier.HardLine{},
				prettier.HardLine{},
			)
		}
		doc = append(doc, declaration.Doc())
	}
	return doc
}
