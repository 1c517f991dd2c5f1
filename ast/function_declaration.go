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
	"encoding/json"

	"github.com/turbolent/prettier"

	"github.com/onflow/solsyn/common"
)

// FunctionDeclaration is a function declaration without an implementation,
// e.g. `function transfer(address to, uint256 amount) external returns (bool);`
// The range spans from the `function` keyword to the terminating semicolon.

type FunctionDeclaration struct {
	Identifier Identifier
	Parameters *ParameterList
	Attributes *FunctionAttributes
	Returns    *ReturnParameters `json:",omitempty"`
	Comments   Comments
	Range
}

var _ Declaration = &FunctionDeclaration{}

func (*FunctionDeclaration) isDeclaration() {}

func (d *FunctionDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *FunctionDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFunction
}

func (d *FunctionDeclaration) DeclarationDocString() string {
	return d.Comments.LeadingDocString()
}

// Signature returns the canonical signature of the function,
// e.g. `transfer(address,uint256)`, from which the function selector is derived.
func (d *FunctionDeclaration) Signature() string {
	return d.Parameters.EIP712Signature(d.Identifier.Identifier)
}

const functionKeyword = "function"

var functionKeywordSpaceDoc prettier.Doc = prettier.Text(functionKeyword + " ")
var returnsKeywordSpaceDoc prettier.Doc = prettier.Text("returns ")
var declarationTerminatorDoc prettier.Doc = prettier.Text(";")

func parameterListDoc(parameters *ParameterList) prettier.Doc {
	if parameters == nil || parameters.IsEmpty() {
		return prettier.Text("()")
	}
	return prettier.WrapParentheses(
		parameters.Doc(),
		prettier.SoftLine{},
	)
}

func (d *FunctionDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		functionKeywordSpaceDoc,
		d.Identifier.Doc(),
		parameterListDoc(d.Parameters),
	}

	if d.Attributes != nil && d.Attributes.Len() > 0 {
		doc = append(
			doc,
			prettier.Space,
			d.Attributes.Doc(),
		)
	}

	if d.Returns != nil {
		doc = append(
			doc,
			prettier.Space,
			d.Returns.Doc(),
		)
	}

	return append(doc, declarationTerminatorDoc)
}

func (d *FunctionDeclaration) String() string {
	return Prettier(d)
}

func (d *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FunctionDeclaration
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "FunctionDeclaration",
		Alias: (*Alias)(d),
	})
}

// ReturnParameters is the `returns (...)` clause of a function declaration.
// The range spans from the `returns` keyword to the closing parenthesis.

type ReturnParameters struct {
	Parameters *ParameterList
	Range
}

func (r *ReturnParameters) Doc() prettier.Doc {
	return prettier.Concat{
		returnsKeywordSpaceDoc,
		parameterListDoc(r.Parameters),
	}
}

func (r *ReturnParameters) String() string {
	return Prettier(r)
}
