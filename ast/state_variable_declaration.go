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

// StateVariableDeclaration, e.g. `uint256 public constant MAX = 100;`.
// The range spans from the type to the terminating semicolon.

type StateVariableDeclaration struct {
	Type       Type `json:"VariableType"`
	Attributes *VariableAttributes
	Identifier Identifier
	Value      Expression `json:",omitempty"`
	Comments   Comments
	Range
}

var _ Declaration = &StateVariableDeclaration{}

func (*StateVariableDeclaration) isDeclaration() {}

func (d *StateVariableDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *StateVariableDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindStateVariable
}

func (d *StateVariableDeclaration) DeclarationDocString() string {
	return d.Comments.LeadingDocString()
}

// HasAccessor reports whether an accessor function is generated for the variable,
// i.e. if the variable is public.
func (d *StateVariableDeclaration) HasAccessor() bool {
	return d.Attributes.HasPublic()
}

// AccessorAttributes returns the attributes of the variable's accessor function:
// the variable's attributes converted to function attributes, and `view`.
func (d *StateVariableDeclaration) AccessorAttributes() *FunctionAttributes {
	attributes := NewFunctionAttributes()
	for attribute := range d.Attributes.All() {
		attributes.Insert(FunctionAttributeFromVariableAttribute(attribute))
	}
	attributes.Insert(&MutabilityAttribute{
		Mutability: MutabilityView,
		Range:      NewRangeFromPositioned(d.Identifier),
	})
	return attributes
}

// AccessorParameters returns the parameters of the variable's accessor function:
// one parameter per mapping key, and an `uint256` index per array dimension.
func (d *StateVariableDeclaration) AccessorParameters() *ParameterList {
	parameters := &ParameterList{}

	ty := d.Type
	for {
		switch t := ty.(type) {
		case *MappingType:
			parameters.Declarations = append(
				parameters.Declarations,
				&VariableDeclaration{
					Type: t.KeyType,
					Name: t.KeyName,
				},
			)
			ty = t.ValueType
			continue

		case *ArrayType:
			parameters.Declarations = append(
				parameters.Declarations,
				&VariableDeclaration{
					Type: &ElementaryType{
						Name:  "uint256",
						Range: NewRangeFromPositioned(t),
					},
				},
			)
			ty = t.Type
			continue
		}

		return parameters
	}
}

// AccessorSignature returns the canonical signature of the variable's accessor function,
// e.g. `balances(address)` for `mapping(address => uint256) public balances`.
func (d *StateVariableDeclaration) AccessorSignature() string {
	return d.AccessorParameters().EIP712Signature(d.Identifier.Identifier)
}

var stateVariableValueSeparatorDoc prettier.Doc = prettier.Text(" = ")

func (d *StateVariableDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		d.Type.Doc(),
	}

	if d.Attributes != nil && d.Attributes.Len() > 0 {
		doc = append(
			doc,
			prettier.Space,
			d.Attributes.Doc(),
		)
	}

	doc = append(
		doc,
		prettier.Space,
		d.Identifier.Doc(),
	)

	if d.Value != nil {
		doc = append(
			doc,
			stateVariableValueSeparatorDoc,
			d.Value.Doc(),
		)
	}

	return append(doc, declarationTerminatorDoc)
}

func (d *StateVariableDeclaration) String() string {
	return Prettier(d)
}

func (d *StateVariableDeclaration) MarshalJSON() ([]byte, error) {
	type Alias StateVariableDeclaration
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "StateVariableDeclaration",
		Alias: (*Alias)(d),
	})
}
