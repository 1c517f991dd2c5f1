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
	"strings"

	"github.com/turbolent/prettier"

	"github.com/onflow/solsyn/common"
)

// StructDeclaration, e.g. `struct Order { address maker; uint256 amount; }`.
// The range spans from the `struct` keyword to the closing brace.

type StructDeclaration struct {
	Identifier Identifier
	Fields     *FieldList
	Comments   Comments
	Range
}

var _ Declaration = &StructDeclaration{}

func (*StructDeclaration) isDeclaration() {}

func (d *StructDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *StructDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindStructure
}

func (d *StructDeclaration) DeclarationDocString() string {
	return d.Comments.LeadingDocString()
}

// EIP712Signature returns the canonical signature of the struct's field types,
// e.g. `Order(address,uint256)`.
func (d *StructDeclaration) EIP712Signature() string {
	return d.Fields.EIP712Signature(d.Identifier.Identifier)
}

// EncodeType returns the EIP-712 encoding of the struct type,
// e.g. `Order(address maker,uint256 amount)`.
// Struct types referenced by the fields are not appended.
func (d *StructDeclaration) EncodeType() string {
	var builder strings.Builder
	builder.WriteString(d.Identifier.Identifier)
	builder.WriteByte('(')
	for i, field := range d.Fields.Declarations {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(field.FmtEIP712())
		if field.Name != nil {
			builder.WriteByte(' ')
			builder.WriteString(field.Name.Identifier)
		}
	}
	builder.WriteByte(')')
	return builder.String()
}

const structKeyword = "struct"

var structKeywordSpaceDoc prettier.Doc = prettier.Text(structKeyword + " ")
var structBodyStartDoc prettier.Doc = prettier.Text(" {")
var structBodyEndDoc prettier.Doc = prettier.Text("}")

func (d *StructDeclaration) Doc() prettier.Doc {
	fieldsDoc := prettier.Concat{}
	for _, field := range d.Fields.Declarations {
		fieldsDoc = append(
			fieldsDoc,
			prettier.HardLine{},
			field.Doc(),
			declarationTerminatorDoc,
		)
	}

	return prettier.Concat{
		structKeywordSpaceDoc,
		d.Identifier.Doc(),
		structBodyStartDoc,
		prettier.Indent{
			Doc: fieldsDoc,
		},
		prettier.HardLine{},
		structBodyEndDoc,
	}
}

func (d *StructDeclaration) String() string {
	return Prettier(d)
}

func (d *StructDeclaration) MarshalJSON() ([]byte, error) {
	type Alias StructDeclaration
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "StructDeclaration",
		Alias: (*Alias)(d),
	})
}
