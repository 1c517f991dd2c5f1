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

	"github.com/onflow/solsyn/errors"
)

type StorageLocation uint8

const (
	StorageLocationNotSpecified StorageLocation = iota
	StorageLocationMemory
	StorageLocationStorage
	StorageLocationCalldata
)

func (l StorageLocation) Keyword() string {
	switch l {
	case StorageLocationNotSpecified:
		return ""
	case StorageLocationMemory:
		return "memory"
	case StorageLocationStorage:
		return "storage"
	case StorageLocationCalldata:
		return "calldata"
	}

	panic(errors.NewUnreachableError())
}

func (l StorageLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Keyword())
}

// VariableDeclaration is a typed, optionally named declaration,
// e.g. the parameter `bytes calldata data` or the struct field `uint256 amount`

type VariableDeclaration struct {
	Type         Type            `json:"VariableType"`
	Storage      StorageLocation `json:",omitempty"`
	StorageRange Range           `json:"-"`
	Name         *Identifier     `json:",omitempty"`
}

func (d *VariableDeclaration) StartPosition() Position {
	return d.Type.StartPosition()
}

func (d *VariableDeclaration) EndPosition() Position {
	if d.Name != nil {
		return d.Name.EndPosition()
	}
	if d.Storage != StorageLocationNotSpecified {
		return d.StorageRange.EndPos
	}
	return d.Type.EndPosition()
}

func (d *VariableDeclaration) String() string {
	return Prettier(d)
}

func (d *VariableDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		d.Type.Doc(),
	}
	if d.Storage != StorageLocationNotSpecified {
		doc = append(
			doc,
			prettier.Space,
			prettier.Text(d.Storage.Keyword()),
		)
	}
	if d.Name != nil {
		doc = append(
			doc,
			prettier.Space,
			d.Name.Doc(),
		)
	}
	return doc
}

// FmtEIP712 returns the canonical text of the declaration's type,
// as used in signatures: without storage location and name.
func (d *VariableDeclaration) FmtEIP712() string {
	return d.Type.CanonicalString()
}

func (d *VariableDeclaration) MarshalJSON() ([]byte, error) {
	type Alias VariableDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "VariableDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
