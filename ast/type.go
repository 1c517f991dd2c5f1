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
	"fmt"
	"strconv"
	"strings"

	"github.com/turbolent/prettier"
)

// Type

type Type interface {
	HasPosition
	fmt.Stringer
	Doc() prettier.Doc
	// CanonicalString returns the canonical ABI representation of the type,
	// e.g. `uint256[]` for `uint[]`, without whitespace or names
	CanonicalString() string
	isType()
}

// ElementaryType is a built-in value type, e.g. `uint256`, `bytes32` or `address payable`

type ElementaryType struct {
	Name    string
	Payable bool
	Range
}

var _ Type = &ElementaryType{}

func (*ElementaryType) isType() {}

func (t *ElementaryType) String() string {
	return Prettier(t)
}

func (t *ElementaryType) Doc() prettier.Doc {
	if t.Payable {
		return prettier.Text(t.Name + " payable")
	}
	return prettier.Text(t.Name)
}

func (t *ElementaryType) CanonicalString() string {
	return CanonicalElementaryTypeName(t.Name)
}

func (t *ElementaryType) MarshalJSON() ([]byte, error) {
	type Alias ElementaryType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ElementaryType",
		Alias: (*Alias)(t),
	})
}

// CanonicalElementaryTypeName returns the canonical name of an elementary type,
// i.e. aliases are replaced by the type they stand for.
func CanonicalElementaryTypeName(name string) string {
	switch name {
	case "uint":
		return "uint256"
	case "int":
		return "int256"
	case "byte":
		return "bytes1"
	case "fixed":
		return "fixed128x18"
	case "ufixed":
		return "ufixed128x18"
	default:
		return name
	}
}

// IsElementaryTypeName reports whether the given name
// is the name of an elementary type, including aliases like `uint`.
func IsElementaryTypeName(name string) bool {
	switch name {
	case "bool", "address", "string", "bytes", "byte",
		"int", "uint", "fixed", "ufixed":
		return true
	}

	if rest, ok := strings.CutPrefix(name, "uint"); ok {
		return isIntegerTypeSize(rest)
	}
	if rest, ok := strings.CutPrefix(name, "int"); ok {
		return isIntegerTypeSize(rest)
	}
	if rest, ok := strings.CutPrefix(name, "bytes"); ok {
		size, ok := parseTypeSize(rest)
		return ok && size >= 1 && size <= 32
	}
	if rest, ok := strings.CutPrefix(name, "ufixed"); ok {
		return isFixedTypeSize(rest)
	}
	if rest, ok := strings.CutPrefix(name, "fixed"); ok {
		return isFixedTypeSize(rest)
	}

	return false
}

func parseTypeSize(s string) (int, bool) {
	if s == "" || (s[0] == '0' && len(s) > 1) {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	size, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return size, true
}

func isIntegerTypeSize(s string) bool {
	bits, ok := parseTypeSize(s)
	return ok && bits >= 8 && bits <= 256 && bits%8 == 0
}

func isFixedTypeSize(s string) bool {
	bitsPart, decimalsPart, ok := strings.Cut(s, "x")
	if !ok || !isIntegerTypeSize(bitsPart) {
		return false
	}
	decimals, ok := parseTypeSize(decimalsPart)
	return ok && decimals <= 80
}

// NominalType is a user-defined type referred to by name,
// e.g. a struct `Order` or a nested type `Exchange.Order`

type NominalType struct {
	Path Path
}

var _ Type = &NominalType{}

func (*NominalType) isType() {}

func (t *NominalType) String() string {
	return t.Path.String()
}

func (t *NominalType) Doc() prettier.Doc {
	return t.Path.Doc()
}

func (t *NominalType) CanonicalString() string {
	return t.Path.String()
}

func (t *NominalType) StartPosition() Position {
	return t.Path.StartPosition()
}

func (t *NominalType) EndPosition() Position {
	return t.Path.EndPosition()
}

func (t *NominalType) MarshalJSON() ([]byte, error) {
	type Alias NominalType
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "NominalType",
		Range: NewRangeFromPositioned(t),
		Alias: (*Alias)(t),
	})
}

// ArrayType is a dynamically sized array type `T[]`,
// or a fixed size array type `T[N]` if a size is given

type ArrayType struct {
	Type   Type       `json:"ElementType"`
	Size   Expression `json:",omitempty"`
	EndPos Position   `json:"-"`
}

var _ Type = &ArrayType{}

func (*ArrayType) isType() {}

func (t *ArrayType) String() string {
	return Prettier(t)
}

func (t *ArrayType) Doc() prettier.Doc {
	doc := prettier.Concat{
		t.Type.Doc(),
		prettier.Text("["),
	}
	if t.Size != nil {
		doc = append(doc, t.Size.Doc())
	}
	return append(doc, prettier.Text("]"))
}

func (t *ArrayType) CanonicalString() string {
	var builder strings.Builder
	builder.WriteString(t.Type.CanonicalString())
	builder.WriteByte('[')
	if t.Size != nil {
		builder.WriteString(t.Size.String())
	}
	builder.WriteByte(']')
	return builder.String()
}

func (t *ArrayType) StartPosition() Position {
	return t.Type.StartPosition()
}

func (t *ArrayType) EndPosition() Position {
	return t.EndPos
}

func (t *ArrayType) MarshalJSON() ([]byte, error) {
	type Alias ArrayType
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ArrayType",
		Range: NewRangeFromPositioned(t),
		Alias: (*Alias)(t),
	})
}

// TupleType is a parenthesized list of types, e.g. `(uint256, bool)`

type TupleType struct {
	Types []Type
	Range
}

var _ Type = &TupleType{}

func (*TupleType) isType() {}

func (t *TupleType) String() string {
	return Prettier(t)
}

func (t *TupleType) Doc() prettier.Doc {
	if len(t.Types) == 0 {
		return prettier.Text("()")
	}

	typeDocs := make([]prettier.Doc, len(t.Types))
	for i, ty := range t.Types {
		typeDocs[i] = ty.Doc()
	}
	return prettier.WrapParentheses(
		prettier.Join(commaSeparatorDoc, typeDocs...),
		prettier.SoftLine{},
	)
}

func (t *TupleType) CanonicalString() string {
	var builder strings.Builder
	builder.WriteByte('(')
	for i, ty := range t.Types {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(ty.CanonicalString())
	}
	builder.WriteByte(')')
	return builder.String()
}

func (t *TupleType) MarshalJSON() ([]byte, error) {
	type Alias TupleType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "TupleType",
		Alias: (*Alias)(t),
	})
}

// MappingType is a key/value mapping, e.g. `mapping(address owner => uint256 balance)`

type MappingType struct {
	KeyType   Type
	KeyName   *Identifier `json:",omitempty"`
	ValueType Type
	ValueName *Identifier `json:",omitempty"`
	Range
}

var _ Type = &MappingType{}

func (*MappingType) isType() {}

func (t *MappingType) String() string {
	return Prettier(t)
}

var mappingTypeKeyValueSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(" =>"),
	prettier.Line{},
}

func (t *MappingType) Doc() prettier.Doc {
	keyDoc := prettier.Concat{t.KeyType.Doc()}
	if t.KeyName != nil {
		keyDoc = append(keyDoc, spaceDoc, t.KeyName.Doc())
	}
	valueDoc := prettier.Concat{t.ValueType.Doc()}
	if t.ValueName != nil {
		valueDoc = append(valueDoc, spaceDoc, t.ValueName.Doc())
	}

	return prettier.Concat{
		prettier.Text("mapping"),
		prettier.WrapParentheses(
			prettier.Concat{
				keyDoc,
				mappingTypeKeyValueSeparatorDoc,
				valueDoc,
			},
			prettier.SoftLine{},
		),
	}
}

func (t *MappingType) CanonicalString() string {
	return fmt.Sprintf(
		"mapping(%s=>%s)",
		t.KeyType.CanonicalString(),
		t.ValueType.CanonicalString(),
	)
}

func (t *MappingType) MarshalJSON() ([]byte, error) {
	type Alias MappingType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "MappingType",
		Alias: (*Alias)(t),
	})
}
