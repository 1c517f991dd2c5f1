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

	"github.com/turbolent/prettier"

	"github.com/onflow/solsyn/errors"
)

// AttributeCategory is the kind of a function or variable attribute.
// At most one attribute of each category may be attached to a declaration,
// except for modifiers, which must only have distinct names.
type AttributeCategory uint8

const (
	AttributeCategoryUnknown AttributeCategory = iota
	AttributeCategoryVisibility
	AttributeCategoryMutability
	AttributeCategoryVirtual
	AttributeCategoryImmutable
	AttributeCategoryOverride
	AttributeCategoryModifier
	AttributeCategoryConstant
)

func (c AttributeCategory) Name() string {
	switch c {
	case AttributeCategoryVisibility:
		return "visibility"
	case AttributeCategoryMutability:
		return "mutability"
	case AttributeCategoryVirtual:
		return "virtual"
	case AttributeCategoryImmutable:
		return "immutable"
	case AttributeCategoryOverride:
		return "override"
	case AttributeCategoryModifier:
		return "modifier"
	case AttributeCategoryConstant:
		return "constant"
	}

	panic(errors.NewUnreachableError())
}

func (c AttributeCategory) String() string {
	return c.Name()
}

// FunctionAttribute is an attribute which decorates a function declaration,
// e.g. `external`, `view`, `virtual`, `override(A, B)` or `onlyOwner(1)`.
type FunctionAttribute interface {
	HasPosition
	fmt.Stringer
	Doc() prettier.Doc
	Category() AttributeCategory
	isFunctionAttribute()
}

// SameFunctionAttribute reports whether the two attributes are the same
// for the purpose of detecting duplicates: attributes of the same category are the same,
// except for modifiers, which are only the same if their names are equal.
//
// NOTE: for visibility and mutability only the category is compared,
// so `public` and `external` are the same attribute.
func SameFunctionAttribute(a, b FunctionAttribute) bool {
	category := a.Category()
	if category != b.Category() {
		return false
	}

	if category != AttributeCategoryModifier {
		return true
	}

	modifierA, okA := a.(*Modifier)
	modifierB, okB := b.(*Modifier)
	if !okA || !okB {
		panic(errors.NewUnreachableError())
	}
	return modifierA.Name.Equal(modifierB.Name)
}

// VisibilityAttribute

type VisibilityAttribute struct {
	Visibility Visibility
	Range
}

var _ FunctionAttribute = &VisibilityAttribute{}
var _ VariableAttribute = &VisibilityAttribute{}

func (*VisibilityAttribute) isFunctionAttribute() {}

func (*VisibilityAttribute) isVariableAttribute() {}

func (*VisibilityAttribute) Category() AttributeCategory {
	return AttributeCategoryVisibility
}

func (a *VisibilityAttribute) String() string {
	return a.Visibility.Keyword()
}

func (a *VisibilityAttribute) Doc() prettier.Doc {
	return prettier.Text(a.Visibility.Keyword())
}

func (a *VisibilityAttribute) MarshalJSON() ([]byte, error) {
	type Alias VisibilityAttribute
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "VisibilityAttribute",
		Alias: (*Alias)(a),
	})
}

// MutabilityAttribute

type MutabilityAttribute struct {
	Mutability Mutability
	Range
}

var _ FunctionAttribute = &MutabilityAttribute{}

func (*MutabilityAttribute) isFunctionAttribute() {}

func (*MutabilityAttribute) Category() AttributeCategory {
	return AttributeCategoryMutability
}

func (a *MutabilityAttribute) String() string {
	return a.Mutability.Keyword()
}

func (a *MutabilityAttribute) Doc() prettier.Doc {
	return prettier.Text(a.Mutability.Keyword())
}

func (a *MutabilityAttribute) MarshalJSON() ([]byte, error) {
	type Alias MutabilityAttribute
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "MutabilityAttribute",
		Alias: (*Alias)(a),
	})
}

// VirtualAttribute

type VirtualAttribute struct {
	Range
}

var _ FunctionAttribute = &VirtualAttribute{}

func (*VirtualAttribute) isFunctionAttribute() {}

func (*VirtualAttribute) Category() AttributeCategory {
	return AttributeCategoryVirtual
}

const virtualKeyword = "virtual"

var virtualAttributeDoc prettier.Doc = prettier.Text(virtualKeyword)

func (*VirtualAttribute) String() string {
	return virtualKeyword
}

func (*VirtualAttribute) Doc() prettier.Doc {
	return virtualAttributeDoc
}

func (a *VirtualAttribute) MarshalJSON() ([]byte, error) {
	type Alias VirtualAttribute
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "VirtualAttribute",
		Alias: (*Alias)(a),
	})
}

// ImmutableAttribute

type ImmutableAttribute struct {
	Range
}

var _ FunctionAttribute = &ImmutableAttribute{}
var _ VariableAttribute = &ImmutableAttribute{}

func (*ImmutableAttribute) isFunctionAttribute() {}

func (*ImmutableAttribute) isVariableAttribute() {}

func (*ImmutableAttribute) Category() AttributeCategory {
	return AttributeCategoryImmutable
}

const immutableKeyword = "immutable"

var immutableAttributeDoc prettier.Doc = prettier.Text(immutableKeyword)

func (*ImmutableAttribute) String() string {
	return immutableKeyword
}

func (*ImmutableAttribute) Doc() prettier.Doc {
	return immutableAttributeDoc
}

func (a *ImmutableAttribute) MarshalJSON() ([]byte, error) {
	type Alias ImmutableAttribute
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ImmutableAttribute",
		Alias: (*Alias)(a),
	})
}

// Override is the `override` attribute,
// optionally with the paths of the overridden base contracts, e.g. `override(A, B)`

type Override struct {
	Paths []Path `json:",omitempty"`
	Range
}

var _ FunctionAttribute = &Override{}
var _ VariableAttribute = &Override{}

func (*Override) isFunctionAttribute() {}

func (*Override) isVariableAttribute() {}

func (*Override) Category() AttributeCategory {
	return AttributeCategoryOverride
}

const overrideKeyword = "override"

var overrideKeywordDoc prettier.Doc = prettier.Text(overrideKeyword)

func (o *Override) String() string {
	return Prettier(o)
}

func (o *Override) Doc() prettier.Doc {
	if len(o.Paths) == 0 {
		return overrideKeywordDoc
	}

	pathDocs := make([]prettier.Doc, len(o.Paths))
	for i, path := range o.Paths {
		pathDocs[i] = path.Doc()
	}
	return prettier.Concat{
		overrideKeywordDoc,
		prettier.WrapParentheses(
			prettier.Join(commaSeparatorDoc, pathDocs...),
			prettier.SoftLine{},
		),
	}
}

// Overrides reports whether the given path is one of the explicitly overridden paths.
func (o *Override) Overrides(path Path) bool {
	for _, overridden := range o.Paths {
		if overridden.Equal(path) {
			return true
		}
	}
	return false
}

func (o *Override) MarshalJSON() ([]byte, error) {
	type Alias Override
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "Override",
		Alias: (*Alias)(o),
	})
}

// Modifier is the invocation of a custom function modifier, e.g. `onlyOwner`,
// `onlyRole(ADMIN)` or `Guards.nonReentrant()`.
// Arguments is nil if the modifier is applied without parentheses.

type Modifier struct {
	Name      Path
	Arguments *ArgumentList `json:",omitempty"`
	Range
}

var _ FunctionAttribute = &Modifier{}

func (*Modifier) isFunctionAttribute() {}

func (*Modifier) Category() AttributeCategory {
	return AttributeCategoryModifier
}

func (m *Modifier) String() string {
	return Prettier(m)
}

func (m *Modifier) Doc() prettier.Doc {
	if m.Arguments == nil {
		return m.Name.Doc()
	}
	return prettier.Concat{
		m.Name.Doc(),
		argumentsDoc(m.Arguments.Arguments),
	}
}

func (m *Modifier) MarshalJSON() ([]byte, error) {
	type Alias Modifier
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "Modifier",
		Alias: (*Alias)(m),
	})
}

// ArgumentList is a parenthesized list of arguments.
// The range includes the parentheses.

type ArgumentList struct {
	Arguments []Expression
	Range
}
