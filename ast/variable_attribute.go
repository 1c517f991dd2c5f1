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
	"iter"

	"github.com/turbolent/prettier"

	"github.com/onflow/solsyn/errors"
)

// VariableAttribute is an attribute which decorates a state variable declaration,
// e.g. `public`, `constant`, `immutable` or `override`.
type VariableAttribute interface {
	HasPosition
	fmt.Stringer
	Doc() prettier.Doc
	Category() AttributeCategory
	isVariableAttribute()
}

// ConstantAttribute

type ConstantAttribute struct {
	Range
}

var _ VariableAttribute = &ConstantAttribute{}

func (*ConstantAttribute) isVariableAttribute() {}

func (*ConstantAttribute) Category() AttributeCategory {
	return AttributeCategoryConstant
}

const constantKeyword = "constant"

var constantAttributeDoc prettier.Doc = prettier.Text(constantKeyword)

func (*ConstantAttribute) String() string {
	return constantKeyword
}

func (*ConstantAttribute) Doc() prettier.Doc {
	return constantAttributeDoc
}

func (a *ConstantAttribute) MarshalJSON() ([]byte, error) {
	type Alias ConstantAttribute
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ConstantAttribute",
		Alias: (*Alias)(a),
	})
}

// FunctionAttributeFromVariableAttribute returns the attribute of the accessor function
// the compiler generates for a variable with the given attribute.
// A `constant` variable has an immutable accessor, at the position of the `constant` keyword.
func FunctionAttributeFromVariableAttribute(attribute VariableAttribute) FunctionAttribute {
	switch attribute := attribute.(type) {
	case *VisibilityAttribute:
		converted := *attribute
		return &converted

	case *Override:
		converted := *attribute
		converted.Paths = append([]Path(nil), attribute.Paths...)
		return &converted

	case *ImmutableAttribute:
		converted := *attribute
		return &converted

	case *ConstantAttribute:
		return &ImmutableAttribute{
			Range: attribute.Range,
		}
	}

	panic(errors.NewUnreachableError())
}

// VariableAttributes is the set of attributes of a state variable declaration.
// No two members have the same category.
type VariableAttributes struct {
	attributes []VariableAttribute
}

func NewVariableAttributes(attributes ...VariableAttribute) *VariableAttributes {
	result := &VariableAttributes{}
	for _, attribute := range attributes {
		result.Insert(attribute)
	}
	return result
}

func (a *VariableAttributes) Len() int {
	return len(a.attributes)
}

func (a *VariableAttributes) Get(category AttributeCategory) VariableAttribute {
	for _, attribute := range a.attributes {
		if attribute.Category() == category {
			return attribute
		}
	}
	return nil
}

// Insert adds the given attribute to the set.
// If the set already contains an attribute of the same category,
// the set is left unchanged, and the existing member is returned.
func (a *VariableAttributes) Insert(attribute VariableAttribute) (previous VariableAttribute, inserted bool) {
	previous = a.Get(attribute.Category())
	if previous != nil {
		return previous, false
	}
	a.attributes = append(a.attributes, attribute)
	return nil, true
}

func (a *VariableAttributes) All() iter.Seq[VariableAttribute] {
	return func(yield func(VariableAttribute) bool) {
		for _, attribute := range a.attributes {
			if !yield(attribute) {
				return
			}
		}
	}
}

func (a *VariableAttributes) Visibility() *VisibilityAttribute {
	attribute, _ := a.Get(AttributeCategoryVisibility).(*VisibilityAttribute)
	return attribute
}

func (a *VariableAttributes) HasPublic() bool {
	visibility := a.Visibility()
	return visibility != nil && visibility.Visibility == VisibilityPublic
}

func (a *VariableAttributes) HasConstant() bool {
	return a.Get(AttributeCategoryConstant) != nil
}

func (a *VariableAttributes) HasImmutable() bool {
	return a.Get(AttributeCategoryImmutable) != nil
}

func (a *VariableAttributes) Override() *Override {
	attribute, _ := a.Get(AttributeCategoryOverride).(*Override)
	return attribute
}

func (a *VariableAttributes) String() string {
	return Prettier(a)
}

func (a *VariableAttributes) Doc() prettier.Doc {
	attributeDocs := make([]prettier.Doc, len(a.attributes))
	for i, attribute := range a.attributes {
		attributeDocs[i] = attribute.Doc()
	}
	return prettier.Join(prettier.Space, attributeDocs...)
}

func (a *VariableAttributes) MarshalJSON() ([]byte, error) {
	attributes := a.attributes
	if attributes == nil {
		attributes = []VariableAttribute{}
	}
	return json.Marshal(attributes)
}
