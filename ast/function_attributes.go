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
	"iter"

	"github.com/turbolent/prettier"
)

// FunctionAttributes is the set of attributes of a function declaration.
// No two members are the same according to SameFunctionAttribute.
// The insertion order is preserved for iteration and display.
type FunctionAttributes struct {
	attributes []FunctionAttribute
}

func NewFunctionAttributes(attributes ...FunctionAttribute) *FunctionAttributes {
	result := &FunctionAttributes{}
	for _, attribute := range attributes {
		result.Insert(attribute)
	}
	return result
}

func (a *FunctionAttributes) Len() int {
	return len(a.attributes)
}

// Get returns the member which is the same as the given attribute, if any.
func (a *FunctionAttributes) Get(attribute FunctionAttribute) FunctionAttribute {
	for _, member := range a.attributes {
		if SameFunctionAttribute(member, attribute) {
			return member
		}
	}
	return nil
}

func (a *FunctionAttributes) Contains(attribute FunctionAttribute) bool {
	return a.Get(attribute) != nil
}

// Insert adds the given attribute to the set.
// If the set already contains the same attribute,
// the set is left unchanged, and the existing member is returned.
func (a *FunctionAttributes) Insert(attribute FunctionAttribute) (previous FunctionAttribute, inserted bool) {
	previous = a.Get(attribute)
	if previous != nil {
		return previous, false
	}
	a.attributes = append(a.attributes, attribute)
	return nil, true
}

// All returns an iterator over the attributes, in insertion order.
func (a *FunctionAttributes) All() iter.Seq[FunctionAttribute] {
	return func(yield func(FunctionAttribute) bool) {
		for _, attribute := range a.attributes {
			if !yield(attribute) {
				return
			}
		}
	}
}

func (a *FunctionAttributes) first(category AttributeCategory) FunctionAttribute {
	for _, attribute := range a.attributes {
		if attribute.Category() == category {
			return attribute
		}
	}
	return nil
}

func (a *FunctionAttributes) Visibility() *VisibilityAttribute {
	attribute, _ := a.first(AttributeCategoryVisibility).(*VisibilityAttribute)
	return attribute
}

func (a *FunctionAttributes) Mutability() *MutabilityAttribute {
	attribute, _ := a.first(AttributeCategoryMutability).(*MutabilityAttribute)
	return attribute
}

func (a *FunctionAttributes) Override() *Override {
	attribute, _ := a.first(AttributeCategoryOverride).(*Override)
	return attribute
}

// Modifier returns the first modifier, if any.
func (a *FunctionAttributes) Modifier() *Modifier {
	attribute, _ := a.first(AttributeCategoryModifier).(*Modifier)
	return attribute
}

// Modifiers returns an iterator over all modifiers, in insertion order.
func (a *FunctionAttributes) Modifiers() iter.Seq[*Modifier] {
	return func(yield func(*Modifier) bool) {
		for _, attribute := range a.attributes {
			modifier, ok := attribute.(*Modifier)
			if !ok {
				continue
			}
			if !yield(modifier) {
				return
			}
		}
	}
}

func (a *FunctionAttributes) hasVisibility(visibility Visibility) bool {
	attribute := a.Visibility()
	return attribute != nil && attribute.Visibility == visibility
}

func (a *FunctionAttributes) HasExternal() bool {
	return a.hasVisibility(VisibilityExternal)
}

func (a *FunctionAttributes) HasInternal() bool {
	return a.hasVisibility(VisibilityInternal)
}

func (a *FunctionAttributes) HasPrivate() bool {
	return a.hasVisibility(VisibilityPrivate)
}

func (a *FunctionAttributes) HasPublic() bool {
	return a.hasVisibility(VisibilityPublic)
}

func (a *FunctionAttributes) HasVirtual() bool {
	return a.first(AttributeCategoryVirtual) != nil
}

func (a *FunctionAttributes) HasImmutable() bool {
	return a.first(AttributeCategoryImmutable) != nil
}

// HasOverride reports whether the set contains an override attribute.
// If a path is given, the override must explicitly name it.
func (a *FunctionAttributes) HasOverride(path *Path) bool {
	override := a.Override()
	if override == nil {
		return false
	}
	if path == nil {
		return true
	}
	return override.Overrides(*path)
}

// HasModifier reports whether the set contains a modifier.
// If a path is given, the modifier must have that name.
func (a *FunctionAttributes) HasModifier(path *Path) bool {
	for modifier := range a.Modifiers() {
		if path == nil || modifier.Name.Equal(*path) {
			return true
		}
	}
	return false
}

func (a *FunctionAttributes) String() string {
	return Prettier(a)
}

func (a *FunctionAttributes) Doc() prettier.Doc {
	attributeDocs := make([]prettier.Doc, len(a.attributes))
	for i, attribute := range a.attributes {
		attributeDocs[i] = attribute.Doc()
	}
	return prettier.Join(prettier.Space, attributeDocs...)
}

func (a *FunctionAttributes) MarshalJSON() ([]byte, error) {
	attributes := a.attributes
	if attributes == nil {
		attributes = []FunctionAttribute{}
	}
	return json.Marshal(attributes)
}
