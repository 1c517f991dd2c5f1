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
	"strings"

	"github.com/turbolent/prettier"
)

// Separator is the punctuation separating the entries of a DeclarationList.
type Separator interface {
	Comma | Semicolon
	Token() string
}

type Comma struct{}

func (Comma) Token() string {
	return ","
}

type Semicolon struct{}

func (Semicolon) Token() string {
	return ";"
}

// DeclarationList is a sequence of variable declarations,
// separated by the punctuation S.
type DeclarationList[S Separator] struct {
	Declarations []*VariableDeclaration
	// TrailingSeparator is true if the last declaration is followed by a separator
	TrailingSeparator bool `json:",omitempty"`
}

// ParameterList is a comma-separated list of function parameters,
// e.g. `address to, uint256 amount`
type ParameterList = DeclarationList[Comma]

// FieldList is a semicolon-terminated list of struct fields,
// e.g. `address to; uint256 amount;`
type FieldList = DeclarationList[Semicolon]

func (l *DeclarationList[S]) separator() string {
	var separator S
	return separator.Token()
}

func (l *DeclarationList[S]) Len() int {
	return len(l.Declarations)
}

func (l *DeclarationList[S]) IsEmpty() bool {
	return len(l.Declarations) == 0
}

// EIP712Signature returns the canonical signature of the given name and the declared types,
// e.g. `transfer(address,uint256)`, as used for function selectors and EIP-712 type hashes.
// The result contains no whitespace and no declaration names.
func (l *DeclarationList[S]) EIP712Signature(name string) string {
	var builder strings.Builder
	builder.WriteString(name)
	builder.WriteByte('(')
	for i, declaration := range l.Declarations {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(declaration.FmtEIP712())
	}
	builder.WriteByte(')')
	return builder.String()
}

// Names returns an iterator over the declared names.
// The name of a declaration without a name is nil.
func (l *DeclarationList[S]) Names() iter.Seq[*Identifier] {
	return func(yield func(*Identifier) bool) {
		for _, declaration := range l.Declarations {
			if !yield(declaration.Name) {
				return
			}
		}
	}
}

// Types returns an iterator over the declared types.
func (l *DeclarationList[S]) Types() iter.Seq[Type] {
	return func(yield func(Type) bool) {
		for _, declaration := range l.Declarations {
			if !yield(declaration.Type) {
				return
			}
		}
	}
}

// TypeStrings returns an iterator over the declared types, as written.
func (l *DeclarationList[S]) TypeStrings() iter.Seq[string] {
	return func(yield func(string) bool) {
		for ty := range l.Types() {
			if !yield(ty.String()) {
				return
			}
		}
	}
}

// TypesAndNames returns an iterator over the declared types and names.
func (l *DeclarationList[S]) TypesAndNames() iter.Seq2[Type, *Identifier] {
	return func(yield func(Type, *Identifier) bool) {
		for _, declaration := range l.Declarations {
			if !yield(declaration.Type, declaration.Name) {
				return
			}
		}
	}
}

// MutableTypes returns an iterator over pointers to the declared types,
// which allows replacing a declaration's type in place.
func (l *DeclarationList[S]) MutableTypes() iter.Seq[*Type] {
	return func(yield func(*Type) bool) {
		for _, declaration := range l.Declarations {
			if !yield(&declaration.Type) {
				return
			}
		}
	}
}

func (l *DeclarationList[S]) String() string {
	return Prettier(l)
}

func (l *DeclarationList[S]) Doc() prettier.Doc {
	separator := prettier.Text(l.separator())

	declarationDocs := make([]prettier.Doc, len(l.Declarations))
	for i, declaration := range l.Declarations {
		declarationDocs[i] = declaration.Doc()
	}

	doc := prettier.Concat{
		prettier.Join(
			prettier.Concat{
				separator,
				prettier.Line{},
			},
			declarationDocs...,
		),
	}
	if l.TrailingSeparator {
		doc = append(doc, separator)
	}

	return prettier.Group{
		Doc: doc,
	}
}

func (l *DeclarationList[S]) MarshalJSON() ([]byte, error) {
	declarations := l.Declarations
	if declarations == nil {
		declarations = []*VariableDeclaration{}
	}
	return json.Marshal(&struct {
		Separator         string
		Declarations      []*VariableDeclaration
		TrailingSeparator bool `json:",omitempty"`
	}{
		Separator:         l.separator(),
		Declarations:      declarations,
		TrailingSeparator: l.TrailingSeparator,
	})
}
