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
)

// Identifier

type Identifier struct {
	Identifier string
	Pos        Position
}

func NewIdentifier(identifier string, pos Position) Identifier {
	return Identifier{
		Identifier: identifier,
		Pos:        pos,
	}
}

func (i Identifier) String() string {
	return i.Identifier
}

func (i Identifier) StartPosition() Position {
	return i.Pos
}

func (i Identifier) EndPosition() Position {
	length := len(i.Identifier)
	return i.Pos.Shifted(length - 1)
}

func (i Identifier) Doc() prettier.Doc {
	return prettier.Text(i.Identifier)
}

func (i Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Identifier string
		Range
	}{
		Identifier: i.Identifier,
		Range:      NewRangeFromPositioned(i),
	})
}

// Path is a dot-separated sequence of identifiers,
// e.g. the name of a base contract `Base` or a qualified modifier `Lib.onlyOwner`.
type Path []Identifier

func NewPath(identifiers ...Identifier) Path {
	return identifiers
}

func (p Path) String() string {
	var builder strings.Builder
	for i, identifier := range p {
		if i > 0 {
			builder.WriteByte('.')
		}
		builder.WriteString(identifier.Identifier)
	}
	return builder.String()
}

// Equal reports whether the two paths name the same thing.
// Only the identifiers are compared, positions are ignored.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i, identifier := range p {
		if identifier.Identifier != other[i].Identifier {
			return false
		}
	}
	return true
}

// Last returns the last identifier of the path, e.g. `onlyOwner` for `Lib.onlyOwner`.
func (p Path) Last() Identifier {
	return p[len(p)-1]
}

func (p Path) StartPosition() Position {
	if len(p) == 0 {
		return EmptyPosition
	}
	return p[0].StartPosition()
}

func (p Path) EndPosition() Position {
	if len(p) == 0 {
		return EmptyPosition
	}
	return p.Last().EndPosition()
}

func (p Path) Doc() prettier.Doc {
	return prettier.Text(p.String())
}
