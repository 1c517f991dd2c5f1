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
	"math/big"
	"strconv"

	"github.com/turbolent/prettier"
)

// Expression is one of the few expressions which may occur in declarations:
// modifier arguments, array sizes and state variable initializers.
type Expression interface {
	HasPosition
	fmt.Stringer
	Doc() prettier.Doc
	isExpression()
}

// BoolExpression

type BoolExpression struct {
	Value bool
	Range
}

var _ Expression = &BoolExpression{}

func (*BoolExpression) isExpression() {}

func (e *BoolExpression) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

var boolExpressionTrueDoc prettier.Doc = prettier.Text("true")
var boolExpressionFalseDoc prettier.Doc = prettier.Text("false")

func (e *BoolExpression) Doc() prettier.Doc {
	if e.Value {
		return boolExpressionTrueDoc
	} else {
		return boolExpressionFalseDoc
	}
}

func (e *BoolExpression) MarshalJSON() ([]byte, error) {
	type Alias BoolExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "BoolExpression",
		Alias: (*Alias)(e),
	})
}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Expression = &StringExpression{}

func (*StringExpression) isExpression() {}

func (e *StringExpression) String() string {
	return strconv.Quote(e.Value)
}

func (e *StringExpression) Doc() prettier.Doc {
	return prettier.Text(e.String())
}

func (e *StringExpression) MarshalJSON() ([]byte, error) {
	type Alias StringExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "StringExpression",
		Alias: (*Alias)(e),
	})
}

// IntegerExpression

type IntegerExpression struct {
	PositiveLiteral string
	Value           *big.Int `json:"-"`
	Base            int
	Range
}

var _ Expression = &IntegerExpression{}

func (*IntegerExpression) isExpression() {}

func (e *IntegerExpression) String() string {
	literal := e.PositiveLiteral
	if e.Value.Sign() < 0 {
		literal = "-" + literal
	}
	return literal
}

func (e *IntegerExpression) Doc() prettier.Doc {
	return prettier.Text(e.String())
}

func (e *IntegerExpression) MarshalJSON() ([]byte, error) {
	type Alias IntegerExpression
	return json.Marshal(&struct {
		Type  string
		Value string
		*Alias
	}{
		Type:  "IntegerExpression",
		Value: e.Value.String(),
		Alias: (*Alias)(e),
	})
}

// IdentifierExpression refers to a named value, e.g. `owner` or `Constants.MAX`

type IdentifierExpression struct {
	Path Path
}

var _ Expression = &IdentifierExpression{}

func (*IdentifierExpression) isExpression() {}

func (e *IdentifierExpression) String() string {
	return e.Path.String()
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return e.Path.Doc()
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Path.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Path.EndPosition()
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IdentifierExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// InvocationExpression

type InvocationExpression struct {
	InvokedExpression Expression
	Arguments         []Expression
	EndPos            Position `json:"-"`
}

var _ Expression = &InvocationExpression{}

func (*InvocationExpression) isExpression() {}

func (e *InvocationExpression) String() string {
	return Prettier(e)
}

func (e *InvocationExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.InvokedExpression.Doc(),
		argumentsDoc(e.Arguments),
	}
}

func argumentsDoc(arguments []Expression) prettier.Doc {
	if len(arguments) == 0 {
		return prettier.Text("()")
	}

	argumentDocs := make([]prettier.Doc, len(arguments))
	for i, argument := range arguments {
		argumentDocs[i] = argument.Doc()
	}
	return prettier.WrapParentheses(
		prettier.Join(commaSeparatorDoc, argumentDocs...),
		prettier.SoftLine{},
	)
}

func (e *InvocationExpression) StartPosition() Position {
	return e.InvokedExpression.StartPosition()
}

func (e *InvocationExpression) EndPosition() Position {
	return e.EndPos
}

func (e *InvocationExpression) MarshalJSON() ([]byte, error) {
	type Alias InvocationExpression
	return json.Marshal(&struct {
		Type string
		*Alias
		Range
	}{
		Type:  "InvocationExpression",
		Alias: (*Alias)(e),
		Range: NewRangeFromPositioned(e),
	})
}

// UnaryMinusExpression negates a non-literal expression, e.g. `-MAX`.
// Negative integer literals are folded into an IntegerExpression.

type UnaryMinusExpression struct {
	Expression Expression
	StartPos   Position `json:"-"`
}

var _ Expression = &UnaryMinusExpression{}

func (*UnaryMinusExpression) isExpression() {}

func (e *UnaryMinusExpression) String() string {
	return Prettier(e)
}

func (e *UnaryMinusExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("-"),
		e.Expression.Doc(),
	}
}

func (e *UnaryMinusExpression) StartPosition() Position {
	return e.StartPos
}

func (e *UnaryMinusExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

func (e *UnaryMinusExpression) MarshalJSON() ([]byte, error) {
	type Alias UnaryMinusExpression
	return json.Marshal(&struct {
		Type string
		*Alias
		Range
	}{
		Type:  "UnaryMinusExpression",
		Alias: (*Alias)(e),
		Range: NewRangeFromPositioned(e),
	})
}
