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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbolent/prettier"
)

func TestIsElementaryTypeName(t *testing.T) {

	t.Parallel()

	valid := []string{
		"bool", "address", "string", "bytes", "byte",
		"int", "uint", "fixed", "ufixed",
		"uint8", "uint256", "int128", "bytes1", "bytes32",
		"fixed128x18", "ufixed8x0", "ufixed256x80",
	}
	for _, name := range valid {
		assert.True(t, IsElementaryTypeName(name), name)
	}

	invalid := []string{
		"", "Order", "uint7", "uint0", "uint264", "uint08",
		"bytes0", "bytes33", "int-8", "fixed128", "fixed128x81",
		"ufixed7x1", "mapping", "payable",
	}
	for _, name := range invalid {
		assert.False(t, IsElementaryTypeName(name), name)
	}
}

func TestType_CanonicalString(t *testing.T) {

	t.Parallel()

	test := func(ty Type, expected string) {
		t.Run(expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, expected, ty.CanonicalString())
		})
	}

	test(&ElementaryType{Name: "uint"}, "uint256")
	test(&ElementaryType{Name: "int"}, "int256")
	test(&ElementaryType{Name: "byte"}, "bytes1")
	test(&ElementaryType{Name: "fixed"}, "fixed128x18")
	test(&ElementaryType{Name: "ufixed"}, "ufixed128x18")
	test(&ElementaryType{Name: "address", Payable: true}, "address")
	test(&ElementaryType{Name: "bytes32"}, "bytes32")

	test(
		&ArrayType{
			Type: &ElementaryType{Name: "uint"},
		},
		"uint256[]",
	)

	test(
		&ArrayType{
			Type: &ArrayType{
				Type: &ElementaryType{Name: "int"},
				Size: &IntegerExpression{
					PositiveLiteral: "3",
					Value:           big.NewInt(3),
					Base:            10,
				},
			},
		},
		"int256[3][]",
	)

	test(
		&TupleType{
			Types: []Type{
				&ElementaryType{Name: "uint"},
				&TupleType{
					Types: []Type{
						&ElementaryType{Name: "bool"},
						&ElementaryType{Name: "byte"},
					},
				},
			},
		},
		"(uint256,(bool,bytes1))",
	)

	test(&TupleType{}, "()")

	test(
		&NominalType{
			Path: Path{
				{Identifier: "Lib"},
				{Identifier: "Order"},
			},
		},
		"Lib.Order",
	)

	test(
		&MappingType{
			KeyType:   &ElementaryType{Name: "address"},
			KeyName:   &Identifier{Identifier: "owner"},
			ValueType: &ElementaryType{Name: "uint"},
		},
		"mapping(address=>uint256)",
	)
}

func TestType_String(t *testing.T) {

	t.Parallel()

	test := func(ty Type, expected string) {
		t.Run(expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, expected, ty.String())
		})
	}

	test(&ElementaryType{Name: "uint"}, "uint")
	test(&ElementaryType{Name: "address", Payable: true}, "address payable")

	test(
		&ArrayType{
			Type: &ElementaryType{Name: "uint"},
			Size: &IntegerExpression{
				PositiveLiteral: "3",
				Value:           big.NewInt(3),
				Base:            10,
			},
		},
		"uint[3]",
	)

	test(
		&TupleType{
			Types: []Type{
				&ElementaryType{Name: "uint"},
				&TupleType{
					Types: []Type{
						&ElementaryType{Name: "bool"},
						&ElementaryType{Name: "byte"},
					},
				},
			},
		},
		"(uint, (bool, byte))",
	)

	test(
		&MappingType{
			KeyType:   &ElementaryType{Name: "address"},
			KeyName:   &Identifier{Identifier: "owner"},
			ValueType: &ElementaryType{Name: "uint256"},
			ValueName: &Identifier{Identifier: "balance"},
		},
		"mapping(address owner => uint256 balance)",
	)
}

func TestTupleType_Doc(t *testing.T) {

	t.Parallel()

	ty := &TupleType{
		Types: []Type{
			&ElementaryType{Name: "uint"},
			&ElementaryType{Name: "bool"},
		},
	}

	require.Equal(t,
		prettier.WrapParentheses(
			prettier.Concat{
				prettier.Text("uint"),
				prettier.Concat{
					prettier.Text(","),
					prettier.Line{},
				},
				prettier.Text("bool"),
			},
			prettier.SoftLine{},
		),
		ty.Doc(),
	)
}

func TestElementaryType_MarshalJSON(t *testing.T) {

	t.Parallel()

	ty := &ElementaryType{
		Name:    "address",
		Payable: true,
		Range: Range{
			StartPos: Position{Offset: 1, Line: 2, Column: 3},
			EndPos:   Position{Offset: 15, Line: 2, Column: 17},
		},
	}

	actual, err := json.Marshal(ty)
	require.NoError(t, err)

	assert.JSONEq(t,
		// language=json
		`
        {
            "Type": "ElementaryType",
            "Name": "address",
            "Payable": true,
            "StartPos": {"Offset": 1, "Line": 2, "Column": 3},
            "EndPos": {"Offset": 15, "Line": 2, "Column": 17}
        }
        `,
		string(actual),
	)
}
