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

package parser

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/solsyn/ast"
	. "github.com/onflow/solsyn/test_utils/common_utils"
)

func TestParseElementaryType(t *testing.T) {

	t.Parallel()

	t.Run("uint256", func(t *testing.T) {

		t.Parallel()

		result, err := ParseType([]byte("uint256"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.ElementaryType{
				Name:  "uint256",
				Range: rng(pos(0, 1, 0), pos(6, 1, 6)),
			},
			result,
		)
	})

	t.Run("address payable", func(t *testing.T) {

		t.Parallel()

		result, err := ParseType([]byte("address /* to */ payable"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.ElementaryType{
				Name:    "address",
				Payable: true,
				Range:   rng(pos(0, 1, 0), pos(23, 1, 23)),
			},
			result,
		)
		assert.Equal(t, "address payable", result.String())
		assert.Equal(t, "address", result.CanonicalString())
	})

	t.Run("alias", func(t *testing.T) {

		t.Parallel()

		result, err := ParseType([]byte("uint"), Config{})
		require.NoError(t, err)

		assert.Equal(t, "uint", result.String())
		assert.Equal(t, "uint256", result.CanonicalString())
	})

	t.Run("keyword", func(t *testing.T) {

		t.Parallel()

		_, err := ParseType([]byte("memory"), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "expected type, got keyword `memory`",
					Pos:     pos(0, 1, 0),
				},
			},
			errs,
		)
	})

	t.Run("missing", func(t *testing.T) {

		t.Parallel()

		_, err := ParseType([]byte(";"), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&UnexpectedTokenError{
					Got:      "';'",
					Expected: []string{"type"},
					Range:    rng(pos(0, 1, 0), pos(0, 1, 0)),
				},
			},
			errs,
		)
	})
}

func TestParseNominalType(t *testing.T) {

	t.Parallel()

	result, err := ParseType([]byte("Exchange . Order"), Config{})
	require.NoError(t, err)

	AssertEqualWithDiff(t,
		&ast.NominalType{
			Path: ast.NewPath(
				ast.NewIdentifier("Exchange", pos(0, 1, 0)),
				ast.NewIdentifier("Order", pos(11, 1, 11)),
			),
		},
		result,
	)
	assert.Equal(t, "Exchange.Order", result.String())
}

func TestParseArrayType(t *testing.T) {

	t.Parallel()

	t.Run("nested", func(t *testing.T) {

		t.Parallel()

		result, err := ParseType([]byte("uint256[][3]"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.ArrayType{
				Type: &ast.ArrayType{
					Type: &ast.ElementaryType{
						Name:  "uint256",
						Range: rng(pos(0, 1, 0), pos(6, 1, 6)),
					},
					EndPos: pos(8, 1, 8),
				},
				Size: &ast.IntegerExpression{
					PositiveLiteral: "3",
					Value:           big.NewInt(3),
					Base:            10,
					Range:           rng(pos(10, 1, 10), pos(10, 1, 10)),
				},
				EndPos: pos(11, 1, 11),
			},
			result,
		)

		assert.Equal(t, "uint256[][3]", result.String())
		assert.Equal(t, pos(0, 1, 0), result.StartPosition())
	})

	t.Run("constant size", func(t *testing.T) {

		t.Parallel()

		result, err := ParseType([]byte("Order [ MAX_ORDERS ]"), Config{})
		require.NoError(t, err)

		assert.Equal(t, "Order[MAX_ORDERS]", result.String())
		assert.Equal(t, pos(19, 1, 19), result.EndPosition())
	})

	t.Run("unclosed", func(t *testing.T) {

		t.Parallel()

		_, err := ParseType([]byte("bytes32[2"), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&UnexpectedTokenError{
					Got:      "end of input",
					Expected: []string{"']'"},
					Range:    rng(pos(9, 1, 9), pos(9, 1, 9)),
				},
			},
			errs,
		)
	})
}

func TestParseTupleType(t *testing.T) {

	t.Parallel()

	t.Run("two types", func(t *testing.T) {

		t.Parallel()

		result, err := ParseType([]byte("(uint256, bool)"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.TupleType{
				Types: []ast.Type{
					&ast.ElementaryType{
						Name:  "uint256",
						Range: rng(pos(1, 1, 1), pos(7, 1, 7)),
					},
					&ast.ElementaryType{
						Name:  "bool",
						Range: rng(pos(10, 1, 10), pos(13, 1, 13)),
					},
				},
				Range: rng(pos(0, 1, 0), pos(14, 1, 14)),
			},
			result,
		)

		assert.Equal(t, "(uint256, bool)", result.String())
		assert.Equal(t, "(uint256,bool)", result.CanonicalString())
	})

	t.Run("empty", func(t *testing.T) {

		t.Parallel()

		result, err := ParseType([]byte("( )"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.TupleType{
				Range: rng(pos(0, 1, 0), pos(2, 1, 2)),
			},
			result,
		)
	})

	t.Run("trailing comma", func(t *testing.T) {

		t.Parallel()

		_, err := ParseType([]byte("(uint256,)"), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&UnexpectedTokenError{
					Got:      "')'",
					Expected: []string{"type"},
					Range:    rng(pos(9, 1, 9), pos(9, 1, 9)),
				},
			},
			errs,
		)
	})
}

func TestParseMappingType(t *testing.T) {

	t.Parallel()

	t.Run("named", func(t *testing.T) {

		t.Parallel()

		result, err := ParseType([]byte("mapping(address owner => uint256 balance)"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.MappingType{
				KeyType: &ast.ElementaryType{
					Name:  "address",
					Range: rng(pos(8, 1, 8), pos(14, 1, 14)),
				},
				KeyName: &ast.Identifier{
					Identifier: "owner",
					Pos:        pos(16, 1, 16),
				},
				ValueType: &ast.ElementaryType{
					Name:  "uint256",
					Range: rng(pos(25, 1, 25), pos(31, 1, 31)),
				},
				ValueName: &ast.Identifier{
					Identifier: "balance",
					Pos:        pos(33, 1, 33),
				},
				Range: rng(pos(0, 1, 0), pos(40, 1, 40)),
			},
			result,
		)

		assert.Equal(t, "mapping(address owner => uint256 balance)", result.String())
	})

	t.Run("nested", func(t *testing.T) {

		t.Parallel()

		result, err := ParseType(
			[]byte("mapping(address=>mapping(uint=>bool[]))"),
			Config{},
		)
		require.NoError(t, err)

		mapping, ok := result.(*ast.MappingType)
		require.True(t, ok)
		assert.Nil(t, mapping.KeyName)
		assert.Nil(t, mapping.ValueName)

		assert.Equal(t,
			"mapping(address => mapping(uint => bool[]))",
			result.String(),
		)
		assert.Equal(t,
			"mapping(address=>mapping(uint256=>bool[]))",
			result.CanonicalString(),
		)
	})

	t.Run("missing arrow", func(t *testing.T) {

		t.Parallel()

		_, err := ParseType([]byte("mapping(address)"), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&UnexpectedTokenError{
					Got:      "')'",
					Expected: []string{"'=>'"},
					Range:    rng(pos(15, 1, 15), pos(15, 1, 15)),
				},
			},
			errs,
		)
	})
}

func TestParseTypeDepthLimit(t *testing.T) {

	t.Parallel()

	config := Config{
		TypeDepthLimit: 2,
	}

	t.Run("within limit", func(t *testing.T) {

		t.Parallel()

		_, err := ParseType([]byte("mapping(uint => uint[])"), config)
		require.NoError(t, err)
	})

	t.Run("exceeding limit", func(t *testing.T) {

		t.Parallel()

		_, err := ParseType([]byte("mapping(uint => mapping(uint => uint))"), config)
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				TypeDepthLimitReachedError{
					Pos:   pos(24, 1, 24),
					Limit: 2,
				},
			},
			errs,
		)
	})

	t.Run("tuples", func(t *testing.T) {

		t.Parallel()

		_, err := ParseType([]byte("(((bool)))"), config)
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				TypeDepthLimitReachedError{
					Pos:   pos(2, 1, 2),
					Limit: 2,
				},
			},
			errs,
		)
	})
}
