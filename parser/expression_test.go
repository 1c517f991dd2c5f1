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

func TestParseIntegerExpression(t *testing.T) {

	t.Parallel()

	t.Run("decimal", func(t *testing.T) {

		t.Parallel()

		result, err := ParseExpression([]byte("42"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.IntegerExpression{
				PositiveLiteral: "42",
				Value:           big.NewInt(42),
				Base:            10,
				Range:           rng(pos(0, 1, 0), pos(1, 1, 1)),
			},
			result,
		)
	})

	t.Run("decimal with underscores", func(t *testing.T) {

		t.Parallel()

		result, err := ParseExpression([]byte("1_000_000"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.IntegerExpression{
				PositiveLiteral: "1_000_000",
				Value:           big.NewInt(1_000_000),
				Base:            10,
				Range:           rng(pos(0, 1, 0), pos(8, 1, 8)),
			},
			result,
		)
		assert.Equal(t, "1_000_000", result.String())
	})

	t.Run("hexadecimal", func(t *testing.T) {

		t.Parallel()

		result, err := ParseExpression([]byte("0xFF_ff"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.IntegerExpression{
				PositiveLiteral: "0xFF_ff",
				Value:           big.NewInt(0xffff),
				Base:            16,
				Range:           rng(pos(0, 1, 0), pos(6, 1, 6)),
			},
			result,
		)
	})

	t.Run("large", func(t *testing.T) {

		t.Parallel()

		const literal = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

		result, err := ParseExpression([]byte(literal), Config{})
		require.NoError(t, err)

		expected, ok := new(big.Int).SetString(literal, 10)
		require.True(t, ok)

		integer, ok := result.(*ast.IntegerExpression)
		require.True(t, ok)
		assert.Equal(t, 0, expected.Cmp(integer.Value))
	})

	t.Run("negative", func(t *testing.T) {

		t.Parallel()

		result, err := ParseExpression([]byte("- 5"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.IntegerExpression{
				PositiveLiteral: "5",
				Value:           big.NewInt(-5),
				Base:            10,
				Range:           rng(pos(0, 1, 0), pos(2, 1, 2)),
			},
			result,
		)
		assert.Equal(t, "-5", result.String())
	})

	t.Run("double negation", func(t *testing.T) {

		t.Parallel()

		result, err := ParseExpression([]byte("--1"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.UnaryMinusExpression{
				Expression: &ast.IntegerExpression{
					PositiveLiteral: "1",
					Value:           big.NewInt(-1),
					Base:            10,
					Range:           rng(pos(1, 1, 1), pos(2, 1, 2)),
				},
				StartPos: pos(0, 1, 0),
			},
			result,
		)
		assert.Equal(t, "--1", result.String())
	})

	t.Run("invalid underscores", func(t *testing.T) {

		t.Parallel()

		for _, literal := range []string{"1__0", "1_", "0x_1"} {

			_, err := ParseExpression([]byte(literal), Config{})
			errs := requireParseErrors(t, err)

			AssertEqualWithDiff(t,
				[]error{
					&InvalidIntegerLiteralError{
						Literal: literal,
						Range:   rng(pos(0, 1, 0), pos(len(literal)-1, 1, len(literal)-1)),
					},
				},
				errs,
			)
		}
	})
}

func TestParseUnaryMinusExpression(t *testing.T) {

	t.Parallel()

	result, err := ParseExpression([]byte("-MAX"), Config{})
	require.NoError(t, err)

	AssertEqualWithDiff(t,
		&ast.UnaryMinusExpression{
			Expression: &ast.IdentifierExpression{
				Path: ast.NewPath(
					ast.NewIdentifier("MAX", pos(1, 1, 1)),
				),
			},
			StartPos: pos(0, 1, 0),
		},
		result,
	)
	assert.Equal(t, "-MAX", result.String())
}

func TestParseBoolExpression(t *testing.T) {

	t.Parallel()

	result, err := ParseExpression([]byte("false"), Config{})
	require.NoError(t, err)

	AssertEqualWithDiff(t,
		&ast.BoolExpression{
			Value: false,
			Range: rng(pos(0, 1, 0), pos(4, 1, 4)),
		},
		result,
	)

	result, err = ParseExpression([]byte("true"), Config{})
	require.NoError(t, err)
	assert.Equal(t, "true", result.String())
}

func TestParseStringExpression(t *testing.T) {

	t.Parallel()

	t.Run("double quotes", func(t *testing.T) {

		t.Parallel()

		result, err := ParseExpression([]byte(`"a\nb\"c"`), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.StringExpression{
				Value: "a\nb\"c",
				Range: rng(pos(0, 1, 0), pos(8, 1, 8)),
			},
			result,
		)
	})

	t.Run("single quotes, escapes", func(t *testing.T) {

		t.Parallel()

		result, err := ParseExpression([]byte(`'\x41é\'\t'`), Config{})
		require.NoError(t, err)

		stringExpression, ok := result.(*ast.StringExpression)
		require.True(t, ok)
		assert.Equal(t, "Aé'\t", stringExpression.Value)
	})

	t.Run("invalid escape", func(t *testing.T) {

		t.Parallel()

		_, err := ParseExpression([]byte(`"ab\q"`), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "invalid escape sequence: `\\q`",
					Pos:     pos(3, 1, 3),
				},
			},
			errs,
		)
	})

	t.Run("incomplete hexadecimal escape", func(t *testing.T) {

		t.Parallel()

		_, err := ParseExpression([]byte(`"\x4"`), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "invalid escape sequence: incomplete hexadecimal escape",
					Pos:     pos(1, 1, 1),
				},
			},
			errs,
		)
	})
}

func TestParseIdentifierExpression(t *testing.T) {

	t.Parallel()

	t.Run("path", func(t *testing.T) {

		t.Parallel()

		result, err := ParseExpression([]byte("Constants.MAX"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.IdentifierExpression{
				Path: ast.NewPath(
					ast.NewIdentifier("Constants", pos(0, 1, 0)),
					ast.NewIdentifier("MAX", pos(10, 1, 10)),
				),
			},
			result,
		)
	})

	t.Run("keyword", func(t *testing.T) {

		t.Parallel()

		_, err := ParseExpression([]byte("memory"), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "expected expression, got keyword `memory`",
					Pos:     pos(0, 1, 0),
				},
			},
			errs,
		)
	})

	t.Run("missing", func(t *testing.T) {

		t.Parallel()

		_, err := ParseExpression([]byte(""), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&UnexpectedTokenError{
					Got:      "end of input",
					Expected: []string{"expression"},
					Range:    rng(pos(0, 1, 0), pos(0, 1, 0)),
				},
			},
			errs,
		)
	})
}

func TestParseInvocationExpression(t *testing.T) {

	t.Parallel()

	t.Run("chained", func(t *testing.T) {

		t.Parallel()

		result, err := ParseExpression([]byte("f(1)(x, 2)"), Config{})
		require.NoError(t, err)

		AssertEqualWithDiff(t,
			&ast.InvocationExpression{
				InvokedExpression: &ast.InvocationExpression{
					InvokedExpression: &ast.IdentifierExpression{
						Path: ast.NewPath(
							ast.NewIdentifier("f", pos(0, 1, 0)),
						),
					},
					Arguments: []ast.Expression{
						&ast.IntegerExpression{
							PositiveLiteral: "1",
							Value:           big.NewInt(1),
							Base:            10,
							Range:           rng(pos(2, 1, 2), pos(2, 1, 2)),
						},
					},
					EndPos: pos(3, 1, 3),
				},
				Arguments: []ast.Expression{
					&ast.IdentifierExpression{
						Path: ast.NewPath(
							ast.NewIdentifier("x", pos(5, 1, 5)),
						),
					},
					&ast.IntegerExpression{
						PositiveLiteral: "2",
						Value:           big.NewInt(2),
						Base:            10,
						Range:           rng(pos(8, 1, 8), pos(8, 1, 8)),
					},
				},
				EndPos: pos(9, 1, 9),
			},
			result,
		)

		assert.Equal(t, "f(1)(x, 2)", result.String())
	})

	t.Run("trailing comma", func(t *testing.T) {

		t.Parallel()

		_, err := ParseExpression([]byte("f(1,)"), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&UnexpectedTokenError{
					Got:      "')'",
					Expected: []string{"expression"},
					Range:    rng(pos(4, 1, 4), pos(4, 1, 4)),
				},
			},
			errs,
		)
	})

	t.Run("missing comma", func(t *testing.T) {

		t.Parallel()

		_, err := ParseExpression([]byte("f(1 2)"), Config{})
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				&UnexpectedTokenError{
					Got:      "decimal integer",
					Expected: []string{"')'", "','"},
					Range:    rng(pos(4, 1, 4), pos(4, 1, 4)),
				},
			},
			errs,
		)
	})
}

func TestParseExpressionDepthLimit(t *testing.T) {

	t.Parallel()

	config := Config{
		ExpressionDepthLimit: 3,
	}

	t.Run("within limit", func(t *testing.T) {

		t.Parallel()

		_, err := ParseExpression([]byte("f(g(1))"), config)
		require.NoError(t, err)
	})

	t.Run("exceeding limit", func(t *testing.T) {

		t.Parallel()

		_, err := ParseExpression([]byte("f(g(h(1)))"), config)
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				ExpressionDepthLimitReachedError{
					Pos:   pos(6, 1, 6),
					Limit: 3,
				},
			},
			errs,
		)
	})

	t.Run("negation", func(t *testing.T) {

		t.Parallel()

		_, err := ParseExpression([]byte("----1"), config)
		errs := requireParseErrors(t, err)

		AssertEqualWithDiff(t,
			[]error{
				ExpressionDepthLimitReachedError{
					Pos:   pos(3, 1, 3),
					Limit: 3,
				},
			},
			errs,
		)
	})
}
