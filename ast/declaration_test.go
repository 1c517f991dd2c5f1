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

	"github.com/onflow/solsyn/common"
)

func TestFunctionDeclaration(t *testing.T) {

	t.Parallel()

	declaration := &FunctionDeclaration{
		Identifier: Identifier{Identifier: "transfer"},
		Parameters: &ParameterList{
			Declarations: []*VariableDeclaration{
				{
					Type: &ElementaryType{Name: "address"},
					Name: &Identifier{Identifier: "to"},
				},
				{
					Type: &ElementaryType{Name: "uint"},
					Name: &Identifier{Identifier: "amount"},
				},
			},
		},
		Attributes: NewFunctionAttributes(
			&VisibilityAttribute{Visibility: VisibilityExternal},
		),
		Returns: &ReturnParameters{
			Parameters: &ParameterList{
				Declarations: []*VariableDeclaration{
					{
						Type: &ElementaryType{Name: "bool"},
					},
				},
			},
		},
		Comments: Comments{
			Leading: []*Comment{
				NewComment([]byte("/// @notice Transfers tokens")),
				NewComment([]byte("// not documentation")),
				NewComment([]byte("/** @return success */")),
			},
		},
	}

	assert.Equal(t, "transfer(address,uint256)", declaration.Signature())
	assert.Equal(t,
		"function transfer(address to, uint amount) external returns (bool);",
		declaration.String(),
	)
	assert.Equal(t, common.DeclarationKindFunction, declaration.DeclarationKind())
	assert.Equal(t, "transfer", declaration.DeclarationIdentifier().Identifier)
	assert.Equal(t,
		"@notice Transfers tokens\n@return success",
		declaration.DeclarationDocString(),
	)
}

func TestFunctionDeclaration_String(t *testing.T) {

	t.Parallel()

	declaration := &FunctionDeclaration{
		Identifier: Identifier{Identifier: "pause"},
		Parameters: &ParameterList{},
		Attributes: NewFunctionAttributes(),
	}

	assert.Equal(t, "function pause();", declaration.String())
	assert.Equal(t, "pause()", declaration.Signature())
}

func TestStructDeclaration(t *testing.T) {

	t.Parallel()

	declaration := &StructDeclaration{
		Identifier: Identifier{Identifier: "Mail"},
		Fields: &FieldList{
			Declarations: []*VariableDeclaration{
				{
					Type: &ElementaryType{Name: "address"},
					Name: &Identifier{Identifier: "from"},
				},
				{
					Type: &ElementaryType{Name: "address"},
					Name: &Identifier{Identifier: "to"},
				},
				{
					Type: &ElementaryType{Name: "string"},
					Name: &Identifier{Identifier: "contents"},
				},
			},
			TrailingSeparator: true,
		},
	}

	assert.Equal(t, "Mail(address,address,string)", declaration.EIP712Signature())
	assert.Equal(t, "Mail(address from,address to,string contents)", declaration.EncodeType())
	assert.Equal(t,
		"struct Mail {\n"+
			"    address from;\n"+
			"    address to;\n"+
			"    string contents;\n"+
			"}",
		declaration.String(),
	)
	assert.Equal(t, common.DeclarationKindStructure, declaration.DeclarationKind())
	assert.Equal(t, "", declaration.DeclarationDocString())
}

func TestStateVariableDeclaration(t *testing.T) {

	t.Parallel()

	t.Run("mapping", func(t *testing.T) {
		t.Parallel()

		declaration := &StateVariableDeclaration{
			Type: &MappingType{
				KeyType: &ElementaryType{Name: "address"},
				ValueType: &MappingType{
					KeyType: &ElementaryType{Name: "uint"},
					ValueType: &ArrayType{
						Type: &ElementaryType{Name: "bool"},
					},
				},
			},
			Attributes: NewVariableAttributes(
				&VisibilityAttribute{Visibility: VisibilityPublic},
			),
			Identifier: Identifier{Identifier: "approvals"},
		}

		assert.True(t, declaration.HasAccessor())
		assert.Equal(t, "approvals(address,uint256,uint256)", declaration.AccessorSignature())
		assert.Equal(t,
			"mapping(address => mapping(uint => bool[])) public approvals;",
			declaration.String(),
		)
		assert.Equal(t, "public view", declaration.AccessorAttributes().String())
	})

	t.Run("constant", func(t *testing.T) {
		t.Parallel()

		constantRange := Range{
			StartPos: Position{Offset: 15, Line: 1, Column: 15},
			EndPos:   Position{Offset: 22, Line: 1, Column: 22},
		}

		declaration := &StateVariableDeclaration{
			Type: &ElementaryType{Name: "uint256"},
			Attributes: NewVariableAttributes(
				&VisibilityAttribute{Visibility: VisibilityPublic},
				&ConstantAttribute{Range: constantRange},
			),
			Identifier: Identifier{Identifier: "MAX"},
			Value: &IntegerExpression{
				PositiveLiteral: "100",
				Value:           big.NewInt(100),
				Base:            10,
			},
		}

		assert.Equal(t, "MAX()", declaration.AccessorSignature())
		assert.Equal(t, "uint256 public constant MAX = 100;", declaration.String())

		attributes := declaration.AccessorAttributes()
		assert.Equal(t, "public immutable view", attributes.String())
		assert.True(t, attributes.HasImmutable())
		assert.True(t, attributes.HasPublic())

		var immutable FunctionAttribute
		for attribute := range attributes.All() {
			if attribute.Category() == AttributeCategoryImmutable {
				immutable = attribute
			}
		}
		require.NotNil(t, immutable)
		assert.Equal(t, constantRange, NewRangeFromPositioned(immutable))
	})

	t.Run("private", func(t *testing.T) {
		t.Parallel()

		declaration := &StateVariableDeclaration{
			Type:       &ElementaryType{Name: "address"},
			Attributes: NewVariableAttributes(),
			Identifier: Identifier{Identifier: "owner"},
		}

		assert.False(t, declaration.HasAccessor())
		assert.Equal(t, "address owner;", declaration.String())
	})
}

func TestFunctionDeclaration_MarshalJSON(t *testing.T) {

	t.Parallel()

	declaration := &FunctionDeclaration{
		Identifier: Identifier{
			Identifier: "f",
			Pos:        Position{Offset: 9, Line: 1, Column: 9},
		},
		Parameters: &ParameterList{},
		Attributes: NewFunctionAttributes(
			&VirtualAttribute{
				Range: Range{
					StartPos: Position{Offset: 13, Line: 1, Column: 13},
					EndPos:   Position{Offset: 19, Line: 1, Column: 19},
				},
			},
		),
		Range: Range{
			StartPos: Position{Offset: 0, Line: 1, Column: 0},
			EndPos:   Position{Offset: 20, Line: 1, Column: 20},
		},
	}

	actual, err := json.Marshal(declaration)
	require.NoError(t, err)

	assert.JSONEq(t,
		// language=json
		`
        {
            "Type": "FunctionDeclaration",
            "Identifier": {
                "Identifier": "f",
                "StartPos": {"Offset": 9, "Line": 1, "Column": 9},
                "EndPos": {"Offset": 9, "Line": 1, "Column": 9}
            },
            "Parameters": {
                "Separator": ",",
                "Declarations": []
            },
            "Attributes": [
                {
                    "Type": "VirtualAttribute",
                    "StartPos": {"Offset": 13, "Line": 1, "Column": 13},
                    "EndPos": {"Offset": 19, "Line": 1, "Column": 19}
                }
            ],
            "Comments": {},
            "StartPos": {"Offset": 0, "Line": 1, "Column": 0},
            "EndPos": {"Offset": 20, "Line": 1, "Column": 20}
        }
        `,
		string(actual),
	)
}
