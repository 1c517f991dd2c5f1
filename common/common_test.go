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

package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationsMatch(t *testing.T) {

	t.Parallel()

	assert.True(t, LocationsMatch(nil, nil))
	assert.True(t, LocationsMatch(StringLocation("a.sol"), StringLocation("a.sol")))
	assert.False(t, LocationsMatch(StringLocation("a.sol"), StringLocation("b.sol")))
	assert.False(t, LocationsMatch(StringLocation("a.sol"), nil))
	assert.False(t, LocationsMatch(nil, StringLocation("a.sol")))
}

func TestStringLocation_MarshalJSON(t *testing.T) {

	t.Parallel()

	data, err := json.Marshal(StringLocation("token.sol"))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"Type": "StringLocation", "String": "token.sol"}`,
		string(data),
	)
}

func TestDeclarationKind(t *testing.T) {

	t.Parallel()

	for kind, name := range map[DeclarationKind]string{
		DeclarationKindUnknown:         "unknown",
		DeclarationKindFunction:        "function",
		DeclarationKindParameter:       "parameter",
		DeclarationKindReturnParameter: "return parameter",
		DeclarationKindStructure:       "structure",
		DeclarationKindField:           "field",
		DeclarationKindStateVariable:   "state variable",
	} {
		assert.Equal(t, name, kind.Name())
		assert.Equal(t, name, kind.String())
	}

	assert.Equal(t, "function", DeclarationKindFunction.Keywords())
	assert.Equal(t, "struct", DeclarationKindStructure.Keywords())
	assert.Equal(t, "", DeclarationKindField.Keywords())

	assert.Panics(t, func() {
		_ = DeclarationKind(100).Name()
	})
}
