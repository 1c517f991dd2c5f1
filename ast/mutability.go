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

	"github.com/onflow/solsyn/errors"
)

type Mutability uint8

// NOTE: MutabilityNonPayable is the implicit default of functions
// without a mutability attribute

const (
	MutabilityNotSpecified Mutability = iota
	MutabilityPure
	MutabilityView
	MutabilityPayable
	MutabilityNonPayable
)

var AllMutabilities = []Mutability{
	MutabilityPure,
	MutabilityView,
	MutabilityPayable,
	MutabilityNonPayable,
}

func (m Mutability) Keyword() string {
	switch m {
	case MutabilityNotSpecified:
		return ""
	case MutabilityPure:
		return "pure"
	case MutabilityView:
		return "view"
	case MutabilityPayable:
		return "payable"
	case MutabilityNonPayable:
		return "nonpayable"
	}

	panic(errors.NewUnreachableError())
}

func (m Mutability) String() string {
	switch m {
	case MutabilityNotSpecified:
		return "MutabilityNotSpecified"
	case MutabilityPure:
		return "MutabilityPure"
	case MutabilityView:
		return "MutabilityView"
	case MutabilityPayable:
		return "MutabilityPayable"
	case MutabilityNonPayable:
		return "MutabilityNonPayable"
	}

	panic(errors.NewUnreachableError())
}

func (m Mutability) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
