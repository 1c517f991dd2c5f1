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
	"github.com/onflow/solsyn/errors"
)

type DeclarationKind uint

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindFunction
	DeclarationKindParameter
	DeclarationKindReturnParameter
	DeclarationKindStructure
	DeclarationKindField
	DeclarationKindStateVariable
)

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindReturnParameter:
		return "return parameter"
	case DeclarationKindStructure:
		return "structure"
	case DeclarationKindField:
		return "field"
	case DeclarationKindStateVariable:
		return "state variable"
	case DeclarationKindUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

func (k DeclarationKind) Keywords() string {
	switch k {
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindStructure:
		return "struct"
	default:
		return ""
	}
}

func (k DeclarationKind) String() string {
	return k.Name()
}
