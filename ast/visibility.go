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

type Visibility uint8

const (
	VisibilityNotSpecified Visibility = iota
	VisibilityExternal
	VisibilityPublic
	VisibilityInternal
	VisibilityPrivate
)

var AllVisibilities = []Visibility{
	VisibilityExternal,
	VisibilityPublic,
	VisibilityInternal,
	VisibilityPrivate,
}

func (v Visibility) Keyword() string {
	switch v {
	case VisibilityNotSpecified:
		return ""
	case VisibilityExternal:
		return "external"
	case VisibilityPublic:
		return "public"
	case VisibilityInternal:
		return "internal"
	case VisibilityPrivate:
		return "private"
	}

	panic(errors.NewUnreachableError())
}

func (v Visibility) String() string {
	switch v {
	case VisibilityNotSpecified:
		return "VisibilityNotSpecified"
	case VisibilityExternal:
		return "VisibilityExternal"
	case VisibilityPublic:
		return "VisibilityPublic"
	case VisibilityInternal:
		return "VisibilityInternal"
	case VisibilityPrivate:
		return "VisibilityPrivate"
	}

	panic(errors.NewUnreachableError())
}

func (v Visibility) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}
