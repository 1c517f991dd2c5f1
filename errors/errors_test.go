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

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testUserError struct{}

func (testUserError) Error() string {
	return "duplicate attribute"
}

func (testUserError) IsUserError() {}

type testParentError struct {
	children []error
}

func (e testParentError) Error() string {
	return "parent"
}

func (e testParentError) ChildErrors() []error {
	return e.children
}

func TestIsUserError(t *testing.T) {

	t.Parallel()

	var userError UserError = testUserError{}

	assert.True(t, IsUserError(userError))
	assert.True(t, IsUserError(fmt.Errorf("wrapped: %w", userError)))
	assert.False(t, IsUserError(NewUnexpectedError("unexpected")))
	assert.False(t, IsUserError(NewUnreachableError()))
	assert.False(t, IsUserError(fmt.Errorf("plain")))

	t.Run("parent", func(t *testing.T) {

		t.Parallel()

		assert.True(t, IsUserError(testParentError{
			children: []error{userError, userError},
		}))
		assert.False(t, IsUserError(testParentError{
			children: []error{userError, NewUnexpectedError("unexpected")},
		}))
		assert.False(t, IsUserError(testParentError{}))
	})
}

func TestInternalErrors(t *testing.T) {

	t.Parallel()

	assert.Implements(t, (*InternalError)(nil), NewUnreachableError())
	assert.Implements(t, (*InternalError)(nil), NewUnexpectedError("unexpected"))
}

func TestUnexpectedError(t *testing.T) {

	t.Parallel()

	err := NewUnexpectedError("unexpected %s", "token")
	assert.Equal(t, "unexpected token", err.Error())
	assert.EqualError(t, err.Unwrap(), "unexpected token")
}

func TestUnreachableError(t *testing.T) {

	t.Parallel()

	err := NewUnreachableError()
	assert.NotEmpty(t, err.Stack)
	assert.Contains(t, err.Error(), "unreachable\n")
}
