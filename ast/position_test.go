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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachLeft(t *testing.T) {

	t.Parallel()

	t.Run("nothing", func(t *testing.T) {
		t.Parallel()

		const code = "bar"

		assert.Equal(
			t,
			Range{
				StartPos: Position{Offset: 0, Line: 1, Column: 0},
				EndPos:   Position{Offset: 2, Line: 1, Column: 2},
			},
			Range{
				StartPos: Position{Offset: 0, Line: 1, Column: 0},
				EndPos:   Position{Offset: 2, Line: 1, Column: 2},
			}.AttachLeft(code),
		)
	})

	t.Run("whitespace", func(t *testing.T) {
		t.Parallel()

		const code = " \t bar"

		assert.Equal(
			t,
			Range{
				StartPos: Position{Offset: 0, Line: 1, Column: 0},
				EndPos:   Position{Offset: 5, Line: 1, Column: 5},
			},
			Range{
				StartPos: Position{Offset: 3, Line: 1, Column: 3},
				EndPos:   Position{Offset: 5, Line: 1, Column: 5},
			}.AttachLeft(code),
		)
	})

	t.Run("non-whitespace", func(t *testing.T) {
		t.Parallel()

		const code = "foo  bar"

		assert.Equal(
			t,
			Range{
				StartPos: Position{Offset: 3, Line: 1, Column: 3},
				EndPos:   Position{Offset: 7, Line: 1, Column: 7},
			},
			Range{
				StartPos: Position{Offset: 5, Line: 1, Column: 5},
				EndPos:   Position{Offset: 7, Line: 1, Column: 7},
			}.AttachLeft(code),
		)
	})

	t.Run("newline", func(t *testing.T) {
		t.Parallel()

		const code = "foo\n  bar"

		assert.Equal(
			t,
			Range{
				StartPos: Position{Offset: 4, Line: 2, Column: 0},
				EndPos:   Position{Offset: 8, Line: 2, Column: 4},
			},
			Range{
				StartPos: Position{Offset: 6, Line: 2, Column: 2},
				EndPos:   Position{Offset: 8, Line: 2, Column: 4},
			}.AttachLeft(code),
		)
	})
}

func TestRange_Source(t *testing.T) {

	t.Parallel()

	input := []byte("uint256 amount")

	assert.Equal(t,
		[]byte("amount"),
		Range{
			StartPos: Position{Offset: 8, Line: 1, Column: 8},
			EndPos:   Position{Offset: 13, Line: 1, Column: 13},
		}.Source(input),
	)

	assert.Equal(t,
		[]byte("amount"),
		Range{
			StartPos: Position{Offset: 8, Line: 1, Column: 8},
			EndPos:   Position{Offset: 100, Line: 1, Column: 100},
		}.Source(input),
	)
}

func TestTextEdit_ApplyTo(t *testing.T) {

	t.Parallel()

	t.Run("insertion", func(t *testing.T) {
		t.Parallel()

		edit := TextEdit{
			Insertion: ";",
			Range: Range{
				StartPos: Position{Offset: 9, Line: 1, Column: 9},
				EndPos:   Position{Offset: 9, Line: 1, Column: 9},
			},
		}

		assert.Equal(t, "uint256 a; bool b;", edit.ApplyTo("uint256 a bool b;"))
	})

	t.Run("replacement", func(t *testing.T) {
		t.Parallel()

		edit := TextEdit{
			Replacement: "",
			Range: Range{
				StartPos: Position{Offset: 6, Line: 1, Column: 6},
				EndPos:   Position{Offset: 12, Line: 1, Column: 12},
			},
		}

		assert.Equal(t, "public view", edit.ApplyTo("public public view"))
	})
}
