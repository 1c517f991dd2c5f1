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

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/solsyn/parser"
)

func TestWriteCatalog(t *testing.T) {

	t.Parallel()

	t.Run("all errors", func(t *testing.T) {

		t.Parallel()

		var sb strings.Builder
		err := writeCatalog(&sb, placeholderErrors())
		require.NoError(t, err)

		catalog := sb.String()
		assert.True(t, strings.HasPrefix(catalog, "# Parse errors\n"))

		for _, name := range []string{
			"parser.SyntaxError",
			"parser.UnexpectedTokenError",
			"parser.FunctionImplementationError",
			"parser.DuplicateAttributeError",
			"parser.EmptyFieldListError",
			"parser.MissingTrailingSeparatorError",
			"parser.MissingSeparatorError",
			"parser.UnknownVariableAttributeError",
			"parser.InvalidIntegerLiteralError",
			"parser.ExpressionDepthLimitReachedError",
			"parser.TypeDepthLimitReachedError",
		} {
			assert.Contains(t, catalog, "\n## "+name+"\n")
		}
	})

	t.Run("entry", func(t *testing.T) {

		t.Parallel()

		var sb strings.Builder
		err := writeCatalog(&sb, []parser.ParseError{
			&parser.DuplicateAttributeError{
				Category:      placeholderCategory,
				Attribute:     placeholderString,
				PreviousRange: placeholderPreviousRange,
				Range:         placeholderRange,
			},
		})
		require.NoError(t, err)

		assert.Equal(t,
			"# Parse errors\n"+
				"\n"+
				"## parser.DuplicateAttributeError\n"+
				"\n"+
				"duplicate visibility attribute `placeholder`\n"+
				"\n"+
				"- secondary: only one visibility attribute is allowed\n"+
				"- note: previous declaration is here\n"+
				"- fix: Remove the duplicate attribute\n",
			sb.String(),
		)
	})

	t.Run("documentation link", func(t *testing.T) {

		t.Parallel()

		var sb strings.Builder
		err := writeCatalog(&sb, []parser.ParseError{
			&parser.EmptyFieldListError{
				Pos: placeholderPosition,
			},
		})
		require.NoError(t, err)

		assert.Equal(t,
			"# Parse errors\n"+
				"\n"+
				"## parser.EmptyFieldListError\n"+
				"\n"+
				"empty struct body disallowed\n"+
				"\n"+
				"- secondary: declare at least one field\n"+
				"- documentation: https://docs.soliditylang.org/en/latest/types.html#structs\n",
			sb.String(),
		)
	})

	t.Run("no details", func(t *testing.T) {

		t.Parallel()

		var sb strings.Builder
		err := writeCatalog(&sb, []parser.ParseError{
			&parser.SyntaxError{
				Message: placeholderString,
				Pos:     placeholderPosition,
			},
		})
		require.NoError(t, err)

		assert.Equal(t,
			"# Parse errors\n\n## parser.SyntaxError\n\nplaceholder\n",
			sb.String(),
		)
	})
}
