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

// errors prints a Markdown catalog of all parse errors.
//
// Each entry shows the message of the error for placeholder values,
// and, if available, its secondary message, notes, suggested fixes,
// and documentation link.
//
// Usage:
//
//	errors > errors.md
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/errors"
	"github.com/onflow/solsyn/parser"
)

func main() {
	err := writeCatalog(os.Stdout, placeholderErrors())
	if err != nil {
		panic(err)
	}
}

func errorName(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}

func writeCatalog(w io.Writer, parseErrors []parser.ParseError) error {
	_, err := io.WriteString(w, "# Parse errors\n")
	if err != nil {
		return err
	}

	for _, parseError := range parseErrors {
		err = writeEntry(w, parseError)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeEntry(w io.Writer, parseError parser.ParseError) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n## %s\n\n", errorName(parseError))
	fmt.Fprintf(&sb, "%s\n", parseError.Error())

	var items []string

	if secondaryError, ok := parseError.(errors.SecondaryError); ok {
		items = append(items, "secondary: "+secondaryError.SecondaryError())
	}

	if hasNotes, ok := parseError.(errors.ErrorNotes); ok {
		for _, note := range hasNotes.ErrorNotes() {
			items = append(items, "note: "+note.Message())
		}
	}

	if hasFixes, ok := parseError.(errors.HasSuggestedFixes[ast.TextEdit]); ok {
		for _, fix := range hasFixes.SuggestFixes(placeholderCode) {
			items = append(items, "fix: "+fix.Message)
		}
	}

	if hasLink, ok := parseError.(errors.HasDocumentationLink); ok {
		items = append(items, "documentation: "+hasLink.DocumentationLink())
	}

	if len(items) > 0 {
		sb.WriteString("\n")
		for _, item := range items {
			fmt.Fprintf(&sb, "- %s\n", item)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
