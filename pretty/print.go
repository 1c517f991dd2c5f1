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

// Package pretty prints errors with excerpts of the source code they occurred in
package pretty

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/common"
	"github.com/onflow/solsyn/errors"
)

const errorPrefix = "error"
const notePrefix = "note"

func colorizeError(message string) string {
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

func colorizeNote(message string) string {
	return aurora.Colorize(message, aurora.CyanFg|aurora.BoldFm).String()
}

func colorizeMessage(message string) string {
	return aurora.Colorize(message, aurora.BoldFm).String()
}

func colorizeMeta(message string) string {
	return aurora.Colorize(message, aurora.BlueFg|aurora.BrightFg).String()
}

// ErrorPrettyPrinter prints errors with an excerpt of the code they refer to,
// e.g.
//
//	error: duplicate visibility attribute `external`
//	 --> test:1:21
//	  |
//	1 | function f() public external;
//	  |                     ^^^^^^^^ only one visibility attribute is allowed
type ErrorPrettyPrinter struct {
	writer   *bufio.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   bufio.NewWriter(writer),
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) {
	_, err := p.writer.WriteString(str)
	if err != nil {
		panic(err)
	}
}

// PrettyPrintError prints the given error.
// Child errors of parent errors are printed individually.
// The code of the location is looked up in the given codes.
func (p ErrorPrettyPrinter) PrettyPrintError(
	err error,
	location common.Location,
	codes map[common.Location][]byte,
) (printErr error) {
	defer func() {
		if r := recover(); r != nil {
			recovered, ok := r.(error)
			if !ok {
				panic(r)
			}
			printErr = recovered
		}
	}()

	p.prettyPrintError(err, location, codes, true)

	return p.writer.Flush()
}

func (p ErrorPrettyPrinter) prettyPrintError(
	err error,
	location common.Location,
	codes map[common.Location][]byte,
	first bool,
) bool {
	if parentErr, ok := err.(errors.ParentError); ok {
		for _, childErr := range parentErr.ChildErrors() {
			first = p.prettyPrintError(childErr, location, codes, first)
		}
		return first
	}

	if !first {
		p.writeString("\n")
	}

	p.writeHeader(errorPrefix, err.Error(), p.colorizeError)

	positioned, ok := err.(ast.HasPosition)
	if !ok {
		return false
	}

	var secondaryMessage string
	if secondaryErr, ok := err.(errors.SecondaryError); ok {
		secondaryMessage = secondaryErr.SecondaryError()
	}

	code := codes[location]

	p.writeCodeExcerpt(
		location,
		code,
		positioned.StartPosition(),
		positioned.EndPosition(),
		'^',
		secondaryMessage,
	)

	if errorNotes, ok := err.(errors.ErrorNotes); ok {
		for _, note := range errorNotes.ErrorNotes() {
			p.writeString("\n")
			p.writeHeader(notePrefix, note.Message(), p.colorizeNote)

			notePositioned, ok := note.(ast.HasPosition)
			if !ok {
				continue
			}

			p.writeCodeExcerpt(
				location,
				code,
				notePositioned.StartPosition(),
				notePositioned.EndPosition(),
				'-',
				"",
			)
		}
	}

	if hasLink, ok := err.(errors.HasDocumentationLink); ok {
		link := hasLink.DocumentationLink()
		if link != "" {
			p.writeString(p.colorizeMeta("  = "))
			p.writeString("See documentation at: ")
			p.writeString(link)
			p.writeString("\n")
		}
	}

	return false
}

func (p ErrorPrettyPrinter) colorizeError(message string) string {
	if !p.useColor {
		return message
	}
	return colorizeError(message)
}

func (p ErrorPrettyPrinter) colorizeNote(message string) string {
	if !p.useColor {
		return message
	}
	return colorizeNote(message)
}

func (p ErrorPrettyPrinter) colorizeMessage(message string) string {
	if !p.useColor {
		return message
	}
	return colorizeMessage(message)
}

func (p ErrorPrettyPrinter) colorizeMeta(message string) string {
	if !p.useColor {
		return message
	}
	return colorizeMeta(message)
}

func (p ErrorPrettyPrinter) writeHeader(prefix string, message string, colorize func(string) string) {
	p.writeString(colorize(prefix))
	p.writeString(p.colorizeMessage(": " + message))
	p.writeString("\n")
}

func (p ErrorPrettyPrinter) writeCodeExcerpt(
	location common.Location,
	code []byte,
	startPosition ast.Position,
	endPosition ast.Position,
	indicator rune,
	message string,
) {
	lineNumberString := strconv.Itoa(startPosition.Line)
	lineNumberLength := len(lineNumberString)
	gutterPadding := strings.Repeat(" ", lineNumberLength)

	// write position

	p.writeString(gutterPadding)
	p.writeString(p.colorizeMeta("--> "))
	if location != nil {
		p.writeString(location.String())
		p.writeString(":")
	}
	p.writeString(fmt.Sprintf(
		"%d:%d\n",
		startPosition.Line,
		startPosition.Column,
	))

	// write the excerpt, if the line exists

	lines := bytes.Split(code, []byte{'\n'})
	if startPosition.Line < 1 || startPosition.Line > len(lines) {
		return
	}

	line := lines[startPosition.Line-1]
	if startPosition.Column > len(line) {
		return
	}

	p.writeString(gutterPadding)
	p.writeString(p.colorizeMeta(" |"))
	p.writeString("\n")

	p.writeString(p.colorizeMeta(lineNumberString + " | "))
	p.writeString(string(line))
	p.writeString("\n")

	// write the indicator,
	// aligned with the excerpt: tabs are kept, all other characters become spaces

	p.writeString(gutterPadding)
	p.writeString(p.colorizeMeta(" | "))

	prefix := line[:startPosition.Column]
	for _, r := range string(prefix) {
		if r == '\t' {
			p.writeString("\t")
		} else {
			p.writeString(strings.Repeat(" ", uniseg.StringWidth(string(r))))
		}
	}

	endColumn := len(line) - 1
	if endPosition.Line == startPosition.Line && endPosition.Column < endColumn {
		endColumn = endPosition.Column
	}

	indicatorLength := 1
	if endColumn >= startPosition.Column {
		indicatorLength = max(1, uniseg.StringWidth(string(line[startPosition.Column:endColumn+1])))
	}

	indicators := strings.Repeat(string(indicator), indicatorLength)
	p.writeString(p.colorizeError(indicators))

	if message != "" {
		p.writeString(" ")
		p.writeString(p.colorizeError(message))
	}

	p.writeString("\n")
}
