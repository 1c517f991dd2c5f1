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
	"fmt"
)

// Position defines a row/column within a Solidity source code string.
type Position struct {
	// offset, starting at 0
	Offset int
	// line number, starting at 1
	Line int
	// column number, starting at 0 (byte count)
	Column int
}

var EmptyPosition = Position{}

func NewPosition(offset, line, column int) Position {
	return Position{
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

// Shifted returns a new position with the offset and the column
// moved by the given length. The line stays the same.
func (position Position) Shifted(length int) Position {
	return Position{
		Line:   position.Line,
		Offset: position.Offset + length,
		Column: position.Column + length,
	}
}

func (position Position) String() string {
	return fmt.Sprintf(
		"%d(%d:%d)",
		position.Offset,
		position.Line,
		position.Column,
	)
}

func (position Position) Compare(other Position) int {
	switch {
	case position.Offset < other.Offset:
		return -1
	case position.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

func EndPosition(startPosition Position, end int) Position {
	length := end - startPosition.Offset
	return startPosition.Shifted(length)
}

// HasPosition is implemented by all elements which have a source range.
// The end position is inclusive: it is the position of the last character.
type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}

// Range

type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

func NewRange(startPos, endPos Position) Range {
	return Range{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

func NewRangeFromPositioned(hasPosition HasPosition) Range {
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(),
	}
}

func (e Range) StartPosition() Position {
	return e.StartPos
}

func (e Range) EndPosition() Position {
	return e.EndPos
}

// Source returns the part of the input covered by the range.
func (e Range) Source(input []byte) []byte {
	startOffset := e.StartPos.Offset
	endOffset := e.EndPos.Offset + 1

	length := len(input)
	if endOffset > length {
		endOffset = length
	}
	if startOffset > endOffset {
		return nil
	}

	return input[startOffset:endOffset]
}

// AttachLeft returns the range, with the start extended to the left
// over any spaces and tabs preceding it on the same line.
func (e Range) AttachLeft(code string) Range {
	offset := e.StartPos.Offset
	if offset > len(code) {
		return e
	}

	for offset > 0 {
		c := code[offset-1]
		if c != ' ' && c != '\t' {
			break
		}
		offset--
	}

	shift := e.StartPos.Offset - offset
	e.StartPos = Position{
		Offset: offset,
		Line:   e.StartPos.Line,
		Column: e.StartPos.Column - shift,
	}
	return e
}
