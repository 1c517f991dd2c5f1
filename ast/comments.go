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
	"bytes"
	"encoding/json"
	"strings"
)

// Comments are the comments attached to a declaration.
// Leading comments precede the declaration,
// and contain the NatSpec documentation (`///` and `/** */` comments).
type Comments struct {
	Leading []*Comment
}

// LeadingDocString returns the text of the leading doc comments,
// one line per comment
func (c Comments) LeadingDocString() string {
	var s strings.Builder
	for _, comment := range c.Leading {
		if comment.IsDoc() {
			if s.Len() > 0 {
				s.WriteRune('\n')
			}
			s.Write(bytes.TrimSpace(comment.Text()))
		}
	}
	return s.String()
}

type Comment struct {
	source []byte
}

func NewComment(source []byte) *Comment {
	return &Comment{
		source: source,
	}
}

var blockCommentDocStringPrefix = []byte("/**")
var blockCommentStringPrefix = []byte("/*")
var lineCommentDocStringPrefix = []byte("///")
var lineCommentStringPrefix = []byte("//")
var blockCommentStringSuffix = []byte("*/")

func (c Comment) Multiline() bool {
	return bytes.HasPrefix(c.source, blockCommentStringPrefix)
}

func (c Comment) IsDoc() bool {
	if c.Multiline() {
		// `/**/` is an empty block comment, not a doc comment
		return bytes.HasPrefix(c.source, blockCommentDocStringPrefix) &&
			!bytes.Equal(c.source, []byte("/**/"))
	} else {
		return bytes.HasPrefix(c.source, lineCommentDocStringPrefix)
	}
}

var commentPrefixes = [][]byte{
	blockCommentDocStringPrefix, // must be before blockCommentStringPrefix
	blockCommentStringPrefix,
	lineCommentDocStringPrefix, // must be before lineCommentStringPrefix
	lineCommentStringPrefix,
}

var commentSuffixes = [][]byte{
	blockCommentStringSuffix,
}

func (c Comment) String() string {
	return string(c.source)
}

// Text without opening/closing comment characters /*, /**, */, //
func (c Comment) Text() []byte {
	withoutPrefixes := cutOptionalPrefixes(c.source, commentPrefixes)
	return cutOptionalSuffixes(withoutPrefixes, commentSuffixes)
}

func cutOptionalPrefixes(input []byte, prefixes [][]byte) (output []byte) {
	output = input
	for _, prefix := range prefixes {
		cut, ok := bytes.CutPrefix(output, prefix)
		if ok {
			return cut
		}
	}
	return
}

func cutOptionalSuffixes(input []byte, suffixes [][]byte) (output []byte) {
	output = input
	for _, suffix := range suffixes {
		cut, _ := bytes.CutSuffix(output, suffix)
		output = cut
	}
	return
}

func (c Comments) MarshalJSON() ([]byte, error) {
	cj := struct {
		Leading []string `json:"Leading,omitempty"`
	}{}

	if len(c.Leading) > 0 {
		cj.Leading = make([]string, len(c.Leading))
		for i, comment := range c.Leading {
			cj.Leading[i] = comment.String()
		}
	}

	return json.Marshal(cj)
}
