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

package parser

import (
	"slices"

	"github.com/SaveTheRbtz/mph"

	"github.com/onflow/solsyn/ast"
)

// NOTE: ensure to update allKeywords when adding a new keyword
const (
	KeywordFunction   = "function"
	KeywordReturns    = "returns"
	KeywordStruct     = "struct"
	KeywordMapping    = "mapping"
	KeywordMemory     = "memory"
	KeywordStorage    = "storage"
	KeywordCalldata   = "calldata"
	KeywordExternal   = "external"
	KeywordPublic     = "public"
	KeywordInternal   = "internal"
	KeywordPrivate    = "private"
	KeywordPure       = "pure"
	KeywordView       = "view"
	KeywordPayable    = "payable"
	KeywordNonPayable = "nonpayable"
	KeywordVirtual    = "virtual"
	KeywordOverride   = "override"
	KeywordImmutable  = "immutable"
	KeywordConstant   = "constant"
	KeywordTrue       = "true"
	KeywordFalse      = "false"
	KeywordContract   = "contract"
	KeywordInterface  = "interface"
	KeywordLibrary    = "library"
	KeywordModifier   = "modifier"
	KeywordEvent      = "event"
	KeywordEnum       = "enum"
	KeywordReturn     = "return"
	KeywordEmit       = "emit"
	KeywordNew        = "new"
	KeywordDelete     = "delete"
	KeywordIf         = "if"
	KeywordElse       = "else"
	KeywordFor        = "for"
	KeywordWhile      = "while"
	// NOTE: ensure to update allKeywords when adding a new keyword
)

var allKeywords = []string{
	KeywordFunction,
	KeywordReturns,
	KeywordStruct,
	KeywordMapping,
	KeywordMemory,
	KeywordStorage,
	KeywordCalldata,
	KeywordExternal,
	KeywordPublic,
	KeywordInternal,
	KeywordPrivate,
	KeywordPure,
	KeywordView,
	KeywordPayable,
	KeywordNonPayable,
	KeywordVirtual,
	KeywordOverride,
	KeywordImmutable,
	KeywordConstant,
	KeywordTrue,
	KeywordFalse,
	KeywordContract,
	KeywordInterface,
	KeywordLibrary,
	KeywordModifier,
	KeywordEvent,
	KeywordEnum,
	KeywordReturn,
	KeywordEmit,
	KeywordNew,
	KeywordDelete,
	KeywordIf,
	KeywordElse,
	KeywordFor,
	KeywordWhile,
}

// Keywords returns all keywords, including soft keywords
func Keywords() []string {
	return slices.Clone(allKeywords)
}

// Keywords that can be used in identifier position without ambiguity.
var softKeywords = []string{
	KeywordNonPayable,
}

var softKeywordsTable = mph.Build(softKeywords)

// Keywords that aren't allowed in identifier position.
var hardKeywords = filter(
	allKeywords,
	func(keyword string) bool {
		_, ok := softKeywordsTable.Lookup(keyword)
		return !ok
	},
)

var hardKeywordsTable = mph.Build(hardKeywords)

func filter[T comparable](items []T, f func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if f(item) {
			result = append(result, item)
		}
	}
	return result
}

func isHardKeyword(word string) bool {
	_, ok := hardKeywordsTable.Lookup(word)
	return ok
}

// NOTE: the keywords and the values must be in the same order

var visibilityKeywords = []string{
	KeywordExternal,
	KeywordPublic,
	KeywordInternal,
	KeywordPrivate,
}

var visibilities = []ast.Visibility{
	ast.VisibilityExternal,
	ast.VisibilityPublic,
	ast.VisibilityInternal,
	ast.VisibilityPrivate,
}

var visibilityKeywordsTable = mph.Build(visibilityKeywords)

func lookupVisibility(word string) (ast.Visibility, bool) {
	index, ok := visibilityKeywordsTable.Lookup(word)
	if !ok {
		return ast.VisibilityNotSpecified, false
	}
	return visibilities[index], true
}

// NOTE: `nonpayable` is only a mutability keyword
// if enabled in the configuration, see mutabilityKeywordsWithNonPayable

var mutabilityKeywords = []string{
	KeywordPure,
	KeywordView,
	KeywordPayable,
}

var mutabilityKeywordsWithNonPayable = []string{
	KeywordPure,
	KeywordView,
	KeywordPayable,
	KeywordNonPayable,
}

var mutabilities = []ast.Mutability{
	ast.MutabilityPure,
	ast.MutabilityView,
	ast.MutabilityPayable,
	ast.MutabilityNonPayable,
}

var mutabilityKeywordsTable = mph.Build(mutabilityKeywordsWithNonPayable)

func lookupMutability(word string, nonPayableEnabled bool) (ast.Mutability, bool) {
	index, ok := mutabilityKeywordsTable.Lookup(word)
	if !ok {
		return ast.MutabilityNotSpecified, false
	}
	mutability := mutabilities[index]
	if mutability == ast.MutabilityNonPayable && !nonPayableEnabled {
		return ast.MutabilityNotSpecified, false
	}
	return mutability, true
}

var storageLocationKeywords = []string{
	KeywordMemory,
	KeywordStorage,
	KeywordCalldata,
}

var storageLocations = []ast.StorageLocation{
	ast.StorageLocationMemory,
	ast.StorageLocationStorage,
	ast.StorageLocationCalldata,
}

var storageLocationKeywordsTable = mph.Build(storageLocationKeywords)

func lookupStorageLocation(word string) (ast.StorageLocation, bool) {
	index, ok := storageLocationKeywordsTable.Lookup(word)
	if !ok {
		return ast.StorageLocationNotSpecified, false
	}
	return storageLocations[index], true
}

// variableAttributeKeywords are the keywords which may be used
// as attributes of state variables, used for suggestions
var variableAttributeKeywords = []string{
	KeywordPublic,
	KeywordPrivate,
	KeywordInternal,
	KeywordExternal,
	KeywordConstant,
	KeywordImmutable,
	KeywordOverride,
}
