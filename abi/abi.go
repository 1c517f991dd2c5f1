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

// Package abi computes the Keccak-256 based identifiers of declarations:
// function selectors and EIP-712 struct type hashes.
package abi

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/onflow/solsyn/ast"
)

// Hash is a Keccak-256 hash
type Hash [32]byte

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// Selector is the first four bytes of the hash of a function signature
type Selector [4]byte

func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// Keccak256 returns the (legacy, pre-standard) Keccak-256 hash of the given data
func Keccak256(data ...[]byte) Hash {
	hasher := sha3.NewLegacyKeccak256()
	for _, d := range data {
		// the hash's Write never returns an error
		_, _ = hasher.Write(d)
	}

	var hash Hash
	hasher.Sum(hash[:0])
	return hash
}

// SignatureSelector returns the selector for the given canonical signature,
// e.g. `0xa9059cbb` for `transfer(address,uint256)`
func SignatureSelector(signature string) Selector {
	hash := Keccak256([]byte(signature))

	var selector Selector
	copy(selector[:], hash[:len(selector)])
	return selector
}

// FunctionSelector returns the selector of the given function declaration
func FunctionSelector(declaration *ast.FunctionDeclaration) Selector {
	return SignatureSelector(declaration.Signature())
}

// AccessorSelector returns the selector of the accessor function
// generated for the given public state variable
func AccessorSelector(declaration *ast.StateVariableDeclaration) Selector {
	return SignatureSelector(declaration.AccessorSignature())
}

// TypeHash returns the EIP-712 type hash of the given encoded type,
// e.g. `Permit(address owner,address spender,uint256 value,uint256 nonce,uint256 deadline)`
func TypeHash(encodedType string) Hash {
	return Keccak256([]byte(encodedType))
}

// StructTypeHash returns the EIP-712 type hash of the given struct declaration
func StructTypeHash(declaration *ast.StructDeclaration) Hash {
	return TypeHash(declaration.EncodeType())
}
