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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/k0kubun/pp/v3"
	jsonpretty "github.com/tidwall/pretty"

	"github.com/onflow/solsyn/abi"
	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/common"
	"github.com/onflow/solsyn/errors"
	"github.com/onflow/solsyn/parser"
	"github.com/onflow/solsyn/pretty"
)

// run parses the given code and writes the declarations to stdout,
// in the configured output format.
// Parsing errors are pretty-printed to stderr.
// It returns false if parsing failed.
func run(
	stdout io.Writer,
	stderr io.Writer,
	location common.Location,
	code []byte,
	config cliConfig,
) bool {
	declarations, err := parser.ParseDeclarations(code, config.parserConfig())
	if err != nil {
		if !errors.IsUserError(err) {
			panic(err)
		}

		printErr := pretty.NewErrorPrettyPrinter(stderr, config.Output.Color).
			PrettyPrintError(err, location, map[common.Location][]byte{location: code})
		if printErr != nil {
			panic(printErr)
		}
		return false
	}

	err = writeDeclarations(stdout, declarations, config.Output)
	if err != nil {
		panic(err)
	}

	return true
}

func writeDeclarations(w io.Writer, declarations []ast.Declaration, config outputConfig) error {
	switch config.Format {
	case outputFormatJSON:
		return writeJSON(w, declarations, config)
	case outputFormatDump:
		return writeDump(w, declarations, config)
	default:
		return writeSignatures(w, declarations, config)
	}
}

// writeSignatures writes one line per declaration which has an identifier in the ABI:
// the canonical signature of functions with their selector,
// the accessor signature of public state variables with their selector,
// and the encoded type of structs with their type hash.
func writeSignatures(w io.Writer, declarations []ast.Declaration, config outputConfig) error {
	tabWriter := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	writeRow := func(kind, signature, hash string) error {
		if config.Color {
			kind = colorizeKind(kind)
			hash = colorizeHash(hash)
		}
		_, err := fmt.Fprintf(tabWriter, "%s\t%s\t%s\n", kind, signature, hash)
		return err
	}

	for _, declaration := range declarations {
		var err error

		switch declaration := declaration.(type) {
		case *ast.FunctionDeclaration:
			err = writeRow(
				"function",
				declaration.Signature(),
				abi.FunctionSelector(declaration).String(),
			)

		case *ast.StateVariableDeclaration:
			if !declaration.HasAccessor() {
				continue
			}
			err = writeRow(
				"accessor",
				declaration.AccessorSignature(),
				abi.AccessorSelector(declaration).String(),
			)

		case *ast.StructDeclaration:
			err = writeRow(
				"struct",
				declaration.EncodeType(),
				abi.StructTypeHash(declaration).String(),
			)
		}

		if err != nil {
			return err
		}
	}

	return tabWriter.Flush()
}

func writeJSON(w io.Writer, declarations []ast.Declaration, config outputConfig) error {
	if declarations == nil {
		declarations = []ast.Declaration{}
	}

	data, err := json.Marshal(declarations)
	if err != nil {
		return err
	}

	data = jsonpretty.PrettyOptions(
		data,
		&jsonpretty.Options{
			Width:    80,
			Indent:   config.Indent,
			SortKeys: config.SortKeys,
		},
	)

	if config.Color {
		data = jsonpretty.Color(data, jsonpretty.TerminalStyle)
	}

	_, err = w.Write(data)
	return err
}

func writeDump(w io.Writer, declarations []ast.Declaration, config outputConfig) error {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(config.Color)
	printer.SetExportedOnly(true)

	_, err := printer.Println(declarations)
	return err
}
