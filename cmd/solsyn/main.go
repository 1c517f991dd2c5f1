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

// solsyn parses Solidity function, struct and state variable declarations,
// and prints their canonical signatures, selectors and type hashes,
// or their syntax tree.
//
// Usage:
//
//	solsyn [flags] [file ...]
//
// The declarations are read from standard input if no file is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/onflow/solsyn/common"
)

var configFlag = flag.String("config", "", "path to a YAML configuration file")
var jsonFlag = flag.Bool("json", false, "print the declarations as JSON")
var dumpFlag = flag.Bool("dump", false, "print the syntax tree of the declarations")
var colorFlag = flag.Bool("color", false, "colorize the output")
var nonPayableFlag = flag.Bool("nonpayable", false, "parse `nonpayable` as a mutability keyword")
var replFlag = flag.Bool("repl", false, "start an interactive session")

func main() {
	flag.Parse()

	config, err := loadConfig(*configFlag)
	if err != nil {
		exitWithError(err.Error())
	}

	// Flags which are set explicitly override the configuration file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "json":
			if *jsonFlag {
				config.Output.Format = outputFormatJSON
			}
		case "dump":
			if *dumpFlag {
				config.Output.Format = outputFormatDump
			}
		case "color":
			config.Output.Color = *colorFlag
		case "nonpayable":
			config.Parser.NonPayableKeyword = *nonPayableFlag
		}
	})

	if *replFlag {
		runREPL(config)
		return
	}

	args := flag.Args()

	succeeded := true

	if len(args) == 0 {
		code, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError(err.Error())
		}

		succeeded = run(os.Stdout, os.Stderr, nil, code, config)
	} else {
		for _, filename := range args {
			code, err := os.ReadFile(filename)
			if err != nil {
				exitWithError(err.Error())
			}

			location := common.StringLocation(filename)
			if !run(os.Stdout, os.Stderr, location, code, config) {
				succeeded = false
			}
		}
	}

	if !succeeded {
		os.Exit(1)
	}
}

func exitWithError(message string) {
	_, _ = fmt.Fprintln(os.Stderr, colorizeError(message))
	os.Exit(1)
}
