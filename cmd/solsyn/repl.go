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
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/onflow/solsyn/ast"
	"github.com/onflow/solsyn/parser"
)

func runREPL(config cliConfig) {
	printREPLWelcome()

	lineNumber := 1
	lineIsContinuation := false
	code := ""

	executor := func(line string) {
		defer func() {
			lineNumber++
		}()

		if code == "" && strings.HasPrefix(line, ".") {
			handleCommand(line)
			return
		}

		// Prefix the code with empty lines,
		// so that error messages match current line number

		if code == "" {
			code = strings.Repeat("\n", lineNumber-1)
		}

		code += line + "\n"

		if isIncomplete([]byte(code), config) {
			lineIsContinuation = true
			return
		}

		lineIsContinuation = false

		var output bytes.Buffer
		if run(&output, os.Stderr, nil, []byte(code), config) {
			result := output.String()
			if config.Output.Color {
				result = colorizeResult(result)
			}
			fmt.Print(result)
		}

		code = ""
	}

	keywords := parser.Keywords()

	suggest := func(d prompt.Document) []prompt.Suggest {
		word := d.GetWordBeforeCursor()
		if len(word) == 0 {
			return nil
		}

		suggests := make([]prompt.Suggest, 0, len(keywords))
		for _, keyword := range keywords {
			suggests = append(suggests, prompt.Suggest{
				Text: keyword,
			})
		}

		return prompt.FilterHasPrefix(suggests, word, false)
	}

	changeLivePrefix := func() (string, bool) {
		separator := '>'
		if lineIsContinuation {
			separator = '.'
		}

		return fmt.Sprintf("%d%c ", lineNumber, separator), true
	}

	options := []prompt.Option{
		prompt.OptionLivePrefix(changeLivePrefix),
	}
	prompt.New(executor, suggest, options...).Run()
}

// isIncomplete reports whether the given code is the beginning of a declaration,
// i.e. parsing failed at the end of the input
func isIncomplete(code []byte, config cliConfig) bool {
	_, err := parser.ParseDeclarations(code, config.parserConfig())
	if err == nil {
		return false
	}

	var parseErr parser.Error
	if !errors.As(err, &parseErr) || len(parseErr.Errors) == 0 {
		return false
	}

	positioned, ok := parseErr.Errors[0].(ast.HasPosition)
	if !ok {
		return false
	}

	end := len(bytes.TrimRight(code, " \t\r\n"))
	return positioned.StartPosition().Offset >= end
}

const replHelpMessage = `
Enter function, struct and state variable declarations
to print their signatures.
Commands are prefixed with a dot. Valid commands are:

.exit     Exit the REPL
.help     Print this help message

Press ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

func handleCommand(command string) {
	switch command {
	case ".exit":
		os.Exit(0)
	case ".help":
		fmt.Println(replHelpMessage)
	default:
		fmt.Println(colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
}

func printREPLWelcome() {
	fmt.Printf("Welcome to solsyn!\n%s\n\n", replAssistanceMessage)
}
