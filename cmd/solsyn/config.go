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
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/onflow/solsyn/parser"
)

type outputFormat string

const (
	outputFormatSignatures outputFormat = "signatures"
	outputFormatJSON       outputFormat = "json"
	outputFormatDump       outputFormat = "dump"
)

type parserConfig struct {
	NonPayableKeyword    bool `yaml:"nonpayable_keyword"`
	TypeDepthLimit       int  `yaml:"type_depth_limit"`
	ExpressionDepthLimit int  `yaml:"expression_depth_limit"`
}

type outputConfig struct {
	Format   outputFormat `yaml:"format"`
	Color    bool         `yaml:"color"`
	Indent   string       `yaml:"indent"`
	SortKeys bool         `yaml:"sort_keys"`
}

// cliConfig is the configuration of the command,
// read from an optional YAML file, e.g.
//
//	parser:
//	  nonpayable_keyword: true
//	  type_depth_limit: 16
//	output:
//	  format: json
//	  indent: "  "
type cliConfig struct {
	Parser parserConfig `yaml:"parser"`
	Output outputConfig `yaml:"output"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Output: outputConfig{
			Format: outputFormatSignatures,
			Indent: "  ",
		},
	}
}

// parseConfig decodes the given YAML configuration.
// Unset fields keep their default value, unknown fields are rejected.
func parseConfig(data []byte) (cliConfig, error) {
	config := defaultConfig()

	err := yaml.UnmarshalWithOptions(
		data,
		&config,
		yaml.DisallowUnknownField(),
	)
	if err != nil {
		return cliConfig{}, fmt.Errorf(
			"invalid configuration:\n%s",
			yaml.FormatError(err, false, true),
		)
	}

	config.applyDefaults()

	err = config.validate()
	if err != nil {
		return cliConfig{}, err
	}

	return config, nil
}

// applyDefaults sets the default values for unset output fields.
// Decoding an empty document resets the whole configuration.
func (c *cliConfig) applyDefaults() {
	defaults := defaultConfig()
	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
	if c.Output.Indent == "" {
		c.Output.Indent = defaults.Output.Indent
	}
}

// loadConfig reads the configuration from the given file.
// If no file is given, the default configuration is returned.
func loadConfig(path string) (cliConfig, error) {
	if path == "" {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cliConfig{}, err
	}

	return parseConfig(data)
}

func (c cliConfig) validate() error {
	switch c.Output.Format {
	case outputFormatSignatures,
		outputFormatJSON,
		outputFormatDump:
		// valid
	default:
		return fmt.Errorf(
			"invalid output format %q, expected one of: %s, %s, %s",
			c.Output.Format,
			outputFormatSignatures,
			outputFormatJSON,
			outputFormatDump,
		)
	}

	if c.Parser.TypeDepthLimit < 0 {
		return fmt.Errorf("invalid type depth limit: %d", c.Parser.TypeDepthLimit)
	}

	if c.Parser.ExpressionDepthLimit < 0 {
		return fmt.Errorf("invalid expression depth limit: %d", c.Parser.ExpressionDepthLimit)
	}

	return nil
}

func (c cliConfig) parserConfig() parser.Config {
	return parser.Config{
		NonPayableKeywordEnabled: c.Parser.NonPayableKeyword,
		TypeDepthLimit:           c.Parser.TypeDepthLimit,
		ExpressionDepthLimit:     c.Parser.ExpressionDepthLimit,
	}
}
