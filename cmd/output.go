// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
)

// OutputFormat selects how a compiled model is rendered
type OutputFormat string

var _ pflag.Value = (*OutputFormat)(nil)

const (
	// OutputText renders a styled human-readable listing
	OutputText OutputFormat = "text"
	// OutputJSON renders the model as indented JSON
	OutputJSON OutputFormat = "json"
	// OutputYAML renders the model as YAML
	OutputYAML OutputFormat = "yaml"
)

// AvailableFormats returns a list of available output formats
func AvailableFormats() []string {
	return []string{
		string(OutputText),
		string(OutputJSON),
		string(OutputYAML),
	}
}

// String implements the pflag.Value and fmt.Stringer interfaces
func (o *OutputFormat) String() string {
	return string(*o)
}

// Set implements the pflag.Value interface
func (o *OutputFormat) Set(value string) error {
	switch value {
	case string(OutputText):
		*o = OutputText
	case string(OutputJSON):
		*o = OutputJSON
	case string(OutputYAML):
		*o = OutputYAML
	default:
		return fmt.Errorf("unsupported output format: %q", value)
	}
	return nil
}

// Type implements the pflag.Value interface
func (o *OutputFormat) Type() string {
	return "string"
}
