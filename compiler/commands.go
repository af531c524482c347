// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package compiler

import (
	"github.com/literate-tools/literate/document"
	"github.com/literate-tools/literate/schema"
)

// Commands extracts the ordered command list applicable to env from an
// arbitrary section value.
//
// A scalar is itself a single command regardless of environment. A sequence
// concatenates the extraction of its elements in order. A mapping keys
// commands by environment label: entries whose key is one of env's labels
// are extracted in document order, the rest are skipped. A mapping resolved
// against the wildcard environment contributes nothing, since label-keyed
// commands are meaningless without an environment. Every other shape
// contributes nothing.
func Commands(value document.Value, env schema.ExecutionEnvironment) []string {
	switch value.Kind() {
	case document.KindScalar:
		return []string{value.Text()}
	case document.KindSequence:
		commands := []string{}
		for _, item := range value.Items() {
			commands = append(commands, Commands(item, env)...)
		}
		return commands
	case document.KindMapping:
		if env.IsWildcard() {
			return []string{}
		}
		commands := []string{}
		for _, entry := range value.Entries() {
			if !env.HasLabel(entry.Key) {
				continue
			}
			commands = append(commands, Commands(entry.Value, env)...)
		}
		return commands
	default:
		return []string{}
	}
}
