// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

// Package schema provides the project model types produced by compiling a
// literate document.
package schema

import (
	"maps"
	"slices"
	"strings"
)

// ExecutionEnvironment is one point in the build matrix: an ordered list of
// labels plus the environment variables attached after matrix expansion.
//
// Environments are value objects. Label order reflects declaration order and
// is used for display, never for matching or identity.
type ExecutionEnvironment struct {
	labels    []string
	variables map[string]string
	wildcard  bool
}

// NewEnvironment creates an environment with the given labels and no variables
func NewEnvironment(labels ...string) ExecutionEnvironment {
	return ExecutionEnvironment{labels: slices.Clone(labels)}
}

// Any returns the wildcard environment used to resolve environment-agnostic
// command lists such as tasks
func Any() ExecutionEnvironment {
	return ExecutionEnvironment{wildcard: true}
}

// IsWildcard reports whether the environment is the wildcard
func (e ExecutionEnvironment) IsWildcard() bool { return e.wildcard }

// Labels returns the environment's labels in declaration order
func (e ExecutionEnvironment) Labels() []string {
	return slices.Clone(e.labels)
}

// HasLabel reports whether label is one of the environment's labels
func (e ExecutionEnvironment) HasLabel(label string) bool {
	return slices.Contains(e.labels, label)
}

// Variables returns the environment variables attached to the environment
func (e ExecutionEnvironment) Variables() map[string]string {
	if e.variables == nil {
		return map[string]string{}
	}
	return maps.Clone(e.variables)
}

// WithVariables returns a copy of the environment carrying the given variables
func (e ExecutionEnvironment) WithVariables(vars map[string]string) ExecutionEnvironment {
	clone := e
	clone.variables = maps.Clone(vars)
	return clone
}

// Prefixed returns a copy of the environment with label prepended to its
// label list, used when a mapping level adds a label dimension during
// matrix expansion
func (e ExecutionEnvironment) Prefixed(label string) ExecutionEnvironment {
	clone := e
	clone.labels = append([]string{label}, e.labels...)
	return clone
}

// Equal reports whether two environments are the same point in the matrix.
//
// Label order is not part of identity, only the label set and the variable
// mapping are compared.
func (e ExecutionEnvironment) Equal(o ExecutionEnvironment) bool {
	return e.wildcard == o.wildcard && e.key() == o.key()
}

// key returns a canonical identity string, used as the lookup key when
// merging per-environment command lists
func (e ExecutionEnvironment) key() string {
	labels := slices.Clone(e.labels)
	slices.Sort(labels)
	labels = slices.Compact(labels)

	vars := make([]string, 0, len(e.variables))
	for k, v := range e.variables {
		vars = append(vars, k+"="+v)
	}
	slices.Sort(vars)

	var sb strings.Builder
	if e.wildcard {
		sb.WriteString("*")
	}
	sb.WriteString(strings.Join(labels, "\x00"))
	sb.WriteString("\x01")
	sb.WriteString(strings.Join(vars, "\x00"))
	return sb.String()
}

// String renders the environment for humans, e.g. "[linux, go1.25]".
// The label-less default environment renders as "default".
func (e ExecutionEnvironment) String() string {
	if e.wildcard {
		return "any"
	}
	if len(e.labels) == 0 {
		return "default"
	}
	return "[" + strings.Join(e.labels, ", ") + "]"
}
