// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package compiler

import (
	"github.com/literate-tools/literate/document"
	"github.com/literate-tools/literate/schema"
)

// ExpandEnvironments expands the environments section of a document into the
// ordered list of execution environments forming the build matrix.
//
// The section's shape is ambiguous by design: a list can mean one environment
// with several labels, or several single-label alternatives. Nesting depth
// disambiguates, see expandList.
func ExpandEnvironments(value document.Value) []schema.ExecutionEnvironment {
	return expand(value, 0)
}

func expand(value document.Value, depth int) []schema.ExecutionEnvironment {
	switch value.Kind() {
	case document.KindMapping:
		// each mapping level adds one label dimension: expand every entry's
		// value one level deeper and prepend the key to each result
		var environments []schema.ExecutionEnvironment
		for _, entry := range value.Entries() {
			for _, sub := range expand(entry.Value, depth+1) {
				environments = append(environments, sub.Prefixed(entry.Key))
			}
		}
		return environments
	case document.KindSequence:
		return expandList(value.Items(), depth)
	case document.KindScalar:
		return []schema.ExecutionEnvironment{schema.NewEnvironment(value.Text())}
	default:
		// absent or unrecognized: a single label-less default environment
		return []schema.ExecutionEnvironment{schema.NewEnvironment()}
	}
}

func expandList(items []document.Value, depth int) []schema.ExecutionEnvironment {
	// Depth-0 exception: a flat list of strings at the top level denotes ONE
	// environment carrying all the labels, not a list of alternatives. Any
	// non-string element, or any nesting depth below the top level, makes
	// this a complex list of alternatives. Do not "simplify" this into
	// depth-independent behavior, existing documents rely on it.
	simple := depth == 0
	labels := make([]string, 0, len(items))
	for _, item := range items {
		if item.Kind() == document.KindScalar {
			labels = append(labels, item.Text())
		} else {
			simple = false
		}
	}

	if simple {
		// an empty list is vacuously simple and yields one label-less
		// environment
		return []schema.ExecutionEnvironment{schema.NewEnvironment(labels...)}
	}

	return expandAlternatives(items)
}

// expandAlternatives treats each element as an independent environment: a
// string yields a single-label environment, a nested list yields one
// environment labeled with its string contents (one level only, never
// re-expanded), anything else is skipped.
func expandAlternatives(items []document.Value) []schema.ExecutionEnvironment {
	var environments []schema.ExecutionEnvironment
	for _, item := range items {
		switch item.Kind() {
		case document.KindSequence:
			labels := make([]string, 0, len(item.Items()))
			for _, sub := range item.Items() {
				if sub.Kind() == document.KindScalar {
					labels = append(labels, sub.Text())
				}
			}
			environments = append(environments, schema.NewEnvironment(labels...))
		case document.KindScalar:
			environments = append(environments, schema.NewEnvironment(item.Text()))
		}
	}
	return environments
}
