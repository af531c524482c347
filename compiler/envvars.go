// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package compiler

import (
	"fmt"
	"maps"
	"strings"

	"github.com/literate-tools/literate/document"
)

// MergeEnvVars parses the envvars section of a document into a flat variable
// mapping.
//
// A scalar section is a whitespace-delimited list of KEY=VALUE tokens. A
// sequence section holds one such scalar per element; later elements
// overwrite earlier ones on key collision. A mapping section is resolved
// through its "global" sub-key using the same scalar and sequence rules.
// Any other shape, including an absent section, yields an empty mapping.
func MergeEnvVars(value document.Value) (map[string]string, error) {
	switch value.Kind() {
	case document.KindScalar, document.KindSequence:
		return mergeGlobal(value)
	case document.KindMapping:
		global, ok := value.Lookup("global")
		if !ok {
			return map[string]string{}, nil
		}
		return mergeGlobal(global)
	default:
		return map[string]string{}, nil
	}
}

func mergeGlobal(value document.Value) (map[string]string, error) {
	switch value.Kind() {
	case document.KindScalar:
		return parseVarSpec(value.Text())
	case document.KindSequence:
		vars := map[string]string{}
		for _, item := range value.Items() {
			if item.Kind() != document.KindScalar {
				return nil, fmt.Errorf("%w: variable lists may only contain strings, got a %s", ErrMalformedEnvSpec, item.Kind())
			}
			parsed, err := parseVarSpec(item.Text())
			if err != nil {
				return nil, err
			}
			// last write wins, in sequence order
			maps.Copy(vars, parsed)
		}
		return vars, nil
	default:
		return map[string]string{}, nil
	}
}

func parseVarSpec(spec string) (map[string]string, error) {
	vars := map[string]string{}
	for _, token := range strings.Fields(spec) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q must have format KEY=VALUE", ErrMalformedEnvSpec, token)
		}
		vars[key] = value
	}
	return vars, nil
}
