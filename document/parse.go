// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package document

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cast"
)

// Parse decodes a YAML document into a Value tree.
//
// Mapping entry order follows the source document. Scalars that are not
// strings, and any YAML shape outside of mappings, sequences, and strings,
// decode to the zero Value.
func Parse(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, err
	}

	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return Value{}, fmt.Errorf("failed to parse document: %w", err)
	}

	return fromYAML(raw), nil
}

func fromYAML(raw any) Value {
	switch t := raw.(type) {
	case yaml.MapSlice:
		entries := make([]Entry, 0, len(t))
		for _, item := range t {
			key, err := cast.ToStringE(item.Key)
			if err != nil {
				// keys that cannot name a label or task are unusable
				continue
			}
			entries = append(entries, Entry{Key: key, Value: fromYAML(item.Value)})
		}
		return Mapping(entries...)
	case []any:
		items := make([]Value, 0, len(t))
		for _, elem := range t {
			items = append(items, fromYAML(elem))
		}
		return Sequence(items...)
	case string:
		return Scalar(t)
	default:
		return Value{}
	}
}
