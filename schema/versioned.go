// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

package schema

// Versioned is a tiny struct used to grab the schema version of a YAML file
// before decoding the rest of it
type Versioned struct {
	// SchemaVersion is the schema that the file follows
	SchemaVersion string `json:"schema-version"`
}
