// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Literate Tools Authors

// Package v0 provides the schema for v0 of the system config file for
// literate
//
// v0 allows for breaking changes without a major version increase
package v0

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	"github.com/spf13/afero"
	"github.com/xeipuuv/gojsonschema"

	"github.com/literate-tools/literate"
	"github.com/literate-tools/literate/config"
	"github.com/literate-tools/literate/schema"
)

// SchemaVersion is the current schema version for configs
const SchemaVersion = "v0"

// Config is the system configuration file for literate
//
// It carries the model request defaults: which marker base name to look for
// and which top-level document keys hold builds, environments, and variables
type Config struct {
	SchemaVersion   string `json:"schema-version"`
	BaseName        string `json:"base-name,omitempty"`
	BuildIDs        string `json:"build-ids,omitempty"`
	EnvironmentsKey string `json:"environments-key,omitempty"`
	EnvvarsKey      string `json:"envvars-key,omitempty"`
}

// JSONSchemaExtend extends the JSON schema for a config
func (Config) JSONSchemaExtend(s *jsonschema.Schema) {
	if schemaVersion, ok := s.Properties.Get("schema-version"); ok && schemaVersion != nil {
		schemaVersion.Description = "Config schema version"
		schemaVersion.Enum = []any{SchemaVersion}
		schemaVersion.AdditionalProperties = jsonschema.FalseSchema
	}
	if baseName, ok := s.Properties.Get("base-name"); ok && baseName != nil {
		baseName.Description = "Marker file base name, resolved as .<base-name>.yml"
	}
	if buildIDs, ok := s.Properties.Get("build-ids"); ok && buildIDs != nil {
		buildIDs.Description = "Comma or space delimited top-level keys treated as build commands"
	}
	if environmentsKey, ok := s.Properties.Get("environments-key"); ok && environmentsKey != nil {
		environmentsKey.Description = "Top-level key of the environments section"
	}
	if envvarsKey, ok := s.Properties.Get("envvars-key"); ok && envvarsKey != nil {
		envvarsKey.Description = "Top-level key of the environment variables section"
	}
}

// ToRequest converts the config into a model build request, leaving empty
// fields to their request defaults
func (c *Config) ToRequest() literate.Request {
	return literate.Request{
		BaseName:        c.BaseName,
		BuildIDs:        c.BuildIDs,
		EnvironmentsKey: c.EnvironmentsKey,
		EnvvarsKey:      c.EnvvarsKey,
	}
}

// LoadConfig loads and validates a configuration from a reader
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := &Config{SchemaVersion: SchemaVersion}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var versioned schema.Versioned
	if err := yaml.Unmarshal(data, &versioned); err != nil {
		return nil, err
	}

	switch version := versioned.SchemaVersion; version {
	case SchemaVersion:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		return cfg, Validate(cfg)
	default:
		return nil, fmt.Errorf("unsupported config schema version: expected %q, got %q", SchemaVersion, version)
	}
}

// LoadDefaultConfig loads the configuration from the default location,
// returning a valid "empty" config if no file exists there
func LoadDefaultConfig() (*Config, error) {
	dir, err := config.DefaultDirectory()
	if err != nil {
		return nil, err
	}

	fsys := afero.NewOsFs()
	f, err := fsys.Open(filepath.Join(dir, config.DefaultFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{SchemaVersion: SchemaVersion}, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Since every validation operation leverages the same schema, only calculate
// it once
var schemaOnce = sync.OnceValues(func() (string, error) {
	s := Schema()
	b, err := json.Marshal(s)
	return string(b), err
})

// Validate checks if a config adheres to the JSON schema
func Validate(cfg *Config) error {
	s, err := schemaOnce()
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(s)

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(cfg))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	var resErr error
	for _, err := range result.Errors() {
		resErr = errors.Join(resErr, errors.New(err.String()))
	}

	return resErr
}

// Schema returns the JSON schema for the Config type
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Config{})
}
