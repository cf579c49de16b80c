/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package prcheck

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/dynatrace/feature-toggles/internal/files"
	jsonutils "github.com/dynatrace/feature-toggles/internal/json"
	"github.com/dynatrace/feature-toggles/internal/log"
)

// DefaultConfigFile is read by LoadConfig if present and no other file is given.
const DefaultConfigFile = ".prcheck.yaml"

// Check is a single named command of a PR check run.
type Check struct {
	// Name is shown in the report
	Name string `yaml:"name" json:"name" jsonschema:"required"`
	// Command is run by a POSIX shell in the working directory
	Command string `yaml:"command" json:"command" jsonschema:"required"`
	// ShowOutput prints the standard output of the command even if it succeeds
	ShowOutput bool `yaml:"showOutput,omitempty" json:"showOutput,omitempty"`
}

// Config defines a PR check run.
type Config struct {
	// Setup is run before all checks. If it fails a warning is printed and the checks run anyway.
	Setup string `yaml:"setup,omitempty" json:"setup,omitempty"`
	// Parallel limits how many checks run at once. 0 runs all checks at once.
	Parallel int `yaml:"parallel,omitempty" json:"parallel,omitempty" jsonschema:"minimum=0"`
	// Checks are run concurrently and reported in this order
	Checks []Check `yaml:"checks" json:"checks" jsonschema:"required"`
}

// DefaultConfig returns the checks every change has to pass.
func DefaultConfig() Config {
	return Config{
		Setup: "go mod download",
		Checks: []Check{
			{Name: "Type checking", Command: "go vet ./..."},
			{Name: "Code linting", Command: "golangci-lint run"},
			{Name: "Code formatting", Command: `test -z "$(gofmt -l .)"`},
			{Name: "Unit tests", Command: "go test -tags unit ./..."},
			{Name: "Build verification", Command: "go build ./..."},
			{Name: "Feature flags validation", Command: "go run ./cmd/toggles validate", ShowOutput: true},
		},
	}
}

// LoadConfig reads the check configuration from path. If path is empty, DefaultConfigFile is used if it exists and
// DefaultConfig otherwise.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	if path == "" {
		exists, err := files.DoesFileExist(fs, DefaultConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("failed to access %q: %w", DefaultConfigFile, err)
		}
		if !exists {
			log.Debug("No %s found, using default checks", DefaultConfigFile)
			return DefaultConfig(), nil
		}
		path = DefaultConfigFile
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read PR check config %q: %w", path, err)
	}

	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse PR check config %q: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid PR check config %q: %w", path, err)
	}

	log.Debug("Loaded %d checks from %s", len(c.Checks), path)
	return c, nil
}

// Validate ensures every check has a unique name and a command.
func (c Config) Validate() error {
	if len(c.Checks) == 0 {
		return errors.New("no checks defined")
	}
	if c.Parallel < 0 {
		return fmt.Errorf("parallel must not be negative, got %d", c.Parallel)
	}

	seen := map[string]struct{}{}
	var errs []error
	for i, ch := range c.Checks {
		if ch.Name == "" {
			errs = append(errs, fmt.Errorf("check %d has no name", i+1))
		}
		if ch.Command == "" {
			errs = append(errs, fmt.Errorf("check %q has no command", ch.Name))
		}
		if _, dup := seen[ch.Name]; dup && ch.Name != "" {
			errs = append(errs, fmt.Errorf("check %q is defined more than once", ch.Name))
		}
		seen[ch.Name] = struct{}{}
	}
	return errors.Join(errs...)
}

// GenerateJSONSchema returns the JSON schema of the PR check configuration file.
func GenerateJSONSchema() ([]byte, error) {
	return jsonutils.GenerateJSONSchemaString(Config{})
}
