// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Job     string `json:"job,omitempty" validate:"omitempty,file"`    // Path to job description text file
	Resumes string `json:"resumes,omitempty" validate:"omitempty,dir"` // Directory of resume files to screen
	Output  string `json:"output,omitempty"`                           // Path for the result JSON artifact
	CSV     string `json:"csv,omitempty"`                              // Path for the CSV report

	// Models
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	AnnotatorModel string `json:"annotator_model,omitempty"` // Annotator model name
	NoAnnotator    bool   `json:"no_annotator,omitempty"`    // Disable the linguistic annotator

	// Behavior
	Workers int  `json:"workers,omitempty" validate:"omitempty,min=1,max=64"` // Concurrent document workers
	Verbose bool `json:"verbose,omitempty"`                                   // Print detailed progress information
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; those are enforced by CLI flag
// validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("config error: field %q failed %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Resumes == "" {
		result.Resumes = defaults.Resumes
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.CSV == "" {
		result.CSV = defaults.CSV
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.AnnotatorModel == "" {
		result.AnnotatorModel = defaults.AnnotatorModel
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
