package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// scenarioSchema is the JSON Schema every scenario document is checked
// against before decoding. YAML documents are converted to JSON first.
const scenarioSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["profiles"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string"},
    "description": {"type": "string"},
    "profiles": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "additionalProperties": false,
        "properties": {
          "type": {
            "enum": ["burst", "ramp", "constant-rate", "idle", "ramp-rate", "stepped-ramps"]
          },
          "users": {"type": "integer"},
          "duration": {"type": "string"},
          "rate": {"type": "number"},
          "startRate": {"type": "number"},
          "endRate": {"type": "number"},
          "totalUsers": {"type": "integer"},
          "usersPerRamp": {"type": "integer"},
          "rampDuration": {"type": "string"},
          "pauseDuration": {"type": "string"}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("scenario.json", scenarioSchema)

// LoadScenario loads a scenario configuration from a file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
//
// The document is schema-checked, decoded, and validated before returning.
func LoadScenario(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	return ParseScenario(data, path)
}

// ParseScenario parses scenario data.
//
// The format is determined by the file extension in path; anything but
// .json is treated as YAML.
func ParseScenario(data []byte, path string) (*ScenarioConfig, error) {
	isJSON := strings.ToLower(filepath.Ext(path)) == ".json"

	if err := checkSchema(data, isJSON); err != nil {
		return nil, err
	}

	var cfg ScenarioConfig
	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON scenario: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML scenario: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// checkSchema validates the raw document against the embedded schema.
// YAML input is decoded generically and round-tripped through JSON so one
// schema covers both formats.
func checkSchema(data []byte, isJSON bool) error {
	var doc interface{}
	if isJSON {
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse JSON scenario: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML scenario: %w", err)
		}
		// The schema library expects JSON-shaped values.
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to normalize scenario document: %w", err)
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("failed to normalize scenario document: %w", err)
		}
	}

	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("scenario does not match schema: %w", err)
	}
	return nil
}

// ParseDurationString parses a duration string with support for common
// formats.
//
// Supported formats:
//   - Standard Go duration: "30s", "2m", "1h30m", "500ms"
//   - Spelled-out units: "30 seconds", "2 minutes", "1 hour"
func ParseDurationString(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("duration cannot be empty")
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	// Handle spelled-out units like "30 seconds".
	normalized := strings.ToLower(s)
	normalized = strings.ReplaceAll(normalized, " ", "")

	replacements := []struct{ word, abbrev string }{
		{"milliseconds", "ms"},
		{"millisecond", "ms"},
		{"seconds", "s"},
		{"second", "s"},
		{"minutes", "m"},
		{"minute", "m"},
		{"hours", "h"},
		{"hour", "h"},
	}
	for _, r := range replacements {
		normalized = strings.ReplaceAll(normalized, r.word, r.abbrev)
	}

	d, err := time.ParseDuration(normalized)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}
