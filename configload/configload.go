// Package configload loads gate configuration patches from YAML or JSON
// settings files.
//
// Files are validated against a JSON Schema before being applied, so a typo
// in a threshold name or a value of the wrong type fails loudly at load time
// instead of silently gating with defaults:
//
//	patch, err := configload.Load("gate.yaml")
//	if err != nil {
//	    return err
//	}
//	gate.SetConfig(patch)
//
// All keys are optional; absent keys leave the corresponding threshold
// unchanged. The budget bounds are static and cannot be set from a file.
package configload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/navikit/director"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the settings file layout. Pointer fields distinguish
// "absent" from "zero".
type fileConfig struct {
	Budget              *int     `yaml:"budget" json:"budget"`
	ConfidenceThreshold *float64 `yaml:"confidence_threshold" json:"confidence_threshold"`
	ErrorWindow         *int     `yaml:"error_window" json:"error_window"`
	HardErrorMin        *int     `yaml:"hard_error_min" json:"hard_error_min"`
	NullGainWindow      *int     `yaml:"null_gain_window" json:"null_gain_window"`
	SmallBudgetTokens   *int     `yaml:"small_budget_tokens" json:"small_budget_tokens"`
	GateTimeSeconds     *float64 `yaml:"gate_time_seconds" json:"gate_time_seconds"`
}

const schemaJSON = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"budget":               {"type": "integer", "minimum": 1},
		"confidence_threshold": {"type": "number", "minimum": 0, "maximum": 1},
		"error_window":         {"type": "integer", "minimum": 1},
		"hard_error_min":       {"type": "integer", "minimum": 1},
		"null_gain_window":     {"type": "integer", "minimum": 1},
		"small_budget_tokens":  {"type": "integer", "minimum": 0},
		"gate_time_seconds":    {"type": "number", "exclusiveMinimum": 0}
	}
}`

var fileSchema = mustCompile(schemaJSON)

func mustCompile(src string) *jsonschema.Schema {
	data, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("gateconfig.json", data); err != nil {
		panic(err)
	}
	return c.MustCompile("gateconfig.json")
}

// Load reads a settings file and returns the corresponding config patch.
// The format is chosen by extension: .yaml/.yml or .json.
func Load(path string) (director.ConfigPatch, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return director.ConfigPatch{}, fmt.Errorf("configload: read %s: %w", path, err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return ParseYAML(raw)
	case ".json":
		return ParseJSON(raw)
	default:
		return director.ConfigPatch{}, fmt.Errorf("configload: unsupported extension %q", ext)
	}
}

// ParseYAML parses and validates YAML settings content.
func ParseYAML(raw []byte) (director.ConfigPatch, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return director.ConfigPatch{}, fmt.Errorf("configload: invalid YAML: %w", err)
	}
	if doc == nil {
		// Empty file: nothing to change.
		return director.ConfigPatch{}, nil
	}
	if err := validate(doc); err != nil {
		return director.ConfigPatch{}, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return director.ConfigPatch{}, fmt.Errorf("configload: invalid YAML: %w", err)
	}
	return fc.patch(), nil
}

// ParseJSON parses and validates JSON settings content.
func ParseJSON(raw []byte) (director.ConfigPatch, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return director.ConfigPatch{}, fmt.Errorf("configload: invalid JSON: %w", err)
	}
	if err := validate(doc); err != nil {
		return director.ConfigPatch{}, err
	}
	var fc fileConfig
	if err := json.Unmarshal(raw, &fc); err != nil {
		return director.ConfigPatch{}, fmt.Errorf("configload: invalid JSON: %w", err)
	}
	return fc.patch(), nil
}

// validate normalizes the decoded document through JSON and checks it
// against the settings schema. Going through JSON makes YAML and JSON
// documents validate identically.
func validate(doc any) error {
	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("configload: normalize settings: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("configload: normalize settings: %w", err)
	}
	if err := fileSchema.Validate(inst); err != nil {
		return fmt.Errorf("configload: invalid settings: %w", err)
	}
	return nil
}

func (f fileConfig) patch() director.ConfigPatch {
	p := director.ConfigPatch{
		Budget:              f.Budget,
		ConfidenceThreshold: f.ConfidenceThreshold,
		ErrorWindow:         f.ErrorWindow,
		HardErrorMin:        f.HardErrorMin,
		NullGainWindow:      f.NullGainWindow,
		SmallBudgetTokens:   f.SmallBudgetTokens,
	}
	if f.GateTimeSeconds != nil {
		d := time.Duration(*f.GateTimeSeconds * float64(time.Second))
		p.GateTime = &d
	}
	return p
}
