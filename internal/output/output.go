package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mj1618/keycycle/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat converts a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, "":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use yaml or json)", s)
	}
}

// ListResult is the top-level output of the `list` command.
type ListResult struct {
	Pattern string         `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Backend string         `yaml:"backend,omitempty" json:"backend,omitempty"`
	Windows []model.Window `yaml:"windows"           json:"windows"`
}

// CycleResult is the output of a single injected cycle.
type CycleResult struct {
	OK      bool     `yaml:"ok"              json:"ok"`
	Action  string   `yaml:"action"          json:"action"`
	Handle  uint64   `yaml:"hwnd"            json:"hwnd"`
	Title   string   `yaml:"title,omitempty" json:"title,omitempty"`
	Keys    []string `yaml:"keys"            json:"keys"`
	Elapsed string   `yaml:"elapsed"         json:"elapsed"`
	Error   string   `yaml:"error,omitempty" json:"error,omitempty"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// YAMLString serializes v to a YAML document string, for tool results.
func YAMLString(v interface{}) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("yaml encode: %w", err)
	}
	return string(b), nil
}
