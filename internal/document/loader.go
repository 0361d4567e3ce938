package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the encoding from a file extension: .yaml and .yml are
// YAML, anything else is text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// LoadFile loads and parses an almanac document from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac file %s: %w", path, err)
	}

	f, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*File, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(data)
	case FormatText:
		return ParseText(data)
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
}

// ParseYAML parses YAML data into a File.
func ParseYAML(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Start == "" {
		f.Start = DefaultStart
	}

	if f.Target == "" {
		f.Target = DefaultTarget
	}
}

// MarshalYAML serializes a File to YAML.
func MarshalYAML(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Marshal serializes f in the given format.
func Marshal(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return MarshalYAML(f)
	case FormatText:
		return RenderText(f), nil
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
}

// WriteFile writes f to the given path, encoded according to its extension.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f, DetectFormat(path))
	if err != nil {
		return fmt.Errorf("failed to marshal almanac: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write almanac file %s: %w", path, err)
	}

	return nil
}
