package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/default.json
var defaultDocument []byte

// Format identifies the encoding of a content document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks a format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported content file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

var (
	defaultOnce    sync.Once
	defaultContent *Content
	defaultErr     error
)

// Default returns the built-in question set and result table.
// The returned value is shared and must not be modified.
func Default() (*Content, error) {
	defaultOnce.Do(func() {
		defaultContent, defaultErr = Parse(defaultDocument, FormatJSON)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("built-in content: %w", defaultErr)
		}
	})
	return defaultContent, defaultErr
}

// LoadFile reads, validates and returns a content document from disk.
func LoadFile(path string) (*Content, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	c, err := Parse(data, format)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Source = path
			return nil, verr
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load returns the content at path, or the built-in set when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes data, checks it against the document schema and then
// against the semantic rules in Validate.
func Parse(data []byte, format Format) (*Content, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(raw); err != nil {
		return nil, &ValidationError{Issues: []string{err.Error()}}
	}

	var c Content
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// toJSON normalises a document to JSON so both encodings share one
// schema check.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml to json: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unknown content format %q", format)
	}
}
