// Package config loads the global pipeline configuration document.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/ontbc-go/pkg/ontbc/shell"
)

// Format is a configuration document syntax.
type Format string

const (
	// FormatYAML is selected by the .yaml and .yml suffixes.
	FormatYAML Format = "yaml"
	// FormatJSON is selected by the .json suffix.
	FormatJSON Format = "json"
	// FormatTOML is selected by the .toml suffix.
	FormatTOML Format = "toml"
)

var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrUnsupportedConfigFormat indicates a configuration file with an unrecognized suffix.
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

// InvalidConfigError is returned when a recognized key has the wrong shape.
type InvalidConfigError struct {
	Key    string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config key %q: %s", e.Key, e.Reason)
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Options controls loading.
type Options struct {
	// AllowMissing returns an empty configuration when the file does not exist.
	AllowMissing bool
	// Overrides are "key=value" assignments applied after decoding. Dotted keys address nested mappings.
	Overrides []string
	// ExpandEnv expands variables in fast5_dir and in each profile's guppy_dir.
	ExpandEnv bool
	// Env is used by ExpandEnv. Nil uses the process environment.
	Env shell.Env
	// Logger receives debug output. If nil, nothing is logged.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// FormatFromPath selects the document format from the file suffix.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, path)
	}
}

// Decode parses a configuration document into a generic mapping.
// Nested mappings are normalized to map[string]any.
func Decode(data []byte, format Format) (map[string]any, error) {
	doc := map[string]any{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		if len(strings.TrimSpace(string(data))) > 0 {
			err = json.Unmarshal(data, &doc)
		}
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s config: %w", format, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	normalized, _ := normalize(doc).(map[string]any)
	return normalized, nil
}

// normalize converts map[any]any values produced by the YAML decoder to map[string]any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
