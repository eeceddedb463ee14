package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ApplyOverrides assigns "key=value" pairs into doc.
//
// Values are parsed as YAML scalars, so "cuda_device=0" stores an integer and
// "fast5_dir=/raw/{cell}" a string. A dotted key such as "profile.fast.cfg"
// creates intermediate mappings as needed.
func ApplyOverrides(doc map[string]any, overrides []string) error {
	for _, ov := range overrides {
		key, raw, ok := strings.Cut(ov, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return &InvalidConfigError{Key: ov, Reason: "override must be KEY=VALUE"}
		}

		if err := setPath(doc, strings.Split(key, "."), parseScalar(raw)); err != nil {
			return err
		}
	}
	return nil
}

func parseScalar(raw string) any {
	if raw == "" {
		return ""
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case nil, map[string]any, map[any]any, []any:
		// Structured or null values are taken literally.
		return raw
	}
	return v
}

func setPath(doc map[string]any, path []string, value any) error {
	m := doc
	for i, part := range path[:len(path)-1] {
		next, ok := m[part]
		if !ok || next == nil {
			child := map[string]any{}
			m[part] = child
			m = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return &InvalidConfigError{
				Key:    strings.Join(path[:i+1], "."),
				Reason: fmt.Sprintf("cannot set nested key in %T", next),
			}
		}
		m = child
	}
	m[path[len(path)-1]] = value
	return nil
}
