package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/ontbc-go/pkg/ontbc/models"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/shell"
)

// Load reads the configuration document at path, applies overrides and decodes
// the keys used for cell resolution.
func Load(path string, opts Options) (*models.GlobalConfig, error) {
	logger := opts.logger()

	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && opts.AllowMissing:
		logger.Debug("no config file, using empty config", "path", path)
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		format, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		doc, err = Decode(data, format)
		if err != nil {
			return nil, fmt.Errorf("error loading config from %s: %w", path, err)
		}
		logger.Debug("loaded config", "path", path, "format", format)
	}

	if err := ApplyOverrides(doc, opts.Overrides); err != nil {
		return nil, err
	}

	cfg, err := FromMap(doc)
	if err != nil {
		return nil, err
	}

	if opts.ExpandEnv {
		env := opts.Env
		if env == nil {
			env = shell.OSEnv()
		}
		if err := expandPaths(cfg, env); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// expandPaths expands variables in the path-like values that reach the resolver.
// tempdir is left alone; the temp path builder expands it when used.
func expandPaths(cfg *models.GlobalConfig, env shell.Env) error {
	if cfg.Fast5Dir != nil {
		v, err := shell.Expand(*cfg.Fast5Dir, env)
		if err != nil {
			return fmt.Errorf("expand %s: %w", models.KeyFast5Dir, err)
		}
		cfg.Fast5Dir = &v
	}

	for name, profile := range cfg.Profiles {
		dir, ok := profile.String(models.ProfileKeyGuppyDir)
		if !ok {
			continue
		}
		v, err := shell.Expand(dir, env)
		if err != nil {
			return fmt.Errorf("expand %s.%s.%s: %w", models.KeyProfile, name, models.ProfileKeyGuppyDir, err)
		}
		expanded := profile.Clone()
		expanded[models.ProfileKeyGuppyDir] = v
		cfg.Profiles[name] = expanded
	}

	return nil
}

// FromMap decodes the recognized keys of a configuration document.
// Absent or null keys stay nil. Scalars are rendered as strings.
func FromMap(doc map[string]any) (*models.GlobalConfig, error) {
	cfg := &models.GlobalConfig{Raw: doc}

	var err error
	if cfg.Fast5Dir, err = scalar(doc, models.KeyFast5Dir); err != nil {
		return nil, err
	}
	if cfg.DefaultProfile, err = scalar(doc, models.KeyDefaultProfile); err != nil {
		return nil, err
	}
	if cfg.TempDir, err = scalar(doc, models.KeyTempDir); err != nil {
		return nil, err
	}
	if cfg.CudaDevice, err = deviceList(doc); err != nil {
		return nil, err
	}

	section, ok := doc[models.KeyProfile]
	if !ok || section == nil {
		return cfg, nil
	}
	profiles, ok := section.(map[string]any)
	if !ok {
		return nil, &InvalidConfigError{Key: models.KeyProfile, Reason: fmt.Sprintf("expected a mapping, got %T", section)}
	}

	cfg.Profiles = make(map[string]models.ProfileDict, len(profiles))
	for name, entry := range profiles {
		fields, ok := entry.(map[string]any)
		if !ok {
			return nil, &InvalidConfigError{
				Key:    models.KeyProfile + "." + name,
				Reason: fmt.Sprintf("expected a mapping, got %T", entry),
			}
		}
		cfg.Profiles[name] = models.ProfileDict(fields)
	}

	return cfg, nil
}

func scalar(doc map[string]any, key string) (*string, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch t := v.(type) {
	case map[string]any, []any:
		return nil, &InvalidConfigError{Key: key, Reason: fmt.Sprintf("expected a scalar, got %T", t)}
	case string:
		return &t, nil
	default:
		s := fmt.Sprint(t)
		return &s, nil
	}
}

// deviceList accepts cuda_device as "0,1", 0, or [0, 1].
func deviceList(doc map[string]any) (*string, error) {
	v, ok := doc[models.KeyCudaDevice]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return scalar(doc, models.KeyCudaDevice)
	}
	s := ""
	for i, item := range list {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprint(item)
	}
	return &s, nil
}
