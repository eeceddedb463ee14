package models

import "fmt"

// Keys of the global configuration document read by the resolver and its collaborators.
const (
	KeyFast5Dir       = "fast5_dir"
	KeyDefaultProfile = "default_profile"
	KeyProfile        = "profile"
	KeyTempDir        = "tempdir"
	KeyCudaDevice     = "cuda_device"

	// ProfileKeyGuppyDir is the tool installation directory of a profile.
	ProfileKeyGuppyDir = "guppy_dir"
	// ProfileKeyCfg is the tool configuration name of a profile.
	ProfileKeyCfg = "cfg"
)

// CellPlaceholder is substituted with the cell identifier in the default FAST5 directory.
const CellPlaceholder = "{cell}"

// GlobalConfig is the pipeline configuration document with its recognized keys decoded.
type GlobalConfig struct {
	// Fast5Dir is the default FAST5 directory template (must contain CellPlaceholder).
	Fast5Dir *string
	// DefaultProfile is the profile used when a row does not name one.
	DefaultProfile *string
	// Profiles maps profile name to its parameters. Nil when the section is absent.
	Profiles map[string]ProfileDict
	// TempDir is the scratch directory root used by temp-path construction.
	TempDir *string
	// CudaDevice is a comma-separated list of candidate CUDA device indexes.
	CudaDevice *string
	// Raw is the whole decoded document, including keys not listed above.
	Raw map[string]any
}

// ProfileDict holds the parameters of one profile. Keys other than guppy_dir and cfg
// are opaque and forwarded unchanged.
type ProfileDict map[string]any

// String returns the value of key rendered as a string. Nil values count as absent.
func (p ProfileDict) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Clone returns a deep copy of the profile. Nested maps and lists are copied so
// the clone shares no mutable state with p.
func (p ProfileDict) Clone() ProfileDict {
	if p == nil {
		return nil
	}
	out := make(ProfileDict, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case ProfileDict:
		return t.Clone()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	default:
		return v
	}
}
