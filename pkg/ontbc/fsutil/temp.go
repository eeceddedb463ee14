// Package fsutil builds scratch paths for cell processing.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/ontbc-go/pkg/ontbc/models"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/shell"
)

// DefaultTempPrefix is prepended to the cell name when no prefix is given.
const DefaultTempPrefix = "ont_basecall/"

// ErrTempPathExists is the sentinel error wrapped by TempPathExistsError.
var ErrTempPathExists = errors.New("temporary path exists")

// TempPathExistsError is returned when the computed path already exists.
type TempPathExistsError struct {
	Path string
}

func (e *TempPathExistsError) Error() string {
	return fmt.Sprintf("temporary directory exists: %s", e.Path)
}

// Unwrap returns ErrTempPathExists for errors.Is() compatibility.
func (e *TempPathExistsError) Unwrap() error { return ErrTempPathExists }

// TempPathOptions controls temp path construction.
type TempPathOptions struct {
	// Prefix is placed before the cell name. Nil uses DefaultTempPrefix; an empty string means no prefix.
	Prefix *string
	// Suffix is placed after the cell name.
	Suffix string
	// ExistsOK allows returning a path that already exists.
	ExistsOK bool
	// Env expands variables in the configured tempdir. Nil uses the process environment.
	Env shell.Env
}

// TempPath returns "<tempdir>/<prefix><cell><suffix>" for the entry.
//
// The tempdir is the configured "tempdir" value after variable expansion, or the
// system temp directory when not configured. Nothing is created on disk.
func TempPath(entry *models.CellEntry, cfg *models.GlobalConfig, opts TempPathOptions) (string, error) {
	if entry == nil {
		return "", errors.New("temp path: nil cell entry")
	}

	base := os.TempDir()
	if cfg != nil && cfg.TempDir != nil {
		env := opts.Env
		if env == nil {
			env = shell.OSEnv()
		}
		expanded, err := shell.Expand(*cfg.TempDir, env)
		if err != nil {
			return "", fmt.Errorf("expand tempdir: %w", err)
		}
		base = expanded
	}

	prefix := DefaultTempPrefix
	if opts.Prefix != nil {
		prefix = *opts.Prefix
	}

	path := filepath.Join(base, prefix+entry.Cell+opts.Suffix)

	if !opts.ExistsOK {
		if _, err := os.Lstat(path); err == nil {
			return "", &TempPathExistsError{Path: path}
		}
	}

	return path, nil
}
