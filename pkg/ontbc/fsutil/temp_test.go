package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/ukaji3/ontbc-go/pkg/ontbc/models"
	"github.com/ukaji3/ontbc-go/pkg/ontbc/shell"
)

func TestTempPath(t *testing.T) {
	entry := &models.CellEntry{Cell: "FC1"}
	scratch := t.TempDir()
	env := shell.Env{"SCRATCH": scratch}

	tests := map[string]struct {
		cfg      *models.GlobalConfig
		opts     TempPathOptions
		expected string
	}{
		"system temp dir": {
			cfg:      &models.GlobalConfig{},
			expected: filepath.Join(os.TempDir(), "ont_basecall", "FC1"),
		},
		"nil config": {
			cfg:      nil,
			expected: filepath.Join(os.TempDir(), "ont_basecall", "FC1"),
		},
		"configured tempdir expanded": {
			cfg:      &models.GlobalConfig{TempDir: ptr.To("$SCRATCH/work")},
			opts:     TempPathOptions{Env: env},
			expected: filepath.Join(scratch, "work", "ont_basecall", "FC1"),
		},
		"prefix and suffix": {
			cfg:      &models.GlobalConfig{TempDir: ptr.To(scratch)},
			opts:     TempPathOptions{Prefix: ptr.To("bc_"), Suffix: ".tar"},
			expected: filepath.Join(scratch, "bc_FC1.tar"),
		},
		"empty prefix": {
			cfg:      &models.GlobalConfig{TempDir: ptr.To(scratch)},
			opts:     TempPathOptions{Prefix: ptr.To("")},
			expected: filepath.Join(scratch, "FC1"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := TempPath(entry, tc.cfg, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTempPath_Exists(t *testing.T) {
	scratch := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(scratch, "ont_basecall", "FC1"), 0755))

	entry := &models.CellEntry{Cell: "FC1"}
	cfg := &models.GlobalConfig{TempDir: ptr.To(scratch)}

	_, err := TempPath(entry, cfg, TempPathOptions{})
	require.ErrorIs(t, err, ErrTempPathExists)

	var existsErr *TempPathExistsError
	require.ErrorAs(t, err, &existsErr)
	assert.Equal(t, filepath.Join(scratch, "ont_basecall", "FC1"), existsErr.Path)

	got, err := TempPath(entry, cfg, TempPathOptions{ExistsOK: true})
	require.NoError(t, err)
	assert.Equal(t, existsErr.Path, got)
}

func TestTempPath_UnsetVariable(t *testing.T) {
	cfg := &models.GlobalConfig{TempDir: ptr.To("$NOT_SET_ANYWHERE/tmp")}

	_, err := TempPath(&models.CellEntry{Cell: "FC1"}, cfg, TempPathOptions{Env: shell.Env{}})
	require.ErrorIs(t, err, shell.ErrUnsetVariable)
}

func TestTempPath_NilEntry(t *testing.T) {
	_, err := TempPath(nil, nil, TempPathOptions{})
	require.Error(t, err)
}
