package ontbc

import (
	"context"
	"strings"

	"github.com/ukaji3/ontbc-go/pkg/ontbc/models"
	"golang.org/x/sync/errgroup"
)

// Resolve builds the cell entry for cellID.
//
// Each optional field is resolved on its own: a row override wins, otherwise the
// global default applies, otherwise resolution fails. The first unmet requirement
// is returned as a typed error and no entry is produced. Neither table nor cfg is
// modified, so Resolve may run concurrently on the same inputs.
func Resolve(cellID string, table *models.CellTable, cfg *models.GlobalConfig) (*models.CellEntry, error) {
	if cfg == nil {
		cfg = &models.GlobalConfig{}
	}

	row, ok := table.Row(cellID)
	if !ok {
		return nil, &UnknownCellError{Cell: cellID}
	}
	if row.Sample == nil {
		return nil, &MissingSampleError{Cell: cellID}
	}

	fast5Dir, err := resolveFast5Dir(cellID, row.Fast5Dir, cfg)
	if err != nil {
		return nil, err
	}

	profileName, err := resolveProfileName(cellID, row.Profile, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Profiles == nil {
		return nil, &MissingSectionError{Section: models.KeyProfile}
	}
	profile, ok := cfg.Profiles[profileName]
	if !ok {
		return nil, &UnknownProfileError{Profile: profileName, Cell: cellID}
	}

	guppyDir, ok := profile.String(models.ProfileKeyGuppyDir)
	if !ok {
		return nil, &IncompleteProfileError{Field: models.ProfileKeyGuppyDir, Profile: profileName, Cell: cellID}
	}
	cfgName, ok := profile.String(models.ProfileKeyCfg)
	if !ok {
		return nil, &IncompleteProfileError{Field: models.ProfileKeyCfg, Profile: profileName, Cell: cellID}
	}

	return &models.CellEntry{
		Cell:        cellID,
		Fast5Dir:    fast5Dir,
		Profile:     profileName,
		Sample:      *row.Sample,
		GuppyDir:    guppyDir,
		Cfg:         cfgName,
		ProfileDict: profile.Clone(),
	}, nil
}

func resolveFast5Dir(cellID string, override *string, cfg *models.GlobalConfig) (string, error) {
	if override != nil {
		return *override, nil
	}
	if cfg.Fast5Dir == nil {
		return "", &MissingDefaultError{Field: models.KeyFast5Dir, Cell: cellID}
	}
	tmpl := *cfg.Fast5Dir
	if !strings.Contains(tmpl, models.CellPlaceholder) {
		return "", &MalformedTemplateError{Template: tmpl, Cell: cellID}
	}
	return strings.ReplaceAll(tmpl, models.CellPlaceholder, cellID), nil
}

func resolveProfileName(cellID string, override *string, cfg *models.GlobalConfig) (string, error) {
	if override != nil {
		return *override, nil
	}
	if cfg.DefaultProfile == nil {
		return "", &MissingDefaultError{Field: models.KeyProfile, Cell: cellID}
	}
	return *cfg.DefaultProfile, nil
}

// ResolveAll resolves every cell of the table, returning entries in table order.
// Cells are resolved concurrently; the first failure cancels the rest and is returned.
func ResolveAll(ctx context.Context, table *models.CellTable, cfg *models.GlobalConfig, opts Options) ([]*models.CellEntry, error) {
	cells := table.Cells()
	entries := make([]*models.CellEntry, len(cells))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())

	for i, cell := range cells {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := Resolve(cell, table, cfg)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts.logger().Debug("resolved cells", "count", len(entries))
	return entries, nil
}
