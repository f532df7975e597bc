package out

import (
	"context"
	"fmt"

	"bikeshare/internal/modules/dataset/domain"
	datasetout "bikeshare/internal/modules/dataset/port/out"
	"bikeshare/internal/platform/config"
	apperrors "bikeshare/internal/platform/errors"
)

// ConfigCatalog resolves city sources from the loaded configuration.
type ConfigCatalog struct {
	cfg config.Config
}

func NewConfigCatalog(cfg config.Config) datasetout.SourceCatalog {
	return &ConfigCatalog{cfg: cfg}
}

func (c *ConfigCatalog) Resolve(_ context.Context, city domain.City) (domain.SourceRef, error) {
	source, ok := c.cfg.Cities[string(city)]
	if !ok {
		return domain.SourceRef{}, fmt.Errorf("no source configured for %s: %w", city.DisplayName(), apperrors.ErrNotFound)
	}
	return domain.SourceRef{
		City:             city,
		Path:             c.cfg.SourcePath(source),
		Format:           domain.SourceFormat(source.Format),
		Columns:          toColumnMap(c.cfg.Columns),
		TimestampLayouts: c.cfg.TimestampLayouts,
	}, nil
}

func (c *ConfigCatalog) List(ctx context.Context) ([]domain.SourceRef, error) {
	out := make([]domain.SourceRef, 0, len(c.cfg.Cities))
	for _, city := range domain.Cities() {
		if _, ok := c.cfg.Cities[string(city)]; !ok {
			continue
		}
		ref, err := c.Resolve(ctx, city)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

func toColumnMap(c config.Columns) domain.ColumnMap {
	return domain.ColumnMap{
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		StartStation: c.StartStation,
		EndStation:   c.EndStation,
		TripDuration: c.TripDuration,
		UserType:     c.UserType,
		Gender:       c.Gender,
		BirthYear:    c.BirthYear,
	}
}
