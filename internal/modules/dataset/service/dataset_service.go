package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"bikeshare/internal/modules/dataset/domain"
	datasetout "bikeshare/internal/modules/dataset/port/out"
	"bikeshare/internal/platform/clock"
)

type DatasetService struct {
	clock    clock.Clock
	logger   hclog.Logger
	catalog  datasetout.SourceCatalog
	readers  map[domain.SourceFormat]datasetout.TripReader
	store    datasetout.TripStore
	pageSize int
}

func NewDatasetService(
	clk clock.Clock,
	logger hclog.Logger,
	catalog datasetout.SourceCatalog,
	csvReader datasetout.TripReader,
	store datasetout.TripStore,
	pageSize int,
) *DatasetService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	readers := map[domain.SourceFormat]datasetout.TripReader{}
	if csvReader != nil {
		readers[domain.SourceFormatCSV] = csvReader
	}
	if store != nil {
		readers[domain.SourceFormatSQLite] = store
	}
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &DatasetService{
		clock:    clk,
		logger:   logger.Named("dataset"),
		catalog:  catalog,
		readers:  readers,
		store:    store,
		pageSize: pageSize,
	}
}

// Load reads the full dataset for city. Every call goes back to the source.
func (s *DatasetService) Load(ctx context.Context, city domain.City) (domain.Dataset, error) {
	if err := city.Validate(); err != nil {
		return domain.Dataset{}, err
	}
	ref, err := s.catalog.Resolve(ctx, city)
	if err != nil {
		return domain.Dataset{}, err
	}
	reader, ok := s.readers[ref.Format]
	if !ok {
		return domain.Dataset{}, fmt.Errorf("no reader for %s source format %q", city.DisplayName(), ref.Format)
	}
	start := s.clock.Now()
	dataset, err := reader.ReadTrips(ctx, ref)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("load %s trips: %w", city.DisplayName(), err)
	}
	s.logger.Debug("dataset loaded",
		"city", city,
		"source", ref.Path,
		"format", ref.Format,
		"rows", dataset.Len(),
		"capabilities", dataset.Schema.CapabilityNames(),
		"elapsed", clock.Since(s.clock, start),
	)
	return dataset, nil
}

// Select loads city and applies filter. The returned dataset is the unfiltered
// source; the slice holds the matching records in source order.
func (s *DatasetService) Select(ctx context.Context, city domain.City, filter domain.Filter) (domain.Dataset, []domain.TripRecord, error) {
	dataset, err := s.Load(ctx, city)
	if err != nil {
		return domain.Dataset{}, nil, err
	}
	selected := filter.Apply(dataset.Records)
	s.logger.Debug("filter applied", "city", city, "filter", filter.String(), "matched", len(selected), "of", dataset.Len())
	if len(selected) == 0 {
		s.logger.Warn("filter matched no trips", "city", city, "filter", filter.String())
	}
	return dataset, selected, nil
}

func (s *DatasetService) NewPager(records []domain.TripRecord) *domain.Pager {
	return domain.NewPager(records, s.pageSize)
}

// Import reads the city's CSV source and replaces its copy in the store.
func (s *DatasetService) Import(ctx context.Context, city domain.City) (domain.Dataset, error) {
	if s.store == nil {
		return domain.Dataset{}, fmt.Errorf("trip store is not configured")
	}
	if err := city.Validate(); err != nil {
		return domain.Dataset{}, err
	}
	ref, err := s.catalog.Resolve(ctx, city)
	if err != nil {
		return domain.Dataset{}, err
	}
	if ref.Format != domain.SourceFormatCSV {
		return domain.Dataset{}, fmt.Errorf("%s is configured as %s; import reads csv sources only", city.DisplayName(), ref.Format)
	}
	reader, ok := s.readers[domain.SourceFormatCSV]
	if !ok {
		return domain.Dataset{}, fmt.Errorf("csv reader is not configured")
	}
	dataset, err := reader.ReadTrips(ctx, ref)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read %s trips: %w", city.DisplayName(), err)
	}
	if err := s.store.Replace(ctx, dataset); err != nil {
		return domain.Dataset{}, err
	}
	s.logger.Info("dataset imported", "city", city, "rows", dataset.Len())
	return dataset, nil
}

func (s *DatasetService) Sources(ctx context.Context) ([]domain.SourceRef, error) {
	return s.catalog.List(ctx)
}
