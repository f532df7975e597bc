package out

import (
	"context"

	"bikeshare/internal/modules/dataset/domain"
)

type SourceCatalog interface {
	Resolve(ctx context.Context, city domain.City) (domain.SourceRef, error)
	List(ctx context.Context) ([]domain.SourceRef, error)
}

type TripReader interface {
	ReadTrips(ctx context.Context, source domain.SourceRef) (domain.Dataset, error)
}

// TripStore keeps imported datasets so they can be read back as a source.
type TripStore interface {
	TripReader
	Replace(ctx context.Context, dataset domain.Dataset) error
}
