package out

import (
	"context"

	"bikeshare/internal/modules/stats/domain"
)

// TripProvider supplies the filtered trips a report is computed over.
type TripProvider interface {
	Selection(ctx context.Context, city, month, day string) (domain.Selection, error)
}
