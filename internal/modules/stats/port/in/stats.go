package in

import (
	"context"

	"bikeshare/internal/modules/stats/dto"
)

type Usecase interface {
	Report(ctx context.Context, input dto.ReportInput) (dto.ReportOutput, error)
}
