package in

import (
	"context"

	"bikeshare/internal/modules/stats/dto"
	statsin "bikeshare/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Report(ctx context.Context, city, month, day string) (dto.ReportOutput, error) {
	return h.usecase.Report(ctx, dto.ReportInput{City: city, Month: month, Day: day})
}
