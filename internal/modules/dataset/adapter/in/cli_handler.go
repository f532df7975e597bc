package in

import (
	"context"

	"bikeshare/internal/modules/dataset/dto"
	datasetin "bikeshare/internal/modules/dataset/port/in"
)

type CLIHandler struct {
	usecase datasetin.Usecase
}

func NewCLIHandler(usecase datasetin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Select(ctx context.Context, city, month, day string) (dto.SelectionOutput, error) {
	return h.usecase.Select(ctx, dto.SelectInput{City: city, Month: month, Day: day})
}

// Rows returns up to pages consecutive pages of raw rows. A non-positive
// pages value reads until the selection is exhausted.
func (h CLIHandler) Rows(ctx context.Context, city, month, day string, pages int) ([]dto.PageOutput, error) {
	pager, err := h.usecase.OpenPager(ctx, dto.SelectInput{City: city, Month: month, Day: day})
	if err != nil {
		return nil, err
	}
	var out []dto.PageOutput
	for n := 0; pages <= 0 || n < pages; n++ {
		page := pager.Next()
		if len(page.Trips) == 0 {
			break
		}
		out = append(out, page)
		if page.Done {
			break
		}
	}
	return out, nil
}

func (h CLIHandler) Import(ctx context.Context, city string) (dto.ImportOutput, error) {
	return h.usecase.Import(ctx, dto.ImportInput{City: city})
}

func (h CLIHandler) ListSources(ctx context.Context) ([]dto.SourceOutput, error) {
	return h.usecase.ListSources(ctx)
}
