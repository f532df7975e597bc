package in

import (
	"context"

	"bikeshare/internal/modules/dataset/dto"
	datasetin "bikeshare/internal/modules/dataset/port/in"
)

type TUIHandler struct {
	usecase datasetin.Usecase
}

func NewTUIHandler(usecase datasetin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) OpenPager(ctx context.Context, city, month, day string) (datasetin.Pager, error) {
	return h.usecase.OpenPager(ctx, dto.SelectInput{City: city, Month: month, Day: day})
}

func (h TUIHandler) ListSources(ctx context.Context) ([]dto.SourceOutput, error) {
	return h.usecase.ListSources(ctx)
}

func (h TUIHandler) Selectors() dto.SelectorsOutput {
	return h.usecase.Selectors()
}
