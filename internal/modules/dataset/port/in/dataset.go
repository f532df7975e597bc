package in

import (
	"context"

	"bikeshare/internal/modules/dataset/dto"
)

type Usecase interface {
	Select(ctx context.Context, input dto.SelectInput) (dto.SelectionOutput, error)
	OpenPager(ctx context.Context, input dto.SelectInput) (Pager, error)
	Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error)
	ListSources(ctx context.Context) ([]dto.SourceOutput, error)
	Selectors() dto.SelectorsOutput
}

// Pager hands out consecutive raw-row pages of one selection.
type Pager interface {
	Next() dto.PageOutput
	Done() bool
	Total() int
}
