package domain_test

import (
	"testing"

	"bikeshare/internal/modules/dataset/domain"
)

func TestPagerSevenRecords(t *testing.T) {
	t.Parallel()
	records := make([]domain.TripRecord, 7)
	for i := range records {
		records[i].Index = i
	}
	p := domain.NewPager(records, domain.DefaultPageSize)

	first := p.Next()
	if len(first) != 5 || first[0].Index != 0 || first[4].Index != 4 {
		t.Fatalf("unexpected first page %+v", first)
	}
	if p.Done() {
		t.Fatalf("pager should have rows left")
	}
	second := p.Next()
	if len(second) != 2 || second[0].Index != 5 || second[1].Index != 6 {
		t.Fatalf("unexpected second page %+v", second)
	}
	if !p.Done() {
		t.Fatalf("pager should be exhausted")
	}
	if third := p.Next(); len(third) != 0 {
		t.Fatalf("expected empty third page, got %+v", third)
	}
	if p.Cursor() != 15 {
		t.Fatalf("cursor should advance by page size each call, got %d", p.Cursor())
	}
}

func TestPagerPageDoesNotExposeTail(t *testing.T) {
	t.Parallel()
	records := make([]domain.TripRecord, 6)
	p := domain.NewPager(records, 0)
	if p.Size() != domain.DefaultPageSize {
		t.Fatalf("non-positive size should default to %d, got %d", domain.DefaultPageSize, p.Size())
	}
	page := p.Next()
	page = append(page, domain.TripRecord{Index: 99})
	if records[5].Index == 99 {
		t.Fatalf("appending to a page must not overwrite the next record")
	}
}

func TestPagerEmpty(t *testing.T) {
	t.Parallel()
	p := domain.NewPager(nil, 5)
	if !p.Done() || len(p.Next()) != 0 {
		t.Fatalf("empty pager should be done immediately")
	}
}
