package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	datasetout "bikeshare/internal/modules/dataset/adapter/out"
	"bikeshare/internal/modules/dataset/domain"
	apperrors "bikeshare/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestSQLiteTripStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := datasetout.NewSQLiteTripStore(filepath.Join(t.TempDir(), "nested", "bikeshare.db"), fixedClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	source := sourceRef(domain.CityChicago, "chicago.csv")
	imported, err := datasetout.DecodeTrips(ctx, strings.NewReader(chicagoCSV), source)
	if err != nil {
		t.Fatalf("decode trips: %v", err)
	}
	if err := store.Replace(ctx, imported); err != nil {
		t.Fatalf("replace: %v", err)
	}

	source.Format = domain.SourceFormatSQLite
	loaded, err := store.ReadTrips(ctx, source)
	if err != nil {
		t.Fatalf("read trips: %v", err)
	}
	if loaded.Len() != imported.Len() || loaded.Source != "chicago.csv" {
		t.Fatalf("unexpected loaded dataset %d rows from %s", loaded.Len(), loaded.Source)
	}
	if loaded.Schema.Capabilities != imported.Schema.Capabilities {
		t.Fatalf("capabilities changed: %v vs %v", loaded.Schema.CapabilityNames(), imported.Schema.CapabilityNames())
	}
	for i := range imported.Records {
		want, got := imported.Records[i], loaded.Records[i]
		if !want.StartTime.Equal(got.StartTime) || !want.EndTime.Equal(got.EndTime) {
			t.Fatalf("row %d timestamps changed: %+v vs %+v", i, want, got)
		}
		want.StartTime, want.EndTime = time.Time{}, time.Time{}
		got.StartTime, got.EndTime = time.Time{}, time.Time{}
		if want != got {
			t.Fatalf("row %d changed: %+v vs %+v", i, want, got)
		}
	}

	// A second import replaces rather than appends.
	imported.Records = imported.Records[:1]
	if err := store.Replace(ctx, imported); err != nil {
		t.Fatalf("replace again: %v", err)
	}
	loaded, err = store.ReadTrips(ctx, source)
	if err != nil {
		t.Fatalf("read trips again: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("expected 1 trip after reimport, got %d", loaded.Len())
	}
}

func TestSQLiteTripStoreReportsMissingCity(t *testing.T) {
	t.Parallel()
	store, err := datasetout.NewSQLiteTripStore(filepath.Join(t.TempDir(), "bikeshare.db"), fixedClock{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() { _ = store.Close() }()
	_, err = store.ReadTrips(context.Background(), sourceRef(domain.CityWashington, "db"))
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLazySQLiteTripStoreOpensOnFirstUse(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "nested", "bikeshare.db")
	store := datasetout.NewLazySQLiteTripStore(dbPath, fixedClock{})
	if err := store.Close(); err != nil {
		t.Fatalf("close before use: %v", err)
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("db file must not exist before first use, stat err=%v", err)
	}

	_, err := store.ReadTrips(context.Background(), sourceRef(domain.CityWashington, "db"))
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !store.Opened() {
		t.Fatalf("store should be open after a read")
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("db file should exist after first use: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if store.Opened() {
		t.Fatalf("store should be closed")
	}
}
