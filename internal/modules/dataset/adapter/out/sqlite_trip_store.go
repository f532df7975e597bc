package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"bikeshare/internal/modules/dataset/domain"
	"bikeshare/internal/platform/clock"
	apperrors "bikeshare/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteTripStore keeps imported city datasets in a single SQLite file.
type SQLiteTripStore struct {
	db    *sql.DB
	clock clock.Clock
}

func NewSQLiteTripStore(dbPath string, clk clock.Clock) (*SQLiteTripStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteTripStore{db: db, clock: clk}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteTripStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS datasets (
  city TEXT PRIMARY KEY,
  source TEXT NOT NULL,
  capabilities INTEGER NOT NULL,
  row_count INTEGER NOT NULL,
  imported_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS trips (
  city TEXT NOT NULL,
  seq INTEGER NOT NULL,
  row_index INTEGER NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT,
  start_station TEXT NOT NULL,
  end_station TEXT NOT NULL,
  duration REAL NOT NULL,
  user_type TEXT NOT NULL,
  gender TEXT,
  birth_year INTEGER,
  PRIMARY KEY (city, seq)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create trip tables: %w", err)
	}
	return nil
}

func (s *SQLiteTripStore) Replace(ctx context.Context, dataset domain.Dataset) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM trips WHERE city = ?`, string(dataset.City)); err != nil {
		return fmt.Errorf("clear trips: %w", err)
	}
	const upsertDataset = `
INSERT INTO datasets (city, source, capabilities, row_count, imported_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(city) DO UPDATE SET
  source=excluded.source,
  capabilities=excluded.capabilities,
  row_count=excluded.row_count,
  imported_at=excluded.imported_at;
`
	if _, err = tx.ExecContext(ctx, upsertDataset,
		string(dataset.City),
		dataset.Source,
		int(dataset.Schema.Capabilities),
		dataset.Len(),
		s.clock.Now().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("upsert dataset: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO trips (city, seq, row_index, start_time, end_time, start_station, end_station, duration, user_type, gender, birth_year)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare trip insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for seq, r := range dataset.Records {
		var endTime, gender sql.NullString
		var birthYear sql.NullInt64
		if !r.EndTime.IsZero() {
			endTime = sql.NullString{String: r.EndTime.Format(time.RFC3339Nano), Valid: true}
		}
		if r.Gender != "" {
			gender = sql.NullString{String: r.Gender, Valid: true}
		}
		if r.HasBirthYear {
			birthYear = sql.NullInt64{Int64: int64(r.BirthYear), Valid: true}
		}
		if _, err = stmt.ExecContext(ctx,
			string(dataset.City),
			seq,
			r.Index,
			r.StartTime.Format(time.RFC3339Nano),
			endTime,
			r.StartStation,
			r.EndStation,
			r.Duration,
			r.UserType,
			gender,
			birthYear,
		); err != nil {
			return fmt.Errorf("insert trip %d: %w", seq, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func (s *SQLiteTripStore) ReadTrips(ctx context.Context, source domain.SourceRef) (domain.Dataset, error) {
	var origin string
	var capabilities int
	err := s.db.QueryRowContext(ctx, `SELECT source, capabilities FROM datasets WHERE city = ?`, string(source.City)).Scan(&origin, &capabilities)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Dataset{}, fmt.Errorf("%s has not been imported: %w", source.City.DisplayName(), apperrors.ErrNotFound)
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read dataset metadata: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT row_index, start_time, end_time, start_station, end_station, duration, user_type, gender, birth_year
FROM trips WHERE city = ? ORDER BY seq`, string(source.City))
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("query trips: %w", err)
	}
	defer func() { _ = rows.Close() }()

	dataset := domain.Dataset{
		City:   source.City,
		Source: origin,
		Schema: domain.Schema{Columns: source.Columns, Capabilities: domain.Capability(capabilities)},
	}
	for rows.Next() {
		var (
			r              domain.TripRecord
			startRaw       string
			endRaw, gender sql.NullString
			birthYear      sql.NullInt64
		)
		if err := rows.Scan(&r.Index, &startRaw, &endRaw, &r.StartStation, &r.EndStation, &r.Duration, &r.UserType, &gender, &birthYear); err != nil {
			return domain.Dataset{}, fmt.Errorf("scan trip: %w", err)
		}
		start, err := time.Parse(time.RFC3339Nano, startRaw)
		if err != nil {
			return domain.Dataset{}, &domain.MalformedInputError{Path: source.Path, Column: "start_time", Reason: err.Error()}
		}
		r.StartTime = start
		if endRaw.Valid {
			end, err := time.Parse(time.RFC3339Nano, endRaw.String)
			if err != nil {
				return domain.Dataset{}, &domain.MalformedInputError{Path: source.Path, Column: "end_time", Reason: err.Error()}
			}
			r.EndTime = end
		}
		r.Gender = gender.String
		if birthYear.Valid {
			r.BirthYear = int(birthYear.Int64)
			r.HasBirthYear = true
		}
		dataset.Records = append(dataset.Records, r)
	}
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("iterate trips: %w", err)
	}
	return dataset, nil
}

func (s *SQLiteTripStore) Close() error {
	return s.db.Close()
}

// LazySQLiteTripStore opens the SQLite file on first read or import. Runs
// that only touch CSV sources never create it.
type LazySQLiteTripStore struct {
	dbPath string
	clock  clock.Clock

	mu    sync.Mutex
	store *SQLiteTripStore
}

func NewLazySQLiteTripStore(dbPath string, clk clock.Clock) *LazySQLiteTripStore {
	return &LazySQLiteTripStore{dbPath: dbPath, clock: clk}
}

func (l *LazySQLiteTripStore) open() (*SQLiteTripStore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store != nil {
		return l.store, nil
	}
	store, err := NewSQLiteTripStore(l.dbPath, l.clock)
	if err != nil {
		return nil, err
	}
	l.store = store
	return store, nil
}

func (l *LazySQLiteTripStore) ReadTrips(ctx context.Context, source domain.SourceRef) (domain.Dataset, error) {
	store, err := l.open()
	if err != nil {
		return domain.Dataset{}, err
	}
	return store.ReadTrips(ctx, source)
}

func (l *LazySQLiteTripStore) Replace(ctx context.Context, dataset domain.Dataset) error {
	store, err := l.open()
	if err != nil {
		return err
	}
	return store.Replace(ctx, dataset)
}

func (l *LazySQLiteTripStore) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store != nil
}

func (l *LazySQLiteTripStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.store == nil {
		return nil
	}
	err := l.store.Close()
	l.store = nil
	return err
}
