package out

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"bikeshare/internal/modules/dataset/domain"
	datasetout "bikeshare/internal/modules/dataset/port/out"
)

type CSVTripReader struct{}

func NewCSVTripReader() datasetout.TripReader {
	return &CSVTripReader{}
}

func (r *CSVTripReader) ReadTrips(ctx context.Context, source domain.SourceRef) (domain.Dataset, error) {
	f, err := os.Open(source.Path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("open trips csv: %w", err)
	}
	defer func() { _ = f.Close() }()
	return DecodeTrips(ctx, f, source)
}

// DecodeTrips parses a trip CSV with a header row. The unnamed leading column
// found in published bikeshare extracts, when present, becomes the record
// index.
func DecodeTrips(ctx context.Context, in io.Reader, source domain.SourceRef) (domain.Dataset, error) {
	reader := csv.NewReader(in)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Dataset{}, &domain.MalformedInputError{Path: source.Path, Reason: "file is empty"}
		}
		return domain.Dataset{}, malformed(source.Path, err)
	}
	cols, schema, err := mapColumns(header, source)
	if err != nil {
		return domain.Dataset{}, err
	}

	dataset := domain.Dataset{City: source.City, Source: source.Path, Schema: schema}
	for row := 0; ; row++ {
		if err := ctx.Err(); err != nil {
			return domain.Dataset{}, err
		}
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Dataset{}, malformed(source.Path, err)
		}
		line, _ := reader.FieldPos(0)
		record, bad := cols.decode(fields, row, source.TimestampLayouts)
		if bad != nil {
			bad.Path = source.Path
			bad.Line = line
			return domain.Dataset{}, bad
		}
		dataset.Records = append(dataset.Records, record)
	}
	return dataset, nil
}

// columnIndex holds header positions; -1 marks an absent optional column.
type columnIndex struct {
	names domain.ColumnMap

	index        int
	start        int
	end          int
	startStation int
	endStation   int
	duration     int
	userType     int
	gender       int
	birthYear    int
}

func mapColumns(header []string, source domain.SourceRef) (columnIndex, domain.Schema, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}
	lookup := func(name string) int {
		if strings.TrimSpace(name) == "" {
			return -1
		}
		if i, ok := positions[strings.ToLower(strings.TrimSpace(name))]; ok {
			return i
		}
		return -1
	}

	names := source.Columns
	cols := columnIndex{
		index:        -1,
		start:        lookup(names.StartTime),
		end:          lookup(names.EndTime),
		startStation: lookup(names.StartStation),
		endStation:   lookup(names.EndStation),
		duration:     lookup(names.TripDuration),
		userType:     lookup(names.UserType),
		gender:       lookup(names.Gender),
		birthYear:    lookup(names.BirthYear),
		names:        names,
	}
	if i, ok := positions[""]; ok {
		cols.index = i
	}

	required := []struct {
		pos  int
		name string
	}{
		{cols.start, names.StartTime},
		{cols.startStation, names.StartStation},
		{cols.endStation, names.EndStation},
		{cols.duration, names.TripDuration},
		{cols.userType, names.UserType},
	}
	for _, c := range required {
		if c.pos < 0 {
			return columnIndex{}, domain.Schema{}, &domain.MalformedInputError{
				Path:   source.Path,
				Line:   1,
				Column: c.name,
				Reason: "required column is missing",
			}
		}
	}

	schema := domain.Schema{Columns: names}
	if cols.end >= 0 {
		schema.Add(domain.CapabilityEndTime)
	}
	if cols.gender >= 0 {
		schema.Add(domain.CapabilityGender)
	}
	if cols.birthYear >= 0 {
		schema.Add(domain.CapabilityBirthYear)
	}
	return cols, schema, nil
}

func (c columnIndex) decode(fields []string, row int, layouts []string) (domain.TripRecord, *domain.MalformedInputError) {
	field := func(i int) string {
		if i < 0 || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	record := domain.TripRecord{
		Index:        row,
		StartStation: field(c.startStation),
		EndStation:   field(c.endStation),
		UserType:     field(c.userType),
		Gender:       field(c.gender),
	}
	if c.index >= 0 {
		if v, err := strconv.Atoi(field(c.index)); err == nil {
			record.Index = v
		}
	}

	start, err := parseTimestamp(field(c.start), layouts)
	if err != nil {
		return domain.TripRecord{}, &domain.MalformedInputError{Column: c.names.StartTime, Reason: err.Error()}
	}
	record.StartTime = start

	if raw := field(c.end); raw != "" {
		end, err := parseTimestamp(raw, layouts)
		if err != nil {
			return domain.TripRecord{}, &domain.MalformedInputError{Column: c.names.EndTime, Reason: err.Error()}
		}
		record.EndTime = end
	}

	duration, err := strconv.ParseFloat(field(c.duration), 64)
	if err != nil {
		return domain.TripRecord{}, &domain.MalformedInputError{
			Column: c.names.TripDuration,
			Reason: fmt.Sprintf("trip duration %q is not a number", field(c.duration)),
		}
	}
	record.Duration = duration

	if raw := field(c.birthYear); raw != "" {
		year, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.TripRecord{}, &domain.MalformedInputError{
				Column: c.names.BirthYear,
				Reason: fmt.Sprintf("birth year %q is not a number", raw),
			}
		}
		record.BirthYear = int(year)
		record.HasBirthYear = true
	}
	return record, nil
}

func parseTimestamp(raw string, layouts []string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("timestamp is empty")
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp %q", raw)
}

func malformed(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &domain.MalformedInputError{Path: path, Line: parseErr.Line, Reason: parseErr.Err.Error()}
	}
	return fmt.Errorf("read trips csv %s: %w", path, err)
}
