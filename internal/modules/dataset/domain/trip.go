package domain

import "time"

// TripRecord is one row of a city dataset. Month, DayOfWeek and Hour are
// derived from StartTime on every call.
type TripRecord struct {
	Index        int
	StartTime    time.Time
	EndTime      time.Time
	StartStation string
	EndStation   string
	Duration     float64
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool
}

func (r TripRecord) Month() time.Month       { return r.StartTime.Month() }
func (r TripRecord) DayOfWeek() time.Weekday { return r.StartTime.Weekday() }
func (r TripRecord) Hour() int               { return r.StartTime.Hour() }

// Capability marks optional columns present in a dataset.
type Capability uint8

const (
	CapabilityEndTime Capability = 1 << iota
	CapabilityGender
	CapabilityBirthYear
)

func (c Capability) String() string {
	switch c {
	case CapabilityEndTime:
		return "end_time"
	case CapabilityGender:
		return "gender"
	case CapabilityBirthYear:
		return "birth_year"
	default:
		return "unknown"
	}
}

// ColumnMap names the header of each trip field in a source file.
type ColumnMap struct {
	StartTime    string
	EndTime      string
	StartStation string
	EndStation   string
	TripDuration string
	UserType     string
	Gender       string
	BirthYear    string
}

type Schema struct {
	Columns      ColumnMap
	Capabilities Capability
}

func (s Schema) Has(c Capability) bool { return s.Capabilities&c == c }

func (s *Schema) Add(c Capability) { s.Capabilities |= c }

// CapabilityNames lists the optional columns present, for logs and listings.
func (s Schema) CapabilityNames() []string {
	var out []string
	for _, c := range []Capability{CapabilityEndTime, CapabilityGender, CapabilityBirthYear} {
		if s.Has(c) {
			out = append(out, c.String())
		}
	}
	return out
}

type SourceFormat string

const (
	SourceFormatCSV    SourceFormat = "csv"
	SourceFormatSQLite SourceFormat = "sqlite"
)

// SourceRef locates the configured input for one city.
type SourceRef struct {
	City             City
	Path             string
	Format           SourceFormat
	Columns          ColumnMap
	TimestampLayouts []string
}

type Dataset struct {
	City    City
	Source  string
	Schema  Schema
	Records []TripRecord
}

func (d Dataset) Len() int { return len(d.Records) }
