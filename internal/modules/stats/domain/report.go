package domain

import "time"

// Route is an ordered station pair; A to B and B to A are different routes.
type Route struct {
	Start string
	End   string
}

func (r Route) String() string { return r.Start + " and " + r.End }

type TemporalStats struct {
	Month   Mode[time.Month]
	Day     Mode[time.Weekday]
	Hour    Mode[int]
	Elapsed time.Duration
}

type StationStats struct {
	Start   Mode[string]
	End     Mode[string]
	Route   Mode[Route]
	Elapsed time.Duration
}

// DurationStats holds trip durations in seconds. Mean is meaningless unless
// HasMean is set.
type DurationStats struct {
	Total   float64
	Mean    float64
	HasMean bool
	Trips   int
	Elapsed time.Duration
}

// GenderStats is Available only when the source records gender. An
// available group with no counts means no selected trip had a value.
type GenderStats struct {
	Available bool
	Reason    string
	Counts    []Count[string]
}

type BirthYearStats struct {
	Available  bool
	Reason     string
	Earliest   int
	Latest     int
	MostCommon Mode[int]
}

type UserStats struct {
	UserTypes []Count[string]
	Gender    GenderStats
	BirthYear BirthYearStats
	Elapsed   time.Duration
}

type Report struct {
	Selection Selection
	Temporal  TemporalStats
	Stations  StationStats
	Durations DurationStats
	Users     UserStats
}
