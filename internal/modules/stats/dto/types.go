package dto

import "time"

type ReportInput struct {
	City  string
	Month string
	Day   string
}

// ModeOutput is a most-frequent value rendered for display.
type ModeOutput struct {
	Value string
	Count int
	Valid bool
}

type CountOutput struct {
	Value string
	Count int
}

type TemporalOutput struct {
	Month   ModeOutput
	Day     ModeOutput
	Hour    ModeOutput
	Elapsed time.Duration
}

type StationOutput struct {
	Start   ModeOutput
	End     ModeOutput
	Route   ModeOutput
	Elapsed time.Duration
}

type DurationOutput struct {
	Total   float64
	Mean    float64
	HasMean bool
	Trips   int
	Elapsed time.Duration
}

type GenderOutput struct {
	Available bool
	Reason    string
	Counts    []CountOutput
}

type BirthYearOutput struct {
	Available  bool
	Reason     string
	Earliest   int
	Latest     int
	MostCommon int
	Count      int
	Valid      bool
}

type UserOutput struct {
	UserTypes []CountOutput
	Gender    GenderOutput
	BirthYear BirthYearOutput
	Elapsed   time.Duration
}

type ReportOutput struct {
	City      string
	CityName  string
	Month     string
	Day       string
	Trips     int
	Warning   error
	Temporal  TemporalOutput
	Stations  StationOutput
	Durations DurationOutput
	Users     UserOutput
}
