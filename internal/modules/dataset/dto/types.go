package dto

import "time"

type SelectInput struct {
	City  string
	Month string
	Day   string
}

type ImportInput struct {
	City string
}

type TripOutput struct {
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
	Month        time.Month
	DayOfWeek    time.Weekday
	Hour         int
}

type SelectionOutput struct {
	City         string
	CityName     string
	Source       string
	Month        string
	Day          string
	HasEndTime   bool
	HasGender    bool
	HasBirthYear bool
	TotalRows    int
	Trips        []TripOutput
	// Warning is an EmptyResultWarning when no trips matched.
	Warning error
}

type PageOutput struct {
	Offset int
	Trips  []TripOutput
	Done   bool
}

type ImportOutput struct {
	City         string
	Source       string
	Rows         int
	Capabilities []string
}

type SourceOutput struct {
	City     string
	CityName string
	Path     string
	Format   string
}

// ChoiceOutput is one selectable month or day. Accepts lists every input the
// usecase parses to Value.
type ChoiceOutput struct {
	Value   string
	Label   string
	Accepts []string
}

type SelectorsOutput struct {
	Months []ChoiceOutput
	Days   []ChoiceOutput
}
