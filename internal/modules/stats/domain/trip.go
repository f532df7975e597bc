package domain

import "time"

// Trip is the part of a trip record the statistics read.
type Trip struct {
	Month        time.Month
	DayOfWeek    time.Weekday
	Hour         int
	StartStation string
	EndStation   string
	Duration     float64
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool
}

// Selection is a filtered set of trips together with what the source
// recorded about them.
type Selection struct {
	City         string
	CityName     string
	Month        string
	Day          string
	HasGender    bool
	HasBirthYear bool
	Trips        []Trip
	// Warning carries a non-fatal condition such as an empty selection.
	Warning error
}
