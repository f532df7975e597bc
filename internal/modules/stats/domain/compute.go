package domain

import "time"

const (
	ReasonNoGender    = "gender is not recorded for this city"
	ReasonNoBirthYear = "birth year is not recorded for this city"
)

func ComputeTemporal(trips []Trip) TemporalStats {
	months := NewTally[time.Month]()
	days := NewTally[time.Weekday]()
	hours := NewTally[int]()
	for _, t := range trips {
		months.Add(t.Month)
		days.Add(t.DayOfWeek)
		hours.Add(t.Hour)
	}
	return TemporalStats{Month: months.Mode(), Day: days.Mode(), Hour: hours.Mode()}
}

func ComputeStations(trips []Trip) StationStats {
	starts := NewTally[string]()
	ends := NewTally[string]()
	routes := NewTally[Route]()
	for _, t := range trips {
		starts.Add(t.StartStation)
		ends.Add(t.EndStation)
		routes.Add(Route{Start: t.StartStation, End: t.EndStation})
	}
	return StationStats{Start: starts.Mode(), End: ends.Mode(), Route: routes.Mode()}
}

func ComputeDurations(trips []Trip) DurationStats {
	var stats DurationStats
	for _, t := range trips {
		stats.Total += t.Duration
	}
	stats.Trips = len(trips)
	if stats.Trips > 0 {
		stats.Mean = stats.Total / float64(stats.Trips)
		stats.HasMean = true
	}
	return stats
}

// ComputeUsers skips empty user types, genders and missing birth years.
func ComputeUsers(trips []Trip, hasGender, hasBirthYear bool) UserStats {
	types := NewTally[string]()
	genders := NewTally[string]()
	years := NewTally[int]()
	stats := UserStats{
		Gender:    GenderStats{Available: hasGender},
		BirthYear: BirthYearStats{Available: hasBirthYear},
	}
	for _, t := range trips {
		if t.UserType != "" {
			types.Add(t.UserType)
		}
		if hasGender && t.Gender != "" {
			genders.Add(t.Gender)
		}
		if hasBirthYear && t.HasBirthYear {
			if years.Len() == 0 {
				stats.BirthYear.Earliest, stats.BirthYear.Latest = t.BirthYear, t.BirthYear
			}
			years.Add(t.BirthYear)
			stats.BirthYear.Earliest = min(stats.BirthYear.Earliest, t.BirthYear)
			stats.BirthYear.Latest = max(stats.BirthYear.Latest, t.BirthYear)
		}
	}
	stats.UserTypes = types.Counts()
	if hasGender {
		stats.Gender.Counts = genders.Counts()
	} else {
		stats.Gender.Reason = ReasonNoGender
	}
	if hasBirthYear {
		stats.BirthYear.MostCommon = years.Mode()
	} else {
		stats.BirthYear.Reason = ReasonNoBirthYear
	}
	return stats
}
