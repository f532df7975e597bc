package domain

import (
	"strings"
	"time"

	"bikeshare/internal/platform/slug"
)

const optionAll = "all"

// Trip data covers the first half of the year only.
var selectableMonths = []time.Month{
	time.January, time.February, time.March, time.April, time.May, time.June,
}

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// Choice is one selectable month or day and every input that parses to it.
type Choice struct {
	Value   string
	Label   string
	Accepts []string
}

// nameChoice accepts the full lowercase name and its three-letter form.
func nameChoice(name string) Choice {
	lower := strings.ToLower(name)
	return Choice{Value: lower, Label: name, Accepts: []string{lower, lower[:3]}}
}

func allChoice(label string) Choice {
	return Choice{Value: optionAll, Label: label, Accepts: []string{optionAll}}
}

func (c Choice) accepts(s string) bool {
	for _, a := range c.Accepts {
		if s == a {
			return true
		}
	}
	return false
}

// MonthSelector is either every month or one of January..June. The zero
// value selects every month.
type MonthSelector struct {
	month time.Month
}

var AllMonths = MonthSelector{}

func ParseMonth(input string) (MonthSelector, error) {
	s := slug.Make(input)
	if s == optionAll {
		return AllMonths, nil
	}
	for _, m := range selectableMonths {
		if nameChoice(m.String()).accepts(s) {
			return MonthSelector{month: m}, nil
		}
	}
	return MonthSelector{}, &InvalidSelectorError{Kind: "month", Input: input}
}

func (m MonthSelector) IsAll() bool       { return m.month == 0 }
func (m MonthSelector) Month() time.Month { return m.month }

func (m MonthSelector) Matches(month time.Month) bool {
	return m.IsAll() || m.month == month
}

func (m MonthSelector) String() string {
	if m.IsAll() {
		return optionAll
	}
	return strings.ToLower(m.month.String())
}

// MonthChoices lists "all" followed by January..June.
func MonthChoices() []Choice {
	out := []Choice{allChoice("All months")}
	for _, m := range selectableMonths {
		out = append(out, nameChoice(m.String()))
	}
	return out
}

// MonthOptions returns the canonical month inputs, "all" first.
func MonthOptions() []string {
	return choiceValues(MonthChoices())
}

// DaySelector is either every day or a single weekday. The zero value
// selects every day.
type DaySelector struct {
	day time.Weekday
	set bool
}

var AllDays = DaySelector{}

func ParseDay(input string) (DaySelector, error) {
	s := slug.Make(input)
	if s == optionAll {
		return AllDays, nil
	}
	for _, d := range weekdays {
		if nameChoice(d.String()).accepts(s) {
			return DaySelector{day: d, set: true}, nil
		}
	}
	return DaySelector{}, &InvalidSelectorError{Kind: "day", Input: input}
}

func (d DaySelector) IsAll() bool           { return !d.set }
func (d DaySelector) Weekday() time.Weekday { return d.day }

func (d DaySelector) Matches(day time.Weekday) bool {
	return d.IsAll() || d.day == day
}

func (d DaySelector) String() string {
	if d.IsAll() {
		return optionAll
	}
	return strings.ToLower(d.day.String())
}

// DayChoices lists "all" followed by Monday..Sunday.
func DayChoices() []Choice {
	out := []Choice{allChoice("All days")}
	for _, d := range weekdays {
		out = append(out, nameChoice(d.String()))
	}
	return out
}

// DayOptions returns the canonical day inputs, "all" first, Monday-based.
func DayOptions() []string {
	return choiceValues(DayChoices())
}

func choiceValues(choices []Choice) []string {
	out := make([]string, 0, len(choices))
	for _, c := range choices {
		out = append(out, c.Value)
	}
	return out
}

type Filter struct {
	Month MonthSelector
	Day   DaySelector
}

// ParseFilter validates both selectors, reporting the month first.
func ParseFilter(month, day string) (Filter, error) {
	m, err := ParseMonth(month)
	if err != nil {
		return Filter{}, err
	}
	d, err := ParseDay(day)
	if err != nil {
		return Filter{}, err
	}
	return Filter{Month: m, Day: d}, nil
}

func (f Filter) IsAll() bool {
	return f.Month.IsAll() && f.Day.IsAll()
}

func (f Filter) Matches(record TripRecord) bool {
	return f.Month.Matches(record.Month()) && f.Day.Matches(record.DayOfWeek())
}

// Apply returns the matching records in their original order. The input is
// never modified; the result is always a new slice.
func (f Filter) Apply(records []TripRecord) []TripRecord {
	out := make([]TripRecord, 0, len(records))
	for _, record := range records {
		if f.Matches(record) {
			out = append(out, record)
		}
	}
	return out
}

func (f Filter) String() string {
	return "month=" + f.Month.String() + " day=" + f.Day.String()
}
