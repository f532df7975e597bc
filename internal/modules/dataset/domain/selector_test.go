package domain_test

import (
	"errors"
	"testing"
	"time"

	"bikeshare/internal/modules/dataset/domain"
	apperrors "bikeshare/internal/platform/errors"
)

func TestParseCity(t *testing.T) {
	t.Parallel()
	cases := map[string]domain.City{
		"Chicago":       domain.CityChicago,
		"  new york ":   domain.CityNewYork,
		"New York City": domain.CityNewYork,
		"new_york_city": domain.CityNewYork,
		"WASHINGTON":    domain.CityWashington,
	}
	for input, want := range cases {
		got, err := domain.ParseCity(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s, got %s", input, want, got)
		}
	}

	_, err := domain.ParseCity("Boston")
	if !errors.Is(err, apperrors.ErrUnknownCity) {
		t.Fatalf("expected unknown city error, got %v", err)
	}
	var cityErr *domain.UnknownCityError
	if !errors.As(err, &cityErr) || cityErr.Input != "Boston" {
		t.Fatalf("expected typed error carrying input, got %#v", err)
	}
	if err := domain.City("boston").Validate(); !errors.Is(err, apperrors.ErrUnknownCity) {
		t.Fatalf("validate should reject boston, got %v", err)
	}
}

func TestParseMonth(t *testing.T) {
	t.Parallel()
	all, err := domain.ParseMonth("ALL")
	if err != nil || !all.IsAll() {
		t.Fatalf("expected all months, got %v %v", all, err)
	}
	march, err := domain.ParseMonth(" March ")
	if err != nil {
		t.Fatalf("parse march: %v", err)
	}
	if march.Month() != time.March || march.String() != "march" {
		t.Fatalf("unexpected selector %v", march)
	}
	if jun, _ := domain.ParseMonth("jun"); jun.Month() != time.June {
		t.Fatalf("short month name should parse, got %v", jun)
	}
	for _, bad := range []string{"july", "", "13"} {
		if _, err := domain.ParseMonth(bad); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("month %q should be invalid, got %v", bad, err)
		}
	}
}

func TestParseDay(t *testing.T) {
	t.Parallel()
	sunday, err := domain.ParseDay("sunday")
	if err != nil {
		t.Fatalf("parse sunday: %v", err)
	}
	if sunday.IsAll() || sunday.Weekday() != time.Sunday {
		t.Fatalf("unexpected selector %v", sunday)
	}
	if !domain.AllDays.IsAll() || domain.AllDays.String() != "all" {
		t.Fatalf("zero day selector should select all days")
	}
	_, err = domain.ParseDay("someday")
	var selErr *domain.InvalidSelectorError
	if !errors.As(err, &selErr) || selErr.Kind != "day" {
		t.Fatalf("expected invalid day selector, got %v", err)
	}
	if len(domain.DayOptions()) != 8 || len(domain.MonthOptions()) != 7 {
		t.Fatalf("unexpected option lists %v %v", domain.DayOptions(), domain.MonthOptions())
	}
}

func TestChoicesAcceptWhatTheParsersAccept(t *testing.T) {
	t.Parallel()
	for _, c := range domain.MonthChoices() {
		for _, in := range c.Accepts {
			m, err := domain.ParseMonth(in)
			if err != nil || m.String() != c.Value {
				t.Fatalf("month %q: got %v, %v; want %s", in, m, err, c.Value)
			}
		}
	}
	for _, c := range domain.DayChoices() {
		for _, in := range c.Accepts {
			d, err := domain.ParseDay(in)
			if err != nil || d.String() != c.Value {
				t.Fatalf("day %q: got %v, %v; want %s", in, d, err, c.Value)
			}
		}
	}
	jan := domain.MonthChoices()[1]
	if jan.Value != "january" || jan.Label != "January" || len(jan.Accepts) != 2 || jan.Accepts[1] != "jan" {
		t.Fatalf("unexpected january choice %+v", jan)
	}
}

func TestParseFilterReportsMonthFirst(t *testing.T) {
	t.Parallel()
	_, err := domain.ParseFilter("july", "someday")
	var selErr *domain.InvalidSelectorError
	if !errors.As(err, &selErr) || selErr.Kind != "month" {
		t.Fatalf("expected month error first, got %v", err)
	}
	f, err := domain.ParseFilter("all", "all")
	if err != nil || !f.IsAll() {
		t.Fatalf("expected identity filter, got %v %v", f, err)
	}
}
