package components_test

import (
	"testing"

	"bikeshare/internal/ui/components"
)

func TestSplitSelection(t *testing.T) {
	t.Parallel()
	months := []string{"all", "january", "jan", "march", "mar"}
	days := []string{"all", "monday", "mon", "friday", "fri"}
	cases := []struct {
		input, city, month, day string
	}{
		{"chicago", "chicago", "", ""},
		{"New York City March", "new york city", "march", ""},
		{"washington all friday", "washington", "all", "friday"},
		{"washington friday", "washington", "", "friday"},
		{"washington all", "washington", "all", ""},
		{"  chicago   january   monday ", "chicago", "january", "monday"},
		{"march", "march", "", ""},
		{"chicago jan", "chicago", "jan", ""},
		{"new york city mar fri", "new york city", "mar", "fri"},
		{"washington Fri", "washington", "", "fri"},
	}
	for _, tc := range cases {
		city, month, day := components.SplitSelection(tc.input, months, days)
		if city != tc.city || month != tc.month || day != tc.day {
			t.Fatalf("%q: got (%q, %q, %q), want (%q, %q, %q)", tc.input, city, month, day, tc.city, tc.month, tc.day)
		}
	}
}
