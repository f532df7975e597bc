// Package render turns report and page outputs into terminal text. The CLI
// and the interactive session share it so both print the same report.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	datasetdto "bikeshare/internal/modules/dataset/dto"
	statsdto "bikeshare/internal/modules/stats/dto"
	"bikeshare/internal/ui/theme"
)

const timestampLayout = "2006-01-02 15:04:05"

func Report(r statsdto.ReportOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("%s bikeshare trips", r.CityName)) + "\n")
	sb.WriteString(line("Filter", fmt.Sprintf("month=%s day=%s", r.Month, r.Day)))
	sb.WriteString(line("Trips", humanize.Comma(int64(r.Trips))))
	if r.Warning != nil {
		sb.WriteString(theme.Hot.Render("! "+r.Warning.Error()) + "\n")
	}

	section(&sb, "Most frequent times of travel")
	sb.WriteString(line("Most common month", mode(r.Temporal.Month)))
	sb.WriteString(line("Most common day of week", mode(r.Temporal.Day)))
	sb.WriteString(line("Most common start hour", mode(r.Temporal.Hour)))
	sb.WriteString(took(r.Temporal.Elapsed))

	section(&sb, "Most popular stations and trip")
	sb.WriteString(line("Most commonly used start station", mode(r.Stations.Start)))
	sb.WriteString(line("Most commonly used end station", mode(r.Stations.End)))
	sb.WriteString(line("Most frequent combination of start and end station", mode(r.Stations.Route)))
	sb.WriteString(took(r.Stations.Elapsed))

	section(&sb, "Trip duration")
	sb.WriteString(line("Total travel time", seconds(r.Durations.Total)))
	if r.Durations.HasMean {
		sb.WriteString(line("Mean travel time", seconds(r.Durations.Mean)))
	} else {
		sb.WriteString(line("Mean travel time", theme.Muted.Render("no trips")))
	}
	sb.WriteString(took(r.Durations.Elapsed))

	section(&sb, "User stats")
	sb.WriteString(theme.Label.Render("Counts of user types:") + "\n")
	counts(&sb, r.Users.UserTypes)
	g := r.Users.Gender
	if g.Available {
		sb.WriteString(theme.Label.Render("Counts of gender:") + "\n")
		counts(&sb, g.Counts)
	} else {
		sb.WriteString(line("Gender", theme.Muted.Render("not available, "+g.Reason)))
	}
	by := r.Users.BirthYear
	switch {
	case !by.Available:
		sb.WriteString(line("Birth year", theme.Muted.Render("not available, "+by.Reason)))
	case !by.Valid:
		sb.WriteString(line("Birth year", theme.Muted.Render("no values")))
	default:
		sb.WriteString(line("Earliest year of birth", strconv.Itoa(by.Earliest)))
		sb.WriteString(line("Most recent year of birth", strconv.Itoa(by.Latest)))
		sb.WriteString(line("Most common year of birth", fmt.Sprintf("%d %s", by.MostCommon, trips(by.Count))))
	}
	sb.WriteString(took(r.Users.Elapsed))
	return sb.String()
}

// Rows renders one page of raw trips. Gender and birth year columns appear
// only when some row on the page has a value.
func Rows(page datasetdto.PageOutput) string {
	if len(page.Trips) == 0 {
		return theme.Muted.Render("No more rows.") + "\n"
	}
	var withGender, withBirthYear bool
	for _, t := range page.Trips {
		withGender = withGender || t.Gender != ""
		withBirthYear = withBirthYear || t.HasBirthYear
	}
	headers := []string{"#", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if withGender {
		headers = append(headers, "Gender")
	}
	if withBirthYear {
		headers = append(headers, "Birth Year")
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.Rule).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Section.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, t := range page.Trips {
		row := []string{
			strconv.Itoa(t.Index),
			t.StartTime.Format(timestampLayout),
			timestamp(t.EndTime),
			strconv.FormatFloat(t.Duration, 'f', -1, 64),
			t.StartStation,
			t.EndStation,
			t.UserType,
		}
		if withGender {
			row = append(row, t.Gender)
		}
		if withBirthYear {
			year := ""
			if t.HasBirthYear {
				year = strconv.Itoa(t.BirthYear)
			}
			row = append(row, year)
		}
		tbl.Row(row...)
	}
	caption := theme.Label.Render(fmt.Sprintf("rows %d-%d", page.Offset+1, page.Offset+len(page.Trips)))
	return caption + "\n" + tbl.Render() + "\n"
}

func Sources(sources []datasetdto.SourceOutput) string {
	var sb strings.Builder
	for _, s := range sources {
		fmt.Fprintf(&sb, "%-16s %-14s %-7s %s\n", s.City, s.CityName, s.Format, s.Path)
	}
	return sb.String()
}

func Import(out datasetdto.ImportOutput) string {
	caps := "none"
	if len(out.Capabilities) > 0 {
		caps = strings.Join(out.Capabilities, ", ")
	}
	return fmt.Sprintf("imported %s trips for %s from %s (optional columns: %s)\n",
		humanize.Comma(int64(out.Rows)), out.City, out.Source, caps)
}

func section(sb *strings.Builder, title string) {
	sb.WriteString("\n" + theme.Section.Render(title) + "\n")
}

func line(label, value string) string {
	return theme.Label.Render(label+": ") + theme.Value.Render(value) + "\n"
}

func mode(m statsdto.ModeOutput) string {
	if !m.Valid {
		return theme.Muted.Render("none")
	}
	return m.Value + " " + trips(m.Count)
}

func counts(sb *strings.Builder, values []statsdto.CountOutput) {
	if len(values) == 0 {
		sb.WriteString("  " + theme.Muted.Render("none") + "\n")
		return
	}
	for _, c := range values {
		sb.WriteString("  " + theme.Label.Render(c.Value+": ") + theme.Value.Render(humanize.Comma(int64(c.Count))) + "\n")
	}
}

func trips(n int) string {
	if n == 1 {
		return "(1 trip)"
	}
	return "(" + humanize.Comma(int64(n)) + " trips)"
}

func seconds(v float64) string {
	d := time.Duration(v * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%s seconds (%s)", humanize.CommafWithDigits(v, 2), d)
}

func took(elapsed time.Duration) string {
	return theme.Muted.Render(fmt.Sprintf("This took %.6f seconds.", elapsed.Seconds())) + "\n"
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampLayout)
}
