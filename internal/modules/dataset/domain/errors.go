package domain

import (
	"fmt"
	"strings"

	apperrors "bikeshare/internal/platform/errors"
)

type UnknownCityError struct {
	Input string
}

func (e *UnknownCityError) Error() string {
	names := make([]string, 0, 3)
	for _, c := range Cities() {
		names = append(names, c.DisplayName())
	}
	return fmt.Sprintf("unknown city %q (choose %s)", e.Input, strings.Join(names, ", "))
}

func (e *UnknownCityError) Unwrap() error { return apperrors.ErrUnknownCity }

type InvalidSelectorError struct {
	Kind  string
	Input string
}

func (e *InvalidSelectorError) Error() string {
	options := MonthOptions()
	if e.Kind == "day" {
		options = DayOptions()
	}
	return fmt.Sprintf("invalid %s %q (choose %s)", e.Kind, e.Input, strings.Join(options, ", "))
}

func (e *InvalidSelectorError) Unwrap() error { return apperrors.ErrInvalidInput }

// MalformedInputError reports a source file that cannot be read as trips.
// Line is 1-based and includes the header; zero means the whole file.
type MalformedInputError struct {
	Path   string
	Line   int
	Column string
	Reason string
}

func (e *MalformedInputError) Error() string {
	var b strings.Builder
	b.WriteString("malformed input ")
	b.WriteString(e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

func (e *MalformedInputError) Unwrap() error { return apperrors.ErrMalformedInput }

// EmptyResultWarning is attached to results whose filter matched no trips.
// It is never returned as an error from the pipeline.
type EmptyResultWarning struct {
	City   City
	Filter Filter
}

func (e *EmptyResultWarning) Error() string {
	return fmt.Sprintf("no %s trips match %s", e.City.DisplayName(), e.Filter)
}

func (e *EmptyResultWarning) Unwrap() error { return apperrors.ErrEmptyResult }
