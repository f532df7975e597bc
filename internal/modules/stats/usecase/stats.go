package usecase

import (
	"context"
	"strconv"
	"time"

	"bikeshare/internal/modules/stats/domain"
	"bikeshare/internal/modules/stats/dto"
	statsin "bikeshare/internal/modules/stats/port/in"
	"bikeshare/internal/modules/stats/service"
)

type Interactor struct {
	svc *service.StatsService
}

func NewInteractor(svc *service.StatsService) statsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Report(ctx context.Context, input dto.ReportInput) (dto.ReportOutput, error) {
	report, err := i.svc.Report(ctx, input.City, input.Month, input.Day)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	sel := report.Selection
	return dto.ReportOutput{
		City:     sel.City,
		CityName: sel.CityName,
		Month:    sel.Month,
		Day:      sel.Day,
		Trips:    len(sel.Trips),
		Warning:  sel.Warning,
		Temporal: dto.TemporalOutput{
			Month:   toMode(report.Temporal.Month, time.Month.String),
			Day:     toMode(report.Temporal.Day, time.Weekday.String),
			Hour:    toMode(report.Temporal.Hour, strconv.Itoa),
			Elapsed: report.Temporal.Elapsed,
		},
		Stations: dto.StationOutput{
			Start:   toMode(report.Stations.Start, identity),
			End:     toMode(report.Stations.End, identity),
			Route:   toMode(report.Stations.Route, domain.Route.String),
			Elapsed: report.Stations.Elapsed,
		},
		Durations: dto.DurationOutput{
			Total:   report.Durations.Total,
			Mean:    report.Durations.Mean,
			HasMean: report.Durations.HasMean,
			Trips:   report.Durations.Trips,
			Elapsed: report.Durations.Elapsed,
		},
		Users: toUserOutput(report.Users),
	}, nil
}

func toUserOutput(users domain.UserStats) dto.UserOutput {
	by := users.BirthYear
	return dto.UserOutput{
		UserTypes: toCounts(users.UserTypes),
		Gender: dto.GenderOutput{
			Available: users.Gender.Available,
			Reason:    users.Gender.Reason,
			Counts:    toCounts(users.Gender.Counts),
		},
		BirthYear: dto.BirthYearOutput{
			Available:  by.Available,
			Reason:     by.Reason,
			Earliest:   by.Earliest,
			Latest:     by.Latest,
			MostCommon: by.MostCommon.Value,
			Count:      by.MostCommon.Count,
			Valid:      by.MostCommon.Valid,
		},
		Elapsed: users.Elapsed,
	}
}

func toMode[K comparable](mode domain.Mode[K], format func(K) string) dto.ModeOutput {
	if !mode.Valid {
		return dto.ModeOutput{}
	}
	return dto.ModeOutput{Value: format(mode.Value), Count: mode.Count, Valid: true}
}

func toCounts(counts []domain.Count[string]) []dto.CountOutput {
	out := make([]dto.CountOutput, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CountOutput{Value: c.Value, Count: c.Count})
	}
	return out
}

func identity(s string) string { return s }
