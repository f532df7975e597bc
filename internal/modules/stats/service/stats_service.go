package service

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"

	"bikeshare/internal/modules/stats/domain"
	statsout "bikeshare/internal/modules/stats/port/out"
	"bikeshare/internal/platform/clock"
)

type StatsService struct {
	clock    clock.Clock
	logger   hclog.Logger
	provider statsout.TripProvider
}

func NewStatsService(clk clock.Clock, logger hclog.Logger, provider statsout.TripProvider) *StatsService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &StatsService{clock: clk, logger: logger.Named("stats"), provider: provider}
}

// Report computes every statistic group over one selection. Each group is
// timed on its own.
func (s *StatsService) Report(ctx context.Context, city, month, day string) (domain.Report, error) {
	selection, err := s.provider.Selection(ctx, city, month, day)
	if err != nil {
		return domain.Report{}, err
	}
	trips := selection.Trips
	report := domain.Report{Selection: selection}

	start := s.clock.Now()
	report.Temporal = domain.ComputeTemporal(trips)
	report.Temporal.Elapsed = s.stage("temporal", start, len(trips))

	start = s.clock.Now()
	report.Stations = domain.ComputeStations(trips)
	report.Stations.Elapsed = s.stage("stations", start, len(trips))

	start = s.clock.Now()
	report.Durations = domain.ComputeDurations(trips)
	report.Durations.Elapsed = s.stage("durations", start, len(trips))

	start = s.clock.Now()
	report.Users = domain.ComputeUsers(trips, selection.HasGender, selection.HasBirthYear)
	report.Users.Elapsed = s.stage("users", start, len(trips))

	return report, nil
}

func (s *StatsService) stage(name string, start time.Time, trips int) time.Duration {
	elapsed := clock.Since(s.clock, start)
	s.logger.Debug("statistics computed", "group", name, "trips", trips, "elapsed", elapsed)
	return elapsed
}
