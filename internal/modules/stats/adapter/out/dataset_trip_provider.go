package out

import (
	"context"

	datasetdto "bikeshare/internal/modules/dataset/dto"
	datasetin "bikeshare/internal/modules/dataset/port/in"
	"bikeshare/internal/modules/stats/domain"
	statsout "bikeshare/internal/modules/stats/port/out"
)

// DatasetTripProvider reads selections through the dataset module.
type DatasetTripProvider struct {
	dataset datasetin.Usecase
}

func NewDatasetTripProvider(dataset datasetin.Usecase) statsout.TripProvider {
	return &DatasetTripProvider{dataset: dataset}
}

func (p *DatasetTripProvider) Selection(ctx context.Context, city, month, day string) (domain.Selection, error) {
	sel, err := p.dataset.Select(ctx, datasetdto.SelectInput{City: city, Month: month, Day: day})
	if err != nil {
		return domain.Selection{}, err
	}
	trips := make([]domain.Trip, 0, len(sel.Trips))
	for _, t := range sel.Trips {
		trips = append(trips, domain.Trip{
			Month:        t.Month,
			DayOfWeek:    t.DayOfWeek,
			Hour:         t.Hour,
			StartStation: t.StartStation,
			EndStation:   t.EndStation,
			Duration:     t.Duration,
			UserType:     t.UserType,
			Gender:       t.Gender,
			BirthYear:    t.BirthYear,
			HasBirthYear: t.HasBirthYear,
		})
	}
	return domain.Selection{
		City:         sel.City,
		CityName:     sel.CityName,
		Month:        sel.Month,
		Day:          sel.Day,
		HasGender:    sel.HasGender,
		HasBirthYear: sel.HasBirthYear,
		Trips:        trips,
		Warning:      sel.Warning,
	}, nil
}
