package usecase

import (
	"context"
	"strings"

	"bikeshare/internal/modules/dataset/domain"
	"bikeshare/internal/modules/dataset/dto"
	datasetin "bikeshare/internal/modules/dataset/port/in"
	"bikeshare/internal/modules/dataset/service"
)

type Interactor struct {
	svc *service.DatasetService
}

func NewInteractor(svc *service.DatasetService) datasetin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Select(ctx context.Context, input dto.SelectInput) (dto.SelectionOutput, error) {
	city, filter, err := parseSelection(input)
	if err != nil {
		return dto.SelectionOutput{}, err
	}
	dataset, records, err := i.svc.Select(ctx, city, filter)
	if err != nil {
		return dto.SelectionOutput{}, err
	}
	out := dto.SelectionOutput{
		City:         string(city),
		CityName:     city.DisplayName(),
		Source:       dataset.Source,
		Month:        filter.Month.String(),
		Day:          filter.Day.String(),
		HasEndTime:   dataset.Schema.Has(domain.CapabilityEndTime),
		HasGender:    dataset.Schema.Has(domain.CapabilityGender),
		HasBirthYear: dataset.Schema.Has(domain.CapabilityBirthYear),
		TotalRows:    dataset.Len(),
		Trips:        toTripOutputs(records),
	}
	if len(records) == 0 {
		out.Warning = &domain.EmptyResultWarning{City: city, Filter: filter}
	}
	return out, nil
}

func (i *Interactor) OpenPager(ctx context.Context, input dto.SelectInput) (datasetin.Pager, error) {
	city, filter, err := parseSelection(input)
	if err != nil {
		return nil, err
	}
	_, records, err := i.svc.Select(ctx, city, filter)
	if err != nil {
		return nil, err
	}
	return &pager{pager: i.svc.NewPager(records)}, nil
}

func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error) {
	city, err := domain.ParseCity(input.City)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	dataset, err := i.svc.Import(ctx, city)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	return dto.ImportOutput{
		City:         string(city),
		Source:       dataset.Source,
		Rows:         dataset.Len(),
		Capabilities: dataset.Schema.CapabilityNames(),
	}, nil
}

func (i *Interactor) ListSources(ctx context.Context) ([]dto.SourceOutput, error) {
	refs, err := i.svc.Sources(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SourceOutput, 0, len(refs))
	for _, ref := range refs {
		out = append(out, dto.SourceOutput{
			City:     string(ref.City),
			CityName: ref.City.DisplayName(),
			Path:     ref.Path,
			Format:   string(ref.Format),
		})
	}
	return out, nil
}

func (i *Interactor) Selectors() dto.SelectorsOutput {
	return dto.SelectorsOutput{
		Months: toChoiceOutputs(domain.MonthChoices()),
		Days:   toChoiceOutputs(domain.DayChoices()),
	}
}

func toChoiceOutputs(choices []domain.Choice) []dto.ChoiceOutput {
	out := make([]dto.ChoiceOutput, 0, len(choices))
	for _, c := range choices {
		out = append(out, dto.ChoiceOutput{Value: c.Value, Label: c.Label, Accepts: append([]string(nil), c.Accepts...)})
	}
	return out
}

func parseSelection(input dto.SelectInput) (domain.City, domain.Filter, error) {
	city, err := domain.ParseCity(input.City)
	if err != nil {
		return "", domain.Filter{}, err
	}
	filter, err := domain.ParseFilter(defaultAll(input.Month), defaultAll(input.Day))
	if err != nil {
		return "", domain.Filter{}, err
	}
	return city, filter, nil
}

// Callers that leave a selector blank mean no restriction.
func defaultAll(s string) string {
	if strings.TrimSpace(s) == "" {
		return "all"
	}
	return s
}

type pager struct {
	pager *domain.Pager
}

func (p *pager) Next() dto.PageOutput {
	offset := p.pager.Cursor()
	records := p.pager.Next()
	return dto.PageOutput{Offset: offset, Trips: toTripOutputs(records), Done: p.pager.Done()}
}

func (p *pager) Done() bool { return p.pager.Done() }
func (p *pager) Total() int { return p.pager.Len() }

func toTripOutputs(records []domain.TripRecord) []dto.TripOutput {
	out := make([]dto.TripOutput, 0, len(records))
	for _, r := range records {
		out = append(out, dto.TripOutput{
			Index:        r.Index,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			StartStation: r.StartStation,
			EndStation:   r.EndStation,
			Duration:     r.Duration,
			UserType:     r.UserType,
			Gender:       r.Gender,
			BirthYear:    r.BirthYear,
			HasBirthYear: r.HasBirthYear,
			Month:        r.Month(),
			DayOfWeek:    r.DayOfWeek(),
			Hour:         r.Hour(),
		})
	}
	return out
}
